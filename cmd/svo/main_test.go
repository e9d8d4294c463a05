// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
bounds: { center: [0, 0, 0], extent: [8, 8, 8] }
max_depth: 3
ops:
  - insert: [1, 1, 1]
    label: crate
  - insert: [-1, -1, -1]
`

const testInspect = `version: 1.0
bounds: [-8,-8,-8,8,8,8]
max_depth: 3
cells: 2
volume: 16
  depth=3 code=63 box=[-2,-2,-2,0,0,0]
  depth=3 code=448 box=[0,0,0,2,2,2]
`

func execute(stdin io.Reader, args ...string) (stdout, stderr string, err error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(stdin)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeScene(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScene), 0o600))
	return path
}

func TestMorton(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"EncodeZero", []string{"morton", "encode", "0", "0", "0"}, "0\n"},
		{"Encode", []string{"morton", "encode", "1", "2", "3"}, "53\n"},
		{"EncodeHex", []string{"morton", "encode", "0x1", "0x2", "0x3"}, "53\n"},
		{"EncodeMax", []string{"morton", "encode", "2097151", "2097151", "2097151"}, "9223372036854775807\n"},
		{"Decode", []string{"morton", "decode", "53"}, "1 2 3\n"},
		{"DecodeHex", []string{"morton", "decode", "0x35"}, "1 2 3\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			stdout, _, err := execute(nil, testCase.args...)

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, stdout)
		})
	}

	t.Run("Truncated", func(t *testing.T) {
		stdout, stderr, err := execute(nil, "morton", "encode", "2097152", "0", "1")

		require.NoError(t, err)
		assert.Equal(t, "4\n", stdout)
		assert.Contains(t, stderr, "Coordinate truncated")
	})

	t.Run("InvalidCoordinate", func(t *testing.T) {
		_, _, err := execute(nil, "morton", "encode", "1", "-2", "3")

		assert.ErrorContains(t, err, `invalid coordinate "-2"`)
	})

	t.Run("WrongArgCount", func(t *testing.T) {
		_, _, err := execute(nil, "morton", "decode")

		assert.Error(t, err)
	})
}

func TestBlocked(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		stdout, _, err := execute(nil, "blocked", writeScene(t))

		require.NoError(t, err)
		assert.Equal(t, "[-2,-2,-2,0,0,0]\n[0,0,0,2,2,2]\n", stdout)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, _, err := execute(nil, "blocked", filepath.Join(t.TempDir(), "nope.yaml"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("LogJSON", func(t *testing.T) {
		path := writeScene(t)

		_, stderr, err := execute(nil, "--log-level", "debug", "--log-json", "blocked", path)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stderr), "\n")
		require.Len(t, lines, 3)
		for _, line := range lines {
			var m map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(line), &m), line)
			assert.Equal(t, path, m["scene"])
			assert.Contains(t, m, "time")
		}
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		_, _, err := execute(nil, "--log-level", "loud", "blocked", writeScene(t))

		assert.ErrorContains(t, err, `invalid --log-level "loud"`)
	})
}

func TestSnapshotInspect(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "scene.svo")

		stdout, stderr, err := execute(nil, "snapshot", writeScene(t), "-o", output)

		require.NoError(t, err)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Wrote snapshot")
		stdout, _, err = execute(nil, "inspect", output)
		require.NoError(t, err)
		assert.Equal(t, testInspect, stdout)
	})

	t.Run("Pipe", func(t *testing.T) {
		stdout, _, err := execute(nil, "--log-level", "disabled", "snapshot", writeScene(t))
		require.NoError(t, err)

		stdout, _, err = execute(strings.NewReader(stdout), "inspect", "-")

		require.NoError(t, err)
		assert.Equal(t, testInspect, stdout)
	})

	t.Run("MarshalErrorRemovesOutput", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "deep.yaml")
		require.NoError(t, os.WriteFile(path, []byte("bounds: { center: [0, 0, 0], extent: [1, 1, 1] }\nmax_depth: 300\n"), 0o600))
		output := filepath.Join(dir, "deep.svo")

		_, _, err := execute(nil, "snapshot", path, "-o", output)

		assert.EqualError(t, err, "snapshot: max depth 300 out of range [1, 255]")
		_, statErr := os.Stat(output)
		assert.ErrorIs(t, statErr, os.ErrNotExist)
	})

	t.Run("NotASnapshot", func(t *testing.T) {
		_, _, err := execute(nil, "inspect", writeScene(t))

		assert.EqualError(t, err, "snapshot: invalid magic number")
	})
}

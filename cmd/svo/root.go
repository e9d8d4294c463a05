// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gogama/svo/internal/scene"
	"github.com/gogama/svo/octree"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app holds the state shared by every subcommand.
type app struct {
	logLevel string
	logJSON  bool
	logger   zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}
	cmd := &cobra.Command{
		Use:          "svo",
		Short:        "Sparse voxel octree tool",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initLogger(cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error, disabled)")
	cmd.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "write logs as JSON lines instead of console text")
	cmd.AddCommand(
		newBlockedCmd(a),
		newSnapshotCmd(a),
		newInspectCmd(a),
		newMortonCmd(a),
	)
	return cmd
}

func (a *app) initLogger(w io.Writer) error {
	level, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	if !a.logJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}
	a.logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return nil
}

// buildScene loads the scene file at path and builds its tree.
func (a *app) buildScene(path string) (*octree.Octree[string], error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	tree, _, err := s.Build(a.logger.With().Str("scene", path).Logger())
	return tree, err
}

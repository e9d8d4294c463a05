// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package scene loads YAML scene files, which describe an octree and a
// script of operations to apply to it.
//
// A scene file looks like this:
//
//	bounds: { center: [0, 0, 0], extent: [8, 8, 8] }
//	max_depth: 3
//	ops:
//	  - insert: [1, 1, 1]
//	    label: crate
//	  - box: { center: [4, 4, 4], extent: [4, 4, 4] }
//	  - remove: [1, 1, 1]
//	  - clear: true
//
// Every op must have exactly one action. The label key is only allowed
// alongside insert.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogama/svo/octree"
	"github.com/golang/geo/r3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Vec is a point or extent written as a YAML sequence of three numbers.
type Vec []float64

func (v Vec) vector() r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}

// BoxSpec is an axis-aligned box given by its center and half-extent.
type BoxSpec struct {
	Center Vec `yaml:"center"`
	Extent Vec `yaml:"extent"`
}

// Box converts b to an octree.Box. It assumes b is valid.
func (b *BoxSpec) Box() octree.Box {
	return octree.Box{Center: b.Center.vector(), Extent: b.Extent.vector()}
}

// Op is one step of a scene script.
type Op struct {
	Insert Vec      `yaml:"insert,omitempty"`
	Label  string   `yaml:"label,omitempty"`
	Box    *BoxSpec `yaml:"box,omitempty"`
	Remove Vec      `yaml:"remove,omitempty"`
	Clear  bool     `yaml:"clear,omitempty"`
}

func (op *Op) numActions() int {
	var n int
	if op.Insert != nil {
		n++
	}
	if op.Box != nil {
		n++
	}
	if op.Remove != nil {
		n++
	}
	if op.Clear {
		n++
	}
	return n
}

// Scene is a parsed scene file.
type Scene struct {
	Bounds   *BoxSpec `yaml:"bounds"`
	MaxDepth int      `yaml:"max_depth"`
	Ops      []Op     `yaml:"ops"`
}

// Result counts the ops applied by Build.
type Result struct {
	// Changed is the number of ops which changed the tree.
	Changed int
	// Unchanged is the number of ops which left the tree as it was.
	Unchanged int
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapErr("failed to read %s", err, path)
	}
	return Parse(b)
}

// Parse parses and validates a scene from YAML. Unknown keys are
// rejected.
func Parse(b []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var s Scene
	if err := dec.Decode(&s); errors.Is(err, io.EOF) {
		return nil, textErr("empty scene")
	} else if err != nil {
		return nil, wrapErr("failed to parse YAML", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that s describes a buildable tree and a well-formed
// script. The returned error wraps ErrInvalid.
func (s *Scene) Validate() error {
	if s.Bounds == nil {
		return wrapErr("missing bounds", ErrInvalid)
	}
	if err := validateBox("bounds", s.Bounds); err != nil {
		return err
	}
	if s.MaxDepth <= 0 {
		return wrapErr("max_depth %d must be greater than 0", ErrInvalid, s.MaxDepth)
	}
	for i := range s.Ops {
		op := &s.Ops[i]
		if n := op.numActions(); n != 1 {
			return wrapErr("op %d has %d actions, want exactly 1", ErrInvalid, i, n)
		}
		if op.Label != "" && op.Insert == nil {
			return wrapErr("op %d: label is only allowed with insert", ErrInvalid, i)
		}
		var err error
		switch {
		case op.Insert != nil:
			err = validateVec(fmt.Sprintf("op %d insert", i), op.Insert)
		case op.Box != nil:
			err = validateBox(fmt.Sprintf("op %d box", i), op.Box)
		case op.Remove != nil:
			err = validateVec(fmt.Sprintf("op %d remove", i), op.Remove)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func validateVec(name string, v Vec) error {
	if len(v) != 3 {
		return wrapErr("%s must have 3 components, has %d", ErrInvalid, name, len(v))
	}
	return nil
}

func validateBox(name string, b *BoxSpec) error {
	if err := validateVec(name+".center", b.Center); err != nil {
		return err
	}
	if err := validateVec(name+".extent", b.Extent); err != nil {
		return err
	}
	for _, e := range b.Extent {
		if e < 0 {
			return wrapErr("%s.extent must not be negative", ErrInvalid, name)
		}
	}
	return nil
}

// Build creates the tree described by s and applies every op in order,
// logging each one at debug level.
func (s *Scene) Build(logger zerolog.Logger) (*octree.Octree[string], Result, error) {
	var r Result
	if err := s.Validate(); err != nil {
		return nil, r, err
	}
	tree, err := octree.New[string](s.Bounds.Box(), s.MaxDepth)
	if err != nil {
		return nil, r, wrapErr("failed to create tree", err)
	}

	for i := range s.Ops {
		op := &s.Ops[i]
		e := logger.Debug().Int("op", i)
		var changed bool
		switch {
		case op.Insert != nil:
			p := op.Insert.vector()
			if op.Label != "" {
				changed = tree.InsertValue(op.Label, p)
				e = e.Str("label", op.Label)
			} else {
				changed = tree.Insert(p)
			}
			e = e.Str("action", "insert").Floats64("point", op.Insert)
		case op.Box != nil:
			changed = tree.InsertBox(op.Box.Box())
			e = e.Str("action", "box").Stringer("region", op.Box.Box())
		case op.Remove != nil:
			changed = tree.Remove(op.Remove.vector())
			e = e.Str("action", "remove").Floats64("point", op.Remove)
		case op.Clear:
			changed = len(tree.BlockedBounds()) > 0
			tree.Clear()
			e = e.Str("action", "clear")
		}
		if changed {
			r.Changed++
		} else {
			r.Unchanged++
		}
		if e.Enabled() {
			e.Bool("changed", changed).Int("nodes", tree.NodeCount()).Msg("Applied op")
		}
	}

	logger.Info().
		Int("ops", len(s.Ops)).
		Int("changed", r.Changed).
		Int("unchanged", r.Unchanged).
		Int("nodes", tree.NodeCount()).
		Msg("Built scene")
	return tree, r, nil
}

// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/gogama/svo/snapshot"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "snapshot SCENE",
		Short: "Build a scene and write a snapshot of its blocked cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			tree, err := a.buildScene(args[0])
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "-" {
				var f *os.File
				if f, err = os.Create(output); err != nil {
					return err
				}
				defer func() {
					if closeErr := f.Close(); err == nil {
						err = closeErr
					}
					if err != nil {
						_ = os.Remove(output)
					}
				}()
				w = f
			}

			n, err := snapshot.Marshal(w, tree)
			if err != nil {
				return err
			}
			a.logger.Info().
				Str("output", output).
				Int("bytes", n).
				Int("cells", len(tree.BlockedBounds())).
				Msg("Wrote snapshot")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, or - for stdout")
	return cmd
}

// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBlockedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blocked SCENE",
		Short: "Print the blocked boxes of a scene, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.buildScene(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, b := range tree.BlockedBounds() {
				fmt.Fprintln(w, b)
			}
			return nil
		},
	}
}

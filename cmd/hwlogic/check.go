// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/db47h/hwlogic/hwlib"
	"github.com/db47h/hwlogic/vectors"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Run test vector scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, name := range args {
				s, err := vectors.LoadFile(name)
				if err != nil {
					return err
				}
				if workers > 0 {
					s.Workers = workers
				}
				start := time.Now()
				r, err := s.Run(cmd.Context(), hwlib.Lookup)
				if err != nil {
					return errors.Wrap(err, name)
				}
				logf("%s: %d vectors in %v", name, r.Vectors, time.Since(start))
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, r)
				if !r.OK() {
					failed++
				}
			}
			if failed > 0 {
				return errors.Errorf("%d of %d scripts failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "override the number of workers of each script")
	return cmd
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	hw "github.com/db47h/hwlogic"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func groupBits(v []bool, groups [][]int) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		b := make([]bool, len(g))
		for j, pin := range g {
			b[j] = v[pin]
		}
		out[i] = hw.Bits(b)
	}
	return out
}

func writeTable(w io.Writer, p *hw.PartSpec) error {
	if len(p.Inputs) > hw.MaxTableInputs {
		return errors.Errorf("%s has %d input pins, truth tables are limited to %d", p.Name, len(p.Inputs), hw.MaxTableInputs)
	}
	inDecls, inGroups := hw.Buses(p.Inputs)
	outDecls, outGroups := hw.Buses(p.Outputs)

	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "%s\t|\t%s\n", strings.Join(inDecls, "\t"), strings.Join(outDecls, "\t"))
	in := make([]bool, len(p.Inputs))
	for i := 0; i < 1<<uint(len(in)); i++ {
		hw.SetInt(in, int64(i))
		out, err := p.Run(in)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t|\t%s\n", strings.Join(groupBits(in, inGroups), "\t"), strings.Join(groupBits(out, outGroups), "\t"))
	}
	return tw.Flush()
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table CHIP",
		Short: "Print the truth table of a chip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookup(args[0])
			if err != nil {
				return err
			}
			return writeTable(cmd.OutOrStdout(), p)
		},
	}
}

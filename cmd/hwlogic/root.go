// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"strings"
	"text/tabwriter"

	hw "github.com/db47h/hwlogic"
	"github.com/db47h/hwlogic/hwlib"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var verbose bool

func logf(format string, args ...interface{}) {
	if verbose {
		log.Printf(format, args...)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hwlogic",
		Short:         "Evaluate combinational chips built from NAND gates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output on stderr")
	root.AddCommand(
		newPartsCmd(),
		newEvalCmd(),
		newALUCmd(),
		newTableCmd(),
		newCheckCmd(),
	)
	return root
}

func lookup(name string) (*hw.PartSpec, error) {
	p := hwlib.Lookup(name)
	if p == nil {
		return nil, errors.Errorf("unknown chip %q (try \"hwlogic parts\")", name)
	}
	return p, nil
}

func newPartsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parts",
		Short: "List available chips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "CHIP\tIN\tOUT")
			for _, n := range hwlib.Names() {
				p := hwlib.Lookup(n)
				in, _ := hw.Buses(p.Inputs)
				out, _ := hw.Buses(p.Outputs)
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, strings.Join(in, ", "), strings.Join(out, ", "))
			}
			return w.Flush()
		},
	}
}

// printOutputs prints the outputs of p, one line per pin or bus.
func printOutputs(w io.Writer, p *hw.PartSpec, out []bool) {
	decls, groups := hw.Buses(p.Outputs)
	for i, d := range decls {
		bits := make([]bool, len(groups[i]))
		for j, pin := range groups[i] {
			bits[j] = out[pin]
		}
		if len(bits) == 1 {
			fmt.Fprintf(w, "%s = %v\n", d, bits[0])
			continue
		}
		fmt.Fprintf(w, "%s = %s (%d)\n", d, hw.Bits(bits), hw.Int(bits))
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval CHIP [pin=value...]",
		Short: "Evaluate a chip",
		Long: `Evaluate a chip for the given input values.

Pins can be selected by name (sel), bus name (a), index (a[3]) or range
(a[0..7]). Values are binary strings of the exact pin group width, integers
(42, -1, 0x8000) or true/false. Unassigned inputs are false.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookup(args[0])
			if err != nil {
				return err
			}
			in := make([]bool, len(p.Inputs))
			for _, a := range args[1:] {
				kv := strings.SplitN(a, "=", 2)
				if len(kv) != 2 {
					return errors.Errorf("invalid assignment %q, expected pin=value", a)
				}
				if err = p.Assign(in, strings.TrimSpace(kv[0]), kv[1]); err != nil {
					return err
				}
			}
			logf("%s: inputs %s", p.Name, hw.Bits(in))
			out, err := p.Run(in)
			if err != nil {
				return err
			}
			printOutputs(cmd.OutOrStdout(), p, out)
			return nil
		},
	}
}

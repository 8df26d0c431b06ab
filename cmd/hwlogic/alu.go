// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	hw "github.com/db47h/hwlogic"
	"github.com/db47h/hwlogic/hwlib"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func parseBus16(name, s string) (hw.Bus16, error) {
	var b hw.Bus16
	bits, err := hw.ParseBits(s, 16)
	if err != nil {
		return b, errors.Wrap(err, name)
	}
	copy(b[:], bits)
	return b, nil
}

func newALUCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "alu OP X Y",
		Short: "Run an ALU operation",
		Long: `Run an ALU operation on two 16 bits values.

OP is one of 0, 1, -1, x, y, !x, !y, -x, -y, x+1, y+1, x-1, y-1, x+y, x-y,
y-x, x&y, x|y or a control word of 6 bits in zx, nx, zy, ny, f, no order.
With --all, OP is omitted and every operation is listed. Operations and
values starting with a dash must follow a -- separator:

	hwlogic alu -- -x 5 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if all {
				if len(args) != 2 {
					return errors.New("expected X and Y")
				}
				x, err := parseBus16("x", args[0])
				if err != nil {
					return err
				}
				y, err := parseBus16("y", args[1])
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
				fmt.Fprintln(tw, "OP\tCONTROL\tOUT\t\tZR\tNG")
				for _, n := range hwlib.OpNames() {
					c, _ := hwlib.Op(n)
					out, zr, ng := c.Eval(x, y)
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%v\t%v\n", n, c, out, out.Int(), zr, ng)
				}
				return tw.Flush()
			}

			if len(args) != 3 {
				return errors.New("expected OP, X and Y")
			}
			c, err := hwlib.Op(args[0])
			if err != nil {
				return err
			}
			x, err := parseBus16("x", args[1])
			if err != nil {
				return err
			}
			y, err := parseBus16("y", args[2])
			if err != nil {
				return err
			}
			logf("alu %s: control %s", args[0], c)
			out, zr, ng := c.Eval(x, y)
			fmt.Fprintf(w, "out = %s (%d)\nzr = %v\nng = %v\n", out, out.Int(), zr, ng)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "list all operations")
	return cmd
}

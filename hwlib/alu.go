// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"sort"
	"strings"

	hw "github.com/db47h/hwlogic"
	"github.com/pkg/errors"
)

// ALU returns the outputs of the Hack ALU.
//
//	Inputs: x[16], y[16], zx, nx, zy, ny, f, no
//	Outputs: out[16], zr, ng
//	Function: if zx { x = 0 }
//	          if nx { x = !x }
//	          if zy { y = 0 }
//	          if ny { y = !y }
//	          if f { out = x + y } else { out = x & y }
//	          if no { out = !out }
//	          zr = out == 0
//	          ng = out < 0
//
func ALU(x, y hw.Bus16, zx, nx, zy, ny, f, no bool) (out hw.Bus16, zr, ng bool) {
	var zero hw.Bus16
	x = Mux16(x, zero, zx)
	x = Mux16(x, Not16(x), nx)
	y = Mux16(y, zero, zy)
	y = Mux16(y, Not16(y), ny)

	out = Mux16(And16(x, y), Add16(x, y), f)
	out = Mux16(out, Not16(out), no)

	return out, Not(Or16Way(out)), out[0]
}

// Control is the set of control bits of the ALU.
//
type Control struct {
	ZX, NX, ZY, NY, F, NO bool
}

// Eval runs the ALU with control bits c.
//
func (c Control) Eval(x, y hw.Bus16) (out hw.Bus16, zr, ng bool) {
	return ALU(x, y, c.ZX, c.NX, c.ZY, c.NY, c.F, c.NO)
}

func (c Control) bits() []bool {
	return []bool{c.ZX, c.NX, c.ZY, c.NY, c.F, c.NO}
}

// String returns the control bits as a binary string in zx, nx, zy, ny, f, no
// order.
//
func (c Control) String() string {
	return hw.Bits(c.bits())
}

// ParseControl parses a control word as returned by Control.String.
//
func ParseControl(s string) (Control, error) {
	s = strings.Replace(s, " ", "", -1)
	if len(s) != 6 || strings.Trim(s, "01") != "" {
		return Control{}, errors.Errorf("invalid control word %q: need 6 binary digits", s)
	}
	return Control{s[0] == '1', s[1] == '1', s[2] == '1', s[3] == '1', s[4] == '1', s[5] == '1'}, nil
}

func ctl(s string) Control {
	c, err := ParseControl(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ops maps the names of the operations computed by the Hack ALU to their
// control bits.
var ops = map[string]Control{
	"0":   ctl("101010"),
	"1":   ctl("111111"),
	"-1":  ctl("111010"),
	"x":   ctl("001100"),
	"y":   ctl("110000"),
	"!x":  ctl("001101"),
	"!y":  ctl("110001"),
	"-x":  ctl("001111"),
	"-y":  ctl("110011"),
	"x+1": ctl("011111"),
	"y+1": ctl("110111"),
	"x-1": ctl("001110"),
	"y-1": ctl("110010"),
	"x+y": ctl("000010"),
	"x-y": ctl("010011"),
	"y-x": ctl("000111"),
	"x&y": ctl("000000"),
	"x|y": ctl("010101"),
}

// Op returns the control bits for the named operation. name can also be a 6
// bits control word.
//
func Op(name string) (Control, error) {
	n := strings.ToLower(strings.Replace(name, " ", "", -1))
	if c, ok := ops[n]; ok {
		return c, nil
	}
	if c, err := ParseControl(n); err == nil {
		return c, nil
	}
	return Control{}, errors.Errorf("unknown ALU operation %q", name)
}

// OpNames returns the names of all operations known to Op, sorted.
//
func OpNames() []string {
	names := make([]string, 0, len(ops))
	for n := range ops {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

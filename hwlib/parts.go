// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strings"

	hw "github.com/db47h/hwlogic"
)

func newPart(name, inputs, outputs string, eval hw.EvalFn) *hw.PartSpec {
	return &hw.PartSpec{
		Name:    name,
		Inputs:  hw.IO(inputs),
		Outputs: hw.IO(outputs),
		Eval:    eval,
	}
}

func bus4(in []bool) (b hw.Bus4)   { copy(b[:], in); return b }
func bus8(in []bool) (b hw.Bus8)   { copy(b[:], in); return b }
func bus16(in []bool) (b hw.Bus16) { copy(b[:], in); return b }

func gate(name string, fn func(a, b bool) bool) *hw.PartSpec {
	return newPart(name, "a, b", "out", func(in []bool) []bool {
		return []bool{fn(in[0], in[1])}
	})
}

var parts = []*hw.PartSpec{
	gate("Nand", Nand),
	newPart("Not", "in", "out", func(in []bool) []bool { return []bool{Not(in[0])} }),
	gate("And", And),
	gate("Or", Or),
	gate("Xor", Xor),
	newPart("Mux", "a, b, sel", "out", func(in []bool) []bool {
		return []bool{Mux(in[0], in[1], in[2])}
	}),
	newPart("DMux", "in, sel", "out[2]", func(in []bool) []bool {
		o := DMux(in[0], in[1])
		return o[:]
	}),

	newPart("Not4", "in[4]", "out[4]", func(in []bool) []bool { o := Not4(bus4(in)); return o[:] }),
	newPart("Not8", "in[8]", "out[8]", func(in []bool) []bool { o := Not8(bus8(in)); return o[:] }),
	newPart("Not16", "in[16]", "out[16]", func(in []bool) []bool { o := Not16(bus16(in)); return o[:] }),
	newPart("And4", "a[4], b[4]", "out[4]", func(in []bool) []bool { o := And4(bus4(in), bus4(in[4:])); return o[:] }),
	newPart("And8", "a[8], b[8]", "out[8]", func(in []bool) []bool { o := And8(bus8(in), bus8(in[8:])); return o[:] }),
	newPart("And16", "a[16], b[16]", "out[16]", func(in []bool) []bool { o := And16(bus16(in), bus16(in[16:])); return o[:] }),
	newPart("Or4", "a[4], b[4]", "out[4]", func(in []bool) []bool { o := Or4(bus4(in), bus4(in[4:])); return o[:] }),
	newPart("Or8", "a[8], b[8]", "out[8]", func(in []bool) []bool { o := Or8(bus8(in), bus8(in[8:])); return o[:] }),
	newPart("Or16", "a[16], b[16]", "out[16]", func(in []bool) []bool { o := Or16(bus16(in), bus16(in[16:])); return o[:] }),
	newPart("Xor4", "a[4], b[4]", "out[4]", func(in []bool) []bool { o := Xor4(bus4(in), bus4(in[4:])); return o[:] }),
	newPart("Xor8", "a[8], b[8]", "out[8]", func(in []bool) []bool { o := Xor8(bus8(in), bus8(in[8:])); return o[:] }),
	newPart("Xor16", "a[16], b[16]", "out[16]", func(in []bool) []bool { o := Xor16(bus16(in), bus16(in[16:])); return o[:] }),
	newPart("Mux4", "a[4], b[4], sel", "out[4]", func(in []bool) []bool { o := Mux4(bus4(in), bus4(in[4:]), in[8]); return o[:] }),
	newPart("Mux8", "a[8], b[8], sel", "out[8]", func(in []bool) []bool { o := Mux8(bus8(in), bus8(in[8:]), in[16]); return o[:] }),
	newPart("Mux16", "a[16], b[16], sel", "out[16]", func(in []bool) []bool { o := Mux16(bus16(in), bus16(in[16:]), in[32]); return o[:] }),

	newPart("Or8Way", "in[8]", "out", func(in []bool) []bool { return []bool{Or8Way(bus8(in))} }),
	newPart("And8Way", "in[8]", "out", func(in []bool) []bool { return []bool{And8Way(bus8(in))} }),
	newPart("Or16Way", "in[16]", "out", func(in []bool) []bool { return []bool{Or16Way(bus16(in))} }),
	newPart("Mux4Way16", "a[16], b[16], c[16], d[16], sel[2]", "out[16]", func(in []bool) []bool {
		o := Mux4Way16(bus16(in), bus16(in[16:]), bus16(in[32:]), bus16(in[48:]), hw.Sel2{in[64], in[65]})
		return o[:]
	}),
	newPart("Mux8Way16", "a[16], b[16], c[16], d[16], e[16], f[16], g[16], h[16], sel[3]", "out[16]", func(in []bool) []bool {
		o := Mux8Way16(bus16(in), bus16(in[16:]), bus16(in[32:]), bus16(in[48:]),
			bus16(in[64:]), bus16(in[80:]), bus16(in[96:]), bus16(in[112:]),
			hw.Sel3{in[128], in[129], in[130]})
		return o[:]
	}),
	newPart("DMux4Way", "in, sel[2]", "out[4]", func(in []bool) []bool {
		o := DMux4Way(in[0], hw.Sel2{in[1], in[2]})
		return o[:]
	}),
	newPart("DMux8Way", "in, sel[3]", "out[8]", func(in []bool) []bool {
		o := DMux8Way(in[0], hw.Sel3{in[1], in[2], in[3]})
		return o[:]
	}),

	newPart("HalfAdder", "a, b", "carry, sum", func(in []bool) []bool {
		c, s := HalfAdder(in[0], in[1])
		return []bool{c, s}
	}),
	newPart("FullAdder", "a, b, c", "carry, sum", func(in []bool) []bool {
		c, s := FullAdder(in[0], in[1], in[2])
		return []bool{c, s}
	}),
	newPart("Add4", "a[4], b[4]", "out[4]", func(in []bool) []bool { o := Add4(bus4(in), bus4(in[4:])); return o[:] }),
	newPart("Add8", "a[8], b[8]", "out[8]", func(in []bool) []bool { o := Add8(bus8(in), bus8(in[8:])); return o[:] }),
	newPart("Add16", "a[16], b[16]", "out[16]", func(in []bool) []bool { o := Add16(bus16(in), bus16(in[16:])); return o[:] }),
	newPart("Inc4", "in[4]", "out[4]", func(in []bool) []bool { o := Inc4(bus4(in)); return o[:] }),
	newPart("Inc8", "in[8]", "out[8]", func(in []bool) []bool { o := Inc8(bus8(in)); return o[:] }),
	newPart("Inc16", "in[16]", "out[16]", func(in []bool) []bool { o := Inc16(bus16(in)); return o[:] }),

	newPart("ALU", "x[16], y[16], zx, nx, zy, ny, f, no", "out[16], zr, ng", func(in []bool) []bool {
		c := in[32:]
		o, zr, ng := ALU(bus16(in), bus16(in[16:]), c[0], c[1], c[2], c[3], c[4], c[5])
		return append(o[:], zr, ng)
	}),
}

var partIndex = func() map[string]*hw.PartSpec {
	m := make(map[string]*hw.PartSpec, len(parts))
	for _, p := range parts {
		m[strings.ToLower(p.Name)] = p
	}
	return m
}()

// Lookup returns a copy of the PartSpec of the named chip, or nil if there is
// no such chip. Names are case insensitive.
//
func Lookup(name string) *hw.PartSpec {
	p := partIndex[strings.ToLower(strings.TrimSpace(name))]
	if p == nil {
		return nil
	}
	c := *p
	c.Inputs = append([]string(nil), p.Inputs...)
	c.Outputs = append([]string(nil), p.Outputs...)
	return &c
}

// Names returns the names of all chips in the library, from the lowest layer
// (Nand) up to the ALU.
//
func Names() []string {
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = p.Name
	}
	return names
}

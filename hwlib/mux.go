// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import hw "github.com/db47h/hwlogic"

// Or8Way returns the output of an 8-Way OR gate.
//
//	Inputs: in[8]
//	Outputs: out
//	Function: out = in[0] || in[1] || in[2] || ... || in[7]
//
func Or8Way(in hw.Bus8) bool {
	return Or(
		Or(Or(in[0], in[1]), Or(in[2], in[3])),
		Or(Or(in[4], in[5]), Or(in[6], in[7])),
	)
}

// And8Way returns the output of an 8-Way AND gate.
//
//	Inputs: in[8]
//	Outputs: out
//	Function: out = in[0] && in[1] && in[2] && ... && in[7]
//
func And8Way(in hw.Bus8) bool {
	return And(
		And(And(in[0], in[1]), And(in[2], in[3])),
		And(And(in[4], in[5]), And(in[6], in[7])),
	)
}

// Or16Way returns the output of a 16-Way OR gate.
//
//	Inputs: in[16]
//	Outputs: out
//	Function: out = in[0] || in[1] || in[2] || ... || in[15]
//
func Or16Way(in hw.Bus16) bool {
	var hi, lo hw.Bus8
	copy(hi[:], in[:8])
	copy(lo[:], in[8:])
	return Or(Or8Way(hi), Or8Way(lo))
}

// Mux4Way16 returns the output of a 4-Way 16 bits multiplexer.
//
//	Inputs: a[16], b[16], c[16], d[16], sel[2]
//	Outputs: out[16]
//	Function: sel 00 => a, 01 => b, 10 => c, 11 => d
//
// sel[0] is the most significant selector bit.
//
func Mux4Way16(a, b, c, d hw.Bus16, sel hw.Sel2) hw.Bus16 {
	return Mux16(Mux16(a, b, sel[1]), Mux16(c, d, sel[1]), sel[0])
}

// Mux8Way16 returns the output of an 8-Way 16 bits multiplexer.
//
//	Inputs: a[16], b[16], c[16], d[16], e[16], f[16], g[16], h[16], sel[3]
//	Outputs: out[16]
//	Function: sel 000 => a, 001 => b, 010 => c, ..., 111 => h
//
func Mux8Way16(a, b, c, d, e, f, g, h hw.Bus16, sel hw.Sel3) hw.Bus16 {
	low := hw.Sel2{sel[1], sel[2]}
	return Mux16(Mux4Way16(a, b, c, d, low), Mux4Way16(e, f, g, h, low), sel[0])
}

// DMux4Way returns the outputs of a 4-Way demultiplexer.
//
//	Inputs: in, sel[2]
//	Outputs: out[4]
//	Function: sel 00 => out = 000in, 01 => 00in0, 10 => 0in00, 11 => in000
//
// in is routed to the output bit of weight 1 << sel. Since index 0 is the
// most significant bit, this is out[3-sel].
//
func DMux4Way(in bool, sel hw.Sel2) hw.Bus4 {
	n0, n1 := Not(sel[0]), Not(sel[1])
	return hw.Bus4{
		DMux(in, Or(n0, n1))[1],
		DMux(in, Or(n0, sel[1]))[1],
		DMux(in, Or(sel[0], n1))[1],
		DMux(in, Or(sel[0], sel[1]))[1],
	}
}

// DMux8Way returns the outputs of an 8-Way demultiplexer.
//
//	Inputs: in, sel[3]
//	Outputs: out[8]
//	Function: out[7-sel] = in, all other outputs are 0.
//
func DMux8Way(in bool, sel hw.Sel3) hw.Bus8 {
	n0, n1, n2 := Not(sel[0]), Not(sel[1]), Not(sel[2])
	// sel[0..1] decoders, true when the selected pair does NOT match.
	m11 := Or(n0, n1)
	m10 := Or(n0, sel[1])
	m01 := Or(sel[0], n1)
	m00 := Or(sel[0], sel[1])
	return hw.Bus8{
		DMux(in, Or(m11, n2))[1],
		DMux(in, Or(m11, sel[2]))[1],
		DMux(in, Or(m10, n2))[1],
		DMux(in, Or(m10, sel[2]))[1],
		DMux(in, Or(m01, n2))[1],
		DMux(in, Or(m01, sel[2]))[1],
		DMux(in, Or(m00, n2))[1],
		DMux(in, Or(m00, sel[2]))[1],
	}
}

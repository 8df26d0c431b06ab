// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import hw "github.com/db47h/hwlogic"

// HalfAdder returns the outputs of a half adder.
//
//	Inputs: a, b
//	Outputs: carry, sum
//	Function: sum = lsb(a + b)
//	          carry = msb(a + b)
//
func HalfAdder(a, b bool) (carry, sum bool) {
	return And(a, b), Xor(a, b)
}

// FullAdder returns the outputs of a full adder.
//
//	Inputs: a, b, c
//	Outputs: carry, sum
//	Function: sum = lsb(a + b + c)
//	          carry = msb(a + b + c)
//
// The two half adder carries can never be both true, so an Or is enough to
// merge them.
//
func FullAdder(a, b, c bool) (carry, sum bool) {
	c0, s0 := HalfAdder(a, b)
	c1, sum := HalfAdder(s0, c)
	return Or(c0, c1), sum
}

// ripple adds a and b into out, propagating the carry from the last index
// (lsb) to index 0 (msb). The final carry is dropped.
//
func ripple(a, b, out []bool) {
	var c bool
	for i := len(out) - 1; i >= 0; i-- {
		c, out[i] = FullAdder(a[i], b[i], c)
	}
}

// Add4 returns the output of a 4 bits adder.
//
//	Inputs: a[4], b[4]
//	Outputs: out[4]
//	Function: out = a + b
//
// There is no carry output: the result wraps around modulo 2^4.
//
func Add4(a, b hw.Bus4) (out hw.Bus4) {
	ripple(a[:], b[:], out[:])
	return out
}

// Add8 returns the output of an 8 bits adder. The result wraps around modulo
// 2^8.
//
func Add8(a, b hw.Bus8) (out hw.Bus8) {
	ripple(a[:], b[:], out[:])
	return out
}

// Add16 returns the output of a 16 bits adder.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: out = a + b
//
// There is no carry output: the result wraps around modulo 2^16, which is
// also two's complement addition.
//
func Add16(a, b hw.Bus16) (out hw.Bus16) {
	ripple(a[:], b[:], out[:])
	return out
}

var (
	one4  = hw.Bus4{3: true}
	one8  = hw.Bus8{7: true}
	one16 = hw.Bus16{15: true}
)

// Inc4 returns a + 1, modulo 2^4.
//
func Inc4(a hw.Bus4) hw.Bus4 { return Add4(a, one4) }

// Inc8 returns a + 1, modulo 2^8.
//
func Inc8(a hw.Bus8) hw.Bus8 { return Add8(a, one8) }

// Inc16 returns the output of a 16 bits incrementer.
//
//	Inputs: in[16]
//	Outputs: out[16]
//	Function: out = in + 1
//
func Inc16(a hw.Bus16) hw.Bus16 { return Add16(a, one16) }

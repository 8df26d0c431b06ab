// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import hw "github.com/db47h/hwlogic"

// Not4 returns a 4 bits NOT gate output.
//
//	Inputs: in[4]
//	Outputs: out[4]
//	Function: for i := range out { out[i] = !in[i] }
//
func Not4(in hw.Bus4) (out hw.Bus4) {
	for i := range in {
		out[i] = Not(in[i])
	}
	return out
}

// Not8 returns an 8 bits NOT gate output.
//
func Not8(in hw.Bus8) (out hw.Bus8) {
	for i := range in {
		out[i] = Not(in[i])
	}
	return out
}

// Not16 returns a 16 bits NOT gate output.
//
//	Inputs: in[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = !in[i] }
//
func Not16(in hw.Bus16) (out hw.Bus16) {
	for i := range in {
		out[i] = Not(in[i])
	}
	return out
}

// And4 returns a 4 bits AND gate output.
//
//	Inputs: a[4], b[4]
//	Outputs: out[4]
//	Function: for i := range out { out[i] = a[i] && b[i] }
//
func And4(a, b hw.Bus4) (out hw.Bus4) {
	for i := range a {
		out[i] = And(a[i], b[i])
	}
	return out
}

// And8 returns an 8 bits AND gate output.
//
func And8(a, b hw.Bus8) (out hw.Bus8) {
	for i := range a {
		out[i] = And(a[i], b[i])
	}
	return out
}

// And16 returns a 16 bits AND gate output.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = a[i] && b[i] }
//
func And16(a, b hw.Bus16) (out hw.Bus16) {
	for i := range a {
		out[i] = And(a[i], b[i])
	}
	return out
}

// Or4 returns a 4 bits OR gate output.
//
//	Inputs: a[4], b[4]
//	Outputs: out[4]
//	Function: for i := range out { out[i] = a[i] || b[i] }
//
func Or4(a, b hw.Bus4) (out hw.Bus4) {
	for i := range a {
		out[i] = Or(a[i], b[i])
	}
	return out
}

// Or8 returns an 8 bits OR gate output.
//
func Or8(a, b hw.Bus8) (out hw.Bus8) {
	for i := range a {
		out[i] = Or(a[i], b[i])
	}
	return out
}

// Or16 returns a 16 bits OR gate output.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = a[i] || b[i] }
//
func Or16(a, b hw.Bus16) (out hw.Bus16) {
	for i := range a {
		out[i] = Or(a[i], b[i])
	}
	return out
}

// Xor4 returns a 4 bits XOR gate output.
//
//	Inputs: a[4], b[4]
//	Outputs: out[4]
//	Function: for i := range out { out[i] = a[i] != b[i] }
//
func Xor4(a, b hw.Bus4) (out hw.Bus4) {
	for i := range a {
		out[i] = Xor(a[i], b[i])
	}
	return out
}

// Xor8 returns an 8 bits XOR gate output.
//
func Xor8(a, b hw.Bus8) (out hw.Bus8) {
	for i := range a {
		out[i] = Xor(a[i], b[i])
	}
	return out
}

// Xor16 returns a 16 bits XOR gate output.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = a[i] != b[i] }
//
func Xor16(a, b hw.Bus16) (out hw.Bus16) {
	for i := range a {
		out[i] = Xor(a[i], b[i])
	}
	return out
}

// Mux4 returns a 4 bits Mux output.
//
//	Inputs: a[4], b[4], sel
//	Outputs: out[4]
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux4(a, b hw.Bus4, sel bool) (out hw.Bus4) {
	for i := range a {
		out[i] = Mux(a[i], b[i], sel)
	}
	return out
}

// Mux8 returns an 8 bits Mux output.
//
func Mux8(a, b hw.Bus8, sel bool) (out hw.Bus8) {
	for i := range a {
		out[i] = Mux(a[i], b[i], sel)
	}
	return out
}

// Mux16 returns a 16 bits Mux output.
//
//	Inputs: a[16], b[16], sel
//	Outputs: out[16]
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux16(a, b hw.Bus16, sel bool) (out hw.Bus16) {
	for i := range a {
		out[i] = Mux(a[i], b[i], sel)
	}
	return out
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

// Not returns a NOT gate output.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not(in bool) bool {
	return Nand(in, in)
}

// And returns a AND gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And(a, b bool) bool {
	return Not(Nand(a, b))
}

// Or returns a OR gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or(a, b bool) bool {
	return Not(And(Not(a), Not(b)))
}

// Xor returns a XOR gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
//
func Xor(a, b bool) bool {
	return Not(And(Or(Not(a), b), Or(a, Not(b))))
}

// Mux returns a multiplexer output.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(a, b, sel bool) bool {
	return Not(Xor(Or(sel, a), Or(Not(sel), b)))
}

// DMux returns the outputs of a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: out[2]
//	Function: if sel == 0 { out = {0, in} } else { out = {in, 0} }
//
// Index 0 of the output is the most significant bit, so that DMux(true, sel)
// reads as the binary value 1 << sel.
//
func DMux(in, sel bool) [2]bool {
	return [2]bool{
		Not(Xor(sel, Or(Not(sel), in))),
		Not(Xor(Not(sel), Or(sel, in))),
	}
}

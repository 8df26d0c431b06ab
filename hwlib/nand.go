// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of combinational chips built from a single
// NAND gate.
//
// Every function in this package is implemented only in terms of Nand and of
// functions defined before it, in this order: scalar gates, bus gates, wide
// selectors, adders and the ALU. All functions are pure and safe for
// concurrent use.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

// Nand returns a NAND gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
// This is the only gate not built out of other gates.
//
func Nand(a, b bool) bool {
	return !(a && b)
}

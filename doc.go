// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hwlogic provides the data model shared by the hwlogic packages: single
bits, fixed width buses and selectors, and the PartSpec descriptor used to
expose a combinational chip with named pins.

The logic itself lives in package hwlib, where every chip, from a NOT gate up
to a 16 bits ALU, is built out of a single NAND primitive by plain function
composition.

Buses are Go arrays of bool. Index 0 is the most significant bit:

	b := hwlogic.Bus4FromInt(2) // Bus4{false, false, true, false}
	b.String()                 // "0010"

Distinct array types per width make width mismatches compile errors.
*/
package hwlogic

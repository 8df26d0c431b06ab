// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"testing"

	"github.com/db47h/hwlogic"
)

// TruthTable checks the full truth table of part. result holds one row per
// output pin, indexed by input vector as set by Inputs: the last input pin is
// the lsb of the row index.
//
func TruthTable(t testing.TB, part *hwlogic.PartSpec, result [][]bool) {
	t.Helper()
	if len(part.Inputs) > hwlogic.MaxTableInputs {
		t.Fatalf("%s: %d input pins, truth tables are limited to %d", part.Name, len(part.Inputs), hwlogic.MaxTableInputs)
	}
	if len(result) != len(part.Outputs) {
		t.Fatalf("%s: got %d result rows, expected %d", part.Name, len(result), len(part.Outputs))
	}
	inputs := make([]bool, len(part.Inputs))
	tot := 1 << uint(len(part.Inputs))
	for o := range result {
		if len(result[o]) != tot {
			t.Fatalf("%s: result row %d has %d entries, expected %d", part.Name, o, len(result[o]), tot)
		}
	}
	for i := 0; i < tot; i++ {
		Inputs(inputs, uint64(i))
		outputs, err := part.Run(inputs)
		if err != nil {
			t.Fatal(err)
		}
		for o, out := range outputs {
			if exp := result[o][i]; exp != out {
				t.Errorf("%s:\nExpected %s => %s=%v\nGot %v", part.Name,
					inputString(part.Inputs, inputs), part.Outputs[o], exp, out)
			}
		}
	}
}

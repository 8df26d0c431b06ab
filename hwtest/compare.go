// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing chips.
//
package hwtest

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/hwlogic"
)

// Inputs sets in to the bits of v, in[len(in)-1] being the lsb.
//
func Inputs(in []bool, v uint64) {
	for bit := range in {
		in[len(in)-bit-1] = v&(1<<uint(bit)) != 0
	}
}

func inputString(names []string, in []bool) string {
	var b strings.Builder
	for i, n := range names {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteRune('=')
		if in[i] {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	}
	return b.String()
}

// ComparePart compares the outputs of part with those of the reference
// model ref, given the same inputs. ref must return as many values as part has
// outputs.
//
// If part has at most hwlogic.MaxTableInputs inputs, all input combinations
// are tested. Otherwise part is tested with all inputs at 0, all inputs at 1
// and 1<<hwlogic.MaxTableInputs random inputs.
//
func ComparePart(t testing.TB, part *hwlogic.PartSpec, ref hwlogic.EvalFn) {
	t.Helper()

	inputs := make([]bool, len(part.Inputs))

	check := func() bool {
		got, err := part.Run(inputs)
		if err != nil {
			t.Fatal(err)
		}
		exp := ref(inputs)
		if len(exp) != len(got) {
			t.Fatalf("%s: reference model returned %d outputs, expected %d", part.Name, len(exp), len(got))
		}
		for o := range got {
			if got[o] != exp[o] {
				t.Errorf("%s:\nExpected %s => %s=%v\nGot %v", part.Name,
					inputString(part.Inputs, inputs), part.Outputs[o], exp[o], got[o])
				return false
			}
		}
		return true
	}

	start := time.Now()
	n := 0
	if len(inputs) <= hwlogic.MaxTableInputs {
		tot := uint64(1) << uint(len(inputs))
		for i := uint64(0); i < tot; i++ {
			Inputs(inputs, i)
			n++
			if !check() {
				return
			}
		}
	} else {
		seed := time.Now().UnixNano()
		rnd := rand.New(rand.NewSource(seed))

		// try all 0, then all 1
		n += 2
		if !check() {
			return
		}
		for in := range inputs {
			inputs[in] = true
		}
		if !check() {
			return
		}

		for i := 0; i < 1<<hwlogic.MaxTableInputs; i++ {
			for in := range inputs {
				inputs[in] = rnd.Int63()&(1<<62) != 0
			}
			n++
			if !check() {
				t.Logf("random seed: %d", seed)
				return
			}
		}
	}
	t.Logf("%s: %d input vectors in %v", part.Name, n, time.Since(start))
}

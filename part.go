// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlogic

import (
	"strings"

	"github.com/pkg/errors"
)

// MaxTableInputs is the maximum number of input pins of a part for which
// every input combination is enumerated, as in truth tables.
//
const MaxTableInputs = 12

// An EvalFn evaluates a chip. It receives the input pin values in the order
// of PartSpec.Inputs and returns the output pin values in the order of
// PartSpec.Outputs.
//
type EvalFn func(in []bool) []bool

// A PartSpec describes a combinational chip with named pins.
//
// Custom parts are declared like this:
//
//	notSpec := &hwlogic.PartSpec{
//		Name:    "Not",
//		Inputs:  hwlogic.IO("in"),
//		Outputs: hwlogic.IO("out"),
//		Eval: func(in []bool) []bool {
//			return []bool{hwlib.Not(in[0])}
//		}}
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct pin names.
	// Use the IO() function to expand an input description like
	// "a, b, bus[2]" to []string{"a", "b", "bus[0]", "bus[1]"}
	Inputs []string
	// Output pin names. Must be distinct pin names.
	Outputs []string

	Eval EvalFn
}

// Run evaluates p for the given inputs.
//
func (p *PartSpec) Run(in []bool) ([]bool, error) {
	if len(in) != len(p.Inputs) {
		return nil, errors.Errorf("%s: got %d input values, expected %d", p.Name, len(in), len(p.Inputs))
	}
	out := p.Eval(in)
	if len(out) != len(p.Outputs) {
		return nil, errors.Errorf("%s: got %d output values, expected %d", p.Name, len(out), len(p.Outputs))
	}
	return out, nil
}

// InputPins returns the indices in p.Inputs of the pins matched by the pin
// selector sel. See Pins.
//
func (p *PartSpec) InputPins(sel string) ([]int, error) {
	return p.pins(p.Inputs, "input", sel)
}

// OutputPins returns the indices in p.Outputs of the pins matched by the pin
// selector sel. See Pins.
//
func (p *PartSpec) OutputPins(sel string) ([]int, error) {
	return p.pins(p.Outputs, "output", sel)
}

// Pins returns the indices in names of the pins matched by the pin selector
// sel. A selector can be a single pin name ("sel"), a whole bus name ("out"), an
// indexed pin ("out[3]") or a range ("out[8..15]").
//
func Pins(names []string, sel string) ([]int, error) {
	sel = strings.Replace(sel, " ", "", -1)
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}
	if i, ok := idx[sel]; ok {
		return []int{i}, nil
	}
	var out []int
	if !strings.ContainsRune(sel, '[') {
		// whole bus
		for i := 0; ; i++ {
			n, ok := idx[BusPinName(sel, i)]
			if !ok {
				break
			}
			out = append(out, n)
		}
		if len(out) == 0 {
			return nil, errors.New("no pin or bus named " + sel)
		}
		return out, nil
	}
	ns, err := expandRange(sel, len(names))
	if err != nil {
		return nil, errors.Wrap(err, sel)
	}
	for _, n := range ns {
		i, ok := idx[n]
		if !ok {
			return nil, errors.New("no pin named " + n)
		}
		out = append(out, i)
	}
	return out, nil
}

func (p *PartSpec) pins(names []string, kind, sel string) ([]int, error) {
	out, err := Pins(names, sel)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", p.Name, kind)
	}
	return out, nil
}

// Buses groups pin names by bus, preserving declaration order. Plain pins
// form their own group. This is the reverse of IO:
//
//	Buses(IO("a[2], sel")) // returns []string{"a[2]", "sel"}, [][]int{{0, 1}, {2}}
//
func Buses(names []string) (decls []string, groups [][]int) {
	pos := make(map[string]int)
	for i, n := range names {
		b := n
		if j := strings.IndexRune(n, '['); j >= 0 {
			b = n[:j]
		}
		g, ok := pos[b]
		if !ok {
			g = len(groups)
			pos[b] = g
			decls = append(decls, b)
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	for i, d := range decls {
		if len(groups[i]) > 1 || names[groups[i][0]] != d {
			decls[i] = BusPinName(d, len(groups[i]))
		}
	}
	return decls, groups
}

// Assign sets the input pins of in matched by the pin selector sel to value,
// parsed with ParseBits. in must have one entry per input pin of p.
//
func (p *PartSpec) Assign(in []bool, sel, value string) error {
	pins, err := p.InputPins(sel)
	if err != nil {
		return err
	}
	bits, err := ParseBits(value, len(pins))
	if err != nil {
		return errors.Wrap(err, sel)
	}
	for i, pin := range pins {
		in[pin] = bits[i]
	}
	return nil
}

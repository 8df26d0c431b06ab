// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vectors runs test vector scripts against chips.
//
// A script names a chip and lists input assignments together with the
// expected outputs:
//
//	chip: ALU
//	workers: 4
//	vectors:
//	  - name: x+y
//	    in:  {x: 5, y: -3, f: 1}
//	    out: {out: 2, zr: false, ng: false}
//
// Keys are pin selectors: a pin name, a bus name, an indexed pin (out[3]) or a
// range (out[8..15]). Values are parsed with hwlogic.ParseBits. Input pins not
// listed in a vector are set to false, outputs not listed are not checked.
//
package vectors

import (
	"io"
	"os"
	"sort"

	"github.com/db47h/hwlogic"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Script is a list of test vectors for a single chip.
//
type Script struct {
	// Chip name.
	Chip string `yaml:"chip"`
	// Number of goroutines used to evaluate the vectors. If less or equal to
	// 0, the value of GOMAXPROCS will be used.
	Workers int      `yaml:"workers,omitempty"`
	Vectors []Vector `yaml:"vectors"`
}

// A Vector assigns values to input pins and lists expected output values.
//
type Vector struct {
	Name string           `yaml:"name,omitempty"`
	In   map[string]Value `yaml:"in"`
	Out  map[string]Value `yaml:"out"`
}

// Value is the textual value of a pin group. It accepts any YAML scalar, so
// that 1, true, -3 and "0x8000" can all be written without quotes.
//
type Value string

// UnmarshalYAML implements yaml.Unmarshaler.
//
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: pin value must be a scalar", n.Line)
	}
	*v = Value(n.Value)
	return nil
}

// Load reads a script from r.
//
func Load(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode script")
	}
	if s.Chip == "" {
		return nil, errors.New("missing chip name")
	}
	if len(s.Vectors) == 0 {
		return nil, errors.New("no test vectors")
	}
	return &s, nil
}

// LoadFile reads a script from the named file.
//
func LoadFile(name string) (*Script, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return s, nil
}

// check is an expected value for a group of output pins.
type check struct {
	sel  string
	pins []int
	exp  []bool
}

// compiled is a vector with its input values and checks resolved against a
// PartSpec.
type compiled struct {
	in     []bool
	checks []check
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func compile(p *hwlogic.PartSpec, v *Vector) (*compiled, error) {
	c := &compiled{in: make([]bool, len(p.Inputs))}
	for _, k := range sortedKeys(v.In) {
		if err := p.Assign(c.in, k, string(v.In[k])); err != nil {
			return nil, err
		}
	}
	for _, k := range sortedKeys(v.Out) {
		pins, err := p.OutputPins(k)
		if err != nil {
			return nil, err
		}
		bits, err := hwlogic.ParseBits(string(v.Out[k]), len(pins))
		if err != nil {
			return nil, errors.Wrap(err, k)
		}
		c.checks = append(c.checks, check{k, pins, bits})
	}
	return c, nil
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlogic

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// BusPinName returns the pin name for bit i of the given bus.
//
func BusPinName(bus string, i int) string {
	return bus + "[" + strconv.Itoa(i) + "]"
}

// IO is like ParseIO but panics on error. It is meant for static part
// declarations.
//
func IO(spec string) []string {
	pins, err := ParseIO(spec)
	if err != nil {
		panic(err)
	}
	return pins
}

// ParseIO parses a pin declaration list and returns individual pin names,
// expanding bus declarations. For example:
//
//	ParseIO("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
//
func ParseIO(spec string) ([]string, error) {
	var out []string
	pos := 0
	for _, item := range strings.Split(spec, ",") {
		start := pos
		pos += len(item) + 1
		lead := len(item) - len(strings.TrimLeftFunc(item, unicode.IsSpace))
		item = strings.TrimSpace(item)
		if item == "" {
			if len(out) == 0 && strings.TrimSpace(spec) == "" {
				return nil, nil
			}
			return nil, parseError(spec, start+lead, "expected pin name")
		}
		name, size, err := splitDecl(item)
		if err != nil {
			return nil, parseError(spec, start+lead+len(name), err.Error())
		}
		if !isIdent(name) {
			return nil, parseError(spec, start+lead, "invalid pin name "+strconv.Quote(name))
		}
		if size < 0 {
			out = append(out, name)
			continue
		}
		for i := 0; i < size; i++ {
			out = append(out, BusPinName(name, i))
		}
	}
	return out, nil
}

// splitDecl splits "name[size]" into its components. size is -1 for a plain
// pin.
func splitDecl(item string) (name string, size int, err error) {
	i := strings.IndexRune(item, '[')
	if i < 0 {
		return item, -1, nil
	}
	name = item[:i]
	if !strings.HasSuffix(item, "]") {
		return name, 0, errors.New("missing close bracket")
	}
	size, err = strconv.Atoi(strings.TrimSpace(item[i+1 : len(item)-1]))
	if err != nil || size <= 0 {
		return name, 0, errors.New("invalid bus size")
	}
	return name, size, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !(unicode.IsLetter(r) || r == '_' || i > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}

// expandRange expands a pin selector of the form bus[start..end] into
// individual pin names. Plain names and indexed pins are returned as is.
// Ranges of more than limit pins are rejected.
//
func expandRange(name string, limit int) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("empty bus name")
	}
	n := name[i+1:]
	i = strings.Index(n, "..")
	if i < 0 {
		return []string{name}, nil
	}
	start, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, errors.Wrap(err, "bus range start")
	}
	n = n[i+2:]
	i = strings.IndexRune(n, ']')
	if i < 0 {
		return nil, errors.New("no terminating ] in bus range")
	}
	end, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, errors.Wrap(err, "bus range end")
	}
	if start < 0 {
		return nil, errors.Errorf("negative bus range start in %s", name)
	}
	if end < start {
		return nil, errors.Errorf("empty bus range %s", name)
	}
	if end-start >= limit {
		return nil, errors.Errorf("bus range %s out of bounds", name)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, BusPinName(bus, i))
	}
	return r, nil
}

// ParseBits parses a value for a group of width pins. s may be:
//
//	- a binary string of exactly width digits, MSB first ("0010").
//	  Underscores are ignored ("0000_0000_0000_0001").
//	- a decimal integer, optionally signed ("-1", "42").
//	- an integer with a 0x, 0o or 0b prefix ("0x8000").
//	- "true" or "false" when width is 1.
//
// Integers must fit in width bits, either as signed or unsigned values.
//
func ParseBits(s string, width int) ([]bool, error) {
	if width <= 0 {
		return nil, errors.Errorf("invalid width %d", width)
	}
	out := make([]bool, width)
	v := strings.ToLower(strings.TrimSpace(s))
	if width == 1 {
		switch v {
		case "true":
			out[0] = true
			return out, nil
		case "false":
			return out, nil
		}
	}
	if digits := strings.Replace(v, "_", "", -1); len(digits) == width && isBinary(digits) {
		for i := range digits {
			out[i] = digits[i] == '1'
		}
		return out, nil
	}

	base := 10
	if u := strings.TrimLeft(v, "+-"); len(u) > 1 && u[0] == '0' && strings.ContainsRune("xob", rune(u[1])) {
		base = 0
	}
	n, err := strconv.ParseInt(v, base, 64)
	if err != nil {
		return nil, errors.Errorf("invalid value %q for %d bits", s, width)
	}
	if width < 64 && (n < -(1<<uint(width-1)) || n >= 1<<uint(width)) {
		return nil, errors.Errorf("value %s overflows %d bits", s, width)
	}
	SetInt(out, n)
	return out, nil
}

func isBinary(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return s != ""
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlogic

import "strings"

// Bus4 is a 4 bits bus. Index 0 is the most significant bit.
//
type Bus4 [4]bool

// Bus8 is an 8 bits bus. Index 0 is the most significant bit.
//
type Bus8 [8]bool

// Bus16 is a 16 bits bus. Index 0 is the most significant bit.
//
type Bus16 [16]bool

// Sel2 is a 2 bits selector for 4-way chips. Index 0 is the most significant
// selector bit.
//
type Sel2 [2]bool

// Sel3 is a 3 bits selector for 8-way chips. Index 0 is the most significant
// selector bit.
//
type Sel3 [3]bool

// Uint returns the pins as an unsigned value. The last pin is the lsb.
//
func Uint(pins []bool) uint64 {
	var out uint64
	for _, p := range pins {
		out <<= 1
		if p {
			out |= 1
		}
	}
	return out
}

// Int returns the pins as a two's complement signed value.
//
func Int(pins []bool) int64 {
	v := int64(Uint(pins))
	if n := uint(len(pins)); n > 0 && n < 64 && pins[0] {
		v -= 1 << n
	}
	return v
}

// SetInt sets the pins to the low len(pins) bits of v.
//
func SetInt(pins []bool, v int64) {
	for i := len(pins) - 1; i >= 0; i-- {
		pins[i] = v&1 != 0
		v >>= 1
	}
}

// Bits returns the MSB first binary representation of pins.
//
func Bits(pins []bool) string {
	var b strings.Builder
	b.Grow(len(pins))
	for _, p := range pins {
		if p {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Bus4FromInt returns the low 4 bits of v as a Bus4.
//
func Bus4FromInt(v int64) (b Bus4) { SetInt(b[:], v); return b }

// Bus8FromInt returns the low 8 bits of v as a Bus8.
//
func Bus8FromInt(v int64) (b Bus8) { SetInt(b[:], v); return b }

// Bus16FromInt returns the low 16 bits of v as a Bus16.
//
func Bus16FromInt(v int64) (b Bus16) { SetInt(b[:], v); return b }

// Int returns b as a signed value.
func (b Bus4) Int() int64 { return Int(b[:]) }

// Uint returns b as an unsigned value.
func (b Bus4) Uint() uint64 { return Uint(b[:]) }

func (b Bus4) String() string { return Bits(b[:]) }

// Int returns b as a signed value.
func (b Bus8) Int() int64 { return Int(b[:]) }

// Uint returns b as an unsigned value.
func (b Bus8) Uint() uint64 { return Uint(b[:]) }

func (b Bus8) String() string { return Bits(b[:]) }

// Int returns b as a signed value.
func (b Bus16) Int() int64 { return Int(b[:]) }

// Uint returns b as an unsigned value.
func (b Bus16) Uint() uint64 { return Uint(b[:]) }

func (b Bus16) String() string { return Bits(b[:]) }

// Sel2FromInt returns the selector for value v (0 to 3).
//
func Sel2FromInt(v int) (s Sel2) { SetInt(s[:], int64(v)); return s }

// Sel3FromInt returns the selector for value v (0 to 7).
//
func Sel3FromInt(v int) (s Sel3) { SetInt(s[:], int64(v)); return s }

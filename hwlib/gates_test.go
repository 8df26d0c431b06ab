package hwlib_test

import (
	"testing"
	"testing/quick"

	hl "github.com/db47h/hwlogic/hwlib"
)

func Test_gate(t *testing.T) {
	td := []struct {
		name   string
		result [][]bool // a=0 && b=0, a=0 && b=1, a=1 && b=0, a=1 && b=1
	}{
		{"Nand", [][]bool{{true, true, true, false}}},
		{"Not", [][]bool{{true, false}}},
		{"And", [][]bool{{false, false, false, true}}},
		{"Or", [][]bool{{false, true, true, true}}},
		{"Xor", [][]bool{{false, true, true, false}}},
		{"Mux", [][]bool{{false, false, false, true, true, false, true, true}}},
		{"DMux", [][]bool{{false, false, false, true}, {false, false, true, false}}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			testGate(t, d.name, d.result)
		})
	}
}

func TestNot_involution(t *testing.T) {
	for _, x := range []bool{false, true} {
		if hl.Not(hl.Not(x)) != x {
			t.Errorf("Not(Not(%v)) != %v", x, x)
		}
	}
}

func Test_gate_laws(t *testing.T) {
	td := []struct {
		name string
		fn   func(a, b bool) bool
	}{
		{"And", hl.And},
		{"Or", hl.Or},
		{"Xor", hl.Xor},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			commutative := func(a, b bool) bool {
				return d.fn(a, b) == d.fn(b, a)
			}
			if err := quick.Check(commutative, nil); err != nil {
				t.Errorf("not commutative: %v", err)
			}
			associative := func(a, b, c bool) bool {
				return d.fn(d.fn(a, b), c) == d.fn(a, d.fn(b, c))
			}
			if err := quick.Check(associative, nil); err != nil {
				t.Errorf("not associative: %v", err)
			}
		})
	}
}

func TestMux_select(t *testing.T) {
	f := func(a, b bool) bool {
		return hl.Mux(a, b, false) == a && hl.Mux(a, b, true) == b
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestDMux(t *testing.T) {
	td := []struct {
		in, sel bool
		out     [2]bool
	}{
		{false, false, [2]bool{false, false}},
		{false, true, [2]bool{false, false}},
		{true, false, [2]bool{false, true}},
		{true, true, [2]bool{true, false}},
	}
	for _, d := range td {
		if got := hl.DMux(d.in, d.sel); got != d.out {
			t.Errorf("DMux(%v, %v) = %v, expected %v", d.in, d.sel, got, d.out)
		}
	}
}

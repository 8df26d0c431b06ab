package hwlogic_test

import (
	"testing"
	"testing/quick"

	hw "github.com/db47h/hwlogic"
)

func TestBus16_int(t *testing.T) {
	f := func(x int16) bool {
		b := hw.Bus16FromInt(int64(x))
		return b.Int() == int64(x) && b.Uint() == uint64(uint16(x))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestBus_msb_first(t *testing.T) {
	b := hw.Bus4FromInt(2)
	if b != (hw.Bus4{false, false, true, false}) {
		t.Fatalf("Bus4FromInt(2) = %v", b)
	}
	if s := b.String(); s != "0010" {
		t.Fatalf("String() = %s, expected 0010", s)
	}
	if s := hw.Bus8FromInt(-1).String(); s != "11111111" {
		t.Fatalf("String() = %s, expected 11111111", s)
	}
	if v := hw.Bus8FromInt(0x80).Int(); v != -128 {
		t.Fatalf("Int() = %d, expected -128", v)
	}
	if s := hw.Sel3FromInt(4); s != (hw.Sel3{true, false, false}) {
		t.Fatalf("Sel3FromInt(4) = %v", s)
	}
	if s := hw.Sel2FromInt(1); s != (hw.Sel2{false, true}) {
		t.Fatalf("Sel2FromInt(1) = %v", s)
	}
}

func TestBus16_truncate(t *testing.T) {
	if b := hw.Bus16FromInt(0x18001); b.Uint() != 0x8001 {
		t.Fatalf("got %x, expected 8001", b.Uint())
	}
}

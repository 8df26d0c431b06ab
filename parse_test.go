package hwlogic_test

import (
	"reflect"
	"testing"

	hw "github.com/db47h/hwlogic"
)

func TestParseIO(t *testing.T) {
	td := []struct {
		in  string
		out []string
		err string
	}{
		{"", nil, ""},
		{"a", []string{"a"}, ""},
		{"a, b", []string{"a", "b"}, ""},
		{"in[2], sel", []string{"in[0]", "in[1]", "sel"}, ""},
		{" x[1],zx ", []string{"x[0]", "zx"}, ""},
		{"a,,b", nil, `in "a,,b" at pos 3: expected pin name`},
		{"a, 4b", nil, `in "a, 4b" at pos 4: invalid pin name "4b"`},
		{"bus[0]", nil, `in "bus[0]" at pos 4: invalid bus size`},
		{"bus[2", nil, `in "bus[2" at pos 4: missing close bracket`},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			out, err := hw.ParseIO(d.in)
			if err != nil {
				if err.Error() != d.err {
					t.Fatalf("got error %q, expected %q", err, d.err)
				}
				return
			}
			if d.err != "" {
				t.Fatalf("expected error %q", d.err)
			}
			if !reflect.DeepEqual(out, d.out) {
				t.Fatalf("got %v, expected %v", out, d.out)
			}
		})
	}
}

func TestIO_panic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("IO did not panic")
		}
	}()
	hw.IO("a[")
}

func TestParseBits(t *testing.T) {
	td := []struct {
		in    string
		width int
		out   string
		err   bool
	}{
		{"0010", 4, "0010", false},
		{"0000_0000_0000_0001", 16, "0000000000000001", false},
		{"2", 4, "0010", false},
		{"-1", 4, "1111", false},
		{"15", 4, "1111", false},
		{"16", 4, "", true},
		{"-9", 4, "", true},
		{"0x8000", 16, "1000000000000000", false},
		{"-32768", 16, "1000000000000000", false},
		{"0b101", 4, "0101", false},
		{"010", 16, "0000000000001010", false},
		{"true", 1, "1", false},
		{"False", 1, "0", false},
		{"1", 1, "1", false},
		{"true", 2, "", true},
		{"abc", 8, "", true},
		{"1", 0, "", true},
	}
	for _, d := range td {
		out, err := hw.ParseBits(d.in, d.width)
		if d.err {
			if err == nil {
				t.Errorf("ParseBits(%q, %d): expected error", d.in, d.width)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBits(%q, %d): %v", d.in, d.width, err)
			continue
		}
		if s := hw.Bits(out); s != d.out {
			t.Errorf("ParseBits(%q, %d) = %s, expected %s", d.in, d.width, s, d.out)
		}
	}
}

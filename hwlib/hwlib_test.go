package hwlib_test

import (
	"testing"

	hw "github.com/db47h/hwlogic"
	hl "github.com/db47h/hwlogic/hwlib"
	"github.com/db47h/hwlogic/hwtest"
)

// testGate checks the full truth table of the named part.
func testGate(t *testing.T, name string, result [][]bool) {
	t.Helper()
	part := hl.Lookup(name)
	if part == nil {
		t.Fatalf("no such part %s", name)
	}
	hwtest.TruthTable(t, part, result)
}

func bus16(v int16) hw.Bus16 { return hw.Bus16FromInt(int64(v)) }

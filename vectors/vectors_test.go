package vectors_test

import (
	"context"
	"strings"
	"testing"

	hw "github.com/db47h/hwlogic"
	hl "github.com/db47h/hwlogic/hwlib"
	"github.com/db47h/hwlogic/vectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_alu(t *testing.T) {
	s, err := vectors.LoadFile("testdata/alu.yaml")
	require.NoError(t, err)
	assert.Equal(t, "ALU", s.Chip)
	require.Len(t, s.Vectors, 18)
	assert.Equal(t, vectors.Value("-1"), s.Vectors[2].Out["out"])
	assert.Equal(t, vectors.Value("true"), s.Vectors[0].Out["zr"])
	names := make([]string, len(s.Vectors))
	for i := range s.Vectors {
		names[i] = s.Vectors[i].Name
	}
	assert.ElementsMatch(t, hl.OpNames(), names)

	r, err := s.Run(context.Background(), hl.Lookup)
	require.NoError(t, err)
	assert.True(t, r.OK(), r.String())
	assert.Equal(t, 18, r.Vectors)
	assert.Equal(t, "ALU: 18 vectors, 0 failures", r.String())
}

func TestLoadFile_missing(t *testing.T) {
	_, err := vectors.LoadFile("testdata/nope.yaml")
	require.Error(t, err)
}

func TestLoad_errors(t *testing.T) {
	td := []struct {
		name   string
		script string
		err    string
	}{
		{"no_chip", "vectors: [{in: {a: 1}}]", "missing chip name"},
		{"no_vectors", "chip: And", "no test vectors"},
		{"unknown_field", "chip: And\nvector: []", "decode script"},
		{"non_scalar", "chip: And\nvectors: [{in: {a: [1, 2]}}]", "pin value must be a scalar"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := vectors.Load(strings.NewReader(d.script))
			require.Error(t, err)
			assert.Contains(t, err.Error(), d.err)
		})
	}
}

func TestRun_failures(t *testing.T) {
	s, err := vectors.Load(strings.NewReader(`
chip: add16
workers: 3
vectors:
  - {in: {a: 1, b: 1}, out: {out: 2}}
  - {name: wrong, in: {a: 1, b: 1}, out: {out: 3}}
  - {in: {a: -1, b: 1}, out: {out: 0}}
  - {name: msb, in: {a: 0x7fff, b: 1}, out: {"out[0]": 0}}
  - {in: {a: 2, b: 2}, out: {out: 4}}
`))
	require.NoError(t, err)
	r, err := s.Run(context.Background(), hl.Lookup)
	require.NoError(t, err)
	assert.False(t, r.OK())
	assert.Equal(t, "Add16", r.Chip)
	require.Len(t, r.Failures, 2)
	assert.Equal(t, vectors.Failure{
		Index:    1,
		Name:     "wrong",
		Pin:      "out",
		Expected: "0000000000000011",
		Got:      "0000000000000010",
	}, r.Failures[0])
	assert.Equal(t, 3, r.Failures[1].Index)
	assert.Equal(t, "vector 3 (msb): out[0] = 1, expected 0", r.Failures[1].String())
	assert.Equal(t, "Add16: 5 vectors, 2 failures\n\t"+
		"vector 1 (wrong): out = 0000000000000010, expected 0000000000000011\n\t"+
		"vector 3 (msb): out[0] = 1, expected 0", r.String())
}

func TestRun_errors(t *testing.T) {
	td := []struct {
		name   string
		script string
		err    string
	}{
		{"unknown_chip", "chip: DFF\nvectors: [{in: {in: 1}}]", `unknown chip "DFF"`},
		{"unknown_input", "chip: And\nvectors: [{in: {c: 1}}]", "vector 0: And input: no pin or bus named c"},
		{"unknown_output", "chip: And\nvectors: [{in: {a: 1}, out: {sum: 1}}]", "vector 0: And output: no pin or bus named sum"},
		{"bad_value", "chip: And\nvectors: [{in: {a: 2}}]", "vector 0: a: value 2 overflows 1 bits"},
		{"huge_range", "chip: Not16\nvectors: [{in: {in: 0}, out: {\"out[0..999999999999999999]\": 0}}]",
			"vector 0: Not16 output: out[0..999999999999999999]: bus range out[0..999999999999999999] out of bounds"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			s, err := vectors.Load(strings.NewReader(d.script))
			require.NoError(t, err)
			_, err = s.Run(context.Background(), hl.Lookup)
			require.Error(t, err)
			assert.Equal(t, d.err, err.Error())
		})
	}
}

func TestRun_canceled(t *testing.T) {
	s, err := vectors.Load(strings.NewReader("chip: Not\nvectors: [{in: {in: 1}, out: {out: 0}}]"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Run(ctx, hl.Lookup)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_custom_lookup(t *testing.T) {
	xnor := &hw.PartSpec{
		Name:    "Xnor",
		Inputs:  hw.IO("a, b"),
		Outputs: hw.IO("out"),
		Eval: func(in []bool) []bool {
			return []bool{hl.Not(hl.Xor(in[0], in[1]))}
		},
	}
	lookup := func(name string) *hw.PartSpec {
		if name == "Xnor" {
			return xnor
		}
		return hl.Lookup(name)
	}
	s, err := vectors.Load(strings.NewReader(`
chip: Xnor
vectors:
  - {in: {a: 0, b: 0}, out: {out: 1}}
  - {in: {a: 0, b: 1}, out: {out: 0}}
  - {in: {a: 1, b: 0}, out: {out: 0}}
  - {in: {a: 1, b: 1}, out: {out: 1}}
`))
	require.NoError(t, err)
	r, err := s.Run(context.Background(), lookup)
	require.NoError(t, err)
	assert.True(t, r.OK(), r.String())
}

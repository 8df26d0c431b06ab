// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vectors

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/db47h/hwlogic"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// A LookupFn returns the PartSpec for the named chip, or nil if there is no
// such chip. hwlib.Lookup is a LookupFn.
//
type LookupFn func(name string) *hwlogic.PartSpec

// A Failure is an output mismatch.
//
type Failure struct {
	Index    int    // vector index in the script
	Name     string // vector name
	Pin      string // output pin selector
	Expected string
	Got      string
}

func (f *Failure) String() string {
	name := ""
	if f.Name != "" {
		name = " (" + f.Name + ")"
	}
	return fmt.Sprintf("vector %d%s: %s = %s, expected %s", f.Index, name, f.Pin, f.Got, f.Expected)
}

// A Report is the result of running a script.
//
type Report struct {
	Chip     string
	Vectors  int
	Failures []Failure
}

// OK returns true if all vectors passed.
//
func (r *Report) OK() bool { return len(r.Failures) == 0 }

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d vectors, %d failures", r.Chip, r.Vectors, len(r.Failures))
	for i := range r.Failures {
		b.WriteString("\n\t")
		b.WriteString(r.Failures[i].String())
	}
	return b.String()
}

// Run evaluates all vectors in s against the chip returned by lookup.
//
// Vectors are evaluated concurrently; failures are reported in script order.
// Errors in the script itself (unknown chip or pin, invalid values) are
// returned as an error.
//
func (s *Script) Run(ctx context.Context, lookup LookupFn) (*Report, error) {
	p := lookup(s.Chip)
	if p == nil {
		return nil, errors.Errorf("unknown chip %q", s.Chip)
	}

	cvs := make([]*compiled, len(s.Vectors))
	for i := range s.Vectors {
		c, err := compile(p, &s.Vectors[i])
		if err != nil {
			return nil, errors.Wrapf(err, "vector %d", i)
		}
		cvs[i] = c
	}

	// one failure list per vector so that workers never share state.
	fails := make([][]Failure, len(cvs))

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	size := len(cvs) / workers
	if size*workers < len(cvs) {
		size++
	}

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(cvs); start += size {
		end := start + size
		if end > len(cvs) {
			end = len(cvs)
		}
		start := start
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out, err := p.Run(cvs[i].in)
				if err != nil {
					return errors.Wrapf(err, "vector %d", i)
				}
				fails[i] = s.check(i, cvs[i], out)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Report{Chip: p.Name, Vectors: len(cvs)}
	for _, f := range fails {
		r.Failures = append(r.Failures, f...)
	}
	return r, nil
}

func (s *Script) check(i int, c *compiled, out []bool) []Failure {
	var fails []Failure
	got := make([]bool, 0, len(out))
	for _, ck := range c.checks {
		got = got[:0]
		for _, pin := range ck.pins {
			got = append(got, out[pin])
		}
		for j := range got {
			if got[j] != ck.exp[j] {
				fails = append(fails, Failure{
					Index:    i,
					Name:     s.Vectors[i].Name,
					Pin:      ck.sel,
					Expected: hwlogic.Bits(ck.exp),
					Got:      hwlogic.Bits(got),
				})
				break
			}
		}
	}
	return fails
}

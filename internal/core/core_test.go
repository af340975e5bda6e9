package core

import (
	"math"
	"testing"
	"time"
)

func TestFixedStepDefaultsAndSeconds(t *testing.T) {
	fs := NewFixedStep(0)
	if got, want := fs.Seconds(), 1.0/60; math.Abs(got-want) > 1e-6 {
		t.Fatalf("seconds = %f, want %f", got, want)
	}
	fs.SetTPS(50)
	if got := fs.Seconds(); math.Abs(got-0.02) > 1e-9 {
		t.Fatalf("seconds after SetTPS(50) = %f, want 0.02", got)
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	clock := time.Unix(100, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step from the primed accumulator")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick elapsed, should not step")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("more than a tick elapsed, should step")
	}
}

func TestRNGRange(t *testing.T) {
	a := NewStreamRNG(7, 3)
	b := NewStreamRNG(7, 3)
	for i := 0; i < 100; i++ {
		va, vb := a.Range(-1, 1), b.Range(-1, 1)
		if va != vb {
			t.Fatalf("draw %d differs: %f vs %f", i, va, vb)
		}
		if va < -1 || va > 1 {
			t.Fatalf("draw %d out of range: %f", i, va)
		}
	}
	if got := a.Range(0.5, 0.5); got != 0.5 {
		t.Fatalf("empty range = %f, want 0.5", got)
	}
}

func TestRNGEmptyRangeStillDraws(t *testing.T) {
	a := NewStreamRNG(11, 0)
	b := NewStreamRNG(11, 0)
	a.Range(0, 0)
	b.Range(-1, 1)
	if va, vb := a.Range(0, 1), b.Range(0, 1); va != vb {
		t.Fatalf("streams diverged after an empty range: %f vs %f", va, vb)
	}
}

func TestByteGridSetKeepsHighest(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(1, 1, 2)
	g.Set(1, 1, 1)
	g.Set(-1, 0, 9)
	g.Set(4, 0, 9)
	if got := g.Cells()[g.Index(1, 1)]; got != 2 {
		t.Fatalf("cell = %d, want 2", got)
	}
	for i, c := range g.Cells() {
		if i != g.Index(1, 1) && c != 0 {
			t.Fatalf("cell %d = %d, want 0", i, c)
		}
	}
	g.Clear()
	if g.Cells()[g.Index(1, 1)] != 0 {
		t.Fatal("Clear left data behind")
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	if got := c.Clamp(2); got != 1 {
		t.Fatalf("clamp high = %f", got)
	}
	if got := c.Clamp(-1); got != 0 {
		t.Fatalf("clamp low = %f", got)
	}
	open := ParameterControl{}
	if got := open.Clamp(-5); got != -5 {
		t.Fatalf("open clamp = %f", got)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "g",
		Params: []Parameter{{Key: "a", Value: "1"}},
	}}}
	if p, ok := s.Lookup("a"); !ok || p.Value != "1" {
		t.Fatalf("lookup a = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("b"); ok {
		t.Fatal("lookup b should miss")
	}
}

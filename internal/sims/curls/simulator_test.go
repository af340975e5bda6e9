package curls

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

// quietConfig returns a config with every force disabled.
func quietConfig(strands, points int) Config {
	cfg := DefaultConfig()
	cfg.Strands = strands
	cfg.Points = points
	cfg.WanderAmplitude = 0
	cfg.Params = Params{}
	return cfg
}

func farEnvironment(anchors ...mgl64.Vec3) *StaticEnvironment {
	return &StaticEnvironment{
		Anchors:    anchors,
		HeadCenter: mgl64.Vec3{1000, 1000, 1000},
		Face:       Plane{Point: mgl64.Vec3{0, -1000, 0}, Normal: mgl64.Vec3{0, 1, 0}},
	}
}

func mustSimulator(t *testing.T, cfg Config, env Environment) *Simulator {
	t.Helper()
	sim, err := NewSimulator(cfg, env)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return sim
}

func finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func TestStepThreePointScenario(t *testing.T) {
	cfg := quietConfig(1, 3)
	cfg.Params.MaxSpringLength = 1
	cfg.Params.SpringDampening = 10
	sim := mustSimulator(t, cfg, farEnvironment(mgl64.Vec3{}))

	pts := sim.Strand(0)
	pts[0] = mgl64.Vec3{0, 0, 0}
	pts[1] = mgl64.Vec3{0, -2, 0}
	pts[2] = mgl64.Vec3{0, -4, 0}

	sim.Step(0.1, mgl64.Vec3{0, -9.8, 0})

	if got, want := sim.Position(0, 1), (mgl64.Vec3{0, -1.98, 0}); !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("point 1 = %v, want %v", got, want)
	}
	// Point 2 springs toward the already updated point 1: |delta| = 2.02.
	if got, want := sim.Position(0, 2), (mgl64.Vec3{0, -3.96, 0}); !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("point 2 = %v, want %v", got, want)
	}
}

func TestStepFrictionIgnoresCollision(t *testing.T) {
	cfg := quietConfig(1, 2)
	cfg.Params.MaxSpringLength = 1
	cfg.Params.SpringDampening = 10
	cfg.Params.FrictionStrength = 0.5
	cfg.Params.CollisionStrength = 10
	cfg.Params.HeadRadius = 5
	env := farEnvironment(mgl64.Vec3{})
	env.HeadCenter = mgl64.Vec3{0, -1.5, 0}
	sim := mustSimulator(t, cfg, env)

	pts := sim.Strand(0)
	pts[0] = mgl64.Vec3{}
	pts[1] = mgl64.Vec3{0, -1, 0}

	sim.Step(0.1, mgl64.Vec3{0, -10, 0})

	// gravity (0,-10,0), spring slack, friction halves it to (0,-5,0), then
	// the head adds (0,10,0) unfrictioned: accel (0,5,0).
	if got, want := sim.Position(0, 1), (mgl64.Vec3{0, -0.5, 0}); !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("point 1 = %v, want %v", got, want)
	}
}

func TestStepPinsRootToAnchor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strands = 3
	cfg.Points = 5
	anchors := []mgl64.Vec3{{3, 4, 5}, {-1, 2, 0}, {0, 0, 0}}
	env := &StaticEnvironment{
		Anchors:    anchors,
		HeadCenter: mgl64.Vec3{0, 1, 0},
		Face:       Plane{Point: mgl64.Vec3{}, Normal: mgl64.Vec3{0, 0, -1}},
	}
	sim := mustSimulator(t, cfg, env)

	for step := 0; step < 10; step++ {
		sim.Step(1.0/60, cfg.Params.Gravity)
		for s, a := range anchors {
			if got := sim.Position(s, 0); got != a {
				t.Fatalf("step %d strand %d root = %v, want anchor %v", step, s, got, a)
			}
		}
	}
}

func TestStepCoincidentPointsStayFinite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strands = 2
	cfg.Points = 4
	env := &StaticEnvironment{
		Anchors:    []mgl64.Vec3{{}, {}},
		HeadCenter: mgl64.Vec3{},
		Face:       Plane{Point: mgl64.Vec3{}, Normal: mgl64.Vec3{0, 1, 0}},
	}
	sim := mustSimulator(t, cfg, env)
	for i := range sim.Positions() {
		sim.Positions()[i] = mgl64.Vec3{}
	}

	// Zero gravity as well, so the friction input is a zero vector on the
	// first point.
	sim.Step(0.1, mgl64.Vec3{})
	sim.Step(0.1, cfg.Params.Gravity)

	for i, p := range sim.Positions() {
		if !finite(p) {
			t.Fatalf("point %d = %v, want finite", i, p)
		}
	}
}

func TestStepEquilibriumWithoutForces(t *testing.T) {
	cfg := quietConfig(4, 6)
	cfg.Params.MaxSpringLength = cfg.Spacing
	cfg.Params.SpringDampening = 10

	layout, err := Layout(cfg.Controls, cfg.Strands, cfg.Points, cfg.Spacing)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	sim := mustSimulator(t, cfg, farEnvironment(Roots(layout, cfg.Points)...))

	for i := 0; i < 50; i++ {
		sim.Step(0.1, mgl64.Vec3{})
	}
	if !slices.Equal(layout, sim.Positions()) {
		t.Fatalf("positions drifted without forces:\n got %v\nwant %v", sim.Positions(), layout)
	}
}

func TestStepIgnoresNonPositiveDelta(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strands = 2
	cfg.Points = 3
	sim := mustSimulator(t, cfg, farEnvironment(mgl64.Vec3{9, 9, 9}, mgl64.Vec3{9, 9, 9}))
	before := slices.Clone(sim.Positions())

	for _, dt := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		sim.Step(dt, cfg.Params.Gravity)
		if !slices.Equal(before, sim.Positions()) {
			t.Fatalf("dt=%v changed state", dt)
		}
	}
}

func TestStepParallelMatchesSerial(t *testing.T) {
	run := func(workers int) []mgl64.Vec3 {
		cfg := DefaultConfig()
		cfg.Workers = workers
		cfg.WanderAmplitude = 0
		layout, err := Layout(cfg.Controls, cfg.Strands, cfg.Points, cfg.Spacing)
		if err != nil {
			t.Fatalf("Layout: %v", err)
		}
		env := &StaticEnvironment{
			Anchors:    Roots(layout, cfg.Points),
			HeadCenter: cfg.Head,
			Face:       Plane{Point: cfg.PlanePoint, Normal: cfg.PlaneNormal},
		}
		sim := mustSimulator(t, cfg, env)
		for i := 0; i < 30; i++ {
			sim.Step(1.0/60, cfg.Params.Gravity)
		}
		return slices.Clone(sim.Positions())
	}

	serial := run(1)
	for _, workers := range []int{2, 4, 16} {
		if got := run(workers); !slices.Equal(serial, got) {
			t.Fatalf("workers=%d diverged from serial run", workers)
		}
	}
}

func TestResetReplaysJitter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strands = 3
	cfg.Points = 8
	cfg.Params.FrictionStrength = 0.5
	anchors := []mgl64.Vec3{{-1, 0, 0}, {0, 0, 0}, {1, 0, 0}}
	sim := mustSimulator(t, cfg, farEnvironment(anchors...))

	advance := func() []mgl64.Vec3 {
		for i := 0; i < 20; i++ {
			sim.Step(0.05, cfg.Params.Gravity)
		}
		return slices.Clone(sim.Positions())
	}

	sim.Reset(42)
	first := advance()
	sim.Reset(42)
	second := advance()
	if !slices.Equal(first, second) {
		t.Fatal("same seed produced different trajectories")
	}
	sim.Reset(43)
	if third := advance(); slices.Equal(first, third) {
		t.Fatal("different seeds should change the friction jitter")
	}
}

func TestNewSimulatorSetupErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strands = 2

	_, err := NewSimulator(cfg, farEnvironment(mgl64.Vec3{}))
	if !errors.Is(err, ErrAnchorMismatch) {
		t.Fatalf("mismatched anchors err = %v, want ErrAnchorMismatch", err)
	}
	_, err = NewSimulator(cfg, nil)
	if !errors.Is(err, ErrAnchorMismatch) {
		t.Fatalf("nil env err = %v, want ErrAnchorMismatch", err)
	}

	cfg.Controls = cfg.Controls[:1]
	_, err = NewSimulator(cfg, farEnvironment(mgl64.Vec3{}, mgl64.Vec3{}))
	if !errors.Is(err, ErrTooFewControlPoints) {
		t.Fatalf("one control err = %v, want ErrTooFewControlPoints", err)
	}

	cfg = DefaultConfig()
	cfg.Points = 0
	if _, err = NewSimulator(cfg, farEnvironment()); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("zero points err = %v, want ErrInvalidShape", err)
	}

	cfg = DefaultConfig()
	cfg.PlaneNormal = mgl64.Vec3{}
	if err := cfg.Validate(); !errors.Is(err, ErrZeroNormal) {
		t.Fatalf("zero normal err = %v, want ErrZeroNormal", err)
	}
}

func TestIndexIsStrandMajor(t *testing.T) {
	cfg := quietConfig(3, 4)
	sim := mustSimulator(t, cfg, farEnvironment(make([]mgl64.Vec3, 3)...))
	if got := sim.Index(2, 1); got != 9 {
		t.Fatalf("Index(2,1) = %d, want 9", got)
	}
	sim.Strand(1)[2] = mgl64.Vec3{7, 7, 7}
	if got := sim.Positions()[6]; got != (mgl64.Vec3{7, 7, 7}) {
		t.Fatalf("strand view not backed by positions, got %v", got)
	}
	if got := len(sim.Strand(2)); got != 4 {
		t.Fatalf("strand length = %d, want 4", got)
	}
}

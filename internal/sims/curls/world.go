package curls

import (
	"curls/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

const planeTraceLength = 100.0

// World couples a Simulator with the Rig that drives its anchors and head.
// It is the registered "curls" simulation.
type World struct {
	cfg Config
	sim *Simulator
	rig *Rig
}

// New returns a World with the default configuration resized to the given
// strand and point counts.
func New(strands, points int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Strands = strands
	cfg.Points = points
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	layout, err := Layout(cfg.Controls, cfg.Strands, cfg.Points, cfg.Spacing)
	if err != nil {
		return nil, err
	}
	rig, err := NewRig(cfg, Roots(layout, cfg.Points))
	if err != nil {
		return nil, err
	}
	sim, err := NewSimulator(cfg, rig)
	if err != nil {
		return nil, err
	}
	return &World{cfg: cfg, sim: sim, rig: rig}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "curls" }

// Shape reports the strand and point counts.
func (w *World) Shape() core.Shape { return w.sim.Shape() }

// Positions exposes the strand-major point positions.
func (w *World) Positions() []mgl64.Vec3 { return w.sim.Positions() }

// Simulator exposes the underlying integrator.
func (w *World) Simulator() *Simulator { return w.sim }

// Head reports the current head centre.
func (w *World) Head() mgl64.Vec3 { return w.rig.Head() }

// HeadRadius reports the current repulsion radius around the head.
func (w *World) HeadRadius() float64 { return w.cfg.Params.HeadRadius }

// PlaneTrace returns a long segment of the face plane as seen looking down
// the Z axis. It reports false when the plane faces the viewer.
func (w *World) PlaneTrace() (a, b mgl64.Vec3, ok bool) {
	plane := w.rig.Plane()
	dir := mgl64.Vec3{-plane.Normal[1], plane.Normal[0], 0}
	l := dir.Len()
	if l < 1e-6 {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	dir = dir.Mul(planeTraceLength / l)
	return plane.Point.Sub(dir), plane.Point.Add(dir), true
}

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Reset restores the initial layout. A zero seed falls back to the
// configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rig.Reset(effective)
	w.sim.Reset(effective)
}

// Step moves the rig and then advances the strands by dt seconds.
func (w *World) Step(dt float64) {
	w.rig.Advance(dt)
	w.sim.Step(dt, w.cfg.Params.Gravity)
}

func init() {
	core.Register("curls", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}

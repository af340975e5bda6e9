package core

import "github.com/go-gl/mathgl/mgl64"

// Shape describes how a simulation's points are grouped into strands.
type Shape struct {
	Strands int
	Points  int
}

// Total returns the number of points covered by the shape.
func (s Shape) Total() int { return s.Strands * s.Points }

// Sim defines the minimal contract a point simulation must implement.
//
// Reset treats a zero seed as "use the configured seed", so seed 0 cannot be
// selected explicitly through this interface.
type Sim interface {
	Name() string
	Shape() Shape
	Reset(seed int64)
	Step(dt float64)
	Positions() []mgl64.Vec3
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

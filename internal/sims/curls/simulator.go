package curls

import (
	"fmt"
	"math"

	"curls/internal/core"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
)

// Environment supplies the externally owned inputs a step reads: the anchor
// every strand root is pinned to, the head centre and the face plane.
type Environment interface {
	Strands() int
	Anchor(strand int) mgl64.Vec3
	Head() mgl64.Vec3
	Plane() Plane
}

// StaticEnvironment is an Environment whose inputs never move.
type StaticEnvironment struct {
	Anchors    []mgl64.Vec3
	HeadCenter mgl64.Vec3
	Face       Plane
}

func (e *StaticEnvironment) Strands() int                 { return len(e.Anchors) }
func (e *StaticEnvironment) Anchor(strand int) mgl64.Vec3 { return e.Anchors[strand] }
func (e *StaticEnvironment) Head() mgl64.Vec3             { return e.HeadCenter }
func (e *StaticEnvironment) Plane() Plane                 { return e.Face }

// frame holds the per-step inputs shared by every strand.
type frame struct {
	dt      float64
	gravity mgl64.Vec3
	head    mgl64.Vec3
	plane   Plane
}

// Simulator advances every strand of curls by one step at a time.
//
// Positions are stored strand-major: point p of strand s lives at
// s*Points+p, so each strand owns a contiguous, disjoint range and strands
// can be stepped concurrently. Within a strand points are updated strictly in
// increasing order because each spring targets the predecessor's position from
// the current step.
type Simulator struct {
	cfg    Config
	params Params
	env    Environment
	points []mgl64.Vec3
	rngs   []*core.RNG
}

// NewSimulator allocates the point state for cfg, lays the strands out from
// the control points and binds them to env.
func NewSimulator(cfg Config, env Environment) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if env == nil || env.Strands() != cfg.Strands {
		got := 0
		if env != nil {
			got = env.Strands()
		}
		return nil, fmt.Errorf("%w: %d anchors for %d strands", ErrAnchorMismatch, got, cfg.Strands)
	}
	s := &Simulator{
		cfg:    cfg,
		params: cfg.Params,
		env:    env,
		points: make([]mgl64.Vec3, cfg.Strands*cfg.Points),
		rngs:   make([]*core.RNG, cfg.Strands),
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Shape reports the strand and point counts.
func (s *Simulator) Shape() core.Shape {
	return core.Shape{Strands: s.cfg.Strands, Points: s.cfg.Points}
}

// Positions exposes the backing position slice in strand-major order.
func (s *Simulator) Positions() []mgl64.Vec3 { return s.points }

// Strand returns the positions of a single strand, root first.
func (s *Simulator) Strand(strand int) []mgl64.Vec3 {
	base := strand * s.cfg.Points
	return s.points[base : base+s.cfg.Points : base+s.cfg.Points]
}

// Index flattens (strand, point) into a position index.
func (s *Simulator) Index(strand, point int) int { return strand*s.cfg.Points + point }

// Position returns the position of one point.
func (s *Simulator) Position(strand, point int) mgl64.Vec3 {
	return s.points[s.Index(strand, point)]
}

// Params returns the tunables used by the next step.
func (s *Simulator) Params() Params { return s.params }

// SetParams replaces the tunables. It must not be called while Step runs.
func (s *Simulator) SetParams(p Params) { s.params = p }

// Reset lays the strands out again and reseeds the friction jitter.
func (s *Simulator) Reset(seed int64) {
	for i := range s.points {
		s.points[i] = mgl64.Vec3{}
	}
	// Validate already covered every Layout error.
	layout, _ := Layout(s.cfg.Controls, s.cfg.Strands, s.cfg.Points, s.cfg.Spacing)
	copy(s.points, layout)
	for i := range s.rngs {
		s.rngs[i] = core.NewStreamRNG(seed, uint64(i))
	}
}

// Step advances every non-root point by dt seconds under gravity. Roots are
// first copied from their anchors. A dt that is not strictly positive leaves
// the state untouched.
func (s *Simulator) Step(dt float64, gravity mgl64.Vec3) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	f := frame{
		dt:      dt,
		gravity: gravity,
		head:    s.env.Head(),
		plane:   s.env.Plane(),
	}
	for strand := 0; strand < s.cfg.Strands; strand++ {
		s.points[s.Index(strand, 0)] = s.env.Anchor(strand)
	}

	if s.cfg.Workers <= 1 || s.cfg.Strands == 1 {
		for strand := 0; strand < s.cfg.Strands; strand++ {
			s.stepStrand(strand, f)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(s.cfg.Workers)
	for strand := 0; strand < s.cfg.Strands; strand++ {
		g.Go(func() error {
			s.stepStrand(strand, f)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Simulator) stepStrand(strand int, f frame) {
	pts := s.Strand(strand)
	rng := s.rngs[strand]
	p := s.params
	micro := math.Abs(p.MicroFrictionStrength)

	for i := 1; i < len(pts); i++ {
		pos := pts[i]
		accel := f.gravity
		accel = accel.Add(springAccel(pts[i-1], pos, p.MaxSpringLength, p.SpringDampening))
		accel = accel.Add(frictionAccel(accel, rng.Range(-micro, micro), p.FrictionStrength))
		accel = accel.Add(collisionAccel(pos, f, p))
		pts[i] = pos.Add(accel.Mul(f.dt))
	}
}

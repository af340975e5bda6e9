package curls

import (
	"github.com/aquilax/go-perlin"
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	rigNoiseAlpha = 2.0
	rigNoiseBeta  = 2.0
	rigNoiseN     = 3

	// rigSpringFrequency and rigSpringDamping shape how the head eases
	// toward its noise target.
	rigSpringFrequency = 6.0
	rigSpringDamping   = 0.8
)

// Rig animates the inputs the simulator treats as external: a head that
// wanders around its rest position on smoothed noise, anchors carried rigidly
// with the head, and a fixed face plane.
type Rig struct {
	rest  []mgl64.Vec3
	base  mgl64.Vec3
	plane Plane

	amplitude float64
	frequency float64

	noise    *perlin.Perlin
	spring   harmonica.Spring
	springDT float64

	head mgl64.Vec3
	vel  mgl64.Vec3
	t    float64
}

// NewRig returns a rig whose anchors rest at roots while the head sits at
// cfg.Head.
func NewRig(cfg Config, roots []mgl64.Vec3) (*Rig, error) {
	plane, err := NewPlane(cfg.PlanePoint, cfg.PlaneNormal)
	if err != nil {
		return nil, err
	}
	r := &Rig{
		rest:      append([]mgl64.Vec3(nil), roots...),
		base:      cfg.Head,
		plane:     plane,
		amplitude: cfg.WanderAmplitude,
		frequency: cfg.WanderFrequency,
	}
	r.Reset(cfg.Seed)
	return r, nil
}

// Reset returns the head to rest and reseeds the wander noise.
func (r *Rig) Reset(seed int64) {
	r.noise = perlin.NewPerlin(rigNoiseAlpha, rigNoiseBeta, rigNoiseN, seed)
	r.head = r.base
	r.vel = mgl64.Vec3{}
	r.t = 0
}

// SetWander changes the head motion amplitude and frequency.
func (r *Rig) SetWander(amplitude, frequency float64) {
	r.amplitude = amplitude
	r.frequency = frequency
}

// Advance moves the head dt seconds along its wander path.
func (r *Rig) Advance(dt float64) {
	if !(dt > 0) {
		return
	}
	if dt != r.springDT {
		r.spring = harmonica.NewSpring(dt, rigSpringFrequency, rigSpringDamping)
		r.springDT = dt
	}
	r.t += dt
	target := r.base
	if r.amplitude != 0 {
		x := r.t * r.frequency
		target = target.Add(mgl64.Vec3{
			r.noise.Noise2D(x, 0),
			r.noise.Noise2D(x, 17.3) * 0.5,
			r.noise.Noise2D(x, 41.9) * 0.25,
		}.Mul(r.amplitude))
	}
	for i := range r.head {
		r.head[i], r.vel[i] = r.spring.Update(r.head[i], r.vel[i], target[i])
	}
}

func (r *Rig) Strands() int { return len(r.rest) }

// Anchor returns the rest root of strand carried along with the head.
func (r *Rig) Anchor(strand int) mgl64.Vec3 {
	return r.rest[strand].Add(r.head.Sub(r.base))
}

func (r *Rig) Head() mgl64.Vec3 { return r.head }
func (r *Rig) Plane() Plane     { return r.plane }

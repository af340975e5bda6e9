package curls

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrInvalidShape reports a non-positive strand or point count.
	ErrInvalidShape = errors.New("curls: strand and point counts must be positive")
	// ErrTooFewControlPoints reports a layout without both control points.
	ErrTooFewControlPoints = errors.New("curls: at least two control points are required")
	// ErrZeroNormal reports a collision plane without a usable normal.
	ErrZeroNormal = errors.New("curls: plane normal must be non-zero")
	// ErrAnchorMismatch reports an environment driving a different number of
	// strands than the simulator owns.
	ErrAnchorMismatch = errors.New("curls: environment anchor count does not match strand count")
)

// Params holds the physical tunables read by every step.
type Params struct {
	// MaxSpringLength is the segment length beyond which the spring engages.
	MaxSpringLength float64
	// SpringDampening scales the spring pull per unit of excess length.
	SpringDampening float64
	// FrictionStrength is the fraction of the accumulated acceleration
	// magnitude turned into drag.
	FrictionStrength float64
	// MicroFrictionStrength bounds the random lateral jitter added to the
	// friction direction.
	MicroFrictionStrength float64
	// CollisionStrength scales both the head and the plane push.
	CollisionStrength float64
	// HeadRadius is the distance from the head centre inside which points
	// are repelled.
	HeadRadius float64
	Gravity    mgl64.Vec3
}

// Config controls the strand layout, the collision scene and the tunables.
type Config struct {
	Strands int
	Points  int
	Spacing float64

	// Controls are the two reference positions strand roots are spread
	// between.
	Controls []mgl64.Vec3

	Head        mgl64.Vec3
	PlanePoint  mgl64.Vec3
	PlaneNormal mgl64.Vec3

	// WanderAmplitude and WanderFrequency drive the head motion of the rig.
	// A zero amplitude keeps the head and anchors still.
	WanderAmplitude float64
	WanderFrequency float64

	Workers int
	Seed    int64

	Params Params
}

// DefaultParams returns the standard tunables.
func DefaultParams() Params {
	return Params{
		MaxSpringLength:       1.0,
		SpringDampening:       10.0,
		FrictionStrength:      0.01,
		MicroFrictionStrength: 1.0,
		CollisionStrength:     10.0,
		HeadRadius:            5.0,
		Gravity:               mgl64.Vec3{0, -9.81, 0},
	}
}

// DefaultConfig returns the standard configuration: sixteen strands of
// sixteen points draped over a head of radius five, kept behind a face plane.
func DefaultConfig() Config {
	return Config{
		Strands:         16,
		Points:          16,
		Spacing:         2.0,
		Controls:        []mgl64.Vec3{{-4, 3, -1}, {4, 3, -1}},
		Head:            mgl64.Vec3{0, 0, 0},
		PlanePoint:      mgl64.Vec3{0, 0, 3},
		PlaneNormal:     mgl64.Vec3{0, 0, -1},
		WanderAmplitude: 1.5,
		WanderFrequency: 0.4,
		Workers:         1,
		Seed:            1337,
		Params:          DefaultParams(),
	}
}

// Validate reports configuration errors that would make the simulation
// meaningless. It is checked once at setup.
func (c Config) Validate() error {
	if c.Strands <= 0 || c.Points <= 0 {
		return fmt.Errorf("%w: %d strands of %d points", ErrInvalidShape, c.Strands, c.Points)
	}
	if len(c.Controls) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewControlPoints, len(c.Controls))
	}
	if c.PlaneNormal.Len() == 0 {
		return ErrZeroNormal
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["strands"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Strands = parsed
		}
	}
	if v, ok := cfg["points"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Points = parsed
		}
	}
	if v, ok := cfg["spacing"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Spacing = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["head"]; ok {
		if parsed, err := ParseVec3(v); err == nil {
			c.Head = parsed
		}
	}
	if v, ok := cfg["plane_point"]; ok {
		if parsed, err := ParseVec3(v); err == nil {
			c.PlanePoint = parsed
		}
	}
	if v, ok := cfg["plane_normal"]; ok {
		if parsed, err := ParseVec3(v); err == nil && parsed.Len() > 0 {
			c.PlaneNormal = parsed
		}
	}
	if v, ok := cfg["control_a"]; ok {
		if parsed, err := ParseVec3(v); err == nil {
			c.Controls[0] = parsed
		}
	}
	if v, ok := cfg["control_b"]; ok {
		if parsed, err := ParseVec3(v); err == nil {
			c.Controls[1] = parsed
		}
	}
	// gravity sets the whole vector, so it goes before gravity_y.
	if v, ok := cfg["gravity"]; ok {
		ApplyParam(&c, "gravity", v)
	}
	for _, ctrl := range controls {
		if v, ok := cfg[ctrl.Key]; ok {
			ApplyParam(&c, ctrl.Key, v)
		}
	}
	return c
}

// ApplyParam parses value into the tunable named by key. It reports whether
// key named a tunable and the value was accepted.
func ApplyParam(c *Config, key, value string) bool {
	if key == "gravity" {
		parsed, err := ParseVec3(value)
		if err != nil {
			return false
		}
		c.Params.Gravity = parsed
		return true
	}
	field := floatField(c, key)
	if field == nil {
		return false
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return false
	}
	if ctrl, ok := controlFor(key); ok {
		parsed = ctrl.Clamp(parsed)
	}
	*field = parsed
	return true
}

func floatField(c *Config, key string) *float64 {
	switch key {
	case "max_spring_length":
		return &c.Params.MaxSpringLength
	case "spring_dampening":
		return &c.Params.SpringDampening
	case "friction_strength":
		return &c.Params.FrictionStrength
	case "micro_friction_strength":
		return &c.Params.MicroFrictionStrength
	case "collision_strength":
		return &c.Params.CollisionStrength
	case "head_radius":
		return &c.Params.HeadRadius
	case "gravity_y":
		return &c.Params.Gravity[1]
	case "wander_amplitude":
		return &c.WanderAmplitude
	case "wander_frequency":
		return &c.WanderFrequency
	}
	return nil
}

// ParseVec3 parses a vector written as "x,y,z". Every component must be
// finite.
func ParseVec3(s string) (mgl64.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("curls: vector %q must have three components", s)
	}
	var v mgl64.Vec3
	for i, part := range parts {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("curls: vector %q: %w", s, err)
		}
		if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return mgl64.Vec3{}, fmt.Errorf("curls: vector %q has a non-finite component", s)
		}
		v[i] = parsed
	}
	return v, nil
}

// FormatVec3 renders v in the form accepted by ParseVec3.
func FormatVec3(v mgl64.Vec3) string {
	return strconv.FormatFloat(v[0], 'f', -1, 64) + "," +
		strconv.FormatFloat(v[1], 'f', -1, 64) + "," +
		strconv.FormatFloat(v[2], 'f', -1, 64)
}

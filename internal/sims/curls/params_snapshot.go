package curls

import (
	"strconv"

	"curls/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

var controls = []core.ParameterControl{
	{Key: "max_spring_length", Label: "Max spring length", Step: 0.1, Min: 0, HasMin: true},
	{Key: "spring_dampening", Label: "Spring dampening", Step: 0.5, Min: 0, HasMin: true},
	{Key: "friction_strength", Label: "Friction", Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "micro_friction_strength", Label: "Micro friction", Step: 0.1, Min: 0, HasMin: true},
	{Key: "collision_strength", Label: "Collision", Step: 0.5, Min: 0, HasMin: true},
	{Key: "head_radius", Label: "Head radius", Step: 0.25, Min: 0, HasMin: true},
	{Key: "gravity_y", Label: "Gravity Y", Step: 0.5},
	{Key: "wander_amplitude", Label: "Wander", Step: 0.25, Min: 0, HasMin: true},
	{Key: "wander_frequency", Label: "Wander speed", Step: 0.05, Min: 0, HasMin: true},
}

func controlFor(key string) (core.ParameterControl, bool) {
	for _, c := range controls {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// ParameterControls lists the tunables the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), controls...)
}

// SetFloatParameter updates a tunable between steps, clamping it to the
// control bounds. It reports whether the key was recognised.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if !ApplyParam(&w.cfg, key, strconv.FormatFloat(value, 'g', -1, 64)) {
		return false
	}
	w.sim.SetParams(w.cfg.Params)
	w.rig.SetWander(w.cfg.WanderAmplitude, w.cfg.WanderFrequency)
	return true
}

// Parameters returns a snapshot of the current configuration.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Strands",
			Params: []core.Parameter{
				intParam("strands", "Strands", w.cfg.Strands),
				intParam("points", "Points per strand", w.cfg.Points),
				floatParam("spacing", "Point spacing", w.cfg.Spacing),
				intParam("workers", "Workers", w.cfg.Workers),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Spring",
			Params: []core.Parameter{
				floatParam("max_spring_length", "Max spring length", params.MaxSpringLength),
				floatParam("spring_dampening", "Spring dampening", params.SpringDampening),
			},
		},
		{
			Name: "Friction",
			Params: []core.Parameter{
				floatParam("friction_strength", "Friction", params.FrictionStrength),
				floatParam("micro_friction_strength", "Micro friction", params.MicroFrictionStrength),
			},
		},
		{
			Name: "Collision",
			Params: []core.Parameter{
				floatParam("collision_strength", "Collision", params.CollisionStrength),
				floatParam("head_radius", "Head radius", params.HeadRadius),
				vecParam("head", "Head rest", w.cfg.Head),
				vecParam("plane_point", "Plane point", w.cfg.PlanePoint),
				vecParam("plane_normal", "Plane normal", w.cfg.PlaneNormal),
			},
		},
		{
			Name: "Environment",
			Params: []core.Parameter{
				vecParam("gravity", "Gravity", params.Gravity),
				floatParam("wander_amplitude", "Wander", w.cfg.WanderAmplitude),
				floatParam("wander_frequency", "Wander speed", w.cfg.WanderFrequency),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func vecParam(key, label string, value mgl64.Vec3) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeVec3,
		Value: FormatVec3(value),
	}
}

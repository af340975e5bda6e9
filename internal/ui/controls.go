package ui

import (
	"image"
	"math"
	"strconv"
	"strings"

	"curls/internal/core"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)

// refreshControlValues copies the snapshot values into the control states.
func refreshControlValues(controls []hudControlState, snapshot core.ParameterSnapshot) {
	for i := range controls {
		state := &controls[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok && state.control.Key == "gravity_y" {
			param, ok = gravityY(snapshot)
		}
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = formatFloat(state.control, parsed)
		state.hasValue = true
	}
}

// gravityY exposes the Y component of the gravity vector as a float parameter.
func gravityY(snapshot core.ParameterSnapshot) (core.Parameter, bool) {
	p, ok := snapshot.Lookup("gravity")
	if !ok || p.Type != core.ParamTypeVec3 {
		return core.Parameter{}, false
	}
	parts := strings.Split(p.Value, ",")
	if len(parts) != 3 {
		return core.Parameter{}, false
	}
	return core.Parameter{Key: "gravity_y", Type: core.ParamTypeFloat, Value: strings.TrimSpace(parts[1])}, true
}

// adjustedValue returns the value one step away from the current one in the
// given direction, clamped to the control bounds. It reports false when the
// step would not change anything.
func adjustedValue(state *hudControlState, direction int) (float64, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.control.Clamp(state.floatValue + float64(direction)*step)
	if math.Abs(target-state.floatValue) < 1e-9 {
		return 0, false
	}
	return target, true
}

func layoutControls(controls []hudControlState, width int) {
	if len(controls) == 0 || width <= 0 {
		return
	}
	for i := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = top
		controls[i].minusRect = minusRect
		controls[i].plusRect = plusRect
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

package curls

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// rootBias separates the two halves of the strand fan so the ping-pong sweep
// never stacks two roots on the same spot.
const rootBias = 0.1

// Layout returns the initial strand-major positions for strands chains of
// points each. Roots sweep between the first two controls and back again,
// and each point below a root hangs spacing units further down the Y axis.
func Layout(controls []mgl64.Vec3, strands, points int, spacing float64) ([]mgl64.Vec3, error) {
	if strands <= 0 || points <= 0 {
		return nil, fmt.Errorf("%w: %d strands of %d points", ErrInvalidShape, strands, points)
	}
	if len(controls) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewControlPoints, len(controls))
	}

	out := make([]mgl64.Vec3, strands*points)
	for s := 0; s < strands; s++ {
		root := RootPosition(controls[0], controls[1], s, strands)
		base := s * points
		for p := 0; p < points; p++ {
			out[base+p] = root.Sub(mgl64.Vec3{0, float64(p) * spacing, 0})
		}
	}
	return out, nil
}

// RootPosition returns the root of strand index out of count, interpolated
// between a and b.
func RootPosition(a, b mgl64.Vec3, index, count int) mgl64.Vec3 {
	alpha := 0.0
	if count > 1 {
		alpha = float64(index) / float64(count-1)
	}
	t := pingPong(alpha, 0.5) * 2
	root := lerp(a, b, t)
	if alpha < 0.5 {
		root[0] -= rootBias
	} else {
		root[0] += rootBias
	}
	return root
}

// Roots extracts point zero of every strand from a strand-major slice.
func Roots(points []mgl64.Vec3, perStrand int) []mgl64.Vec3 {
	if perStrand <= 0 {
		return nil
	}
	roots := make([]mgl64.Vec3, 0, len(points)/perStrand)
	for i := 0; i+perStrand <= len(points); i += perStrand {
		roots = append(roots, points[i])
	}
	return roots
}

// pingPong folds t into [0, length], rising for one length and falling for
// the next.
func pingPong(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	period := length * 2
	r := t - math.Floor(t/period)*period
	return length - math.Abs(r-length)
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

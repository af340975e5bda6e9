package curls

import "github.com/go-gl/mathgl/mgl64"

// springAccel pulls pos toward prev once the segment between them is longer
// than maxLen. Slack segments produce no force.
func springAccel(prev, pos mgl64.Vec3, maxLen, dampening float64) mgl64.Vec3 {
	delta := prev.Sub(pos)
	l := delta.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	excess := l - maxLen
	if excess <= 0 {
		return mgl64.Vec3{}
	}
	return delta.Mul(excess * dampening / l)
}

// frictionAccel opposes the acceleration accumulated so far. The direction is
// skewed along X by jitter and the magnitude is a fraction of |accel|.
func frictionAccel(accel mgl64.Vec3, jitter, strength float64) mgl64.Vec3 {
	l := accel.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	dir := accel.Mul(-1 / l)
	dir[0] += jitter
	return dir.Mul(l * strength)
}

package curls

import "github.com/go-gl/mathgl/mgl64"

// Plane is an oriented half-space boundary. Points on the side the normal
// points to are outside; everything else is pushed back out.
type Plane struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// NewPlane returns a plane through point with the normalised normal.
func NewPlane(point, normal mgl64.Vec3) (Plane, error) {
	l := normal.Len()
	if l == 0 {
		return Plane{}, ErrZeroNormal
	}
	return Plane{Point: point, Normal: normal.Mul(1 / l)}, nil
}

// SignedDistance is positive in front of the plane and negative behind it.
func (p Plane) SignedDistance(v mgl64.Vec3) float64 {
	return p.Normal.Dot(v.Sub(p.Point))
}

// headAccel pushes a point away from the head centre with a constant
// magnitude while it is inside radius. A point exactly at the centre has no
// direction and gets nothing.
func headAccel(pos, head mgl64.Vec3, radius, strength float64) mgl64.Vec3 {
	away := pos.Sub(head)
	d := away.Len()
	if d == 0 || d >= radius {
		return mgl64.Vec3{}
	}
	return away.Mul(strength / d)
}

// planeAccel pushes a point on or behind the plane back out, proportionally
// to its penetration depth.
func planeAccel(pos mgl64.Vec3, plane Plane, strength float64) mgl64.Vec3 {
	d := plane.SignedDistance(pos)
	if d > 0 {
		return mgl64.Vec3{}
	}
	return plane.Normal.Mul(-d * strength)
}

func collisionAccel(pos mgl64.Vec3, f frame, p Params) mgl64.Vec3 {
	return headAccel(pos, f.head, p.HeadRadius, p.CollisionStrength).
		Add(planeAccel(pos, f.plane, p.CollisionStrength))
}

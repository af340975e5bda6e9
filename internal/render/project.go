package render

import (
	"errors"
	"fmt"
	"math"

	"curls/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInstanceMismatch reports a point buffer that does not line up 1:1 with
// the projector's instances.
var ErrInstanceMismatch = errors.New("render: point count does not match instance count")

// Instance is the on-screen placement of one simulated point.
type Instance struct {
	X, Y    int
	Visible bool
}

// Projector places points into a ByteGrid with an orthographic front view:
// world X maps to the grid's columns, world Y to its rows (up is up) and Z
// is dropped. Points are matched to instances by flat index.
type Projector struct {
	grid      *core.ByteGrid
	instances []Instance
	perStrand int
	center    mgl64.Vec3
	scale     float64
}

// NewProjector returns a projector for shape drawing into grid, centred on
// center with scale grid cells per world unit.
func NewProjector(grid *core.ByteGrid, shape core.Shape, center mgl64.Vec3, scale float64) *Projector {
	if scale <= 0 {
		scale = 1
	}
	return &Projector{
		grid:      grid,
		instances: make([]Instance, shape.Total()),
		perStrand: shape.Points,
		center:    center,
		scale:     scale,
	}
}

// Check verifies once at setup that points can be placed 1:1.
func (p *Projector) Check(points []mgl64.Vec3) error {
	if len(points) != len(p.instances) {
		return fmt.Errorf("%w: %d points for %d instances", ErrInstanceMismatch, len(points), len(p.instances))
	}
	return nil
}

// Instances exposes the placements computed by the last Place call.
func (p *Projector) Instances() []Instance { return p.instances }

// ToGrid converts a world position to grid coordinates.
func (p *Projector) ToGrid(v mgl64.Vec3) (int, int) {
	x := float64(p.grid.W)/2 + (v[0]-p.center[0])*p.scale
	y := float64(p.grid.H)/2 - (v[1]-p.center[1])*p.scale
	return int(math.Floor(x)), int(math.Floor(y))
}

// Place clears the grid, draws the head disc and then every point. Points
// beyond the instance count are ignored.
func (p *Projector) Place(points []mgl64.Vec3, head mgl64.Vec3, headRadius float64) {
	p.grid.Clear()
	p.drawDisc(head, headRadius)
	for i := range p.instances {
		if i >= len(points) {
			p.instances[i] = Instance{}
			continue
		}
		x, y := p.ToGrid(points[i])
		p.instances[i] = Instance{X: x, Y: y, Visible: p.grid.In(x, y)}
		cell := CellCurl
		if p.perStrand > 0 && i%p.perStrand == 0 {
			cell = CellRoot
		}
		p.grid.Set(x, y, cell)
	}
}

func (p *Projector) drawDisc(c mgl64.Vec3, radius float64) {
	if radius <= 0 {
		return
	}
	cx, cy := p.ToGrid(c)
	r := int(math.Ceil(radius * p.scale))
	r2 := radius * p.scale * radius * p.scale
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) > r2 {
				continue
			}
			p.grid.Set(cx+dx, cy+dy, CellHead)
		}
	}
}

// Center returns the midpoint of the bounding box of points.
func Center(points []mgl64.Vec3) mgl64.Vec3 {
	if len(points) == 0 {
		return mgl64.Vec3{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		for i := range p {
			lo[i] = math.Min(lo[i], p[i])
			hi[i] = math.Max(hi[i], p[i])
		}
	}
	return lo.Add(hi).Mul(0.5)
}

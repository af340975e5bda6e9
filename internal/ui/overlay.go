//go:build ebiten

package ui

import (
	"image/color"

	"curls/internal/core"
	"curls/internal/render"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type planeProvider interface {
	PlaneTrace() (a, b mgl64.Vec3, ok bool)
}

// Overlay draws optional debugging visuals on top of the base raster.
type Overlay struct {
	sim       core.Sim
	projector *render.Projector
	scale     int

	showSegments bool
	showPlane    bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, projector *render.Projector, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, projector: projector, scale: scale, showSegments: true}
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSegments = !o.showSegments
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showPlane = !o.showPlane
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showSegments {
		o.drawSegments(screen)
	}
	if o.showPlane {
		if provider, ok := o.sim.(planeProvider); ok {
			if a, b, ok := provider.PlaneTrace(); ok {
				o.line(screen, a, b, 1.5, color.RGBA{R: 90, G: 160, B: 220, A: 255})
			}
		}
	}
}

func (o *Overlay) drawSegments(screen *ebiten.Image) {
	shape := o.sim.Shape()
	points := o.sim.Positions()
	if len(points) != shape.Total() {
		return
	}
	col := color.RGBA{R: 200, G: 138, B: 60, A: 160}
	for s := 0; s < shape.Strands; s++ {
		base := s * shape.Points
		for p := 1; p < shape.Points; p++ {
			o.line(screen, points[base+p-1], points[base+p], 1, col)
		}
	}
}

func (o *Overlay) line(screen *ebiten.Image, a, b mgl64.Vec3, width float32, col color.Color) {
	ax, ay := o.projector.ToGrid(a)
	bx, by := o.projector.ToGrid(b)
	half := float32(o.scale) / 2
	vector.StrokeLine(screen,
		float32(ax*o.scale)+half, float32(ay*o.scale)+half,
		float32(bx*o.scale)+half, float32(by*o.scale)+half,
		width, col, true)
}

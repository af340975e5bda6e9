package render

import (
	"errors"
	"image/color"
	"testing"

	"curls/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

func TestProjectorCheck(t *testing.T) {
	p := NewProjector(core.NewByteGrid(10, 10), core.Shape{Strands: 2, Points: 3}, mgl64.Vec3{}, 1)
	if err := p.Check(make([]mgl64.Vec3, 6)); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if err := p.Check(make([]mgl64.Vec3, 5)); !errors.Is(err, ErrInstanceMismatch) {
		t.Fatalf("err = %v, want ErrInstanceMismatch", err)
	}
}

func TestProjectorPlace(t *testing.T) {
	grid := core.NewByteGrid(20, 20)
	p := NewProjector(grid, core.Shape{Strands: 1, Points: 3}, mgl64.Vec3{}, 2)
	points := []mgl64.Vec3{{0, 0, 0}, {0, -2, 5}, {100, 0, 0}}
	p.Place(points, mgl64.Vec3{0, 4, 0}, 0)

	inst := p.Instances()
	if inst[0] != (Instance{X: 10, Y: 10, Visible: true}) {
		t.Fatalf("root instance = %+v", inst[0])
	}
	if inst[1] != (Instance{X: 10, Y: 14, Visible: true}) {
		t.Fatalf("curl instance = %+v", inst[1])
	}
	if inst[2].Visible {
		t.Fatalf("off-grid point should be hidden: %+v", inst[2])
	}
	if got := grid.Cells()[grid.Index(10, 10)]; got != CellRoot {
		t.Fatalf("root cell = %d, want %d", got, CellRoot)
	}
	if got := grid.Cells()[grid.Index(10, 14)]; got != CellCurl {
		t.Fatalf("curl cell = %d, want %d", got, CellCurl)
	}
}

func TestProjectorDrawsHeadUnderPoints(t *testing.T) {
	grid := core.NewByteGrid(21, 21)
	p := NewProjector(grid, core.Shape{Strands: 1, Points: 2}, mgl64.Vec3{}, 1)
	p.Place([]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}, mgl64.Vec3{}, 3)

	if got := grid.Cells()[grid.Index(10, 10)]; got != CellRoot {
		t.Fatalf("root over head = %d, want %d", got, CellRoot)
	}
	if got := grid.Cells()[grid.Index(10, 12)]; got != CellHead {
		t.Fatalf("head cell = %d, want %d", got, CellHead)
	}
	if got := grid.Cells()[grid.Index(10, 15)]; got != CellEmpty {
		t.Fatalf("outside head = %d, want empty", got)
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	cells := []uint8{0, 1, 9}
	buf := make([]byte, len(cells)*4)
	palette := []color.RGBA{{1, 2, 3, 4}, {5, 6, 7, 8}}
	fillPaletteRGBA(buf, cells, palette)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 5, 6, 7, 8}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette left buf[%d] = %d", i, b)
		}
	}
}

func TestCenter(t *testing.T) {
	if got := Center(nil); got != (mgl64.Vec3{}) {
		t.Fatalf("empty center = %v", got)
	}
	got := Center([]mgl64.Vec3{{-2, 4, 0}, {6, -10, 2}, {0, 0, 1}})
	if want := (mgl64.Vec3{2, -3, 1}); got != want {
		t.Fatalf("center = %v, want %v", got, want)
	}
}

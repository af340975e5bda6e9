package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool { return x >= 0 && y >= 0 && x < g.W && y < g.H }

// Set writes v at (x, y), ignoring coordinates outside the grid. Values never
// overwrite a higher value already stored in the cell.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.In(x, y) {
		return
	}
	idx := g.Index(x, y)
	if g.data[idx] < v {
		g.data[idx] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

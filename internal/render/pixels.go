package render

import "image/color"

// Palette indices written into the raster by Projector.
const (
	CellEmpty uint8 = iota
	CellHead
	CellCurl
	CellRoot
)

// DefaultPalette colours the raster cells, indexed by the Cell constants.
var DefaultPalette = []color.RGBA{
	CellEmpty: {0x10, 0x10, 0x14, 0xff},
	CellHead:  {0x3a, 0x2e, 0x2a, 0xff},
	CellCurl:  {0xc8, 0x8a, 0x3c, 0xff},
	CellRoot:  {0xf4, 0xe2, 0xb0, 0xff},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

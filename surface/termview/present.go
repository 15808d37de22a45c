package termview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/nacardin/rectshow/raster"
)

// Each terminal cell shows two vertically stacked buffer regions
// through the upper-half block: foreground paints the upper region,
// background the lower one.
const halfBlock = '▀'

// present repaints the whole terminal from the pixel buffer. Cells map
// to buffer regions by integer subdivision; regions are averaged in
// linear RGB before conversion to terminal colors.
func (v *View) present(buf *raster.PixelBuffer) {
	cw, ch := v.screen.Size()
	if cw <= 0 || ch <= 0 {
		return
	}

	for cy := 0; cy < ch; cy++ {
		for cx := 0; cx < cw; cx++ {
			x0, x1 := span(uint32(cx), uint32(cw), buf.W)
			ty0, ty1 := span(uint32(2*cy), uint32(2*ch), buf.H)
			by0, by1 := span(uint32(2*cy+1), uint32(2*ch), buf.H)

			top := regionAvg(buf, x0, x1, ty0, ty1)
			bottom := regionAvg(buf, x0, x1, by0, by1)

			style := tcell.StyleDefault.
				Foreground(toTcell(top)).
				Background(toTcell(bottom))
			v.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

// span maps sub-row/column i of n onto buffer axis extent, returning a
// non-empty half-open range clamped to the buffer
func span(i, n, extent uint32) (uint32, uint32) {
	lo := i * extent / n
	hi := (i + 1) * extent / n
	if lo >= extent {
		lo = extent - 1
	}
	if hi <= lo {
		hi = lo + 1
	}
	if hi > extent {
		hi = extent
	}
	return lo, hi
}

// regionAvg averages a pixel region in linear RGB
func regionAvg(buf *raster.PixelBuffer, x0, x1, y0, y1 uint32) colorful.Color {
	var r, g, b float64
	n := 0
	for y := y0; y < y1; y++ {
		row := buf.Pix[y*buf.W : (y+1)*buf.W]
		for x := x0; x < x1; x++ {
			_, pr, pg, pb := raster.Split(row[x])
			lr, lg, lb := colorful.Color{
				R: float64(pr) / 255.0,
				G: float64(pg) / 255.0,
				B: float64(pb) / 255.0,
			}.LinearRgb()
			r += lr
			g += lg
			b += lb
			n++
		}
	}
	if n == 0 {
		return colorful.Color{}
	}
	fn := float64(n)
	return colorful.LinearRgb(r/fn, g/fn, b/fn).Clamped()
}

// toTcell converts a color to the terminal's RGB color space
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

package postprocess

import (
	"g3vec/internal/mathutil"
	"g3vec/internal/normalmap"
)

// DownsampleField box-filters f to fit maxSize. Each output normal is the
// renormalized sum of the source normals it covers. Zero normals add
// nothing, so a block of empty texels stays empty.
func DownsampleField(f *normalmap.Field, maxSize int) *normalmap.Field {
	tw, th := FitSize(f.Width, f.Height, maxSize)
	if tw == f.Width && th == f.Height {
		return f
	}

	out := normalmap.NewField(tw, th)
	for oy := 0; oy < th; oy++ {
		y0, y1 := span(oy, th, f.Height)
		for ox := 0; ox < tw; ox++ {
			x0, x1 := span(ox, tw, f.Width)
			var sum mathutil.Vector3f
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					sum.Add(f.At(x, y))
				}
			}
			sum.Normalize()
			out.Set(ox, oy, sum)
		}
	}
	return out
}

// span returns the source range [lo, hi) that output index i covers when n
// texels shrink to m (m <= n).
func span(i, m, n int) (int, int) {
	return i * n / m, (i + 1) * n / m
}

// Package hostvec converts mathutil vectors to and from the vector
// representations of other libraries.
package hostvec

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/deeean/go-vector/vector3"
	"github.com/twpayne/go-geom"

	"g3vec/internal/mathutil"
)

// ToCoord returns v as an XYZ geom.Coord.
func ToCoord(v mathutil.Vector3d) geom.Coord {
	return geom.Coord{v[0], v[1], v[2]}
}

// FromCoord reads the first three ordinates of c. Extra ordinates (M) are ignored.
func FromCoord(c geom.Coord) (mathutil.Vector3d, error) {
	v, err := mathutil.FromSlice([]float64(c))
	if err != nil {
		return mathutil.Vector3d{}, fmt.Errorf("hostvec: coord: %w", err)
	}
	return v, nil
}

// ToPoint returns v as an XYZ point geometry.
func ToPoint(v mathutil.Vector3d) *geom.Point {
	return geom.NewPointFlat(geom.XYZ, []float64{v[0], v[1], v[2]})
}

func FromPoint(p *geom.Point) (mathutil.Vector3d, error) {
	if p.Layout().Stride() < 3 {
		return mathutil.Vector3d{}, fmt.Errorf("hostvec: point layout %v has no Z", p.Layout())
	}
	return FromCoord(p.Coords())
}

func ToGoVector(v mathutil.Vector3d) *vector3.Vector3 {
	return &vector3.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func FromGoVector(g *vector3.Vector3) mathutil.Vector3d {
	return mathutil.Vector3d{g.X, g.Y, g.Z}
}

// ToNRGBA maps components in [0, 1] to 8-bit channels. Out-of-range
// components are clamped; alpha is opaque.
func ToNRGBA(v mathutil.Vector3f) color.NRGBA {
	return color.NRGBA{R: unit8(v[0]), G: unit8(v[1]), B: unit8(v[2]), A: 255}
}

// FromNRGBA maps 8-bit channels to [0, 1]. Alpha is dropped.
func FromNRGBA(c color.NRGBA) mathutil.Vector3f {
	return mathutil.Vector3f{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

func unit8(f float32) uint8 {
	if math32.IsNaN(f) {
		return 0
	}
	return uint8(mathutil.Clamp(f, 0, 1)*255 + 0.5)
}

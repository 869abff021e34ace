package normalmap

import (
	"image"
	"image/color"
	"math"
	"testing"

	"g3vec/internal/mathutil"
)

func TestDecodeFlat(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{128, 128, 255, 255})
		}
	}
	f := Decode(img)
	if f.Width != 3 || f.Height != 2 || len(f.N) != 6 {
		t.Fatalf("field size = %dx%d (%d)", f.Width, f.Height, len(f.N))
	}
	up := mathutil.AxisZ[float32]()
	for i, n := range f.N {
		if math.Abs(float64(n.Length())-1) > 1e-6 {
			t.Errorf("texel %d length = %v", i, n.Length())
		}
		if a := n.AngleD(up); a > 1 {
			t.Errorf("texel %d is %v° from up", i, a)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{128, 128, 255, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 128, 128, 255})
	img.SetNRGBA(0, 1, color.NRGBA{128, 0, 128, 255})
	img.SetNRGBA(1, 1, color.NRGBA{218, 128, 218, 255})

	out := Encode(Decode(img))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want, got := img.NRGBAAt(x, y), out.NRGBAAt(x, y)
			for c, d := range []int{
				int(want.R) - int(got.R),
				int(want.G) - int(got.G),
				int(want.B) - int(got.B),
			} {
				if d < -1 || d > 1 {
					t.Errorf("(%d,%d) channel %d: got %v want %v", x, y, c, got, want)
				}
			}
		}
	}
}

func TestEncodeZero(t *testing.T) {
	img := Encode(NewField(1, 1))
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{128, 128, 128, 255}) {
		t.Errorf("zero normal encodes as %v", got)
	}
}

func TestRenormalize(t *testing.T) {
	f := NewField(2, 1)
	f.Set(0, 0, mathutil.New[float32](0, 3, 4))
	if n := f.Renormalize(); n != 1 {
		t.Errorf("degenerate = %d, want 1", n)
	}
	if got := f.At(0, 0); math.Abs(float64(got[1])-0.6) > 1e-6 || math.Abs(float64(got[2])-0.8) > 1e-6 {
		t.Errorf("renormalized = %v", got)
	}
	if f.At(1, 0) != mathutil.Zero[float32]() {
		t.Errorf("zero texel changed: %v", f.At(1, 0))
	}
}

func TestBlend(t *testing.T) {
	a, b := NewField(1, 1), NewField(1, 1)
	a.Set(0, 0, mathutil.AxisX[float32]())
	b.Set(0, 0, mathutil.AxisY[float32]())

	if got := Blend(a, b, 0).At(0, 0); got != mathutil.AxisX[float32]() {
		t.Errorf("Blend(0) = %v", got)
	}
	mid := Blend(a, b, 0.5).At(0, 0)
	if d := float64(mid.AngleD(mathutil.AxisX[float32]())); math.Abs(d-45) > 1e-3 {
		t.Errorf("Blend(0.5) is %v° from X", d)
	}

	c := NewField(1, 1)
	c.Set(0, 0, mathutil.AxisX[float32]().Neg())
	if got := Blend(a, c, 0.5).At(0, 0); got != mathutil.Zero[float32]() {
		t.Errorf("opposite blend = %v, want zero", got)
	}
}

func TestWithStrength(t *testing.T) {
	f := NewField(1, 1)
	tilted := mathutil.DirectionFromAngles(0, 30)
	f.Set(0, 0, mathutil.Narrow(tilted))

	if got := f.WithStrength(0).At(0, 0); got != mathutil.AxisZ[float32]() {
		t.Errorf("strength 0 = %v, want flat", got)
	}
	up := mathutil.AxisZ[float32]()
	base := float64(f.At(0, 0).AngleD(up))
	soft := float64(f.WithStrength(0.5).At(0, 0).AngleD(up))
	hard := float64(f.WithStrength(2).At(0, 0).AngleD(up))
	if !(soft < base && base < hard) {
		t.Errorf("tilt soft=%v base=%v hard=%v", soft, base, hard)
	}
	if math.Abs(float64(f.WithStrength(1).At(0, 0).Length())-1) > 1e-6 {
		t.Error("strength 1 not unit length")
	}
}

func TestWithStrengthKeepsZero(t *testing.T) {
	f := NewField(1, 1)
	if got := f.WithStrength(3).At(0, 0); got != mathutil.Zero[float32]() {
		t.Errorf("zero texel = %v, want zero", got)
	}
}

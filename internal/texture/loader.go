package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// Load reads a TGA, BMP, PNG or JPEG file and returns an NRGBA image.
func Load(path string) (*image.NRGBA, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(ext) {
		return nil, fmt.Errorf("texture: unknown extension: %s", ext)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}

	// tga registers with an empty magic string and would claim every file
	// through image.Decode, so pick the decoder by extension.
	img, err := decoderFor(ext)(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// Supported reports whether ext (with dot, any case) is a loadable format.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".tga", ".bmp", ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

func decoderFor(ext string) func(io.Reader) (image.Image, error) {
	switch ext {
	case ".tga":
		return tga.Decode
	case ".bmp":
		return bmp.Decode
	case ".png":
		return png.Decode
	default:
		return jpeg.Decode
	}
}

// toNRGBA converts any image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha — draw and set alpha to 255
		draw.Draw(dst, b, src, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Pix[dst.PixOffset(x, y)+3] = 255
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				dst.SetNRGBA(x, y, c)
			}
		}
	}
	return dst
}

package batch

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"g3vec/internal/shade"

	"github.com/HugoSmits86/nativewebp"
)

func writeNormalMap(t *testing.T, path string, size int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(64 + x*8), uint8(64 + y*8), 230, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestRun(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeNormalMap(t, filepath.Join(in, "bumps.png"), 16)
	if err := os.WriteFile(filepath.Join(in, "broken.png"), []byte("nope"), 0644); err != nil {
		t.Fatal(err)
	}

	jobs := []Job{
		{Name: "bumps", Path: filepath.Join(in, "bumps.png")},
		{Name: "broken", Path: filepath.Join(in, "broken.png")},
	}
	cfg := Config{
		OutputDir:  out,
		Light:      shade.DefaultLightConfig(135, 45),
		OutputSize: 8,
		Strength:   1.5,
		Workers:    2,
	}

	results := Run(cfg, jobs)
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}

	ok := results[0]
	if !ok.Success || ok.Error != "" {
		t.Fatalf("bumps failed: %+v", ok)
	}
	data, err := os.ReadFile(ok.Output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) || !bytes.Contains(data[:16], []byte("WEBP")) {
		t.Errorf("output is not a WebP file: % x", data[:16])
	}

	if bad := results[1]; bad.Success || bad.Error == "" {
		t.Errorf("broken should fail: %+v", bad)
	}

	manifest := filepath.Join(out, "manifest.json")
	if err := WriteManifest(manifest, jobs, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	raw, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "bumps" || entries[0].Image != "bumps.webp" {
		t.Errorf("manifest = %+v", entries)
	}
}

func TestRunEmpty(t *testing.T) {
	if got := Run(Config{Workers: 4}, nil); len(got) != 0 {
		t.Errorf("Run(nil) = %v", got)
	}
}

func TestRunZeroStrengthFlattens(t *testing.T) {
	in := t.TempDir()
	writeNormalMap(t, filepath.Join(in, "bumps.png"), 16)

	results := Run(Config{
		OutputDir:  t.TempDir(),
		Light:      shade.DefaultLightConfig(135, 45),
		OutputSize: 8,
		Strength:   0,
		Workers:    1,
	}, []Job{{Name: "bumps", Path: filepath.Join(in, "bumps.png")}})
	if !results[0].Success {
		t.Fatalf("run failed: %+v", results[0])
	}

	f, err := os.Open(results[0].Output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := nativewebp.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Fatalf("output bounds = %v", img.Bounds())
	}

	// a flat field shades every texel the same
	r0, g0, b0, _ := img.At(0, 0).RGBA()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if diff16(r, r0) > 0x101 || diff16(g, g0) > 0x101 || diff16(b, b0) > 0x101 {
				t.Fatalf("(%d,%d) differs from (0,0) in a flat field", x, y)
			}
		}
	}
}

func TestWriteWebPRemovesFailedOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.webp")
	if err := writeWebP(path, image.NewNRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Fatal("expected encode error for an empty image")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("failed output left behind: %v", err)
	}
}

func diff16(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

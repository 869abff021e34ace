package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"g3vec/internal/normalmap"
	"g3vec/internal/postprocess"
	"g3vec/internal/shade"
	"g3vec/internal/texture"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir  string
	Light      shade.LightConfig
	OutputSize int
	Strength   float32 // normal strength, 0 = flat, 1 = as authored
	Workers    int
}

// Job is one normal map to shade.
type Job struct {
	Name string // output stem
	Path string
}

// Result holds the outcome of processing one job.
type Result struct {
	Name       string
	Output     string
	Degenerate int // texels that decoded to a zero normal
	Success    bool
	Error      string
}

// Run processes all jobs using a worker pool.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f maps/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{Name: job.Name}

	img, err := texture.Load(job.Path)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	field := normalmap.Decode(img)
	res.Degenerate = field.Renormalize()
	if cfg.Strength != 1 {
		field = field.WithStrength(cfg.Strength)
	}

	// shade at up to twice the output size, then filter the image down
	if cfg.OutputSize > 0 {
		field = postprocess.DownsampleField(field, 2*cfg.OutputSize)
	}
	out := shade.Render(field, cfg.Light)
	if cfg.OutputSize > 0 {
		out = postprocess.Downsample(out, cfg.OutputSize)
	}

	outPath := filepath.Join(cfg.OutputDir, job.Name+".webp")
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	if err := writeWebP(outPath, out); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Output = outPath
	res.Success = true
	return res
}

// writeWebP encodes img to path. A partially written file is removed.
func writeWebP(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("WebP encode: %w", err)
	}
	return nil
}

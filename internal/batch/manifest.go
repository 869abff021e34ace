package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one shaded map in the output manifest.
type ManifestEntry struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	Image      string `json:"image"`
	Degenerate int    `json:"degenerate_texels"`
}

// WriteManifest writes the successful results as JSON. Image paths are
// relative to the manifest's directory.
func WriteManifest(path string, jobs []Job, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for i, r := range results {
		if !r.Success {
			continue
		}
		img := r.Output
		if rel, err := filepath.Rel(filepath.Dir(path), r.Output); err == nil {
			img = filepath.ToSlash(rel)
		}
		entries = append(entries, ManifestEntry{
			Name:       r.Name,
			Source:     jobs[i].Path,
			Image:      img,
			Degenerate: r.Degenerate,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

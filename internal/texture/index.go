package texture

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Index lists the loadable images under a directory, keyed by lowercase stem.
// When two files share a stem, TGA wins.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks dir recursively for supported image files.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !Supported(ext) {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists || (ext == ".tga" && strings.ToLower(filepath.Ext(existing)) != ".tga") {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for an image name, or ("", false).
func (idx *Index) ResolvePath(name string) (string, bool) {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Stems returns the indexed stems in sorted order.
func (idx *Index) Stems() []string {
	stems := make([]string, 0, len(idx.entries))
	for s := range idx.entries {
		stems = append(stems, s)
	}
	sort.Strings(stems)
	return stems
}

// Len returns the number of indexed images.
func (idx *Index) Len() int {
	return len(idx.entries)
}

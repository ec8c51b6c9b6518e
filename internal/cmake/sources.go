package cmake

// sources.go — recursive source-file discovery for library and module
// targets. Discovery order is normalized by sorting relative paths
// lexicographically, so emitted source lists do not depend on the
// filesystem's directory-listing order.

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"scons2cmake/internal/settings"
)

// discoverSources walks dir recursively and returns the slash-normalized
// relative paths of every file whose extension is in exts, minus paths
// matching the settings exclude rules, sorted lexicographically.
func discoverSources(fsys afero.Fs, dir string, exts []string, cfg *settings.Settings) ([]string, error) {
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}

	var sources []string
	err := afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !extSet[filepath.Ext(path)] {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return fmt.Errorf("rel path %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)
		if cfg.IsExcluded(rel) {
			return nil
		}
		sources = append(sources, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	sort.Strings(sources)
	return sources, nil
}

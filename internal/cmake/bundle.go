package cmake

// bundle.go — generated-file bundle and its write path.
//
// Emitters never touch the filesystem directly: they fill a Bundle (relative
// path → file content) which is flushed in one pass after generation
// succeeds. Writing in sorted path order keeps runs idempotent and means a
// failed collection never leaves a partial target tree behind.

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Bundle holds pre-rendered target files (path → content). Paths are
// relative to the project root, using forward slashes.
//
// Only Generate populates a Bundle (add is deliberately unexported); callers
// inspect it through Paths/Content and flush it with Write.
type Bundle struct {
	files map[string]string
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{files: make(map[string]string)}
}

// add stores content under path, joining lines with a trailing newline.
func (b *Bundle) add(path string, lines []string) {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	b.files[path] = sb.String()
}

// Paths returns every file path in the bundle, sorted.
func (b *Bundle) Paths() []string {
	paths := make([]string, 0, len(b.files))
	for p := range b.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Content returns the rendered content for path.
func (b *Bundle) Content(path string) (string, bool) {
	c, ok := b.files[path]
	return c, ok
}

// Write flushes every file in the bundle under root, creating parent
// directories as needed. Files are written in sorted path order.
func (b *Bundle) Write(fsys afero.Fs, root string) error {
	for _, p := range b.Paths() {
		abs := filepath.Join(root, filepath.FromSlash(p))
		if err := fsys.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", filepath.Dir(abs), err)
		}
		if err := afero.WriteFile(fsys, abs, []byte(b.files[p]), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", abs, err)
		}
	}
	return nil
}

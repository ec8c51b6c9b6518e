package convert

// convert.go — the conversion pipeline: collect, generate, write.
//
// Collection completes entirely before any emitter runs, and all emitters
// render into an in-memory bundle that is flushed last, so a fatal error at
// any stage leaves the source descriptors untouched and writes nothing. The
// whole pipeline is deterministic for fixed source-tree contents; re-running
// it rewrites identical bytes.

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"scons2cmake/internal/cmake"
	"scons2cmake/internal/collect"
	"scons2cmake/internal/settings"
)

// Options configures a conversion run.
type Options struct {
	// DryRun renders everything but writes nothing; the would-be file paths
	// are logged instead.
	DryRun bool
}

// Run converts the SCons tree at root into CMake files under the same root.
//
// Warnings (libraries or modules with no sources) are logged and never affect
// the outcome; only a missing/unreadable SConstruct or an I/O failure is an
// error.
func Run(ctx context.Context, fsys afero.Fs, root string, opts Options, logger *slog.Logger) error {
	logger.Info("converting SCons build to CMake", "root", root)

	cfg, err := settings.Load(fsys, root)
	if err != nil {
		return err
	}

	m, err := collect.Project(ctx, fsys, root)
	if err != nil {
		return fmt.Errorf("collect project model: %w", err)
	}
	logger.Info("collected project model",
		"options", len(m.Options),
		"platforms", len(m.Platforms),
		"modules", len(m.Modules),
	)

	bundle, err := cmake.Generate(ctx, fsys, root, m, cfg, logger)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if opts.DryRun {
		for _, p := range bundle.Paths() {
			logger.Info("would write", "path", p)
		}
		return nil
	}

	if err := bundle.Write(fsys, root); err != nil {
		return err
	}
	logger.Info("wrote CMake files", "count", len(bundle.Paths()))
	return nil
}

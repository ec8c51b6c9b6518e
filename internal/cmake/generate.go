package cmake

// generate.go — runs every emitter against the model and assembles the
// bundle. Emitters only read the model and the source tree; nothing is
// written here, so a generation error never leaves partial output behind.
// No emitter reads another emitter's output — their relative order is
// irrelevant to correctness and fixed only for readable progress logs.

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"scons2cmake/internal/model"
	"scons2cmake/internal/settings"
)

// Generate renders all target files for the model into a Bundle.
//
// Per-target diagnostics (a library or module with no discoverable sources)
// are logged as warnings and never fail the run. The context is checked
// between per-file units of work.
func Generate(ctx context.Context, fsys afero.Fs, root string, m *model.ProjectModel, cfg *settings.Settings, logger *slog.Logger) (*Bundle, error) {
	b := NewBundle()
	projectName := cfg.ProjectName()

	b.add("CMakeLists.txt", renderRoot(m, projectName))

	if err := emitPlatforms(ctx, b, m, projectName); err != nil {
		return nil, err
	}
	if err := emitLibraries(ctx, b, fsys, root, cfg, logger); err != nil {
		return nil, err
	}
	if err := emitModules(ctx, b, fsys, root, m, cfg, projectName, logger); err != nil {
		return nil, err
	}
	return b, nil
}

// emitPlatforms renders one config file per collected platform, in sorted id
// order.
func emitPlatforms(ctx context.Context, b *Bundle, m *model.ProjectModel, projectName string) error {
	for _, id := range sortedKeys(m.Platforms) {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.add(platformFilePath(id), renderPlatform(m.Platforms[id], projectName))
	}
	return nil
}

// emitLibraries renders <lib>/CMakeLists.txt for every fixed library whose
// directory exists. Missing directories are skipped without a file or a
// warning; existing directories with no sources warn and still get a
// target-less file.
func emitLibraries(ctx context.Context, b *Bundle, fsys afero.Fs, root string, cfg *settings.Settings, logger *slog.Logger) error {
	for _, lib := range libraries {
		if err := ctx.Err(); err != nil {
			return err
		}
		dir := filepath.Join(root, lib.String())
		if exists, _ := afero.DirExists(fsys, dir); !exists {
			continue
		}
		sources, err := discoverSources(fsys, dir, cfg.Extensions(), cfg)
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			logger.Warn("no source files found for library", "library", lib.String(), "dir", dir)
		}
		b.add(lib.String()+"/CMakeLists.txt", renderLibrary(lib, sources))
	}
	return nil
}

// emitModules renders the umbrella inclusion file plus one file per module.
// The umbrella is emitted whenever the modules directory exists, even with
// zero modules.
func emitModules(ctx context.Context, b *Bundle, fsys afero.Fs, root string, m *model.ProjectModel, cfg *settings.Settings, projectName string, logger *slog.Logger) error {
	modulesDir := filepath.Join(root, "modules")
	if exists, _ := afero.DirExists(fsys, modulesDir); !exists {
		return nil
	}

	ids := sortedKeys(m.Modules)
	b.add("modules/CMakeLists.txt", renderModuleUmbrella(projectName, ids))

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		dir := filepath.Join(modulesDir, id)
		sources, err := discoverSources(fsys, dir, cfg.Extensions(), cfg)
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			logger.Warn("no source files found for module", "module", id, "dir", dir)
		}
		b.add("modules/"+id+"/CMakeLists.txt", renderModule(m.Modules[id], sources))
	}
	return nil
}

// sortedKeys returns the map keys in lexicographic order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

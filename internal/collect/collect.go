package collect

// collect.go — builds the ProjectModel from a SCons source tree.
//
// Three independent passes, one per input category:
//
//	Options   — SConstruct at the root (mandatory)
//	Platforms — platform/<id>/detect.py (directories without one are skipped)
//	Modules   — modules/<id>/SCsub (every directory materializes an entry)
//
// Each pass tolerates malformed input per unit: lines or blocks that match no
// known pattern simply contribute nothing. Only a missing or unreadable
// SConstruct is fatal — without it no model can be built.

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"scons2cmake/internal/model"
	"scons2cmake/internal/scons"
)

// Well-known names in the source tree.
const (
	OptionsFile    = "SConstruct"
	PlatformsDir   = "platform"
	ModulesDir     = "modules"
	DetectFile     = "detect.py"
	ModuleManifest = "SCsub"
)

// Manifest line anchors for module extraction.
const (
	sourceAnchor = "env.add_source_files"
	dependAnchor = "env.Depends"
)

// Project runs all three collection passes and assembles the model.
func Project(ctx context.Context, fsys afero.Fs, root string) (*model.ProjectModel, error) {
	opts, err := Options(fsys, root)
	if err != nil {
		return nil, err
	}

	platforms, err := Platforms(ctx, fsys, root)
	if err != nil {
		return nil, err
	}

	modules, err := Modules(ctx, fsys, root)
	if err != nil {
		return nil, err
	}

	m := model.NewProjectModel()
	for _, opt := range opts {
		m.AddOption(opt)
	}
	m.Platforms = platforms
	m.Modules = modules
	return m, nil
}

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

// Options reads the root SConstruct and extracts every recognized option
// declaration, in declaration order. A duplicate name overwrites the earlier
// value but keeps the first declaration's position. A missing or unreadable
// SConstruct is an error.
func Options(fsys afero.Fs, root string) ([]model.Option, error) {
	path := filepath.Join(root, OptionsFile)
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	byName := make(map[string]int)
	var opts []model.Option
	for _, line := range strings.Split(string(data), "\n") {
		opt, ok := scons.ParseOption(line)
		if !ok {
			continue
		}
		if i, seen := byName[opt.Name]; seen {
			opts[i] = opt
			continue
		}
		byName[opt.Name] = len(opts)
		opts = append(opts, opt)
	}
	return opts, nil
}

// ---------------------------------------------------------------------------
// Platforms
// ---------------------------------------------------------------------------

// Platforms enumerates the immediate subdirectories of platform/ and builds a
// PlatformConfig for each one containing a detection descriptor. Directories
// without one are silently skipped — not every subdirectory is a platform.
// A missing platform/ directory yields an empty map, not an error.
func Platforms(ctx context.Context, fsys afero.Fs, root string) (map[string]model.PlatformConfig, error) {
	configs := make(map[string]model.PlatformConfig)

	dir := filepath.Join(root, PlatformsDir)
	if exists, err := afero.DirExists(fsys, dir); err != nil || !exists {
		return configs, err
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}

		descriptor := filepath.Join(dir, entry.Name(), DetectFile)
		data, err := afero.ReadFile(fsys, descriptor)
		if err != nil {
			continue // no descriptor → not a platform
		}

		cfg := model.PlatformConfig{ID: entry.Name()}
		if body, ok := scons.FunctionBody(string(data), "get_flags"); ok {
			cfg.CompileFlags = scons.ListLiterals(body)
		}
		if body, ok := scons.FunctionBody(string(data), "get_libs"); ok {
			cfg.Libraries = scons.ListLiterals(body)
		}
		configs[cfg.ID] = cfg
	}
	return configs, nil
}

// ---------------------------------------------------------------------------
// Modules
// ---------------------------------------------------------------------------

// Modules enumerates the immediate subdirectories of modules/. Every
// directory materializes a ModuleConfig — a module is a module by location;
// the SCsub manifest only contributes registered sources and dependencies
// when present. A missing modules/ directory yields an empty map.
func Modules(ctx context.Context, fsys afero.Fs, root string) (map[string]model.ModuleConfig, error) {
	configs := make(map[string]model.ModuleConfig)

	dir := filepath.Join(root, ModulesDir)
	if exists, err := afero.DirExists(fsys, dir); err != nil || !exists {
		return configs, err
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}

		cfg := model.ModuleConfig{ID: entry.Name()}
		manifest := filepath.Join(dir, entry.Name(), ModuleManifest)
		if data, err := afero.ReadFile(fsys, manifest); err == nil {
			cfg.SourceFiles, cfg.Dependencies = parseManifest(string(data))
		}
		configs[cfg.ID] = cfg
	}
	return configs, nil
}

// parseManifest scans manifest lines for the source-registration and
// dependency-declaration anchors, extracting list literals from each match.
func parseManifest(content string) (sources, deps []string) {
	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.Contains(line, sourceAnchor):
			sources = append(sources, scons.ListLiterals(line)...)
		case strings.Contains(line, dependAnchor):
			deps = append(deps, scons.ListLiterals(line)...)
		}
	}
	return sources, deps
}

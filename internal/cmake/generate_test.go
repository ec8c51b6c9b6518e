package cmake

// generate_test.go — tests for source discovery, bundle writing, and the
// full generation pass against an in-memory filesystem.

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scons2cmake/internal/model"
	"scons2cmake/internal/settings"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
}

func writeFile(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte("//\n"), 0o644))
}

// ---------------------------------------------------------------------------
// discoverSources
// ---------------------------------------------------------------------------

func TestDiscoverSourcesSortedAndFiltered(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/p/core/zz.cpp")
	writeFile(t, fsys, "/p/core/io/file.cpp")
	writeFile(t, fsys, "/p/core/aa.h")
	writeFile(t, fsys, "/p/core/readme.md") // not a source extension

	var s *settings.Settings
	sources, err := discoverSources(fsys, "/p/core", s.Extensions(), s)
	require.NoError(t, err)
	assert.Equal(t, []string{"aa.h", "io/file.cpp", "zz.cpp"}, sources,
		"relative paths, lexicographically sorted")
}

func TestDiscoverSourcesExcludeGlobs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/p/core/object.cpp")
	writeFile(t, fsys, "/p/core/thirdparty/zlib/inflate.c")

	cfg := &settings.Settings{Exclude: []string{"thirdparty/**"}}
	sources, err := discoverSources(fsys, "/p/core", cfg.Extensions(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"object.cpp"}, sources)
}

// ---------------------------------------------------------------------------
// Bundle
// ---------------------------------------------------------------------------

func TestBundleWriteSortedWithParentDirs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	b := NewBundle()
	b.add("modules/m/CMakeLists.txt", []string{"# m"})
	b.add("CMakeLists.txt", []string{"# root"})

	require.NoError(t, b.Write(fsys, "/out"))

	data, err := afero.ReadFile(fsys, "/out/modules/m/CMakeLists.txt")
	require.NoError(t, err)
	assert.Equal(t, "# m\n", string(data))

	assert.Equal(t, []string{"CMakeLists.txt", "modules/m/CMakeLists.txt"}, b.Paths())
}

// ---------------------------------------------------------------------------
// Generate
// ---------------------------------------------------------------------------

func generateFixture(t *testing.T) (afero.Fs, *model.ProjectModel) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/p/core/object.cpp")
	writeFile(t, fsys, "/p/main/main.cpp")
	require.NoError(t, fsys.MkdirAll("/p/servers", 0o755)) // exists, no sources
	writeFile(t, fsys, "/p/modules/mymodule/mymodule.cpp")

	m := model.NewProjectModel()
	m.Platforms["linuxbsd"] = model.PlatformConfig{ID: "linuxbsd", Libraries: []string{"GL", "X11"}}
	m.Modules["mymodule"] = model.ModuleConfig{ID: "mymodule", Dependencies: []string{"core"}}
	return fsys, m
}

func TestGenerateFileSet(t *testing.T) {
	fsys, m := generateFixture(t)

	b, err := Generate(context.Background(), fsys, "/p", m, nil, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"CMakeLists.txt",
		"cmake/platform_linuxbsd.cmake",
		"core/CMakeLists.txt",
		"main/CMakeLists.txt",
		"modules/CMakeLists.txt",
		"modules/mymodule/CMakeLists.txt",
		"servers/CMakeLists.txt",
	}, b.Paths(), "missing library dirs skipped; existing empty ones still emitted")
}

func TestGenerateWarnsOnEmptyLibrary(t *testing.T) {
	fsys, m := generateFixture(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	_, err := Generate(context.Background(), fsys, "/p", m, nil, logger)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "no source files found for library")
	assert.Contains(t, buf.String(), "servers")
}

func TestGenerateWarnsOnEmptyModuleAndKeepsUmbrellaEntry(t *testing.T) {
	fsys, m := generateFixture(t)
	// A collected module whose directory holds no sources at all.
	require.NoError(t, fsys.MkdirAll("/p/modules/bare", 0o755))
	m.Modules["bare"] = model.ModuleConfig{ID: "bare"}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	b, err := Generate(context.Background(), fsys, "/p", m, nil, logger)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "no source files found for module")
	assert.Contains(t, buf.String(), "bare")

	umbrella, ok := b.Content("modules/CMakeLists.txt")
	require.True(t, ok)
	assert.Contains(t, umbrella, "add_subdirectory(bare)",
		"a source-less module still gets its umbrella inclusion")

	mod, ok := b.Content("modules/bare/CMakeLists.txt")
	require.True(t, ok)
	assert.NotContains(t, mod, "add_library(", "no sources means no build target")
}

func TestGenerateDeterministic(t *testing.T) {
	fsys, m := generateFixture(t)

	b1, err := Generate(context.Background(), fsys, "/p", m, nil, discardLogger())
	require.NoError(t, err)
	b2, err := Generate(context.Background(), fsys, "/p", m, nil, discardLogger())
	require.NoError(t, err)

	require.Equal(t, b1.Paths(), b2.Paths())
	for _, p := range b1.Paths() {
		c1, _ := b1.Content(p)
		c2, _ := b2.Content(p)
		assert.Equal(t, c1, c2, "content of %s must be byte-identical across runs", p)
	}
}

func TestGenerateNoModulesDirNoUmbrella(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/p/core/object.cpp")

	b, err := Generate(context.Background(), fsys, "/p", model.NewProjectModel(), nil, discardLogger())
	require.NoError(t, err)

	_, ok := b.Content("modules/CMakeLists.txt")
	assert.False(t, ok)
}

func TestGenerateCancelledContext(t *testing.T) {
	fsys, m := generateFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, fsys, "/p", m, nil, discardLogger())
	assert.ErrorIs(t, err, context.Canceled)
}

package convert

// convert_test.go — end-to-end pipeline tests against an in-memory tree.

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
}

// scenario builds the canonical end-to-end tree: one bool option, one
// platform with two libs, one module with two sources and one dependency.
func scenario(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"/p/SConstruct": `opts.Add(BoolVariable("builtin_freetype", "Use builtin FreeType library", True))` + "\n",
		"/p/platform/linuxbsd/detect.py": `def get_flags():
    return []

def get_libs():
    return ["GL", "X11"]
`,
		"/p/modules/mymodule/SCsub": `env.Depends(target, ["core"])` + "\n",
		"/p/modules/mymodule/mymodule.cpp":       "//\n",
		"/p/modules/mymodule/register_types.cpp": "//\n",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	}
	return fsys
}

func readFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}

func TestRunEndToEnd(t *testing.T) {
	fsys := scenario(t)
	require.NoError(t, Run(context.Background(), fsys, "/p", Options{}, quietLogger()))

	root := readFile(t, fsys, "/p/CMakeLists.txt")
	assert.Contains(t, root, `option(builtin_freetype "Use builtin FreeType library" TRUE)`)

	platform := readFile(t, fsys, "/p/cmake/platform_linuxbsd.cmake")
	assert.Contains(t, platform, "    GL")
	assert.Contains(t, platform, "    X11")
	assert.NotContains(t, platform, "add_compile_options", "empty flag list renders no block")

	mod := readFile(t, fsys, "/p/modules/mymodule/CMakeLists.txt")
	assert.Contains(t, mod, "    mymodule.cpp")
	assert.Contains(t, mod, "    register_types.cpp")
	assert.Contains(t, mod, "        core")

	umbrella := readFile(t, fsys, "/p/modules/CMakeLists.txt")
	assert.Contains(t, umbrella, "add_subdirectory(mymodule)")
}

func TestRunIdempotent(t *testing.T) {
	fsys := scenario(t)
	require.NoError(t, Run(context.Background(), fsys, "/p", Options{}, quietLogger()))
	first := readFile(t, fsys, "/p/CMakeLists.txt") + readFile(t, fsys, "/p/modules/mymodule/CMakeLists.txt")

	require.NoError(t, Run(context.Background(), fsys, "/p", Options{}, quietLogger()))
	second := readFile(t, fsys, "/p/CMakeLists.txt") + readFile(t, fsys, "/p/modules/mymodule/CMakeLists.txt")

	assert.Equal(t, first, second, "re-running against an unmodified tree is byte-identical")
}

func TestRunMissingSConstructWritesNothing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/p/core/object.cpp", []byte("//\n"), 0o644))

	err := Run(context.Background(), fsys, "/p", Options{}, quietLogger())
	require.Error(t, err)

	exists, _ := afero.Exists(fsys, "/p/CMakeLists.txt")
	assert.False(t, exists, "a fatal collection error must not leave partial output")
	exists, _ = afero.Exists(fsys, "/p/core/CMakeLists.txt")
	assert.False(t, exists)
}

func TestRunDryRunWritesNothing(t *testing.T) {
	fsys := scenario(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	require.NoError(t, Run(context.Background(), fsys, "/p", Options{DryRun: true}, logger))

	exists, _ := afero.Exists(fsys, "/p/CMakeLists.txt")
	assert.False(t, exists)
	assert.Contains(t, buf.String(), "would write")
}

func TestRunSourceFilesNeverOverwritten(t *testing.T) {
	fsys := scenario(t)
	before := readFile(t, fsys, "/p/SConstruct")
	require.NoError(t, Run(context.Background(), fsys, "/p", Options{}, quietLogger()))
	assert.Equal(t, before, readFile(t, fsys, "/p/SConstruct"))
	assert.Equal(t, "//\n", readFile(t, fsys, "/p/modules/mymodule/mymodule.cpp"))
}

func TestRunHonorsSettings(t *testing.T) {
	fsys := scenario(t)
	require.NoError(t, afero.WriteFile(fsys, "/p/.scons2cmake.yaml", []byte("project: myengine\n"), 0o644))

	require.NoError(t, Run(context.Background(), fsys, "/p", Options{}, quietLogger()))

	root := readFile(t, fsys, "/p/CMakeLists.txt")
	assert.Contains(t, root, "project(myengine)")
	assert.Contains(t, root, "add_executable(myengine")
}

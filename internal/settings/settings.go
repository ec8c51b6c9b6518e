package settings

// settings.go — converter configuration loaded from .scons2cmake.yaml.
//
// The settings file is optional and lives at the project root. It overrides
// the CMake project name, the set of file extensions treated as sources, and
// declares glob rules for paths to exclude from source discovery (vendored
// thirdparty trees, generated files). Patterns may be bare globs
// ("thirdparty/**") — a trailing /** matches the whole subtree.

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultProjectName is used when the settings file is absent or silent.
const DefaultProjectName = "godot"

// defaultSourceExtensions are the file extensions registered as sources when
// the settings file does not override them.
var defaultSourceExtensions = []string{".cpp", ".c", ".h", ".hpp", ".inc"}

// Settings holds converter configuration from .scons2cmake.yaml.
type Settings struct {
	// Project overrides the CMake project and executable name.
	Project string `yaml:"project"`

	// SourceExtensions overrides the extensions collected as sources.
	// Example: [".cpp", ".h"]
	SourceExtensions []string `yaml:"source_extensions"`

	// Exclude lists glob patterns (relative to each scanned directory) for
	// files left out of source discovery.
	// Example: ["thirdparty/**", "*_gen.cpp"]
	Exclude []string `yaml:"exclude"`
}

// Load reads .scons2cmake.yaml relative to root.
// Returns nil (not an error) if the file does not exist.
func Load(fsys afero.Fs, root string) (*Settings, error) {
	path := filepath.Join(root, ".scons2cmake.yaml")
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if exists, _ := afero.Exists(fsys, path); !exists {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return &s, nil
}

// ProjectName returns the configured project name, or the default.
// Safe to call on a nil receiver.
func (s *Settings) ProjectName() string {
	if s == nil || s.Project == "" {
		return DefaultProjectName
	}
	return s.Project
}

// Extensions returns the source extensions to collect, or the defaults.
// Safe to call on a nil receiver.
func (s *Settings) Extensions() []string {
	if s == nil || len(s.SourceExtensions) == 0 {
		return defaultSourceExtensions
	}
	return s.SourceExtensions
}

// IsExcluded reports whether relPath (forward-slash, relative to the scanned
// directory) matches any exclude rule. Safe to call on a nil receiver.
func (s *Settings) IsExcluded(relPath string) bool {
	if s == nil {
		return false
	}
	for _, rule := range s.Exclude {
		if matchExcludePattern(strings.TrimPrefix(rule, "./"), relPath) {
			return true
		}
	}
	return false
}

// matchExcludePattern reports whether path matches an exclude glob.
//
// "prefix/**" matches the prefix directory itself and every path beneath it.
// All other patterns use filepath.Match semantics (single * does not cross /).
func matchExcludePattern(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	matched, _ := filepath.Match(pattern, path)
	return matched
}

package model

// model.go — normalized in-memory representation of a SCons project.
//
// The ProjectModel is the sole hand-off between collection and generation:
// collectors build it once from the source tree, emitters consume it
// read-only and never touch the source files again. All types here are plain
// immutable values; nothing in this package reads or writes the filesystem.

// OptionKind classifies a build option declaration.
type OptionKind int

const (
	Bool OptionKind = iota
	String
	Enum
)

// String returns the lower-case kind name, matching the SCons vocabulary.
func (k OptionKind) String() string {
	switch k {
	case Bool:
		return "bool"
	case String:
		return "string"
	case Enum:
		return "enum"
	default:
		return "unknown"
	}
}

// Option is a named, typed, user-overridable build setting.
//
// Default is stored as its literal token: "true"/"false" (normalized to
// lower case) for Bool, the raw default string otherwise. For Enum options
// AllowedValues is non-empty and contains Default — extraction rejects
// declarations that violate this, so consumers may rely on it.
type Option struct {
	Name          string
	Kind          OptionKind
	Description   string
	Default       string
	AllowedValues []string // Enum only; declaration order
}

// PlatformConfig holds the build configuration of one target platform,
// extracted from its detection descriptor. Slice order is the order of
// appearance in the descriptor and is reproduced verbatim in output.
type PlatformConfig struct {
	ID           string
	CompileFlags []string
	Defines      []string
	Libraries    []string
	IncludePaths []string
}

// ModuleConfig describes one optional module: its registered source files and
// the module/library ids it links against. Dependencies may name ids that
// were never collected — forward references are allowed and validation is
// left to the target build system.
type ModuleConfig struct {
	ID           string
	SourceFiles  []string
	Dependencies []string
	Defines      []string
	IncludePaths []string
}

// ProjectModel aggregates everything extracted from the source tree.
//
// OptionOrder preserves declaration order from the options file: a duplicate
// declaration overwrites the map entry but keeps the name's original
// position, so emission order matches the first declaration. Platforms and
// Modules are keyed by directory name; emitters iterate them in sorted-key
// order, never in map order.
type ProjectModel struct {
	Options     map[string]Option
	OptionOrder []string
	Platforms   map[string]PlatformConfig
	Modules     map[string]ModuleConfig
}

// NewProjectModel returns an empty model with all maps allocated.
func NewProjectModel() *ProjectModel {
	return &ProjectModel{
		Options:   make(map[string]Option),
		Platforms: make(map[string]PlatformConfig),
		Modules:   make(map[string]ModuleConfig),
	}
}

// AddOption inserts or overwrites an option, keeping first-declaration order.
func (m *ProjectModel) AddOption(opt Option) {
	if _, seen := m.Options[opt.Name]; !seen {
		m.OptionOrder = append(m.OptionOrder, opt.Name)
	}
	m.Options[opt.Name] = opt
}

// OrderedOptions returns the options in declaration order.
func (m *ProjectModel) OrderedOptions() []Option {
	opts := make([]Option, 0, len(m.OptionOrder))
	for _, name := range m.OptionOrder {
		opts = append(opts, m.Options[name])
	}
	return opts
}

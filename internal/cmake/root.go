package cmake

// root.go — root CMakeLists.txt emitter.
//
// Renders, in order: the project header, global compiler settings, one
// declaration per collected option (declaration order), the fixed platform
// detection dispatch, subdirectory inclusions, and the top-level executable
// with its link set. The dispatch branches and the library set are closed
// enumerations — the root file's structure never varies with the model, only
// its option block does.

import (
	"fmt"
	"sort"
	"strings"

	"scons2cmake/internal/model"
)

// Library enumerates the fixed top-level static libraries of the source
// layout. The set is closed: the root emitter's subdirectory and link lists,
// and the per-library emitter, all derive from it.
type Library int

const (
	Core Library = iota
	Drivers
	Main
	Platform
	Scene
	Servers
)

// libraries is the fixed emission order.
var libraries = [...]Library{Core, Drivers, Main, Platform, Scene, Servers}

// String returns the library's directory and target name.
func (l Library) String() string {
	switch l {
	case Core:
		return "core"
	case Drivers:
		return "drivers"
	case Main:
		return "main"
	case Platform:
		return "platform"
	case Scene:
		return "scene"
	case Servers:
		return "servers"
	default:
		return "unknown"
	}
}

// dispatchBranch is one mutually exclusive branch of the platform detection
// block. First match wins; there is no fallback branch, so an undetected
// platform leaves PLATFORM_NAME unset.
type dispatchBranch struct {
	condition  string
	platformID string
}

// dispatchBranches in fixed order: Windows, Apple, other-Unix.
var dispatchBranches = [...]dispatchBranch{
	{"WIN32", "windows"},
	{"APPLE", "macos"},
	{"UNIX", "linuxbsd"},
}

// systemLibraries are the platform-provided link inputs appended after the
// fixed library set in the executable's link block.
var systemLibraries = [...]string{
	"${CMAKE_THREAD_LIBS_INIT}",
	"${OPENGL_LIBRARIES}",
	"${X11_LIBRARIES}",
	"${ZLIB_LIBRARIES}",
}

// renderRoot renders the root CMakeLists.txt for the model.
func renderRoot(m *model.ProjectModel, projectName string) []string {
	lines := []string{
		"cmake_minimum_required(VERSION 3.20)",
		fmt.Sprintf("project(%s)", projectName),
		"",
		"# Global settings",
		"set(CMAKE_CXX_STANDARD 17)",
		"set(CMAKE_CXX_STANDARD_REQUIRED ON)",
		"set(CMAKE_POSITION_INDEPENDENT_CODE ON)",
		"",
		"# Options",
	}

	for _, opt := range m.OrderedOptions() {
		lines = append(lines, renderOption(opt)...)
	}

	lines = append(lines, "", "# Platform detection")
	for i, branch := range dispatchBranches {
		keyword := "if"
		if i > 0 {
			keyword = "elseif"
		}
		lines = append(lines,
			fmt.Sprintf("%s(%s)", keyword, branch.condition),
			fmt.Sprintf("    set(PLATFORM_NAME %s)", branch.platformID),
		)
	}
	lines = append(lines,
		"endif()",
		"",
		"# Include platform-specific configuration",
		"include(cmake/platform_${PLATFORM_NAME}.cmake)",
		"",
		"# Add subdirectories",
	)

	// Fixed inclusion list: the closed library set plus modules/, in
	// lexicographic order ("modules" sorts between "main" and "platform").
	subdirs := make([]string, 0, len(libraries)+1)
	for _, lib := range libraries {
		subdirs = append(subdirs, lib.String())
	}
	subdirs = append(subdirs, "modules")
	sort.Strings(subdirs)
	for _, d := range subdirs {
		lines = append(lines, fmt.Sprintf("add_subdirectory(%s)", d))
	}

	lines = append(lines,
		"",
		"# Main executable",
		fmt.Sprintf("add_executable(%s", projectName),
		"    main/main.cpp",
		")",
		"",
		fmt.Sprintf("target_link_libraries(%s", projectName),
		"    PRIVATE",
	)
	for _, lib := range libraries {
		lines = append(lines, "    "+lib.String())
	}
	for _, sys := range systemLibraries {
		lines = append(lines, "    "+sys)
	}
	lines = append(lines, ")")
	return lines
}

// renderOption renders one option declaration:
//
//	Bool   → option() with upper-cased default
//	String → cached string set()
//	Enum   → cached string set() plus an allowed-values annotation
func renderOption(opt model.Option) []string {
	switch opt.Kind {
	case model.Bool:
		return []string{fmt.Sprintf("option(%s %q %s)", opt.Name, opt.Description, strings.ToUpper(opt.Default))}
	case model.Enum:
		return []string{
			fmt.Sprintf("set(%s %q CACHE STRING %q)", opt.Name, opt.Default, opt.Description),
			fmt.Sprintf("set_property(CACHE %s PROPERTY STRINGS %s)", opt.Name, strings.Join(opt.AllowedValues, ";")),
		}
	default:
		return []string{fmt.Sprintf("set(%s %q CACHE STRING %q)", opt.Name, opt.Default, opt.Description)}
	}
}

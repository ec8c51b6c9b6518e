package cmake

// targets.go — static-library and module file emitters.
//
// Both follow the same discover-and-declare pattern: find source files under
// the target's directory, render a source-list variable plus a static-library
// declaration, then append include directories and (for libraries) the
// Unix-specific compile definitions. A target with zero discovered sources is
// a warning, not a failure — the file is still emitted, just without build
// targets, and the run continues.

import (
	"fmt"

	"scons2cmake/internal/model"
)

// unixDefines is the fixed compile-definition set applied on the
// Unix-non-Apple branch of every library file.
var unixDefines = [...]string{
	"UNIX_ENABLED",
	"X11_ENABLED",
	"VULKAN_ENABLED",
	"GLES3_ENABLED",
}

// renderLibrary renders <lib>/CMakeLists.txt from the discovered (already
// sorted) source list.
func renderLibrary(lib Library, sources []string) []string {
	name := lib.String()
	lines := []string{fmt.Sprintf("# %s library", name)}

	lines = append(lines, renderSourceTarget(name, "LIB_SOURCES", sources)...)
	lines = append(lines, renderIncludeDirs(name)...)

	lines = append(lines,
		"",
		"if(UNIX AND NOT APPLE)",
		fmt.Sprintf("    target_compile_definitions(%s", name),
		"        PRIVATE",
	)
	for _, def := range unixDefines {
		lines = append(lines, "        "+def)
	}
	lines = append(lines, "    )", "endif()")
	return lines
}

// renderModuleUmbrella renders modules/CMakeLists.txt: one inclusion
// directive per module id, in the given (sorted) order.
func renderModuleUmbrella(projectName string, moduleIDs []string) []string {
	lines := []string{fmt.Sprintf("# %s modules", projectName), ""}
	for _, id := range moduleIDs {
		lines = append(lines, fmt.Sprintf("add_subdirectory(%s)", id))
	}
	return lines
}

// renderModule renders modules/<id>/CMakeLists.txt. Sources come from
// discovery, not the manifest; the manifest contributes the dependency list,
// reproduced verbatim when non-empty.
func renderModule(cfg model.ModuleConfig, sources []string) []string {
	lines := []string{fmt.Sprintf("# %s module", cfg.ID)}

	lines = append(lines, renderSourceTarget(cfg.ID, "MODULE_SOURCES", sources)...)
	lines = append(lines, renderIncludeDirs(cfg.ID)...)

	if len(cfg.Dependencies) > 0 {
		lines = append(lines,
			"",
			fmt.Sprintf("target_link_libraries(%s", cfg.ID),
			"    PRIVATE",
		)
		for _, dep := range cfg.Dependencies {
			lines = append(lines, "        "+dep)
		}
		lines = append(lines, ")")
	}
	return lines
}

// renderSourceTarget renders the source-list variable and static-library
// declaration for a target, or nothing when there are no sources.
func renderSourceTarget(name, listVar string, sources []string) []string {
	if len(sources) == 0 {
		return nil
	}
	lines := []string{"", fmt.Sprintf("set(%s", listVar)}
	for _, src := range sources {
		lines = append(lines, "    "+src)
	}
	lines = append(lines,
		")",
		"",
		fmt.Sprintf("add_library(%s STATIC ${%s})", name, listVar),
	)
	return lines
}

// renderIncludeDirs renders the include-directory declarations appended to
// every library and module file.
func renderIncludeDirs(name string) []string {
	return []string{
		"",
		fmt.Sprintf("target_include_directories(%s", name),
		"    PUBLIC",
		"        ${CMAKE_CURRENT_SOURCE_DIR}",
		"        ${CMAKE_SOURCE_DIR}",
		")",
	}
}

package cmake

// platform.go — per-platform configuration file emitter.
//
// One cmake/platform_<id>.cmake per collected PlatformConfig. Each of the
// three blocks (compile options, compile definitions, link libraries) is
// rendered only when its list is non-empty; a fully empty config produces a
// valid header-only file. List order is reproduced verbatim from extraction.

import (
	"fmt"

	"scons2cmake/internal/model"
)

// platformFilePath returns the bundle path for a platform's config file.
func platformFilePath(id string) string {
	return "cmake/platform_" + id + ".cmake"
}

// renderPlatform renders one platform configuration file. projectName is the
// executable target the link block attaches to.
func renderPlatform(cfg model.PlatformConfig, projectName string) []string {
	lines := []string{fmt.Sprintf("# Platform configuration for %s", cfg.ID)}

	if len(cfg.CompileFlags) > 0 {
		lines = append(lines, "", "# Compiler flags", "add_compile_options(")
		for _, flag := range cfg.CompileFlags {
			lines = append(lines, "    "+flag)
		}
		lines = append(lines, ")")
	}

	if len(cfg.Defines) > 0 {
		lines = append(lines, "", "add_compile_definitions(")
		for _, def := range cfg.Defines {
			lines = append(lines, "    "+def)
		}
		lines = append(lines, ")")
	}

	if len(cfg.Libraries) > 0 {
		lines = append(lines, "", fmt.Sprintf("target_link_libraries(%s PRIVATE", projectName))
		for _, lib := range cfg.Libraries {
			lines = append(lines, "    "+lib)
		}
		lines = append(lines, ")")
	}

	return lines
}

package scons

// extract.go — tolerant pattern extractors over SCons build text.
//
// Each extractor pulls structured facts out of raw configuration text via
// independent regex matchers. The contract is best-effort: text that matches
// no known shape yields no fact, never an error. The source format is a
// constrained declarative subset of Python, so a handful of matchers covers
// everything this tool needs without a real parser.

import (
	"slices"
	"strings"

	"github.com/umisama/go-regexpcache"

	"scons2cmake/internal/model"
)

// ---------------------------------------------------------------------------
// Option declarations
// ---------------------------------------------------------------------------

const (
	boolOptionPattern   = `BoolVariable\(\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*(\w+)\s*\)`
	enumOptionPattern   = `EnumVariable\(\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*\(([^)]*)\)\s*\)`
	stringOptionPattern = `opts\.Add\(\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*"([^"]*)"\s*\)`
)

// ParseOption recognizes a single option declaration line. Three shapes are
// supported, tried in order: BoolVariable, EnumVariable, and the plain
// three-string form. Lines without an opts.Add call, and lines matching none
// of the shapes, yield no option.
func ParseOption(line string) (model.Option, bool) {
	if !strings.Contains(line, "opts.Add(") {
		return model.Option{}, false
	}

	if m := regexpcache.MustCompile(boolOptionPattern).FindStringSubmatch(line); m != nil {
		def := "false"
		if strings.EqualFold(m[3], "true") {
			def = "true"
		}
		return model.Option{
			Name:        m[1],
			Kind:        model.Bool,
			Description: m[2],
			Default:     def,
		}, true
	}

	if m := regexpcache.MustCompile(enumOptionPattern).FindStringSubmatch(line); m != nil {
		values := splitListItems(m[4])
		// An enum with no values, or whose default is not one of them, is
		// unusable by the target system; treat it as an extraction miss.
		if len(values) == 0 || !slices.Contains(values, m[3]) {
			return model.Option{}, false
		}
		return model.Option{
			Name:          m[1],
			Kind:          model.Enum,
			Description:   m[2],
			Default:       m[3],
			AllowedValues: values,
		}, true
	}

	if m := regexpcache.MustCompile(stringOptionPattern).FindStringSubmatch(line); m != nil {
		return model.Option{
			Name:        m[1],
			Kind:        model.String,
			Description: m[2],
			Default:     m[3],
		}, true
	}

	return model.Option{}, false
}

// ---------------------------------------------------------------------------
// List literals
// ---------------------------------------------------------------------------

// ListLiterals finds every bracketed literal list in text (there may be
// several call sites) and concatenates their trimmed, quote-stripped elements
// in order of appearance. Empty tokens are skipped. This is the one primitive
// behind flags, defines, libs, sources, and dependency extraction — all of
// those are literal lists behind different keyword anchors.
func ListLiterals(text string) []string {
	var items []string
	for _, m := range regexpcache.MustCompile(`\[(.*?)\]`).FindAllStringSubmatch(text, -1) {
		items = append(items, splitListItems(m[1])...)
	}
	return items
}

// splitListItems splits a comma-separated literal list body, trimming each
// element of surrounding whitespace and quote characters.
func splitListItems(body string) []string {
	var items []string
	for _, raw := range strings.Split(body, ",") {
		item := strings.Trim(raw, " \t\"'")
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ---------------------------------------------------------------------------
// Function bodies
// ---------------------------------------------------------------------------

// FunctionBody isolates the body of a named zero-argument function: the span
// from its declaration up to the next function declaration, or to the end of
// text. Returns false if the declaration is absent.
func FunctionBody(text, name string) (string, bool) {
	decl := regexpcache.MustCompile(`def\s+` + name + `\(\)\s*:`)
	loc := decl.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	body := text[loc[1]:]
	if next := regexpcache.MustCompile(`def\s+\w+\(`).FindStringIndex(body); next != nil {
		body = body[:next[0]]
	}
	return body, true
}

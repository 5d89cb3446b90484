// Package format rewrites theme documents into canonical HCL style.
package format

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/jsvensson/themekit/internal/theme"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

var attributeLine = regexp.MustCompile(`^\s+([A-Za-z_][A-Za-z0-9_-]*)\s*=`)
var commentLine = regexp.MustCompile(`^\s*(#|//)`)

// Format takes HCL source content and returns it formatted according to
// HCL canonical style rules. It uses hclwrite.Format which handles
// indentation, spacing, and newline normalization. Attributes in the colors
// block are put in role order; comments travel with the attribute below
// them.
//
// The formatter works even on partial/invalid HCL, making it suitable
// for use while the user is still typing.
func Format(content string) (string, error) {
	formatted := string(hclwrite.Format([]byte(content)))
	if sorted, changed := sortColorsBlock(formatted); changed {
		formatted = string(hclwrite.Format([]byte(sorted)))
	}
	// Collapse multiple consecutive blank lines into a single blank line.
	collapsed := multipleBlankLines.ReplaceAllString(formatted, "\n\n")
	// Remove blank lines immediately after opening braces.
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	// Remove blank lines immediately before closing braces.
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed, nil
}

// colorEntry is one attribute line plus the comment lines above it.
type colorEntry struct {
	name  string
	lines []string
}

// sortColorsBlock reorders the attributes of a top-level colors block into
// theme.RoleNames order, with unknown attributes after the roles. Blocks
// holding anything other than single-line attributes and comments are left
// alone, as is a block that is already in order.
func sortColorsBlock(src string) (string, bool) {
	lines := strings.Split(src, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimRight(line, " ") == "colors {" {
			start = i
			break
		}
	}
	if start == -1 {
		return src, false
	}
	end := -1
	for i := start + 1; i < len(lines); i++ {
		if lines[i] == "}" {
			end = i
			break
		}
	}
	if end == -1 {
		return src, false
	}

	var (
		entries []colorEntry
		pending []string
	)
	for _, line := range lines[start+1 : end] {
		switch {
		case strings.TrimSpace(line) == "":
			// dropped when the block is rewritten
		case commentLine.MatchString(line):
			pending = append(pending, line)
		default:
			m := attributeLine.FindStringSubmatch(line)
			if m == nil || opensBracket(line) {
				return src, false
			}
			entries = append(entries, colorEntry{name: m[1], lines: append(pending, line)})
			pending = nil
		}
	}

	order := make(map[string]int, len(theme.RoleNames))
	for i, name := range theme.RoleNames {
		order[name] = i
	}
	rank := func(name string) int {
		if i, ok := order[name]; ok {
			return i
		}
		return len(order)
	}

	if sort.SliceIsSorted(entries, func(i, j int) bool { return rank(entries[i].name) < rank(entries[j].name) }) {
		return src, false
	}
	sort.SliceStable(entries, func(i, j int) bool { return rank(entries[i].name) < rank(entries[j].name) })

	out := make([]string, 0, len(lines))
	out = append(out, lines[:start+1]...)
	for _, e := range entries {
		out = append(out, e.lines...)
	}
	out = append(out, pending...)
	out = append(out, lines[end:]...)
	return strings.Join(out, "\n"), true
}

// opensBracket reports whether an attribute continues on the next line.
func opensBracket(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "(") || strings.HasSuffix(trimmed, "[")
}

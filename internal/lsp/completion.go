package lsp

import (
	"strings"

	"github.com/jsvensson/themekit/internal/color"
	"github.com/jsvensson/themekit/internal/config"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var topLevelBlocks = []string{"colors", "radius", "spacing", "typography"}

var functionSnippets = map[string]string{
	"color":      "color(${1:\"#000000\"})",
	"darken":     "darken(${1:color}, ${2:0.1})",
	"lighten":    "lighten(${1:color}, ${2:0.1})",
	"saturate":   "saturate(${1:color}, ${2:0.1})",
	"desaturate": "desaturate(${1:color}, ${2:0.1})",
	"rotate_hue": "rotate_hue(${1:color}, ${2:180})",
	"mix":        "mix(${1:a}, ${2:b}, ${3:0.5})",
}

var snippetPlaceholders = strings.NewReplacer("${1:", "", "${2:", "", "${3:", "", "}", "")

// scope is where the cursor sits in a theme document.
type scope struct {
	block   string          // enclosing top-level block, "" at the root
	nested  bool            // inside a block within a block
	defined map[string]bool // attributes set anywhere in the enclosing body
	present map[string]bool // top-level blocks in the document
}

// scanScope tracks brace nesting line by line, so it also works on
// documents that do not parse.
func scanScope(lines []string, cursorLine int) scope {
	sc := scope{defined: make(map[string]bool), present: make(map[string]bool)}

	type frame struct {
		name string
		line int
	}
	var stack []frame
	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if opens := strings.Count(line, "{"); opens > 0 {
			name := strings.Fields(line)[0]
			for range opens {
				stack = append(stack, frame{name, i})
			}
		}
		for range strings.Count(line, "}") {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	start := 0
	switch {
	case len(stack) == 1:
		sc.block = stack[0].name
		start = stack[0].line + 1
	case len(stack) > 1:
		sc.nested = true
		return sc
	}

	// Collect the direct attributes of the enclosing body, including those
	// after the cursor.
	depth := 0
	for i := start; i < len(lines) && depth >= 0; i++ {
		line := strings.TrimSpace(lines[i])
		if depth == 0 {
			if name, _, ok := strings.Cut(line, "="); ok {
				name = strings.TrimSpace(name)
				if name != "" && !strings.ContainsAny(name, " {\"") {
					sc.defined[name] = true
				}
			}
			if sc.block == "" && strings.HasSuffix(line, "{") {
				sc.present[strings.Fields(line)[0]] = true
			}
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
	}
	return sc
}

// complete returns the completion items at pos.
func complete(content string, pos protocol.Position) []protocol.CompletionItem {
	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}
	line := lines[pos.Line]
	before := line[:min(int(pos.Character), len(line))]

	if items := paletteCompletions(before); items != nil {
		return items
	}

	sc := scanScope(lines, int(pos.Line))
	if sc.nested {
		return nil
	}

	if name, value, ok := strings.Cut(before, "="); ok {
		value = strings.TrimSpace(value)
		switch {
		case sc.block == "" && strings.TrimSpace(name) == "mode" && value == "":
			return modeCompletions()
		case sc.block == "colors" && (value == "" || strings.HasSuffix(value, "(") || strings.HasSuffix(value, ",")):
			return valueCompletions()
		}
		return nil
	}

	switch sc.block {
	case "":
		items := attributeCompletions(rootAttributes, sc.defined, protocol.CompletionItemKindProperty)
		return append(items, blockCompletions(sc.present)...)
	case "colors":
		return attributeCompletions(blockSchemas["colors"], sc.defined, protocol.CompletionItemKindColor)
	default:
		if names, ok := blockSchemas[sc.block]; ok {
			return attributeCompletions(names, sc.defined, protocol.CompletionItemKindProperty)
		}
	}
	return nil
}

// paletteCompletions offers every palette entry when before ends in
// "palette." plus an optional partial name. Clients filter the partial.
func paletteCompletions(before string) []protocol.CompletionItem {
	idx := strings.LastIndex(before, "palette.")
	if idx < 0 {
		return nil
	}
	partial := before[idx+len("palette."):]
	if strings.IndexFunc(partial, func(r rune) bool { return r > 0x7f || !isIdentChar(byte(r)) }) >= 0 {
		return nil
	}

	entries := color.Palette()
	items := make([]protocol.CompletionItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, protocol.CompletionItem{
			Label:         e.Name,
			Kind:          completionKindPtr(protocol.CompletionItemKindColor),
			Detail:        strPtr(e.Color.Hex()),
			Documentation: e.Color.HSLCompact(),
		})
	}
	return items
}

func isIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}

func modeCompletions() []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for _, mode := range []string{config.ModeLight, config.ModeDark} {
		items = append(items, protocol.CompletionItem{
			Label:      mode,
			Kind:       completionKindPtr(protocol.CompletionItemKindEnumMember),
			InsertText: strPtr(`"` + mode + `"`),
		})
	}
	return items
}

// valueCompletions returns the color functions as snippets plus a palette
// trigger.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	items := make([]protocol.CompletionItem, 0, len(config.FunctionNames)+1)
	for _, name := range config.FunctionNames {
		snippet := functionSnippets[name]
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr(snippetPlaceholders.Replace(snippet)),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}
	return append(items, protocol.CompletionItem{
		Label:      "palette",
		Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
		Detail:     strPtr("palette reference"),
		InsertText: strPtr("palette."),
	})
}

func attributeCompletions(names []string, defined map[string]bool, kind protocol.CompletionItemKind) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for _, name := range names {
		if defined[name] {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label:      name,
			Kind:       &kind,
			InsertText: strPtr(name + " = "),
		})
	}
	return items
}

// blockCompletions returns snippets for the top-level blocks not in present.
func blockCompletions(present map[string]bool) []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	var items []protocol.CompletionItem
	for _, name := range topLevelBlocks {
		if present[name] {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             completionKindPtr(protocol.CompletionItemKindSnippet),
			InsertText:       strPtr(name + " {\n  $0\n}"),
			InsertTextFormat: &snippetFormat,
		})
	}
	return items
}

func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return complete(content, params.Position), nil
}

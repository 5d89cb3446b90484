package lsp

import (
	"cmp"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

// Token types, in legend order.
const (
	tokKeyword   uint32 = iota // block types
	tokProperty                // attribute names and palette entries
	tokVariable                // roots other than palette
	tokNamespace               // palette
	tokString                  // quoted literals
	tokFunction                // color(), darken(), mix(), ...
	tokNumber
	tokComment
)

var semanticTokenTypes = []string{
	"keyword",
	"property",
	"variable",
	"namespace",
	"string",
	"function",
	"number",
	"comment",
}

const modDeclaration uint32 = 1 << 0

var semanticTokenModifiers = []string{"declaration"}

func semanticTokensLegend() protocol.SemanticTokensLegend {
	return protocol.SemanticTokensLegend{
		TokenTypes:     semanticTokenTypes,
		TokenModifiers: semanticTokenModifiers,
	}
}

// semanticToken is a single-line token with 0-based positions.
type semanticToken struct {
	Line      uint32
	StartChar uint32
	Length    uint32
	Type      uint32
	Modifiers uint32
}

// tokenAt builds a token of n bytes starting at the 1-based position p.
func tokenAt(p hcl.Pos, n int, typ, mods uint32) semanticToken {
	return semanticToken{
		Line:      uint32(p.Line - 1),
		StartChar: uint32(p.Column - 1),
		Length:    uint32(n),
		Type:      typ,
		Modifiers: mods,
	}
}

// encodeTokens sorts tokens by position and delta-encodes them as five
// integers per token.
func encodeTokens(tokens []semanticToken) []uint32 {
	slices.SortFunc(tokens, func(a, b semanticToken) int {
		return cmp.Or(cmp.Compare(a.Line, b.Line), cmp.Compare(a.StartChar, b.StartChar))
	})

	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevChar uint32
	for _, tok := range tokens {
		start := tok.StartChar
		if tok.Line == prevLine {
			start -= prevChar
		}
		data = append(data, tok.Line-prevLine, start, tok.Length, tok.Type, tok.Modifiers)
		prevLine, prevChar = tok.Line, tok.StartChar
	}
	return data
}

// semanticTokensFull tokenizes a whole document. Documents that do not
// parse get no tokens.
func semanticTokensFull(content string) []uint32 {
	src := []byte(content)
	file, diags := hclsyntax.ParseConfig(src, "", hcl.InitialPos)
	if diags.HasErrors() {
		return []uint32{}
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return []uint32{}
	}

	var tokens []semanticToken
	hclsyntax.VisitAll(body, func(node hclsyntax.Node) hcl.Diagnostics {
		tokens = append(tokens, nodeTokens(node)...)
		return nil
	})
	tokens = append(tokens, commentTokens(src)...)

	return encodeTokens(tokens)
}

// nodeTokens returns the tokens a single syntax node contributes. Child
// nodes are visited separately.
func nodeTokens(node hclsyntax.Node) []semanticToken {
	switch n := node.(type) {
	case *hclsyntax.Block:
		return []semanticToken{tokenAt(n.TypeRange.Start, len(n.Type), tokKeyword, 0)}

	case *hclsyntax.Attribute:
		return []semanticToken{tokenAt(n.NameRange.Start, len(n.Name), tokProperty, modDeclaration)}

	case *hclsyntax.LiteralValueExpr:
		// Strings are emitted by their enclosing template.
		if n.Val.Type() == cty.Number {
			return []semanticToken{tokenAt(n.SrcRange.Start, n.SrcRange.End.Byte-n.SrcRange.Start.Byte, tokNumber, 0)}
		}

	case *hclsyntax.TemplateExpr:
		r := n.SrcRange
		if n.IsStringLiteral() && r.Start.Line == r.End.Line {
			return []semanticToken{tokenAt(r.Start, r.End.Byte-r.Start.Byte, tokString, 0)}
		}

	case *hclsyntax.FunctionCallExpr:
		return []semanticToken{tokenAt(n.NameRange.Start, len(n.Name), tokFunction, 0)}

	case *hclsyntax.ScopeTraversalExpr:
		return traversalTokens(n.Traversal)
	}
	return nil
}

// traversalTokens marks the root of palette.blue as a namespace and each
// following name as a property.
func traversalTokens(traversal hcl.Traversal) []semanticToken {
	if len(traversal) == 0 {
		return nil
	}
	root, ok := traversal[0].(hcl.TraverseRoot)
	if !ok {
		return nil
	}

	typ := tokVariable
	if root.Name == "palette" {
		typ = tokNamespace
	}
	tokens := []semanticToken{tokenAt(root.SrcRange.Start, len(root.Name), typ, 0)}

	for _, step := range traversal[1:] {
		attr, ok := step.(hcl.TraverseAttr)
		if !ok {
			continue
		}
		// The step's range starts at the dot.
		end := attr.SrcRange.End
		tokens = append(tokens, tokenAt(hcl.Pos{Line: end.Line, Column: end.Column - len(attr.Name)}, len(attr.Name), tokProperty, 0))
	}
	return tokens
}

// commentTokens returns a token for every single-line comment in src.
func commentTokens(src []byte) []semanticToken {
	lexed, _ := hclsyntax.LexConfig(src, "", hcl.InitialPos)

	var tokens []semanticToken
	for _, tok := range lexed {
		if tok.Type != hclsyntax.TokenComment {
			continue
		}
		text := strings.TrimRight(string(tok.Bytes), "\r\n")
		if strings.Contains(text, "\n") {
			continue
		}
		tokens = append(tokens, tokenAt(tok.Range.Start, len(text), tokComment, 0))
	}
	return tokens
}

func (s *Server) textDocumentSemanticTokensFull(_ *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokensFull(content)}, nil
}

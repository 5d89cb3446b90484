package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// hover describes the color role under pos, or returns nil when pos is not
// on a resolved role.
func hover(result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !inRange(pos, cl.Range) {
			continue
		}

		c := cl.Color
		var b strings.Builder
		fmt.Fprintf(&b, "**%s**\n\n", cl.Role)
		fmt.Fprintf(&b, "`%s` · `%s` · `%s`", c.Hex(), c.CSSRGB(), c.CSSHSL())
		if a := c.Alpha(); a < 1 {
			fmt.Fprintf(&b, "\n\nopacity %.0f%%", a*100)
		}
		if cl.IsRef {
			fmt.Fprintf(&b, "\n\n`%s` resolves to `%s`", textInRange(content, cl.Range), c.HSLCompact())
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: b.String(),
			},
			Range: &cl.Range,
		}
	}

	return nil
}

func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	return hover(s.getResult(uri), content, params.Position), nil
}

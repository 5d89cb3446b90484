package lsp

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsvensson/themekit/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a color.Color to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	rgba := c.RGBA()
	return protocol.Color{
		Red:   float32(rgba.R),
		Green: float32(rgba.G),
		Blue:  float32(rgba.B),
		Alpha: float32(rgba.A),
	}
}

// colorFromLSP converts a protocol.Color picked in the editor back to a
// color.Color.
func colorFromLSP(pc protocol.Color) color.Color {
	channel := func(v float32) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, float64(v))) * 255))
	}
	return color.FromRGBA(channel(pc.Red), channel(pc.Green), channel(pc.Blue), float64(pc.Alpha))
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces color presentation options for a given color and range.
// Only quoted literals are rewritten: the first option is the compact HSL form the
// colors block stores, the second wraps the hex value in color(). References and
// function calls get an empty slice so they are never replaced with literals.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	text := textInRange(content, params.Range)
	if !strings.HasPrefix(text, "\"") {
		return []protocol.ColorPresentation{}
	}

	c := colorFromLSP(params.Color)
	compact := c.HSLCompact()
	call := fmt.Sprintf("color(%q)", c.Hex())

	return []protocol.ColorPresentation{
		{
			Label: compact,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: "\"" + compact + "\"",
			},
		},
		{
			Label: call,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: call,
			},
		},
	}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}

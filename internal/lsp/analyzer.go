package lsp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/json"
	"github.com/jsvensson/themekit/internal/color"
	"github.com/jsvensson/themekit/internal/config"
	"github.com/jsvensson/themekit/internal/theme"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
	DiagInfo    = protocol.DiagnosticSeverityInformation
)

const diagSource = "themekit"

// AnalysisResult holds all information produced by analyzing a theme file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Colors      []ColorLocation
}

// ColorLocation records a resolved color role at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Role  string
	Color color.Color
	IsRef bool // true if the value is a palette reference or function call
}

// blockSchemas holds the attribute names each top-level block accepts.
var blockSchemas = map[string][]string{
	"colors":     schemaAttributes(&config.ColorsConfig{}),
	"radius":     schemaAttributes(&config.RadiusConfig{}),
	"spacing":    schemaAttributes(&config.SpacingConfig{}),
	"typography": schemaAttributes(&config.TypographyConfig{}),
}

// rootAttributes are the top-level attributes of a theme document.
var rootAttributes = schemaAttributes(&config.ThemeConfig{})

func schemaAttributes(v any) []string {
	schema, _ := gohcl.ImpliedBodySchema(v)
	names := make([]string, 0, len(schema.Attributes))
	for _, a := range schema.Attributes {
		names = append(names, a.Name)
	}
	return names
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses a theme document from memory and produces diagnostics and
// color locations. It collects ALL errors rather than short-circuiting on
// the first.
func Analyze(filename, content string) *AnalysisResult {
	if config.IsJSON(filename) {
		return analyzeJSON(filename, content)
	}

	result := &AnalysisResult{}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Cannot proceed with semantic analysis if syntax is broken
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	ctx := config.EvalContext()

	// Structural problems (missing blocks and attributes, wrong types,
	// failed function calls) come straight from the decoder.
	var cfg config.ThemeConfig
	for _, d := range gohcl.DecodeBody(body, ctx, &cfg) {
		result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
	}

	result.analyzeRoot(body, ctx)

	seen := make(map[string]bool)
	for _, block := range body.Blocks {
		attrs, known := blockSchemas[block.Type]
		if !known {
			result.addWarning(block.DefRange(), fmt.Sprintf("unknown block %q is ignored", block.Type))
			continue
		}
		if seen[block.Type] {
			// Reported by the decoder.
			continue
		}
		seen[block.Type] = true

		if block.Type == "colors" {
			result.analyzeColors(block.Body, ctx)
			continue
		}
		for _, attr := range sortedAttributes(block.Body) {
			if !contains(attrs, attr.Name) {
				result.addWarning(attr.NameRange, fmt.Sprintf("unknown attribute %s.%s is ignored", block.Type, attr.Name))
			}
		}
	}

	return result
}

// analyzeRoot checks the top-level name and mode attributes.
// analyzeJSON checks a document in HCL's JSON syntax. Only parse and decode
// diagnostics are reported; JSON documents carry no expressions to locate.
func analyzeJSON(filename, content string) *AnalysisResult {
	result := &AnalysisResult{}

	file, diags := json.Parse([]byte(content), filename)
	if !diags.HasErrors() {
		var cfg config.ThemeConfig
		diags = append(diags, gohcl.DecodeBody(file.Body, config.EvalContext(), &cfg)...)
		if !diags.HasErrors() {
			if err := cfg.Validate(); err != nil {
				result.addError(hcl.Range{Start: hcl.InitialPos, End: hcl.InitialPos}, err.Error())
			}
		}
	}
	for _, d := range diags {
		result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
	}
	return result
}

func (r *AnalysisResult) analyzeRoot(body *hclsyntax.Body, ctx *hcl.EvalContext) {
	for _, attr := range sortedAttributes(body) {
		if !contains(rootAttributes, attr.Name) {
			r.addWarning(attr.NameRange, fmt.Sprintf("unknown attribute %q is ignored", attr.Name))
			continue
		}

		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() || val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
			continue
		}

		switch attr.Name {
		case "name":
			if strings.TrimSpace(val.AsString()) == "" {
				r.addError(attr.Expr.Range(), "theme name must not be empty")
			}
		case "mode":
			switch val.AsString() {
			case config.ModeLight, config.ModeDark:
			default:
				r.addError(attr.Expr.Range(), fmt.Sprintf("mode must be %q or %q, got %q", config.ModeLight, config.ModeDark, val.AsString()))
			}
		}
	}
}

// analyzeColors walks the colors block, recording a ColorLocation for every
// role that evaluates to a string. Values that would resolve to black are
// reported as warnings; loading still succeeds for them.
func (r *AnalysisResult) analyzeColors(body *hclsyntax.Body, ctx *hcl.EvalContext) {
	for _, attr := range sortedAttributes(body) {
		if !theme.IsRole(attr.Name) {
			r.addWarning(attr.NameRange, fmt.Sprintf("unknown color role %q is ignored", attr.Name))
			continue
		}

		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() || val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
			continue
		}

		raw := val.AsString()
		c := color.Black()
		if err := color.CheckHSLCompact(raw); err != nil {
			msg := fmt.Sprintf("colors.%s: %q is not compact HSL (%s) and resolves to black", attr.Name, raw, err)
			if _, perr := color.Parse(raw); perr == nil {
				msg += fmt.Sprintf("; use color(%q) to convert it", raw)
			}
			r.addWarning(attr.Expr.Range(), msg)
		} else {
			c = color.ParseHSLCompact(raw)
		}

		r.Colors = append(r.Colors, ColorLocation{
			Range: hclRangeToLSP(attr.Expr.Range()),
			Role:  attr.Name,
			Color: c,
			IsRef: !isLiteralExpr(attr.Expr),
		})
	}
}

// sortedAttributes returns the attributes of body in source order.
func sortedAttributes(body *hclsyntax.Body) []*hclsyntax.Attribute {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})
	return attrs
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}

// isLiteralExpr returns true if the expression is a plain string, either a
// literal or a template without interpolations.
func isLiteralExpr(expr hclsyntax.Expression) bool {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		return true
	case *hclsyntax.TemplateExpr:
		return e.IsStringLiteral()
	default:
		return false
	}
}

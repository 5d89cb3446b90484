package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/jsvensson/themekit"
	"github.com/jsvensson/themekit/internal/color"
	"github.com/jsvensson/themekit/internal/config"
	"github.com/jsvensson/themekit/internal/theme"
)

type parsedColor struct {
	input string
	color color.Color
}

// swatch renders a block of c's color. Terminals without color support
// get plain spaces.
func swatch(c color.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
}

func newTable(w io.Writer) prettytable.Writer {
	tw := prettytable.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(prettytable.StyleLight)
	tw.Style().Options.SeparateRows = false
	return tw
}

func renderThemeList(w io.Writer, r *themekit.Registry) {
	tw := newTable(w)
	tw.AppendHeader(prettytable.Row{"NAME", "MODE", "ACTIVE", "PRIMARY", ""})

	active := r.ActiveName()
	for _, name := range r.List() {
		t, _ := r.Get(name)
		mark := ""
		if name == active {
			mark = "*"
		}
		tw.AppendRow(prettytable.Row{t.Name, t.Mode.String(), mark, t.Colors.Primary.Hex(), swatch(t.Colors.Primary)})
	}
	tw.Render()
}

func renderTheme(w io.Writer, t theme.Theme) {
	tw := newTable(w)
	tw.SetTitle("%s (%s)", t.Name, t.Mode)
	tw.AppendHeader(prettytable.Row{"ROLE", "", "HEX", "HSL"})
	for _, role := range t.Colors.Roles() {
		tw.AppendRow(prettytable.Row{role.Name, swatch(role.Color), role.Color.Hex(), role.Color.CSSHSL()})
	}
	tw.Render()

	scales := newTable(w)
	scales.AppendHeader(prettytable.Row{"SCALE", "VALUE"})
	scales.SetColumnConfigs([]prettytable.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	r, sp, ty := t.Radius, t.Spacing, t.Typography
	for _, row := range []prettytable.Row{
		{"radius.sm", r.SM}, {"radius.md", r.MD}, {"radius.lg", r.LG}, {"radius.full", r.Full},
		{"spacing.xs", sp.XS}, {"spacing.sm", sp.SM}, {"spacing.md", sp.MD},
		{"spacing.lg", sp.LG}, {"spacing.xl", sp.XL}, {"spacing.xxl", sp.XXL},
		{"typography.font_family", ty.FontFamily}, {"typography.font_mono", ty.FontMono},
		{"typography.size_base", ty.SizeBase}, {"typography.weight_normal", ty.WeightNormal},
		{"typography.weight_bold", ty.WeightBold},
	} {
		scales.AppendRow(row)
	}
	scales.Render()
}

func renderParsed(w io.Writer, colors []parsedColor) {
	tw := newTable(w)
	tw.AppendHeader(prettytable.Row{"INPUT", "", "HEX", "RGB", "HSL", "COMPACT"})
	for _, p := range colors {
		rgb := p.color.CSSRGB()
		if p.color.Alpha() < 1 {
			rgb = p.color.CSSRGBA()
		}
		tw.AppendRow(prettytable.Row{p.input, swatch(p.color), p.color.Hex(), rgb, p.color.CSSHSL(), p.color.HSLCompact()})
	}
	tw.Render()
}

// exportHCL encodes t as a theme document that FromConfig reads back.
func exportHCL(t theme.Theme) []byte {
	return config.EncodeHCL(t.Config())
}

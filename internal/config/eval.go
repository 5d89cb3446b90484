package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/themekit/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// FunctionNames lists the functions available in theme documents, sorted.
var FunctionNames = []string{"color", "darken", "desaturate", "lighten", "mix", "rotate_hue", "saturate"}

// EvalContext returns the evaluation context for theme documents: a palette
// object with every named palette entry and the color functions. All colors
// are produced in the compact HSL form the colors block expects.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": PaletteObject(),
		},
		Functions: map[string]function.Function{
			"color":      MakeColorFunc(),
			"darken":     makeAdjustFunc("Darkens a color by the given amount (0.0 to 1.0)", "amount", color.Color.Darken),
			"lighten":    makeAdjustFunc("Lightens a color by the given amount (0.0 to 1.0)", "amount", color.Color.Lighten),
			"saturate":   makeAdjustFunc("Saturates a color by the given amount (0.0 to 1.0)", "amount", color.Color.Saturate),
			"desaturate": makeAdjustFunc("Desaturates a color by the given amount (0.0 to 1.0)", "amount", color.Color.Desaturate),
			"rotate_hue": makeAdjustFunc("Rotates the hue of a color by the given degrees", "degrees", color.Color.RotateHue),
			"mix":        MakeMixFunc(),
		},
	}
}

// PaletteObject converts the named palette into a cty object, e.g.
// palette.blue or palette.grey_900.
func PaletteObject() cty.Value {
	entries := color.Palette()
	vals := make(map[string]cty.Value, len(entries))
	for _, e := range entries {
		vals[e.Name] = cty.StringVal(e.Color.HSLCompact())
	}
	return cty.ObjectVal(vals)
}

// MakeColorFunc creates an HCL function that normalizes any color syntax
// into compact HSL.
// Usage: color("#2196f3") or color("rgb(33, 150, 243)")
func MakeColorFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Converts a hex, rgb(), hsl() or named color to compact HSL",
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			return cty.StringVal(c.HSLCompact()), nil
		},
	})
}

// makeAdjustFunc creates an HCL function that applies a single-argument
// color modifier.
// Usage: darken(palette.blue, 0.1) or rotate_hue("#ff0000", 120)
func makeAdjustFunc(description, param string, adjust func(color.Color, float64) color.Color) function.Function {
	return function.New(&function.Spec{
		Description: description,
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
			{
				Name: param,
				Type: cty.Number,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			amount, _ := args[1].AsBigFloat().Float64()
			return cty.StringVal(adjust(c, amount).HSLCompact()), nil
		},
	})
}

// MakeMixFunc creates an HCL function that blends two colors in RGB.
// Usage: mix(palette.red, palette.blue, 0.5)
func MakeMixFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Mixes two colors; ratio 0.0 returns the first and 1.0 the second",
		Params: []function.Parameter{
			{
				Name: "a",
				Type: cty.String,
			},
			{
				Name: "b",
				Type: cty.String,
			},
			{
				Name: "ratio",
				Type: cty.Number,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			a, err := color.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			b, err := color.Parse(args[1].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			ratio, _ := args[2].AsBigFloat().Float64()
			return cty.StringVal(a.Mix(b, ratio).HSLCompact()), nil
		},
	})
}

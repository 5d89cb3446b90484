package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsvensson/themekit"
	"github.com/jsvensson/themekit/internal/color"
	"github.com/jsvensson/themekit/internal/engine"
	"github.com/jsvensson/themekit/internal/format"
	"github.com/jsvensson/themekit/internal/theme"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagThemeDir  string
	flagActive    string
	flagVerbose   int
	flagTheme     string
	flagOut       string
	flagTemplates string
	flagApp       []string
	flagCheck     bool
	version       = "dev" // Injected at build time via ldflags
)

var errCheckFailed = errors.New("some files are not formatted")

var rootCmd = &cobra.Command{
	Use:           "themekit",
	Short:         "Inspect, convert and render color themes",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered themes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show the colors and scales of a theme (default: the active theme)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

var parseCmd = &cobra.Command{
	Use:   "parse <color>...",
	Short: "Parse color strings and print every representation",
	Long:  "Parse accepts palette color names, #hex, rgb() and hsl() forms.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate application theme files from templates",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Print a registered theme as an HCL theme document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format HCL theme files",
	Long:  "Format one or more HCL theme files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagThemeDir, "theme-dir", "", "directory of .hcl and .json themes to register")
	rootCmd.PersistentFlags().StringVar(&flagActive, "active", "", "name of the theme to activate")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")

	generateCmd.Flags().StringVar(&flagTheme, "theme", "", "theme name (default: the active theme)")
	generateCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	generateCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	generateCmd.Flags().StringArrayVar(&flagApp, "app", nil, "generate only for specific apps (can be repeated)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadRegistry seeds a registry with the bundled themes, registers every
// theme file in --theme-dir and applies --active.
func loadRegistry() (*themekit.Registry, error) {
	r, err := themekit.NewRegistry()
	if err != nil {
		return nil, err
	}

	if flagThemeDir != "" {
		entries, err := os.ReadDir(flagThemeDir)
		if err != nil {
			return nil, fmt.Errorf("reading theme directory: %w", err)
		}
		for _, entry := range entries {
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if entry.IsDir() || (ext != ".hcl" && ext != ".json") {
				continue
			}
			if _, err := r.RegisterFile(filepath.Join(flagThemeDir, entry.Name())); err != nil {
				return nil, err
			}
		}
	}

	if flagActive != "" && !r.SetActive(flagActive) {
		return nil, fmt.Errorf("unknown theme %q", flagActive)
	}
	return r, nil
}

// lookupTheme returns the named theme, or the active one when name is empty.
func lookupTheme(r *themekit.Registry, name string) (theme.Theme, error) {
	if name == "" {
		return r.Active(), nil
	}
	t, ok := r.Get(name)
	if !ok {
		return theme.Theme{}, fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

func runList(cmd *cobra.Command, args []string) error {
	r, err := loadRegistry()
	if err != nil {
		return err
	}
	renderThemeList(cmd.OutOrStdout(), r)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	r, err := loadRegistry()
	if err != nil {
		return err
	}
	t, err := lookupTheme(r, firstArg(args))
	if err != nil {
		return err
	}
	renderTheme(cmd.OutOrStdout(), t)
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	parsed := make([]parsedColor, 0, len(args))
	var errs []error
	for _, s := range args {
		c, err := color.Parse(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		parsed = append(parsed, parsedColor{input: s, color: c})
	}

	if len(parsed) > 0 {
		renderParsed(cmd.OutOrStdout(), parsed)
	}
	return errors.Join(errs...)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	r, err := loadRegistry()
	if err != nil {
		return err
	}
	source, err := themeSource(r, flagTheme)
	if err != nil {
		return err
	}

	e := &engine.Engine{
		Theme:        source,
		TemplatesDir: flagTemplates,
		OutputDir:    flagOut,
		Apps:         flagApp,
	}

	t, err := e.Run()
	if err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s theme files in %s\n", t.Name, flagOut)
	return nil
}

// themeSource returns the registry itself when name is empty, so rendering
// follows the active theme, or a fixed source for the named theme.
func themeSource(r *themekit.Registry, name string) (themekit.ActiveTheme, error) {
	if name == "" {
		return r, nil
	}
	t, err := lookupTheme(r, name)
	if err != nil {
		return nil, err
	}
	return theme.Static(t), nil
}

func runExport(cmd *cobra.Command, args []string) error {
	r, err := loadRegistry()
	if err != nil {
		return err
	}
	t, err := lookupTheme(r, firstArg(args))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(exportHCL(t))
	return err
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	switch {
	case hasErrors:
		return errors.New("formatting failed")
	case flagCheck && needsFormatting:
		return errCheckFailed
	}
	return nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsvensson/themekit/internal/config"
	"github.com/jsvensson/themekit/internal/theme"
)

// run executes the root command with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagThemeDir, flagActive, flagVerbose = "", "", 0
	flagTheme, flagOut, flagTemplates, flagApp, flagCheck = "", "output", "templates", nil, false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// writeThemeDir writes a theme named name into a fresh directory.
func writeThemeDir(t *testing.T, name string) string {
	t.Helper()
	cfg := theme.FallbackConfig()
	cfg.Name = name
	cfg.Mode = config.ModeDark
	cfg.Colors.Primary = "0 100% 50%"

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name+".hcl"), config.EncodeHCL(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a theme"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"NAME", theme.DefaultLight, theme.DefaultDark} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestList_ThemeDirAndActive(t *testing.T) {
	dir := writeThemeDir(t, "rose")

	out, err := run(t, "list", "--theme-dir", dir, "--active", "rose")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "rose") || !strings.Contains(out, "#ff0000") {
		t.Errorf("list output missing the registered theme:\n%s", out)
	}
}

func TestUnknownActiveTheme(t *testing.T) {
	if _, err := run(t, "list", "--active", "nope"); err == nil || !strings.Contains(err.Error(), `"nope"`) {
		t.Errorf("expected unknown theme error, got %v", err)
	}
}

func TestInvalidThemeFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.hcl"), []byte("name = \"broken\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "list", "--theme-dir", dir); err == nil {
		t.Error("expected an error for an incomplete theme file")
	}
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", theme.DefaultDark)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, role := range theme.RoleNames {
		if !strings.Contains(out, role) {
			t.Errorf("show output missing role %q", role)
		}
	}
	if !strings.Contains(out, "radius.full") || !strings.Contains(out, "9999px") {
		t.Errorf("show output missing scales:\n%s", out)
	}

	if _, err := run(t, "show", "nope"); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}

func TestParse(t *testing.T) {
	out, err := run(t, "parse", "#ff0000", "blue", "hsl(0, 100%, 50%)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, want := range []string{"#ff0000", "#2196f3", "rgb(255, 0, 0)", "0 100% 50%"} {
		if !strings.Contains(out, want) {
			t.Errorf("parse output missing %q:\n%s", want, out)
		}
	}
}

func TestParse_ReportsFailures(t *testing.T) {
	out, err := run(t, "parse", "red", "chartreuse-ish")
	if err == nil || !strings.Contains(err.Error(), "chartreuse-ish") {
		t.Fatalf("expected an error naming the bad input, got %v", err)
	}
	if !strings.Contains(out, "#f44336") {
		t.Errorf("expected the valid color to be printed:\n%s", out)
	}
}

func TestExport(t *testing.T) {
	out, err := run(t, "export", theme.DefaultDark)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	cfg, err := config.Decode([]byte(out), "exported.hcl")
	if err != nil {
		t.Fatalf("decoding exported theme: %v\n%s", err, out)
	}
	active, err := run(t, "export")
	if err != nil {
		t.Fatalf("export active: %v", err)
	}
	if !strings.Contains(active, `name = "`+theme.DefaultLight+`"`) {
		t.Errorf("export without a name should print the active theme:\n%s", active)
	}

	r := theme.NewRegistry()
	if err := theme.RegisterDefaults(r); err != nil {
		t.Fatal(err)
	}
	want, _ := r.Get(theme.DefaultDark)
	got := theme.FromConfig(cfg)
	for _, role := range want.Colors.Roles() {
		c, _ := got.Colors.Lookup(role.Name)
		if !c.ApproxEqual(role.Color, 1e-6) {
			t.Errorf("%s = %s, want %s", role.Name, c.CSSHSL(), role.Color.CSSHSL())
		}
	}
}

func TestGenerate(t *testing.T) {
	dir := writeThemeDir(t, "rose")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"named theme", []string{"--theme", "rose"}, "rose #ff0000\n"},
		{"active theme", []string{"--active", "rose"}, "rose #ff0000\n"},
		{"default active", nil, theme.DefaultLight + " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			templates := t.TempDir()
			out := t.TempDir()
			tmpl := "{{ .Name }} {{ hex \"colors.primary\" }}\n"
			if err := os.WriteFile(filepath.Join(templates, "app.conf.tmpl"), []byte(tmpl), 0o644); err != nil {
				t.Fatal(err)
			}

			args := append([]string{"generate", "--theme-dir", dir, "--templates", templates, "--out", out}, tt.args...)
			stdout, err := run(t, args...)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}

			got, err := os.ReadFile(filepath.Join(out, "app.conf"))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(string(got), tt.want) {
				t.Errorf("rendered = %q, want prefix %q", got, tt.want)
			}
			if themeName, _, _ := strings.Cut(tt.want, " "); !strings.Contains(stdout, "Generated "+themeName) {
				t.Errorf("stdout = %q", stdout)
			}
		})
	}
}

func TestThemeDir_UppercaseExtension(t *testing.T) {
	src, err := theme.BundledSource(theme.DefaultDark)
	if err != nil {
		t.Fatal(err)
	}
	src = bytes.Replace(src, []byte(`"default-dark"`), []byte(`"midnight"`), 1)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "MIDNIGHT.JSON"), src, 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "list", "--theme-dir", dir, "--active", "midnight")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "midnight") {
		t.Errorf("list output missing midnight:\n%s", out)
	}
}

func TestFmt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.hcl")
	messy := "name=\"rose\"\nmode   = \"dark\"\n"
	if err := os.WriteFile(path, []byte(messy), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "fmt", "--check", path)
	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("fmt --check error = %v, want errCheckFailed", err)
	}
	if data, _ := os.ReadFile(path); string(data) != messy {
		t.Error("fmt --check modified the file")
	}

	out, err := run(t, "fmt", path)
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("fmt output = %q, want the file path", out)
	}
	if _, err := run(t, "fmt", "--check", path); err != nil {
		t.Errorf("fmt --check after formatting: %v", err)
	}
}

func TestFmt_MissingFile(t *testing.T) {
	if _, err := run(t, "fmt", filepath.Join(t.TempDir(), "missing.hcl")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tally/internal/config"
)

func TestLoad_NotFound(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "tally.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != config.ThemeLight {
		t.Errorf("Theme = %q, want %q", cfg.UI.Theme, config.ThemeLight)
	}
	if cfg.UI.Banner == "" {
		t.Error("expected a default banner message")
	}
	if cfg.Layout.Breakpoint != config.DefaultBreakpoint {
		t.Errorf("Breakpoint = %d, want %d", cfg.Layout.Breakpoint, config.DefaultBreakpoint)
	}
}

func TestLoad_Full(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.toml")
	content := `
[ui]
theme = "dark"
banner = "hello there"

[layout]
breakpoint = 120
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != config.ThemeDark {
		t.Errorf("Theme = %q, want %q", cfg.UI.Theme, config.ThemeDark)
	}
	if cfg.UI.Banner != "hello there" {
		t.Errorf("Banner = %q, want %q", cfg.UI.Banner, "hello there")
	}
	if cfg.Layout.Breakpoint != 120 {
		t.Errorf("Breakpoint = %d, want 120", cfg.Layout.Breakpoint)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"dark\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Banner == "" {
		t.Error("expected default banner to survive a partial file")
	}
	if cfg.Layout.Breakpoint != config.DefaultBreakpoint {
		t.Errorf("Breakpoint = %d, want default %d", cfg.Layout.Breakpoint, config.DefaultBreakpoint)
	}
}

func TestLoad_UnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"solarized\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := config.Load(path)
	if err == nil {
		t.Fatal("expected an error for an unknown theme")
	}
	if !strings.Contains(err.Error(), "solarized") {
		t.Errorf("error %q does not name the bad theme", err)
	}
}

func TestLoad_NonPositiveBreakpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.toml")
	if err := os.WriteFile(path, []byte("[layout]\nbreakpoint = 0\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Layout.Breakpoint != config.DefaultBreakpoint {
		t.Errorf("Breakpoint = %d, want default %d", cfg.Layout.Breakpoint, config.DefaultBreakpoint)
	}
}

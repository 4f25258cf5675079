package orion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mcraft.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfig_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Window.Width != 1000 || cfg.Window.Height != 600 || cfg.Window.Title != "mcraft" {
		t.Fatalf("expected default window, got %+v", cfg.Window)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	data := strings.Join([]string{
		"window:",
		"  width: 1280",
		"  title: blocks",
		"profile: cpu",
		"profile_path: /tmp/prof",
		"",
	}, "\n")

	cfg, err := LoadConfig(writeConfig(t, data))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Window.Width != 1280 || cfg.Window.Title != "blocks" {
		t.Fatalf("expected overridden window, got %+v", cfg.Window)
	}

	if cfg.Window.Height != 600 {
		t.Fatalf("expected default height to be kept, got %d", cfg.Window.Height)
	}

	var opts RunGameOptions
	cfg.Apply(&opts)

	if opts.WindowWidth != 1280 || opts.WindowHeight != 600 || opts.WindowTitle != "blocks" {
		t.Fatalf("unexpected options %+v", opts)
	}

	if opts.Profile != "cpu" || opts.ProfilePath != "/tmp/prof" {
		t.Fatalf("unexpected profile options %q %q", opts.Profile, opts.ProfilePath)
	}
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "window:\n  width: -1\n")); err == nil {
		t.Fatalf("expected error for negative width")
	}

	if _, err := LoadConfig(writeConfig(t, "profile: gpu\n")); err == nil {
		t.Fatalf("expected error for unknown profile")
	}

	if _, err := LoadConfig(writeConfig(t, "window: [1, 2\n")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

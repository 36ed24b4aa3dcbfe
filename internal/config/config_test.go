package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Editor.TabStop != 8 {
		t.Errorf("TabStop = %d, want 8", cfg.Editor.TabStop)
	}
	if cfg.Editor.QuitConfirmations != 3 {
		t.Errorf("QuitConfirmations = %d, want 3", cfg.Editor.QuitConfirmations)
	}
	if cfg.Editor.StatusTimeout != 5 {
		t.Errorf("StatusTimeout = %d, want 5", cfg.Editor.StatusTimeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Path != "" {
		t.Errorf("Log.Path = %q, want empty", cfg.Log.Path)
	}
}

func TestMessageTimeout(t *testing.T) {
	if got := Default().Editor.MessageTimeout(); got != 5*time.Second {
		t.Errorf("MessageTimeout() = %v, want 5s", got)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kiln.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_stop = 4
quit_confirmations = 1

[log]
path = "/tmp/kiln.log"
level = "debug"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Editor.TabStop != 4 {
		t.Errorf("TabStop = %d, want 4", cfg.Editor.TabStop)
	}
	if cfg.Editor.QuitConfirmations != 1 {
		t.Errorf("QuitConfirmations = %d, want 1", cfg.Editor.QuitConfirmations)
	}
	if cfg.Editor.StatusTimeout != 5 {
		t.Errorf("StatusTimeout = %d, want default 5", cfg.Editor.StatusTimeout)
	}
	if cfg.Log.Path != "/tmp/kiln.log" || cfg.Log.Level != "debug" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadFileMissingIsNotError(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v, want nil for missing file", err)
	}
	if cfg != Default() {
		t.Errorf("missing file changed defaults: %+v", cfg)
	}
}

func TestLoadFileBadTOML(t *testing.T) {
	path := writeConfig(t, "editor = {{{")

	if _, err := LoadFile(path); err == nil {
		t.Fatal("LoadFile() error = nil for invalid TOML")
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("KILN_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("KILN_TAB_STOP", "2")
	t.Setenv("KILN_QUIT_CONFIRMATIONS", "0")
	t.Setenv("KILN_LOG_PATH", "/tmp/k.log")
	t.Setenv("KILN_LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.TabStop != 2 {
		t.Errorf("TabStop = %d, want 2", cfg.Editor.TabStop)
	}
	if cfg.Editor.QuitConfirmations != 0 {
		t.Errorf("QuitConfirmations = %d, want 0", cfg.Editor.QuitConfirmations)
	}
	if cfg.Log.Path != "/tmp/k.log" || cfg.Log.Level != "error" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_stop = 4\n")
	t.Setenv("KILN_CONFIG", path)
	t.Setenv("KILN_TAB_STOP", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.TabStop != 2 {
		t.Errorf("TabStop = %d, want env override 2", cfg.Editor.TabStop)
	}
}

func TestLoadIgnoresUnparsableEnv(t *testing.T) {
	t.Setenv("KILN_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("KILN_TAB_STOP", "wide")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.TabStop != 8 {
		t.Errorf("TabStop = %d, want default 8", cfg.Editor.TabStop)
	}
}

func TestLoadClampsValues(t *testing.T) {
	t.Setenv("KILN_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("KILN_TAB_STOP", "0")
	t.Setenv("KILN_QUIT_CONFIRMATIONS", "-2")
	t.Setenv("KILN_STATUS_TIMEOUT", "-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.TabStop != 8 {
		t.Errorf("TabStop = %d, want clamped default 8", cfg.Editor.TabStop)
	}
	if cfg.Editor.QuitConfirmations != 0 {
		t.Errorf("QuitConfirmations = %d, want clamped 0", cfg.Editor.QuitConfirmations)
	}
	if cfg.Editor.StatusTimeout != 0 {
		t.Errorf("StatusTimeout = %d, want clamped 0", cfg.Editor.StatusTimeout)
	}
}

func TestPathPrefersEnv(t *testing.T) {
	t.Setenv("KILN_CONFIG", "/etc/kiln/custom.toml")

	if got := Path(); got != "/etc/kiln/custom.toml" {
		t.Errorf("Path() = %q, want /etc/kiln/custom.toml", got)
	}
}

package config

import (
	"runtime"
	"testing"
)

func setTempConfigDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	// configPath derives from these per GOOS.
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("APPDATA", dir)
}

func TestLoadDefaults(t *testing.T) {
	setTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Bindings) == 0 {
		t.Fatal("default config has no bindings")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	setTempConfigDir(t)

	cfg := &Config{
		Bindings: []Binding{
			{Name: "mute", Hotkey: "Ctrl+Shift+M", Notify: true},
		},
		LogLevel: "debug",
	}
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Bindings) != 1 || loaded.Bindings[0] != cfg.Bindings[0] {
		t.Errorf("bindings = %+v", loaded.Bindings)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", loaded.LogLevel)
	}
}

func TestPlatformHotkey(t *testing.T) {
	b := Binding{Hotkey: "Ctrl+Shift+K", HotkeyDarwin: "Cmd+Shift+K"}
	want := b.Hotkey
	if runtime.GOOS == "darwin" {
		want = b.HotkeyDarwin
	}
	if got := b.PlatformHotkey(); got != want {
		t.Errorf("PlatformHotkey = %q, want %q", got, want)
	}

	b.HotkeyDarwin = ""
	if got := b.PlatformHotkey(); got != b.Hotkey {
		t.Errorf("fallback failed: %q", got)
	}
}

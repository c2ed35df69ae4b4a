package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
)

// Binding is one named hotkey the tray app registers at startup.
type Binding struct {
	Name string `json:"name"`
	// Hotkey text like "Ctrl+Shift+K"; HotkeyDarwin overrides it on
	// macOS so Cmd-based combinations can be used there.
	Hotkey       string `json:"hotkey"`
	HotkeyDarwin string `json:"hotkey_darwin,omitempty"`
	// Notify shows a desktop notification on press.
	Notify bool `json:"notify"`
}

type Config struct {
	Bindings []Binding `json:"bindings"`
	LogLevel string    `json:"log_level"`
}

// Load reads the config from disk or returns defaults
func Load() (*Config, error) {
	path := configPath()

	// Default config
	cfg := &Config{
		Bindings: []Binding{
			{
				Name:         "example",
				Hotkey:       "Ctrl+Shift+K",
				HotkeyDarwin: "Cmd+Shift+K",
				Notify:       true,
			},
		},
		LogLevel: "info",
	}

	// Load existing config if it exists
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path := configPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// PlatformHotkey returns the appropriate hotkey text for the current
// platform
func (b Binding) PlatformHotkey() string {
	if runtime.GOOS == "darwin" && b.HotkeyDarwin != "" {
		return b.HotkeyDarwin
	}
	return b.Hotkey
}

// configPath returns the platform-specific config file path
func configPath() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Application Support"
	case "windows":
		base = os.Getenv("APPDATA")
	default: // linux
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.config"
		}
	}

	return filepath.Join(base, "keygrab", "config.json")
}

// Package config loads the editor's settings.
//
// The effective configuration is assembled in three layers: built-in
// defaults, then a TOML file, then KILN_* environment variables. The file
// lives at $KILN_CONFIG if set, otherwise <user config dir>/kiln/kiln.toml;
// a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default settings compiled into the binary.
const (
	DefaultTabStop           = 8
	DefaultQuitConfirmations = 3
	DefaultStatusTimeout     = 5
	DefaultLogLevel          = "info"
)

// EnvPrefix is the prefix shared by all environment overrides.
const EnvPrefix = "KILN_"

// Config carries the editor's tunable settings.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Log    LogConfig    `toml:"log"`
}

// EditorConfig tunes editing behavior.
type EditorConfig struct {
	// TabStop is the column width of a tab character.
	TabStop int `toml:"tab_stop"`

	// QuitConfirmations is how many extra quit presses an unsaved buffer
	// demands before the editor exits.
	QuitConfirmations int `toml:"quit_confirmations"`

	// StatusTimeout is how long status messages stay visible, in seconds.
	StatusTimeout int `toml:"status_timeout"`
}

// LogConfig controls the session log. Logging stays disabled until a path
// is configured, since the editor owns the terminal.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// MessageTimeout returns the status message lifetime as a duration.
func (e EditorConfig) MessageTimeout() time.Duration {
	return time.Duration(e.StatusTimeout) * time.Second
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabStop:           DefaultTabStop,
			QuitConfirmations: DefaultQuitConfirmations,
			StatusTimeout:     DefaultStatusTimeout,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load assembles the effective configuration from defaults, the config
// file and the environment.
func Load() (Config, error) {
	cfg, err := LoadFile(Path())
	if err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	cfg.validate()
	return cfg, nil
}

// LoadFile reads a TOML file over the defaults. A missing file is not an
// error; a file that exists but does not parse is.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Path resolves the config file location: $KILN_CONFIG when set, otherwise
// kiln/kiln.toml under the user's config directory.
func Path() string {
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kiln", "kiln.toml")
}

// applyEnv overlays KILN_* environment variables. Values that do not
// parse are ignored rather than fatal.
func (c *Config) applyEnv() {
	if v, ok := lookupInt(EnvPrefix + "TAB_STOP"); ok {
		c.Editor.TabStop = v
	}
	if v, ok := lookupInt(EnvPrefix + "QUIT_CONFIRMATIONS"); ok {
		c.Editor.QuitConfirmations = v
	}
	if v, ok := lookupInt(EnvPrefix + "STATUS_TIMEOUT"); ok {
		c.Editor.StatusTimeout = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_PATH"); ok {
		c.Log.Path = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}
}

// validate clamps settings into their working ranges.
func (c *Config) validate() {
	if c.Editor.TabStop < 1 {
		c.Editor.TabStop = DefaultTabStop
	}
	if c.Editor.QuitConfirmations < 0 {
		c.Editor.QuitConfirmations = 0
	}
	if c.Editor.StatusTimeout < 0 {
		c.Editor.StatusTimeout = 0
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

func lookupInt(name string) (int, bool) {
	s, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

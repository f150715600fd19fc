package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML tags. Pointers distinguish "unset" from false.
type FileConfig struct {
	Title    string   `toml:"title"`
	Entries  []string `toml:"entries"`
	Output   string   `toml:"output"`
	Snapshot string   `toml:"snapshot"`
	Watch    *bool    `toml:"watch"`
	LogLevel string   `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.journal/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".journal", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("title", fc.Title, &cfg.Title)
	s.setStrings("entry", fc.Entries, &cfg.Entries)
	s.setString("out", fc.Output, &cfg.Output)
	s.setString("snapshot", fc.Snapshot, &cfg.SnapshotPath)
	s.setBool("watch", fc.Watch, &cfg.Watch)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

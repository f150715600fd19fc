package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (JOURNAL_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("title", os.Getenv("JOURNAL_TITLE"), &cfg.Title)
	s.setString("out", os.Getenv("JOURNAL_OUTPUT"), &cfg.Output)
	s.setString("snapshot", os.Getenv("JOURNAL_SNAPSHOT"), &cfg.SnapshotPath)
	s.setBoolFromString("watch", os.Getenv("JOURNAL_WATCH"), &cfg.Watch)
	s.setString("log-level", os.Getenv("JOURNAL_LOG_LEVEL"), &cfg.LogLevel)
}

package config

import "os"

// ApplyEnvConfig reads DEMO_* variables. They override the file but not
// flags that were set explicitly.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("data", os.Getenv("DEMO_DATA_FILE"), &cfg.DataFile)
	s.setString("theme", os.Getenv("DEMO_THEME"), &cfg.DefaultTheme)
	s.setString("log-file", os.Getenv("DEMO_LOG_FILE"), &cfg.LogFile)
	s.setString("log-level", os.Getenv("DEMO_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("log-human", os.Getenv("DEMO_LOG_HUMAN"), &cfg.LogHuman)
	s.setBoolFromString("ephemeral", os.Getenv("DEMO_EPHEMERAL"), &cfg.Ephemeral)
}

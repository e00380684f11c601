package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML shape of Config. Pointers tell "unset" from false.
type FileConfig struct {
	DataFile     string `toml:"data_file"`
	DefaultTheme string `toml:"default_theme"`
	LogFile      string `toml:"log_file"`
	LogLevel     string `toml:"log_level"`
	LogHuman     *bool  `toml:"log_human"`
	Ephemeral    *bool  `toml:"ephemeral"`
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

// ApplyFileConfig copies file values into cfg unless the flag was changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("data", fc.DataFile, &cfg.DataFile)
	s.setString("theme", fc.DefaultTheme, &cfg.DefaultTheme)
	s.setString("log-file", fc.LogFile, &cfg.LogFile)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setBool("log-human", fc.LogHuman, &cfg.LogHuman)
	s.setBool("ephemeral", fc.Ephemeral, &cfg.Ephemeral)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

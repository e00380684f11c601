package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	dirName        = ".demo"
	configFileName = "config.toml"
	dataFileName   = "storage.json"
)

// Config holds everything the CLI and the interactive UI need to start.
type Config struct {
	// DataFile is the JSON key-value file that stands in for browser storage.
	DataFile string `validate:"required_unless=Ephemeral true"`
	// DefaultTheme applies only when storage has no theme yet.
	DefaultTheme string `validate:"omitempty,oneof=light dark"`
	LogFile      string
	LogLevel     string `validate:"required,oneof=trace debug info warn error"`
	LogHuman     bool
	// Ephemeral keeps storage in memory for the length of the process.
	Ephemeral bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	cfg := Config{
		DefaultTheme: "light",
		LogLevel:     "info",
	}
	if dir := defaultDir(); dir != "" {
		cfg.DataFile = filepath.Join(dir, dataFileName)
	}
	return cfg
}

// DefaultConfigPath returns ~/.demo/config.toml, or "" without a home dir.
func DefaultConfigPath() string {
	if dir := defaultDir(); dir != "" {
		return filepath.Join(dir, configFileName)
	}
	return ""
}

func defaultDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, dirName)
	}
	return ""
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate normalizes case and checks the configuration.
func (c *Config) Validate() error {
	c.DefaultTheme = strings.ToLower(strings.TrimSpace(c.DefaultTheme))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	if err := validatorInstance().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q (value %q)", fe.Field(), fe.Tag(), fmt.Sprint(fe.Value()))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// configSetter applies values while respecting flag precedence: a value
// lands only if the matching flag was not set on the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

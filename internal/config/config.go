package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aptocom/proposal-agent/internal/branding"
	"github.com/aptocom/proposal-agent/internal/logging"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyDescriptor = "descriptor"
	KeyLogLevel   = "log_level"
	KeyOutput     = "output"
)

// Output formats accepted for KeyOutput.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// LogLevels lists the level names accepted for KeyLogLevel.
var LogLevels = []string{"trace", "debug", "info", "warn", "error", "silent"}

// Keys lists every key the CLI understands, in display order.
var Keys = []string{KeyDescriptor, KeyLogLevel, KeyOutput}

// Dir returns the path to the config directory (~/.aptocom-agent/).
// APTOCOM_AGENT_HOME overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// It is safe to call more than once; each call starts from a clean state.
func Load() {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyOutput, OutputTable)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Descriptor returns the configured default descriptor path, or "" when the
// built-in descriptor should be used.
func Descriptor() string { return viper.GetString(KeyDescriptor) }

// LogLevel returns the configured zerolog level name.
func LogLevel() string { return viper.GetString(KeyLogLevel) }

// Output returns the configured output format.
func Output() string { return viper.GetString(KeyOutput) }

// IsKnown reports whether key is one of Keys.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
// Only values already in the file plus the new key are written; defaults
// and environment overrides stay out of it.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known: %v)", key, Keys)
	}
	switch key {
	case KeyOutput:
		if value != OutputTable && value != OutputJSON {
			return fmt.Errorf("invalid output %q: must be %q or %q", value, OutputTable, OutputJSON)
		}
	case KeyLogLevel:
		if !logging.KnownLevel(value) {
			return fmt.Errorf("invalid log level %q: must be one of %v", value, LogLevels)
		}
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}

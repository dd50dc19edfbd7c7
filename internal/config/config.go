// Package config loads rsakit settings from defaults, an optional YAML file,
// RSAKIT_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file looked up in the home directory.
	FileName = "rsakit.yaml"

	envPrefix = "rsakit"
)

// Config is the runtime configuration.
type Config struct {
	Home       string     `mapstructure:"home" yaml:"home"`
	Bits       int        `mapstructure:"bits" yaml:"bits"`
	Encoding   string     `mapstructure:"encoding" yaml:"encoding"`
	Log        Log        `mapstructure:"log" yaml:"log"`
	Generation Generation `mapstructure:"generation" yaml:"generation"`
}

// Log configures the process logger.
type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Generation bounds the key generation retry loops.
type Generation struct {
	MaxKeyAttempts   int `mapstructure:"max_key_attempts" yaml:"max_key_attempts"`
	MaxPrimeAttempts int `mapstructure:"max_prime_attempts" yaml:"max_prime_attempts"`
}

// flagKeys maps config keys to the flag names that override them.
var flagKeys = map[string]string{
	"home":                          "home",
	"bits":                          "bits",
	"encoding":                      "encoding",
	"log.level":                     "log-level",
	"generation.max_key_attempts":   "max-key-attempts",
	"generation.max_prime_attempts": "max-prime-attempts",
}

// DefaultHome returns ~/.rsakit.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(dir, ".rsakit"), nil
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"home":                          "",
		"bits":                          1024,
		"encoding":                      "decimal",
		"log.level":                     "warn",
		"generation.max_key_attempts":   16,
		"generation.max_prime_attempts": 0,
	}
}

// Load resolves the configuration for cmd. file, when non-empty, must exist;
// otherwise rsakit.yaml is looked up in the home directory and the working
// directory, and a missing file is not an error.
func Load(cmd *cobra.Command, file string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, name := range flagKeys {
			f := cmd.Flags().Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return c, err
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		home := v.GetString("home")
		if home == "" {
			if h, err := DefaultHome(); err == nil {
				home = h
			}
		}
		if home != "" {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if c.Home == "" {
		h, err := DefaultHome()
		if err != nil {
			return c, err
		}
		c.Home = h
	}
	return c, nil
}

// WriteFile writes c as YAML to path, creating parent directories.
func WriteFile(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

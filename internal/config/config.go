// Package config loads gitscribe settings from .gitscribe.yaml, environment
// variables, and bound flags, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	BaseURL        string
	APIKey         string
	Model          string
	TimeoutSeconds int
	MaxAttempts    int
	Fallback       bool
	AutoStage      bool
}

const EnvPrefix = "GITSCRIBE"

// Init wires viper to the config file and environment. A missing config file
// is fine; a file that exists but fails to parse is not.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".gitscribe")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("base_url", "http://localhost:1234/v1")
	viper.SetDefault("timeout_seconds", 30)
	viper.SetDefault("max_attempts", 3)
	viper.SetDefault("fallback", true)
	viper.SetDefault("auto_stage", false)
}

func Load() Config {
	return Config{
		BaseURL:        viper.GetString("base_url"),
		APIKey:         viper.GetString("api_key"),
		Model:          viper.GetString("model"),
		TimeoutSeconds: viper.GetInt("timeout_seconds"),
		MaxAttempts:    viper.GetInt("max_attempts"),
		Fallback:       viper.GetBool("fallback"),
		AutoStage:      viper.GetBool("auto_stage"),
	}
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("base_url is not configured")
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("model is not configured (set model in .gitscribe.yaml or %s_MODEL)", EnvPrefix)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}

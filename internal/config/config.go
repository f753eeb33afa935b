// Package config resolves the server configuration once at startup.
//
// Sources, lowest priority first:
//  1. struct defaults
//  2. an optional YAML file (--config)
//  3. SONARQUBE_* environment variables (SONARQUBE_LOG_LEVEL -> log_level)
//  4. CLI flags the user explicitly set
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/HendryAvila/sonarqube-mcp/internal/sonarqube"
	"github.com/HendryAvila/sonarqube-mcp/internal/validate"
)

// EnvPrefix is the prefix of every environment variable the server reads.
const EnvPrefix = "SONARQUBE_"

// Config is the resolved server configuration.
type Config struct {
	// URL is the SonarQube instance, e.g. https://sonarcloud.io.
	URL string `koanf:"url" validate:"omitempty,http_url"`
	// Token is a user token sent as the Basic auth username.
	Token        string        `koanf:"token"`
	LogLevel     string        `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	OutputFormat string        `koanf:"output_format" validate:"oneof=json toon"`
	Timeout      time.Duration `koanf:"timeout" validate:"gte=0"`

	// URLDefaulted is true when no source provided a URL.
	URLDefaulted bool `koanf:"-"`
}

// Defaults returns the built-in configuration. URL is left empty so that
// Load can tell whether the user supplied one.
func Defaults() Config {
	return Config{
		LogLevel:     "info",
		OutputFormat: "json",
	}
}

// FlagMappings maps CLI flag names to configuration keys.
var FlagMappings = map[string]string{
	"url":           "url",
	"log-level":     "log_level",
	"output-format": "output_format",
	"timeout":       "timeout",
}

// Load resolves the configuration. configPath may be empty; flags may be
// nil. The result is validated, including the mandatory token.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		if err := k.Load(file.Provider(configPath), koanfyaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	// Empty variables count as unset.
	envProvider := env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := loadFlags(k, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	cfg.URL = strings.TrimSpace(cfg.URL)
	if cfg.URL == "" {
		cfg.URL = sonarqube.DefaultBaseURL
		cfg.URLDefaulted = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFlags applies only the flags the user explicitly set.
func loadFlags(k *koanf.Koanf, flags *pflag.FlagSet) error {
	var errs []error
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := FlagMappings[f.Name]; ok {
			if err := k.Set(key, f.Value.String()); err != nil {
				errs = append(errs, fmt.Errorf("flag %s: %w", f.Name, err))
			}
		}
	})
	return errors.Join(errs...)
}

// Validate checks field formats and the presence of a token. A missing
// token is reported as a sonarqube configuration error.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return &sonarqube.Error{
			Op:     "Error loading configuration",
			Kind:   sonarqube.KindConfiguration,
			Detail: "SONARQUBE_TOKEN not configured. Set environment variable.",
		}
	}
	if err := validate.New("koanf").Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SonarQube returns the client configuration.
func (c *Config) SonarQube() sonarqube.Config {
	return sonarqube.Config{
		BaseURL: c.URL,
		Token:   c.Token,
		Timeout: c.Timeout,
	}
}

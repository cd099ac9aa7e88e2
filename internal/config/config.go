// Package config loads covenant configuration through viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/covenantlabs/covenant/internal/providers"
)

// Load reads configuration from the given file (or the default search
// paths) merged with COVENANT_* environment variables.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("llm_providers", defaults.LLMProviders)
	v.SetDefault("defaults", defaults.Defaults)

	v.SetEnvPrefix("COVENANT")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.covenant")
	}

	// Config file is optional; defaults plus env are enough to run.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// ResolveEnvVars expands ${ENV_VAR} references in a string.
func ResolveEnvVars(value string) string {
	if value == "" {
		return value
	}
	return envVarPattern.ReplaceAllStringFunc(value, func(match string) string {
		varName := match[2 : len(match)-1]
		return os.Getenv(varName)
	})
}

// ToProviderRegistryConfig converts the config to a providers.RegistryConfig,
// resolving ${ENV_VAR} references in API keys. A missing credential is logged
// as a warning but does not halt execution; the provider call will fail later
// if the credential is actually required.
func (c *Config) ToProviderRegistryConfig(logger *slog.Logger) providers.RegistryConfig {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := providers.RegistryConfig{
		LLMProviders: make(map[string]providers.LLMProviderConfig),
	}
	for name, llm := range c.LLMProviders {
		apiKey := ResolveEnvVars(llm.APIKey)
		if llm.Enabled && apiKey == "" {
			logger.Warn("no API key configured for provider; calls will fail if a credential is required",
				"provider", name,
				"api_key_setting", llm.APIKey,
			)
		}
		cfg.LLMProviders[name] = providers.LLMProviderConfig{
			Type:    llm.Type,
			Model:   llm.Model,
			APIKey:  apiKey,
			BaseURL: llm.BaseURL,
			Timeout: time.Duration(llm.TimeoutSeconds) * time.Second,
			Enabled: llm.Enabled,
		}
	}
	return cfg
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Package config loads the assistant service settings. Both required values
// are validated against known placeholder strings before any network call is
// made, so a copy-pasted example config fails fast.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/insight-cli/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".insight"

	apiKeyKey      = "openai.api_key"
	assistantIDKey = "openai.assistant_id"
	baseURLKey     = "openai.base_url"

	defaultBaseURL = "https://api.openai.com/v1"
)

var placeholderValues = []string{"your-api-key", "your-assistant-id"}

type Config struct {
	APIKey      string
	AssistantID string
	BaseURL     string
}

func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(baseURLKey, defaultBaseURL)

	if err := cfg.BindEnv(apiKeyKey, "INSIGHT_API_KEY", "OPENAI_API_KEY"); err != nil {
		return Config{}, fmt.Errorf("bind api key env: %w", err)
	}
	if err := cfg.BindEnv(assistantIDKey, "INSIGHT_ASSISTANT_ID"); err != nil {
		return Config{}, fmt.Errorf("bind assistant id env: %w", err)
	}
	if err := cfg.BindEnv(baseURLKey, "INSIGHT_BASE_URL"); err != nil {
		return Config{}, fmt.Errorf("bind base url env: %w", err)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		APIKey:      strings.TrimSpace(cfg.GetString(apiKeyKey)),
		AssistantID: strings.TrimSpace(cfg.GetString(assistantIDKey)),
		BaseURL:     strings.TrimSpace(cfg.GetString(baseURLKey)),
	}

	if err := loaded.validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

func (c Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: api key is missing (set INSIGHT_API_KEY or openai.api_key)", domain.ErrConfiguration)
	}
	if containsPlaceholder(c.APIKey) {
		return fmt.Errorf("%w: api key still holds a placeholder value", domain.ErrConfiguration)
	}
	if c.AssistantID == "" {
		return fmt.Errorf("%w: assistant id is missing (set INSIGHT_ASSISTANT_ID or openai.assistant_id)", domain.ErrConfiguration)
	}
	if containsPlaceholder(c.AssistantID) {
		return fmt.Errorf("%w: assistant id still holds a placeholder value", domain.ErrConfiguration)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base url is empty", domain.ErrConfiguration)
	}

	return nil
}

func containsPlaceholder(value string) bool {
	lowered := strings.ToLower(value)
	for _, placeholder := range placeholderValues {
		if strings.Contains(lowered, placeholder) {
			return true
		}
	}

	return false
}

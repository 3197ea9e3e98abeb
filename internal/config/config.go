// Package config loads runtime configuration from the environment, with an
// optional .env file picked up from the working directory.
package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Validate when no Groq API key is set.
var ErrMissingAPIKey = errors.New("missing GROQ_API_KEY")

const (
	DefaultModel   = "llama3-70b-8192"
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultTimeout = 60 * time.Second
)

// Config holds everything the preprocess pipeline needs to reach the LLM.
//
// WARNING: APIKey is a secret and must not be logged.
type Config struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from env vars (GROQ_API_KEY, POSTPREP_MODEL,
// POSTPREP_BASE_URL, POSTPREP_TIMEOUT), loading a .env file first if one
// exists. Missing values fall back to defaults; only the API key has none.
func Load() (Config, error) {
	// Same behavior as dotenv in the usual toolchains: a missing .env file
	// is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("model", DefaultModel)
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeout)

	if err := v.BindEnv("api_key", "GROQ_API_KEY"); err != nil {
		return Config{}, err
	}
	if err := v.BindEnv("model", "POSTPREP_MODEL"); err != nil {
		return Config{}, err
	}
	if err := v.BindEnv("base_url", "POSTPREP_BASE_URL"); err != nil {
		return Config{}, err
	}
	if err := v.BindEnv("timeout", "POSTPREP_TIMEOUT"); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the config is usable for LLM-backed preprocessing.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

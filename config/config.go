package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Prayer time cache
const PRAYER_TIMES_CACHE_TTL = 8 * 24 * time.Hour

// e-Solat API
const ESOLAT_ENDPOINT_BASE = "https://www.e-solat.gov.my/index.php"
const ESOLAT_RETRY_INITIAL_BACKOFF = 500 * time.Millisecond

// Ollama
const OLLAMA_DEFAULT_URL = "http://localhost:11434"
const OLLAMA_DEFAULT_MODEL = "llama3:latest"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const ESOLAT_WEEK_RESPONSE_RESOURCE = "esolat_week_response.json"

// Config holds the configuration for the assistant.
// Environment variables are parsed with the SOLAT_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort           int `envconfig:"HTTP_PORT" default:"8080"`
	HTTPTimeoutSeconds int `envconfig:"HTTP_TIMEOUT_SECONDS" default:"10"`

	// e-Solat
	ESolatBaseURL    string `envconfig:"ESOLAT_BASE_URL" default:"https://www.e-solat.gov.my/index.php"`
	ESolatMaxRetries uint64 `envconfig:"ESOLAT_MAX_RETRIES" default:"2"`

	// Redis Configuration
	RedisAddress  string `envconfig:"REDIS_ADDRESS" default:"redis:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Generative fallback
	OllamaURL   string `envconfig:"OLLAMA_URL" default:"http://localhost:11434"`
	OllamaModel string `envconfig:"OLLAMA_MODEL" default:"llama3:latest"`

	// Voice devices over MQTT; empty disables the bridge
	MQTTBrokerURL string `envconfig:"MQTT_BROKER_URL" default:""`
	MQTTClientID  string `envconfig:"MQTT_CLIENT_ID" default:"solat-assistant"`

	// Fuzzy matching in the corrector and resolvers
	FuzzyEnabled bool `envconfig:"FUZZY_ENABLED" default:"true"`
}

// New creates a new Config by parsing environment variables.
// A .env file in the working directory is loaded first when present.
// Example: SOLAT_HTTP_PORT, SOLAT_REDIS_ADDRESS
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("SOLAT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("esolat_base_url", cfg.ESolatBaseURL).
		Uint64("esolat_max_retries", cfg.ESolatMaxRetries).
		Str("redis_address", cfg.RedisAddress).
		Str("ollama_url", cfg.OllamaURL).
		Str("ollama_model", cfg.OllamaModel).
		Str("mqtt_broker_url", cfg.MQTTBrokerURL).
		Bool("fuzzy_enabled", cfg.FuzzyEnabled).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment:        EnvTesting,
		HTTPPort:           8080,
		HTTPTimeoutSeconds: 5,
		ESolatBaseURL:      ESOLAT_ENDPOINT_BASE,
		ESolatMaxRetries:   0,
		RedisAddress:       "localhost:6379",
		OllamaURL:          OLLAMA_DEFAULT_URL,
		OllamaModel:        OLLAMA_DEFAULT_MODEL,
		FuzzyEnabled:       true,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// HTTPTimeout returns the outbound HTTP timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

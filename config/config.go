package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Dealership assistant specifics
	Dealership DealershipConfig
	Catalog    CatalogConfig
	Booking    BookingConfig
	Session    SessionConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// DealershipConfig describes the dealership's operating parameters.
type DealershipConfig struct {
	Name           string
	Timezone       string
	OpenHour       int // first bookable hour, e.g. 9 for 09:00
	CloseHour      int // last bookable hour boundary, e.g. 18 for 18:00
	BufferMinutes  int // minimum gap between test drives, in minutes
	CandidateHours []string
}

type CatalogConfig struct {
	Path string // path to the vehicle catalog JSON file
}

type BookingConfig struct {
	DatabasePath string // sqlite file path; ":memory:" for ephemeral
}

type SessionConfig struct {
	MaxSessions int // bounded LRU capacity for concurrent conversations
	MaxHistory  int // per-conversation message history cap
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerSecond = viper.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Dealership assistant specifics
	cfg.Dealership.Name = viper.GetString("dealership.name")
	cfg.Dealership.Timezone = viper.GetString("dealership.timezone")
	cfg.Dealership.OpenHour = viper.GetInt("dealership.open_hour")
	cfg.Dealership.CloseHour = viper.GetInt("dealership.close_hour")
	cfg.Dealership.BufferMinutes = viper.GetInt("dealership.buffer_minutes")
	cfg.Dealership.CandidateHours = viper.GetStringSlice("dealership.candidate_hours")

	cfg.Catalog.Path = viper.GetString("catalog.path")
	if catalogPath := viper.GetString("catalog_path"); catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}

	cfg.Booking.DatabasePath = viper.GetString("booking.database_path")
	if dbPath := viper.GetString("booking_database_path"); dbPath != "" {
		cfg.Booking.DatabasePath = dbPath
	}

	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.MaxHistory = viper.GetInt("session.max_history")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}
	if err := validateDealershipConfig(&cfg.Dealership); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 10.0)
	viper.SetDefault("rate_limit.burst", 20)

	viper.SetDefault("dealership.name", "the dealership")
	viper.SetDefault("dealership.timezone", "Local")
	viper.SetDefault("dealership.open_hour", 9)
	viper.SetDefault("dealership.close_hour", 18)
	viper.SetDefault("dealership.buffer_minutes", 15)
	viper.SetDefault("dealership.candidate_hours",
		[]string{"9:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"})

	viper.SetDefault("catalog.path", "./data/vehicles.json")
	viper.SetDefault("booking.database_path", "./data/bookings.db")

	viper.SetDefault("session.max_sessions", 1024)
	viper.SetDefault("session.max_history", 50)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func validateDealershipConfig(cfg *DealershipConfig) error {
	if cfg.OpenHour < 0 || cfg.OpenHour > 23 {
		return fmt.Errorf("dealership.open_hour must be between 0 and 23, got %d", cfg.OpenHour)
	}
	if cfg.CloseHour < 1 || cfg.CloseHour > 24 {
		return fmt.Errorf("dealership.close_hour must be between 1 and 24, got %d", cfg.CloseHour)
	}
	if cfg.OpenHour >= cfg.CloseHour {
		return fmt.Errorf("dealership.open_hour (%d) must be before close_hour (%d)", cfg.OpenHour, cfg.CloseHour)
	}
	if cfg.BufferMinutes < 0 {
		return fmt.Errorf("dealership.buffer_minutes must not be negative, got %d", cfg.BufferMinutes)
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

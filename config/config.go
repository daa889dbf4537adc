package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Extraction strategy names accepted in nlu.strategy.
const (
	StrategyOpenAI = "openai"
	StrategyOllama = "ollama"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Extraction pipeline
	NLU    NLUConfig
	OpenAI OpenAIConfig
	Ollama OllamaConfig

	// Calendar
	GoogleCalendar GoogleCalendarConfig
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

// NLUConfig selects and parameterizes the slot extraction strategy.
type NLUConfig struct {
	Strategy        string // "openai" or "ollama"
	Timezone        string // default IANA zone for mapping and prompts
	RateLimitPerMin int    // <= 0 disables rate limiting
}

type OpenAIConfig struct {
	APIKey  string
	Project string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type OllamaConfig struct {
	Host    string
	Model   string
	Timeout time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// Extraction pipeline
	cfg.NLU.Strategy = viper.GetString("nlu.strategy")
	cfg.NLU.Timezone = viper.GetString("nlu.timezone")
	cfg.NLU.RateLimitPerMin = viper.GetInt("nlu.rate_limit_per_min")

	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Project = viper.GetString("openai.project")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Timeout = viper.GetDuration("openai.timeout")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	cfg.Ollama.Host = viper.GetString("ollama.host")
	cfg.Ollama.Model = viper.GetString("ollama.model")
	cfg.Ollama.Timeout = viper.GetDuration("ollama.timeout")
	if host := viper.GetString("ollama_host"); host != "" {
		cfg.Ollama.Host = host
	}

	// Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.NLU.Strategy {
	case StrategyOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return fmt.Errorf("nlu.strategy is %q but openai.api_key is not set", StrategyOpenAI)
		}
	case StrategyOllama:
		// Host has a default; nothing mandatory.
	default:
		return fmt.Errorf("unknown nlu.strategy %q (expected %q or %q)", cfg.NLU.Strategy, StrategyOpenAI, StrategyOllama)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("nlu.strategy", StrategyOllama)
	viper.SetDefault("nlu.timezone", "America/New_York")
	viper.SetDefault("nlu.rate_limit_per_min", 60)

	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.timeout", "30s")

	viper.SetDefault("ollama.host", "http://localhost:11434")
	viper.SetDefault("ollama.model", "llama3.1")
	viper.SetDefault("ollama.timeout", "20s")

	viper.SetDefault("google_calendar.calendar_id", "primary")
}

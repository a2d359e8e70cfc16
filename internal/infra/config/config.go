package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Climate   ClimateConfig   `yaml:"climate"`
	LLM       LLMConfig       `yaml:"llm"`
	Narrative NarrativeConfig `yaml:"narrative"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// CatalogConfig selects the product source. An empty BaseURL and DSN leaves
// only the built-in in-memory catalog.
type CatalogConfig struct {
	BaseURL  string         `yaml:"baseUrl"`
	Timeout  time.Duration  `yaml:"timeout"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ClimateConfig drives the climate resolution waterfall and its cache.
type ClimateConfig struct {
	CachePath      string       `yaml:"cachePath"`
	Valkey         ValkeyConfig `yaml:"valkey"`
	WeatherAPIKey  string       `yaml:"weatherApiKey"`
	WeatherBaseURL string       `yaml:"weatherBaseUrl"`
	WikiBaseURL    string       `yaml:"wikiBaseUrl"`
}

// ValkeyConfig contains connection information for the shared cache.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// NarrativeConfig controls how chat replies are phrased.
type NarrativeConfig struct {
	Prompt            string `yaml:"prompt"`
	PromptTokenBudget int    `yaml:"promptTokenBudget"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("CATALOG_BASE_URL"); v != "" {
		cfg.Catalog.BaseURL = v
	}
	if v := os.Getenv("CATALOG_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Catalog.Timeout = parsed
		}
	}
	if v := os.Getenv("CATALOG_POSTGRES_DSN"); v != "" {
		cfg.Catalog.Postgres.DSN = v
	}
	if v := os.Getenv("CATALOG_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("CATALOG_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("CLIMATE_CACHE_PATH"); v != "" {
		cfg.Climate.CachePath = v
	}
	if v := os.Getenv("CLIMATE_VALKEY_ENABLED"); v != "" {
		cfg.Climate.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("CLIMATE_VALKEY_ADDR"); v != "" {
		cfg.Climate.Valkey.Addr = v
	}
	if v := os.Getenv("WEATHER_API_KEY"); v != "" {
		cfg.Climate.WeatherAPIKey = v
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.Climate.WeatherBaseURL = v
	}
	if v := os.Getenv("WIKI_BASE_URL"); v != "" {
		cfg.Climate.WikiBaseURL = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("NARRATIVE_PROMPT"); v != "" {
		cfg.Narrative.Prompt = v
	}
	if v := os.Getenv("NARRATIVE_TOKEN_BUDGET"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Narrative.PromptTokenBudget = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{
			Timeout: 5 * time.Second,
			Postgres: PostgresConfig{
				MaxConns: 4,
				MinConns: 0,
			},
		},
		Climate: ClimateConfig{
			CachePath:      "data/climate_cache.json",
			WeatherBaseURL: "https://api.openweathermap.org/data/2.5",
			WikiBaseURL:    "https://en.wikipedia.org/w/api.php",
		},
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.4,
		},
		Narrative: NarrativeConfig{
			Prompt:            "You are a travel shopping stylist who explains product picks with cultural sensitivity. Ground every statement in the supplied recommendation data and keep replies under 120 words.",
			PromptTokenBudget: 3000,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Catalog.Timeout <= 0 {
		return errors.New("catalog.timeout must be positive")
	}
	if c.Climate.CachePath == "" && !c.Climate.Valkey.Enabled {
		return errors.New("climate.cachePath cannot be empty when valkey cache is disabled")
	}
	if c.Climate.Valkey.Enabled && strings.TrimSpace(c.Climate.Valkey.Addr) == "" {
		return errors.New("climate.valkey.addr cannot be empty when valkey cache is enabled")
	}
	if c.Narrative.Prompt == "" {
		return errors.New("narrative.prompt cannot be empty")
	}
	if c.Narrative.PromptTokenBudget < 0 {
		return errors.New("narrative.promptTokenBudget cannot be negative")
	}
	return nil
}

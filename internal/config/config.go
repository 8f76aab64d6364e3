// Package config loads the service configuration from YAML with environment
// overrides for secrets.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration parses YAML durations like "2h" or "30s".
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Config is the root configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Assessment AssessmentConfig `yaml:"assessment"`
	Store      StoreConfig      `yaml:"store"`
	Providers  ProvidersConfig  `yaml:"providers"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port            int      `yaml:"port"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// AssessmentConfig holds the access allow-list and the question scheme name.
type AssessmentConfig struct {
	// AccessKeys is the closed list of keys allowed to start assessments.
	AccessKeys []string `yaml:"access_keys"`
	// Scheme selects the question scheme, "navigator" or "riasec".
	Scheme string `yaml:"scheme"`
}

// StoreConfig selects and configures the persistence backend.
type StoreConfig struct {
	// Backend is "file" or "redis".
	Backend string      `yaml:"backend"`
	BaseDir string      `yaml:"base_dir"`
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr       string   `yaml:"addr"`
	Password   string   `yaml:"password"`
	DB         int      `yaml:"db"`
	Prefix     string   `yaml:"prefix"`
	SessionTTL Duration `yaml:"session_ttl"`
}

// ProvidersConfig holds per-provider credentials and endpoints.
type ProvidersConfig struct {
	Qwen   ProviderConfig `yaml:"qwen"`
	Gemini ProviderConfig `yaml:"gemini"`
}

// ProviderConfig configures one LLM backend. A provider with an empty APIKey
// is not registered.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// RateLimitConfig bounds outbound model calls.
type RateLimitConfig struct {
	// RPS is the sustained requests-per-second limit. Zero disables limiting.
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// LogConfig selects the logger mode.
type LogConfig struct {
	// Mode is "development" or "production".
	Mode string `yaml:"mode"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Assessment: AssessmentConfig{
			AccessKeys: []string{"123", "456"},
			Scheme:     "navigator",
		},
		Store: StoreConfig{
			Backend: "file",
			BaseDir: "data",
		},
		Providers: ProvidersConfig{
			Qwen:   ProviderConfig{Model: "qwen-plus"},
			Gemini: ProviderConfig{Model: "gemini-2.0-flash"},
		},
		RateLimit: RateLimitConfig{RPS: 2, Burst: 4},
		Log:       LogConfig{Mode: "production"},
	}
}

// Load reads the YAML file at path, applies environment overrides and
// validates. An empty path yields defaults plus overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("QWEN_API_KEY"); v != "" {
		c.Providers.Qwen.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Providers.Gemini.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Store.Redis.Addr = v
	}
}

// Validate checks the loaded configuration for contradictions.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if len(c.Assessment.AccessKeys) == 0 {
		return fmt.Errorf("at least one access key is required")
	}
	switch c.Assessment.Scheme {
	case "", "navigator", "riasec":
	default:
		return fmt.Errorf("unknown assessment scheme %q", c.Assessment.Scheme)
	}
	switch c.Store.Backend {
	case "file", "redis":
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Store.Backend == "redis" && c.Store.Redis.Addr == "" {
		return fmt.Errorf("redis backend requires an address")
	}
	return nil
}

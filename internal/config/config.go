package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so "15s"-style values parse from yaml
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config represents the application configuration
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`

	Tables struct {
		Count int `yaml:"count"`
	} `yaml:"tables"`

	Policies struct {
		// Completion: "lenient" allows forcing an order through with
		// unready items, "strict" requires every item ready.
		Completion string `yaml:"completion"`
		// Stock: "allow" lets deductions drive stock negative (logged),
		// "reject" refuses them.
		Stock string `yaml:"stock"`
	} `yaml:"policies"`

	Simulator struct {
		Enabled  bool     `yaml:"enabled"`
		Interval Duration `yaml:"interval"`
	} `yaml:"simulator"`

	Audit struct {
		Path string `yaml:"path"`
	} `yaml:"audit"`

	Suggestions struct {
		OpenAIKey string `yaml:"openai_key"`
		Model     string `yaml:"model"`
	} `yaml:"suggestions"`
}

// Default returns the compiled-in configuration: twenty tables, lenient
// policies, simulator off, audit in the working directory.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Tables.Count = 20
	cfg.Policies.Completion = "lenient"
	cfg.Policies.Stock = "allow"
	cfg.Simulator.Interval = Duration(15 * time.Second)
	cfg.Audit.Path = "comanda_audit.db"
	cfg.Suggestions.Model = "gpt-4o-mini"
	return cfg
}

// Load reads a yaml configuration file over the defaults. A missing
// path returns the defaults unchanged. OPENAI_API_KEY in the
// environment overrides the file's key.
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
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.Suggestions.OpenAIKey = key
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Tables.Count < 1 {
		return fmt.Errorf("config: table count must be at least 1, got %d", c.Tables.Count)
	}
	switch c.Policies.Completion {
	case "lenient", "strict":
	default:
		return fmt.Errorf("config: unknown completion policy %q", c.Policies.Completion)
	}
	switch c.Policies.Stock {
	case "allow", "reject":
	default:
		return fmt.Errorf("config: unknown stock policy %q", c.Policies.Stock)
	}
	if c.Simulator.Enabled && c.Simulator.Interval <= 0 {
		return fmt.Errorf("config: simulator interval must be positive")
	}
	return nil
}

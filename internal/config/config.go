package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Log       LogConfig       `yaml:"log"`
	Chat      ChatConfig      `yaml:"chat"`
	Seed      SeedConfig      `yaml:"seed"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// TransportConfig selects the serving surface: "http" or "stdio".
type TransportConfig struct {
	Mode string `yaml:"mode"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// ChatConfig bounds the cosmetic assistant-reply delay. Zero means replies
// are appended inline.
type ChatConfig struct {
	ReplyDelayMinMS int `yaml:"reply_delay_min_ms"`
	ReplyDelayMaxMS int `yaml:"reply_delay_max_ms"`
}

// SeedConfig sets up the current user for a fresh store.
type SeedConfig struct {
	UserName string `yaml:"user_name"`
	Tokens   int    `yaml:"tokens"`
}

// Load reads configuration from an optional .env file, an optional YAML file,
// and environment variables, in increasing precedence.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Log: LogConfig{
			Level: "info",
		},
		Chat: ChatConfig{
			ReplyDelayMinMS: 1000,
			ReplyDelayMaxMS: 2000,
		},
		Seed: SeedConfig{
			UserName: "John Doe",
			Tokens:   100,
		},
	}

	if path := os.Getenv("LAUNCHPAD_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("LAUNCHPAD_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("LAUNCHPAD_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LAUNCHPAD_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("LAUNCHPAD_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if level := os.Getenv("LAUNCHPAD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if name := os.Getenv("LAUNCHPAD_SEED_USER_NAME"); name != "" {
		cfg.Seed.UserName = name
	}
	if tokensStr := os.Getenv("LAUNCHPAD_SEED_TOKENS"); tokensStr != "" {
		tokens, err := strconv.Atoi(tokensStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LAUNCHPAD_SEED_TOKENS: %w", err)
		}
		cfg.Seed.Tokens = tokens
	}

	if cfg.Transport.Mode != "http" && cfg.Transport.Mode != "stdio" {
		return Config{}, fmt.Errorf("unknown transport mode %q", cfg.Transport.Mode)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

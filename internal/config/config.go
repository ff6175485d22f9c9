package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Auth     AuthConfig     `yaml:"auth"`
	Notifier NotifierConfig `yaml:"notifier"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type StorageConfig struct {
	// Driver selects where orders live: "local" (the SQLite state file)
	// or "postgres".
	Driver string `yaml:"driver"`
	// Path is the local state file. Session, tab and theme state always
	// live here regardless of the order driver.
	Path string `yaml:"path"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RabbitMQConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type AuthConfig struct {
	// TokenSecret signs session tokens. The default is fine for the demo
	// accounts this app ships with; override it for anything else.
	TokenSecret string `yaml:"token_secret"`
}

type NotifierConfig struct {
	// Mode selects the local new-order chime: "bell" or "none".
	Mode string `yaml:"mode"`
}

const (
	StorageDriverLocal    = "local"
	StorageDriverPostgres = "postgres"

	NotifierModeBell = "bell"
	NotifierModeNone = "none"
)

// Default returns the configuration used when no config file exists. The
// binary runs with no file at all: a local state file next to the binary,
// no RabbitMQ, terminal bell on.
func Default() *Config {
	return &Config{
		HTTP:    HTTPConfig{Port: 3000},
		Storage: StorageConfig{Driver: StorageDriverLocal, Path: "orderdesk.db"},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "orderdesk",
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  false,
			Host:     "localhost",
			Port:     5672,
			User:     "guest",
			Password: "guest",
		},
		Auth:     AuthConfig{TokenSecret: "orderdesk-demo-secret"},
		Notifier: NotifierConfig{Mode: NotifierModeBell},
	}
}

// Load reads the YAML config at path on top of the defaults. A missing file
// is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Storage.Driver != StorageDriverLocal && c.Storage.Driver != StorageDriverPostgres {
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Notifier.Mode != NotifierModeBell && c.Notifier.Mode != NotifierModeNone {
		return fmt.Errorf("unknown notifier mode %q", c.Notifier.Mode)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTP.Port)
	}
	return nil
}

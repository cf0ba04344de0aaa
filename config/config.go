package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Data       DataConfig       `yaml:"data"`
	NLP        NLPConfig        `yaml:"nlp"`
	Database   DatabaseConfig   `yaml:"database"`
	Push       PushConfig       `yaml:"push"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DataConfig describes where the dataset files live and how often they are
// re-read. With watch disabled the datasets are loaded once at startup.
type DataConfig struct {
	Dir                   string        `yaml:"dir"`
	WatchEnabled          bool          `yaml:"watch_enabled"`
	ReloadIntervalSeconds int           `yaml:"reload_interval_seconds"`
	ReloadInterval        time.Duration `yaml:"-"` // Ignored by YAML parser
}

// NLPConfig holds the connection settings for the local Ollama server that
// parses natural-language workspace requests.
type NLPConfig struct {
	Enabled            bool   `yaml:"enabled"`
	URL                string `yaml:"url"`
	Model              string `yaml:"model"`
	TimeoutSeconds     int    `yaml:"timeout_seconds"`
	PingTimeoutSeconds int    `yaml:"ping_timeout_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"`
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// PushConfig holds the VAPID keys for web push notifications.
type PushConfig struct {
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "./data"
	}
	if cfg.Data.ReloadIntervalSeconds <= 0 {
		cfg.Data.ReloadIntervalSeconds = 300
	}
	cfg.Data.ReloadInterval = time.Duration(cfg.Data.ReloadIntervalSeconds) * time.Second

	if cfg.NLP.URL == "" {
		cfg.NLP.URL = "http://localhost:11434/api/generate"
	}
	if cfg.NLP.Model == "" {
		cfg.NLP.Model = "phi3:mini"
	}
	if cfg.NLP.TimeoutSeconds <= 0 {
		cfg.NLP.TimeoutSeconds = 120
	}
	if cfg.NLP.PingTimeoutSeconds <= 0 {
		cfg.NLP.PingTimeoutSeconds = 3
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == "sqlite" {
		cfg.Database.DSN = "deskfinder.db"
	}

	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}

	if cfg.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 1")
		cfg.WorkerPool.Size = 1
	}

	return &cfg, nil
}

package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Upstream REST backend
	BackendURL string `mapstructure:"BACKEND_URL"`

	// Redis — job queues and (optionally) the snapshot store
	RedisURL string `mapstructure:"REDIS_URL"`

	// Snapshot store: "redis" | "sqlite"
	SnapshotBackend string `mapstructure:"SNAPSHOT_BACKEND"`
	SnapshotPath    string `mapstructure:"SNAPSHOT_PATH"`

	// Mirror cache capacity per entity type; 0 = unbounded
	CacheCapacity int `mapstructure:"CACHE_CAPACITY"`

	// SMTP — incidencia notifications
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WORKER_POOL_SIZE", 4)
	viper.SetDefault("BACKEND_URL", "http://localhost:8000/api")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("SNAPSHOT_BACKEND", "sqlite")
	viper.SetDefault("SNAPSHOT_PATH", "/tmp/kacum/snapshots.db")
	viper.SetDefault("CACHE_CAPACITY", 0)
	viper.SetDefault("SMTP_PORT", 587)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultAdminKey is used when ADMIN_KEY is not configured.
const DefaultAdminKey = "admin123"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	URL            string
	URLConfigured  bool
	Name           string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
}

type AdminConfig struct {
	Key string
}

type LogConfig struct {
	Level string
}

// Load builds the configuration from the environment. A .env file in the
// working directory, when present, is loaded first and never overrides
// variables that are already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8000)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "retail")
	v.SetDefault("DB_MAX_POOL_SIZE", 50)
	v.SetDefault("DB_CONNECT_TIMEOUT", "10s")
	v.SetDefault("ADMIN_KEY", DefaultAdminKey)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_READ_TIMEOUT", "10s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	v.SetDefault("SERVER_IDLE_TIMEOUT", "30s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	cfg := &Config{}
	durations := map[string]*time.Duration{
		"DB_CONNECT_TIMEOUT":   &cfg.Database.ConnectTimeout,
		"SERVER_READ_TIMEOUT":  &cfg.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT": &cfg.Server.WriteTimeout,
		"SERVER_IDLE_TIMEOUT":  &cfg.Server.IdleTimeout,
		"SHUTDOWN_TIMEOUT":     &cfg.Server.ShutdownTimeout,
	}

	for key, dst := range durations {
		d, err := time.ParseDuration(v.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", key, err)
		}
		*dst = d
	}

	_, urlConfigured := os.LookupEnv("DATABASE_URL")

	cfg.Server.Port = v.GetInt("PORT")
	cfg.Database.URL = v.GetString("DATABASE_URL")
	cfg.Database.URLConfigured = urlConfigured
	cfg.Database.Name = v.GetString("DATABASE_NAME")
	cfg.Database.MaxPoolSize = v.GetUint64("DB_MAX_POOL_SIZE")
	cfg.Admin.Key = v.GetString("ADMIN_KEY")
	cfg.Log.Level = v.GetString("LOG_LEVEL")

	if cfg.Server.Port <= 0 {
		return nil, fmt.Errorf("PORT must be a positive integer")
	}
	if cfg.Database.Name == "" {
		return nil, fmt.Errorf("DATABASE_NAME must not be empty")
	}

	return cfg, nil
}

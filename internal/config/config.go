// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends understood by app.OpenBackend.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config is the runtime configuration shared by the server and the CLI.
type Config struct {
	Port           int    `env:"PORT"            envDefault:"8080"`
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	DBPath         string `env:"DB_PATH"         envDefault:"./data/splitbill.db"`
	RedisAddr      string `env:"REDIS_ADDR"      envDefault:"localhost:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB"        envDefault:"0"`
	HistoryKey     string `env:"HISTORY_KEY"     envDefault:"logs"`
	Currency       string `env:"CURRENCY"        envDefault:"BRL"`
	LogLevel       string `env:"LOG_LEVEL"       envDefault:"info"`
}

// Load reads an optional .env file from the working directory and parses the
// environment into a Config. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse parses the environment into a Config without reading .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

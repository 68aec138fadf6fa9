package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseConnStr string
	SessionSecret   string
	AllowedOrigin   string
	Port            string
	SessionMaxAge   int
}

// Load reads the .env file, when present, and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		DatabaseConnStr: getenv("DATABASE_CONNECTION_STR"),
		SessionSecret:   getenv("SESSION_SECRET"),
		AllowedOrigin:   getenv("ALLOWED_ORIGIN"),
		Port:            getenv("PORT"),
		SessionMaxAge:   86400,
	}

	var missing []string
	if cfg.DatabaseConnStr == "" {
		missing = append(missing, "DATABASE_CONNECTION_STR")
	}
	if cfg.SessionSecret == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%s not set in .env file", strings.Join(missing, ", "))
	}

	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "http://localhost:3000"
	}
	if cfg.Port == "" {
		cfg.Port = "3001"
	}
	if raw := getenv("SESSION_MAX_AGE"); raw != "" {
		maxAge, err := strconv.Atoi(raw)
		if err != nil || maxAge <= 0 {
			return Config{}, fmt.Errorf("SESSION_MAX_AGE must be a positive number of seconds, got %q", raw)
		}
		cfg.SessionMaxAge = maxAge
	}

	return cfg, nil
}

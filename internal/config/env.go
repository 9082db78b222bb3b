package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file
const (
	EnvStorageBackend = "LIFETUNER_STORAGE_BACKEND"
	EnvPostgresDSN    = "LIFETUNER_POSTGRES_DSN"
	EnvTelegramToken  = "LIFETUNER_TELEGRAM_TOKEN"
	EnvTelegramChatID = "LIFETUNER_TELEGRAM_CHAT_ID"
	EnvDebug          = "LIFETUNER_DEBUG"
)

// LoadDotEnv loads variables from .env files into the process environment.
// Missing files are ignored; variables already set are not overridden.
func LoadDotEnv(files ...string) {
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}
	if len(files) == 0 {
		_ = godotenv.Load()
	}
}

// ApplyEnv overlays environment variables onto cfg
func ApplyEnv(cfg *Config) {
	cfg.Storage.Backend = strings.ToLower(getEnv(EnvStorageBackend, cfg.Storage.Backend))
	cfg.Storage.DSN = getEnv(EnvPostgresDSN, cfg.Storage.DSN)
	cfg.Telegram.Token = getEnv(EnvTelegramToken, cfg.Telegram.Token)

	if v := getEnv(EnvTelegramChatID, ""); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Telegram.ChatID = id
		}
	}
	if v := getEnv(EnvDebug, ""); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Debug = debug
		}
	}
}

// LoadWithEnv loads the config file (or defaults), then applies .env and
// environment overrides and validates the result
func LoadWithEnv(path string, envFiles ...string) (Config, error) {
	cfg, err := LoadOrDefault(path)
	if err != nil {
		return Config{}, err
	}

	LoadDotEnv(envFiles...)
	ApplyEnv(&cfg)
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultVal
}

package cmd

import (
	"os"
	"testing"

	"github.com/xolan/lifetuner/internal/config"
)

func TestShowConfig_Defaults(t *testing.T) {
	t.Setenv(config.EnvTelegramToken, "")
	env := setupTest(t)

	showConfig()
	env.assertOK(t)
	assertContains(t, env.stdout.String(),
		"Config file:     "+env.configPath,
		"No config file (using defaults)",
		"Window:          7 days",
		"Sleep rollover:  strict",
		"Energy progress: threshold",
		"Storage:         jsonl",
		"Reminders:       disabled",
		"Telegram:        not configured",
		"lifetuner config init",
	)
}

func TestInitConfig(t *testing.T) {
	t.Setenv(config.EnvTelegramToken, "")
	env := setupTest(t)

	initConfig()
	env.assertOK(t)
	assertContains(t, env.stdout.String(), "Created "+env.configPath)
	if _, err := os.Stat(env.configPath); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	env.stdout.Reset()
	showConfig()
	env.assertOK(t)
	assertContains(t, env.stdout.String(), "File exists (using custom configuration)")

	initConfig()
	env.assertFailed(t, "Failed to create config file")
}

func TestShowConfig_InvalidFile(t *testing.T) {
	env := setupTest(t)
	if err := os.WriteFile(env.configPath, []byte("window_days = [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	showConfig()
	env.assertFailed(t, "Failed to load configuration")
	assertContains(t, env.stderr.String(), "valid TOML")
}

func TestTelegramStatus(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TelegramConfig
		want string
	}{
		{"configured", config.TelegramConfig{Token: "abc", ChatID: 42}, "chat 42"},
		{"no token", config.TelegramConfig{ChatID: 42}, "not configured (missing " + config.EnvTelegramToken + ")"},
		{"no chat", config.TelegramConfig{Token: "abc"}, "not configured (missing chat_id)"},
		{"nothing", config.TelegramConfig{}, "not configured (missing " + config.EnvTelegramToken + ", chat_id)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := telegramStatus(tt.cfg); got != tt.want {
				t.Errorf("telegramStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

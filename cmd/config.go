package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/lifetuner/internal/config"
	"github.com/xolan/lifetuner/internal/service"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for lifetuner.

Shows the configuration file location, whether it exists, and all current settings.
Values come from the config file, then .env and LIFETUNER_* environment variables.

By default, lifetuner works without any configuration file.

Configuration file location:
  ~/.config/lifetuner/config.toml          Linux
  ~/Library/Application Support/lifetuner  macOS
  %APPDATA%\lifetuner\config.toml          Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd)
}

func configPathOrFail() (string, bool) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		fail("Failed to determine config file location", err, "Check that your home directory is accessible")
		return "", false
	}
	return configPath, true
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, ok := configPathOrFail()
	if !ok {
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		fail("Failed to load configuration", err,
			fmt.Sprintf("Check that your config file is valid TOML format: %s", configPath),
			"Valid sleep_rollover values: strict, inclusive; energy_progress: threshold, average",
			"Valid timezone examples: Local, America/New_York, Europe/London, Asia/Tokyo")
		return
	}

	printHeader("Configuration for lifetuner")
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}

	printSection("Current Settings")
	_, _ = fmt.Fprintf(deps.Stdout, "Window:          %d days\n", cfg.WindowDays)
	_, _ = fmt.Fprintf(deps.Stdout, "Timezone:        %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "Sleep rollover:  %s\n", cfg.SleepRollover)
	_, _ = fmt.Fprintf(deps.Stdout, "Energy progress: %s\n", cfg.EnergyProgress)
	if cfg.Theme == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Theme:           (default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Theme:           %s\n", cfg.Theme)
	}

	storageOpts := cfg.StorageOptions(configPath)
	_, _ = fmt.Fprintf(deps.Stdout, "Storage:         %s\n", storageOpts.Backend)
	if storageOpts.DSN != "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Storage DSN:     (set)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Storage path:    %s\n", storageOpts.Path)
	}

	reminders := "disabled"
	if cfg.Reminders.Enabled {
		reminders = fmt.Sprintf("%s and %s", cfg.Reminders.Morning, cfg.Reminders.Evening)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Reminders:       %s\n", reminders)
	_, _ = fmt.Fprintf(deps.Stdout, "Telegram:        %s\n", telegramStatus(cfg.Telegram))
	_, _ = fmt.Fprintf(deps.Stdout, "Debug logging:   %t\n", cfg.Log.Debug)
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'lifetuner config init' to create a commented config file.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

func telegramStatus(t config.TelegramConfig) string {
	var missing []string
	if t.Token == "" {
		missing = append(missing, config.EnvTelegramToken)
	}
	if t.ChatID == 0 {
		missing = append(missing, "chat_id")
	}
	if len(missing) == 0 {
		return fmt.Sprintf("chat %d", t.ChatID)
	}
	return "not configured (missing " + strings.Join(missing, ", ") + ")"
}

func initConfig() {
	configPath, ok := configPathOrFail()
	if !ok {
		return
	}

	svc := service.NewConfigService(configPath, config.DefaultConfig())
	if err := svc.Init(); err != nil {
		fail("Failed to create config file", err)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Created %s\n", configPath)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xolan/lifetuner/cmd"
	"github.com/xolan/lifetuner/internal/config"
	"github.com/xolan/lifetuner/internal/logger"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run sets up logging and executes the CLI, returning the process exit code
func run() int {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: Failed to determine config file location\nDetails: %v\n", err)
		return 1
	}

	// An invalid config is reported by the command that needs it; logging
	// falls back to defaults.
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	if err := logger.Init(logger.Config{Debug: cfg.Log.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer func() { _ = logger.Close() }()
	logger.Debug("starting", "version", version, "config", configPath)

	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

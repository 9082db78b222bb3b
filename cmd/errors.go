package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/xolan/lifetuner/internal/logger"
	"github.com/xolan/lifetuner/internal/service"
)

// fail prints an error block to stderr, logs it and exits with status 1
func fail(msg string, err error, hints ...string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		logger.Error(msg, "error", err)
	} else {
		logger.Error(msg)
	}
	for _, h := range hints {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", h)
	}
	deps.Exit(1)
}

// openServices returns the application services, reporting failures
func openServices() (*service.Services, bool) {
	svcs, err := deps.Services(context.Background())
	if err != nil {
		fail("Failed to open lifetuner data", err,
			"Run 'lifetuner config' to check the config file and storage backend")
		return nil, false
	}
	return svcs, true
}

func closeServices(svcs *service.Services) {
	if err := svcs.Close(); err != nil {
		logger.Warn("failed to close storage", "error", err)
	}
}

// promptConfirmation asks question and returns true if the user answers 'y' or 'Y'
func promptConfirmation(question string) bool {
	_, _ = fmt.Fprintf(deps.Stdout, "%s [y/N]: ", question)

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}

// pluralize returns word with an "s" appended unless count is 1
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

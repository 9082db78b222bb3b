package main

import (
	"errors"
	"os"
	"testing"

	"github.com/xolan/lifetuner/internal/osutil"
)

type mockPathProvider struct {
	UserConfigDirFn func() (string, error)
}

func (m *mockPathProvider) UserConfigDir() (string, error) {
	return m.UserConfigDirFn()
}

func (m *mockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// useTempConfigDir points the app directory at a temp dir for the test
func useTempConfigDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	osutil.SetProvider(&mockPathProvider{
		UserConfigDirFn: func() (string, error) { return dir, nil },
	})
	t.Cleanup(osutil.ResetProvider)
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	original := os.Args
	os.Args = append([]string{"lifetuner"}, args...)
	t.Cleanup(func() { os.Args = original })
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		// rootCmd keeps parsed flag values between runs, so error cases go first
		{"unknown flag", []string{"--unknownflag"}, 1},
		{"unknown command", []string{"frobnicate"}, 1},
		{"help", []string{"--help"}, 0},
		{"version", []string{"--version"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTempConfigDir(t)
			withArgs(t, tt.args...)

			if code := run(); code != tt.want {
				t.Errorf("run() = %d, want %d", code, tt.want)
			}
		})
	}
}

func TestRun_ConfigPathFailure(t *testing.T) {
	osutil.SetProvider(&mockPathProvider{
		UserConfigDirFn: func() (string, error) {
			return "", errors.New("permission denied")
		},
	})
	defer osutil.ResetProvider()
	withArgs(t, "--version")

	if code := run(); code != 1 {
		t.Errorf("expected exit code 1 when the config dir is unavailable, got %d", code)
	}
}

func TestMain_CallsExitWithRunResult(t *testing.T) {
	useTempConfigDir(t)
	withArgs(t, "--version")

	originalExit := exitFunc
	defer func() { exitFunc = originalExit }()

	capturedCode := -1
	exitFunc = func(code int) {
		capturedCode = code
	}

	main()

	if capturedCode != 0 {
		t.Errorf("expected exit code 0, got %d", capturedCode)
	}
}

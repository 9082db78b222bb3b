package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/xolan/lifetuner/internal/config"
	"github.com/xolan/lifetuner/internal/service"
	"github.com/xolan/lifetuner/internal/storage"
)

// fixedNow is 2024-01-10 09:30 UTC
var fixedNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

// testEnv captures command output and exit codes over a temp JSONL store
type testEnv struct {
	stdout      *bytes.Buffer
	stderr      *bytes.Buffer
	stdin       *strings.Reader
	exitCode    int
	exited      bool
	cfg         config.Config
	entriesPath string
	configPath  string
	tuiRuns     int
	tuiErr      error
	formErr     error
	now         time.Time
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		stdout:      &bytes.Buffer{},
		stderr:      &bytes.Buffer{},
		stdin:       strings.NewReader(""),
		cfg:         config.DefaultConfig(),
		entriesPath: filepath.Join(dir, storage.EntriesFile),
		configPath:  filepath.Join(dir, config.ConfigFile),
		formErr:     errors.New("no terminal"),
		now:         fixedNow,
	}
	env.cfg.Timezone = "UTC"

	SetDeps(&Deps{
		Stdout: env.stdout,
		Stderr: env.stderr,
		Stdin:  env.stdin,
		Exit: func(code int) {
			env.exitCode = code
			env.exited = true
		},
		Services: func(ctx context.Context) (*service.Services, error) {
			store, err := storage.Open(ctx, storage.Options{Backend: storage.BackendJSONL, Path: env.entriesPath})
			if err != nil {
				return nil, err
			}
			return service.NewServicesWithStore(store, env.configPath, env.cfg, func() time.Time { return env.now }), nil
		},
		ConfigPath: func() (string, error) { return env.configPath, nil },
		RunForm:    func(*huh.Form) error { return env.formErr },
		RunTUI: func(*service.Services) error {
			env.tuiRuns++
			return env.tuiErr
		},
	})
	t.Cleanup(ResetDeps)
	return env
}

// input replaces stdin for prompts
func (env *testEnv) input(s string) {
	env.stdin = strings.NewReader(s)
	deps.Stdin = env.stdin
}

func (env *testEnv) assertOK(t *testing.T) {
	t.Helper()
	if env.exited {
		t.Fatalf("unexpected exit %d, stderr:\n%s", env.exitCode, env.stderr.String())
	}
}

func (env *testEnv) assertFailed(t *testing.T, wantErr string) {
	t.Helper()
	if !env.exited || env.exitCode != 1 {
		t.Fatalf("expected exit 1, got exited=%v code=%d", env.exited, env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), wantErr) {
		t.Errorf("expected stderr to contain %q, got:\n%s", wantErr, env.stderr.String())
	}
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func intPtr(v int) *int { return &v }

// logEntry writes an entry through the service layer
func (env *testEnv) logEntry(t *testing.T, in service.EntryInput) {
	t.Helper()
	svcs, err := deps.Services(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = svcs.Close() }()
	if _, err := svcs.Entry.Log(context.Background(), in); err != nil {
		t.Fatalf("failed to log %s: %v", in.Date, err)
	}
}

func (env *testEnv) logDay(t *testing.T, date string, mood, energy int, activities string) {
	t.Helper()
	env.logEntry(t, service.EntryInput{
		Date:       date,
		BedTime:    "23:00",
		WakeTime:   "07:00",
		Mood:       intPtr(mood),
		Energy:     intPtr(energy),
		Activities: activities,
	})
}

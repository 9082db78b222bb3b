package service

import (
	"context"
	"time"

	"github.com/xolan/lifetuner/internal/config"
	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/logger"
	"github.com/xolan/lifetuner/internal/storage"
	"github.com/xolan/lifetuner/internal/timer"
	"github.com/xolan/lifetuner/internal/timeutil"
)

// Clock returns the current time
type Clock func() time.Time

// Services holds all service instances used by the application
type Services struct {
	Entry  *EntryService
	Goal   *GoalService
	Stats  *StatsService
	Data   *DataService
	Coach  *CoachService
	Sleep  *SleepService
	Config *ConfigService

	store storage.Store
}

// NewServices loads the config (with .env and environment overrides) and opens
// the configured store
func NewServices(ctx context.Context) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, cfg.StorageOptions(configPath))
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", "backend", cfg.Storage.Backend)

	return NewServicesWithStore(store, configPath, cfg, time.Now), nil
}

// NewServicesWithStore creates a Services instance on an open store (useful for testing)
func NewServicesWithStore(store storage.Store, configPath string, cfg config.Config, now Clock) *Services {
	if now == nil {
		now = time.Now
	}
	b := base{store: store, config: cfg, now: now}
	entries := &EntryService{base: b}

	return &Services{
		Entry:  entries,
		Goal:   &GoalService{base: b},
		Stats:  &StatsService{base: b},
		Data:   &DataService{base: b},
		Coach:  &CoachService{base: b},
		Sleep:  &SleepService{base: b, path: timer.SessionPath(configPath), entry: entries},
		Config: NewConfigService(configPath, cfg),
		store:  store,
	}
}

// ApplyConfig makes cfg current for every service.
// ConfigService.Update persists it; this only refreshes the in-memory copies.
func (s *Services) ApplyConfig(cfg config.Config) {
	s.Entry.config = cfg
	s.Goal.config = cfg
	s.Stats.config = cfg
	s.Data.config = cfg
	s.Coach.config = cfg
	s.Sleep.config = cfg
}

// Store returns the underlying store
func (s *Services) Store() storage.Store {
	return s.store
}

// Close releases the store
func (s *Services) Close() error {
	return s.store.Close()
}

// base is shared by the services that read the store
type base struct {
	store  storage.Store
	config config.Config
	now    Clock
}

func (b base) location() *time.Location {
	loc, err := b.config.Location()
	if err != nil {
		return time.Local
	}
	return loc
}

// today is the current date in the configured timezone
func (b base) today() time.Time {
	return timeutil.Today(b.now(), b.location())
}

func (b base) load(ctx context.Context) (entry.Log, error) {
	return b.store.Load(ctx)
}

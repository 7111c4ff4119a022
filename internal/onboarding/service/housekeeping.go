package service

import (
	"log/slog"
	"time"
)

// HousekeepingService periodically reaps abandoned in-memory onboarding
// sessions so the registry does not grow without bound.
type HousekeepingService struct {
	Sessions *SessionRegistry
	Logger   *slog.Logger
	Interval time.Duration
	MaxIdle  time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. Interval defaults
// to 5 minutes and MaxIdle to 30 minutes when zero or negative.
func NewHousekeepingService(
	sessions *SessionRegistry,
	logger *slog.Logger,
	interval, maxIdle time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if maxIdle <= 0 {
		maxIdle = 30 * time.Minute
	}

	return &HousekeepingService{
		Sessions: sessions,
		Logger:   logger,
		Interval: interval,
		MaxIdle:  maxIdle,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop() to shut
// the worker down gracefully.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		"interval", s.Interval,
		"max_idle", s.MaxIdle,
	)
}

// Stop shuts down the background worker. Blocks until any in-progress
// purge has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purge()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) purge() {
	purged := s.Sessions.PurgeIdle(s.MaxIdle)
	if purged > 0 {
		s.Logger.Info("purged idle onboarding sessions",
			"purged", purged,
			"remaining", s.Sessions.Count(),
		)
	}
}

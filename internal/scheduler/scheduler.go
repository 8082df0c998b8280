package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"realestate-listings/internal/config"
	"realestate-listings/internal/logger"
	"realestate-listings/internal/snapshot"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 5 * time.Minute

// ReindexFunc re-pushes the catalog to the search mirror and returns the count.
type ReindexFunc func(ctx context.Context) (int, error)

// Scheduler runs the daily catalog maintenance job.
type Scheduler struct {
	cron     *cron.Cron
	snapshot *snapshot.Service
	reindex  ReindexFunc
	config   config.SchedulerConfig

	mu        sync.Mutex
	isRunning bool
	lastRun   time.Time
	lastErr   error
}

// NewScheduler creates a new scheduler. reindex may be nil when no search
// mirror is configured.
func NewScheduler(cfg config.SchedulerConfig, snapshots *snapshot.Service, reindex ReindexFunc) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		snapshot: snapshots,
		reindex:  reindex,
		config:   cfg,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		logger.Log.Info("Scheduler: Daily run is disabled in configuration")
		return nil
	}

	cronSpec := parseDailyRunTime(s.config.DailyRunTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		logger.Log.Info("Scheduler: Starting daily job...")
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if err := s.RunNow(ctx); err != nil {
			logger.Log.Errorf("Scheduler: Daily job failed: %v", err)
		} else {
			logger.Log.Info("Scheduler: Daily job completed successfully")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.mu.Lock()
	s.isRunning = true
	s.mu.Unlock()
	logger.Log.Infof("Scheduler: Started with daily run at %s (cron: %s)", s.config.DailyRunTime, cronSpec)

	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	running := s.isRunning
	s.isRunning = false
	s.mu.Unlock()

	if running {
		<-s.cron.Stop().Done()
		logger.Log.Info("Scheduler: Stopped")
	}
}

// RunNow captures a snapshot and, when configured, reindexes the search mirror.
func (s *Scheduler) RunNow(ctx context.Context) error {
	var errs []error

	snap, err := s.snapshot.Capture(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("snapshot: %w", err))
	} else {
		logger.Log.Infof("Scheduler: Snapshot captured (%d listings)", snap.Total)
	}

	if s.reindex != nil {
		n, err := s.reindex(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("reindex: %w", err))
		} else {
			logger.Log.Infof("Scheduler: Reindexed %d listings", n)
		}
	}

	err = errors.Join(errs...)
	s.mu.Lock()
	s.lastRun = time.Now()
	s.lastErr = err
	s.mu.Unlock()
	return err
}

// Status is reported by the admin stats endpoint.
type Status struct {
	Enabled   bool      `json:"enabled"`
	Running   bool      `json:"running"`
	DailyRun  string    `json:"daily_run_time"`
	LastRun   time.Time `json:"last_run,omitempty"`
	LastError string    `json:"last_error,omitempty"`
}

func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Enabled:  s.config.Enabled,
		Running:  s.isRunning,
		DailyRun: s.config.DailyRunTime,
		LastRun:  s.lastRun,
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}

// parseDailyRunTime converts HH:MM format to cron specification
// Example: "02:00" -> "0 2 * * *" (run at 2:00 AM every day)
func parseDailyRunTime(timeStr string) string {
	var hour, minute int
	n, _ := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute)
	if n == 2 && hour >= 0 && hour < 24 && minute >= 0 && minute < 60 {
		return fmt.Sprintf("%d %d * * *", minute, hour)
	}

	// Default to 2:00 AM if parsing fails
	logger.Log.Warnf("Scheduler: Failed to parse time '%s', using default 02:00", timeStr)
	return "0 2 * * *"
}

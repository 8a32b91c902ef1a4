package scheduler

import (
	"fmt"
	"sync"
	"time"

	"tripx/config"
	"tripx/logger"
	"tripx/services"
)

// validateHourMinute clamps out-of-range schedule values to midnight.
func validateHourMinute(hour, minute int) (int, int) {
	if hour < 0 || hour > 23 {
		logger.Warn("Invalid refresh hour, using 0", "hour", hour)
		hour = 0
	}
	if minute < 0 || minute > 59 {
		logger.Warn("Invalid refresh minute, using 0", "minute", minute)
		minute = 0
	}
	return hour, minute
}

// getNextTimePoint returns the next occurrence of hour:minute after now.
func getNextTimePoint(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// TaskType identifies a scheduled task.
type TaskType int

const (
	TaskCatalogRefresh TaskType = iota
)

// TaskStatus tracks one task's schedule.
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// Scheduler runs the periodic catalog refresh: daily at a configured
// time point, or on a short interval in debug mode.
type Scheduler struct {
	cfg   *config.Config
	tasks map[TaskType]*TaskStatus
	mutex sync.Mutex
}

// NewScheduler builds a scheduler for the given config.
func NewScheduler(cfg *config.Config) *Scheduler {
	return &Scheduler{
		cfg:   cfg,
		tasks: make(map[TaskType]*TaskStatus),
	}
}

// Start launches the scheduler loop in the background.
func Start(cfg *config.Config) {
	scheduler := NewScheduler(cfg)
	scheduler.initTasks()
	go scheduler.run()

	checkInterval := cfg.Refresh.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60
	}
	logger.Info("Scheduler started", "check_interval_sec", checkInterval)
}

func (s *Scheduler) initTasks() {
	now := time.Now()

	if s.cfg.Debug.Enabled {
		freqSeconds := s.cfg.Debug.RefreshFreqSec
		if freqSeconds <= 0 {
			freqSeconds = 300
		}
		refreshInterval := time.Duration(freqSeconds) * time.Second

		s.tasks[TaskCatalogRefresh] = &TaskStatus{
			LastRun:     now.Add(-refreshInterval),
			NextRun:     now.Add(refreshInterval),
			Description: fmt.Sprintf("catalog refresh (debug mode: every %ds)", freqSeconds),
		}
		logger.Info("Debug mode enabled", "refresh_freq_sec", freqSeconds)
	} else {
		hour, minute := validateHourMinute(s.cfg.Refresh.Hour, s.cfg.Refresh.Minute)
		nextRun := getNextTimePoint(now, hour, minute)

		s.tasks[TaskCatalogRefresh] = &TaskStatus{
			LastRun:     nextRun.Add(-24 * time.Hour),
			NextRun:     nextRun,
			Description: fmt.Sprintf("catalog refresh (%02d:%02d)", hour, minute),
		}
		logger.Info("Catalog refresh scheduled", "time", fmt.Sprintf("%02d:%02d", hour, minute))
	}
}

func (s *Scheduler) run() {
	checkInterval := s.cfg.Refresh.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60
	}
	ticker := time.NewTicker(time.Duration(checkInterval) * time.Second)
	defer ticker.Stop()

	for now := range ticker.C {
		s.checkTasks(now)
	}
}

func (s *Scheduler) checkTasks(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for taskType, status := range s.tasks {
		if status.IsRunning {
			continue
		}
		if status.NextRun.IsZero() {
			continue
		}
		if now.After(status.NextRun) || now.Equal(status.NextRun) {
			status.IsRunning = true
			go s.runTask(taskType, now)
		}
	}
}

func (s *Scheduler) runTask(taskType TaskType, now time.Time) {
	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		status := s.tasks[taskType]
		status.IsRunning = false
		status.LastRun = now

		switch taskType {
		case TaskCatalogRefresh:
			if s.cfg.Debug.Enabled {
				freqSeconds := s.cfg.Debug.RefreshFreqSec
				if freqSeconds <= 0 {
					freqSeconds = 300
				}
				status.NextRun = now.Add(time.Duration(freqSeconds) * time.Second)
			} else {
				hour, minute := validateHourMinute(s.cfg.Refresh.Hour, s.cfg.Refresh.Minute)
				status.NextRun = getNextTimePoint(now, hour, minute)
			}
		}

		logger.Info("Task finished", "task", status.Description, "next_run", status.NextRun.Format("2006-01-02 15:04:05"))
	}()

	switch taskType {
	case TaskCatalogRefresh:
		logger.Info("Running scheduled catalog refresh")
		services.RefreshCatalog(s.cfg)
	}
}

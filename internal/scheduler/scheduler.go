package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"video-rental-statements/internal/jobs"
	"video-rental-statements/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a scheduler with the statement run registered
func NewScheduler(jobRunner *jobs.JobRunner) (*Scheduler, error) {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) registerJobs() error {
	schedule := s.jobs.Config().Scheduler.RunStatements
	if _, err := s.cron.AddFunc(schedule, s.jobs.ScheduledRunStatements); err != nil {
		logger.Error("Failed to register RunStatements job", "error", err)
		return fmt.Errorf("register statement run %q: %w", schedule, err)
	}
	logger.Info("Registered job", "job", "RunStatements", "schedule", schedule)
	return nil
}

// Entries returns the number of registered jobs
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// Start begins executing scheduled jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started")
}

// Stop halts the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	logger.Info("Scheduler stopped")
}

package jobs

import (
	"io"
	"sync"

	"video-rental-statements/internal/config"
	"video-rental-statements/internal/domain"
	"video-rental-statements/internal/logger"
	"video-rental-statements/internal/service"
)

// CustomerSource supplies the customers a statement run covers.
type CustomerSource interface {
	Customers() []*domain.Customer
}

// JobRunner coordinates statement runs
type JobRunner struct {
	source     CustomerSource
	statements service.StatementService
	config     *config.Config

	mu  sync.Mutex
	out io.Writer
}

// NewJobRunner creates a new job runner writing rendered statements to out
func NewJobRunner(source CustomerSource, statements service.StatementService, cfg *config.Config, out io.Writer) *JobRunner {
	if cfg == nil {
		cfg = config.Default()
	}
	return &JobRunner{
		source:     source,
		statements: statements,
		config:     cfg,
		out:        out,
	}
}

// Config returns the configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"video-rental-statements/internal/domain"
	"video-rental-statements/internal/logger"
)

// RunReport summarises one statement run
type RunReport struct {
	RunID       string
	Format      domain.StatementFormat
	Customers   int
	TotalCharge domain.Amount
	TotalPoints int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// RunStatements renders a statement for every customer of the source and
// writes them, separated by a blank line, to the runner's output.
func (jr *JobRunner) RunStatements(ctx context.Context) (*RunReport, error) {
	report := &RunReport{
		RunID:       uuid.NewString(),
		Format:      jr.config.StatementFormat(),
		TotalCharge: domain.IntAmount(0),
		StartedAt:   time.Now().UTC(),
	}
	log := logger.WithRun(report.RunID)

	customers := jr.source.Customers()
	log.Info("Rendering statements", "customers", len(customers), "format", report.Format)

	results, err := jr.statements.RenderBatch(ctx, customers, report.Format)
	if err != nil {
		log.Error("Failed to render statements", "error", err)
		return nil, fmt.Errorf("statement run %s: %w", report.RunID, err)
	}

	jr.mu.Lock()
	defer jr.mu.Unlock()
	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprint(jr.out, "\n\n"); err != nil {
				return nil, fmt.Errorf("write statement run %s: %w", report.RunID, err)
			}
		}
		if _, err := fmt.Fprint(jr.out, res.Statement); err != nil {
			log.Error("Failed to write statement", "customer", res.Customer, "error", err)
			return nil, fmt.Errorf("write statement for %q: %w", res.Customer, err)
		}
		report.Customers++
		report.TotalCharge = report.TotalCharge.Add(res.TotalCharge)
		report.TotalPoints += res.Points
	}
	if len(results) > 0 {
		if _, err := fmt.Fprintln(jr.out); err != nil {
			return nil, fmt.Errorf("write statement run %s: %w", report.RunID, err)
		}
	}

	report.FinishedAt = time.Now().UTC()
	log.Info("Statement run completed",
		"customers", report.Customers,
		"total_charge", report.TotalCharge.String(),
		"total_points", report.TotalPoints,
	)
	return report, nil
}

// ScheduledRunStatements is the cron entry point for RunStatements
func (jr *JobRunner) ScheduledRunStatements() {
	jr.runWithRecovery("RunStatements", func() {
		if _, err := jr.RunStatements(context.Background()); err != nil {
			logger.Error("Statement run failed", "error", err)
		}
	})
}

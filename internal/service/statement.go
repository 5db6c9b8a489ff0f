package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"video-rental-statements/internal/domain"
	"video-rental-statements/internal/logger"
)

var ErrNilCustomer = errors.New("customer is required")

type statementService struct {
	workers int
}

// NewStatementService returns a service rendering at most workers statements
// at a time in batch mode.
func NewStatementService(workers int) StatementService {
	if workers < 1 {
		workers = 1
	}
	return &statementService{workers: workers}
}

func (s *statementService) Render(ctx context.Context, customer *domain.Customer, format domain.StatementFormat) (*StatementResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNilCustomer
	}

	out, err := customer.StatementIn(format)
	if err != nil {
		return nil, fmt.Errorf("render statement for %q: %w", customer.Name(), err)
	}

	return &StatementResult{
		Customer:    customer.Name(),
		Format:      format,
		Statement:   out,
		TotalCharge: customer.TotalCharge(),
		Points:      customer.TotalFrequentRenterPoints(),
	}, nil
}

// RenderBatch renders every customer concurrently. Results keep the order of
// customers. The first failure cancels the remaining work.
func (s *statementService) RenderBatch(ctx context.Context, customers []*domain.Customer, format domain.StatementFormat) ([]StatementResult, error) {
	logger.EnterMethod("statementService.RenderBatch", "customers", len(customers), "format", format)

	results := make([]StatementResult, len(customers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, customer := range customers {
		i, customer := i, customer
		g.Go(func() error {
			res, err := s.Render(gctx, customer, format)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.ExitMethodWithError("statementService.RenderBatch", err)
		return nil, err
	}

	logger.ExitMethod("statementService.RenderBatch", "rendered", len(results))
	return results, nil
}

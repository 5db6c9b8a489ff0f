package service

import (
	"context"

	"video-rental-statements/internal/domain"
)

type StatementService interface {
	Render(ctx context.Context, customer *domain.Customer, format domain.StatementFormat) (*StatementResult, error)
	RenderBatch(ctx context.Context, customers []*domain.Customer, format domain.StatementFormat) ([]StatementResult, error)
}

// StatementResult is a rendered statement together with the figures it reports.
type StatementResult struct {
	Customer    string
	Format      domain.StatementFormat
	Statement   string
	TotalCharge domain.Amount
	Points      int
}

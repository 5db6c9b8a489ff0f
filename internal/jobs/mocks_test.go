package jobs

import (
	"context"

	"github.com/stretchr/testify/mock"

	"video-rental-statements/internal/domain"
	"video-rental-statements/internal/service"
)

// MockCustomerSource
type MockCustomerSource struct {
	mock.Mock
}

func (m *MockCustomerSource) Customers() []*domain.Customer {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.Customer)
}

// MockStatementService
type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) Render(ctx context.Context, customer *domain.Customer, format domain.StatementFormat) (*service.StatementResult, error) {
	args := m.Called(ctx, customer, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatementResult), args.Error(1)
}

func (m *MockStatementService) RenderBatch(ctx context.Context, customers []*domain.Customer, format domain.StatementFormat) ([]service.StatementResult, error) {
	args := m.Called(ctx, customers, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.StatementResult), args.Error(1)
}

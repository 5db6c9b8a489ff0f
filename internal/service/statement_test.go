package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-rental-statements/internal/catalog"
	"video-rental-statements/internal/domain"
)

func TestStatementService_Render(t *testing.T) {
	svc := NewStatementService(2)
	zak, _ := catalog.Sample().Get("Zak")

	t.Run("Text", func(t *testing.T) {
		res, err := svc.Render(context.Background(), zak, domain.StatementFormatText)
		require.NoError(t, err)
		assert.Equal(t, "Zak", res.Customer)
		assert.Equal(t, zak.Statement(), res.Statement)
		assert.Equal(t, "417.5", res.TotalCharge.String())
		assert.Equal(t, 4, res.Points)
	})

	t.Run("HTML", func(t *testing.T) {
		res, err := svc.Render(context.Background(), zak, domain.StatementFormatHTML)
		require.NoError(t, err)
		assert.Equal(t, domain.StatementFormatHTML, res.Format)
		assert.Contains(t, res.Statement, "<p>You owe <em>417.5</em></p>")
	})

	t.Run("Nil customer", func(t *testing.T) {
		_, err := svc.Render(context.Background(), nil, domain.StatementFormatText)
		assert.ErrorIs(t, err, ErrNilCustomer)
	})

	t.Run("Unknown format", func(t *testing.T) {
		_, err := svc.Render(context.Background(), zak, domain.StatementFormat("pdf"))
		assert.ErrorIs(t, err, domain.ErrUnknownFormat)
		assert.Contains(t, err.Error(), `"Zak"`)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := svc.Render(ctx, zak, domain.StatementFormatText)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStatementService_RenderBatch(t *testing.T) {
	t.Run("Keeps input order", func(t *testing.T) {
		customers := catalog.Sample().Customers()
		results, err := NewStatementService(3).RenderBatch(context.Background(), customers, domain.StatementFormatText)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "Zak", results[0].Customer)
		assert.Equal(t, "Tom", results[1].Customer)
		assert.Equal(t, "Amy", results[2].Customer)
		assert.Equal(t, "8.0", results[2].TotalCharge.String())
	})

	t.Run("Many customers with a single worker", func(t *testing.T) {
		movie := domain.NewMovie("Avatar", domain.NewRelease)
		var customers []*domain.Customer
		for i := 0; i < 50; i++ {
			c := domain.NewCustomer(fmt.Sprintf("c%02d", i))
			c.AddRental(domain.NewRental(movie, i))
			customers = append(customers, c)
		}

		results, err := NewStatementService(0).RenderBatch(context.Background(), customers, domain.StatementFormatText)
		require.NoError(t, err)
		for i, res := range results {
			assert.Equal(t, customers[i].Name(), res.Customer)
			assert.Equal(t, fmt.Sprint(i*3), res.TotalCharge.String())
		}
	})

	t.Run("Empty batch", func(t *testing.T) {
		results, err := NewStatementService(2).RenderBatch(context.Background(), nil, domain.StatementFormatHTML)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Failure aborts the batch", func(t *testing.T) {
		customers := []*domain.Customer{domain.NewCustomer("a"), nil}
		results, err := NewStatementService(2).RenderBatch(context.Background(), customers, domain.StatementFormatText)
		assert.ErrorIs(t, err, ErrNilCustomer)
		assert.Nil(t, results)
	})
}

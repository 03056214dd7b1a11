package contract_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrwalden/clientdesk/internal/contract"
	"github.com/jrwalden/clientdesk/internal/contract/store"
	"github.com/jrwalden/clientdesk/internal/filter"
)

func TestService_CreateDefaultsToDraft(t *testing.T) {
	svc := contract.NewService(store.New())

	c, err := svc.Create(context.Background(), contract.CreateParams{
		ClientID:   uuid.New(),
		ClientName: "TechCorp Solutions",
		Title:      "Annual Retainer",
		Value:      decimal.NewFromInt(50000),
	})
	require.NoError(t, err)
	assert.Equal(t, contract.StatusDraft, c.Status)
	assert.NotEqual(t, uuid.Nil, c.ID)
}

func TestService_Create_Validation(t *testing.T) {
	svc := contract.NewService(store.New())

	_, err := svc.Create(context.Background(), contract.CreateParams{Title: "  "})
	assert.ErrorIs(t, err, contract.ErrTitleRequired)

	_, err = svc.Create(context.Background(), contract.CreateParams{
		Title:  "Bad status",
		Status: contract.Status("Cancelled"),
	})
	assert.ErrorIs(t, err, contract.ErrInvalidStatus)
}

func TestService_Update_Validation(t *testing.T) {
	svc := contract.NewService(store.New())
	ctx := context.Background()

	c, err := svc.Create(ctx, contract.CreateParams{Title: "Annual Retainer"})
	require.NoError(t, err)

	c.Status = contract.Status("Cancelled")
	assert.ErrorIs(t, svc.Update(ctx, c), contract.ErrInvalidStatus)

	c.Status = contract.StatusActive
	c.Title = "  "
	assert.ErrorIs(t, svc.Update(ctx, c), contract.ErrTitleRequired)

	c.Title = "Annual Retainer"
	assert.NoError(t, svc.Update(ctx, c))
}

func TestService_DeleteIdempotent(t *testing.T) {
	svc := contract.NewService(store.New())
	ctx := context.Background()

	c, err := svc.Create(ctx, contract.CreateParams{Title: "Short-lived"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, c.ID))
	require.NoError(t, svc.Delete(ctx, c.ID))

	_, err = svc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestFilter(t *testing.T) {
	contracts := []*contract.Contract{
		{Title: "Annual Retainer", ClientName: "TechCorp Solutions", Status: contract.StatusActive, Value: decimal.NewFromInt(50000), SignedDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{Title: "SEO Engagement", ClientName: "Digital Marketing Pro", Status: contract.StatusDraft, Value: decimal.Zero},
		{Title: "Legacy Support", ClientName: "StartupXYZ", Status: contract.StatusExpired, Value: decimal.NewFromInt(12000), SignedDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := contract.Filter(contracts, contract.ListFilter{Status: "Active"})
	require.Len(t, got, 1)
	assert.Equal(t, "Annual Retainer", got[0].Title)

	minValue := decimal.NewFromInt(10000)
	got = contract.Filter(contracts, contract.ListFilter{MinValue: &minValue, SortBy: "value", SortOrder: filter.Asc})
	require.Len(t, got, 2)
	assert.Equal(t, "Legacy Support", got[0].Title)
	assert.Equal(t, "Annual Retainer", got[1].Title)

	// Neutral filter is the identity.
	got = contract.Filter(contracts, contract.ListFilter{})
	require.Len(t, got, 3)
	for i := range contracts {
		assert.Same(t, contracts[i], got[i])
	}
}

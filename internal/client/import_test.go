package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrwalden/clientdesk/internal/client"
	"github.com/jrwalden/clientdesk/internal/client/store"
)

func TestService_ImportBatch(t *testing.T) {
	svc := client.NewService(store.New())
	ctx := context.Background()

	_, err := svc.Create(ctx, client.CreateParams{Name: "Acme Corp", Email: "billing@acme.com"})
	require.NoError(t, err)

	result, err := svc.ImportBatch(ctx, []client.CreateParams{
		{Name: "Acme Corp", Email: "BILLING@ACME.COM"}, // existing, case-insensitive
		{Name: "Beta LLC", Email: "hello@beta.io"},
		{Name: "Beta Again", Email: "hello@beta.io"}, // duplicate within the batch
		{Name: "Gamma Studio", Email: "team@gamma.dev", Status: client.StatusActive},
	})
	require.NoError(t, err)

	require.Len(t, result.Created, 2)
	assert.Equal(t, "Beta LLC", result.Created[0].Name)
	assert.Equal(t, "Gamma Studio", result.Created[1].Name)
	assert.Equal(t, client.StatusActive, result.Created[1].Status)

	require.Len(t, result.Skipped, 2)
	assert.Equal(t, "BILLING@ACME.COM", result.Skipped[0].Email)

	all, err := svc.List(ctx, client.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestService_ImportBatch_Empty(t *testing.T) {
	svc := client.NewService(store.New())

	result, err := svc.ImportBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.Empty(t, result.Skipped)
}

func TestService_ImportBatch_NamelessRowSkipped(t *testing.T) {
	svc := client.NewService(store.New())

	result, err := svc.ImportBatch(context.Background(), []client.CreateParams{
		{Name: "", Email: "no-name@example.com"},
		{Name: "Beta LLC", Email: "hello@beta.io"},
	})
	require.NoError(t, err)

	require.Len(t, result.Created, 1)
	assert.Equal(t, "Beta LLC", result.Created[0].Name)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "no-name@example.com", result.Skipped[0].Email)
}

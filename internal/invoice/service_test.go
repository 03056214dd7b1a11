package invoice_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrwalden/clientdesk/internal/client"
	"github.com/jrwalden/clientdesk/internal/invoice"
)

// Mock Repository
type mockRepo struct {
	created    *invoice.Invoice
	lastStatus invoice.Status
}

func (m *mockRepo) CreateInvoice(_ context.Context, inv *invoice.Invoice) error {
	inv.ID = uuid.New()
	m.created = inv
	return nil
}

func (m *mockRepo) GetInvoice(_ context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	if m.created != nil && m.created.ID == id {
		return m.created, nil
	}
	return nil, invoice.ErrNotFound
}

func (m *mockRepo) UpdateInvoice(_ context.Context, inv *invoice.Invoice) error { return nil }

func (m *mockRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status invoice.Status) error {
	m.lastStatus = status
	return nil
}

func (m *mockRepo) ListInvoices(_ context.Context, _ invoice.ListFilter) ([]*invoice.Invoice, error) {
	return nil, nil
}
func (m *mockRepo) DeleteInvoice(_ context.Context, _ uuid.UUID) error { return nil }

// Mock ClientDirectory
type mockDirectory struct {
	client   *client.Client
	recorded decimal.Decimal
}

func (m *mockDirectory) Get(_ context.Context, id uuid.UUID) (*client.Client, error) {
	if m.client == nil || m.client.ID != id {
		return nil, client.ErrNotFound
	}
	return m.client, nil
}

func (m *mockDirectory) RecordInvoice(_ context.Context, _ uuid.UUID, total decimal.Decimal) error {
	m.recorded = total
	return nil
}

func TestService_Create(t *testing.T) {
	repo := &mockRepo{}
	billed := &client.Client{ID: uuid.New(), Name: "TechCorp Solutions"}
	dir := &mockDirectory{client: billed}

	svc := invoice.NewService(repo, dir, "INV", decimal.Zero)

	got, err := svc.Create(context.Background(), invoice.CreateParams{
		ClientID: billed.ID,
		Project:  "Website Redesign",
		TaxRate:  new(d("10")),
		DueDate:  time.Now().AddDate(0, 1, 0),
		LineItems: []invoice.LineItemParams{
			{Description: "UI/UX Design", Quantity: d("40"), Rate: d("85")},
			{Description: "Frontend Development", Quantity: d("30"), Rate: d("95")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, invoice.StatusUnpaid, got.Status)
	assert.Equal(t, billed.ID, got.ClientID)
	assert.Equal(t, "TechCorp Solutions", got.ClientName)
	assert.Regexp(t, `^INV-\d{6}$`, got.Number)
	assert.True(t, d("6875").Equal(got.Total()), "total: %s", got.Total())

	// The issued total rolls up onto the client.
	assert.True(t, d("6875").Equal(dir.recorded))
}

func TestService_Create_Validation(t *testing.T) {
	billed := &client.Client{ID: uuid.New(), Name: "Acme"}
	svc := invoice.NewService(&mockRepo{}, &mockDirectory{client: billed}, "INV", decimal.Zero)

	_, err := svc.Create(context.Background(), invoice.CreateParams{
		LineItems: []invoice.LineItemParams{{Quantity: d("1"), Rate: d("1")}},
	})
	assert.ErrorIs(t, err, invoice.ErrClientRequired)

	_, err = svc.Create(context.Background(), invoice.CreateParams{ClientID: billed.ID})
	assert.ErrorIs(t, err, invoice.ErrLineItemsRequired)
}

func TestService_Create_DefaultTaxRate(t *testing.T) {
	billed := &client.Client{ID: uuid.New(), Name: "Acme"}
	svc := invoice.NewService(&mockRepo{}, &mockDirectory{client: billed}, "INV", d("10"))

	got, err := svc.Create(context.Background(), invoice.CreateParams{
		ClientID:  billed.ID,
		LineItems: []invoice.LineItemParams{{Quantity: d("1"), Rate: d("200")}},
	})
	require.NoError(t, err)

	// No rate on the request, so the configured default applies.
	assert.True(t, d("10").Equal(got.TaxRate), "got %s", got.TaxRate)
	assert.True(t, d("220").Equal(got.Total()), "got %s", got.Total())
}

func TestService_Create_UnknownClient(t *testing.T) {
	svc := invoice.NewService(&mockRepo{}, &mockDirectory{}, "INV", decimal.Zero)

	_, err := svc.Create(context.Background(), invoice.CreateParams{
		ClientID:  uuid.New(),
		LineItems: []invoice.LineItemParams{{Quantity: d("1"), Rate: d("1")}},
	})
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := &mockRepo{}
	svc := invoice.NewService(repo, &mockDirectory{}, "INV", decimal.Zero)

	require.NoError(t, svc.UpdateStatus(context.Background(), uuid.New(), invoice.StatusPaid))
	assert.Equal(t, invoice.StatusPaid, repo.lastStatus)

	err := svc.UpdateStatus(context.Background(), uuid.New(), invoice.Status("Bounced"))
	assert.ErrorIs(t, err, invoice.ErrInvalidStatus)
}

func TestService_Update_RequiresLineItems(t *testing.T) {
	svc := invoice.NewService(&mockRepo{}, &mockDirectory{}, "INV", decimal.Zero)

	err := svc.Update(context.Background(), &invoice.Invoice{ID: uuid.New()})
	assert.ErrorIs(t, err, invoice.ErrLineItemsRequired)
}

func TestService_Update_RejectsInvalidStatus(t *testing.T) {
	svc := invoice.NewService(&mockRepo{}, &mockDirectory{}, "INV", decimal.Zero)

	err := svc.Update(context.Background(), &invoice.Invoice{
		ID:        uuid.New(),
		Status:    invoice.Status("Bounced"),
		LineItems: []invoice.LineItem{{Quantity: d("1"), Rate: d("1")}},
	})
	assert.ErrorIs(t, err, invoice.ErrInvalidStatus)
}

package export_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrwalden/clientdesk/internal/export"
	"github.com/jrwalden/clientdesk/internal/invoice"
)

type mockLister struct {
	invoices []*invoice.Invoice
	filter   invoice.ListFilter
	err      error
}

func (m *mockLister) List(_ context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	m.filter = filter
	return m.invoices, m.err
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_ExportCSV(t *testing.T) {
	issued := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	lister := &mockLister{invoices: []*invoice.Invoice{
		{
			Number:     "INV-001234",
			ClientName: "Acme Corp",
			Project:    "Website Redesign",
			Status:     invoice.StatusUnpaid,
			IssueDate:  issued,
			DueDate:    due,
			TaxRate:    d("10"),
			LineItems: []invoice.LineItem{
				{Description: "Design", Quantity: d("40"), Rate: d("85")},
				{Description: "Development", Quantity: d("30"), Rate: d("95")},
			},
		},
	}}

	var buf bytes.Buffer

	n, err := export.NewService(lister, "USD").ExportCSV(context.Background(), invoice.ListFilter{Status: string(invoice.StatusUnpaid)}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, string(invoice.StatusUnpaid), lister.filter.Status)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "Number,Client,Project,Status,Issue Date,Due Date,Subtotal,Tax,Total,Currency", lines[0])
	// 40x85 + 30x95 = 6250; 10% tax = 625; total 6875.
	assert.Equal(t, "INV-001234,Acme Corp,Website Redesign,Unpaid,2025-08-01,2025-08-31,6250.00,625.00,6875.00,USD", lines[1])
}

func TestService_ExportCSV_Empty(t *testing.T) {
	var buf bytes.Buffer

	n, err := export.NewService(&mockLister{}, "USD").ExportCSV(context.Background(), invoice.ListFilter{}, &buf)
	require.NoError(t, err)
	assert.Zero(t, n)

	// Header only.
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestService_ExportCSV_ListError(t *testing.T) {
	boom := errors.New("store offline")

	var buf bytes.Buffer

	_, err := export.NewService(&mockLister{err: boom}, "USD").ExportCSV(context.Background(), invoice.ListFilter{}, &buf)
	assert.ErrorIs(t, err, boom)
}

func TestService_ExportCSV_QuotesCommas(t *testing.T) {
	lister := &mockLister{invoices: []*invoice.Invoice{
		{
			Number:     "INV-000001",
			ClientName: "Acme, Inc.",
			Status:     invoice.StatusPaid,
			IssueDate:  time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			DueDate:    time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
		},
	}}

	var buf bytes.Buffer

	_, err := export.NewService(lister, "USD").ExportCSV(context.Background(), invoice.ListFilter{}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"Acme, Inc."`)
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 8, 16, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "invoices_20250816.csv", export.Filename(now))
}

// Package export renders a filtered invoice listing as a CSV download.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/jrwalden/clientdesk/internal/billing"
	"github.com/jrwalden/clientdesk/internal/invoice"
)

type InvoiceLister interface {
	List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error)
}

type Service struct {
	invoices InvoiceLister
	currency string
}

// NewService builds an export service. currency is the configured
// display currency carried on every data row, e.g. "USD".
func NewService(invoices InvoiceLister, currency string) *Service {
	return &Service{invoices: invoices, currency: currency}
}

var header = []string{
	"Number", "Client", "Project", "Status",
	"Issue Date", "Due Date", "Subtotal", "Tax", "Total", "Currency",
}

// ExportCSV writes the invoices matching the filter to w as CSV and
// returns the number of data rows written. The header row is always
// written, even for an empty result.
func (s *Service) ExportCSV(ctx context.Context, filter invoice.ListFilter, w io.Writer) (int, error) {
	invoices, err := s.invoices.List(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("listing invoices: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for _, inv := range invoices {
		subtotal := inv.Subtotal()
		tax := inv.Tax()

		row := []string{
			inv.Number,
			inv.ClientName,
			inv.Project,
			string(inv.Status),
			inv.IssueDate.Format(time.DateOnly),
			inv.DueDate.Format(time.DateOnly),
			billing.FormatAmount(subtotal),
			billing.FormatAmount(tax),
			billing.FormatAmount(billing.Total(subtotal, tax)),
			s.currency,
		}

		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("writing invoice %s: %w", inv.Number, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing csv: %w", err)
	}

	return len(invoices), nil
}

// Filename names the download after the export date.
func Filename(now time.Time) string {
	return fmt.Sprintf("invoices_%s.csv", now.Format("20060102"))
}

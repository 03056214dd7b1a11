package invoice

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/filter"
)

// ListFilter narrows and orders an invoice listing. Date buckets compare
// against the issue date, except Overdue, which means the due date has
// passed. From/To bound the issue date when Bucket is BucketCustom.
type ListFilter struct {
	Search    string // number, client name, or project
	Status    string
	ClientID  *uuid.UUID
	Bucket    filter.DateBucket
	From      *time.Time
	To        *time.Time
	MinAmount *decimal.Decimal // on the invoice total
	MaxAmount *decimal.Decimal
	SortBy    string // "issue_date", "due_date", "total"
	SortOrder filter.Direction
}

// Filter applies f to invoices relative to now, preserving input order for
// ties and returning a new slice.
func Filter(invoices []*Invoice, f ListFilter, now time.Time) []*Invoice {
	out := make([]*Invoice, 0, len(invoices))

	for _, inv := range invoices {
		if !filter.AnyText(f.Search, inv.Number, inv.ClientName, inv.Project) {
			continue
		}

		if !filter.Enum(string(inv.Status), f.Status) {
			continue
		}

		if f.ClientID != nil && inv.ClientID != *f.ClientID {
			continue
		}

		if !matchesDate(inv, f, now) {
			continue
		}

		total := inv.Total()
		if !filter.MinDecimal(total, f.MinAmount) || !filter.MaxDecimal(total, f.MaxAmount) {
			continue
		}

		out = append(out, inv)
	}

	if f.SortBy == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return f.SortOrder.Less(compareBy(f.SortBy, out[i], out[j]))
	})

	return out
}

func matchesDate(inv *Invoice, f ListFilter, now time.Time) bool {
	switch f.Bucket {
	case filter.BucketOverdue:
		return inv.DueDate.Before(filter.StartOfDay(now))
	case filter.BucketCustom:
		return filter.InRange(inv.IssueDate, f.From, f.To)
	}

	return f.Bucket.Contains(inv.IssueDate, now)
}

func compareBy(key string, a, b *Invoice) int {
	switch key {
	case "issue_date":
		return a.IssueDate.Compare(b.IssueDate)
	case "due_date":
		return a.DueDate.Compare(b.DueDate)
	case "total":
		return a.Total().Cmp(b.Total())
	}

	return 0
}

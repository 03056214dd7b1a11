package client

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/filter"
)

// ListFilter narrows and orders a client listing. Zero values leave each
// constraint disabled; the zero filter is the identity over the input.
type ListFilter struct {
	Search      string
	Status      string
	MinRevenue  *decimal.Decimal
	MinInvoices *int
	SortBy      string // "revenue", "invoices", "name"
	SortOrder   filter.Direction
}

// Filter applies f to clients and returns the matching subsequence in a new
// slice. The sort is stable, so ties keep their input order. Applying the
// same filter twice yields the same result as applying it once.
func Filter(clients []*Client, f ListFilter) []*Client {
	out := make([]*Client, 0, len(clients))

	for _, c := range clients {
		if !filter.AnyText(f.Search, c.Name, c.Email) {
			continue
		}

		if !filter.Enum(string(c.Status), f.Status) {
			continue
		}

		if !filter.MinDecimal(c.TotalRevenue, f.MinRevenue) {
			continue
		}

		if !filter.MinInt(c.TotalInvoices, f.MinInvoices) {
			continue
		}

		out = append(out, c)
	}

	if f.SortBy == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return f.SortOrder.Less(compareBy(f.SortBy, out[i], out[j]))
	})

	return out
}

func compareBy(key string, a, b *Client) int {
	switch key {
	case "revenue":
		return a.TotalRevenue.Cmp(b.TotalRevenue)
	case "invoices":
		return a.TotalInvoices - b.TotalInvoices
	case "name":
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
	}

	return 0
}

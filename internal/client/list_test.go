package client_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrwalden/clientdesk/internal/client"
	"github.com/jrwalden/clientdesk/internal/filter"
)

func sampleClients() []*client.Client {
	return []*client.Client{
		{Name: "TechCorp Solutions", Email: "contact@techcorp.com", TotalInvoices: 5, TotalRevenue: decimal.NewFromInt(15250), Status: client.StatusActive},
		{Name: "Digital Marketing Pro", Email: "hello@digitalpro.com", TotalInvoices: 3, TotalRevenue: decimal.NewFromInt(8300), Status: client.StatusActive},
		{Name: "StartupXYZ", Email: "founder@startupxyz.io", TotalInvoices: 2, TotalRevenue: decimal.NewFromInt(7200), Status: client.StatusInactive},
	}
}

func TestFilter_NeutralIsIdentity(t *testing.T) {
	clients := sampleClients()

	got := client.Filter(clients, client.ListFilter{})

	require.Len(t, got, len(clients))
	for i := range clients {
		assert.Same(t, clients[i], got[i])
	}
}

func TestFilter_Idempotent(t *testing.T) {
	f := client.ListFilter{Status: "Active", SortBy: "revenue", SortOrder: filter.Asc}

	once := client.Filter(sampleClients(), f)
	twice := client.Filter(once, f)

	assert.Equal(t, once, twice)
}

func TestFilter_Search(t *testing.T) {
	tests := []struct {
		name      string
		search    string
		wantNames []string
	}{
		{"ByName", "startup", []string{"StartupXYZ"}},
		{"ByEmail", "digitalpro", []string{"Digital Marketing Pro"}},
		{"NoHit", "acme", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := client.Filter(sampleClients(), client.ListFilter{Search: tt.search})

			var names []string
			for _, c := range got {
				names = append(names, c.Name)
			}

			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestFilter_MinRevenue(t *testing.T) {
	minRevenue := decimal.NewFromInt(2000)
	records := []*client.Client{
		{Name: "Acme", TotalRevenue: decimal.NewFromInt(1000)},
		{Name: "Beta", TotalRevenue: decimal.NewFromInt(5000)},
	}

	got := client.Filter(records, client.ListFilter{MinRevenue: &minRevenue})

	require.Len(t, got, 1)
	assert.Equal(t, "Beta", got[0].Name)
}

func TestFilter_MinInvoices(t *testing.T) {
	minInvoices := 3

	got := client.Filter(sampleClients(), client.ListFilter{MinInvoices: &minInvoices})

	require.Len(t, got, 2)
	assert.Equal(t, "TechCorp Solutions", got[0].Name)
	assert.Equal(t, "Digital Marketing Pro", got[1].Name)
}

func TestFilter_SortAscIsReverseOfDesc(t *testing.T) {
	// No ties on revenue, so asc must be the exact reverse of desc.
	asc := client.Filter(sampleClients(), client.ListFilter{SortBy: "revenue", SortOrder: filter.Asc})
	desc := client.Filter(sampleClients(), client.ListFilter{SortBy: "revenue", SortOrder: filter.Desc})

	require.Len(t, asc, 3)
	for i := range asc {
		assert.Equal(t, asc[i].Name, desc[len(desc)-1-i].Name)
	}
}

func TestFilter_SortStableOnTies(t *testing.T) {
	records := []*client.Client{
		{Name: "First", TotalRevenue: decimal.NewFromInt(100)},
		{Name: "Second", TotalRevenue: decimal.NewFromInt(100)},
		{Name: "Third", TotalRevenue: decimal.NewFromInt(50)},
	}

	got := client.Filter(records, client.ListFilter{SortBy: "revenue", SortOrder: filter.Desc})

	require.Len(t, got, 3)
	assert.Equal(t, "First", got[0].Name)
	assert.Equal(t, "Second", got[1].Name)
	assert.Equal(t, "Third", got[2].Name)
}

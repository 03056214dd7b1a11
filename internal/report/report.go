// Package report aggregates the other domains into the dashboard and
// revenue-report figures. All computation is pure over already-listed
// records; the service only fans out the list calls.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/billing"
	"github.com/jrwalden/clientdesk/internal/contract"
	"github.com/jrwalden/clientdesk/internal/invoice"
	"github.com/jrwalden/clientdesk/internal/meeting"
	"github.com/jrwalden/clientdesk/internal/project"
)

// Dashboard holds the headline figures for the landing page.
type Dashboard struct {
	MonthlyRevenue   decimal.Decimal `json:"monthlyRevenue"`
	ActiveProjects   int             `json:"activeProjects"`
	PendingInvoices  int             `json:"pendingInvoices"`
	PendingAmount    decimal.Decimal `json:"pendingAmount"`
	ContractsSigned  int             `json:"contractsSigned"`
	TotalClients     int             `json:"totalClients"`
	UpcomingMeetings int             `json:"upcomingMeetings"`
}

// MonthlyPoint is one month of the revenue series. Month is the first
// day of the month at midnight UTC.
type MonthlyPoint struct {
	Month       time.Time       `json:"month"`
	Invoiced    decimal.Decimal `json:"invoiced"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// InvoiceStats summarizes a set of invoices for the reports page.
type InvoiceStats struct {
	Count            int                    `json:"count"`
	TotalInvoiced    decimal.Decimal        `json:"totalInvoiced"`
	TotalPaid        decimal.Decimal        `json:"totalPaid"`
	TotalOutstanding decimal.Decimal        `json:"totalOutstanding"`
	AverageValue     decimal.Decimal        `json:"averageValue"`
	CollectionRate   decimal.Decimal        `json:"collectionRate"`
	ByStatus         map[invoice.Status]int `json:"byStatus"`
}

// BuildDashboard computes the headline figures. Monthly revenue counts
// paid invoices issued in the current calendar month; pending covers
// every invoice that is not yet fully paid.
func BuildDashboard(
	totalClients int,
	projects []*project.Project,
	invoices []*invoice.Invoice,
	contracts []*contract.Contract,
	upcoming []*meeting.Meeting,
	now time.Time,
) Dashboard {
	d := Dashboard{
		TotalClients:     totalClients,
		UpcomingMeetings: len(upcoming),
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	for _, inv := range invoices {
		total := inv.Total()

		if inv.Status == invoice.StatusPaid {
			if !inv.IssueDate.Before(monthStart) && inv.IssueDate.Before(monthEnd) {
				d.MonthlyRevenue = d.MonthlyRevenue.Add(total)
			}

			continue
		}

		d.PendingInvoices++
		d.PendingAmount = d.PendingAmount.Add(total)
	}

	for _, p := range projects {
		if p.Status == project.StatusActive {
			d.ActiveProjects++
		}
	}

	for _, c := range contracts {
		if c.Status == contract.StatusActive {
			d.ContractsSigned++
		}
	}

	return d
}

// RevenueSeries buckets invoices by issue month over the trailing
// months window, oldest first, ending with the current month. Months
// without invoices appear as zero points.
func RevenueSeries(invoices []*invoice.Invoice, now time.Time, months int) []MonthlyPoint {
	if months <= 0 {
		return nil
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	points := make([]MonthlyPoint, months)
	for i := range points {
		points[i].Month = first.AddDate(0, i, 0)
	}

	for _, inv := range invoices {
		idx := monthsBetween(first, inv.IssueDate)
		if idx < 0 || idx >= months {
			continue
		}

		total := inv.Total()
		points[idx].Invoiced = points[idx].Invoiced.Add(total)

		if inv.Status == invoice.StatusPaid {
			points[idx].Paid = points[idx].Paid.Add(total)
		} else {
			points[idx].Outstanding = points[idx].Outstanding.Add(total)
		}
	}

	return points
}

// Stats rolls up a set of invoices. The collection rate is the share
// of invoices fully paid, in percent, zero on an empty set.
func Stats(invoices []*invoice.Invoice) InvoiceStats {
	stats := InvoiceStats{
		ByStatus: make(map[invoice.Status]int),
	}

	for _, inv := range invoices {
		total := inv.Total()

		stats.Count++
		stats.TotalInvoiced = stats.TotalInvoiced.Add(total)
		stats.ByStatus[inv.Status]++

		if inv.Status == invoice.StatusPaid {
			stats.TotalPaid = stats.TotalPaid.Add(total)
		} else {
			stats.TotalOutstanding = stats.TotalOutstanding.Add(total)
		}
	}

	if stats.Count > 0 {
		stats.AverageValue = stats.TotalInvoiced.Div(decimal.NewFromInt(int64(stats.Count)))
	}

	stats.CollectionRate = billing.Ratio(
		decimal.NewFromInt(int64(stats.ByStatus[invoice.StatusPaid])),
		decimal.NewFromInt(int64(stats.Count)),
	)

	return stats
}

func monthsBetween(from, date time.Time) int {
	return (date.Year()-from.Year())*12 + int(date.Month()-from.Month())
}

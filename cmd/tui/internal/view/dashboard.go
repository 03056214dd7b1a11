package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jrwalden/clientdesk/internal/report"
)

const revenueMonths = 6

type DashboardModel struct {
	CommonModel
	reportService *report.Service

	dashboard report.Dashboard
	series    []report.MonthlyPoint
	revenue   table.Model

	loading bool
	err     error
}

func NewDashboardModel(svc *report.Service) DashboardModel {
	columns := []table.Column{
		{Title: "Month", Width: 10},
		{Title: "Invoiced", Width: 12},
		{Title: "Paid", Width: 12},
		{Title: "Outstanding", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(revenueMonths+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return DashboardModel{
		reportService: svc,
		revenue:       t,
		loading:       true,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.dashboard = msg.dashboard
		m.series = msg.series
		m.refreshRevenue()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.revenue, cmd = m.revenue.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	metrics := lipgloss.JoinHorizontal(lipgloss.Top,
		metricBox("Revenue (month)", FormatMoney(m.dashboard.MonthlyRevenue)),
		metricBox("Active Projects", fmt.Sprintf("%d", m.dashboard.ActiveProjects)),
		metricBox("Pending Invoices", fmt.Sprintf("%d (%s)", m.dashboard.PendingInvoices, FormatMoney(m.dashboard.PendingAmount))),
	)

	secondRow := lipgloss.JoinHorizontal(lipgloss.Top,
		metricBox("Clients", fmt.Sprintf("%d", m.dashboard.TotalClients)),
		metricBox("Contracts Signed", fmt.Sprintf("%d", m.dashboard.ContractsSigned)),
		metricBox("Upcoming Meetings", fmt.Sprintf("%d", m.dashboard.UpcomingMeetings)),
	)

	revenueView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.revenue.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			metrics,
			secondRow,
			"",
			fmt.Sprintf("Revenue, last %d months:", revenueMonths),
			revenueView,
			"",
			lipgloss.NewStyle().Faint(true).Render("r: refresh | Esc: back"),
		),
	)
}

func metricBox(label, value string) string {
	return lipgloss.NewStyle().
		Padding(0, 2).
		Margin(0, 1, 1, 0).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(
			lipgloss.NewStyle().Faint(true).Render(label) + "\n" +
				lipgloss.NewStyle().Bold(true).Render(value),
		)
}

func (m *DashboardModel) refreshRevenue() {
	rows := make([]table.Row, 0, len(m.series))
	for _, p := range m.series {
		rows = append(rows, table.Row{
			p.Month.Format("2006-01"),
			FormatMoney(p.Invoiced),
			FormatMoney(p.Paid),
			FormatMoney(p.Outstanding),
		})
	}
	m.revenue.SetRows(rows)
}

// Messages

type dashboardLoadedMsg struct {
	dashboard report.Dashboard
	series    []report.MonthlyPoint
	err       error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		now := time.Now()

		dashboard, err := m.reportService.Dashboard(ctx, now)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		series, err := m.reportService.Revenue(ctx, now, revenueMonths)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{dashboard: dashboard, series: series}
	}
}

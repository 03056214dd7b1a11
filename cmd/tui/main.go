package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/cmd/tui/internal/view"
	"github.com/jrwalden/clientdesk/internal/client"
	clientStore "github.com/jrwalden/clientdesk/internal/client/store"
	"github.com/jrwalden/clientdesk/internal/config"
	"github.com/jrwalden/clientdesk/internal/contract"
	contractStore "github.com/jrwalden/clientdesk/internal/contract/store"
	"github.com/jrwalden/clientdesk/internal/export"
	"github.com/jrwalden/clientdesk/internal/importer"
	"github.com/jrwalden/clientdesk/internal/invoice"
	invoiceStore "github.com/jrwalden/clientdesk/internal/invoice/store"
	"github.com/jrwalden/clientdesk/internal/meeting"
	meetingStore "github.com/jrwalden/clientdesk/internal/meeting/store"
	"github.com/jrwalden/clientdesk/internal/project"
	projectStore "github.com/jrwalden/clientdesk/internal/project/store"
	"github.com/jrwalden/clientdesk/internal/report"
)

type model struct {
	clientService  *client.Service
	meetingService *meeting.Service
	importService  *importer.Service
	exportService  *export.Service
	reportService  *report.Service

	currentView View

	dashboardView view.DashboardModel
	clientsView   view.ClientsModel
	meetingsView  view.MeetingsModel
	importView    view.ImportModel
	exportView    view.ExportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewClients   View = 2
	ViewMeetings  View = 3
	ViewImport    View = 4
	ViewExport    View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	clientSvc := client.NewService(clientStore.New())
	invoiceSvc := invoice.NewService(invoiceStore.New(), clientSvc, cfg.Invoice.NumberPrefix, decimal.NewFromFloat(cfg.Invoice.TaxRate))
	projectSvc := project.NewService(projectStore.New())
	contractSvc := contract.NewService(contractStore.New())
	meetingSvc := meeting.NewService(meetingStore.New())
	importSvc := importer.NewService()
	exportSvc := export.NewService(invoiceSvc, cfg.Invoice.Currency)
	reportSvc := report.NewService(clientSvc, invoiceSvc, projectSvc, contractSvc, meetingSvc)

	return model{
		clientService:  clientSvc,
		meetingService: meetingSvc,
		importService:  importSvc,
		exportService:  exportSvc,
		reportService:  reportSvc,
		currentView:    ViewMenu,
		dashboardView:  view.NewDashboardModel(reportSvc),
		clientsView:    view.NewClientsModel(clientSvc),
		meetingsView:   view.NewMeetingsModel(meetingSvc),
		importView:     view.NewImportModel(clientSvc, importSvc),
		exportView:     view.NewExportModel(exportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.reportService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewClients
				m.clientsView = view.NewClientsModel(m.clientService)

				return m, m.clientsView.Init()
			case "3":
				m.currentView = ViewMeetings
				m.meetingsView = view.NewMeetingsModel(m.meetingService)

				return m, m.meetingsView.Init()
			case "4":
				m.currentView = ViewImport
				return m, m.importView.Init()
			case "5":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewClients:
		var newModel tea.Model
		newModel, cmd = m.clientsView.Update(msg)
		m.clientsView = newModel.(view.ClientsModel)
	case ViewMeetings:
		var newModel tea.Model
		newModel, cmd = m.meetingsView.Update(msg)
		m.meetingsView = newModel.(view.MeetingsModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"ClientDesk TUI\n\n" +
				"1. Dashboard\n" +
				"2. Clients\n" +
				"3. Meetings\n" +
				"4. Import Clients\n" +
				"5. Export Invoices\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewClients:
		return m.clientsView.View()
	case ViewMeetings:
		return m.meetingsView.View()
	case ViewImport:
		return m.importView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}

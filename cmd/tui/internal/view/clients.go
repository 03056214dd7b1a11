package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jrwalden/clientdesk/internal/client"
)

type clientsState int

const (
	clientsStateBrowse clientsState = iota
	clientsStateSearch
	clientsStateCreate
)

var clientStatusCycle = []client.Status{
	"", // all
	client.StatusActive,
	client.StatusProspect,
	client.StatusOnHold,
	client.StatusInactive,
}

type ClientsModel struct {
	CommonModel
	clientService *client.Service

	state       clientsState
	table       table.Model
	clients     []*client.Client
	form        *huh.Form
	searchInput textinput.Model

	statusFilterIdx int

	filter  client.ListFilter
	loading bool
	err     error
	status  string

	// Form bindings
	formName   string
	formEmail  string
	formStatus client.Status
}

func NewClientsModel(svc *client.Service) ClientsModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 28},
		{Title: "Status", Width: 10},
		{Title: "Invoices", Width: 8},
		{Title: "Revenue", Width: 12},
		{Title: "Since", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
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

	si := textinput.New()
	si.Placeholder = "name or email"
	si.Prompt = "Search: "
	si.Width = 30

	return ClientsModel{
		clientService: svc,
		table:         t,
		searchInput:   si,
		filter:        client.ListFilter{},
	}
}

func (m ClientsModel) Title() string { return "Clients" }
func (m ClientsModel) ShortHelp() string {
	switch m.state {
	case clientsStateCreate:
		return "Navigate form | Esc: cancel"
	case clientsStateSearch:
		return "Enter: apply | Esc: clear"
	}
	return "Esc: back | /: search | n: new | x: delete | s: status filter | r: refresh"
}

func (m ClientsModel) Init() tea.Cmd {
	return m.loadClientsCmd()
}

func (m ClientsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadClientsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.clients = msg.clients
		m.refreshTable()
		return m, nil

	case clientSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Created %s", msg.name)
		}
		m.state = clientsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadClientsCmd()

	case clientDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
			return m, nil
		}
		m.status = "Client deleted"
		return m, m.loadClientsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case clientsStateBrowse:
		return m.updateBrowse(msg)
	case clientsStateSearch:
		return m.updateSearch(msg)
	case clientsStateCreate:
		return m.updateCreate(msg)
	}

	return m, nil
}

func (m ClientsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadClientsCmd()
		case "n":
			return m.enterCreateMode()
		case "x":
			return m, m.deleteCmd()
		case "/":
			m.state = clientsStateSearch
			m.table.Blur()
			m.searchInput.Focus()
			return m, textinput.Blink
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % len(clientStatusCycle)
			m.filter.Status = string(clientStatusCycle[m.statusFilterIdx])
			return m, m.loadClientsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ClientsModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = clientsStateBrowse
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.filter.Search = ""
			m.table.Focus()
			return m, m.loadClientsCmd()
		case tea.KeyEnter:
			m.state = clientsStateBrowse
			m.searchInput.Blur()
			m.filter.Search = m.searchInput.Value()
			m.table.Focus()
			return m, m.loadClientsCmd()
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m ClientsModel) enterCreateMode() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formEmail = ""
	m.formStatus = client.StatusProspect

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("billing@example.com").
				Value(&m.formEmail).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("email cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[client.Status]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("Prospect", client.StatusProspect),
					huh.NewOption("Active", client.StatusActive),
					huh.NewOption("On Hold", client.StatusOnHold),
					huh.NewOption("Inactive", client.StatusInactive),
				).
				Value(&m.formStatus),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = clientsStateCreate
	m.table.Blur()
	return m, m.form.Init()
}

func (m ClientsModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = clientsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m ClientsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading clients...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	statusLabel := "All"
	if s := clientStatusCycle[m.statusFilterIdx]; s != "" {
		statusLabel = string(s)
	}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(statusLabel))
	if m.state == clientsStateSearch {
		header = m.searchInput.View()
	} else if m.filter.Search != "" {
		header += fmt.Sprintf(" | [/] Search: %s", activeStyle(m.filter.Search))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == clientsStateCreate && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("New Client\n\n%s", m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ClientsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.clients))
	for _, c := range m.clients {
		rows = append(rows, table.Row{
			c.Name,
			c.Email,
			string(c.Status),
			fmt.Sprintf("%d", c.TotalInvoices),
			FormatMoney(c.TotalRevenue),
			FormatDate(c.CreatedAt),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadClientsMsg struct {
	clients []*client.Client
	err     error
}

func (m ClientsModel) loadClientsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		clients, err := m.clientService.List(ctx, m.filter)
		return loadClientsMsg{clients: clients, err: err}
	}
}

type clientSavedMsg struct {
	name string
	err  error
}

func (m ClientsModel) saveCmd() tea.Cmd {
	params := client.CreateParams{
		Name:   m.formName,
		Email:  m.formEmail,
		Status: m.formStatus,
	}

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		c, err := m.clientService.Create(ctx, params)
		if err != nil {
			return clientSavedMsg{err: err}
		}

		return clientSavedMsg{name: c.Name}
	}
}

type clientDeletedMsg struct {
	err error
}

func (m ClientsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.clients) {
		return nil
	}

	id := m.clients[idx].ID

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		return clientDeletedMsg{err: m.clientService.Delete(ctx, id)}
	}
}

package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jrwalden/clientdesk/internal/client"
	"github.com/jrwalden/clientdesk/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	clientService *client.Service
	importService *importer.Service

	state      importState
	filePicker filepicker.Model

	created     int
	skipped     []client.CreateParams
	skippedList list.Model

	status string
	err    error
}

func NewImportModel(clientSvc *client.Service, impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		clientService: clientSvc,
		importService: impSvc,
		filePicker:    fp,
	}
}

func (m ImportModel) Title() string { return "Import Clients" }

func (m ImportModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

	case rosterImportedMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.created = len(msg.result.Created)
		m.skipped = msg.result.Skipped
		m.status = fmt.Sprintf("Imported %d clients, skipped %d rows.", m.created, len(m.skipped))

		if len(m.skipped) > 0 {
			items := make([]list.Item, len(m.skipped))
			for i, p := range m.skipped {
				items[i] = skippedItem{params: p}
			}

			m.skippedList = list.New(items, skippedDelegate{}, 80, 14)
			m.skippedList.Title = "Skipped Rows"
			m.skippedList.SetShowStatusBar(false)
			m.skippedList.SetFilteringEnabled(false)
			m.skippedList.SetShowHelp(false)
		}

		return m, nil
	}

	if m.state == importStateResult && len(m.skipped) > 0 {
		var cmd tea.Cmd
		m.skippedList, cmd = m.skippedList.Update(msg)
		return m, cmd
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	if m.state == importStateResult {
		m.state = importStateFilePick
		m.err = nil
		m.status = ""
		m.created = 0
		m.skipped = nil

		return m, nil
	}

	return m, Back
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select a roster CSV to import:\n\n%s", m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(
			errorStyle.Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	header := successStyle.Render(m.status)

	if len(m.skipped) == 0 {
		return style.Render(header + "\n\n(Esc to go back)")
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			m.skippedList.View(),
			"",
			"(Esc to go back)",
		),
	)
}

// Messages

type rosterImportedMsg struct {
	result *client.ImportResult
	err    error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return rosterImportedMsg{err: err}
		}
		defer f.Close()

		params, err := m.importService.Import(importer.FormatRoster, f)
		if err != nil {
			return rosterImportedMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		result, err := m.clientService.ImportBatch(ctx, params)
		if err != nil {
			return rosterImportedMsg{err: err}
		}

		return rosterImportedMsg{result: result}
	}
}

// Skipped rows list

type skippedItem struct {
	params client.CreateParams
}

func (i skippedItem) Title() string       { return "" }
func (i skippedItem) Description() string { return "" }
func (i skippedItem) FilterValue() string { return "" }

type skippedDelegate struct{}

func (d skippedDelegate) Height() int                             { return 1 }
func (d skippedDelegate) Spacing() int                            { return 0 }
func (d skippedDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d skippedDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(skippedItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	reason := "already exists"
	if item.params.Name == "" {
		reason = "missing name"
	}

	fmt.Fprintf(w, "%s%s <%s> %s\n", cursor, item.params.Name, item.params.Email, reason)
}

package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jrwalden/clientdesk/internal/client"
	enc "github.com/jrwalden/clientdesk/internal/encoding"
)

// Parser reads client roster CSV exports and produces client params.
// It auto-detects which export format is being used by matching column
// headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]client.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching roster format found: expected name and email columns")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts client params from data rows using the matched
// profile. headerRowNum is the 0-based index of the header in the
// original file, used for error messages.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]client.CreateParams, error) {
	nameIdx := cols[p.NameCol]
	emailIdx := cols[p.EmailCol]

	statusIdx := -1
	if p.StatusCol != "" {
		statusIdx = cols[p.StatusCol]
	}

	var params []client.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		name := cellValue(row, nameIdx)
		email := cellValue(row, emailIdx)

		// Blank rows and footers show up in real exports; skip them.
		if name == "" && email == "" {
			continue
		}

		if email == "" {
			return nil, fmt.Errorf("row %d: missing email", rowNum)
		}

		// A nameless row still carries an email; it is passed through
		// so the import can report it as skipped instead of aborting
		// the whole file.

		params = append(params, client.CreateParams{
			Name:   name,
			Email:  email,
			Status: parseStatus(cellValue(row, statusIdx)),
		})
	}

	return params, nil
}

// parseStatus maps the status labels the exports use onto the client
// status enum. Unknown labels fall back to prospect, the create
// default.
func parseStatus(s string) client.Status {
	switch strings.ToLower(s) {
	case "active", "current":
		return client.StatusActive
	case "inactive", "former", "churned":
		return client.StatusInactive
	case "on hold", "paused":
		return client.StatusOnHold
	case "prospect", "lead":
		return client.StatusProspect
	}

	return client.StatusProspect
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

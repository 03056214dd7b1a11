package roster_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrwalden/clientdesk/internal/client"
	"github.com/jrwalden/clientdesk/internal/importer/roster"
)

func TestParser_ClientdeskFormat(t *testing.T) {
	csv := `Name,Email,Status
Acme Corp,billing@acme.com,Active
Beta LLC,hello@beta.io,On Hold
Gamma Studio,team@gamma.dev,Former
`

	params, err := roster.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 3)

	assert.Equal(t, "Acme Corp", params[0].Name)
	assert.Equal(t, "billing@acme.com", params[0].Email)
	assert.Equal(t, client.StatusActive, params[0].Status)

	assert.Equal(t, client.StatusOnHold, params[1].Status)
	assert.Equal(t, client.StatusInactive, params[2].Status)
}

func TestParser_PipelineFormat(t *testing.T) {
	csv := `Client,E-mail,Stage
Delta Inc,contact@delta.com,Lead
`

	params, err := roster.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Delta Inc", params[0].Name)
	assert.Equal(t, client.StatusProspect, params[0].Status)
}

func TestParser_ContactsFormatNoStatus(t *testing.T) {
	csv := `Full Name,Email Address
Jordan Peters,jordan@peters.dev
`

	params, err := roster.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)
	// Formats without a status column default to prospect.
	assert.Equal(t, client.StatusProspect, params[0].Status)
}

func TestParser_HeaderAfterPreamble(t *testing.T) {
	// Exports often carry report metadata above the real header.
	csv := `Exported 2025-08-01
,
Name,Email,Status
Acme Corp,billing@acme.com,Active
`

	params, err := roster.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Acme Corp", params[0].Name)
}

func TestParser_SkipsBlankRows(t *testing.T) {
	csv := `Name,Email
Acme Corp,billing@acme.com
,
Beta LLC,hello@beta.io
`

	params, err := roster.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 2)
}

func TestParser_MissingEmail(t *testing.T) {
	csv := `Name,Email
Acme Corp,
`

	_, err := roster.NewParser().Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing email")
}

func TestParser_NamelessRowIsNotFatal(t *testing.T) {
	csv := `Name,Email
,billing@acme.com
Beta LLC,hello@beta.io
`

	params, err := roster.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 2)

	// The nameless row survives the parse so the import can report it
	// as skipped.
	assert.Empty(t, params[0].Name)
	assert.Equal(t, "billing@acme.com", params[0].Email)
	assert.Equal(t, "Beta LLC", params[1].Name)
}

func TestParser_UnknownFormat(t *testing.T) {
	csv := `Foo,Bar
1,2
`

	_, err := roster.NewParser().Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no matching roster format")
}

func TestParser_Windows1252Input(t *testing.T) {
	// "Renée" with é as the Windows-1252 byte 0xE9.
	raw := append([]byte("Name,Email\nRen"), 0xE9)
	raw = append(raw, []byte("e,renee@example.com\n")...)

	params, err := roster.NewParser().Parse(strings.NewReader(string(raw)))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Renée", params[0].Name)
}

package importer

import (
	"io"

	"github.com/jrwalden/clientdesk/internal/client"
)

// Format names a supported roster export format family.
type Format string

const (
	FormatRoster Format = "roster"
)

type Importer interface {
	Parse(r io.Reader) ([]client.CreateParams, error)
}

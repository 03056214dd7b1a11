package importer

import (
	"fmt"
	"io"

	"github.com/jrwalden/clientdesk/internal/client"
	"github.com/jrwalden/clientdesk/internal/importer/roster"
)

type Service struct {
	rosterImporter Importer
}

func NewService() *Service {
	return &Service{
		rosterImporter: roster.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]client.CreateParams, error) {
	var importer Importer

	switch format {
	case FormatRoster:
		importer = s.rosterImporter
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return importer.Parse(r)
}

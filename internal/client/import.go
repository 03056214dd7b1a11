package client

import (
	"context"
	"fmt"
	"strings"
)

// ImportResult reports what a roster import did. Skipped holds the
// incoming rows that were not created: emails already belonging to a
// client and rows without a name.
type ImportResult struct {
	Created []*Client
	Skipped []CreateParams
}

// ImportBatch creates the clients that are not already present,
// matching on email case-insensitively. Rows within the batch that
// repeat an email are skipped too, as are rows with no name.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	existing, err := s.repo.ListClients(ctx, ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	seen := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		seen[strings.ToLower(c.Email)] = struct{}{}
	}

	result := &ImportResult{}

	for _, p := range params {
		if strings.TrimSpace(p.Name) == "" {
			result.Skipped = append(result.Skipped, p)
			continue
		}

		key := strings.ToLower(strings.TrimSpace(p.Email))

		if _, dup := seen[key]; dup {
			result.Skipped = append(result.Skipped, p)
			continue
		}

		c, err := s.Create(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("creating %q: %w", p.Email, err)
		}

		seen[key] = struct{}{}
		result.Created = append(result.Created, c)
	}

	return result, nil
}

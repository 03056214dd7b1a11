package project

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jrwalden/clientdesk/internal/filter"
)

// ListFilter narrows a project listing. Date buckets compare against the
// deadline, so Overdue means the deadline has passed.
type ListFilter struct {
	Search     string // project or client name
	Status     string
	ClientID   *uuid.UUID
	Priority   string
	TeamMember *uuid.UUID
	Bucket     filter.DateBucket
	SortBy     string // "deadline", "progress", "name"
	SortOrder  filter.Direction
}

// Filter applies f to projects relative to now, preserving input order.
func Filter(projects []*Project, f ListFilter, now time.Time) []*Project {
	out := make([]*Project, 0, len(projects))

	for _, p := range projects {
		if !filter.AnyText(f.Search, p.Name, p.ClientName) {
			continue
		}

		if !filter.Enum(string(p.Status), f.Status) {
			continue
		}

		if f.ClientID != nil && p.ClientID != *f.ClientID {
			continue
		}

		if !filter.Enum(string(p.Priority), f.Priority) {
			continue
		}

		if f.TeamMember != nil && !p.HasTeamMember(*f.TeamMember) {
			continue
		}

		if !f.Bucket.Contains(p.Deadline, now) {
			continue
		}

		out = append(out, p)
	}

	if f.SortBy == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return f.SortOrder.Less(compareBy(f.SortBy, out[i], out[j]))
	})

	return out
}

func compareBy(key string, a, b *Project) int {
	switch key {
	case "deadline":
		return a.Deadline.Compare(b.Deadline)
	case "progress":
		return a.Progress - b.Progress
	case "name":
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
	}

	return 0
}

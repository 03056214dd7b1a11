package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jrwalden/clientdesk/internal/client"
	"github.com/jrwalden/clientdesk/internal/contract"
	"github.com/jrwalden/clientdesk/internal/invoice"
	"github.com/jrwalden/clientdesk/internal/meeting"
	"github.com/jrwalden/clientdesk/internal/project"
)

// The service depends on the narrow listing surface of each domain
// rather than the full services.
type (
	ClientLister interface {
		List(ctx context.Context, filter client.ListFilter) ([]*client.Client, error)
	}

	InvoiceLister interface {
		List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error)
	}

	ProjectLister interface {
		List(ctx context.Context, filter project.ListFilter) ([]*project.Project, error)
	}

	ContractLister interface {
		List(ctx context.Context, filter contract.ListFilter) ([]*contract.Contract, error)
	}

	MeetingLister interface {
		Upcoming(ctx context.Context, now time.Time, n int) ([]*meeting.Meeting, error)
	}
)

const upcomingWindow = 5

type Service struct {
	clients   ClientLister
	invoices  InvoiceLister
	projects  ProjectLister
	contracts ContractLister
	meetings  MeetingLister
}

func NewService(clients ClientLister, invoices InvoiceLister, projects ProjectLister, contracts ContractLister, meetings MeetingLister) *Service {
	return &Service{
		clients:   clients,
		invoices:  invoices,
		projects:  projects,
		contracts: contracts,
		meetings:  meetings,
	}
}

// Dashboard gathers the landing-page figures as of now.
func (s *Service) Dashboard(ctx context.Context, now time.Time) (Dashboard, error) {
	clients, err := s.clients.List(ctx, client.ListFilter{})
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing clients: %w", err)
	}

	invoices, err := s.invoices.List(ctx, invoice.ListFilter{})
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing invoices: %w", err)
	}

	projects, err := s.projects.List(ctx, project.ListFilter{})
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing projects: %w", err)
	}

	contracts, err := s.contracts.List(ctx, contract.ListFilter{})
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing contracts: %w", err)
	}

	upcoming, err := s.meetings.Upcoming(ctx, now, upcomingWindow)
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing upcoming meetings: %w", err)
	}

	return BuildDashboard(len(clients), projects, invoices, contracts, upcoming, now), nil
}

// Revenue returns the trailing monthly revenue series ending with the
// current month.
func (s *Service) Revenue(ctx context.Context, now time.Time, months int) ([]MonthlyPoint, error) {
	invoices, err := s.invoices.List(ctx, invoice.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	return RevenueSeries(invoices, now, months), nil
}

// InvoiceSummary rolls up the invoices matching the filter.
func (s *Service) InvoiceSummary(ctx context.Context, filter invoice.ListFilter) (InvoiceStats, error) {
	invoices, err := s.invoices.List(ctx, filter)
	if err != nil {
		return InvoiceStats{}, fmt.Errorf("listing invoices: %w", err)
	}

	return Stats(invoices), nil
}

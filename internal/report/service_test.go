package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrwalden/clientdesk/internal/client"
	"github.com/jrwalden/clientdesk/internal/contract"
	"github.com/jrwalden/clientdesk/internal/invoice"
	"github.com/jrwalden/clientdesk/internal/meeting"
	"github.com/jrwalden/clientdesk/internal/project"
	"github.com/jrwalden/clientdesk/internal/report"
)

type clientLister struct {
	clients []*client.Client
	err     error
}

func (l *clientLister) List(_ context.Context, _ client.ListFilter) ([]*client.Client, error) {
	return l.clients, l.err
}

type invoiceLister struct {
	invoices []*invoice.Invoice
	filter   invoice.ListFilter
	err      error
}

func (l *invoiceLister) List(_ context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	l.filter = filter
	return l.invoices, l.err
}

type projectLister struct {
	projects []*project.Project
}

func (l *projectLister) List(_ context.Context, _ project.ListFilter) ([]*project.Project, error) {
	return l.projects, nil
}

type contractLister struct {
	contracts []*contract.Contract
}

func (l *contractLister) List(_ context.Context, _ contract.ListFilter) ([]*contract.Contract, error) {
	return l.contracts, nil
}

type meetingLister struct {
	meetings []*meeting.Meeting
}

func (l *meetingLister) Upcoming(_ context.Context, _ time.Time, _ int) ([]*meeting.Meeting, error) {
	return l.meetings, nil
}

func TestService_Dashboard(t *testing.T) {
	svc := report.NewService(
		&clientLister{clients: []*client.Client{{Name: "Acme"}, {Name: "Beta"}}},
		&invoiceLister{invoices: []*invoice.Invoice{inv("1000", invoice.StatusPaid, now)}},
		&projectLister{projects: []*project.Project{{Status: project.StatusActive}}},
		&contractLister{contracts: []*contract.Contract{{Status: contract.StatusActive}}},
		&meetingLister{meetings: []*meeting.Meeting{{Title: "Sync"}}},
	)

	got, err := svc.Dashboard(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 2, got.TotalClients)
	assert.True(t, d("1000").Equal(got.MonthlyRevenue))
	assert.Equal(t, 1, got.ActiveProjects)
	assert.Equal(t, 1, got.ContractsSigned)
	assert.Equal(t, 1, got.UpcomingMeetings)
}

func TestService_Dashboard_ListError(t *testing.T) {
	boom := errors.New("store offline")

	svc := report.NewService(
		&clientLister{err: boom},
		&invoiceLister{},
		&projectLister{},
		&contractLister{},
		&meetingLister{},
	)

	_, err := svc.Dashboard(context.Background(), now)
	assert.ErrorIs(t, err, boom)
}

func TestService_InvoiceSummary_PassesFilter(t *testing.T) {
	invoices := &invoiceLister{invoices: []*invoice.Invoice{
		inv("600", invoice.StatusPaid, now),
		inv("400", invoice.StatusUnpaid, now),
	}}

	svc := report.NewService(&clientLister{}, invoices, &projectLister{}, &contractLister{}, &meetingLister{})

	got, err := svc.InvoiceSummary(context.Background(), invoice.ListFilter{Status: string(invoice.StatusPaid)})
	require.NoError(t, err)

	assert.Equal(t, string(invoice.StatusPaid), invoices.filter.Status)
	assert.Equal(t, 2, got.Count)
	assert.True(t, d("60").Equal(got.CollectionRate), "got %s", got.CollectionRate)
}

func TestService_Revenue(t *testing.T) {
	svc := report.NewService(
		&clientLister{},
		&invoiceLister{invoices: []*invoice.Invoice{inv("800", invoice.StatusPaid, now)}},
		&projectLister{},
		&contractLister{},
		&meetingLister{},
	)

	points, err := svc.Revenue(context.Background(), now, 6)
	require.NoError(t, err)
	require.Len(t, points, 6)
	assert.True(t, d("800").Equal(points[5].Paid))
}

package project_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrwalden/clientdesk/internal/filter"
	"github.com/jrwalden/clientdesk/internal/project"
)

var now = time.Date(2025, 8, 16, 12, 0, 0, 0, time.UTC)

func sampleProjects() (projects []*project.Project, sarah uuid.UUID) {
	sarah = uuid.New()
	mike := uuid.New()

	projects = []*project.Project{
		{
			Name: "E-commerce Platform", ClientName: "TechCorp Solutions",
			Status: project.StatusActive, Priority: project.PriorityHigh, Progress: 75,
			Deadline:    time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
			TeamMembers: []uuid.UUID{sarah, mike},
		},
		{
			Name: "Mobile App Development", ClientName: "StartupXYZ",
			Status: project.StatusPlanning, Priority: project.PriorityMedium, Progress: 25,
			Deadline:    time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC),
			TeamMembers: []uuid.UUID{mike},
		},
		{
			Name: "Website Redesign", ClientName: "Digital Marketing Pro",
			Status: project.StatusActive, Priority: project.PriorityHigh, Progress: 40,
			Deadline:    time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC),
			TeamMembers: []uuid.UUID{sarah},
		},
		{
			Name: "Brand Identity Package", ClientName: "Creative Agency Inc",
			Status: project.StatusCompleted, Priority: project.PriorityLow, Progress: 100,
			Deadline: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	return projects, sarah
}

func names(ps []*project.Project) []string {
	var out []string
	for _, p := range ps {
		out = append(out, p.Name)
	}

	return out
}

func TestFilter_Neutral(t *testing.T) {
	projects, _ := sampleProjects()

	got := project.Filter(projects, project.ListFilter{}, now)

	assert.Equal(t, names(projects), names(got))
}

func TestFilter_StatusAndPriority(t *testing.T) {
	projects, _ := sampleProjects()

	got := project.Filter(projects, project.ListFilter{Status: "Active", Priority: "High"}, now)

	assert.Equal(t, []string{"E-commerce Platform", "Website Redesign"}, names(got))
}

func TestFilter_TeamMember(t *testing.T) {
	projects, sarah := sampleProjects()

	got := project.Filter(projects, project.ListFilter{TeamMember: &sarah}, now)

	assert.Equal(t, []string{"E-commerce Platform", "Website Redesign"}, names(got))
}

func TestFilter_OverdueDeadline(t *testing.T) {
	projects, _ := sampleProjects()

	got := project.Filter(projects, project.ListFilter{Bucket: filter.BucketOverdue}, now)

	assert.Equal(t, []string{"Website Redesign", "Brand Identity Package"}, names(got))
}

func TestFilter_SearchMatchesClient(t *testing.T) {
	projects, _ := sampleProjects()

	got := project.Filter(projects, project.ListFilter{Search: "techcorp"}, now)

	require.Len(t, got, 1)
	assert.Equal(t, "E-commerce Platform", got[0].Name)
}

func TestFilter_SortByProgress(t *testing.T) {
	projects, _ := sampleProjects()

	got := project.Filter(projects, project.ListFilter{SortBy: "progress", SortOrder: filter.Desc}, now)

	assert.Equal(t, []string{"Brand Identity Package", "E-commerce Platform", "Website Redesign", "Mobile App Development"}, names(got))
}

func TestTasksByStatus(t *testing.T) {
	tasks := []project.Task{
		{Title: "a", Status: project.TaskTodo},
		{Title: "b", Status: project.TaskInProgress},
		{Title: "c", Status: project.TaskTodo},
	}

	cols := project.TasksByStatus(tasks)

	require.Len(t, cols[project.TaskTodo], 2)
	assert.Equal(t, "a", cols[project.TaskTodo][0].Title)
	assert.Equal(t, "c", cols[project.TaskTodo][1].Title)
	assert.Len(t, cols[project.TaskInProgress], 1)
	assert.Empty(t, cols[project.TaskReview])
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/lszabadkai/quarterback/internal/repository"
	"github.com/lszabadkai/quarterback/internal/testutil"
	"github.com/lszabadkai/quarterback/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectService(t *testing.T) (ProjectService, *repository.SQLitePersonRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewProjectService(repository.NewSQLiteProjectRepo(db)), repository.NewSQLitePersonRepo(db)
}

func mustAddPerson(t *testing.T, people *repository.SQLitePersonRepo, name string) string {
	t.Helper()
	p := testutil.NewTestPerson(name)
	require.NoError(t, people.Create(context.Background(), p))
	return p.ID
}

func TestProjectService_CreateFillsDefaults(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	p := &domain.Project{Name: "Search revamp", IceImpact: 12, IceEffort: -3}
	require.NoError(t, svc.Create(ctx, p))

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.StatusPlanned, p.Status)
	assert.Equal(t, domain.ConfidenceMedium, p.Confidence)
	// ICE inputs clamp into [1, 10].
	assert.Equal(t, 10.0, p.IceImpact)
	assert.Equal(t, 1.0, p.IceEffort)
}

func TestProjectService_CreateRejectsBadStatus(t *testing.T) {
	svc, _ := newProjectService(t)

	p := &domain.Project{Name: "Bad", Status: "cancelled"}
	err := svc.Create(context.Background(), p)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestProjectService_ApplyTimelineMovesDates(t *testing.T) {
	svc, people := newProjectService(t)
	ctx := context.Background()

	dev := mustAddPerson(t, people, "Alice")
	start := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	p := &domain.Project{Name: "Search revamp", Assignees: []string{dev},
		StartDate: start, EndDate: start.AddDate(0, 0, 10)}
	require.NoError(t, svc.Create(ctx, p))

	newStart := start.AddDate(0, 0, 3)
	newEnd := newStart.AddDate(0, 0, 10)
	require.NoError(t, svc.ApplyTimeline(ctx, p.ID, &newStart, &newEnd, nil))

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, newStart, got.StartDate)
	assert.Equal(t, newEnd, got.EndDate)
	assert.Equal(t, []string{dev}, got.Assignees)
}

func TestProjectService_ApplyTimelineReassignsLane(t *testing.T) {
	svc, people := newProjectService(t)
	ctx := context.Background()

	alice := mustAddPerson(t, people, "Alice")
	bob := mustAddPerson(t, people, "Bob")
	start := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	p := &domain.Project{Name: "Search revamp", Assignees: []string{alice},
		StartDate: start, EndDate: start.AddDate(0, 0, 10)}
	require.NoError(t, svc.Create(ctx, p))

	// Dates untouched, only the lane changes.
	err := svc.ApplyTimeline(ctx, p.ID, nil, nil, &timeline.Reassignment{From: alice, To: bob})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{bob}, got.Assignees)
	assert.Equal(t, start, got.StartDate)
}

func TestProjectService_ApplyTimelineReassignToExistingLaneDedupes(t *testing.T) {
	svc, people := newProjectService(t)
	ctx := context.Background()

	alice := mustAddPerson(t, people, "Alice")
	bob := mustAddPerson(t, people, "Bob")
	start := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	p := &domain.Project{Name: "Shared", Assignees: []string{alice, bob},
		StartDate: start, EndDate: start.AddDate(0, 0, 5)}
	require.NoError(t, svc.Create(ctx, p))

	err := svc.ApplyTimeline(ctx, p.ID, nil, nil, &timeline.Reassignment{From: alice, To: bob})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{bob}, got.Assignees)
}

func TestProjectService_ApplyTimelineRejectsInvertedRange(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	start := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	p := &domain.Project{Name: "Search revamp",
		StartDate: start, EndDate: start.AddDate(0, 0, 10)}
	require.NoError(t, svc.Create(ctx, p))

	bad := start.AddDate(0, 0, -5)
	err := svc.ApplyTimeline(ctx, p.ID, nil, &bad, nil)
	assert.Error(t, err)
}

func TestProjectService_UnscheduleKeepsAssignees(t *testing.T) {
	svc, people := newProjectService(t)
	ctx := context.Background()

	dev := mustAddPerson(t, people, "Alice")
	start := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	p := &domain.Project{Name: "Search revamp", Assignees: []string{dev},
		StartDate: start, EndDate: start.AddDate(0, 0, 10)}
	require.NoError(t, svc.Create(ctx, p))

	require.NoError(t, svc.Unschedule(ctx, p.ID))

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.Scheduled())
	assert.Equal(t, []string{dev}, got.Assignees)
}

func TestProjectService_PlaceFromBacklogDefaultsToOneWeek(t *testing.T) {
	svc, people := newProjectService(t)
	ctx := context.Background()

	dev := mustAddPerson(t, people, "Alice")
	p := &domain.Project{Name: "Backlog idea"}
	require.NoError(t, svc.Create(ctx, p))

	start := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.PlaceFromBacklog(ctx, p.ID, start, dev))

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, start, got.StartDate)
	assert.Equal(t, start.AddDate(0, 0, 6), got.EndDate)
	assert.Equal(t, []string{dev}, got.Assignees)

	// Placing an already scheduled project is refused.
	err = svc.PlaceFromBacklog(ctx, p.ID, start, dev)
	assert.Error(t, err)
}

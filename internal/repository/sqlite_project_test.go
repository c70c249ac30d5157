package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/lszabadkai/quarterback/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPeople(t *testing.T, repo *SQLitePersonRepo, names ...string) []string {
	t.Helper()
	ctx := context.Background()
	ids := make([]string, len(names))
	for i, name := range names {
		p := testutil.NewTestPerson(name)
		require.NoError(t, repo.Create(ctx, p))
		ids[i] = p.ID
	}
	return ids
}

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	people := NewSQLitePersonRepo(db)
	ctx := context.Background()

	ids := seedPeople(t, people, "Alice", "Bob")
	start := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	proj := testutil.NewTestProject("Search revamp",
		testutil.WithDates(start, end),
		testutil.WithAssignees(ids...),
		testutil.WithICE(8, 5, 4),
	)
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "Search revamp", fetched.Name)
	assert.Equal(t, domain.StatusPlanned, fetched.Status)
	assert.Equal(t, start, fetched.StartDate)
	assert.Equal(t, end, fetched.EndDate)
	assert.Equal(t, ids, fetched.Assignees)

	score, ok := fetched.IceScore()
	require.True(t, ok)
	assert.Equal(t, 10.0, score)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestProjectRepo_UnscheduledDatesRoundTripAsZero(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Backlog idea")
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.True(t, fetched.StartDate.IsZero())
	assert.True(t, fetched.EndDate.IsZero())
	assert.False(t, fetched.Scheduled())
}

func TestProjectRepo_ListScheduledAndBacklogSplit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	start := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	scheduled := testutil.NewTestProject("On board",
		testutil.WithDates(start, start.AddDate(0, 0, 10)))
	weak := testutil.NewTestProject("Weak idea", testutil.WithICE(2, 2, 4))
	strong := testutil.NewTestProject("Strong idea", testutil.WithICE(9, 8, 2))
	require.NoError(t, repo.Create(ctx, scheduled))
	require.NoError(t, repo.Create(ctx, weak))
	require.NoError(t, repo.Create(ctx, strong))

	onBoard, err := repo.ListScheduled(ctx)
	require.NoError(t, err)
	require.Len(t, onBoard, 1)
	assert.Equal(t, scheduled.ID, onBoard[0].ID)

	// Backlog ordered by ICE score descending.
	backlog, err := repo.ListBacklog(ctx)
	require.NoError(t, err)
	require.Len(t, backlog, 2)
	assert.Equal(t, strong.ID, backlog[0].ID)
	assert.Equal(t, weak.ID, backlog[1].ID)
}

func TestProjectRepo_UpdateReplacesAssignees(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	people := NewSQLitePersonRepo(db)
	ctx := context.Background()

	ids := seedPeople(t, people, "Alice", "Bob", "Carol")
	proj := testutil.NewTestProject("Search revamp", testutil.WithAssignees(ids[0], ids[1]))
	require.NoError(t, repo.Create(ctx, proj))

	proj.Assignees = []string{ids[2]}
	proj.Status = domain.StatusInProgress
	proj.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{ids[2]}, fetched.Assignees)
	assert.Equal(t, domain.StatusInProgress, fetched.Status)
}

func TestProjectRepo_Update_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	ghost := testutil.NewTestProject("Ghost")
	err := repo.Update(context.Background(), ghost)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestProjectRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Doomed")
	require.NoError(t, repo.Create(ctx, proj))
	require.NoError(t, repo.Delete(ctx, proj.ID))

	_, err := repo.GetByID(ctx, proj.ID)
	assert.Error(t, err)
}

package capacity

import (
	"testing"
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBudget_Defaults(t *testing.T) {
	b := ComputeBudget(DefaultSettings())

	assert.Equal(t, 450.0, b.Theoretical)
	assert.Equal(t, 90.0, b.TimeOff)
	assert.Equal(t, 135.0, b.Reserves)
	assert.Equal(t, 225.0, b.Net)
}

func TestComputeBudget_ZeroTeam(t *testing.T) {
	b := ComputeBudget(Settings{})
	assert.Equal(t, 0.0, b.Theoretical)
	assert.Equal(t, 0.0, b.Net)
}

func TestMemberBreakdowns(t *testing.T) {
	eu := &domain.Region{ID: "eu", Name: "EU", PTODays: 25, Holidays: 10}
	eng := &domain.Role{ID: "eng", Name: "Engineer", FocusPct: 80}

	alice := &domain.Person{ID: "alice", Name: "Alice", RegionID: "eu", RoleID: "eng"}
	bob := &domain.Person{ID: "bob", Name: "Bob"}

	start := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	shared := &domain.Project{
		ID:           "p1",
		Assignees:    []string{"alice", "bob"},
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 10),
		EstimateDays: 20,
	}
	solo := &domain.Project{
		ID:           "p2",
		Assignees:    []string{"alice"},
		EstimateDays: 5,
	}

	members := MemberBreakdowns(
		[]*domain.Person{alice, bob},
		[]*domain.Region{eu},
		[]*domain.Role{eng},
		[]*domain.Project{shared, solo},
	)
	require.Len(t, members, 2)

	// Alice: 80% focus of 90 days, 35 days off, 10 shared + 5 solo committed.
	a := members[0]
	assert.Equal(t, 72.0, a.Gross)
	assert.Equal(t, 35.0, a.TimeOff)
	assert.Equal(t, 37.0, a.Available)
	assert.Equal(t, 15.0, a.Committed)
	assert.InDelta(t, 40.5, a.Utilization(), 0.1)

	// Bob: no region or role, full budget.
	b := members[1]
	assert.Equal(t, 90.0, b.Gross)
	assert.Equal(t, 0.0, b.TimeOff)
	assert.Equal(t, 10.0, b.Committed)
}

func TestMemberBreakdowns_OverbookedTimeOffFloorsAtZero(t *testing.T) {
	region := &domain.Region{ID: "r", PTODays: 80, Holidays: 20}
	p := &domain.Person{ID: "x", Name: "X", RegionID: "r"}

	members := MemberBreakdowns([]*domain.Person{p}, []*domain.Region{region}, nil, nil)
	require.Len(t, members, 1)
	assert.Equal(t, 0.0, members[0].Available)
	assert.Equal(t, 0.0, members[0].Utilization())
}

func TestTotalCommitted_CountsOnlyScheduled(t *testing.T) {
	start := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	scheduled := &domain.Project{ID: "a", StartDate: start, EndDate: start.AddDate(0, 0, 5), EstimateDays: 12}
	backlog := &domain.Project{ID: "b", EstimateDays: 40}

	assert.Equal(t, 12.0, TotalCommitted([]*domain.Project{scheduled, backlog}))
}

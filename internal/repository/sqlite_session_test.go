package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/alexanderramin/tomate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	start := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	session := testutil.NewTestSession(
		testutil.WithStartAt(start),
		testutil.WithState(domain.StateRunning),
		testutil.WithPlannedMinutes(45),
	)
	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindFocus, got.Kind)
	assert.Equal(t, domain.StateRunning, got.State)
	assert.True(t, got.StartAt.Equal(start))
	assert.Equal(t, 45, got.PlannedMinutes)
	assert.Equal(t, "2026-03-10", got.Date)
	assert.Nil(t, got.EndAt)
	assert.Nil(t, got.ActualMinutes)
	assert.Nil(t, got.TaskID)
}

func TestSessionRepo_Update_NullableFields(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	session := testutil.NewTestSession(testutil.WithState(domain.StateRunning))
	require.NoError(t, repo.Create(ctx, session))

	end := session.StartAt.Add(25 * time.Minute)
	actual := 25
	session.EndAt = &end
	session.ActualMinutes = &actual
	session.State = domain.StateCompleted
	require.NoError(t, repo.Update(ctx, session))

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EndAt)
	assert.True(t, got.EndAt.Equal(end))
	require.NotNil(t, got.ActualMinutes)
	assert.Equal(t, 25, *got.ActualMinutes)
	assert.Equal(t, domain.StateCompleted, got.State)
}

func TestSessionRepo_ListRange_Ordering(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	late := testutil.NewTestSession(testutil.WithStartAt(day.Add(15 * time.Hour)))
	early := testutil.NewTestSession(testutil.WithStartAt(day.Add(9 * time.Hour)))
	nextDay := testutil.NewTestSession(testutil.WithStartAt(day.Add(33 * time.Hour)))
	outside := testutil.NewTestSession(testutil.WithStartAt(day.AddDate(0, 0, 7)))
	for _, s := range []*domain.Session{late, early, nextDay, outside} {
		require.NoError(t, repo.Create(ctx, s))
	}

	got, err := repo.ListRange(ctx, "2026-03-10", "2026-03-11")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, early.ID, got[0].ID, "start ascending within range")
	assert.Equal(t, late.ID, got[1].ID)
	assert.Equal(t, nextDay.ID, got[2].ID)
}

func TestSessionRepo_NextPlannedFocus(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	current := testutil.NewTestSession(testutil.WithStartAt(day.Add(9 * time.Hour)))
	second := testutil.NewTestSession(testutil.WithStartAt(day.Add(10 * time.Hour)))
	third := testutil.NewTestSession(testutil.WithStartAt(day.Add(11 * time.Hour)))
	running := testutil.NewTestSession(
		testutil.WithStartAt(day.Add(8*time.Hour)),
		testutil.WithState(domain.StateRunning),
	)
	breakSession := testutil.NewTestSession(
		testutil.WithStartAt(day.Add(9*time.Hour+30*time.Minute)),
		testutil.WithKind(domain.KindBreak),
	)
	for _, s := range []*domain.Session{current, second, third, running, breakSession} {
		require.NoError(t, repo.Create(ctx, s))
	}

	// Excluding the current session, the earliest planned focus is "second";
	// the running and break sessions never qualify.
	next, err := repo.NextPlannedFocus(ctx, "2026-03-10", current.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, next.ID)

	_, err = repo.NextPlannedFocus(ctx, "2026-03-11", current.ID)
	assert.True(t, IsNotFound(err))
}

func TestSessionRepo_AnyRunning(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	running, err := repo.AnyRunning(ctx, domain.KindFocus)
	require.NoError(t, err)
	assert.False(t, running)

	session := testutil.NewTestSession(testutil.WithState(domain.StateRunning))
	require.NoError(t, repo.Create(ctx, session))

	running, err = repo.AnyRunning(ctx, domain.KindFocus)
	require.NoError(t, err)
	assert.True(t, running)

	running, err = repo.AnyRunning(ctx, domain.KindBreak)
	require.NoError(t, err)
	assert.False(t, running, "kinds are counted separately")
}

func TestSessionRepo_DeleteByDateVariants(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	planned := testutil.NewTestSession(testutil.WithStartAt(day.Add(9 * time.Hour)))
	completed := testutil.NewTestSession(
		testutil.WithStartAt(day.Add(10*time.Hour)),
		testutil.WithState(domain.StateCompleted),
	)
	otherDay := testutil.NewTestSession(testutil.WithStartAt(day.AddDate(0, 0, 1)))
	for _, s := range []*domain.Session{planned, completed, otherDay} {
		require.NoError(t, repo.Create(ctx, s))
	}

	require.NoError(t, repo.DeletePlannedByDate(ctx, "2026-03-10"))
	_, err := repo.GetByID(ctx, planned.ID)
	assert.True(t, IsNotFound(err))
	_, err = repo.GetByID(ctx, completed.ID)
	assert.NoError(t, err, "history survives a planned-only delete")

	require.NoError(t, repo.DeleteNonPlannedByDate(ctx, "2026-03-10"))
	_, err = repo.GetByID(ctx, completed.ID)
	assert.True(t, IsNotFound(err))

	_, err = repo.GetByID(ctx, otherDay.ID)
	assert.NoError(t, err, "other dates are untouched")

	require.NoError(t, repo.DeleteByDate(ctx, "2026-03-11"))
	_, err = repo.GetByID(ctx, otherDay.ID)
	assert.True(t, IsNotFound(err))
}

func TestSessionRepo_ListAll(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	b := testutil.NewTestSession(testutil.WithStartAt(day.Add(10 * time.Hour)))
	a := testutil.NewTestSession(testutil.WithStartAt(day.Add(9 * time.Hour)))
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Create(ctx, a))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, b.ID, all[1].ID)
}

package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/tomate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyStateRepo_GetOrCreate(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDailyStateRepo(database)
	ctx := context.Background()

	state, err := repo.GetOrCreate(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", state.Date)
	assert.Equal(t, 0, state.PauseDueMinutes)

	require.NoError(t, repo.SetPauseDue(ctx, "2026-03-10", 15))

	again, err := repo.GetOrCreate(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 15, again.PauseDueMinutes, "existing balance survives a repeat get")
}

func TestDailyStateRepo_SetPauseDue_FloorsAtZero(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDailyStateRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.SetPauseDue(ctx, "2026-03-10", -5))

	state, err := repo.GetOrCreate(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 0, state.PauseDueMinutes)
}

func TestDailyStateRepo_List(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDailyStateRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.SetPauseDue(ctx, "2026-03-11", 5))
	require.NoError(t, repo.SetPauseDue(ctx, "2026-03-10", 10))

	states, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "2026-03-10", states[0].Date, "date ascending")
	assert.Equal(t, "2026-03-11", states[1].Date)
}

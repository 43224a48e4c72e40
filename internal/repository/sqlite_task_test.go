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

func TestTaskRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("Write report",
		testutil.WithEstimate(3),
		testutil.WithTaskNote("due friday"),
	)
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, 3, got.EstimatePomodoros)
	assert.Equal(t, "due friday", got.Note)
	assert.Equal(t, domain.TaskActive, got.Status)
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestTaskRepo_List_OrderAndFilter(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	older := testutil.NewTestTask("Older")
	older.CreatedAt = base
	older.UpdatedAt = base
	require.NoError(t, repo.Create(ctx, older))

	newer := testutil.NewTestTask("Newer", testutil.WithTaskStatus(domain.TaskDone))
	newer.CreatedAt = base.Add(time.Hour)
	newer.UpdatedAt = base.Add(time.Hour)
	require.NoError(t, repo.Create(ctx, newer))

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Newer", all[0].Title, "newest first")
	assert.Equal(t, "Older", all[1].Title)

	active := domain.TaskActive
	filtered, err := repo.List(ctx, &active)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Older", filtered[0].Title)
}

func TestTaskRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("Draft")
	require.NoError(t, repo.Create(ctx, task))

	task.Title = "Final"
	task.Status = domain.TaskDone
	task.EstimatePomodoros = 5
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, domain.TaskDone, got.Status)
	assert.Equal(t, 5, got.EstimatePomodoros)
}

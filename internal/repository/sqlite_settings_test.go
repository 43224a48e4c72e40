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

func defaultSettings() *domain.Settings {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	return &domain.Settings{
		Dayparts:             domain.DefaultDayparts(),
		DefaultFocusMinutes:  domain.DefaultFocusMinutes,
		DefaultBreakMinutes:  domain.DefaultBreakMinutes,
		NotificationsEnabled: true,
		SoundEnabled:         true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func TestSettingsRepo_GetBeforeInsert(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)

	_, err := repo.Get(context.Background())
	assert.True(t, IsNotFound(err))
}

func TestSettingsRepo_InsertIsIdempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)
	ctx := context.Background()

	created, err := repo.Insert(ctx, defaultSettings())
	require.NoError(t, err)
	assert.True(t, created)

	second := defaultSettings()
	second.DefaultFocusMinutes = 99
	created, err = repo.Insert(ctx, second)
	require.NoError(t, err)
	assert.False(t, created, "second insert is ignored")

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultFocusMinutes, got.DefaultFocusMinutes, "first insert wins")
	assert.Equal(t, 1, got.ID)
	assert.Len(t, got.Dayparts, 3)
	assert.Equal(t, "Matin", got.Dayparts[0].Name)
}

func TestSettingsRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)
	ctx := context.Background()

	_, err := repo.Insert(ctx, defaultSettings())
	require.NoError(t, err)

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	s.DefaultFocusMinutes = 50
	s.Dayparts = []domain.Daypart{{Name: "Journee", Start: "08:00", End: "20:00"}}
	s.SoundEnabled = false
	s.UpdatedAt = s.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, s))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, got.DefaultFocusMinutes)
	require.Len(t, got.Dayparts, 1)
	assert.Equal(t, "Journee", got.Dayparts[0].Name)
	assert.False(t, got.SoundEnabled)
}

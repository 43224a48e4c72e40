package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyStateService_Get_DefaultsToToday(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	state, err := env.dailySvc.Get(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", state.Date, "empty date resolves to the clock's today")
	assert.Equal(t, 0, state.PauseDueMinutes)
}

func TestDailyStateService_Get_ExplicitDate(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	require.NoError(t, env.daily.SetPauseDue(ctx, "2026-03-09", 15))

	state, err := env.dailySvc.Get(ctx, "2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, 15, state.PauseDueMinutes)
}

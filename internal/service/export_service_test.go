package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/alexanderramin/tomate/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportService(env *testEnv) ExportService {
	return NewExportService(env.db, env.settings, env.tasks, env.sessions, env.cards, env.uses, env.daily)
}

func TestExportService_WriteJSON(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.settingsSvc.Get(ctx)
	require.NoError(t, err)
	_, err = env.taskSvc.Create(ctx, CreateTaskInput{Title: "Read", EstimatePomodoros: 2})
	require.NoError(t, err)
	_, err = env.sessionSvc.Start(ctx, StartSessionInput{Kind: domain.KindFocus})
	require.NoError(t, err)

	cards, err := env.pauseSvc.ListWithRemaining(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, cards)
	_, err = env.pauseSvc.Consume(ctx, cards[0].Card.ID, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dump.json")
	require.NoError(t, newExportService(env).WriteJSON(ctx, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var dump export.Dump
	require.NoError(t, json.Unmarshal(data, &dump))
	require.NotNil(t, dump.Settings)
	assert.Len(t, dump.Tasks, 1)
	assert.Len(t, dump.Sessions, 2, "the focus session and the consumed break")
	assert.Len(t, dump.PauseCards, 4, "default cards appear in the dump")
	require.Len(t, dump.PauseCardUses, 1)
	assert.Equal(t, cards[0].Card.ID, dump.PauseCardUses[0].PauseCardID)
	assert.NotEmpty(t, dump.ExportedAt)
}

func TestExportService_WriteJSON_EmptyStore(t *testing.T) {
	env := setupServices(t)

	path := filepath.Join(t.TempDir(), "dump.json")
	require.NoError(t, newExportService(env).WriteJSON(context.Background(), path))

	var dump export.Dump
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &dump))
	assert.Nil(t, dump.Settings, "settings are omitted before first use")
	assert.Empty(t, dump.Tasks)
	assert.Contains(t, string(data), `"pause_card_uses"`, "the use ledger is present even when empty")
}

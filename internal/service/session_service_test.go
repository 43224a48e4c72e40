package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/alexanderramin/tomate/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Start_DefaultsFromSettings(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	session, err := env.sessionSvc.Start(ctx, StartSessionInput{Kind: domain.KindFocus})
	require.NoError(t, err)
	assert.Equal(t, domain.StateRunning, session.State)
	assert.Equal(t, domain.DefaultFocusMinutes, session.PlannedMinutes)
	assert.Equal(t, "2026-03-10", session.Date)
	assert.Equal(t, "Matin", session.DaypartName, "9:30 falls in the morning window")
	assert.True(t, session.StartAt.Equal(testNow))
}

func TestSessionService_Start_ExplicitMinutesAndTask(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	task, err := env.taskSvc.Create(ctx, CreateTaskInput{Title: "Read", EstimatePomodoros: 2})
	require.NoError(t, err)

	session, err := env.sessionSvc.Start(ctx, StartSessionInput{
		Kind:    domain.KindFocus,
		TaskID:  &task.ID,
		Minutes: intPtr(25),
		Title:   strPtr("Morning block"),
	})
	require.NoError(t, err)
	assert.Equal(t, 25, session.PlannedMinutes)
	assert.Equal(t, "Morning block", session.Title)
	require.NotNil(t, session.TaskID)
	assert.Equal(t, task.ID, *session.TaskID)
}

func TestSessionService_Start_RejectsBreaks(t *testing.T) {
	env := setupServices(t)

	_, err := env.sessionSvc.Start(context.Background(), StartSessionInput{Kind: domain.KindBreak})
	assert.ErrorIs(t, err, domain.ErrPolicyViolation)
}

func TestSessionService_Start_RejectsZeroMinutes(t *testing.T) {
	env := setupServices(t)

	_, err := env.sessionSvc.Start(context.Background(), StartSessionInput{
		Kind:    domain.KindFocus,
		Minutes: intPtr(0),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_Start_SingleRunningFocus(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.sessionSvc.Start(ctx, StartSessionInput{Kind: domain.KindFocus})
	require.NoError(t, err)

	_, err = env.sessionSvc.Start(ctx, StartSessionInput{Kind: domain.KindFocus})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestSessionService_Plan(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	session, err := env.sessionSvc.Plan(ctx, PlanSessionInput{
		Kind:        domain.KindFocus,
		Date:        "2026-03-12",
		PlannedTime: "14:00",
		DaypartName: "Apres-midi",
		Minutes:     intPtr(30),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatePlanned, session.State)
	assert.Equal(t, "2026-03-12", session.Date)
	assert.Equal(t, "Apres-midi", session.DaypartName)
	assert.Equal(t, time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC), session.StartAt)
	assert.Equal(t, 30, session.PlannedMinutes)
}

func TestSessionService_Plan_Validation(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.sessionSvc.Plan(ctx, PlanSessionInput{
		Kind: domain.KindBreak, Date: "2026-03-12", PlannedTime: "14:00",
	})
	assert.ErrorIs(t, err, domain.ErrPolicyViolation)

	_, err = env.sessionSvc.Plan(ctx, PlanSessionInput{
		Kind: domain.KindFocus, Date: "2026-03-12", PlannedTime: "29:00",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_StartPlanned_RecomputesSnapshot(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	planned, err := env.sessionSvc.Plan(ctx, PlanSessionInput{
		Kind:        domain.KindFocus,
		Date:        "2026-03-15",
		PlannedTime: "14:00",
		DaypartName: "Apres-midi",
	})
	require.NoError(t, err)

	// Starting on the 10th at 9:30 discards the planned slot entirely.
	started, err := env.sessionSvc.StartPlanned(ctx, planned.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateRunning, started.State)
	assert.True(t, started.StartAt.Equal(testNow))
	assert.Equal(t, "2026-03-10", started.Date)
	assert.Equal(t, "Matin", started.DaypartName)
}

func TestSessionService_StartPlanned_Guards(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	planned, err := env.sessionSvc.Plan(ctx, PlanSessionInput{
		Kind: domain.KindFocus, Date: "2026-03-10", PlannedTime: "15:00",
	})
	require.NoError(t, err)

	running, err := env.sessionSvc.Start(ctx, StartSessionInput{Kind: domain.KindFocus})
	require.NoError(t, err)

	_, err = env.sessionSvc.StartPlanned(ctx, planned.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "another focus session is running")

	_, err = env.sessionSvc.StartPlanned(ctx, running.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "only planned sessions can begin")
}

func TestSessionService_Stop_LogsAtLeastOneMinute(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	session, err := env.sessionSvc.Start(ctx, StartSessionInput{Kind: domain.KindFocus})
	require.NoError(t, err)

	env.clock.Advance(10 * time.Second)

	stopped, err := env.sessionSvc.Stop(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompleted, stopped.State)
	require.NotNil(t, stopped.ActualMinutes)
	assert.Equal(t, 1, *stopped.ActualMinutes, "sub-minute sessions floor to one")
	require.NotNil(t, stopped.EndAt)
}

func TestSessionService_Stop_RoundsToNearestMinute(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	session, err := env.sessionSvc.Start(ctx, StartSessionInput{Kind: domain.KindFocus})
	require.NoError(t, err)

	env.clock.Advance(24*time.Minute + 40*time.Second)

	stopped, err := env.sessionSvc.Stop(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, stopped.ActualMinutes)
	assert.Equal(t, 25, *stopped.ActualMinutes)
}

func TestSessionService_Stop_RequiresRunning(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	planned, err := env.sessionSvc.Plan(ctx, PlanSessionInput{
		Kind: domain.KindFocus, Date: "2026-03-10", PlannedTime: "15:00",
	})
	require.NoError(t, err)

	_, err = env.sessionSvc.Stop(ctx, planned.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestSessionService_Skip(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	session, err := env.sessionSvc.Start(ctx, StartSessionInput{Kind: domain.KindFocus})
	require.NoError(t, err)

	skipped, err := env.sessionSvc.Skip(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateSkipped, skipped.State)
	require.NotNil(t, skipped.ActualMinutes)
	assert.Equal(t, 0, *skipped.ActualMinutes, "skipping logs no time")

	_, err = env.sessionSvc.Skip(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "terminal sessions cannot be skipped again")
}

func TestSessionService_Adjust_FloorsAtOne(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	session, err := env.sessionSvc.Start(ctx, StartSessionInput{
		Kind: domain.KindFocus, Minutes: intPtr(25),
	})
	require.NoError(t, err)

	adjusted, err := env.sessionSvc.Adjust(ctx, session.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 35, adjusted.PlannedMinutes)

	adjusted, err = env.sessionSvc.Adjust(ctx, session.ID, -100)
	require.NoError(t, err)
	assert.Equal(t, 1, adjusted.PlannedMinutes, "large negative deltas floor at one")

	got, err := env.sessions.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PlannedMinutes, "the adjustment is committed")
}

func TestSessionService_Reset_DeletesPlanned(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	planned, err := env.sessionSvc.Plan(ctx, PlanSessionInput{
		Kind: domain.KindFocus, Date: "2026-03-10", PlannedTime: "15:00",
	})
	require.NoError(t, err)

	outcome, err := env.sessionSvc.Reset(ctx, planned.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Deleted)

	_, err = env.sessions.GetByID(ctx, planned.ID)
	assert.True(t, repository.IsNotFound(err))
}

func TestSessionService_Reset_AbortsRunning(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	session, err := env.sessionSvc.Start(ctx, StartSessionInput{Kind: domain.KindFocus})
	require.NoError(t, err)

	outcome, err := env.sessionSvc.Reset(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, outcome.Deleted)
	assert.Equal(t, domain.StateAborted, outcome.Session.State)
	require.NotNil(t, outcome.Session.ActualMinutes)
	assert.Equal(t, 0, *outcome.Session.ActualMinutes)
}

func TestSessionService_Update_PlannedTimeUsesPatchedDate(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	planned, err := env.sessionSvc.Plan(ctx, PlanSessionInput{
		Kind: domain.KindFocus, Date: "2026-03-10", PlannedTime: "15:00",
	})
	require.NoError(t, err)

	// Moving date and time together rebuilds StartAt from the new date.
	updated, err := env.sessionSvc.Update(ctx, planned.ID, domain.SessionPatch{
		Date:        strPtr("2026-03-12"),
		PlannedTime: strPtr("08:15"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-12", updated.Date)
	assert.Equal(t, time.Date(2026, 3, 12, 8, 15, 0, 0, time.UTC), updated.StartAt)
}

func TestSessionService_Update_DetachesTask(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	task, err := env.taskSvc.Create(ctx, CreateTaskInput{Title: "Read", EstimatePomodoros: 1})
	require.NoError(t, err)

	session, err := env.sessionSvc.Start(ctx, StartSessionInput{
		Kind: domain.KindFocus, TaskID: &task.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, session.TaskID)

	// An empty patch must not drop the reference.
	updated, err := env.sessionSvc.Update(ctx, session.ID, domain.SessionPatch{})
	require.NoError(t, err)
	require.NotNil(t, updated.TaskID)

	updated, err = env.sessionSvc.Update(ctx, session.ID, domain.SessionPatch{ClearTaskID: true})
	require.NoError(t, err)
	assert.Nil(t, updated.TaskID)

	got, err := env.sessions.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, got.TaskID, "the detach is persisted")
}

func TestSessionService_Update_Validation(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	planned, err := env.sessionSvc.Plan(ctx, PlanSessionInput{
		Kind: domain.KindFocus, Date: "2026-03-10", PlannedTime: "15:00",
	})
	require.NoError(t, err)

	_, err = env.sessionSvc.Update(ctx, planned.ID, domain.SessionPatch{
		PlannedMinutes: intPtr(0),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.sessionSvc.Update(ctx, planned.ID, domain.SessionPatch{
		PlannedTime: strPtr("27:00"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_List(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.sessionSvc.Plan(ctx, PlanSessionInput{
		Kind: domain.KindFocus, Date: "2026-03-10", PlannedTime: "15:00",
	})
	require.NoError(t, err)
	_, err = env.sessionSvc.Plan(ctx, PlanSessionInput{
		Kind: domain.KindFocus, Date: "2026-03-12", PlannedTime: "09:00",
	})
	require.NoError(t, err)

	sessions, err := env.sessionSvc.List(ctx, "2026-03-10", "2026-03-11")
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

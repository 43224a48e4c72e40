package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tomate/internal/cli/formatter"
	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/alexanderramin/tomate/internal/service"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage focus and break sessions",
	}

	cmd.AddCommand(
		newSessionListCmd(app),
		newSessionStartCmd(app),
		newSessionPlanCmd(app),
		newSessionBeginCmd(app),
		newSessionStopCmd(app),
		newSessionSkipCmd(app),
		newSessionAdjustCmd(app),
		newSessionResetCmd(app),
		newSessionResetDayCmd(app),
		newSessionMergeCmd(app),
		newSessionEditCmd(app),
		newSessionTimerCmd(app),
	)

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var from, to, date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions in a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := resolveListRange(date, from, to, time.Now())
			if err != nil {
				return err
			}

			sessions, err := app.Sessions.List(context.Background(), from, to)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}

			headers := []string{"ID", "KIND", "TITLE", "START", "PLANNED", "ACTUAL", "STATE", "DAYPART"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				actual := "--"
				if s.ActualMinutes != nil {
					actual = formatter.FormatMinutes(*s.ActualMinutes)
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					formatter.KindBadge(s.Kind),
					formatter.Truncate(s.Title, 30),
					fmt.Sprintf("%s %s", s.Date, formatter.ClockTime(s.StartAt)),
					formatter.FormatMinutes(s.PlannedMinutes),
					actual,
					formatter.StatePill(s.State),
					formatter.Dim(s.DaypartName),
				})
			}

			fmt.Print(formatter.RenderBox("Sessions", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date, "Single date to list (overrides --from/--to)")
	cmd.Flags().StringVar(&from, "from", "", "Range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Range end date (YYYY-MM-DD)")

	return cmd
}

// resolveListRange turns the list flags into a closed date range. A single
// date wins over the range flags; no flags at all means today. Range bounds
// only work as a pair.
func resolveListRange(date, from, to string, now time.Time) (string, string, error) {
	if date != "" {
		return date, date, nil
	}
	if from == "" && to == "" {
		today := domain.DateOf(now)
		return today, today, nil
	}
	if from == "" || to == "" {
		return "", "", fmt.Errorf("--from and --to must be given together")
	}
	return from, to, nil
}

func newSessionStartCmd(app *App) *cobra.Command {
	var taskID, title string
	var minutes func() *int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a focus session now",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Sessions.Start(context.Background(), service.StartSessionInput{
				Kind:    domain.KindFocus,
				TaskID:  optionalStr(cmd.Flags(), "task", &taskID),
				Minutes: minutes(),
				Title:   optionalStr(cmd.Flags(), "title", &title),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Started %s session for %s (%s)\n",
				session.Kind, formatter.FormatMinutes(session.PlannedMinutes), session.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&taskID, "task", "", "Task to attach")
	cmd.Flags().StringVar(&title, "title", "", "Session title")
	minutes = addMinutesFlag(cmd.Flags(), "Planned minutes (defaults to settings)")

	return cmd
}

func newSessionPlanCmd(app *App) *cobra.Command {
	var taskID, title, date, daypart, at string
	var minutes func() *int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Schedule a focus session for later",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Sessions.Plan(context.Background(), service.PlanSessionInput{
				Kind:        domain.KindFocus,
				TaskID:      optionalStr(cmd.Flags(), "task", &taskID),
				Minutes:     minutes(),
				Title:       optionalStr(cmd.Flags(), "title", &title),
				Date:        date,
				DaypartName: daypart,
				PlannedTime: at,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Planned session on %s at %s (%s)\n",
				session.Date, formatter.ClockTime(session.StartAt), session.ID)
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date, "Date to plan on (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "at", "", "Clock time (HH:MM)")
	cmd.Flags().StringVar(&daypart, "daypart", "", "Daypart label")
	cmd.Flags().StringVar(&taskID, "task", "", "Task to attach")
	cmd.Flags().StringVar(&title, "title", "", "Session title")
	minutes = addMinutesFlag(cmd.Flags(), "Planned minutes (defaults to settings)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newSessionBeginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "begin ID",
		Short: "Start a planned session now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Sessions.StartPlanned(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Started planned session %q for %s (%s)\n",
				session.Title, formatter.FormatMinutes(session.PlannedMinutes), session.ID)
			return nil
		},
	}
}

func newSessionStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop ID",
		Short: "Stop a running session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Sessions.Stop(context.Background(), args[0])
			if err != nil {
				return err
			}
			actual := 0
			if session.ActualMinutes != nil {
				actual = *session.ActualMinutes
			}
			fmt.Printf("Completed session after %s (%s)\n",
				formatter.FormatMinutes(actual), session.ID)
			return nil
		},
	}
}

func newSessionSkipCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skip ID",
		Short: "Skip a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Sessions.Skip(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Skipped session %s\n", session.ID)
			return nil
		},
	}
}

func newSessionAdjustCmd(app *App) *cobra.Command {
	var delta int

	cmd := &cobra.Command{
		Use:   "adjust ID",
		Short: "Add or remove planned minutes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Sessions.Adjust(context.Background(), args[0], delta)
			if err != nil {
				return err
			}
			fmt.Printf("Session %s now planned for %s\n",
				session.ID, formatter.FormatMinutes(session.PlannedMinutes))
			return nil
		},
	}

	cmd.Flags().IntVar(&delta, "minutes", 0, "Minutes to add (negative to remove)")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newSessionResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset ID",
		Short: "Reset a session (delete if planned, abort otherwise)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.Sessions.Reset(context.Background(), args[0])
			if err != nil {
				return err
			}
			if outcome.Deleted {
				fmt.Printf("Deleted planned session %s\n", args[0])
			} else {
				fmt.Printf("Aborted session %s\n", outcome.Session.ID)
			}
			return nil
		},
	}
}

func newSessionResetDayCmd(app *App) *cobra.Command {
	var date, mode string

	cmd := &cobra.Command{
		Use:   "reset-day",
		Short: "Bulk-reset a day's sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.ResetDay(context.Background(), date, domain.ResetMode(mode)); err != nil {
				return err
			}
			fmt.Printf("Reset %s sessions for %s\n", mode, date)
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date, "Date to reset (YYYY-MM-DD)")
	cmd.Flags().StringVar(&mode, "mode", "planned", "What to reset (planned, history, all)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newSessionMergeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "merge ID",
		Short: "Absorb the next planned focus session, skipping the break",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Sessions.MergeNext(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Merged next block: session %s now planned for %s; break debt recorded\n",
				session.ID, formatter.FormatMinutes(session.PlannedMinutes))
			return nil
		},
	}
}

func newSessionEditCmd(app *App) *cobra.Command {
	var note, daypart, date, taskID, title, at string
	var minutes int
	var noTask bool

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit session fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.SessionPatch{
				Note:           optionalStr(cmd.Flags(), "note", &note),
				DaypartName:    optionalStr(cmd.Flags(), "daypart", &daypart),
				Date:           optionalStr(cmd.Flags(), "date", &date),
				TaskID:         optionalStr(cmd.Flags(), "task", &taskID),
				ClearTaskID:    noTask,
				Title:          optionalStr(cmd.Flags(), "title", &title),
				PlannedTime:    optionalStr(cmd.Flags(), "at", &at),
				PlannedMinutes: optionalInt(cmd.Flags(), "minutes", &minutes),
			}

			session, err := app.Sessions.Update(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated session %s\n", session.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "New note")
	cmd.Flags().StringVar(&daypart, "daypart", "", "New daypart label")
	addDateFlag(cmd.Flags(), &date, "New date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&taskID, "task", "", "New task ID")
	cmd.Flags().BoolVar(&noTask, "no-task", false, "Detach the task")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&at, "at", "", "New clock time (HH:MM)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "New planned minutes")
	cmd.MarkFlagsMutuallyExclusive("task", "no-task")

	return cmd
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tomate/internal/cli/formatter"
	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change preferences",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsEditCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			s := view.Settings

			var b strings.Builder
			fmt.Fprintf(&b, "%s %s\n", formatter.Bold("Focus length:"), formatter.FormatMinutes(s.DefaultFocusMinutes))
			fmt.Fprintf(&b, "%s %s\n", formatter.Bold("Break length:"), formatter.FormatMinutes(s.DefaultBreakMinutes))
			fmt.Fprintf(&b, "%s %s\n", formatter.Bold("Notifications:"), onOff(s.NotificationsEnabled))
			fmt.Fprintf(&b, "%s %s\n\n", formatter.Bold("Sound:"), onOff(s.SoundEnabled))
			b.WriteString(formatter.Bold("Dayparts:") + "\n")
			for _, dp := range s.Dayparts {
				fmt.Fprintf(&b, "  %s %s\n", dp.Name, formatter.Dim(dp.Start+"–"+dp.End))
			}
			if view.NeedsSetup {
				b.WriteString("\n" + formatter.Dim("Defaults were just created; adjust them with 'tomate settings edit'."))
			}

			fmt.Print(formatter.RenderBox("Settings", b.String()))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var focus, breakMin int
	var notifications, sound bool
	var daypartSpecs []string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings from flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			view, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			upd := domain.SettingsUpdate{
				Dayparts:             view.Settings.Dayparts,
				DefaultFocusMinutes:  view.Settings.DefaultFocusMinutes,
				DefaultBreakMinutes:  view.Settings.DefaultBreakMinutes,
				NotificationsEnabled: view.Settings.NotificationsEnabled,
				SoundEnabled:         view.Settings.SoundEnabled,
			}
			if cmd.Flags().Changed("focus-minutes") {
				upd.DefaultFocusMinutes = focus
			}
			if cmd.Flags().Changed("break-minutes") {
				upd.DefaultBreakMinutes = breakMin
			}
			if cmd.Flags().Changed("notifications") {
				upd.NotificationsEnabled = notifications
			}
			if cmd.Flags().Changed("sound") {
				upd.SoundEnabled = sound
			}
			if len(daypartSpecs) > 0 {
				dayparts, err := parseDaypartSpecs(daypartSpecs)
				if err != nil {
					return err
				}
				upd.Dayparts = dayparts
			}

			if _, err := app.Settings.Update(ctx, upd); err != nil {
				return err
			}
			fmt.Println("Settings updated.")
			return nil
		},
	}

	cmd.Flags().IntVar(&focus, "focus-minutes", 0, "Default focus length in minutes")
	cmd.Flags().IntVar(&breakMin, "break-minutes", 0, "Default break length in minutes")
	cmd.Flags().BoolVar(&notifications, "notifications", false, "Enable notifications")
	cmd.Flags().BoolVar(&sound, "sound", false, "Enable sound")
	cmd.Flags().StringArrayVar(&daypartSpecs, "daypart", nil,
		`Daypart window as "Name=HH:MM-HH:MM" (repeatable, replaces all)`)

	return cmd
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit settings interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("settings edit needs an interactive terminal; use 'tomate settings set' instead")
			}

			ctx := context.Background()
			view, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			s := view.Settings

			focusStr := strconv.Itoa(s.DefaultFocusMinutes)
			breakStr := strconv.Itoa(s.DefaultBreakMinutes)
			notifications := s.NotificationsEnabled
			sound := s.SoundEnabled

			starts := make([]string, len(s.Dayparts))
			ends := make([]string, len(s.Dayparts))
			daypartFields := make([]huh.Field, 0, len(s.Dayparts)*2)
			for i, dp := range s.Dayparts {
				starts[i] = dp.Start
				ends[i] = dp.End
				daypartFields = append(daypartFields,
					huh.NewInput().Title(dp.Name+" start (HH:MM)").Value(&starts[i]),
					huh.NewInput().Title(dp.Name+" end (HH:MM)").Value(&ends[i]),
				)
			}

			groups := []*huh.Group{
				huh.NewGroup(
					huh.NewInput().Title("Focus length (min)").Value(&focusStr),
					huh.NewInput().Title("Break length (min)").Value(&breakStr),
					huh.NewConfirm().Title("Notifications").Value(&notifications),
					huh.NewConfirm().Title("Sound").Value(&sound),
				).Title("Sessions"),
			}
			if len(daypartFields) > 0 {
				groups = append(groups, huh.NewGroup(daypartFields...).Title("Dayparts"))
			}

			form := huh.NewForm(groups...).WithShowHelp(true).WithShowErrors(true)
			if err := form.Run(); err != nil {
				return err
			}

			focusMin, err := strconv.Atoi(strings.TrimSpace(focusStr))
			if err != nil {
				return fmt.Errorf("invalid focus length %q", focusStr)
			}
			breakMinutes, err := strconv.Atoi(strings.TrimSpace(breakStr))
			if err != nil {
				return fmt.Errorf("invalid break length %q", breakStr)
			}

			dayparts := make([]domain.Daypart, len(s.Dayparts))
			for i, dp := range s.Dayparts {
				dayparts[i] = domain.Daypart{Name: dp.Name, Start: starts[i], End: ends[i]}
			}

			if _, err := app.Settings.Update(ctx, domain.SettingsUpdate{
				Dayparts:             dayparts,
				DefaultFocusMinutes:  focusMin,
				DefaultBreakMinutes:  breakMinutes,
				NotificationsEnabled: notifications,
				SoundEnabled:         sound,
			}); err != nil {
				return err
			}
			fmt.Println("Settings updated.")
			return nil
		},
	}
}

// parseDaypartSpecs parses "Name=HH:MM-HH:MM" specs into dayparts.
func parseDaypartSpecs(specs []string) ([]domain.Daypart, error) {
	dayparts := make([]domain.Daypart, 0, len(specs))
	for _, spec := range specs {
		name, window, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid daypart %q (want Name=HH:MM-HH:MM)", spec)
		}
		start, end, ok := strings.Cut(window, "-")
		if !ok {
			return nil, fmt.Errorf("invalid daypart window %q (want HH:MM-HH:MM)", window)
		}
		dayparts = append(dayparts, domain.Daypart{
			Name:  strings.TrimSpace(name),
			Start: strings.TrimSpace(start),
			End:   strings.TrimSpace(end),
		})
	}
	return dayparts, nil
}

func onOff(v bool) string {
	if v {
		return formatter.StyleGreen.Render("on")
	}
	return formatter.Dim("off")
}

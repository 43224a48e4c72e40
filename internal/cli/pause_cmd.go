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

func newPauseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Manage pause cards",
	}

	cmd.AddCommand(
		newPauseListCmd(app),
		newPauseAddCmd(app),
		newPauseEditCmd(app),
		newPauseUseCmd(app),
		newPauseResetCmd(app),
	)

	return cmd
}

func newPauseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pause cards with today's remaining uses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := app.Pauses.ListWithRemaining(context.Background())
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				fmt.Println("No pause cards found.")
				return nil
			}

			headers := []string{"ID", "NAME", "TODAY", "QUOTA", "JOKER"}
			rows := make([][]string, 0, len(cards))
			for _, c := range cards {
				joker := ""
				if c.Card.IsJoker {
					joker = formatter.StylePurple.Render("★")
				}
				rows = append(rows, []string{
					formatter.TruncID(c.Card.ID),
					c.Card.Name,
					formatter.UsagePips(c.RemainingToday, c.Card.DailyQuota),
					fmt.Sprintf("%d/day", c.Card.DailyQuota),
					joker,
				})
			}

			fmt.Print(formatter.RenderBox("Pause Cards", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newPauseAddCmd(app *App) *cobra.Command {
	var name string
	var quota int
	var joker bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pause card",
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := app.Pauses.Create(context.Background(), service.CreateCardInput{
				Name:       name,
				DailyQuota: quota,
				IsJoker:    joker,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added card %q with %d uses per day (%s)\n",
				card.Card.Name, card.Card.DailyQuota, card.Card.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Card name")
	cmd.Flags().IntVar(&quota, "quota", 1, "Daily use quota")
	cmd.Flags().BoolVar(&joker, "joker", false, "Mark as the joker card")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPauseEditCmd(app *App) *cobra.Command {
	var name string
	var quota int
	var joker bool

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a pause card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.PauseCardPatch{
				Name:       optionalStr(cmd.Flags(), "name", &name),
				DailyQuota: optionalInt(cmd.Flags(), "quota", &quota),
				IsJoker:    optionalBool(cmd.Flags(), "joker", &joker),
			}

			card, err := app.Pauses.Update(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated card %q, %d uses left today\n", card.Card.Name, card.RemainingToday)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().IntVar(&quota, "quota", 0, "New daily quota")
	cmd.Flags().BoolVar(&joker, "joker", false, "Joker flag")

	return cmd
}

func newPauseUseCmd(app *App) *cobra.Command {
	var minutes func() *int

	cmd := &cobra.Command{
		Use:   "use ID",
		Short: "Spend one use of a card and start a break",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Pauses.Consume(context.Background(), args[0], minutes())
			if err != nil {
				return err
			}
			fmt.Printf("Break started for %s (session %s)\n",
				formatter.FormatMinutes(session.PlannedMinutes), session.ID)
			return nil
		},
	}

	minutes = addMinutesFlag(cmd.Flags(), "Break length (defaults to settings)")

	return cmd
}

func newPauseResetCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear a day's card uses so quotas recover",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = domain.DateOf(time.Now())
			}
			if err := app.Pauses.ResetUses(context.Background(), date); err != nil {
				return err
			}
			fmt.Printf("Cleared card uses for %s\n", date)
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date, "Date to clear (defaults to today)")

	return cmd
}

package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tomate/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDailyCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show a day's pause debt",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Daily.Get(context.Background(), date)
			if err != nil {
				return err
			}
			if state.PauseDueMinutes == 0 {
				fmt.Printf("%s: no pause debt\n", state.Date)
				return nil
			}
			fmt.Printf("%s: %s of pause due\n",
				state.Date, formatter.FormatMinutes(state.PauseDueMinutes))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date, "Date to show (defaults to today)")

	return cmd
}

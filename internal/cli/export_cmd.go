package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the database",
	}

	cmd.AddCommand(
		newExportDBCmd(app),
		newExportJSONCmd(app),
	)

	return cmd
}

func newExportDBCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "db PATH",
		Short: "Write a SQLite snapshot of the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Export.SnapshotDB(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Wrote snapshot to %s\n", args[0])
			return nil
		},
	}
}

func newExportJSONCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "json PATH",
		Short: "Write a JSON dump of all data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Export.WriteJSON(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Wrote JSON dump to %s\n", args[0])
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tomate/internal/cli/formatter"
	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/alexanderramin/tomate/internal/service"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the task backlog",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskAddCmd(app),
		newTaskEditCmd(app),
		newTaskDoneCmd(app),
	)

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var statusFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			var status *domain.TaskStatus
			if statusFlag != "" {
				s := domain.TaskStatus(statusFlag)
				if s != domain.TaskActive && s != domain.TaskDone {
					return fmt.Errorf("unknown status %q (want active or done)", statusFlag)
				}
				status = &s
			}

			tasks, err := app.Tasks.List(context.Background(), status)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			headers := []string{"ID", "TITLE", "ESTIMATE", "STATUS", "NOTE"}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					t.Title,
					fmt.Sprintf("%d", t.EstimatePomodoros),
					formatter.TaskStatusPill(t.Status),
					formatter.Dim(formatter.Truncate(t.Note, 40)),
				})
			}

			fmt.Print(formatter.RenderBox("Tasks", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "Filter by status (active, done)")

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, note string
	var estimate int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.Create(context.Background(), service.CreateTaskInput{
				Title:             title,
				EstimatePomodoros: estimate,
				Note:              note,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added task %q (%s)\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().IntVar(&estimate, "estimate", 1, "Estimated pomodoros")
	cmd.Flags().StringVar(&note, "note", "", "Task note")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskEditCmd(app *App) *cobra.Command {
	var title, note, statusFlag string
	var estimate int

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.TaskPatch{
				Title:             optionalStr(cmd.Flags(), "title", &title),
				EstimatePomodoros: optionalInt(cmd.Flags(), "estimate", &estimate),
				Note:              optionalStr(cmd.Flags(), "note", &note),
			}
			if cmd.Flags().Changed("status") {
				s := domain.TaskStatus(statusFlag)
				if s != domain.TaskActive && s != domain.TaskDone {
					return fmt.Errorf("unknown status %q (want active or done)", statusFlag)
				}
				patch.Status = &s
			}

			task, err := app.Tasks.Update(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated task %q (%s)\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "New pomodoro estimate")
	cmd.Flags().StringVar(&note, "note", "", "New note")
	cmd.Flags().StringVar(&statusFlag, "status", "", "New status (active, done)")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.Complete(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Done: %q (%s)\n", task.Title, task.ID)
			return nil
		},
	}
}

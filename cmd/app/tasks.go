package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (a *app) tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List, add and remove tasks",
	}
	cmd.AddCommand(a.tasksListCmd(), a.tasksAddCmd(), a.tasksRemoveCmd())
	return cmd
}

func (a *app) tasksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, _, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()
			tasks, err := db.LoadTasks(ctx)
			if err != nil {
				return err
			}
			printTasks(cmd.OutOrStdout(), tasks)
			return nil
		},
	}
}

func printTasks(out io.Writer, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks.")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "CATEGORY", "PRIORITY", "CREATED")
	for _, task := range tasks {
		t.Row(task.ID, task.Name, task.Category, string(task.Priority), task.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(out, t.Render())
}

func (a *app) tasksAddCmd() *cobra.Command {
	var category, priority string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := models.Priority(strings.ToLower(priority))
			if !p.Valid() {
				return fmt.Errorf("unknown priority %q", priority)
			}
			ctx := cmd.Context()
			db, _, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			task := models.NewTask(strings.Join(args, " "), category, p)
			if err := db.AddTask(ctx, task); err != nil {
				return err
			}
			if task.Category != "" {
				if _, err := db.AddCategory(ctx, task.Category); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), task.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "Work", "task category")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(models.PriorityMedium), "high, medium or low")
	return cmd
}

func (a *app) tasksRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, _, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()
			return db.DeleteTask(ctx, args[0])
		},
	}
}

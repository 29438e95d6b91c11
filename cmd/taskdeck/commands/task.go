package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"taskdeck/cmd/taskdeck/output"
	"taskdeck/internal/application/dto"
)

// taskCmd represents the task command
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long: `Manage tasks - create, update, delete, and query them.

Each task has a unique ID, a title (unique across tasks), revenue, time
taken, priority, status, and optional notes. Completion dates are stamped
automatically when a task becomes done and cleared when it leaves done.

Examples:
  # Create a new task
  taskdeck task create --title "Client onboarding" --revenue 1500 --time 6.5 --priority high

  # List all tasks
  taskdeck task list

  # List in-progress tasks as JSON
  taskdeck task list --status in-progress --output json

  # Update a task
  taskdeck task update TASK-3 --revenue 1800 --priority medium

  # Mark a task done
  taskdeck task done TASK-3

  # Delete a task
  taskdeck task delete TASK-3`,
}

// taskCreateCmd creates a task
var taskCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new task",
	Long: `Create a new task.

The title must be unique (case-insensitive) across all tasks. Revenue must
be zero or more and time taken must be more than zero. Priority defaults
to medium and status to todo when not given.

Examples:
  taskdeck task create --title "Client onboarding" --revenue 1500 --time 6.5
  taskdeck task create --title "Quick fix" --revenue 0 --time 0.5 --priority low --status done`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()

		title, _ := cmd.Flags().GetString("title")
		revenue, _ := cmd.Flags().GetFloat64("revenue")
		timeTaken, _ := cmd.Flags().GetFloat64("time")
		priority, _ := cmd.Flags().GetString("priority")
		status, _ := cmd.Flags().GetString("status")
		notes, _ := cmd.Flags().GetString("notes")

		payload := dto.TaskPayload{
			Title:     title,
			Revenue:   revenue,
			TimeTaken: timeTaken,
			Priority:  priority,
			Status:    status,
			Notes:     notes,
			CreatedAt: time.Now(),
		}

		task, err := container.CreateTaskUseCase.Execute(ctx, payload)
		if err != nil {
			return err
		}

		if !quiet {
			printer.Success("Created task %s: %s", task.ShortID, task.Title)
		}
		return nil
	},
}

// taskListCmd lists tasks
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks with optional filtering.

Output formats:
  text - Human-readable table (default)
  json - JSON output for scripting
  yaml - YAML output
  fzf  - Task ID and title (tab-separated)
  path - File paths with titles (format: path :: title)

Examples:
  # List all tasks
  taskdeck task list

  # List high priority tasks that are not done
  taskdeck task list --priority high --status todo

  # Pipe to fzf and show the selected task
  taskdeck task list --output fzf | fzf | taskdeck task show`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()

		priority, _ := cmd.Flags().GetString("priority")
		status, _ := cmd.Flags().GetString("status")
		minRevenue, _ := cmd.Flags().GetFloat64("min-revenue")

		tasks, err := container.ListTasksUseCase.Execute(ctx)
		if err != nil {
			return err
		}

		filtered := make([]dto.TaskDTO, 0, len(tasks))
		for _, task := range tasks {
			if priority != "" && task.Priority != priority {
				continue
			}
			if status != "" && task.Status != status {
				continue
			}
			if task.Revenue < minRevenue {
				continue
			}
			filtered = append(filtered, task)
		}

		return outputTasks(filtered)
	},
}

// taskShowCmd shows a single task
var taskShowCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show task details",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()

		resolved, err := resolveArgs(args, 1)
		if err != nil {
			return err
		}

		task, err := container.GetTaskUseCase.Execute(ctx, resolved[0])
		if err != nil {
			return err
		}

		if formatter.Format() != output.FormatText {
			return formatter.Print(task)
		}

		printer.Header("%s", task.Title)
		printer.Println("ID:         %s", task.ShortID)
		printer.Println("Revenue:    %.2f", task.Revenue)
		printer.Println("Time taken: %.1fh", task.TimeTaken)
		printer.Println("Priority:   %s", task.Priority)
		printer.Println("Status:     %s", task.Status)
		printer.Println("Created:    %s", task.CreatedAt.Format("2006-01-02 15:04"))
		if task.CompletedAt != nil {
			printer.Println("Completed:  %s", task.CompletedAt.Format("2006-01-02 15:04"))
		}
		if task.Notes != "" {
			printer.Println("")
			printer.Println("%s", task.Notes)
		}
		return nil
	},
}

// taskUpdateCmd updates a task
var taskUpdateCmd = &cobra.Command{
	Use:   "update [task-id]",
	Short: "Update a task",
	Long: `Update fields of an existing task. Only the given flags change;
everything else keeps its stored value. The creation date is always
carried forward.

Examples:
  taskdeck task update TASK-3 --revenue 1800
  taskdeck task update TASK-3 --status done`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()

		resolved, err := resolveArgs(args, 1)
		if err != nil {
			return err
		}

		existing, err := container.GetTaskUseCase.Execute(ctx, resolved[0])
		if err != nil {
			return err
		}

		payload := dto.TaskPayload{
			ID:          existing.ShortID,
			Title:       existing.Title,
			Revenue:     existing.Revenue,
			TimeTaken:   existing.TimeTaken,
			Priority:    existing.Priority,
			Status:      existing.Status,
			Notes:       existing.Notes,
			CreatedAt:   existing.CreatedAt,
			CompletedAt: existing.CompletedAt,
		}

		if cmd.Flags().Changed("title") {
			payload.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("revenue") {
			payload.Revenue, _ = cmd.Flags().GetFloat64("revenue")
		}
		if cmd.Flags().Changed("time") {
			payload.TimeTaken, _ = cmd.Flags().GetFloat64("time")
		}
		if cmd.Flags().Changed("priority") {
			payload.Priority, _ = cmd.Flags().GetString("priority")
		}
		if cmd.Flags().Changed("status") {
			payload.Status, _ = cmd.Flags().GetString("status")
		}
		if cmd.Flags().Changed("notes") {
			payload.Notes, _ = cmd.Flags().GetString("notes")
		}

		task, err := container.UpdateTaskUseCase.Execute(ctx, payload)
		if err != nil {
			return err
		}

		if !quiet {
			printer.Success("Updated task %s: %s", task.ShortID, task.Title)
		}
		return nil
	},
}

// taskDoneCmd marks a task as done
var taskDoneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as done",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()

		resolved, err := resolveArgs(args, 1)
		if err != nil {
			return err
		}

		existing, err := container.GetTaskUseCase.Execute(ctx, resolved[0])
		if err != nil {
			return err
		}

		payload := dto.TaskPayload{
			ID:          existing.ShortID,
			Title:       existing.Title,
			Revenue:     existing.Revenue,
			TimeTaken:   existing.TimeTaken,
			Priority:    existing.Priority,
			Status:      "done",
			Notes:       existing.Notes,
			CreatedAt:   existing.CreatedAt,
			CompletedAt: existing.CompletedAt,
		}

		task, err := container.UpdateTaskUseCase.Execute(ctx, payload)
		if err != nil {
			return err
		}

		if !quiet {
			completed := ""
			if task.CompletedAt != nil {
				completed = task.CompletedAt.Format("2006-01-02 15:04")
			}
			printer.Success("Completed task %s at %s", task.ShortID, completed)
		}
		return nil
	},
}

// taskDeleteCmd deletes a task
var taskDeleteCmd = &cobra.Command{
	Use:   "delete [task-id]",
	Short: "Delete a task",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()

		resolved, err := resolveArgs(args, 1)
		if err != nil {
			return err
		}

		if err := container.DeleteTaskUseCase.Execute(ctx, resolved[0]); err != nil {
			return err
		}

		if !quiet {
			printer.Success("Deleted task %s", resolved[0])
		}
		return nil
	},
}

// outputTasks prints a task list in the selected output format
func outputTasks(tasks []dto.TaskDTO) error {
	switch formatter.Format() {
	case output.FormatJSON, output.FormatYAML:
		return formatter.Print(tasks)

	case output.FormatFZF:
		for _, task := range tasks {
			printer.Println("%s\t%s", task.ShortID, task.Title)
		}
		return nil

	case output.FormatPath:
		for _, task := range tasks {
			printer.Println("%s :: %s", task.FilePath, task.Title)
		}
		return nil

	default:
		if len(tasks) == 0 {
			printer.Subtle("No tasks found")
			return nil
		}

		rows := make([][]string, 0, len(tasks))
		for _, task := range tasks {
			completed := "-"
			if task.CompletedAt != nil {
				completed = task.CompletedAt.Format("2006-01-02")
			}
			rows = append(rows, []string{
				task.ShortID,
				task.Title,
				strconv.FormatFloat(task.Revenue, 'f', 2, 64),
				fmt.Sprintf("%.1fh", task.TimeTaken),
				task.Priority,
				task.Status,
				completed,
			})
		}
		printer.Table(
			[]string{"ID", "TITLE", "REVENUE", "TIME", "PRIORITY", "STATUS", "COMPLETED"},
			rows,
		)
		return nil
	}
}

func init() {
	taskCreateCmd.Flags().String("title", "", "Task title (required, unique)")
	taskCreateCmd.Flags().Float64("revenue", 0, "Revenue attributed to the task")
	taskCreateCmd.Flags().Float64("time", 0, "Time taken in hours (must be > 0)")
	taskCreateCmd.Flags().String("priority", "", "Priority: high, medium, low (default medium)")
	taskCreateCmd.Flags().String("status", "", "Status: todo, in-progress, done (default todo)")
	taskCreateCmd.Flags().String("notes", "", "Free-form notes")
	taskCreateCmd.MarkFlagRequired("title")
	taskCreateCmd.MarkFlagRequired("time")

	taskListCmd.Flags().String("priority", "", "Filter by priority")
	taskListCmd.Flags().String("status", "", "Filter by status")
	taskListCmd.Flags().Float64("min-revenue", 0, "Only show tasks with at least this revenue")

	taskUpdateCmd.Flags().String("title", "", "New title")
	taskUpdateCmd.Flags().Float64("revenue", 0, "New revenue")
	taskUpdateCmd.Flags().Float64("time", 0, "New time taken in hours")
	taskUpdateCmd.Flags().String("priority", "", "New priority")
	taskUpdateCmd.Flags().String("status", "", "New status")
	taskUpdateCmd.Flags().String("notes", "", "New notes")

	taskCmd.AddCommand(taskCreateCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	rootCmd.AddCommand(taskCmd)
}

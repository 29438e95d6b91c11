package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taskdeck/tui"
	"taskdeck/tui/form"
	"taskdeck/tui/style"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal user interface",
	Long: `Launch the interactive TUI (Terminal User Interface) for managing tasks.

The task list refreshes automatically when task files change on disk,
so CLI edits show up while the TUI is running.

Keyboard shortcuts:
  ↑/k, ↓/j   - Move between tasks
  a          - Open the form dialog for a new task
  e/Enter    - Open the form dialog for the selected task
  d          - Delete selected task
  q/Ctrl+C   - Quit application

Inside the form dialog:
  Tab/↓      - Next field
  Shift+Tab/↑ - Previous field
  ←/→        - Cycle priority or status
  Enter      - Save (disabled until every field is valid)
  Esc        - Cancel and discard the draft

Examples:
  # Launch TUI (also the default command)
  taskdeck
  taskdeck tui`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()

		// Initialize styles and keybindings from config
		style.InitStyles(cfg)
		tui.InitKeybindings(cfg)
		form.InitKeybindings(cfg)

		tasks, err := container.ListTasksUseCase.Execute(ctx)
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}

		m := tui.NewModel(tasks, container)

		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

package commands

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"taskdeck/cmd/taskdeck/output"
	"taskdeck/internal/di"
	"taskdeck/internal/infrastructure/config"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	// Global flags
	outputFormat string
	configPath   string
	quiet        bool

	// Shared instances
	cfg       *config.Config
	container *di.Container
	printer   *output.Printer
	formatter *output.Formatter
)

var multiSpaceRE = regexp.MustCompile(`\s{2,}`)
var taskIDLikeRE = regexp.MustCompile(`^[A-Za-z]+-\d+`)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "Terminal tracker for revenue-bearing tasks",
	Long: `taskdeck is a terminal-based tracker for tasks that carry revenue and
time-taken figures alongside the usual priority and status.

Features:
  - Interactive TUI with a modal form dialog for creating and editing tasks
  - Inline validation: unique titles, revenue >= 0, time taken > 0
  - Plain-file storage: one markdown file with YAML frontmatter per task
  - Completion dates stamped automatically when a task is marked done

Examples:
  # Launch interactive TUI
  taskdeck
  taskdeck tui

  # Create a new task
  taskdeck task create --title "Client onboarding" --revenue 1500 --time 6.5 --priority high

  # List tasks
  taskdeck task list --status in-progress

  # Mark a task done
  taskdeck task done TASK-3

  # Pipe to fzf and edit the selected task
  taskdeck task list --output fzf | fzf | taskdeck task show`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		var loader *config.Loader

		if configPath != "" {
			loader = config.NewLoaderFrom(configPath)
		} else {
			loader, err = config.NewLoader()
			if err != nil {
				return fmt.Errorf("failed to create config loader: %w", err)
			}
		}

		cfg, err = loader.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		container, err = di.InitializeContainerWithConfig(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}

		format, err := output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		formatter = output.NewFormatter(format, os.Stdout)
		printer = output.DefaultPrinter()

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printer := output.DefaultPrinter()
		printer.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml, fzf, path")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")

	// Version flag
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			printVersion()
			return
		}

		// Default behavior: launch TUI
		if len(args) == 0 {
			if err := tuiCmd.RunE(cmd, args); err != nil {
				printer.Error("%v", err)
				os.Exit(1)
			}
		} else {
			cmd.Help()
		}
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("taskdeck version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Built:      %s\n", BuildDate)
}

// getContext returns a context for command execution
func getContext() context.Context {
	return context.Background()
}

// resolveArgs fills missing positional args from piped stdin, so task IDs
// can be piped in from `task list --output fzf | fzf`.
func resolveArgs(args []string, expected int) ([]string, error) {
	if len(args) >= expected {
		return args, nil
	}

	pipedArgs, err := readPipedArgs(expected)
	if err != nil {
		return nil, err
	}

	needed := expected - len(args)
	available := len(args) + len(pipedArgs)
	if len(pipedArgs) < needed {
		return nil, fmt.Errorf("accepts %d arg(s), received %d", expected, available)
	}

	resolved := append([]string{}, pipedArgs[:needed]...)
	resolved = append(resolved, args...)
	return resolved, nil
}

func readPipedArgs(expected int) ([]string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, err
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}

	return extractArgsFromInput(data, expected), nil
}

func extractArgsFromInput(data []byte, expected int) []string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	bestScore := -1
	var best []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens, score := parsePipedLine(line, expected)
		if len(tokens) < expected {
			continue
		}

		if score > bestScore {
			bestScore = score
			best = tokens
		}
	}

	if len(best) == 0 {
		return nil
	}
	return best
}

func parsePipedLine(line string, expected int) ([]string, int) {
	if strings.Contains(line, "\t") {
		return splitFields(line, func(r rune) bool { return r == '\t' }), 3
	}
	if strings.Contains(line, " :: ") {
		parts := strings.Split(line, " :: ")
		return parts, 3
	}
	if multiSpaceRE.MatchString(line) {
		return multiSpaceRE.Split(line, -1), 2
	}

	fields := strings.Fields(line)
	if expected == 1 && len(fields) > 1 {
		if taskIDLikeRE.MatchString(fields[0]) {
			return []string{fields[0]}, 2
		}
		return []string{line}, 1
	}

	return fields, 1
}

func splitFields(input string, split func(rune) bool) []string {
	fields := strings.FieldsFunc(input, split)
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		if field == "" {
			continue
		}
		out = append(out, field)
	}
	return out
}

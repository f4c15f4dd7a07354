package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kvisser/taskline/internal/config"
	tlerrors "github.com/kvisser/taskline/internal/errors"
	"github.com/kvisser/taskline/internal/logging"
	"github.com/kvisser/taskline/internal/output"
	"github.com/kvisser/taskline/internal/snapshot"
	"github.com/kvisser/taskline/internal/store"
	"github.com/kvisser/taskline/internal/task"
	"github.com/kvisser/taskline/internal/ui"
	"github.com/kvisser/taskline/internal/view"
)

//nolint:gochecknoglobals // CLI flags, formatter, and logger are package-level by design
var (
	jsonOutput   bool
	verbose      bool
	snapshotPath string
	formatter    output.Formatter
	logger       *charmlog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskline",
		Short: "A single-user task list editor",
		Long:  "taskline - A single-user task list editor with search, filters, and due dates.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}
			logger = logging.New(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "file", "", "Snapshot file path (overrides config)")

	rootCmd.AddCommand(
		addCmd(),
		listCmd(),
		doneCmd(),
		rmCmd(),
		clearCmd(),
		exportCmd(),
		importCmd(),
		tuiCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore loads config and the persisted snapshot into a ready store.
func openStore() (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path := snapshotPath
	if path == "" {
		path, err = cfg.ResolveSnapshotPath()
		if err != nil {
			return nil, nil, err
		}
	}

	st := store.New(snapshot.NewFile(path, logger), logger)
	if err := st.Load(); err != nil {
		return nil, nil, err
	}
	return st, cfg, nil
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id: %s", arg)
	}
	return id, nil
}

// addCmd implements 'taskline add'.
func addCmd() *cobra.Command {
	var category string
	var priority string
	var due string
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			st, cfg, err := openStore()
			if err != nil {
				printError(err)
			}

			if category == "" {
				category = cfg.DefaultCategory
			}
			c := task.Category(category)
			if !task.IsValidCategory(c) {
				printError(tlerrors.InvalidCategoryError{Value: category})
			}

			if priority == "" {
				priority = cfg.DefaultPriority
			}
			p := task.Priority(priority)
			if !task.IsValidPriority(p) {
				printError(tlerrors.InvalidPriorityError{Value: priority})
			}

			var dueDate *time.Time
			if due != "" {
				d, err := task.ParseDueDate(due)
				if err != nil {
					printError(tlerrors.InvalidDateError{Value: due})
				}
				dueDate = &d
			}

			t, err := st.Create(args[0], c, p, dueDate)
			if err != nil {
				printError(err)
			}
			if t == nil {
				printOutput(formatter.FormatMessage("Nothing added: task text is empty"))
				return
			}
			printOutput(formatter.FormatTask(t))
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (work, personal, shopping, health, other)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (low, medium, high)")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date (YYYY-MM-DD)")
	return cmd
}

// listCmd implements 'taskline list'.
func listCmd() *cobra.Command {
	var search string
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, filtered and sorted for display",
		Run: func(_ *cobra.Command, _ []string) {
			st, _, err := openStore()
			if err != nil {
				printError(err)
			}

			f := view.Filter(filter)
			if !view.IsValidFilter(f) {
				printError(tlerrors.InvalidFilterError{Value: filter})
			}

			printOutput(formatter.FormatTaskList(view.View(st.All(), search, f)))
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive substring search")
	cmd.Flags().StringVarP(&filter, "filter", "f", string(view.FilterAll), "Status filter (all, active, completed)")
	return cmd
}

// doneCmd implements 'taskline done'.
func doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completed flag",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			st, cfg, err := openStore()
			if err != nil {
				printError(err)
			}

			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}

			before := st.Get(id)
			t, err := st.Toggle(id)
			if err != nil {
				printError(err)
			}
			if t == nil {
				printOutput(formatter.FormatMessage(fmt.Sprintf("Task %d not found, nothing to toggle", id)))
				return
			}

			printOutput(formatter.FormatTask(t))
			// Celebration is a presentation concern: the store only flips
			// state, the CLI observes the false-to-true transition here.
			if cfg.Celebrate && !jsonOutput && before != nil && !before.Completed && t.Completed {
				printOutput(formatter.FormatMessage(fmt.Sprintf("Nice! Task %d completed \U0001F389", id)))
			}
		},
	}
}

// rmCmd implements 'taskline rm'.
func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task permanently",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			st, _, err := openStore()
			if err != nil {
				printError(err)
			}

			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}

			removed, err := st.Delete(id)
			if err != nil {
				printError(err)
			}
			if !removed {
				printOutput(formatter.FormatMessage(fmt.Sprintf("Task %d not found, nothing to delete", id)))
				return
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Removed task %d", id)))
		},
	}
}

// clearCmd implements 'taskline clear'.
func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed tasks",
		Run: func(_ *cobra.Command, _ []string) {
			st, _, err := openStore()
			if err != nil {
				printError(err)
			}

			removed, err := st.ClearCompleted()
			if err != nil {
				printError(err)
			}
			if removed == 0 {
				printOutput(formatter.FormatMessage("No completed tasks to clear"))
				return
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Cleared %d completed task(s)", removed)))
		},
	}
}

// tuiCmd implements 'taskline tui'.
func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive task list",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, cfg, err := openStore()
			if err != nil {
				return err
			}
			return ui.Run(st, cfg)
		},
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvisser/taskline/internal/snapshot"
)

// exportCmd implements 'taskline export'.
func exportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks as a YAML document",
		Run: func(_ *cobra.Command, _ []string) {
			st, _, err := openStore()
			if err != nil {
				printError(err)
			}

			w := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					printError(err)
				}
				defer f.Close()
				w = f
			}

			if err := snapshot.ExportYAML(w, st.All()); err != nil {
				printError(err)
			}
			if outPath != "" {
				printOutput(formatter.FormatMessage(fmt.Sprintf("Exported %d task(s) to %s", len(st.All()), outPath)))
			}
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

// importCmd implements 'taskline import'.
func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a YAML export",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			st, _, err := openStore()
			if err != nil {
				printError(err)
			}

			f, err := os.Open(args[0])
			if err != nil {
				printError(err)
			}
			defer f.Close()

			tasks, err := snapshot.ImportYAML(f)
			if err != nil {
				printError(err)
			}

			// Colliding ids are reassigned by the store.
			for _, t := range tasks {
				if _, err := st.Add(t); err != nil {
					printError(err)
				}
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Imported %d task(s)", len(tasks))))
		},
	}
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/fsbatch/internal/config"
	"github.com/danieljhkim/fsbatch/internal/fsops"
	"github.com/danieljhkim/fsbatch/internal/journal"
	"github.com/danieljhkim/fsbatch/internal/task"
)

var journalListDir string

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect the journals of executed runs",
	Long: `Inspect the journals written by --journal.

A journal lists every move an executed run completed and every move that
failed, so files can be put back by hand.`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		dir, err := journalDir(true, journalListDir, cfg)
		if err != nil {
			return err
		}

		paths, err := journal.List(fsops.NewRealFS(), dir)
		if err != nil {
			return err
		}
		if jsonOutput {
			if paths == nil {
				paths = []string{}
			}
			return outputJSON(cmd.OutOrStdout(), paths)
		}

		out := cmd.OutOrStdout()
		if len(paths) == 0 {
			_, err := fmt.Fprintf(out, "No journals in %s\n", dir)
			return err
		}
		for _, p := range paths {
			if _, err := fmt.Fprintln(out, p); err != nil {
				return err
			}
		}
		return nil
	},
}

var journalShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show the moves recorded in a journal file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := journal.Read(fsops.NewRealFS(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), rec)
		}
		return writeJournal(cmd.OutOrStdout(), rec)
	},
}

// writeJournal prints a record using the same line formats as the report,
// with paths relative to the run's working directory.
func writeJournal(w io.Writer, rec *journal.Record) error {
	_, _ = labelColor.Fprintf(w, "%s ", rec.Tool)
	_, _ = valueColor.Fprintf(w, "%s\n", rec.RunID)
	fmt.Fprintf(w, "Working directory: %s\n", rec.WorkingDir)
	fmt.Fprintf(w, "Started: %s\n", rec.StartedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(w, "\n%d completed:\n", len(rec.Moves))
	for _, m := range rec.Moves {
		fmt.Fprintln(w, task.New(m.From, m.To).Relativize(rec.WorkingDir))
	}

	if len(rec.Failures) > 0 {
		fmt.Fprintf(w, "\n%d failed:\n", len(rec.Failures))
		for _, f := range rec.Failures {
			fmt.Fprintln(w, task.FailedOperation{Path: f.Path, Reason: f.Reason}.Relativize(rec.WorkingDir))
		}
	}
	return nil
}

func init() {
	journalListCmd.Flags().StringVar(&journalListDir, "dir", "", "Journal directory (default from config)")

	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
}

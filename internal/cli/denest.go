package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/fsbatch/internal/engine"
)

var (
	denestDir        string
	denestExecute    bool
	denestDoMoves    bool
	denestExtensions []string
	denestDepth      int
	denestCleanup    bool
	denestHidden     bool
	denestExclude    []string
	denestJournal    bool
	denestJournalDir string
)

var denestCmd = &cobra.Command{
	Use:   "denest",
	Short: "Move nested files up into the working directory",
	Long: `Move every file found in subdirectories of the working directory up into
the working directory itself, keeping its file name.

The plan is always printed and checked first. If two files would land on the
same name, or a file would replace one already in the working directory,
nothing is moved. Without --execute this is a dry run.`,
	Example: `  fsbatch denest -w ~/Downloads/album
  fsbatch denest -e jpg,png --depth 3 --execute --cleanup`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		jdir, err := journalDir(denestJournal, denestJournalDir, s.cfg)
		if err != nil {
			return err
		}

		req := &engine.DenestRequest{
			WorkingDir:    denestDir,
			CWD:           s.cwd,
			Execute:       denestExecute || denestDoMoves,
			Extensions:    denestExtensions,
			Depth:         denestDepth,
			Cleanup:       boolSetting(cmd, "cleanup", denestCleanup, s.cfg.Defaults.Cleanup),
			IncludeHidden: boolSetting(cmd, "hidden", denestHidden, s.cfg.Defaults.IncludeHidden),
			Exclude:       append(append([]string{}, s.cfg.Defaults.Exclude...), denestExclude...),
			JournalDir:    jdir,
		}

		result, err := s.eng.Denest(context.Background(), req)
		return finish(cmd, result, err)
	},
}

func init() {
	denestCmd.Flags().StringVarP(&denestDir, "dir", "w", "", "Working directory (default is the current directory)")
	denestCmd.Flags().BoolVarP(&denestExecute, "execute", "x", false, "Execute the moves instead of only printing them")
	denestCmd.Flags().BoolVarP(&denestDoMoves, "do-moves", "d", false, "Alias for --execute")
	denestCmd.Flags().StringSliceVarP(&denestExtensions, "extensions", "e", nil, "Only move files with these extensions")
	denestCmd.Flags().IntVar(&denestDepth, "depth", 0, "Maximum search depth (0 = unlimited)")
	denestCmd.Flags().BoolVar(&denestCleanup, "cleanup", false, "Remove directories left empty after moving")
	denestCmd.Flags().BoolVar(&denestHidden, "hidden", false, "Include hidden files and directories (skipped by default)")
	denestCmd.Flags().StringSliceVar(&denestExclude, "exclude", nil, "Skip files matching these glob patterns (e.g. '**/*.tmp')")
	denestCmd.Flags().BoolVar(&denestJournal, "journal", false, "Write a journal of completed moves")
	denestCmd.Flags().StringVar(&denestJournalDir, "journal-dir", "", "Write the journal to this directory (implies --journal)")
	_ = denestCmd.Flags().MarkHidden("do-moves")
}

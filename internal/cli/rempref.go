package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/fsbatch/internal/engine"
)

var (
	remprefDir          string
	remprefExecute      bool
	remprefDoRenames    bool
	remprefPrefixLength int
	remprefExtensions   []string
	remprefRecursive    bool
	remprefDepth        int
	remprefHidden       bool
	remprefExclude      []string
	remprefOuterScope   string
	remprefJournal      bool
	remprefJournalDir   string
)

var remprefCmd = &cobra.Command{
	Use:   "rempref",
	Short: "Strip a fixed-length prefix from file names",
	Long: `Remove the first --prefix-length characters from the names of files in the
working directory (and its subdirectories with --recursive).

Files keep their directory. Names that are not longer than the prefix are
skipped. The plan is checked for files that would collide or replace an
existing file before anything is renamed. Without --execute this is a dry run.`,
	Example: `  fsbatch rempref -p 4
  fsbatch rempref -p 3 -r -e mp3 --execute`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		jdir, err := journalDir(remprefJournal, remprefJournalDir, s.cfg)
		if err != nil {
			return err
		}

		outerScope := s.cfg.Conflict.OuterScope
		if cmd.Flags().Changed("outer-scope") {
			outerScope = remprefOuterScope
		}

		req := &engine.RemprefRequest{
			WorkingDir:    remprefDir,
			CWD:           s.cwd,
			Execute:       remprefExecute || remprefDoRenames,
			PrefixLength:  remprefPrefixLength,
			Extensions:    remprefExtensions,
			Recursive:     remprefRecursive,
			Depth:         remprefDepth,
			IncludeHidden: boolSetting(cmd, "hidden", remprefHidden, s.cfg.Defaults.IncludeHidden),
			Exclude:       append(append([]string{}, s.cfg.Defaults.Exclude...), remprefExclude...),
			OuterScope:    outerScope,
			JournalDir:    jdir,
		}

		result, err := s.eng.Rempref(context.Background(), req)
		return finish(cmd, result, err)
	},
}

func init() {
	remprefCmd.Flags().IntVarP(&remprefPrefixLength, "prefix-length", "p", 0, "Number of characters to strip from each file name")
	remprefCmd.Flags().StringVarP(&remprefDir, "dir", "w", "", "Working directory (default is the current directory)")
	remprefCmd.Flags().BoolVarP(&remprefExecute, "execute", "x", false, "Execute the renames instead of only printing them")
	remprefCmd.Flags().BoolVarP(&remprefDoRenames, "do-renames", "d", false, "Alias for --execute")
	remprefCmd.Flags().StringSliceVarP(&remprefExtensions, "extensions", "e", nil, "Only rename files with these extensions")
	remprefCmd.Flags().BoolVarP(&remprefRecursive, "recursive", "r", false, "Also rename files in subdirectories")
	remprefCmd.Flags().IntVar(&remprefDepth, "depth", 0, "Maximum search depth with --recursive (0 = unlimited)")
	remprefCmd.Flags().BoolVar(&remprefHidden, "hidden", false, "Include hidden files and directories (skipped by default)")
	remprefCmd.Flags().StringSliceVar(&remprefExclude, "exclude", nil, "Skip files matching these glob patterns")
	remprefCmd.Flags().StringVar(&remprefOuterScope, "outer-scope", "tree", "Existing files checked for overwrites: root or tree")
	remprefCmd.Flags().BoolVar(&remprefJournal, "journal", false, "Write a journal of completed renames")
	remprefCmd.Flags().StringVar(&remprefJournalDir, "journal-dir", "", "Write the journal to this directory (implies --journal)")
	_ = remprefCmd.MarkFlagRequired("prefix-length")
	_ = remprefCmd.Flags().MarkHidden("do-renames")
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/fsbatch/internal/clock"
	"github.com/danieljhkim/fsbatch/internal/config"
	"github.com/danieljhkim/fsbatch/internal/engine"
	"github.com/danieljhkim/fsbatch/internal/fsops"
	"github.com/danieljhkim/fsbatch/internal/logging"
)

// session bundles what a tool command needs for one run.
type session struct {
	eng    *engine.Engine
	cfg    *config.Config
	logger *logging.Logger
	cwd    string
}

func (s *session) close() {
	_ = s.logger.Close()
}

// newSession loads the config and creates an engine with real
// implementations of all dependencies. The report goes to the command's
// output unless --json is set.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get current directory: %v", engine.ErrWorkingDir, err)
	}

	logger := logging.NopLogger()
	if cfg.Logging.File != "" {
		logger, err = logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
		if err != nil {
			return nil, err
		}
	}

	var out io.Writer = cmd.OutOrStdout()
	if jsonOutput {
		out = io.Discard
	}

	eng := engine.New(fsops.NewRealFS(), clock.RealClock{}, logger, out)
	return &session{eng: eng, cfg: cfg, logger: logger, cwd: cwd}, nil
}

// journalDir picks the journal directory: an explicit --journal-dir wins,
// then --journal or journal.enabled with journal.dir or the default path.
// Empty means no journal.
func journalDir(enabled bool, dir string, cfg *config.Config) (string, error) {
	if dir != "" {
		return dir, nil
	}
	if !enabled && !cfg.Journal.Enabled {
		return "", nil
	}
	if cfg.Journal.Dir != "" {
		return cfg.Journal.Dir, nil
	}
	paths, err := config.DefaultPaths()
	if err != nil {
		return "", fmt.Errorf("failed to get config paths: %w", err)
	}
	return paths.Journal, nil
}

// boolSetting returns the flag value when the user set it, def otherwise.
func boolSetting(cmd *cobra.Command, name string, flagValue, def bool) bool {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return def
}

// finish prints the JSON result when requested and passes err through.
func finish(cmd *cobra.Command, result *engine.Result, err error) error {
	if jsonOutput && result != nil {
		if jerr := outputJSON(cmd.OutOrStdout(), result); jerr != nil {
			return jerr
		}
	}
	return err
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

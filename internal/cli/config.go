package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/fsbatch/internal/config"
	"github.com/danieljhkim/fsbatch/internal/fsops"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or create the fsbatch configuration",
	Long: `View or create the fsbatch configuration.

Without a subcommand, prints the effective configuration: built-in defaults,
overridden by config.yaml, overridden by FSBATCH_* environment variables.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.ConfigFileUsed()
		if path == "" {
			path = config.ConfigFile()
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys := fsops.NewRealFS()
		path := config.ConfigFile()
		exists, err := fsys.Exists(path)
		if err != nil {
			return fmt.Errorf("failed to check config file: %w", err)
		}
		if exists {
			PrintWarning(fmt.Sprintf("Config file already exists at %s", path))
			return nil
		}

		paths, err := config.DefaultPaths()
		if err != nil {
			return fmt.Errorf("failed to get config paths: %w", err)
		}
		if err := paths.EnsureDirectories(); err != nil {
			return err
		}

		data, err := yaml.Marshal(configFile(config.Default()))
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		if err := fsys.AtomicWrite(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		PrintSuccess(fmt.Sprintf("Created config file at %s", path))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), cfg)
	}

	PrintSection("Configuration")
	PrintLabelValue("defaults.cleanup", fmt.Sprint(cfg.Defaults.Cleanup))
	PrintLabelValue("defaults.include_hidden", fmt.Sprint(cfg.Defaults.IncludeHidden))
	PrintLabelValue("defaults.exclude", strings.Join(cfg.Defaults.Exclude, ", "))
	PrintLabelValue("conflict.outer_scope", cfg.Conflict.OuterScope)
	PrintLabelValue("logging.level", cfg.Logging.Level)
	PrintLabelValue("logging.file", cfg.Logging.File)
	PrintLabelValue("journal.enabled", fmt.Sprint(cfg.Journal.Enabled))
	PrintLabelValue("journal.dir", cfg.Journal.Dir)

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Println()
		PrintInfo(fmt.Sprintf("Loaded from %s", used))
	}
	return nil
}

// configFile maps Config onto the keys config.yaml uses.
func configFile(cfg *config.Config) map[string]any {
	return map[string]any{
		"defaults": map[string]any{
			"cleanup":        cfg.Defaults.Cleanup,
			"include_hidden": cfg.Defaults.IncludeHidden,
			"exclude":        cfg.Defaults.Exclude,
		},
		"conflict": map[string]any{
			"outer_scope": cfg.Conflict.OuterScope,
		},
		"logging": map[string]any{
			"level": cfg.Logging.Level,
			"file":  cfg.Logging.File,
		},
		"journal": map[string]any{
			"enabled": cfg.Journal.Enabled,
			"dir":     cfg.Journal.Dir,
		},
	}
}

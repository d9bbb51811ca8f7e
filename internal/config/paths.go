package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem locations fsbatch keeps its own data in.
type Paths struct {
	// Root is the base directory (default: $XDG_CONFIG_HOME/fsbatch)
	Root string

	// Config is the path to the config file
	Config string

	// Journal is the default directory for move journals
	Journal string

	// Logs is the default directory for log files
	Logs string
}

// DefaultPaths returns the default paths for fsbatch.
// FSBATCH_HOME overrides the root directory.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("FSBATCH_HOME")
	if root == "" {
		root = ConfigDir()
	}
	if root == "" {
		return nil, fmt.Errorf("failed to determine fsbatch home directory")
	}

	return &Paths{
		Root:    root,
		Config:  filepath.Join(root, "config.yaml"),
		Journal: filepath.Join(root, "journal"),
		Logs:    filepath.Join(root, "logs"),
	}, nil
}

// EnsureDirectories creates the data directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Root, p.Journal, p.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fsbatch")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fsbatch"
	}
	return filepath.Join(home, ".config", "fsbatch")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("derives paths from the config directory", func(t *testing.T) {
		t.Setenv("FSBATCH_HOME", "")
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != "/custom/config/fsbatch" {
			t.Errorf("Root = %s, want /custom/config/fsbatch", paths.Root)
		}
		if paths.Config != filepath.Join(paths.Root, "config.yaml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}
		if paths.Journal != filepath.Join(paths.Root, "journal") {
			t.Errorf("Journal path incorrect: got %s", paths.Journal)
		}
		if paths.Logs != filepath.Join(paths.Root, "logs") {
			t.Errorf("Logs path incorrect: got %s", paths.Logs)
		}
	})

	t.Run("respects FSBATCH_HOME", func(t *testing.T) {
		t.Setenv("FSBATCH_HOME", "/custom/fsbatch")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}
		if paths.Root != "/custom/fsbatch" {
			t.Errorf("Root = %s, want /custom/fsbatch", paths.Root)
		}
		if paths.Journal != "/custom/fsbatch/journal" {
			t.Errorf("Journal = %s, want /custom/fsbatch/journal", paths.Journal)
		}
	})
}

func TestPaths_EnsureDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "fsbatch")
	paths := &Paths{
		Root:    root,
		Config:  filepath.Join(root, "config.yaml"),
		Journal: filepath.Join(root, "journal"),
		Logs:    filepath.Join(root, "logs"),
	}

	for i := 0; i < 2; i++ {
		if err := paths.EnsureDirectories(); err != nil {
			t.Fatalf("EnsureDirectories (pass %d) failed: %v", i+1, err)
		}
	}

	for _, dir := range []string{paths.Root, paths.Journal, paths.Logs} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("directory %s was not created", dir)
		}
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		if got := ConfigDir(); got != "/custom/config/fsbatch" {
			t.Errorf("ConfigDir() = %q, want /custom/config/fsbatch", got)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, _ := os.UserHomeDir()
		want := filepath.Join(home, ".config", "fsbatch")
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got := ConfigFile(); got != "/custom/config/fsbatch/config.yaml" {
		t.Errorf("ConfigFile() = %q", got)
	}
}

package engine

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/fsbatch/internal/fsops"
)

// resolveWorkingDir turns a user-provided directory (absolute, relative, or
// empty for cwd) into a clean absolute path and checks that it is a
// directory.
func resolveWorkingDir(fs fsops.FS, userPath, cwd string) (string, error) {
	var absPath string
	switch {
	case userPath == "":
		absPath = cwd
	case filepath.IsAbs(userPath):
		absPath = userPath
	default:
		absPath = filepath.Join(cwd, userPath)
	}

	if absPath == "" || !filepath.IsAbs(absPath) {
		return "", fmt.Errorf("%w: cannot resolve %q without an absolute current directory", ErrWorkingDir, userPath)
	}
	absPath = filepath.Clean(absPath)

	info, err := fs.Lstat(absPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWorkingDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrWorkingDir, absPath)
	}

	return absPath, nil
}

// validateExcludes rejects exclude patterns that can never match: they are
// matched against slash paths relative to the working directory.
func validateExcludes(fs fsops.FS, patterns []string) error {
	for _, pattern := range patterns {
		if err := fs.ValidateRelPath(pattern); err != nil {
			return fmt.Errorf("%w: exclude pattern %q: %w", ErrValidation, pattern, err)
		}
	}
	return nil
}

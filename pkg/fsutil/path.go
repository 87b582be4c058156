package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// homeDir is swapped in tests.
//
//nolint:gochecknoglobals
var homeDir = os.UserHomeDir

// ExpandHomePath expands a path beginning with ~/ (or a bare ~) to the user's
// home directory and converts relative paths to absolute paths.
//
// Parameters:
//   - path: The path to expand (e.g., "~/.npmrc", "./.npmrc", or "/absolute/path")
//
// Returns:
//   - string: The expanded and absolute path
//   - error: Error if the home directory is unknown or the path cannot be made absolute
func ExpandHomePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to convert to absolute path: %w", err)
		}

		return absPath, nil
	}

	return filepath.Clean(path), nil
}

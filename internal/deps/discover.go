package deps

import (
	"fmt"
	"os"
	"path/filepath"
)

// DiscoverEngine locates a whisper.cpp-style executable near the model file
// when none is configured. Models conventionally live in a models/
// subdirectory of the engine checkout, so the search walks the model's
// grandparent directory and returns the first executable regular file.
func DiscoverEngine(modelPath string) (string, error) {
	root := filepath.Dir(filepath.Dir(modelPath))

	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("read engine dir %s: %w", root, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0 {
			return filepath.Join(root, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("no executable found under %s; use --executable to set the engine path", root)
}

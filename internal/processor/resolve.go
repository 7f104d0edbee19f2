package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/subwhisper/subwhisper/internal/config"
)

// ResolveInputs turns the configured selector into the list of videos to
// process. A file selector yields that file; a directory selector yields
// every video in it, non-recursive, sorted by name.
func ResolveInputs(cfg *config.Config) ([]string, error) {
	if cfg.File != "" {
		info, err := os.Stat(cfg.File)
		if err != nil {
			return nil, &config.Error{Field: "file", Reason: fmt.Sprintf("%s does not exist", cfg.File)}
		}
		if info.IsDir() {
			return nil, &config.Error{Field: "file", Reason: fmt.Sprintf("%s is a directory, use --directory", cfg.File)}
		}
		if !IsVideoFile(cfg.File) {
			return nil, &config.Error{
				Field:  "file",
				Reason: fmt.Sprintf("%s does not have a video extension (supported: %s)", cfg.File, strings.Join(VideoExtensions, ", ")),
			}
		}
		return []string{cfg.File}, nil
	}

	if cfg.Directory == "" {
		return nil, &config.Error{Field: "input", Reason: "either a file or a directory must be specified"}
	}

	entries, err := os.ReadDir(cfg.Directory)
	if err != nil {
		return nil, &config.Error{Field: "directory", Reason: fmt.Sprintf("cannot read %s: %v", cfg.Directory, err)}
	}

	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsVideoFile(entry.Name()) {
			inputs = append(inputs, filepath.Join(cfg.Directory, entry.Name()))
		}
	}

	sort.Strings(inputs)
	return inputs, nil
}

package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/subwhisper/subwhisper/internal/logger"
)

// Options tunes watcher behavior.
type Options struct {
	// MaxConcurrent bounds how many videos are transcribed at once.
	// Defaults to 1; transcription is CPU-heavy and ordering stays stable.
	MaxConcurrent int
	// SettleDelay is how long to wait after a create event before touching
	// the file, so the writer has finished. Defaults to 500ms.
	SettleDelay time.Duration
}

// New creates a new Watcher for videos appearing in inputDir
func New(inputDir string, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsWatcher.Add(inputDir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = 500 * time.Millisecond
	}

	return &implWatcher{
		inputDir:    inputDir,
		handler:     handler,
		logger:      log,
		watcher:     fsWatcher,
		settleDelay: opts.SettleDelay,
		semaphore:   make(chan struct{}, opts.MaxConcurrent),
	}, nil
}

package processor

import "context"

// Processor defines the interface for subtitle generation
type Processor interface {
	// Process transcribes a single video file into a subtitle beside it.
	Process(ctx context.Context, videoPath string) error
	// ProcessAll processes each input in order, continuing past failures.
	// Returns an error if any input failed.
	ProcessAll(ctx context.Context, videoPaths []string) error
}

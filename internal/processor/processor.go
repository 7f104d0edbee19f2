package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// Process runs the full pipeline for a single video: skip check, audio
// extraction, transcription, then moving the subtitle beside the input.
func (p *implProcessor) Process(ctx context.Context, videoPath string) error {
	finalSRT := SubtitlePath(videoPath)

	if !NeedsProcessing(videoPath, p.cfg.Force) {
		p.logger.Info(ctx, "SKIP: %s is present", filepath.Base(finalSRT))
		return nil
	}

	startTime := time.Now()
	p.logger.Info(ctx, "Processing: %s", videoPath)

	audioPath, err := p.extractAudio(ctx, videoPath)
	if err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	engineSRT, err := p.transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	if err := p.finalizeSubtitle(ctx, engineSRT, finalSRT); err != nil {
		return fmt.Errorf("finalize: %w", err)
	}

	p.logger.Info(ctx, "CREATE: %s (%s)", finalSRT, time.Since(startTime).Round(time.Second))
	return nil
}

// ProcessAll processes inputs sequentially. One file's failure does not stop
// the batch; the error reports how many failed so the process can exit
// non-zero.
func (p *implProcessor) ProcessAll(ctx context.Context, videoPaths []string) error {
	failed := 0
	for _, videoPath := range videoPaths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Process(ctx, videoPath); err != nil {
			p.logger.Error(ctx, "Failed to process %s: %v", videoPath, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(videoPaths))
	}
	return nil
}

package processor

import (
	"context"
	"fmt"
	"os"
)

// finalizeSubtitle moves the engine's SRT from the temp directory to the
// derived subtitle path beside the input. The temp directory may sit on a
// different filesystem, so a failed rename falls back to copy-and-remove.
func (p *implProcessor) finalizeSubtitle(ctx context.Context, engineSRT, finalSRT string) error {
	if err := os.Rename(engineSRT, finalSRT); err == nil {
		return nil
	}

	if err := copyFile(engineSRT, finalSRT); err != nil {
		return fmt.Errorf("move subtitle to %s: %w", finalSRT, err)
	}
	if err := os.Remove(engineSRT); err != nil {
		p.logger.Warn(ctx, "Failed to remove temp subtitle %s: %v", engineSRT, err)
	}

	return nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}

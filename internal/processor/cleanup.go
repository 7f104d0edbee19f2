package processor

import (
	"context"
	"os"
)

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		if !os.IsNotExist(err) {
			p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
		}
		return
	}
	p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
}

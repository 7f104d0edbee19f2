package processor

import (
	"context"
	"os"
	"strconv"
)

// extractAudio extracts audio from a video file and converts it to a 16kHz
// mono WAV in the temp directory. whisper.cpp only accepts this format.
func (p *implProcessor) extractAudio(ctx context.Context, videoPath string) (string, error) {
	audioPath := p.tempWAVPath(videoPath)

	// A stale WAV from an interrupted run would make ffmpeg fail
	if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
		return "", err
	}

	p.logger.Info(ctx, "WAV: %s", audioPath)

	args := []string{
		"-loglevel", "error",
		"-threads", strconv.Itoa(p.cfg.FFmpeg.Threads),
		"-i", videoPath,
		"-vn",          // No video
		"-ar", "16000", // 16kHz sample rate
		"-ac", "1", // Mono
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", &EngineError{Binary: "ffmpeg", Err: err}
	}

	return audioPath, nil
}

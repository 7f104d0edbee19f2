package processor

import (
	"context"
	"strconv"
)

// transcribe runs the recognition engine on the extracted WAV. The engine
// writes its SRT next to the audio file as <audio>.srt; its stdout/stderr go
// to a per-input log file so long runs can be inspected afterwards.
func (p *implProcessor) transcribe(ctx context.Context, audioPath string) (string, error) {
	logPath := p.logPath(audioPath)

	p.logger.Info(ctx, "Transcribing with %d threads: %s", p.cfg.Whisper.Threads, audioPath)
	p.logger.Debug(ctx, "Engine log: %s", logPath)

	args := []string{
		"--model", p.cfg.Whisper.ModelPath,
		"--output-srt",
		"--threads", strconv.Itoa(p.cfg.Whisper.Threads),
		"--file", audioPath,
	}

	if err := p.executor.ExecuteToFile(ctx, logPath, p.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", &EngineError{Binary: p.cfg.Whisper.BinaryPath, Err: err}
	}

	return audioPath + ".srt", nil
}

package main

import (
	"context"

	"github.com/subwhisper/subwhisper/internal/config"
	"github.com/subwhisper/subwhisper/internal/deps"
	"github.com/subwhisper/subwhisper/internal/logger"
	"github.com/subwhisper/subwhisper/internal/processor"
	"github.com/subwhisper/subwhisper/pkg/executor"
)

func runGenerate(ctx context.Context, opts *rootOptions) error {
	cfg, err := opts.buildConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)
	warnClamped(ctx, log, opts, cfg)

	if err := resolveEngine(ctx, log, cfg); err != nil {
		return err
	}

	inputs, err := processor.ResolveInputs(cfg)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		log.Info(ctx, "No video files found in %s", cfg.Directory)
		return nil
	}

	log.Info(ctx, "Processing %d video file(s)", len(inputs))

	proc := processor.New(cfg, executor.New(), log)
	return proc.ProcessAll(ctx, inputs)
}

// resolveEngine fills in the engine path when none is configured, searching
// near the model file.
func resolveEngine(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	if cfg.Whisper.BinaryPath == "" {
		engine, err := deps.DiscoverEngine(cfg.Whisper.ModelPath)
		if err != nil {
			return err
		}
		cfg.Whisper.BinaryPath = engine
	}
	log.Info(ctx, "Using engine: %s", cfg.Whisper.BinaryPath)
	return nil
}

func warnClamped(ctx context.Context, log logger.Logger, opts *rootOptions, cfg *config.Config) {
	if opts.whisperThreads > cfg.Whisper.Threads {
		log.Warn(ctx, "whisper-threads clamped to the CPU count (%d)", cfg.Whisper.Threads)
	}
	if opts.ffmpegThreads > cfg.FFmpeg.Threads {
		log.Warn(ctx, "ffmpeg-threads clamped to the CPU count (%d)", cfg.FFmpeg.Threads)
	}
}

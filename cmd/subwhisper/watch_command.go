package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/subwhisper/subwhisper/internal/logger"
	"github.com/subwhisper/subwhisper/internal/processor"
	"github.com/subwhisper/subwhisper/internal/watcher"
	"github.com/subwhisper/subwhisper/pkg/executor"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	var directory string
	var maxConcurrent int
	var settleDelay time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a directory and subtitle new videos as they appear",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.directory = directory
			opts.file = ""

			cfg, err := opts.buildConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger.New(cfg.Logging.Level)
			warnClamped(cmd.Context(), log, opts, cfg)

			if err := resolveEngine(cmd.Context(), log, cfg); err != nil {
				return err
			}

			proc := processor.New(cfg, executor.New(), log)

			w, err := watcher.New(cfg.Directory, proc.Process, log, watcher.Options{
				MaxConcurrent: maxConcurrent,
				SettleDelay:   settleDelay,
			})
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
					errChan <- err
				}
			}()

			log.Info(ctx, "Press Ctrl+C to stop")

			select {
			case <-sigChan:
				log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				return err
			}

			cancel()
			return nil
		},
	}

	cmd.Flags().StringVarP(&directory, "directory", "d", "", "Directory to watch for new videos")
	_ = cmd.MarkFlagRequired("directory")
	cmd.Flags().IntVar(&maxConcurrent, "max-concurrent", 1, "Videos transcribed at once")
	cmd.Flags().DurationVar(&settleDelay, "settle-delay", 500*time.Millisecond, "Wait after a new file appears before processing it")

	return cmd
}

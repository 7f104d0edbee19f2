package main

import (
	"github.com/spf13/cobra"

	"github.com/subwhisper/subwhisper/internal/config"
)

type rootOptions struct {
	configPath     string
	modelPath      string
	executable     string
	file           string
	directory      string
	whisperThreads int
	ffmpegThreads  int
	force          bool
	logLevel       string
	logDir         string
	tempDir        string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "subwhisper",
		Short:         "Create subtitles for video files using whisper.cpp",
		Long: `subwhisper extracts audio from video files with ffmpeg and runs a
whisper.cpp-style recognition engine on it, writing an English .srt subtitle
next to each video. Videos that already have a subtitle are skipped unless
--force is set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Optional YAML configuration file")
	pf.StringVarP(&opts.modelPath, "model", "m", "", "Path to the whisper model file")
	pf.StringVarP(&opts.executable, "executable", "e", "", "Path to the whisper.cpp executable (default: discovered near the model)")
	pf.IntVar(&opts.whisperThreads, "whisper-threads", 0, "Threads for the recognition engine (default: CPU count)")
	pf.IntVar(&opts.ffmpegThreads, "ffmpeg-threads", 0, "Threads for ffmpeg (default: 2)")
	pf.BoolVar(&opts.force, "force", false, "Create subtitles even if they already exist")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&opts.logDir, "log-dir", "", "Directory for per-file engine logs (default: logs)")
	pf.StringVar(&opts.tempDir, "temp-dir", "", "Directory for temporary WAV files (default: /tmp)")

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to a single video file")
	cmd.Flags().StringVarP(&opts.directory, "directory", "d", "", "Path to a directory containing video files")
	cmd.MarkFlagsMutuallyExclusive("file", "directory")

	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newWatchCommand(opts))
	cmd.AddCommand(newSummarizeCommand(opts))

	return cmd
}

// buildConfig merges the optional config file with flag overrides. Validation
// is the caller's job; subcommands that take no input selector skip it.
func (o *rootOptions) buildConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if o.modelPath != "" {
		cfg.Whisper.ModelPath = o.modelPath
	}
	if o.executable != "" {
		cfg.Whisper.BinaryPath = o.executable
	}
	if o.whisperThreads > 0 {
		cfg.Whisper.Threads = o.whisperThreads
	}
	if o.ffmpegThreads > 0 {
		cfg.FFmpeg.Threads = o.ffmpegThreads
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logDir != "" {
		cfg.Paths.Logs = o.logDir
	}
	if o.tempDir != "" {
		cfg.Paths.Temp = o.tempDir
	}

	cfg.File = o.file
	cfg.Directory = o.directory
	cfg.Force = o.force

	return cfg, nil
}

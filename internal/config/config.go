package config

import (
	"fmt"
	"runtime"
)

type Config struct {
	Whisper    WhisperConfig    `yaml:"whisper"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
	Summarizer SummarizerConfig `yaml:"summarizer"`

	// Input selection comes from flags only, never from the config file.
	File      string `yaml:"-"`
	Directory string `yaml:"-"`
	Force     bool   `yaml:"-"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	Threads int `yaml:"threads"`
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
	Logs string `yaml:"logs"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type SummarizerConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

// Error describes a missing or invalid configuration value.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Validate checks required fields and fills in defaults. Thread counts above
// the machine's CPU count are clamped; callers that care can compare the
// value before and after.
func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return &Error{Field: "model", Reason: "model path is required"}
	}
	if c.File == "" && c.Directory == "" {
		return &Error{Field: "input", Reason: "either a file or a directory must be specified"}
	}
	if c.File != "" && c.Directory != "" {
		return &Error{Field: "input", Reason: "file and directory are mutually exclusive"}
	}

	cpus := runtime.NumCPU()
	if c.Whisper.Threads <= 0 {
		c.Whisper.Threads = cpus
	}
	if c.Whisper.Threads > cpus {
		c.Whisper.Threads = cpus
	}
	if c.FFmpeg.Threads <= 0 {
		c.FFmpeg.Threads = 2
	}
	if c.FFmpeg.Threads > cpus {
		c.FFmpeg.Threads = cpus
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = "/tmp"
	}
	if c.Paths.Logs == "" {
		c.Paths.Logs = "logs"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "gemini-2.5-flash"
	}

	return nil
}

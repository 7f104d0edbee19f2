package config

import (
	"errors"
	"os"
	"runtime"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid file config",
			config: Config{
				Whisper: WhisperConfig{ModelPath: "models/ggml-base.en.bin"},
				File:    "video.mp4",
			},
			wantErr: false,
		},
		{
			name: "valid directory config",
			config: Config{
				Whisper:   WhisperConfig{ModelPath: "models/ggml-base.en.bin"},
				Directory: "videos",
			},
			wantErr: false,
		},
		{
			name: "missing model path",
			config: Config{
				File: "video.mp4",
			},
			wantErr: true,
		},
		{
			name: "neither file nor directory",
			config: Config{
				Whisper: WhisperConfig{ModelPath: "models/ggml-base.en.bin"},
			},
			wantErr: true,
		},
		{
			name: "both file and directory",
			config: Config{
				Whisper:   WhisperConfig{ModelPath: "models/ggml-base.en.bin"},
				File:      "video.mp4",
				Directory: "videos",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var cfgErr *Error
				if !errors.As(err, &cfgErr) {
					t.Errorf("Validate() error type = %T, want *config.Error", err)
				}
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{ModelPath: "models/ggml-base.en.bin"},
		File:    "video.mp4",
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.Threads != runtime.NumCPU() {
		t.Errorf("Whisper.Threads = %d, want %d", cfg.Whisper.Threads, runtime.NumCPU())
	}
	// The default of 2 is itself subject to the CPU clamp
	wantFFmpeg := min(2, runtime.NumCPU())
	if cfg.FFmpeg.Threads != wantFFmpeg {
		t.Errorf("FFmpeg.Threads = %d, want %d", cfg.FFmpeg.Threads, wantFFmpeg)
	}
	if cfg.Paths.Logs != "logs" {
		t.Errorf("Paths.Logs = %q, want %q", cfg.Paths.Logs, "logs")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestValidateClampsThreads(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{ModelPath: "models/ggml-base.en.bin", Threads: runtime.NumCPU() * 4},
		FFmpeg:  FFmpegConfig{Threads: runtime.NumCPU() * 4},
		File:    "video.mp4",
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.Threads != runtime.NumCPU() {
		t.Errorf("Whisper.Threads = %d, want clamp to %d", cfg.Whisper.Threads, runtime.NumCPU())
	}
	if cfg.FFmpeg.Threads != runtime.NumCPU() {
		t.Errorf("FFmpeg.Threads = %d, want clamp to %d", cfg.FFmpeg.Threads, runtime.NumCPU())
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  model_path: "models/ggml-base.en.bin"
  binary_path: "./whisper-cli"
  threads: 4

ffmpeg:
  threads: 2

paths:
  temp: "/tmp"
  logs: "logs"

logging:
  level: "info"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Errorf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/ggml-base.en.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/ggml-base.en.bin")
	}

	if cfg.Whisper.Threads != 4 {
		t.Errorf("Threads = %v, want 4", cfg.Whisper.Threads)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subwhisper/subwhisper/internal/config"
	"github.com/subwhisper/subwhisper/internal/logger"
	"github.com/subwhisper/subwhisper/internal/summarizer"
)

func newSummarizeCommand(opts *rootOptions) *cobra.Command {
	var srtDir string
	var outputDir string
	var model string
	var apiKeys []string

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize generated subtitles with Gemini",
		Long: `summarize reads the .srt files in a directory and produces a markdown
summary, a docx summary and a docx transcript for each, using the Gemini API.
API keys come from --api-key, the config file, or the GEMINI_API_KEY
environment variable (comma-separated for multiple keys).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.buildConfig()
			if err != nil {
				return err
			}

			keys := apiKeys
			if len(keys) == 0 {
				keys = cfg.Summarizer.APIKeys
			}
			if len(keys) == 0 {
				if env := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); env != "" {
					keys = strings.Split(env, ",")
				}
			}
			if len(keys) == 0 {
				return &config.Error{Field: "summarizer.api_keys", Reason: "no Gemini API key configured"}
			}

			if model == "" {
				model = cfg.Summarizer.Model
			}
			if outputDir == "" {
				outputDir = filepath.Join(srtDir, "summaries")
			}

			log := logger.New(cfg.Logging.Level)
			s := summarizer.New(keys, model, log)
			return s.SummarizeAll(cmd.Context(), srtDir, outputDir)
		},
	}

	cmd.Flags().StringVar(&srtDir, "srt-dir", "", "Directory containing generated .srt files")
	_ = cmd.MarkFlagRequired("srt-dir")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for summaries (default: <srt-dir>/summaries)")
	cmd.Flags().StringVar(&model, "summary-model", "", "Gemini model to use")
	cmd.Flags().StringSliceVar(&apiKeys, "api-key", nil, "Gemini API key (repeatable)")

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subwhisper/subwhisper/internal/deps"
)

func newCheckCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that ffmpeg and the recognition engine are available",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.buildConfig()
			if err != nil {
				return err
			}

			engine := cfg.Whisper.BinaryPath
			if engine == "" && cfg.Whisper.ModelPath != "" {
				if found, err := deps.DiscoverEngine(cfg.Whisper.ModelPath); err == nil {
					engine = found
				}
			}

			statuses := deps.CheckBinaries([]deps.Requirement{
				{Name: "ffmpeg", Command: "ffmpeg", Description: "audio extraction"},
				{Name: "whisper", Command: engine, Description: "speech recognition engine"},
			})

			missing := false
			for _, st := range statuses {
				state := "ok"
				detail := st.Command
				if !st.Available {
					state = "MISSING"
					detail = st.Detail
					missing = true
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-8s %s\n", st.Name, state, detail)
			}

			if missing {
				return fmt.Errorf("required binaries are missing")
			}
			return nil
		},
	}
}

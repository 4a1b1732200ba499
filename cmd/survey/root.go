package main

import (
	"os"

	"github.com/spf13/cobra"

	survey "github.com/Jumpaku/go-survey"
	"github.com/Jumpaku/go-survey/export"
	"github.com/Jumpaku/go-survey/internal/config"
	"github.com/Jumpaku/go-survey/internal/logging"
	"github.com/Jumpaku/go-survey/internal/shell"
)

var (
	configFlag   string
	logLevelFlag string
	formatFlag   string
	noPromptFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "survey",
	Short: "Author and preview a survey",
	Long: `survey is an interactive survey editor.

Add questions, answer them in the preview and export the survey definition
and the responses as JSON, YAML or TOML. Type help for the list of commands.

Examples:
  survey
  survey --format yaml
  survey --no-prompt < script.txt`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: ./survey.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&formatFlag, "format", "", "Export format: json, yaml, toml")
	rootCmd.Flags().BoolVar(&noPromptFlag, "no-prompt", false, "Do not print a prompt")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if logLevelFlag != "" {
		cfg.Log.Level = logLevelFlag
	}
	if formatFlag != "" {
		cfg.Export.Format = formatFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	logger := logging.New(os.Stderr, level, cfg.Log.Format)
	format, _ := export.ParseFormat(cfg.Export.Format)

	session := survey.NewSession(
		survey.WithTitle(cfg.Survey.Title),
		survey.WithDescription(cfg.Survey.Description),
		survey.WithLogger(logger),
	)
	view := export.NewView(session, export.SystemClipboard{},
		export.WithFormat(format),
		export.WithCopyAck(cfg.Export.CopyAck),
		export.WithLogger(logger),
	)
	publisher := shell.NewFormPublisher(newFormClient(cfg.Google), cfg.Google, logger)

	sh := shell.New(session, view, cmd.OutOrStdout(),
		shell.WithPublisher(publisher),
		shell.WithLogger(logger),
		shell.WithPrompt(!noPromptFlag),
	)
	return sh.Run(cmd.Context(), cmd.InOrStdin())
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/scribeapp/scribe/internal/api"
	"github.com/scribeapp/scribe/internal/bus"
	"github.com/scribeapp/scribe/internal/config"
	"github.com/scribeapp/scribe/internal/logger"
	"github.com/scribeapp/scribe/internal/tui"
)

// Build variables set by ldflags
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		cfgFile  string
		apiURL   string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:     "scribe",
		Short:   "Terminal client for the Scribe writing platform",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				os.Setenv("SCRIBE_CONFIG", cfgFile)
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if apiURL != "" {
				cfg.API.BaseURL = apiURL
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}

			log, closeLog, err := logger.New(cfg.Log.Path, cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer closeLog()

			client := api.New(cfg.API.BaseURL, log)
			app := tui.NewApp(cfg, client, bus.New(), log)

			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	return cmd
}

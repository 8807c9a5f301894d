// Package cli implements the defamation console commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/defamation-console/internal/app"
	"github.com/samvad-hq/defamation-console/internal/config"
	"github.com/samvad-hq/defamation-console/internal/logger"
)

// session is filled in by the root PersistentPreRunE and shared by every subcommand.
type session struct {
	output  string
	cfg     *config.Config
	log     *logger.ZapLogger
	console *app.Console
}

// NewRootCommand builds the command tree. Each call returns an independent tree.
func NewRootCommand() *cobra.Command {
	rt := &session{}

	root := &cobra.Command{
		Use:           "defamation",
		Short:         "Query the defamation classification service",
		Long:          "defamation lists models, classifies text and shows recent case records from the defamation backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return rt.setup()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return rt.teardown()
		},
	}

	root.PersistentFlags().StringVarP(&rt.output, "output", "o", formatJSON, "output format: json or yaml")

	root.AddCommand(newModelsCmd(rt))
	root.AddCommand(newClassifyCmd(rt))
	root.AddCommand(newCasesCmd(rt))
	root.AddCommand(newModelCasesCmd(rt))
	root.AddCommand(newServeCmd(rt))

	return root
}

func (rt *session) setup() error {
	if err := validateFormat(rt.output); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.DebugObj("console starting", "config", cfg)

	console, err := app.NewConsole(cfg, log)
	if err != nil {
		return fmt.Errorf("init console: %w", err)
	}

	rt.cfg = cfg
	rt.log = log
	rt.console = console
	return nil
}

func (rt *session) teardown() error {
	if rt.log == nil {
		return nil
	}
	// Sync on stderr returns EINVAL on some platforms; nothing useful to report.
	_ = rt.log.Close()
	return nil
}

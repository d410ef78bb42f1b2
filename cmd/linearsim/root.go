package main

import (
	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-linear/internal/app"
	"github.com/huynhanx03/go-linear/internal/config"
	"github.com/huynhanx03/go-linear/pkg/logger"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "linearsim",
		Short:         "Bounded stack and queue simulator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")

	cmd.AddCommand(
		newServeCmd(opts),
		newReplCmd(opts),
		newExecCmd(opts),
	)
	return cmd
}

// buildApp loads configuration and wires a new session.
func buildApp(opts *rootOptions) (*app.App, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, err
	}
	return app.New(cfg, log)
}

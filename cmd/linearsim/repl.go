package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-linear/internal/repl"
)

func newReplCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run an interactive terminal session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return repl.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), a.Dispatcher)
		},
	}
}

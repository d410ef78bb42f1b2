package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-linear/internal/simulator"
	"github.com/huynhanx03/go-linear/pkg/utils"
)

func newExecCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "exec <command[:value]>...",
		Short:   "Run a scripted session and print the final sequence",
		Example: "  linearsim exec stack_push:1 stack_push:2 stack_pop",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			return runScript(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), a.Dispatcher, args)
		},
	}
}

// runScript executes each "name[:value]" step in order. Domain failures are
// reported on errOut and the script continues; an unknown command stops it.
func runScript(ctx context.Context, out, errOut io.Writer, d *simulator.Dispatcher, steps []string) error {
	for _, step := range steps {
		name, value, _ := strings.Cut(step, ":")

		c, err := simulator.ParseCommand(name)
		if err != nil {
			return errors.Wrapf(err, "step %q", step)
		}
		if value != "" && !c.NeedsValue() {
			return errors.Errorf("step %q: %s takes no value", step, c.Name)
		}

		res, err := d.Execute(ctx, name, value)
		if err != nil {
			fmt.Fprintln(errOut, res.Message)
		}
	}

	fmt.Fprintln(out, utils.JoinInts(d.Snapshot().Elements, ","))
	return nil
}

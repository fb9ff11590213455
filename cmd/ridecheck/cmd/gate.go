package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/corey/ridecheck/internal/app"
	"github.com/spf13/cobra"
)

func newGateCmd(opts *rootOptions) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Evaluate JSON-lines requests from stdin",
		Long: "Reads one request per line from stdin:\n" +
			`  {"attraction": "Kiddie Slide", "visitor": {"name": "Ana", "age": 10, "weight": 30, "height": 100}}` + "\n" +
			"and writes one JSON response per line to stdout.\n" +
			"With --watch the catalog file is reloaded whenever it changes.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGate(cmd, opts, watch)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the --catalog file when it changes")
	return cmd
}

func runGate(cmd *cobra.Command, opts *rootOptions, watch bool) error {
	stderr := cmd.ErrOrStderr()
	gate, err := opts.openGate(app.Config{
		Watch: watch,
		OnReload: func(err error) {
			if err != nil {
				fmt.Fprintf(stderr, "[warning] catalog reload failed, keeping previous: %v\n", err)
			}
		},
	})
	if err != nil {
		return err
	}
	if err := gate.Start(); err != nil {
		return err
	}
	defer gate.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = gate.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

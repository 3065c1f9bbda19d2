// CLASSIFICATION: COMMUNITY
// Filename: cli.go v0.3
// Date Modified: 2026-10-16
// Author: Lukas Bower
//
// ─────────────────────────────────────────────────────────────
// webapp · UI asset server command
//
// The root command takes no arguments. It binds the compiled-in
// port, serves the public directory next to the executable and
// prints a single banner line to stdout. SIGINT/SIGTERM stop the
// server gracefully.
// ─────────────────────────────────────────────────────────────
package tooling

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"webapp/ui"
	uihttp "webapp/ui/http"
)

type serveFunc func(ctx context.Context, cfg uihttp.Config, out io.Writer) error

func serve(ctx context.Context, cfg uihttp.Config, out io.Writer) error {
	return ui.New(cfg).Start(ctx, out)
}

func newRootCommand(run serveFunc) *cobra.Command {
	return &cobra.Command{
		Use:           "webapp",
		Short:         "Serve the UI's public directory over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := uihttp.DefaultConfig()
			if err != nil {
				return err
			}
			cfg.Logger = logrus.WithField("component", "webapp")

			ctx, cancel := newSignalContext(cmd.Context())
			defer cancel()
			return run(ctx, cfg, cmd.OutOrStdout())
		},
	}
}

// Execute runs the CLI and exits 1 on failure. Typically called from main().
func Execute() {
	logrus.SetOutput(os.Stderr)

	cmd := newRootCommand(serve)
	cmd.SetOut(os.Stdout)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

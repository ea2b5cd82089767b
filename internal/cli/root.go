// Package cli holds the developer commands: rendering the page against the
// content API, serving a mock content API and probing a live one.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mrlokans/portfolio/internal/config"
)

// NewRootCommand assembles the command tree. Configuration comes from the
// environment; flags override it per invocation.
func NewRootCommand(version string) *cobra.Command {
	cfg := config.NewConfig()

	root := &cobra.Command{
		Use:     "portfolio",
		Short:   "Portfolio site tooling",
		Long:    `Renders the portfolio page against its content API and provides a mock content API for local development.`,
		Version: version,

		SilenceUsage: true,
	}

	root.AddCommand(
		NewPreviewCommand(cfg).Command(),
		NewMockCMSCommand(cfg).Command(),
		NewCheckCommand(cfg).Command(),
	)
	return root
}

// Execute runs the command tree, cancelling the command context on SIGINT
// or SIGTERM.
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand(version).ExecuteContext(ctx)
}

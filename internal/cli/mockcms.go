package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/mrlokans/portfolio/internal/cmsmock"
	"github.com/mrlokans/portfolio/internal/config"
	"github.com/mrlokans/portfolio/internal/entrypoint"
)

// MockCMSCommand serves fixture content on the content API routes.
type MockCMSCommand struct {
	cfg *config.Config

	Host         string
	Port         int32
	DatabasePath string
	FixturesPath string
}

func NewMockCMSCommand(cfg *config.Config) *MockCMSCommand {
	return &MockCMSCommand{cfg: cfg}
}

func (c *MockCMSCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock-cms",
		Short: "Serve a mock content API from YAML fixtures",
		Long: `Serves the content API routes the page reads from YAML fixtures, honouring
sort and equality filters. Contact form submissions are stored in SQLite.
Without --fixtures the bundled sample content is served.`,
		Example: `  portfolio mock-cms
  portfolio mock-cms --fixtures content.yaml --port 1338`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&c.Host, "host", c.cfg.MockCMS.Host, "address to listen on")
	cmd.Flags().Int32VarP(&c.Port, "port", "p", c.cfg.MockCMS.Port, "port to listen on")
	cmd.Flags().StringVar(&c.DatabasePath, "db", c.cfg.MockCMS.DatabasePath, "SQLite file for contact messages")
	cmd.Flags().StringVarP(&c.FixturesPath, "fixtures", "f", c.cfg.MockCMS.FixturesPath, "YAML fixtures file")
	return cmd
}

func (c *MockCMSCommand) Run(ctx context.Context) error {
	fixtures, err := cmsmock.LoadFixtures(c.FixturesPath)
	if err != nil {
		return err
	}

	store, err := cmsmock.NewStore(c.DatabasePath)
	if err != nil {
		return err
	}

	source := c.FixturesPath
	if source == "" {
		source = "bundled sample content"
	}
	log.Printf("Mock CMS: serving %s", source)

	retention := cmsmock.NewRetentionScheduler(store, c.cfg.MockCMS.RetentionSchedule, c.cfg.MockCMS.Retention)
	if err := retention.Start(ctx); err != nil {
		store.Close()
		return err
	}

	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	limiter := cmsmock.NewRateLimiter(c.cfg.MockCMS.ContactLimit, c.cfg.MockCMS.ContactWindow)
	server := cmsmock.NewServer(fixtures, store, cmsmock.WithContactRateLimit(limiter))

	return entrypoint.Serve(ctx, server.Router(), addr, c.cfg.MockCMS.ShutdownTimeout, func(context.Context) {
		retention.Stop()
		if err := store.Close(); err != nil {
			log.Printf("Mock CMS: failed to close message store: %v", err)
		}
	})
}

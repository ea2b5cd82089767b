package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrlokans/portfolio/internal/cms"
	"github.com/mrlokans/portfolio/internal/config"
	"github.com/mrlokans/portfolio/internal/entities"
)

const defaultCheckTimeout = 10 * time.Second

// CheckCommand checks every content API endpoint the page reads.
type CheckCommand struct {
	cfg *config.Config

	BaseURL string
	Timeout time.Duration
}

func NewCheckCommand(cfg *config.Config) *CheckCommand {
	return &CheckCommand{cfg: cfg}
}

func (c *CheckCommand) Command() *cobra.Command {
	timeout := c.cfg.CMS.Timeout
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe every content API endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&c.BaseURL, "cms", c.cfg.CMS.BaseURL, "content API base URL")
	cmd.Flags().DurationVar(&c.Timeout, "timeout", timeout, "per-request timeout")
	return cmd
}

type endpointCheck struct {
	name  string
	fetch func(ctx context.Context, client *cms.Client) (int, error)
}

func count[T any](fetch func(*cms.Client, context.Context) ([]T, error)) func(context.Context, *cms.Client) (int, error) {
	return func(ctx context.Context, client *cms.Client) (int, error) {
		records, err := fetch(client, ctx)
		return len(records), err
	}
}

var endpointChecks = []endpointCheck{
	{name: cms.PathSiteSetting, fetch: func(ctx context.Context, client *cms.Client) (int, error) {
		_, err := client.SiteSettings(ctx)
		if err != nil {
			return 0, err
		}
		return 1, nil
	}},
	{name: cms.PathSectionSettings, fetch: count((*cms.Client).Sections)},
	{name: cms.PathSectionSettings + " (about)", fetch: func(ctx context.Context, client *cms.Client) (int, error) {
		section, err := client.Section(ctx, entities.SectionAbout)
		if err != nil || section == nil {
			return 0, err
		}
		return 1, nil
	}},
	{name: cms.PathPortfolioItems, fetch: count((*cms.Client).PortfolioItems)},
	{name: cms.PathPortfolioCategories, fetch: count((*cms.Client).PortfolioCategories)},
	{name: cms.PathBlogPosts, fetch: count((*cms.Client).BlogPosts)},
	{name: cms.PathSocialLinks, fetch: count((*cms.Client).SocialLinks)},
}

// Run prints one line per endpoint and fails if any endpoint failed.
func (c *CheckCommand) Run(ctx context.Context, out io.Writer) error {
	client := cms.NewClient(c.BaseURL, c.Timeout)
	fmt.Fprintf(out, "Content API: %s\n\n", client.BaseURL())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	failed := 0
	for _, p := range endpointChecks {
		started := time.Now()
		n, err := p.fetch(ctx, client)
		elapsed := time.Since(started).Round(time.Millisecond)
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL\t%s\t%v\t%s\n", p.name, elapsed, err)
			continue
		}
		fmt.Fprintf(w, "OK\t%s\t%v\t%d records\n", p.name, elapsed, n)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d endpoints failed", failed, len(endpointChecks))
	}
	return nil
}

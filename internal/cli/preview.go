package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrlokans/portfolio/internal/cms"
	"github.com/mrlokans/portfolio/internal/config"
	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/page"
)

const defaultWatchDebounce = 300 * time.Millisecond

// PreviewCommand renders the page template with live content.
type PreviewCommand struct {
	cfg *config.Config

	TemplatePath string
	OutputPath   string
	Watch        bool
	Debounce     time.Duration
}

func NewPreviewCommand(cfg *config.Config) *PreviewCommand {
	return &PreviewCommand{cfg: cfg}
}

func (c *PreviewCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the page against the content API",
		Long: `Loads the page template, runs every content loader against the content API
and writes the resulting document. With --watch the page is rendered again
whenever the template changes.`,
		Example: `  portfolio preview --out dist/index.html
  CMS_BASE_URL=https://cms.example.com portfolio preview --watch --out dist/index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&c.TemplatePath, "template", c.cfg.Template.Path, "page template to render")
	cmd.Flags().StringVarP(&c.OutputPath, "out", "o", "", "write the page to this file instead of stdout")
	cmd.Flags().BoolVarP(&c.Watch, "watch", "w", false, "render again when the template changes")
	cmd.Flags().DurationVar(&c.Debounce, "debounce", defaultWatchDebounce, "quiet period before re-rendering in watch mode")
	return cmd
}

func (c *PreviewCommand) Run(ctx context.Context, stdout io.Writer) error {
	if err := c.render(ctx, stdout); err != nil {
		return err
	}
	if !c.Watch {
		return nil
	}

	log.Printf("Preview: watching %s for changes", c.TemplatePath)
	var rendering sync.Mutex
	return watchFile(ctx, c.TemplatePath, c.Debounce, func() {
		rendering.Lock()
		defer rendering.Unlock()
		if err := c.render(ctx, stdout); err != nil {
			log.Printf("Preview: render failed: %v", err)
		}
	})
}

// render produces one snapshot of the page and writes it out.
func (c *PreviewCommand) render(ctx context.Context, stdout io.Writer) error {
	f, err := os.Open(c.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to open template: %w", err)
	}
	doc, err := dom.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", c.TemplatePath, err)
	}

	client := cms.NewClient(c.cfg.CMS.BaseURL, c.cfg.CMS.Timeout)

	var buf bytes.Buffer
	started := time.Now()
	if err := page.Snapshot(ctx, doc, client, c.cfg, &buf); err != nil {
		return err
	}

	if c.OutputPath == "" {
		_, err = buf.WriteTo(stdout)
		return err
	}
	if err := os.WriteFile(c.OutputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.OutputPath, err)
	}
	log.Printf("Preview: rendered %s in %v", c.OutputPath, time.Since(started).Round(time.Millisecond))
	return nil
}

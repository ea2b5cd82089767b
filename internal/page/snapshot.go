package page

import (
	"context"
	"fmt"
	"io"

	"github.com/mrlokans/portfolio/internal/config"
	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/eventloop"
)

// Snapshot loads doc against the content API on a live event loop and
// writes the document once every loader has finished.
func Snapshot(ctx context.Context, doc *dom.Document, client Content, cfg *config.Config, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := eventloop.New()
	loop.Start(loopCtx)

	var p *Page
	ready := make(chan error, 1)
	loop.Do(func() {
		var err error
		p, err = New(ctx, doc, loop, client, cfg)
		if err == nil {
			p.Ready()
		}
		ready <- err
	})

	select {
	case err := <-ready:
		if err != nil {
			return fmt.Errorf("failed to initialize page: %w", err)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-p.Loaded():
	case <-ctx.Done():
		return ctx.Err()
	}

	rendered := make(chan error, 1)
	loop.Do(func() { rendered <- doc.Render(w) })
	select {
	case err := <-rendered:
		if err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

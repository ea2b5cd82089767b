package page

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/mrlokans/portfolio/internal/cms"
	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RendersLoadedPage(t *testing.T) {
	server := httptest.NewServer(newFakeCMS())
	defer server.Close()

	markup, err := os.ReadFile("testdata/index.html")
	require.NoError(t, err)
	doc, err := dom.ParseString(string(markup))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out bytes.Buffer
	require.NoError(t, Snapshot(ctx, doc, cms.NewClient(server.URL, 5*time.Second), testConfig(server.URL), &out))

	rendered := out.String()
	assert.Contains(t, rendered, "<title>Donato Pastrello Droni</title>")
	assert.Contains(t, rendered, `src="`+server.URL+`/uploads/img1.jpg"`)
	assert.Contains(t, rendered, "Nuovo drone")
	assert.Contains(t, rendered, "Instagram")
}

func TestSnapshot_CancelledContext(t *testing.T) {
	doc, err := dom.ParseString(`<html><body></body></html>`)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = Snapshot(ctx, doc, cms.NewClient("http://127.0.0.1:1", time.Second), testConfig("http://127.0.0.1:1"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

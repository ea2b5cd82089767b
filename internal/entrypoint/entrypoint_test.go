package entrypoint

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeListener_GracefulShutdown(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	ctx, cancel := context.WithCancel(context.Background())
	shutdownCalled := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- ServeListener(ctx, handler, listener, time.Second, func(context.Context) {
			close(shutdownCalled)
		})
	}()

	resp, err := http.Get("http://" + listener.Addr().String())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	select {
	case <-shutdownCalled:
	default:
		t.Fatal("shutdown hook not called")
	}
}

func TestServe_InvalidAddress(t *testing.T) {
	err := Serve(context.Background(), http.NotFoundHandler(), "256.0.0.1:bad", time.Second, nil)
	assert.Error(t, err)
}

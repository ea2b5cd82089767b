package entrypoint

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs handler on addr until ctx is cancelled, then shuts the server
// down, giving in-flight requests up to timeout to finish.
func Serve(ctx context.Context, handler http.Handler, addr string, timeout time.Duration, onShutdown ShutdownFunc) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return ServeListener(ctx, handler, listener, timeout, onShutdown)
}

// ServeListener is Serve on an existing listener.
func ServeListener(ctx context.Context, handler http.Handler, listener net.Listener, timeout time.Duration, onShutdown ShutdownFunc) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Printf("Starting server at %s", listener.Addr())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Printf("Shutdown Server, waiting %v before killing", timeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Println("Server exiting")
	return nil
}

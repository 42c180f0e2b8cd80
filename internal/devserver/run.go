package devserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderlust/travel-client/client/fallback"
	"github.com/wanderlust/travel-client/internal/config"
)

// Run serves the dev backend on cfg.DevServerPort, seeded with the demo
// dataset, and blocks until SIGINT/SIGTERM or a server error.
func Run(cfg *config.Config, log zerolog.Logger) error {
	log.Info().
		Int("http_port", cfg.DevServerPort).
		Msg("Dev backend starting")

	ctx, stop := newServerContext()
	defer stop()

	st := NewStore(0)
	st.Load(fallback.MustDemo())
	srv := New(st, Options{
		AdminKey:       cfg.DevServerAdminKey,
		PublicURL:      cfg.DevServerPublicURL,
		AllowedOrigins: cfg.DevServerCORSOrigins,
	})

	server := newHTTPServer(ctx, cfg.DevServerPort, srv.Handler())
	errCh := serveHTTP(server, log, cfg.DevServerPort)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

func newHTTPServer(ctx context.Context, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, port int) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/project/ticket-service/internal/config"
	"github.com/project/ticket-service/internal/handler"
	"github.com/project/ticket-service/internal/logger"
)

type server struct {
	servers         []Server
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer creates a server for every handler present in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		s.servers = append(s.servers, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		s.servers = append(s.servers, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// RunServer launches every server and blocks until ctx is cancelled or one
// of them fails. All servers are then shut down within the configured
// shutdown timeout.
func (s *server) RunServer(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		errMu   sync.Mutex
		runErrs []error
	)
	for _, srv := range s.servers {
		wg.Go(func() {
			if err := srv.RunServer(ctx); err != nil {
				errMu.Lock()
				runErrs = append(runErrs, err)
				errMu.Unlock()
				// one failed transport stops the others
				cancel()
			}
		})
	}

	<-ctx.Done()

	shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer stop()
	shutdownErr := s.Shutdown(shutdownCtx)

	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return errors.Join(append(runErrs, shutdownErr)...)
}

// Shutdown stops all servers concurrently.
func (s *server) Shutdown(ctx context.Context) error {
	errs := make([]error, len(s.servers))

	var wg sync.WaitGroup
	for i, srv := range s.servers {
		wg.Go(func() {
			errs[i] = srv.Shutdown(ctx)
		})
	}
	wg.Wait()

	return errors.Join(errs...)
}

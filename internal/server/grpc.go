package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/project/ticket-service/internal/config"
	myGRPC "github.com/project/ticket-service/internal/handler/grpc"
	"github.com/project/ticket-service/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer(_ context.Context) error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("func", "grpcServer.RunServer").Str("address", g.address).Msg("error listening")
		return fmt.Errorf("%w: grpc %s: %w", ErrListening, g.address, err)
	}

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		g.logger.Err(err).Str("func", "grpcServer.RunServer").Msg("gRPC server Serve failed")
		return fmt.Errorf("%w: grpc: %w", ErrServing, err)
	}

	return nil
}

// Shutdown reports NOT_SERVING, then waits for in-flight RPCs. Connections
// still open when ctx is done are closed forcibly.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("%w: grpc: %w", ErrShuttingDown, ctx.Err())
	}
}

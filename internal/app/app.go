// Package app assembles the ticket service from its configuration and runs
// it until the process is asked to stop.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/project/ticket-service/internal/adapter"
	"github.com/project/ticket-service/internal/config"
	"github.com/project/ticket-service/internal/discovery"
	"github.com/project/ticket-service/internal/handler"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/server"
	"github.com/project/ticket-service/internal/service"
	"github.com/project/ticket-service/internal/store"
	"github.com/project/ticket-service/internal/utils"
	"github.com/project/ticket-service/internal/workers"
	"github.com/project/ticket-service/models"
	"github.com/redis/go-redis/v9"
)

// App owns every long-lived component of a running instance.
type App struct {
	cfg *config.StructuredConfig

	db    *store.DB
	redis *redis.Client

	// registry and instance are nil/zero when discovery is disabled.
	registry *discovery.Registry
	instance models.ServiceInstance

	services *service.Services
	server   server.Server
	workers  *workers.Workers

	logger *logger.Logger
}

// New connects to the database and the service registry, applies the schema
// migrations and builds the service and transport layers. Everything opened
// before a failure is closed again.
func New(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (_ *App, err error) {
	a := &App{cfg: cfg, logger: logger}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	if a.db, err = store.NewDB(ctx, cfg.Storage.DB, logger); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err = a.db.Migrate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	storages := store.NewStorages(a.db, logger)

	instanceID := utils.NewUUIDGenerator().Generate()

	var resolver adapter.Resolver
	if cfg.DiscoveryEnabled() {
		a.redis = discovery.NewRedisClient(cfg.Discovery)
		if err = a.redis.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDiscovery, err)
		}
		a.registry = discovery.NewRegistry(a.redis, cfg.Discovery.InstanceTTL, logger)
		a.instance = models.ServiceInstance{
			Name:       cfg.App.ServiceName,
			InstanceID: instanceID,
			Address:    cfg.Discovery.AdvertiseAddress,
		}
		resolver = a.registry
	}

	users, err := adapter.NewHTTPUserServiceAdapter(cfg.Adapter, resolver, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAdapter, err)
	}

	if a.services, err = service.NewServices(storages, users, cfg, instanceID, logger); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServices, err)
	}

	handlers, err := handler.NewHandlers(a.services, cfg.Server, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if a.server, err = server.NewServer(handlers, cfg.Server, logger); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if a.registry != nil {
		a.workers = workers.NewWorkers(a.registry.Heartbeat(a.instance, cfg.Discovery.HeartbeatInterval))
	} else {
		a.workers = workers.NewWorkers()
	}

	return a, nil
}

// Services exposes the business layer of the instance.
func (a *App) Services() *service.Services {
	return a.services
}

// Run registers the instance in discovery, then serves requests and runs the
// background workers until ctx is cancelled or the server fails. On the way
// out the workers are stopped, the instance is deregistered and all
// connections are closed.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	if a.registry != nil {
		if err := a.registry.Register(ctx, a.instance); err != nil {
			return fmt.Errorf("%w: %w", ErrDiscovery, err)
		}
		a.logger.Info().
			Str("service", a.instance.Name).
			Str("instance_id", a.instance.InstanceID).
			Str("address", a.instance.Address).
			Msg("registered in service discovery")
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	var (
		wg        sync.WaitGroup
		workerErr error
	)
	wg.Go(func() {
		workerErr = a.workers.Run(workersCtx)
	})

	serverErr := a.server.RunServer(ctx)

	stopWorkers()
	wg.Wait()

	var deregisterErr error
	if a.registry != nil {
		deregisterCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := a.registry.Deregister(deregisterCtx, a.instance); err != nil {
			deregisterErr = fmt.Errorf("%w: %w", ErrDiscovery, err)
		}
	}

	a.logger.Info().Msg("application stopped")
	return errors.Join(serverErr, workerErr, deregisterErr)
}

func (a *App) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.close").Msg("error closing database")
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.close").Msg("error closing registry client")
		}
	}
}

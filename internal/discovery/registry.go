package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/project/ticket-service/internal/config"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/workers"
	"github.com/project/ticket-service/models"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "services"
	scanCount = 100
)

// keyValueStore is the subset of *redis.Client the registry uses.
type keyValueStore interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// Registry registers instances and resolves services.
type Registry struct {
	store keyValueStore
	ttl   time.Duration

	mu       sync.Mutex
	counters map[string]uint64

	logger *logger.Logger
}

// NewRedisClient creates a go-redis client from the discovery settings.
func NewRedisClient(cfg config.Discovery) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// NewRegistry creates a registry whose registrations live for ttl unless
// refreshed.
func NewRegistry(store keyValueStore, ttl time.Duration, logger *logger.Logger) *Registry {
	return &Registry{
		store:    store,
		ttl:      ttl,
		counters: make(map[string]uint64),
		logger:   logger,
	}
}

func instanceKey(name, instanceID string) string {
	return keyPrefix + ":" + name + ":" + instanceID
}

func servicePattern(name string) string {
	return keyPrefix + ":" + name + ":*"
}

// Register stores instance with the registry TTL. Calling it again refreshes
// the TTL.
func (r *Registry) Register(ctx context.Context, instance models.ServiceInstance) error {
	if instance.Name == "" || instance.InstanceID == "" || instance.Address == "" {
		return ErrInvalidInstance
	}
	if instance.RegisteredAt.IsZero() {
		instance.RegisteredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(instance)
	if err != nil {
		return fmt.Errorf("error encoding service instance: %w", err)
	}

	key := instanceKey(instance.Name, instance.InstanceID)
	if err = r.store.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("error registering %s: %w", key, err)
	}

	return nil
}

// Deregister removes instance from the registry.
func (r *Registry) Deregister(ctx context.Context, instance models.ServiceInstance) error {
	key := instanceKey(instance.Name, instance.InstanceID)
	if err := r.store.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("error deregistering %s: %w", key, err)
	}

	r.logger.Info().
		Str("service", instance.Name).
		Str("instance_id", instance.InstanceID).
		Msg("deregistered from service discovery")
	return nil
}

// Instances lists the live instances of serviceName ordered by instance id.
func (r *Registry) Instances(ctx context.Context, serviceName string) ([]models.ServiceInstance, error) {
	var (
		cursor    uint64
		instances []models.ServiceInstance
	)

	for {
		keys, next, err := r.store.Scan(ctx, cursor, servicePattern(serviceName), scanCount).Result()
		if err != nil {
			return nil, fmt.Errorf("error scanning instances of %s: %w", serviceName, err)
		}

		for _, key := range keys {
			raw, getErr := r.store.Get(ctx, key).Bytes()
			if errors.Is(getErr, redis.Nil) {
				// expired between scan and get
				continue
			}
			if getErr != nil {
				return nil, fmt.Errorf("error reading %s: %w", key, getErr)
			}

			var instance models.ServiceInstance
			if err = json.Unmarshal(raw, &instance); err != nil {
				r.logger.Warn().Err(err).Str("key", key).Msg("skipping malformed service instance")
				continue
			}
			instances = append(instances, instance)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	slices.SortFunc(instances, func(a, b models.ServiceInstance) int {
		return strings.Compare(a.InstanceID, b.InstanceID)
	})
	return instances, nil
}

// Resolve picks one live instance of serviceName, round-robin across calls.
func (r *Registry) Resolve(ctx context.Context, serviceName string) (models.ServiceInstance, error) {
	instances, err := r.Instances(ctx, serviceName)
	if err != nil {
		return models.ServiceInstance{}, err
	}
	if len(instances) == 0 {
		return models.ServiceInstance{}, fmt.Errorf("%w: %s", ErrNoInstances, serviceName)
	}

	r.mu.Lock()
	n := r.counters[serviceName]
	r.counters[serviceName] = n + 1
	r.mu.Unlock()

	return instances[n%uint64(len(instances))], nil
}

// Heartbeat returns a worker that re-registers instance every interval.
func (r *Registry) Heartbeat(instance models.ServiceInstance, interval time.Duration) workers.Worker {
	return workers.NewPeriodicWorker("discovery-heartbeat", interval, func(ctx context.Context) error {
		return r.Register(ctx, instance)
	}, r.logger)
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/infrastructure/metrics"
	"github.com/hydrotrack/core/internal/ports"
)

// collection stores a whole entity slice as one JSON array under one key.
// Every change rewrites the full array; mu serialises read-modify-write cycles.
type collection[T any] struct {
	store   ports.KeyValueStore
	key     string
	logger  *logger.Logger
	metrics *metrics.Metrics
	mu      sync.Mutex
}

func newCollection[T any](store ports.KeyValueStore, key string, log *logger.Logger, m *metrics.Metrics) *collection[T] {
	return &collection[T]{store: store, key: key, logger: log, metrics: m}
}

func (c *collection[T]) load(ctx context.Context) ([]*T, error) {
	data, err := c.store.Get(ctx, c.key)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return []*T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	var items []*T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []*T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}

	err = c.store.Set(ctx, c.key, data)
	c.metrics.ObserveStoreWrite(c.key, err)
	if c.logger != nil {
		c.logger.LogStoreWrite(c.key, len(items), err)
	}
	if err != nil {
		return fmt.Errorf("store %s: %w", c.key, err)
	}
	return nil
}

// all returns a fresh decoded copy of the collection.
func (c *collection[T]) all(ctx context.Context) ([]*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// replace loads the collection, lets fn produce the new one and persists it.
// Nothing is written when fn fails.
func (c *collection[T]) replace(ctx context.Context, fn func(items []*T) ([]*T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	next, err := fn(items)
	if err != nil {
		return err
	}

	return c.save(ctx, next)
}

// Repositories bundles one repository per persisted collection
type Repositories struct {
	Setups      ports.SetupRepository
	Plants      ports.PlantRepository
	Equipment   ports.EquipmentRepository
	Ingredients ports.IngredientRepository
	Tasks       ports.TaskRepository
}

// New creates all repositories over one key-value store
func New(store ports.KeyValueStore, log *logger.Logger, m *metrics.Metrics) *Repositories {
	return &Repositories{
		Setups:      NewSetupRepository(store, log, m),
		Plants:      NewPlantRepository(store, log, m),
		Equipment:   NewEquipmentRepository(store, log, m),
		Ingredients: NewIngredientRepository(store, log, m),
		Tasks:       NewTaskRepository(store, log, m),
	}
}

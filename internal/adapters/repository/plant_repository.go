package repository

import (
	"context"

	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/infrastructure/metrics"
	"github.com/hydrotrack/core/internal/ports"
)

// PlantRepositoryImpl implements the PlantRepository interface.
// Plants are read back from the same key they are written to.
type PlantRepositoryImpl struct {
	plants *collection[entities.Plant]
}

// NewPlantRepository creates a new plant repository
func NewPlantRepository(store ports.KeyValueStore, log *logger.Logger, m *metrics.Metrics) ports.PlantRepository {
	return &PlantRepositoryImpl{plants: newCollection[entities.Plant](store, ports.KeyPlants, log, m)}
}

func (r *PlantRepositoryImpl) Create(ctx context.Context, plant *entities.Plant) error {
	return r.plants.replace(ctx, func(items []*entities.Plant) ([]*entities.Plant, error) {
		return append(items, plant), nil
	})
}

func (r *PlantRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Plant, error) {
	items, err := r.plants.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, entities.ErrPlantNotFound
}

func (r *PlantRepositoryImpl) List(ctx context.Context, filter ports.PlantFilter) ([]*entities.Plant, error) {
	items, err := r.plants.all(ctx)
	if err != nil {
		return nil, err
	}
	if filter.SetupID == "" {
		return items, nil
	}

	filtered := make([]*entities.Plant, 0, len(items))
	for _, p := range items {
		if p.SetupID == filter.SetupID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *PlantRepositoryImpl) Update(ctx context.Context, id string, fn func(*entities.Plant) error) (*entities.Plant, error) {
	var updated *entities.Plant
	err := r.plants.replace(ctx, func(items []*entities.Plant) ([]*entities.Plant, error) {
		for _, p := range items {
			if p.ID != id {
				continue
			}
			if err := fn(p); err != nil {
				return nil, err
			}
			updated = p
			return items, nil
		}
		return nil, entities.ErrPlantNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

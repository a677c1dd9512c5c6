package repository

import (
	"context"

	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/infrastructure/metrics"
	"github.com/hydrotrack/core/internal/ports"
)

// SetupRepositoryImpl implements the SetupRepository interface
type SetupRepositoryImpl struct {
	setups *collection[entities.Setup]
}

// NewSetupRepository creates a new setup repository
func NewSetupRepository(store ports.KeyValueStore, log *logger.Logger, m *metrics.Metrics) ports.SetupRepository {
	return &SetupRepositoryImpl{setups: newCollection[entities.Setup](store, ports.KeySetups, log, m)}
}

func (r *SetupRepositoryImpl) Create(ctx context.Context, setup *entities.Setup) error {
	return r.setups.replace(ctx, func(items []*entities.Setup) ([]*entities.Setup, error) {
		return append(items, setup), nil
	})
}

func (r *SetupRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Setup, error) {
	items, err := r.setups.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, entities.ErrSetupNotFound
}

func (r *SetupRepositoryImpl) List(ctx context.Context) ([]*entities.Setup, error) {
	return r.setups.all(ctx)
}

func (r *SetupRepositoryImpl) AppendWaterLog(ctx context.Context, setupID string, log entities.WaterLog) (*entities.Setup, error) {
	var updated *entities.Setup
	err := r.setups.replace(ctx, func(items []*entities.Setup) ([]*entities.Setup, error) {
		for _, s := range items {
			if s.ID == setupID {
				s.AppendWaterLog(log)
				updated = s
				return items, nil
			}
		}
		return nil, entities.ErrSetupNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

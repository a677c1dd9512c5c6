package repository

import (
	"context"

	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/infrastructure/metrics"
	"github.com/hydrotrack/core/internal/ports"
)

// EquipmentRepositoryImpl implements the EquipmentRepository interface
type EquipmentRepositoryImpl struct {
	items *collection[entities.Equipment]
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(store ports.KeyValueStore, log *logger.Logger, m *metrics.Metrics) ports.EquipmentRepository {
	return &EquipmentRepositoryImpl{items: newCollection[entities.Equipment](store, ports.KeyEquipment, log, m)}
}

func (r *EquipmentRepositoryImpl) Create(ctx context.Context, item *entities.Equipment) error {
	return r.items.replace(ctx, func(items []*entities.Equipment) ([]*entities.Equipment, error) {
		return append(items, item), nil
	})
}

func (r *EquipmentRepositoryImpl) List(ctx context.Context) ([]*entities.Equipment, error) {
	return r.items.all(ctx)
}

// IngredientRepositoryImpl implements the IngredientRepository interface
type IngredientRepositoryImpl struct {
	items *collection[entities.Ingredient]
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(store ports.KeyValueStore, log *logger.Logger, m *metrics.Metrics) ports.IngredientRepository {
	return &IngredientRepositoryImpl{items: newCollection[entities.Ingredient](store, ports.KeyIngredients, log, m)}
}

func (r *IngredientRepositoryImpl) Create(ctx context.Context, item *entities.Ingredient) error {
	return r.items.replace(ctx, func(items []*entities.Ingredient) ([]*entities.Ingredient, error) {
		return append(items, item), nil
	})
}

func (r *IngredientRepositoryImpl) List(ctx context.Context) ([]*entities.Ingredient, error) {
	return r.items.all(ctx)
}

// TaskRepositoryImpl implements the TaskRepository interface
type TaskRepositoryImpl struct {
	tasks *collection[entities.Task]
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(store ports.KeyValueStore, log *logger.Logger, m *metrics.Metrics) ports.TaskRepository {
	return &TaskRepositoryImpl{tasks: newCollection[entities.Task](store, ports.KeyTasks, log, m)}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	return r.tasks.replace(ctx, func(items []*entities.Task) ([]*entities.Task, error) {
		return append(items, task), nil
	})
}

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]*entities.Task, error) {
	return r.tasks.all(ctx)
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, id string, fn func(*entities.Task) error) (*entities.Task, error) {
	var updated *entities.Task
	err := r.tasks.replace(ctx, func(items []*entities.Task) ([]*entities.Task, error) {
		for _, t := range items {
			if t.ID != id {
				continue
			}
			if err := fn(t); err != nil {
				return nil, err
			}
			updated = t
			return items, nil
		}
		return nil, entities.ErrTaskNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

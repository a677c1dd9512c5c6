package ports

import (
	"context"
	"errors"

	"github.com/hydrotrack/core/internal/domain/entities"
)

// ErrKeyNotFound is returned by a KeyValueStore when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Persisted collection keys.
const (
	KeySetups      = "hydro_setups"
	KeyPlants      = "hydro_plants"
	KeyEquipment   = "hydro_equipment"
	KeyIngredients = "hydro_ingredients"
	KeyTasks       = "hydro_tasks"
)

// KeyValueStore is the local persistence layer. Values are opaque JSON documents.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// SetupRepository defines the interface for setup data operations
type SetupRepository interface {
	Create(ctx context.Context, setup *entities.Setup) error
	GetByID(ctx context.Context, id string) (*entities.Setup, error)
	List(ctx context.Context) ([]*entities.Setup, error)
	AppendWaterLog(ctx context.Context, setupID string, log entities.WaterLog) (*entities.Setup, error)
}

// PlantRepository defines the interface for plant data operations
type PlantRepository interface {
	Create(ctx context.Context, plant *entities.Plant) error
	GetByID(ctx context.Context, id string) (*entities.Plant, error)
	List(ctx context.Context, filter PlantFilter) ([]*entities.Plant, error)
	// Update applies fn to the stored plant and persists the result.
	Update(ctx context.Context, id string, fn func(*entities.Plant) error) (*entities.Plant, error)
}

// EquipmentRepository defines the interface for equipment data operations
type EquipmentRepository interface {
	Create(ctx context.Context, item *entities.Equipment) error
	List(ctx context.Context) ([]*entities.Equipment, error)
}

// IngredientRepository defines the interface for ingredient data operations
type IngredientRepository interface {
	Create(ctx context.Context, item *entities.Ingredient) error
	List(ctx context.Context) ([]*entities.Ingredient, error)
}

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	List(ctx context.Context) ([]*entities.Task, error)
	Update(ctx context.Context, id string, fn func(*entities.Task) error) (*entities.Task, error)
}

// ObjectStore receives exported backups.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// Filter types
type PlantFilter struct {
	SetupID string
}

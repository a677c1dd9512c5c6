package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/ports"
)

// ErrBackupNotConfigured is returned by Upload when no object store is set.
var ErrBackupNotConfigured = errors.New("backup storage is not configured")

// Snapshot is a full export of every persisted collection.
type Snapshot struct {
	CreatedAt   time.Time              `json:"created_at"`
	Setups      []*entities.Setup      `json:"setups"`
	Plants      []*entities.Plant      `json:"plants"`
	Equipment   []*entities.Equipment  `json:"equipment"`
	Ingredients []*entities.Ingredient `json:"ingredients"`
	Tasks       []*entities.Task       `json:"tasks"`
}

// UploadResult describes a stored backup
type UploadResult struct {
	Location string    `json:"location"`
	Key      string    `json:"key"`
	Bytes    int       `json:"bytes"`
	Created  time.Time `json:"created_at"`
}

// BackupService exports the garden data
type BackupService struct {
	setupRepo      ports.SetupRepository
	plantRepo      ports.PlantRepository
	equipmentRepo  ports.EquipmentRepository
	ingredientRepo ports.IngredientRepository
	taskRepo       ports.TaskRepository
	objects        ports.ObjectStore
	logger         *logger.Logger
	now            func() time.Time
}

// NewBackupService creates a new backup service. objects may be nil, in which
// case only Export is usable.
func NewBackupService(setupRepo ports.SetupRepository, plantRepo ports.PlantRepository, equipmentRepo ports.EquipmentRepository, ingredientRepo ports.IngredientRepository, taskRepo ports.TaskRepository, objects ports.ObjectStore, log *logger.Logger, now func() time.Time) *BackupService {
	return &BackupService{
		setupRepo:      setupRepo,
		plantRepo:      plantRepo,
		equipmentRepo:  equipmentRepo,
		ingredientRepo: ingredientRepo,
		taskRepo:       taskRepo,
		objects:        objects,
		logger:         log,
		now:            clock(now),
	}
}

// Export reads every collection into one snapshot
func (s *BackupService) Export(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{CreatedAt: s.now().UTC()}

	var err error
	if snap.Setups, err = s.setupRepo.List(ctx); err != nil {
		return nil, fmt.Errorf("export setups: %w", err)
	}
	if snap.Plants, err = s.plantRepo.List(ctx, ports.PlantFilter{}); err != nil {
		return nil, fmt.Errorf("export plants: %w", err)
	}
	if snap.Equipment, err = s.equipmentRepo.List(ctx); err != nil {
		return nil, fmt.Errorf("export equipment: %w", err)
	}
	if snap.Ingredients, err = s.ingredientRepo.List(ctx); err != nil {
		return nil, fmt.Errorf("export ingredients: %w", err)
	}
	if snap.Tasks, err = s.taskRepo.List(ctx); err != nil {
		return nil, fmt.Errorf("export tasks: %w", err)
	}

	return snap, nil
}

// Upload exports a snapshot and writes it to the object store
func (s *BackupService) Upload(ctx context.Context) (*UploadResult, error) {
	if s.objects == nil {
		return nil, ErrBackupNotConfigured
	}

	snap, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key := BackupKey(snap.CreatedAt, entities.NewID())
	location, err := s.objects.Put(ctx, key, body, "application/json")
	if err != nil {
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	s.logger.Infow("Backup uploaded", "location", location, "bytes", len(body))

	return &UploadResult{
		Location: location,
		Key:      key,
		Bytes:    len(body),
		Created:  snap.CreatedAt,
	}, nil
}

// BackupKey returns the object key YYYY/M/D/<id>.json. Object stores place it
// under their configured prefix.
func BackupKey(at time.Time, id string) string {
	at = at.UTC()
	return fmt.Sprintf("%d/%d/%d/%s.json", at.Year(), int(at.Month()), at.Day(), id)
}

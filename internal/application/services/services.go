package services

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/infrastructure/metrics"
	"github.com/hydrotrack/core/internal/ports"
)

// Deps are the collaborators shared by all services. Objects and Metrics may
// be nil; Now defaults to time.Now.
type Deps struct {
	Setups      ports.SetupRepository
	Plants      ports.PlantRepository
	Equipment   ports.EquipmentRepository
	Ingredients ports.IngredientRepository
	Tasks       ports.TaskRepository
	Generator   ports.GenerativeClient
	Objects     ports.ObjectStore
	Validate    *validator.Validate
	Logger      *logger.Logger
	Metrics     *metrics.Metrics
	Now         func() time.Time
}

// Services bundles every application service
type Services struct {
	Garden     *GardenService
	Projection *ProjectionService
	Advisor    *AdvisorService
	Inventory  *InventoryService
	Backup     *BackupService
}

// New wires all services from d
func New(d Deps) *Services {
	log := d.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return &Services{
		Garden:     NewGardenService(d.Setups, d.Plants, d.Validate, log.WithComponent("garden"), d.Now),
		Projection: NewProjectionService(d.Generator, log.WithComponent("projection"), d.Metrics, d.Now),
		Advisor:    NewAdvisorService(d.Generator, log.WithComponent("advisor"), d.Metrics),
		Inventory:  NewInventoryService(d.Equipment, d.Ingredients, d.Tasks, d.Validate, log.WithComponent("inventory"), d.Now),
		Backup:     NewBackupService(d.Setups, d.Plants, d.Equipment, d.Ingredients, d.Tasks, d.Objects, log.WithComponent("backup"), d.Now),
	}
}

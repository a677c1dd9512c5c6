package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hydrotrack/core/internal/application/validation"
	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/domain/lifecycle"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/ports"
)

// GardenService handles setups, their water logs and the plants in them
type GardenService struct {
	setupRepo ports.SetupRepository
	plantRepo ports.PlantRepository
	validate  *validator.Validate
	logger    *logger.Logger
	now       func() time.Time
}

// NewGardenService creates a new garden service. A nil now uses time.Now.
func NewGardenService(setupRepo ports.SetupRepository, plantRepo ports.PlantRepository, validate *validator.Validate, log *logger.Logger, now func() time.Time) *GardenService {
	return &GardenService{
		setupRepo: setupRepo,
		plantRepo: plantRepo,
		validate:  validate,
		logger:    log,
		now:       clock(now),
	}
}

func (s *GardenService) today() entities.Date {
	return entities.NewDate(s.now())
}

// dateOr returns *d, or today when d is nil.
func (s *GardenService) dateOr(d *entities.Date) entities.Date {
	if d == nil {
		return s.today()
	}
	return *d
}

// CreateSetup creates a new growing system
func (s *GardenService) CreateSetup(ctx context.Context, req ports.CreateSetupRequest) (*entities.Setup, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	setup := &entities.Setup{
		ID:            entities.NewID(),
		Name:          req.Name,
		SystemType:    req.SystemType,
		StartDate:     s.dateOr(req.StartDate),
		ReservoirSize: req.ReservoirSize,
		Location:      req.Location,
		Notes:         req.Notes,
		Cost:          req.Cost,
		WaterLogs:     []entities.WaterLog{},
	}

	if err := s.setupRepo.Create(ctx, setup); err != nil {
		return nil, fmt.Errorf("failed to create setup: %w", err)
	}

	s.logger.Infow("Setup created successfully", "setup_id", setup.ID, "system_type", setup.SystemType)

	return setup, nil
}

// GetSetup retrieves a setup by ID
func (s *GardenService) GetSetup(ctx context.Context, id string) (*entities.Setup, error) {
	return s.setupRepo.GetByID(ctx, id)
}

// ListSetups returns every setup in creation order
func (s *GardenService) ListSetups(ctx context.Context) ([]*entities.Setup, error) {
	return s.setupRepo.List(ctx)
}

// AddWaterLog appends a water-quality reading to a setup
func (s *GardenService) AddWaterLog(ctx context.Context, setupID string, req ports.AddWaterLogRequest) (*entities.Setup, error) {
	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	log := entities.WaterLog{
		ID:          entities.NewID(),
		Date:        s.dateOr(req.Date),
		PH:          req.PH,
		EC:          req.EC,
		Temperature: req.Temperature,
		Notes:       req.Notes,
	}

	setup, err := s.setupRepo.AppendWaterLog(ctx, setupID, log)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("Water log recorded", "setup_id", setupID, "ph", log.PH, "ec", log.EC)

	return setup, nil
}

// CreatePlant validates req and stores a new healthy plant.
func (s *GardenService) CreatePlant(ctx context.Context, req ports.CreatePlantRequest) (*entities.Plant, error) {
	req.Species = strings.TrimSpace(req.Species)
	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	if req.SetupID != "" {
		if _, err := s.setupRepo.GetByID(ctx, req.SetupID); err != nil {
			return nil, err
		}
	}

	plant := &entities.Plant{
		ID:                       entities.NewID(),
		SetupID:                  req.SetupID,
		Species:                  req.Species,
		Variety:                  strings.TrimSpace(req.Variety),
		PlantedDate:              s.dateOr(req.PlantedDate),
		ProjectedGerminationDate: req.ProjectedGerminationDate,
		ProjectedFloweringDate:   req.ProjectedFloweringDate,
		ProjectedHarvestDate:     req.ProjectedHarvestDate,
		Status:                   entities.PlantStatusHealthy,
		LastChecked:              s.today(),
		Notes:                    req.Notes,
		Harvests:                 []entities.HarvestRecord{},
		Cost:                     req.Cost,
	}

	if err := s.plantRepo.Create(ctx, plant); err != nil {
		return nil, fmt.Errorf("failed to create plant: %w", err)
	}

	s.logger.Infow("Plant created successfully", "plant_id", plant.ID, "species", plant.Species)

	return plant, nil
}

// GetPlant retrieves a plant by ID
func (s *GardenService) GetPlant(ctx context.Context, id string) (*entities.Plant, error) {
	return s.plantRepo.GetByID(ctx, id)
}

// ListPlants returns plants, optionally restricted to one setup
func (s *GardenService) ListPlants(ctx context.Context, filter ports.PlantFilter) ([]*entities.Plant, error) {
	return s.plantRepo.List(ctx, filter)
}

// RecordMilestone stores observed germination or flowering dates.
func (s *GardenService) RecordMilestone(ctx context.Context, id string, req ports.RecordMilestoneRequest) (*entities.Plant, error) {
	if req.GerminatedDate == nil && req.FloweredDate == nil {
		return nil, fmt.Errorf("%w: germinated_date or flowered_date is required", entities.ErrInvalidInput)
	}

	now := s.now()
	return s.plantRepo.Update(ctx, id, func(p *entities.Plant) error {
		if req.GerminatedDate != nil {
			if req.GerminatedDate.Before(p.PlantedDate.Time) {
				return fmt.Errorf("%w: germinated_date precedes planted_date", entities.ErrInvalidDate)
			}
			p.GerminatedDate = req.GerminatedDate
		}
		if req.FloweredDate != nil {
			if req.FloweredDate.Before(p.PlantedDate.Time) {
				return fmt.Errorf("%w: flowered_date precedes planted_date", entities.ErrInvalidDate)
			}
			p.FloweredDate = req.FloweredDate
		}
		p.LastChecked = entities.NewDate(now)
		return nil
	})
}

// UpdatePlantStatus changes a plant's health status and marks it checked
func (s *GardenService) UpdatePlantStatus(ctx context.Context, id string, req ports.UpdatePlantStatusRequest) (*entities.Plant, error) {
	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	now := s.now()
	plant, err := s.plantRepo.Update(ctx, id, func(p *entities.Plant) error {
		p.SetStatus(req.Status, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Plant status updated", "plant_id", id, "status", req.Status)

	return plant, nil
}

// AddHarvest records a harvest taken from a plant
func (s *GardenService) AddHarvest(ctx context.Context, id string, req ports.AddHarvestRequest) (*entities.Plant, error) {
	req.Unit = strings.TrimSpace(req.Unit)
	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	record := entities.HarvestRecord{
		ID:       entities.NewID(),
		Date:     s.dateOr(req.Date),
		Quantity: req.Quantity,
		Unit:     req.Unit,
	}

	return s.plantRepo.Update(ctx, id, func(p *entities.Plant) error {
		p.AddHarvest(record)
		return nil
	})
}

// PlantTimeline returns the plant's milestones and growth progress as of now.
func (s *GardenService) PlantTimeline(ctx context.Context, id string) (*lifecycle.Summary, error) {
	plant, err := s.plantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := lifecycle.Project(*plant, s.now())
	return &summary, nil
}

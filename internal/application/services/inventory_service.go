package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hydrotrack/core/internal/application/validation"
	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/ports"
)

// InventoryService handles equipment, ingredients and the task list
type InventoryService struct {
	equipmentRepo  ports.EquipmentRepository
	ingredientRepo ports.IngredientRepository
	taskRepo       ports.TaskRepository
	validate       *validator.Validate
	logger         *logger.Logger
	now            func() time.Time
}

// NewInventoryService creates a new inventory service. A nil now uses time.Now.
func NewInventoryService(equipmentRepo ports.EquipmentRepository, ingredientRepo ports.IngredientRepository, taskRepo ports.TaskRepository, validate *validator.Validate, log *logger.Logger, now func() time.Time) *InventoryService {
	return &InventoryService{
		equipmentRepo:  equipmentRepo,
		ingredientRepo: ingredientRepo,
		taskRepo:       taskRepo,
		validate:       validate,
		logger:         log,
		now:            clock(now),
	}
}

func (s *InventoryService) dateOr(d *entities.Date) entities.Date {
	if d == nil {
		return entities.NewDate(s.now())
	}
	return *d
}

// CreateEquipment registers a piece of hardware
func (s *InventoryService) CreateEquipment(ctx context.Context, req ports.CreateEquipmentRequest) (*entities.Equipment, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entities.EquipmentStatusActive
	}

	item := &entities.Equipment{
		ID:           entities.NewID(),
		Name:         req.Name,
		Category:     req.Category,
		PurchaseDate: s.dateOr(req.PurchaseDate),
		Status:       status,
		Notes:        req.Notes,
		Cost:         req.Cost,
		SetupID:      req.SetupID,
	}

	if err := s.equipmentRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	s.logger.Infow("Equipment created", "equipment_id", item.ID, "category", item.Category)

	return item, nil
}

// ListEquipment returns all registered equipment
func (s *InventoryService) ListEquipment(ctx context.Context) ([]*entities.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}

// CreateIngredient registers a nutrient, additive or other consumable
func (s *InventoryService) CreateIngredient(ctx context.Context, req ports.CreateIngredientRequest) (*entities.Ingredient, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	item := &entities.Ingredient{
		ID:       entities.NewID(),
		Name:     req.Name,
		Brand:    req.Brand,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Purpose:  req.Purpose,
		Notes:    req.Notes,
		Cost:     req.Cost,
	}

	if err := s.ingredientRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}

	s.logger.Infow("Ingredient created", "ingredient_id", item.ID, "purpose", item.Purpose)

	return item, nil
}

// ListIngredients returns all registered ingredients
func (s *InventoryService) ListIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	return s.ingredientRepo.List(ctx)
}

// CreateTask adds an open task, due today unless a date is given
func (s *InventoryService) CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}

	task := &entities.Task{
		ID:       entities.NewID(),
		Title:    req.Title,
		Date:     s.dateOr(req.Date),
		Priority: priority,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns every task
func (s *InventoryService) ListTasks(ctx context.Context) ([]*entities.Task, error) {
	return s.taskRepo.List(ctx)
}

// ToggleTask flips a task between done and open
func (s *InventoryService) ToggleTask(ctx context.Context, id string) (*entities.Task, error) {
	task, err := s.taskRepo.Update(ctx, id, func(t *entities.Task) error {
		t.Toggle()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("Task toggled", "task_id", id, "completed", task.Completed)

	return task, nil
}

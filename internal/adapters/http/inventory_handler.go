package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hydrotrack/core/internal/application/services"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/ports"
)

// InventoryHandler handles equipment, ingredient and task requests
type InventoryHandler struct {
	inventoryService *services.InventoryService
	logger           *logger.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *services.InventoryService, logger *logger.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		logger:           logger,
	}
}

// CreateEquipment godoc
// @Summary Register equipment
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body ports.CreateEquipmentRequest true "Equipment"
// @Success 201 {object} entities.Equipment
// @Failure 400 {object} ErrorResponse
// @Router /equipment [post]
func (h *InventoryHandler) CreateEquipment(c echo.Context) error {
	var req ports.CreateEquipmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.inventoryService.CreateEquipment(c.Request().Context(), req)
	if err != nil {
		return failure(h.logger, "Create equipment", err)
	}

	return c.JSON(http.StatusCreated, item)
}

// ListEquipment godoc
// @Summary List equipment
// @Tags inventory
// @Produce json
// @Success 200 {object} ListResponse[entities.Equipment]
// @Router /equipment [get]
func (h *InventoryHandler) ListEquipment(c echo.Context) error {
	items, err := h.inventoryService.ListEquipment(c.Request().Context())
	if err != nil {
		return failure(h.logger, "List equipment", err)
	}

	return c.JSON(http.StatusOK, list(items))
}

// CreateIngredient godoc
// @Summary Register an ingredient
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body ports.CreateIngredientRequest true "Ingredient"
// @Success 201 {object} entities.Ingredient
// @Failure 400 {object} ErrorResponse
// @Router /ingredients [post]
func (h *InventoryHandler) CreateIngredient(c echo.Context) error {
	var req ports.CreateIngredientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.inventoryService.CreateIngredient(c.Request().Context(), req)
	if err != nil {
		return failure(h.logger, "Create ingredient", err)
	}

	return c.JSON(http.StatusCreated, item)
}

// ListIngredients godoc
// @Summary List ingredients
// @Tags inventory
// @Produce json
// @Success 200 {object} ListResponse[entities.Ingredient]
// @Router /ingredients [get]
func (h *InventoryHandler) ListIngredients(c echo.Context) error {
	items, err := h.inventoryService.ListIngredients(c.Request().Context())
	if err != nil {
		return failure(h.logger, "List ingredients", err)
	}

	return c.JSON(http.StatusOK, list(items))
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body ports.CreateTaskRequest true "Task"
// @Success 201 {object} entities.Task
// @Failure 400 {object} ErrorResponse
// @Router /tasks [post]
func (h *InventoryHandler) CreateTask(c echo.Context) error {
	var req ports.CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.inventoryService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return failure(h.logger, "Create task", err)
	}

	return c.JSON(http.StatusCreated, task)
}

// ListTasks godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Success 200 {object} ListResponse[entities.Task]
// @Router /tasks [get]
func (h *InventoryHandler) ListTasks(c echo.Context) error {
	tasks, err := h.inventoryService.ListTasks(c.Request().Context())
	if err != nil {
		return failure(h.logger, "List tasks", err)
	}

	return c.JSON(http.StatusOK, list(tasks))
}

// ToggleTask godoc
// @Summary Toggle task completion
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} entities.Task
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id}/toggle [post]
func (h *InventoryHandler) ToggleTask(c echo.Context) error {
	task, err := h.inventoryService.ToggleTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failure(h.logger, "Toggle task", err)
	}

	return c.JSON(http.StatusOK, task)
}

package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hydrotrack/core/internal/application/services"
	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/ports"
)

// SetupHandler handles setup-related requests
type SetupHandler struct {
	gardenService *services.GardenService
	logger        *logger.Logger
}

// NewSetupHandler creates a new setup handler
func NewSetupHandler(gardenService *services.GardenService, logger *logger.Logger) *SetupHandler {
	return &SetupHandler{
		gardenService: gardenService,
		logger:        logger,
	}
}

// CreateSetup godoc
// @Summary Create a setup
// @Description Register a new growing system
// @Tags setups
// @Accept json
// @Produce json
// @Param request body ports.CreateSetupRequest true "Setup data"
// @Success 201 {object} entities.Setup
// @Failure 400 {object} ErrorResponse
// @Router /setups [post]
func (h *SetupHandler) CreateSetup(c echo.Context) error {
	var req ports.CreateSetupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	setup, err := h.gardenService.CreateSetup(c.Request().Context(), req)
	if err != nil {
		return failure(h.logger, "Create setup", err)
	}

	return c.JSON(http.StatusCreated, setup)
}

// ListSetups godoc
// @Summary List setups
// @Tags setups
// @Produce json
// @Success 200 {object} ListResponse[entities.Setup]
// @Router /setups [get]
func (h *SetupHandler) ListSetups(c echo.Context) error {
	setups, err := h.gardenService.ListSetups(c.Request().Context())
	if err != nil {
		return failure(h.logger, "List setups", err)
	}

	return c.JSON(http.StatusOK, list(setups))
}

// GetSetup godoc
// @Summary Get setup by ID
// @Tags setups
// @Produce json
// @Param id path string true "Setup ID"
// @Success 200 {object} entities.Setup
// @Failure 404 {object} ErrorResponse
// @Router /setups/{id} [get]
func (h *SetupHandler) GetSetup(c echo.Context) error {
	setup, err := h.gardenService.GetSetup(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failure(h.logger, "Get setup", err)
	}

	return c.JSON(http.StatusOK, setup)
}

// AddWaterLog godoc
// @Summary Record a water reading
// @Description Append a pH/EC/temperature reading to a setup
// @Tags setups
// @Accept json
// @Produce json
// @Param id path string true "Setup ID"
// @Param request body ports.AddWaterLogRequest true "Reading"
// @Success 201 {object} entities.Setup
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /setups/{id}/water-logs [post]
func (h *SetupHandler) AddWaterLog(c echo.Context) error {
	var req ports.AddWaterLogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	setup, err := h.gardenService.AddWaterLog(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return failure(h.logger, "Add water log", err)
	}

	return c.JSON(http.StatusCreated, setup)
}

// PlantHandler handles plant-related requests
type PlantHandler struct {
	gardenService     *services.GardenService
	projectionService *services.ProjectionService
	logger            *logger.Logger
}

// NewPlantHandler creates a new plant handler
func NewPlantHandler(gardenService *services.GardenService, projectionService *services.ProjectionService, logger *logger.Logger) *PlantHandler {
	return &PlantHandler{
		gardenService:     gardenService,
		projectionService: projectionService,
		logger:            logger,
	}
}

// ProjectionResponse carries projected dates, or available=false
type ProjectionResponse struct {
	Available   bool           `json:"available"`
	Germination *entities.Date `json:"projected_germination_date,omitempty"`
	Flowering   *entities.Date `json:"projected_flowering_date,omitempty"`
	Harvest     *entities.Date `json:"projected_harvest_date,omitempty"`
	Message     string         `json:"message,omitempty"`
}

// CreatePlant godoc
// @Summary Create a plant
// @Tags plants
// @Accept json
// @Produce json
// @Param request body ports.CreatePlantRequest true "Plant data"
// @Success 201 {object} entities.Plant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plants [post]
func (h *PlantHandler) CreatePlant(c echo.Context) error {
	var req ports.CreatePlantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if req.Project {
		if err := h.applyProjection(ctx, &req); err != nil {
			return failure(h.logger, "Create plant", err)
		}
	}

	plant, err := h.gardenService.CreatePlant(ctx, req)
	if err != nil {
		return failure(h.logger, "Create plant", err)
	}

	return c.JSON(http.StatusCreated, plant)
}

// applyProjection overwrites the projected dates in req only when the
// collaborator produced a usable projection.
func (h *PlantHandler) applyProjection(ctx context.Context, req *ports.CreatePlantRequest) error {
	projReq := ports.ProjectionRequest{Species: req.Species, Variety: req.Variety}
	if req.SetupID != "" {
		if setup, err := h.gardenService.GetSetup(ctx, req.SetupID); err == nil {
			projReq.SystemType = string(setup.SystemType)
		}
	}

	projection, err := h.projectionService.Project(ctx, projReq)
	if err != nil {
		return err
	}
	if !projection.Available {
		h.logger.Debugw("Projection unavailable, keeping submitted dates", "species", req.Species)
	}
	projection.ApplyTo(req)
	return nil
}

// ListPlants godoc
// @Summary List plants
// @Tags plants
// @Produce json
// @Param setup_id query string false "Only plants in this setup"
// @Success 200 {object} ListResponse[entities.Plant]
// @Router /plants [get]
func (h *PlantHandler) ListPlants(c echo.Context) error {
	filter := ports.PlantFilter{SetupID: c.QueryParam("setup_id")}

	plants, err := h.gardenService.ListPlants(c.Request().Context(), filter)
	if err != nil {
		return failure(h.logger, "List plants", err)
	}

	return c.JSON(http.StatusOK, list(plants))
}

// GetPlant godoc
// @Summary Get plant by ID
// @Tags plants
// @Produce json
// @Param id path string true "Plant ID"
// @Success 200 {object} entities.Plant
// @Failure 404 {object} ErrorResponse
// @Router /plants/{id} [get]
func (h *PlantHandler) GetPlant(c echo.Context) error {
	plant, err := h.gardenService.GetPlant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failure(h.logger, "Get plant", err)
	}

	return c.JSON(http.StatusOK, plant)
}

// GetTimeline godoc
// @Summary Plant timeline
// @Description Milestones and growth completion as of now
// @Tags plants
// @Produce json
// @Param id path string true "Plant ID"
// @Success 200 {object} lifecycle.Summary
// @Failure 404 {object} ErrorResponse
// @Router /plants/{id}/timeline [get]
func (h *PlantHandler) GetTimeline(c echo.Context) error {
	summary, err := h.gardenService.PlantTimeline(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failure(h.logger, "Get timeline", err)
	}

	return c.JSON(http.StatusOK, summary)
}

// UpdateStatus godoc
// @Summary Update plant status
// @Tags plants
// @Accept json
// @Produce json
// @Param id path string true "Plant ID"
// @Param request body ports.UpdatePlantStatusRequest true "New status"
// @Success 200 {object} entities.Plant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plants/{id}/status [put]
func (h *PlantHandler) UpdateStatus(c echo.Context) error {
	var req ports.UpdatePlantStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	plant, err := h.gardenService.UpdatePlantStatus(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return failure(h.logger, "Update plant status", err)
	}

	return c.JSON(http.StatusOK, plant)
}

// RecordMilestone godoc
// @Summary Record observed milestones
// @Tags plants
// @Accept json
// @Produce json
// @Param id path string true "Plant ID"
// @Param request body ports.RecordMilestoneRequest true "Observed dates"
// @Success 200 {object} entities.Plant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plants/{id}/milestones [put]
func (h *PlantHandler) RecordMilestone(c echo.Context) error {
	var req ports.RecordMilestoneRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	plant, err := h.gardenService.RecordMilestone(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return failure(h.logger, "Record milestone", err)
	}

	return c.JSON(http.StatusOK, plant)
}

// AddHarvest godoc
// @Summary Record a harvest
// @Tags plants
// @Accept json
// @Produce json
// @Param id path string true "Plant ID"
// @Param request body ports.AddHarvestRequest true "Harvest"
// @Success 201 {object} entities.Plant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plants/{id}/harvests [post]
func (h *PlantHandler) AddHarvest(c echo.Context) error {
	var req ports.AddHarvestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	plant, err := h.gardenService.AddHarvest(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return failure(h.logger, "Add harvest", err)
	}

	return c.JSON(http.StatusCreated, plant)
}

// Project godoc
// @Summary Project milestone dates
// @Description Ask the prediction service for germination, flowering and harvest dates counted from today
// @Tags plants
// @Accept json
// @Produce json
// @Param request body ports.ProjectionRequest true "Species and system"
// @Success 200 {object} ProjectionResponse
// @Failure 400 {object} ErrorResponse
// @Router /plants/projection [post]
func (h *PlantHandler) Project(c echo.Context) error {
	var req ports.ProjectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	projection, err := h.projectionService.Project(c.Request().Context(), req)
	if err != nil {
		return failure(h.logger, "Project plant", err)
	}

	if !projection.Available {
		return c.JSON(http.StatusOK, ProjectionResponse{Message: "no projection available"})
	}

	return c.JSON(http.StatusOK, ProjectionResponse{
		Available:   true,
		Germination: projection.Germination.Ptr(),
		Flowering:   projection.Flowering.Ptr(),
		Harvest:     projection.Harvest.Ptr(),
	})
}

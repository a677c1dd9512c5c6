package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/hydrotrack/core/internal/application/services"
	"github.com/hydrotrack/core/internal/application/validation"
	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
)

// Validator adapts the shared request validator to echo.Validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates an echo validator backed by validation.New
func NewValidator() *Validator {
	return &Validator{validate: validation.New()}
}

// Engine returns the underlying validator, shared with the services.
func (v *Validator) Engine() *validator.Validate {
	return v.validate
}

// Validate validates structs
func (v *Validator) Validate(i interface{}) error {
	return validation.Struct(v.validate, i)
}

// Handlers groups every API handler
type Handlers struct {
	Setups    *SetupHandler
	Plants    *PlantHandler
	Inventory *InventoryHandler
	Advisor   *AdvisorHandler
	Backup    *BackupHandler
}

// bindAndValidate decodes the request body into req and validates it.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrInvalidInput), errors.Is(err, entities.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrSetupNotFound),
		errors.Is(err, entities.ErrPlantNotFound),
		errors.Is(err, entities.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrBackupNotConfigured):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// failure converts a service error into an HTTP error, logging server faults.
func failure(log *logger.Logger, op string, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Errorw(op+" failed", "error", err)
		return echo.NewHTTPError(code, http.StatusText(code)).SetInternal(err)
	}
	return echo.NewHTTPError(code, err.Error())
}

// Request/Response types
type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func list[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items, Total: len(items)}
}

package http

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hydrotrack/core/internal/application/services"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/ports"
)

// AdvisorHandler exposes diagnosis, guides and tips
type AdvisorHandler struct {
	advisorService *services.AdvisorService
	logger         *logger.Logger
}

// NewAdvisorHandler creates a new advisor handler
func NewAdvisorHandler(advisorService *services.AdvisorService, logger *logger.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		advisorService: advisorService,
		logger:         logger,
	}
}

// DiagnoseRequest is the wire form of a diagnosis request
type DiagnoseRequest struct {
	Symptoms      string `json:"symptoms" validate:"max=4000"`
	ImageBase64   string `json:"image_base64" validate:"omitempty,base64"`
	ImageMIMEType string `json:"image_mime_type" validate:"required_with=ImageBase64"`
}

// AdviceResponse carries generated Markdown
type AdviceResponse struct {
	Markdown string `json:"markdown"`
}

// TipResponse carries the daily tip
type TipResponse struct {
	Tip string `json:"tip"`
}

// Diagnose godoc
// @Summary Diagnose a plant problem
// @Description Symptoms and/or a base64 photo in, Markdown report out
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body DiagnoseRequest true "Symptoms and optional photo"
// @Success 200 {object} AdviceResponse
// @Failure 400 {object} ErrorResponse
// @Router /advisor/diagnose [post]
func (h *AdvisorHandler) Diagnose(c echo.Context) error {
	var req DiagnoseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := ports.DiagnoseRequest{Symptoms: req.Symptoms}
	if req.ImageBase64 != "" {
		if !strings.HasPrefix(req.ImageMIMEType, "image/") {
			return echo.NewHTTPError(http.StatusBadRequest, "image_mime_type must be an image type")
		}
		data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "image_base64 is not valid base64")
		}
		in.Image = &ports.InlineImage{MIMEType: req.ImageMIMEType, Data: data}
	}

	report, err := h.advisorService.Diagnose(c.Request().Context(), in)
	if err != nil {
		return failure(h.logger, "Diagnose", err)
	}

	return c.JSON(http.StatusOK, AdviceResponse{Markdown: report})
}

// Guide godoc
// @Summary Beginner guide
// @Description Web-grounded Markdown guide with a Sources list
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body ports.GuideRequest true "Topic"
// @Success 200 {object} AdviceResponse
// @Failure 400 {object} ErrorResponse
// @Router /advisor/guide [post]
func (h *AdvisorHandler) Guide(c echo.Context) error {
	var req ports.GuideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	guide, err := h.advisorService.Guide(c.Request().Context(), req)
	if err != nil {
		return failure(h.logger, "Guide", err)
	}

	return c.JSON(http.StatusOK, AdviceResponse{Markdown: guide})
}

// Tip godoc
// @Summary Daily tip
// @Tags advisor
// @Produce json
// @Success 200 {object} TipResponse
// @Router /advisor/tip [get]
func (h *AdvisorHandler) Tip(c echo.Context) error {
	return c.JSON(http.StatusOK, TipResponse{Tip: h.advisorService.DailyTip(c.Request().Context())})
}

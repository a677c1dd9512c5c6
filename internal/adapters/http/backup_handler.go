package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hydrotrack/core/internal/application/services"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
)

// BackupHandler exports garden data
type BackupHandler struct {
	backupService *services.BackupService
	logger        *logger.Logger
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *services.BackupService, logger *logger.Logger) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
		logger:        logger,
	}
}

// Export godoc
// @Summary Download a backup
// @Tags backup
// @Produce json
// @Success 200 {object} services.Snapshot
// @Router /backup [get]
func (h *BackupHandler) Export(c echo.Context) error {
	snap, err := h.backupService.Export(c.Request().Context())
	if err != nil {
		return failure(h.logger, "Export backup", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="hydrotrack-backup.json"`)
	return c.JSON(http.StatusOK, snap)
}

// Upload godoc
// @Summary Store a backup in object storage
// @Tags backup
// @Produce json
// @Success 201 {object} services.UploadResult
// @Failure 503 {object} ErrorResponse
// @Router /backup [post]
func (h *BackupHandler) Upload(c echo.Context) error {
	res, err := h.backupService.Upload(c.Request().Context())
	if err != nil {
		return failure(h.logger, "Upload backup", err)
	}

	h.logger.Infow("Backup stored", "location", res.Location)

	return c.JSON(http.StatusCreated, res)
}

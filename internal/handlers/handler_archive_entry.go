package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
	"github.com/sintas-dev/sintas_backend/internal/middleware"
)

// archiveEntryHandler handles HTTP requests related to archive entries.
type archiveEntryHandler struct {
	archiveService portssvc.ArchiveEntrySvcFacade
}

// newArchiveEntryHandler creates a new archiveEntryHandler.
func newArchiveEntryHandler(as portssvc.ArchiveEntrySvcFacade) *archiveEntryHandler {
	return &archiveEntryHandler{archiveService: as}
}

// registerArchiveEntryRoutes registers all archive-entry routes.
func registerArchiveEntryRoutes(rg *gin.RouterGroup, archiveService portssvc.ArchiveEntrySvcFacade) {
	h := newArchiveEntryHandler(archiveService)

	archive := rg.Group("/archive-entries")
	{
		archive.POST("", h.createArchiveEntry)
		archive.GET("", h.listArchiveEntries)
		archive.GET("/:id", h.getArchiveEntry)
		archive.PUT("/:id", h.updateArchiveEntry)
		archive.DELETE("/:id", h.deleteArchiveEntry)
	}
}

// createArchiveEntry godoc
// @Summary Archive a letter
// @Description Creates an archive entry for an incoming or outgoing letter, allocating the next archive number for the year and moving the letter to ARCHIVED.
// @Tags archive-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateArchiveEntryRequest true "Archive details"
// @Success 201 {object} dto.ArchiveEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Letter not found"
// @Failure 409 {object} ErrorResponse "Letter already archived"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /archive-entries [post]
func (h *archiveEntryHandler) createArchiveEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateArchiveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.archiveService.CreateArchiveEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "archive entry")
		return
	}

	logger.Info("Letter archived",
		slog.String("archive_id", entry.ArchiveID),
		slog.String("archive_number", entry.ArchiveNumber))
	c.JSON(http.StatusCreated, dto.ToArchiveEntryResponse(entry))
}

// getArchiveEntry godoc
// @Summary Get an archive entry by ID
// @Tags archive-entries
// @Produce  json
// @Param   id path string true "Archive entry ID"
// @Success 200 {object} dto.ArchiveEntryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /archive-entries/{id} [get]
func (h *archiveEntryHandler) getArchiveEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.archiveService.GetArchiveEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "archive entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToArchiveEntryResponse(entry))
}

// listArchiveEntries godoc
// @Summary List archive entries
// @Description Retrieves archive entries filtered by kind and free-text search
// @Tags archive-entries
// @Produce  json
// @Param   kind query string false "Filter by kind" Enums(INCOMING, OUTGOING)
// @Param   search query string false "Search in archive number, description, and location"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListArchiveEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /archive-entries [get]
func (h *archiveEntryHandler) listArchiveEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListArchiveEntriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.archiveService.ListArchiveEntries(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "archive entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListArchiveEntriesResponse(entries))
}

// updateArchiveEntry godoc
// @Summary Update an archive entry
// @Description Updates the descriptive fields of an entry. The archive number and letter reference are immutable.
// @Tags archive-entries
// @Accept  json
// @Produce  json
// @Param   id path string true "Archive entry ID"
// @Param   entry body dto.UpdateArchiveEntryRequest true "Fields to update"
// @Success 200 {object} dto.ArchiveEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /archive-entries/{id} [put]
func (h *archiveEntryHandler) updateArchiveEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	archiveID := c.Param("id")

	var req dto.UpdateArchiveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.archiveService.UpdateArchiveEntry(c.Request.Context(), archiveID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "archive entry")
		return
	}

	logger.Info("Archive entry updated", slog.String("archive_id", archiveID))
	c.JSON(http.StatusOK, dto.ToArchiveEntryResponse(entry))
}

// deleteArchiveEntry godoc
// @Summary Delete an archive entry
// @Description Removes an entry from the archive. The letter reverts to its pre-archive status (incoming to DONE, outgoing to SENT).
// @Tags archive-entries
// @Produce  json
// @Param   id path string true "Archive entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /archive-entries/{id} [delete]
func (h *archiveEntryHandler) deleteArchiveEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	archiveID := c.Param("id")

	if err := h.archiveService.DeleteArchiveEntry(c.Request.Context(), archiveID); err != nil {
		respondServiceError(c, logger, err, "archive entry")
		return
	}

	logger.Info("Archive entry deleted", slog.String("archive_id", archiveID))
	c.Status(http.StatusNoContent)
}

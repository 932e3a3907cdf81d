package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
	"github.com/sintas-dev/sintas_backend/internal/middleware"
)

// outgoingLetterHandler handles HTTP requests related to outgoing letters.
type outgoingLetterHandler struct {
	letterService portssvc.OutgoingLetterSvcFacade
}

// newOutgoingLetterHandler creates a new outgoingLetterHandler.
func newOutgoingLetterHandler(ls portssvc.OutgoingLetterSvcFacade) *outgoingLetterHandler {
	return &outgoingLetterHandler{letterService: ls}
}

// registerOutgoingLetterRoutes registers all outgoing-letter routes.
func registerOutgoingLetterRoutes(rg *gin.RouterGroup, letterService portssvc.OutgoingLetterSvcFacade) {
	h := newOutgoingLetterHandler(letterService)

	letters := rg.Group("/outgoing-letters")
	{
		letters.POST("", h.createOutgoingLetter)
		letters.GET("", h.listOutgoingLetters)
		letters.GET("/generate-number", h.previewNextLetterNumber)
		letters.GET("/:id", h.getOutgoingLetter)
		letters.PUT("/:id", h.updateOutgoingLetter)
		letters.DELETE("/:id", h.deleteOutgoingLetter)
	}
}

// createOutgoingLetter godoc
// @Summary Create an outgoing letter
// @Description Creates an outgoing letter. When the letter number is omitted the next sequential number for the letter's month is allocated.
// @Tags outgoing-letters
// @Accept  json
// @Produce  json
// @Param   letter body dto.CreateOutgoingLetterRequest true "Letter details"
// @Success 201 {object} dto.OutgoingLetterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Letter number already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /outgoing-letters [post]
func (h *outgoingLetterHandler) createOutgoingLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOutgoingLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	letter, err := h.letterService.CreateOutgoingLetter(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "outgoing letter")
		return
	}

	logger.Info("Outgoing letter created", slog.String("letter_id", letter.LetterID), slog.String("letter_number", letter.LetterNumber))
	c.JSON(http.StatusCreated, dto.ToOutgoingLetterResponse(letter))
}

// previewNextLetterNumber godoc
// @Summary Preview the next letter number
// @Description Returns the number the next outgoing letter dated on the given day would receive, without reserving it.
// @Tags outgoing-letters
// @Produce  json
// @Param   date query string false "Letter date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.NextLetterNumberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /outgoing-letters/generate-number [get]
func (h *outgoingLetterHandler) previewNextLetterNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	letterDate, err := parseDateQuery(c, "date")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if letterDate.IsZero() {
		letterDate = time.Now().UTC()
	}

	number, err := h.letterService.PreviewNextLetterNumber(c.Request.Context(), letterDate)
	if err != nil {
		respondServiceError(c, logger, err, "letter number")
		return
	}

	c.JSON(http.StatusOK, dto.NextLetterNumberResponse{LetterNumber: number})
}

// getOutgoingLetter godoc
// @Summary Get an outgoing letter by ID
// @Tags outgoing-letters
// @Produce  json
// @Param   id path string true "Letter ID"
// @Success 200 {object} dto.OutgoingLetterResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /outgoing-letters/{id} [get]
func (h *outgoingLetterHandler) getOutgoingLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	letter, err := h.letterService.GetOutgoingLetterByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "outgoing letter")
		return
	}

	c.JSON(http.StatusOK, dto.ToOutgoingLetterResponse(letter))
}

// listOutgoingLetters godoc
// @Summary List outgoing letters
// @Description Retrieves outgoing letters filtered by status, sensitivity, category, free-text search, and letter-date range
// @Tags outgoing-letters
// @Produce  json
// @Param   status query string false "Filter by status" Enums(DRAFT, SENT, ARCHIVED)
// @Param   sensitivity query string false "Filter by sensitivity" Enums(NORMAL, URGENT, VERY_URGENT, CONFIDENTIAL)
// @Param   categoryID query string false "Filter by category ID"
// @Param   search query string false "Search in letter number, destination, and subject"
// @Param   from query string false "Dated on or after (YYYY-MM-DD)"
// @Param   to query string false "Dated before (YYYY-MM-DD)"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListOutgoingLettersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /outgoing-letters [get]
func (h *outgoingLetterHandler) listOutgoingLetters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListOutgoingLettersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var err error
	if req.From, err = parseDateQuery(c, "from"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.To, err = parseDateQuery(c, "to"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	letters, err := h.letterService.ListOutgoingLetters(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "outgoing letters")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOutgoingLettersResponse(letters))
}

// updateOutgoingLetter godoc
// @Summary Update an outgoing letter
// @Description Updates letter fields. Renumbering is rejected once the letter has been sent.
// @Tags outgoing-letters
// @Accept  json
// @Produce  json
// @Param   id path string true "Letter ID"
// @Param   letter body dto.UpdateOutgoingLetterRequest true "Letter fields to update"
// @Success 200 {object} dto.OutgoingLetterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /outgoing-letters/{id} [put]
func (h *outgoingLetterHandler) updateOutgoingLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	letterID := c.Param("id")

	var req dto.UpdateOutgoingLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	letter, err := h.letterService.UpdateOutgoingLetter(c.Request.Context(), letterID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "outgoing letter")
		return
	}

	logger.Info("Outgoing letter updated", slog.String("letter_id", letterID))
	c.JSON(http.StatusOK, dto.ToOutgoingLetterResponse(letter))
}

// deleteOutgoingLetter godoc
// @Summary Delete an outgoing letter
// @Description Removes an outgoing letter. Archived letters must leave the archive first.
// @Tags outgoing-letters
// @Produce  json
// @Param   id path string true "Letter ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Letter is archived"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /outgoing-letters/{id} [delete]
func (h *outgoingLetterHandler) deleteOutgoingLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	letterID := c.Param("id")

	if err := h.letterService.DeleteOutgoingLetter(c.Request.Context(), letterID); err != nil {
		respondServiceError(c, logger, err, "outgoing letter")
		return
	}

	logger.Info("Outgoing letter deleted", slog.String("letter_id", letterID))
	c.Status(http.StatusNoContent)
}

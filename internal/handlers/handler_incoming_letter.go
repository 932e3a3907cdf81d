package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
	"github.com/sintas-dev/sintas_backend/internal/middleware"
)

// incomingLetterHandler handles HTTP requests related to incoming letters.
type incomingLetterHandler struct {
	letterService portssvc.IncomingLetterSvcFacade
}

// newIncomingLetterHandler creates a new incomingLetterHandler.
func newIncomingLetterHandler(ls portssvc.IncomingLetterSvcFacade) *incomingLetterHandler {
	return &incomingLetterHandler{letterService: ls}
}

// registerIncomingLetterRoutes registers all incoming-letter routes.
func registerIncomingLetterRoutes(rg *gin.RouterGroup, letterService portssvc.IncomingLetterSvcFacade) {
	h := newIncomingLetterHandler(letterService)

	letters := rg.Group("/incoming-letters")
	{
		letters.POST("", h.createIncomingLetter)
		letters.GET("", h.listIncomingLetters)
		letters.GET("/:id", h.getIncomingLetter)
		letters.PUT("/:id", h.updateIncomingLetter)
		letters.DELETE("/:id", h.deleteIncomingLetter)
	}
}

// createIncomingLetter godoc
// @Summary Register an incoming letter
// @Description Records a newly received letter. New letters start in the NEW status.
// @Tags incoming-letters
// @Accept  json
// @Produce  json
// @Param   letter body dto.CreateIncomingLetterRequest true "Letter details"
// @Success 201 {object} dto.IncomingLetterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Letter number already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incoming-letters [post]
func (h *incomingLetterHandler) createIncomingLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateIncomingLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	letter, err := h.letterService.CreateIncomingLetter(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "incoming letter")
		return
	}

	logger.Info("Incoming letter registered", slog.String("letter_id", letter.LetterID), slog.String("letter_number", letter.LetterNumber))
	c.JSON(http.StatusCreated, dto.ToIncomingLetterResponse(letter))
}

// getIncomingLetter godoc
// @Summary Get an incoming letter by ID
// @Tags incoming-letters
// @Produce  json
// @Param   id path string true "Letter ID"
// @Success 200 {object} dto.IncomingLetterResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incoming-letters/{id} [get]
func (h *incomingLetterHandler) getIncomingLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	letter, err := h.letterService.GetIncomingLetterByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "incoming letter")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomingLetterResponse(letter))
}

// listIncomingLetters godoc
// @Summary List incoming letters
// @Description Retrieves incoming letters filtered by status, sensitivity, category, free-text search, and received-date range
// @Tags incoming-letters
// @Produce  json
// @Param   status query string false "Filter by status" Enums(NEW, IN_PROGRESS, DONE, ARCHIVED)
// @Param   sensitivity query string false "Filter by sensitivity" Enums(NORMAL, URGENT, VERY_URGENT, CONFIDENTIAL)
// @Param   categoryID query string false "Filter by category ID"
// @Param   search query string false "Search in letter number, sender, and subject"
// @Param   from query string false "Received on or after (YYYY-MM-DD)"
// @Param   to query string false "Received before (YYYY-MM-DD)"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListIncomingLettersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incoming-letters [get]
func (h *incomingLetterHandler) listIncomingLetters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListIncomingLettersRequest
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

	letters, err := h.letterService.ListIncomingLetters(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "incoming letters")
		return
	}

	c.JSON(http.StatusOK, dto.ToListIncomingLettersResponse(letters))
}

// updateIncomingLetter godoc
// @Summary Update an incoming letter
// @Description Updates letter fields. Status changes follow the letter lifecycle; archiving goes through the archive endpoints.
// @Tags incoming-letters
// @Accept  json
// @Produce  json
// @Param   id path string true "Letter ID"
// @Param   letter body dto.UpdateIncomingLetterRequest true "Letter fields to update"
// @Success 200 {object} dto.IncomingLetterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incoming-letters/{id} [put]
func (h *incomingLetterHandler) updateIncomingLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	letterID := c.Param("id")

	var req dto.UpdateIncomingLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	letter, err := h.letterService.UpdateIncomingLetter(c.Request.Context(), letterID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "incoming letter")
		return
	}

	logger.Info("Incoming letter updated", slog.String("letter_id", letterID))
	c.JSON(http.StatusOK, dto.ToIncomingLetterResponse(letter))
}

// deleteIncomingLetter godoc
// @Summary Delete an incoming letter
// @Description Removes a letter together with its routing actions. Archived letters must leave the archive first.
// @Tags incoming-letters
// @Produce  json
// @Param   id path string true "Letter ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Letter is archived"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incoming-letters/{id} [delete]
func (h *incomingLetterHandler) deleteIncomingLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	letterID := c.Param("id")

	if err := h.letterService.DeleteIncomingLetter(c.Request.Context(), letterID); err != nil {
		respondServiceError(c, logger, err, "incoming letter")
		return
	}

	logger.Info("Incoming letter deleted", slog.String("letter_id", letterID))
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
	"github.com/sintas-dev/sintas_backend/internal/middleware"
)

// routingActionHandler handles HTTP requests related to routing actions.
type routingActionHandler struct {
	routingService portssvc.RoutingActionSvcFacade
}

// newRoutingActionHandler creates a new routingActionHandler.
func newRoutingActionHandler(rs portssvc.RoutingActionSvcFacade) *routingActionHandler {
	return &routingActionHandler{routingService: rs}
}

// registerRoutingActionRoutes registers all routing-action routes.
func registerRoutingActionRoutes(rg *gin.RouterGroup, routingService portssvc.RoutingActionSvcFacade) {
	h := newRoutingActionHandler(routingService)

	actions := rg.Group("/routing-actions")
	{
		actions.POST("", h.createRoutingAction)
		actions.GET("", h.listRoutingActions)
		actions.GET("/:id", h.getRoutingAction)
		actions.PUT("/:id", h.updateRoutingAction)
		actions.DELETE("/:id", h.deleteRoutingAction)
	}
}

// createRoutingAction godoc
// @Summary Route an incoming letter onward
// @Description Creates a routing instruction for an incoming letter. A letter in NEW status moves to IN_PROGRESS.
// @Tags routing-actions
// @Accept  json
// @Produce  json
// @Param   action body dto.CreateRoutingActionRequest true "Routing details"
// @Success 201 {object} dto.RoutingActionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Incoming letter or recipient not found"
// @Failure 409 {object} ErrorResponse "Letter is archived"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /routing-actions [post]
func (h *routingActionHandler) createRoutingAction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRoutingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	senderUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	action, err := h.routingService.CreateRoutingAction(c.Request.Context(), req, senderUserID)
	if err != nil {
		respondServiceError(c, logger, err, "routing action")
		return
	}

	logger.Info("Routing action created",
		slog.String("routing_id", action.RoutingID),
		slog.String("incoming_letter_id", action.IncomingLetterID))
	c.JSON(http.StatusCreated, dto.ToRoutingActionResponse(action))
}

// getRoutingAction godoc
// @Summary Get a routing action by ID
// @Tags routing-actions
// @Produce  json
// @Param   id path string true "Routing action ID"
// @Success 200 {object} dto.RoutingActionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /routing-actions/{id} [get]
func (h *routingActionHandler) getRoutingAction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	action, err := h.routingService.GetRoutingActionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "routing action")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoutingActionResponse(action))
}

// listRoutingActions godoc
// @Summary List routing actions
// @Description Retrieves routing actions filtered by letter, status, sender, or recipient
// @Tags routing-actions
// @Produce  json
// @Param   incomingLetterID query string false "Filter by incoming letter ID"
// @Param   status query string false "Filter by status" Enums(PENDING, IN_PROGRESS, DONE)
// @Param   fromUserID query string false "Filter by sender"
// @Param   toUserID query string false "Filter by recipient"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListRoutingActionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /routing-actions [get]
func (h *routingActionHandler) listRoutingActions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListRoutingActionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	actions, err := h.routingService.ListRoutingActions(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "routing actions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRoutingActionsResponse(actions))
}

// updateRoutingAction godoc
// @Summary Update a routing action
// @Description Updates a routing action. Completing the last open action moves the parent letter to DONE.
// @Tags routing-actions
// @Accept  json
// @Produce  json
// @Param   id path string true "Routing action ID"
// @Param   action body dto.UpdateRoutingActionRequest true "Routing fields to update"
// @Success 200 {object} dto.RoutingActionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /routing-actions/{id} [put]
func (h *routingActionHandler) updateRoutingAction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	routingID := c.Param("id")

	var req dto.UpdateRoutingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	action, err := h.routingService.UpdateRoutingAction(c.Request.Context(), routingID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "routing action")
		return
	}

	logger.Info("Routing action updated", slog.String("routing_id", routingID), slog.String("status", string(action.Status)))
	c.JSON(http.StatusOK, dto.ToRoutingActionResponse(action))
}

// deleteRoutingAction godoc
// @Summary Delete a routing action
// @Tags routing-actions
// @Produce  json
// @Param   id path string true "Routing action ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /routing-actions/{id} [delete]
func (h *routingActionHandler) deleteRoutingAction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	routingID := c.Param("id")

	if err := h.routingService.DeleteRoutingAction(c.Request.Context(), routingID); err != nil {
		respondServiceError(c, logger, err, "routing action")
		return
	}

	logger.Info("Routing action deleted", slog.String("routing_id", routingID))
	c.Status(http.StatusNoContent)
}

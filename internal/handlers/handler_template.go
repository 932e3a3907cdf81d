package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
	"github.com/sintas-dev/sintas_backend/internal/middleware"
)

// templateHandler handles HTTP requests related to letter templates.
type templateHandler struct {
	templateService portssvc.TemplateSvcFacade
}

// newTemplateHandler creates a new templateHandler.
func newTemplateHandler(ts portssvc.TemplateSvcFacade) *templateHandler {
	return &templateHandler{templateService: ts}
}

// registerTemplateRoutes registers all template-related routes.
func registerTemplateRoutes(rg *gin.RouterGroup, templateService portssvc.TemplateSvcFacade) {
	h := newTemplateHandler(templateService)

	templates := rg.Group("/templates")
	{
		templates.POST("", h.createTemplate)
		templates.GET("", h.listTemplates)
		templates.GET("/:id", h.getTemplate)
		templates.PUT("/:id", h.updateTemplate)
		templates.DELETE("/:id", h.deleteTemplate)
		templates.POST("/:id/render", h.renderTemplate)
	}
}

// createTemplate godoc
// @Summary Create a letter template
// @Description Creates a reusable HTML template for outgoing letters
// @Tags templates
// @Accept  json
// @Produce  json
// @Param   template body dto.CreateTemplateRequest true "Template details"
// @Success 201 {object} dto.TemplateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Code already in use"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /templates [post]
func (h *templateHandler) createTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "template")
		return
	}

	logger.Info("Template created", slog.String("template_id", template.TemplateID), slog.String("code", template.Code))
	c.JSON(http.StatusCreated, dto.ToTemplateResponse(template))
}

// getTemplate godoc
// @Summary Get a template by ID
// @Tags templates
// @Produce  json
// @Param   id path string true "Template ID"
// @Success 200 {object} dto.TemplateResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /templates/{id} [get]
func (h *templateHandler) getTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	template, err := h.templateService.GetTemplateByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "template")
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateResponse(template))
}

// listTemplates godoc
// @Summary List templates
// @Description Retrieves templates, optionally filtered by category or active flag
// @Tags templates
// @Produce  json
// @Param   categoryID query string false "Filter by category ID"
// @Param   isActive query bool false "Filter by active flag"
// @Success 200 {object} dto.ListTemplatesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /templates [get]
func (h *templateHandler) listTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListTemplatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	templates, err := h.templateService.ListTemplates(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "templates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTemplatesResponse(templates))
}

// updateTemplate godoc
// @Summary Update a template
// @Tags templates
// @Accept  json
// @Produce  json
// @Param   id path string true "Template ID"
// @Param   template body dto.UpdateTemplateRequest true "Template fields to update"
// @Success 200 {object} dto.TemplateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Code already in use"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /templates/{id} [put]
func (h *templateHandler) updateTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("id")

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), templateID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "template")
		return
	}

	logger.Info("Template updated", slog.String("template_id", templateID))
	c.JSON(http.StatusOK, dto.ToTemplateResponse(template))
}

// deleteTemplate godoc
// @Summary Delete a template
// @Tags templates
// @Produce  json
// @Param   id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /templates/{id} [delete]
func (h *templateHandler) deleteTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("id")

	if err := h.templateService.DeleteTemplate(c.Request.Context(), templateID); err != nil {
		respondServiceError(c, logger, err, "template")
		return
	}

	logger.Info("Template deleted", slog.String("template_id", templateID))
	c.Status(http.StatusNoContent)
}

// renderTemplate godoc
// @Summary Render a template
// @Description Substitutes the given placeholder values into the template's HTML content
// @Tags templates
// @Accept  json
// @Produce  json
// @Param   id path string true "Template ID"
// @Param   values body dto.RenderTemplateRequest true "Placeholder values"
// @Success 200 {object} dto.RenderTemplateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /templates/{id}/render [post]
func (h *templateHandler) renderTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("id")

	var req dto.RenderTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	html, err := h.templateService.RenderTemplate(c.Request.Context(), templateID, req.Values)
	if err != nil {
		respondServiceError(c, logger, err, "template")
		return
	}

	c.JSON(http.StatusOK, dto.RenderTemplateResponse{HTML: html})
}

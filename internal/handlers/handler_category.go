package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
	"github.com/sintas-dev/sintas_backend/internal/middleware"
)

// categoryHandler handles HTTP requests related to letter categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// newCategoryHandler creates a new categoryHandler.
func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers all category-related routes.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Create a letter category
// @Description Creates a new category for classifying letters
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Code already in use"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "category")
		return
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID), slog.String("code", category.Code))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// getCategory godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Description Retrieves all categories ordered by name
// @Tags categories
// @Produce  json
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}

// updateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Category fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Code already in use"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("id")

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "category")
		return
	}

	logger.Info("Category updated", slog.String("category_id", categoryID))
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Removes a category. Fails while letters or templates still reference it.
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Category still referenced"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("id")

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		respondServiceError(c, logger, err, "category")
		return
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	c.Status(http.StatusNoContent)
}

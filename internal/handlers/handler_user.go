package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
	"github.com/sintas-dev/sintas_backend/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/me", h.getCurrentUser)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}
}

// createUser godoc
// @Summary Create a new user
// @Description Creates a new user account (admin action)
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	createdUser, err := h.userService.CreateUser(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "user")
		return
	}

	logger.Info("User created", slog.String("new_user_id", createdUser.UserID), slog.String("creator_user_id", creatorUserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(createdUser))
}

// getCurrentUser godoc
// @Summary Get the authenticated user
// @Description Retrieves the profile of the user identified by the bearer token
// @Tags users
// @Produce  json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getUser godoc
// @Summary Get a user by ID
// @Description Retrieves details for a specific user
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Description Retrieves a paginated list of users
// @Tags users
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// updateUser godoc
// @Summary Update a user
// @Description Updates a user's profile fields
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID to update"
// @Param   user body dto.UpdateUserRequest true "User details to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updatedUser, err := h.userService.UpdateUser(c.Request.Context(), userID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "user")
		return
	}

	logger.Info("User updated", slog.String("target_user_id", userID), slog.String("updater_user_id", updaterUserID))
	c.JSON(http.StatusOK, dto.ToUserResponse(updatedUser))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Marks a user as deleted (soft delete)
// @Tags users
// @Produce  json
// @Param   id path string true "User ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID, deleterUserID); err != nil {
		respondServiceError(c, logger, err, "user")
		return
	}

	logger.Info("User deleted", slog.String("target_user_id", userID), slog.String("deleter_user_id", deleterUserID))
	c.Status(http.StatusNoContent)
}

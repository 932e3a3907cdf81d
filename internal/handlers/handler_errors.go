package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sintas-dev/sintas_backend/internal/apperrors"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError translates service-layer errors into HTTP responses.
// Sentinel errors map to their conventional status codes; anything else is a 500
// with a generic message so internal details never reach the client.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, resource string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(resource+" not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate "+resource, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting state for "+resource, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed for "+resource, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden operation on "+resource, slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized operation on "+resource, slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.As(err, &appErr):
		logger.Error("Service error for "+resource, slog.String("error", err.Error()))
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
	default:
		logger.Error("Failed to process "+resource, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process " + resource})
	}
}

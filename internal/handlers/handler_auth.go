package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
	"github.com/sintas-dev/sintas_backend/internal/middleware"
	"github.com/sintas-dev/sintas_backend/internal/platform/config"
	"github.com/sintas-dev/sintas_backend/internal/utils"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, services.Token, cfg)

	// Rate limit: 5 requests per minute per IP on credential endpoints.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
	}
}

// issueTokens generates an access/refresh token pair for the user, persists the
// refresh token hash, and sets the refresh token cookie. The cookie value also
// carries the user ID so the refresh endpoint can look up the stored hash.
func (h *authHandler) issueTokens(c *gin.Context, user *domain.User) (string, error) {
	ctx := c.Request.Context()

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return "", err
	}

	rawRefreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return "", err
	}

	refreshTokenHash := utils.HashRefreshToken(rawRefreshToken)
	if err := h.userService.UpdateRefreshToken(ctx, user.UserID, refreshTokenHash, refreshExpiry); err != nil {
		return "", err
	}

	cookieValue := user.UserID + ":" + rawRefreshToken
	maxAge := int(time.Until(refreshExpiry).Seconds())
	c.SetCookie(h.cfg.RefreshTokenCookieName, cookieValue, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)

	return accessToken, nil
}

// refreshCookieParts splits the refresh cookie into the user ID and raw token.
func refreshCookieParts(cookieValue string) (string, string, bool) {
	parts := strings.SplitN(cookieValue, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// login godoc
// @Summary User login
// @Description Authenticates a user with email and password and returns a JWT access token. A refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login failed", slog.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to authenticate"})
		return
	}

	accessToken, err := h.issueTokens(c, user)
	if err != nil {
		logger.Error("Failed to issue tokens", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: accessToken})
}

// refresh godoc
// @Summary Refresh access token
// @Description Exchanges the refresh token cookie for a new JWT access token. The refresh token is rotated on every use.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cookieValue, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token missing"})
		return
	}
	userID, rawRefreshToken, ok := refreshCookieParts(cookieValue)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Malformed refresh token"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), userID, rawRefreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			logger.Warn("Refresh token expired", slog.String("user_id", userID))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token expired"})
			return
		}
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Refresh token rejected", slog.String("user_id", userID))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
			return
		}
		logger.Error("Failed to validate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to refresh token"})
		return
	}

	accessToken, err := h.issueTokens(c, user)
	if err != nil {
		logger.Error("Failed to rotate tokens", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to refresh token"})
		return
	}

	logger.Info("Access token refreshed", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.RefreshTokenResponse{Token: accessToken})
}

// logout godoc
// @Summary User logout
// @Description Invalidates the stored refresh token and clears the refresh token cookie.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Failure 500 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if cookieValue, err := c.Cookie(h.cfg.RefreshTokenCookieName); err == nil {
		if userID, _, ok := refreshCookieParts(cookieValue); ok {
			if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				logger.Error("Failed to clear refresh token", slog.String("error", err.Error()), slog.String("user_id", userID))
				c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log out"})
				return
			}
			logger.Info("User logged out", slog.String("user_id", userID))
		}
	}

	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/middleware"
	"github.com/sintas-dev/sintas_backend/internal/platform/config"
)

const oauthStateCookieName = "oauth_state"

// googleOAuthHandler handles Google OAuth related requests.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	cfg                *config.Config
}

// newGoogleOAuthHandler creates a new googleOAuthHandler.
func newGoogleOAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: services.GoogleOAuth,
		userService:        services.User,
		tokenService:       services.Token,
		cfg:                cfg,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes under the auth group.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(services, cfg)

	googleRoutes := rg.Group("/api/v1/auth/google")
	{
		googleRoutes.GET("/login", h.loginGoogle)
		googleRoutes.GET("/callback", h.callbackGoogle)
		googleRoutes.POST("/exchange-code", h.exchangeCodeGoogle)
	}
}

// ExchangeCodeRequest defines the expected JSON body for the exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeCodeResponse defines the successful response for the exchange-code endpoint.
type ExchangeCodeResponse struct {
	Token string `json:"token"`
}

// loginGoogle godoc
// @Summary Start Google OAuth login
// @Description Redirects the browser to Google's consent screen. A state cookie guards against CSRF.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) loginGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google login"})
		return
	}

	// 10 minutes is plenty for the round trip to Google.
	c.SetCookie(oauthStateCookieName, state, 600, "/api/v1/auth/google", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// callbackGoogle godoc
// @Summary Google OAuth callback
// @Description Handles the redirect back from Google, provisions the user, and redirects to the frontend with an access token.
// @Tags oauth
// @Success 307
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callbackGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	stateCookie, err := c.Cookie(oauthStateCookieName)
	if err != nil || stateCookie == "" || stateCookie != c.Query("state") {
		logger.Warn("OAuth state mismatch on Google callback")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/api/v1/auth/google", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	userInfo, err := h.googleOAuthService.GetUserInfo(ctx, oauth2Token)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to fetch user info from Google"})
		return
	}

	user, err := h.userService.FindOrCreateUserByGoogleInfo(ctx, userInfo)
	if err != nil {
		respondServiceError(c, logger, err, "user")
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User signed in via Google", slog.String("user_id", user.UserID))
	redirectURL := strings.TrimRight(h.cfg.FrontendBaseURL, "/") + "/auth/callback?token=" + url.QueryEscape(accessToken)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

// exchangeCodeGoogle godoc
// @Summary Exchange authorization code for access token
// @Description Exchanges a Google authorization code obtained by the frontend for an application JWT.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} ExchangeCodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token missing from Google token response")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid Google ID token")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || payload.Subject == "" {
		logger.Error("Essential claims missing from Google ID token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Essential user information missing from Google token"})
		return
	}

	user, err := h.userService.FindOrCreateUserByGoogleInfo(ctx, &domain.GoogleUserInfo{
		ID:            payload.Subject,
		Email:         email,
		VerifiedEmail: emailVerified,
		Name:          name,
		Picture:       picture,
	})
	if err != nil {
		respondServiceError(c, logger, err, "user")
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Exchanged Google code for application JWT", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, gin.H{"data": ExchangeCodeResponse{Token: accessToken}})
}

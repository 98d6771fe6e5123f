package api

import (
	"errors"
	"net/http"
	"time"

	"rentacar/internal/handler/dto/request"
	"rentacar/internal/handler/dto/response"
	"rentacar/internal/handler/httperr"
	"rentacar/internal/handler/middleware"
	"rentacar/internal/pkg/config"
	"rentacar/internal/pkg/cookie"
	"rentacar/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookieCfg   config.CookieConfig
	tokenTTL    time.Duration
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cookieCfg config.CookieConfig, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieCfg:   cookieCfg,
		tokenTTL:    tokenTTL,
	}
}

// @Summary User login
// @Description Login with username or email plus password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	token, u, err := h.authUseCase.Login(c.Request.Context(), req.ToDomain())
	if err != nil {
		var formErr *usecase.FormError
		switch {
		case errors.As(err, &formErr):
			httperr.AbortWithFieldErrors(c, http.StatusBadRequest, err, formErr.Fields)
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
		case errors.Is(err, usecase.ErrAuthProviderDown):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Login service is unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, token, h.tokenTTL)
	c.JSON(http.StatusOK, response.LoginResponse{
		AccessToken: token,
		User:        response.FromUser(u),
	})
}

// @Summary User logout
// @Description Destroy the current session and clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrSessionNotFound, "Please log in to continue", nil)
		return
	}

	if err := h.authUseCase.Logout(c.Request.Context(), sess.ID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Register account
// @Description Create a demo account on the rental API
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RegisterRequest true "Registration request"
// @Success 201 {object} response.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	u, err := h.authUseCase.Register(c.Request.Context(), req.ToDomain())
	if err != nil {
		var formErr *usecase.FormError
		switch {
		case errors.As(err, &formErr):
			httperr.AbortWithFieldErrors(c, http.StatusBadRequest, err, formErr.Fields)
		case errors.Is(err, usecase.ErrAuthProviderDown):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Registration service is unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(u))
}

// @Summary Get current user
// @Description Return the user attached to the active session
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrSessionNotFound, "Please log in to continue", nil)
		return
	}

	u, err := h.authUseCase.CurrentUser(c.Request.Context(), sess.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response.FromUser(u))
}

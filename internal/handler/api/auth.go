package api

import (
	"log/slog"
	"net/http"

	reqdto "rental-storefront/internal/handler/dto/request"
	resdto "rental-storefront/internal/handler/dto/response"
	"rental-storefront/internal/handler/httperr"
	"rental-storefront/internal/handler/middleware"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/pkg/cookie"
	"rental-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	sessions usecase.SessionUseCase
	cookie   config.CookieConfig
	logger   *slog.Logger
}

func NewAuthHandler(sessions usecase.SessionUseCase, cfg config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		cookie:   cfg.Cookie,
		logger:   logger,
	}
}

// @Summary User login
// @Description Login against the rental backend and start a signed-in session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ctx := c.Request.Context()
	info, err := h.sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	// The visitor's previous session is replaced by the signed-in one.
	if previous := middleware.SessionIDFromRequest(c); previous != "" && previous != info.ID {
		if err := h.sessions.Logout(ctx, previous); err != nil {
			h.logger.Warn("failed to drop previous session", slog.String("error", err.Error()))
		}
	}

	cookie.SetSessionCookie(c, h.cookie, info.ID, info.ExpiresAt)
	c.JSON(http.StatusOK, resdto.FromSession(info))
}

// @Summary Register
// @Description Create a customer account on the rental backend
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	rec, err := h.sessions.Register(c.Request.Context(), in)
	if err != nil {
		if msg, ok := usecase.RemoteMessage(err); ok {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
			return
		}
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.RegisterResponse{User: resdto.FromUserRecord(rec)})
}

// @Summary Logout
// @Description End the current session, discarding favorites and open reservation forms
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if id := middleware.SessionIDFromRequest(c); id != "" {
		if err := h.sessions.Logout(c.Request.Context(), id); err != nil {
			httperr.Abort(c, err)
			return
		}
	}
	cookie.ClearSessionCookie(c, h.cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current session
// @Description Get the current session, signed in or anonymous
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	info, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, usecase.ErrSessionNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(info))
}

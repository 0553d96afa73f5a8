package handler

import (
	"net/http"

	"github.com/GlitchedDuck/Manager-hub/internal/logger"
	"github.com/GlitchedDuck/Manager-hub/internal/middleware"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"github.com/GlitchedDuck/Manager-hub/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth   *service.AuthService
	tokens *middleware.Tokens
}

func NewAuthHandler(auth *service.AuthService, tokens *middleware.Tokens) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	m, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("login.failed", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrBadCredentials.Error()})
		return
	}

	logger.Info("login.ok", "username", m.Username, "name", m.Name)

	token, err := h.tokens.Issue(m.Username, m.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.LoginResponse{
		Token: token,
		User:  model.User{Username: m.Username, Name: m.Name},
	})
}

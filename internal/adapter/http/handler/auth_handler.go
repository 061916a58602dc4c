package handler

import (
	"github.com/peterzzshi/gmgn-clone/internal/adapter/http/dto"
	"github.com/peterzzshi/gmgn-clone/internal/adapter/http/middleware"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/pkg/apperror"
	"github.com/peterzzshi/gmgn-clone/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	session, err := h.authSvc.Login(req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, session)
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	session, err := h.authSvc.Register(ports.RegisterParams{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so this is
// an acknowledgement only.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.OKMessage(c, nil, "Logged out successfully")
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authSvc.Me(middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

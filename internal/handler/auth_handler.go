package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fityannugroho/openmusic-api/internal/service"
	"github.com/fityannugroho/openmusic-api/pkg/httputil"
)

// AuthHandler serves login, token refresh and logout.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginRequest is the payload for POST /authentications.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token for rotation and logout.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// PostAuthentication handles POST /authentications (login).
func (h *AuthHandler) PostAuthentication(c *gin.Context) {
	var req LoginRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.CreatedResponse(c, pair)
}

// PutAuthentication handles PUT /authentications (access token refresh).
func (h *AuthHandler) PutAuthentication(c *gin.Context) {
	var req RefreshRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	access, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.SuccessResponse(c, gin.H{"accessToken": access})
}

// DeleteAuthentication handles DELETE /authentications (logout).
func (h *AuthHandler) DeleteAuthentication(c *gin.Context) {
	var req RefreshRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.MessageResponse(c, "Refresh token revoked")
}

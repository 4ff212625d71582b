package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fityannugroho/openmusic-api/internal/service"
	"github.com/fityannugroho/openmusic-api/pkg/httputil"
)

// CollaborationHandler serves collaboration grants.
type CollaborationHandler struct {
	collabs *service.CollaborationService
}

// NewCollaborationHandler creates a collaboration handler.
func NewCollaborationHandler(collabs *service.CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{collabs: collabs}
}

// CollaborationRequest identifies a playlist and the user to grant or revoke.
type CollaborationRequest struct {
	PlaylistID string `json:"playlistId" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
}

// PostCollaboration handles POST /collaborations.
func (h *CollaborationHandler) PostCollaboration(c *gin.Context) {
	var req CollaborationRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	id, err := h.collabs.Add(c.Request.Context(), req.PlaylistID, httputil.GetUserID(c), req.UserID)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.CreatedResponse(c, gin.H{"collaborationId": id})
}

// DeleteCollaboration handles DELETE /collaborations.
func (h *CollaborationHandler) DeleteCollaboration(c *gin.Context) {
	var req CollaborationRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	err := h.collabs.Delete(c.Request.Context(), req.PlaylistID, httputil.GetUserID(c), req.UserID)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.MessageResponse(c, "Collaboration revoked")
}

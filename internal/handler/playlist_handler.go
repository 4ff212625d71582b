package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fityannugroho/openmusic-api/internal/service"
	"github.com/fityannugroho/openmusic-api/pkg/httputil"
)

// PlaylistHandler serves playlists, playlist songs and the activity log.
type PlaylistHandler struct {
	playlists *service.PlaylistService
	exports   *service.ExportService
}

// NewPlaylistHandler creates a playlist handler.
func NewPlaylistHandler(playlists *service.PlaylistService, exports *service.ExportService) *PlaylistHandler {
	return &PlaylistHandler{playlists: playlists, exports: exports}
}

// PlaylistRequest is the payload for creating a playlist.
type PlaylistRequest struct {
	Name string `json:"name" binding:"required"`
}

// PlaylistSongRequest identifies a song to add to or remove from a playlist.
type PlaylistSongRequest struct {
	SongID string `json:"songId" binding:"required"`
}

// ExportRequest is the payload for exporting a playlist.
type ExportRequest struct {
	TargetEmail string `json:"targetEmail" binding:"required,email"`
}

// PostPlaylist handles POST /playlists.
func (h *PlaylistHandler) PostPlaylist(c *gin.Context) {
	var req PlaylistRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	id, err := h.playlists.Create(c.Request.Context(), httputil.GetUserID(c), req.Name)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.CreatedResponse(c, gin.H{"playlistId": id})
}

// GetPlaylists handles GET /playlists. Cache hits are flagged through the
// X-Data-Source header.
func (h *PlaylistHandler) GetPlaylists(c *gin.Context) {
	playlists, fromCache, err := h.playlists.List(c.Request.Context(), httputil.GetUserID(c))
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.MarkCacheHit(c, fromCache)
	httputil.SuccessResponse(c, gin.H{"playlists": playlists})
}

// DeletePlaylist handles DELETE /playlists/:id.
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	if err := h.playlists.Delete(c.Request.Context(), c.Param("id"), httputil.GetUserID(c)); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.MessageResponse(c, "Playlist deleted")
}

// PostPlaylistSong handles POST /playlists/:id/songs.
func (h *PlaylistHandler) PostPlaylistSong(c *gin.Context) {
	var req PlaylistSongRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	err := h.playlists.AddSong(c.Request.Context(), c.Param("id"), httputil.GetUserID(c), req.SongID)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.CreatedResponse(c, gin.H{"message": "Song added to playlist"})
}

// GetPlaylistSongs handles GET /playlists/:id/songs.
func (h *PlaylistHandler) GetPlaylistSongs(c *gin.Context) {
	detail, err := h.playlists.GetDetail(c.Request.Context(), c.Param("id"), httputil.GetUserID(c))
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.SuccessResponse(c, gin.H{"playlist": detail})
}

// DeletePlaylistSong handles DELETE /playlists/:id/songs.
func (h *PlaylistHandler) DeletePlaylistSong(c *gin.Context) {
	var req PlaylistSongRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	err := h.playlists.DeleteSong(c.Request.Context(), c.Param("id"), httputil.GetUserID(c), req.SongID)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.MessageResponse(c, "Song removed from playlist")
}

// GetPlaylistActivities handles GET /playlists/:id/activities.
func (h *PlaylistHandler) GetPlaylistActivities(c *gin.Context) {
	activities, err := h.playlists.Activities(c.Request.Context(), c.Param("id"), httputil.GetUserID(c))
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.SuccessResponse(c, gin.H{
		"playlistId": c.Param("id"),
		"activities": activities,
	})
}

// PostExport handles POST /export/playlists/:id.
func (h *PlaylistHandler) PostExport(c *gin.Context) {
	var req ExportRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	err := h.exports.ExportPlaylist(c.Request.Context(), c.Param("id"), httputil.GetUserID(c), req.TargetEmail)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.CreatedResponse(c, gin.H{"message": "Your request is being processed"})
}

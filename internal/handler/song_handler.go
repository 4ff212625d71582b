package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fityannugroho/openmusic-api/internal/service"
	"github.com/fityannugroho/openmusic-api/pkg/httputil"
)

// SongHandler serves song CRUD and search.
type SongHandler struct {
	songs *service.SongService
}

// NewSongHandler creates a song handler.
func NewSongHandler(songs *service.SongService) *SongHandler {
	return &SongHandler{songs: songs}
}

// SongRequest is the payload for creating or updating a song.
type SongRequest struct {
	Title     string  `json:"title" binding:"required"`
	Year      int     `json:"year" binding:"required,gte=1900,lte=2100"`
	Genre     string  `json:"genre" binding:"required"`
	Performer string  `json:"performer" binding:"required"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

func (r SongRequest) input() service.SongInput {
	return service.SongInput{
		Title:     r.Title,
		Year:      r.Year,
		Genre:     r.Genre,
		Performer: r.Performer,
		Duration:  r.Duration,
		AlbumID:   r.AlbumID,
	}
}

// PostSong handles POST /songs.
func (h *SongHandler) PostSong(c *gin.Context) {
	var req SongRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	id, err := h.songs.Create(c.Request.Context(), req.input())
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.CreatedResponse(c, gin.H{"songId": id})
}

// GetSongs handles GET /songs with optional title and performer filters.
func (h *SongHandler) GetSongs(c *gin.Context) {
	songs, err := h.songs.List(c.Request.Context(), c.Query("title"), c.Query("performer"))
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.SuccessResponse(c, gin.H{"songs": songs})
}

// GetSong handles GET /songs/:id.
func (h *SongHandler) GetSong(c *gin.Context) {
	song, err := h.songs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.SuccessResponse(c, gin.H{"song": song})
}

// PutSong handles PUT /songs/:id.
func (h *SongHandler) PutSong(c *gin.Context) {
	var req SongRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	if err := h.songs.Update(c.Request.Context(), c.Param("id"), req.input()); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.MessageResponse(c, "Song updated")
}

// DeleteSong handles DELETE /songs/:id.
func (h *SongHandler) DeleteSong(c *gin.Context) {
	if err := h.songs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.MessageResponse(c, "Song deleted")
}

// Package handler exposes the OpenMusic HTTP API on gin.
package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fityannugroho/openmusic-api/internal/service"
	"github.com/fityannugroho/openmusic-api/pkg/errors"
	"github.com/fityannugroho/openmusic-api/pkg/httputil"
)

// AlbumHandler serves album CRUD, cover uploads and likes.
type AlbumHandler struct {
	albums       *service.AlbumService
	likes        *service.LikeService
	maxCoverSize int64
}

// NewAlbumHandler creates an album handler. maxCoverSize caps cover uploads
// in bytes.
func NewAlbumHandler(albums *service.AlbumService, likes *service.LikeService, maxCoverSize int64) *AlbumHandler {
	return &AlbumHandler{albums: albums, likes: likes, maxCoverSize: maxCoverSize}
}

// AlbumRequest is the payload for creating or updating an album.
type AlbumRequest struct {
	Name string `json:"name" binding:"required"`
	Year int    `json:"year" binding:"required,gte=1900,lte=2100"`
}

// PostAlbum handles POST /albums.
func (h *AlbumHandler) PostAlbum(c *gin.Context) {
	var req AlbumRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	id, err := h.albums.Create(c.Request.Context(), req.Name, req.Year)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.CreatedResponse(c, gin.H{"albumId": id})
}

// GetAlbum handles GET /albums/:id.
func (h *AlbumHandler) GetAlbum(c *gin.Context) {
	album, err := h.albums.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.SuccessResponse(c, gin.H{"album": album})
}

// PutAlbum handles PUT /albums/:id.
func (h *AlbumHandler) PutAlbum(c *gin.Context) {
	var req AlbumRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	if err := h.albums.Update(c.Request.Context(), c.Param("id"), req.Name, req.Year); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.MessageResponse(c, "Album updated")
}

// DeleteAlbum handles DELETE /albums/:id.
func (h *AlbumHandler) DeleteAlbum(c *gin.Context) {
	if err := h.albums.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.MessageResponse(c, "Album deleted")
}

// PostCover handles POST /albums/:id/covers. The upload must be an image
// and must not exceed the configured size cap.
func (h *AlbumHandler) PostCover(c *gin.Context) {
	file, err := c.FormFile("cover")
	if err != nil {
		httputil.ErrorResponse(c, errors.ErrInvalidInput.WithMessage("Cover file is required"))
		return
	}
	if file.Size > h.maxCoverSize {
		httputil.ErrorResponse(c, errors.ErrInvalidInput.WithMessage("Cover file is too large"))
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		httputil.ErrorResponse(c, errors.ErrInvalidInput.WithMessage("Cover must be an image"))
		return
	}

	src, err := file.Open()
	if err != nil {
		httputil.ErrorResponse(c, errors.ErrStorageError.WithError(err))
		return
	}
	defer src.Close()

	if _, err := h.albums.SetCover(c.Request.Context(), c.Param("id"), file.Filename, src); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.CreatedResponse(c, gin.H{"message": "Cover uploaded"})
}

// PostLike handles POST /albums/:id/likes.
func (h *AlbumHandler) PostLike(c *gin.Context) {
	userID := httputil.GetUserID(c)
	if err := h.likes.Like(c.Request.Context(), userID, c.Param("id")); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.CreatedResponse(c, gin.H{"message": "Album liked"})
}

// DeleteLike handles DELETE /albums/:id/likes.
func (h *AlbumHandler) DeleteLike(c *gin.Context) {
	userID := httputil.GetUserID(c)
	if err := h.likes.Unlike(c.Request.Context(), userID, c.Param("id")); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.MessageResponse(c, "Like removed")
}

// GetLikes handles GET /albums/:id/likes. Cache hits are flagged through
// the X-Data-Source header.
func (h *AlbumHandler) GetLikes(c *gin.Context) {
	count, fromCache, err := h.likes.Count(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}
	httputil.MarkCacheHit(c, fromCache)
	httputil.SuccessResponse(c, gin.H{"likes": count})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fityannugroho/openmusic-api/internal/middleware"
	"github.com/fityannugroho/openmusic-api/pkg/jwt"
	"github.com/fityannugroho/openmusic-api/pkg/logger"
)

// Handlers groups the resource handlers wired into the router.
type Handlers struct {
	Albums    *AlbumHandler
	Songs     *SongHandler
	Users     *UserHandler
	Auth      *AuthHandler
	Playlists *PlaylistHandler
	Collabs   *CollaborationHandler
}

// NewRouter builds the gin engine with the full middleware chain and all
// API routes. uploadDir is served statically for cover images.
func NewRouter(h Handlers, tokens *jwt.Manager, log logger.Logger, uploadDir string) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(log),
		middleware.Recovery(log),
		middleware.CORS(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.Static("/uploads/images", uploadDir)

	// Public resources
	albums := r.Group("/albums")
	{
		albums.POST("", h.Albums.PostAlbum)
		albums.GET("/:id", h.Albums.GetAlbum)
		albums.PUT("/:id", h.Albums.PutAlbum)
		albums.DELETE("/:id", h.Albums.DeleteAlbum)
		albums.POST("/:id/covers", h.Albums.PostCover)
		albums.GET("/:id/likes", h.Albums.GetLikes)
	}

	songs := r.Group("/songs")
	{
		songs.POST("", h.Songs.PostSong)
		songs.GET("", h.Songs.GetSongs)
		songs.GET("/:id", h.Songs.GetSong)
		songs.PUT("/:id", h.Songs.PutSong)
		songs.DELETE("/:id", h.Songs.DeleteSong)
	}

	r.POST("/users", h.Users.PostUser)
	r.GET("/users/:id", h.Users.GetUser)

	auth := r.Group("/authentications")
	{
		auth.POST("", h.Auth.PostAuthentication)
		auth.PUT("", h.Auth.PutAuthentication)
		auth.DELETE("", h.Auth.DeleteAuthentication)
	}

	// Authenticated resources
	authed := r.Group("", middleware.Auth(tokens))
	{
		authed.POST("/albums/:id/likes", h.Albums.PostLike)
		authed.DELETE("/albums/:id/likes", h.Albums.DeleteLike)

		playlists := authed.Group("/playlists")
		{
			playlists.POST("", h.Playlists.PostPlaylist)
			playlists.GET("", h.Playlists.GetPlaylists)
			playlists.DELETE("/:id", h.Playlists.DeletePlaylist)
			playlists.POST("/:id/songs", h.Playlists.PostPlaylistSong)
			playlists.GET("/:id/songs", h.Playlists.GetPlaylistSongs)
			playlists.DELETE("/:id/songs", h.Playlists.DeletePlaylistSong)
			playlists.GET("/:id/activities", h.Playlists.GetPlaylistActivities)
		}

		authed.POST("/collaborations", h.Collabs.PostCollaboration)
		authed.DELETE("/collaborations", h.Collabs.DeleteCollaboration)

		authed.POST("/export/playlists/:id", h.Playlists.PostExport)
	}

	return r
}

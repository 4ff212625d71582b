package domain

import "github.com/fityannugroho/openmusic-api/pkg/errors"

// Predefined domain errors. Handlers translate these into HTTP responses
// through their attached status codes.
var (
	ErrAlbumNotFound    = errors.NotFound("Album not found")
	ErrSongNotFound     = errors.NotFound("Song not found")
	ErrPlaylistNotFound = errors.NotFound("Playlist not found")
	ErrUserNotFound     = errors.NotFound("User not found")
	ErrCollabNotFound   = errors.NotFound("Collaboration not found")
	ErrActivityNotFound = errors.NotFound("Playlist has no activities")

	ErrPlaylistForbidden = errors.Forbidden("You are not eligible to access this resource")

	ErrUsernameTaken     = errors.Invariant("Username is already taken")
	ErrAlreadyLiked      = errors.Invariant("Album is already liked")
	ErrNotLiked          = errors.NotFound("Album has not been liked")
	ErrSongNotInPlaylist = errors.NotFound("Song is not in the playlist")
	ErrSelfCollaboration = errors.Invariant("Owner cannot be added as a collaborator")

	ErrInvalidCredentials = errors.ErrInvalidCredentials.WithMessage("Username or password is incorrect")
	ErrInvalidRefresh     = errors.Invariant("Refresh token is not valid")
)

// Package service implements the application logic of the OpenMusic API.
package service

import (
	"context"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/internal/repository"
)

// AccessService decides whether a user may act on a playlist. Ownership is
// checked first; collaboration widens read/modify access but never covers
// owner-only operations such as delete, collaboration management or export.
type AccessService struct {
	playlistRepo repository.PlaylistRepository
	collabRepo   repository.CollaborationRepository
}

// NewAccessService creates an access service.
func NewAccessService(playlistRepo repository.PlaylistRepository, collabRepo repository.CollaborationRepository) *AccessService {
	return &AccessService{playlistRepo: playlistRepo, collabRepo: collabRepo}
}

// VerifyOwner ensures the playlist exists and is owned by userID. A missing
// playlist reports NotFound, never Forbidden, so callers can tell "no such
// playlist" apart from "not yours".
func (s *AccessService) VerifyOwner(ctx context.Context, playlistID, userID string) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.Owner != userID {
		return nil, domain.ErrPlaylistForbidden
	}
	return playlist, nil
}

// VerifyAccess ensures userID is either the owner of the playlist or a
// collaborator on it. The ownership check runs first; only a Forbidden
// outcome falls through to the collaboration lookup, so a missing playlist
// still reports NotFound. When the collaboration lookup also fails, the
// original ownership error is returned rather than the lookup's own.
func (s *AccessService) VerifyAccess(ctx context.Context, playlistID, userID string) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.Owner == userID {
		return playlist, nil
	}
	if err := s.collabRepo.Verify(ctx, playlistID, userID); err != nil {
		// The collaboration lookup never masks the ownership verdict.
		return nil, domain.ErrPlaylistForbidden
	}
	return playlist, nil
}

package service

import (
	"context"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/internal/repository"
)

// CollaborationService manages playlist collaboration grants. Only the
// playlist owner may grant or revoke access.
type CollaborationService struct {
	collabRepo repository.CollaborationRepository
	userRepo   repository.UserRepository
	access     *AccessService
	playlists  *PlaylistService
}

// NewCollaborationService creates a collaboration service.
func NewCollaborationService(
	collabRepo repository.CollaborationRepository,
	userRepo repository.UserRepository,
	access *AccessService,
	playlists *PlaylistService,
) *CollaborationService {
	return &CollaborationService{
		collabRepo: collabRepo,
		userRepo:   userRepo,
		access:     access,
		playlists:  playlists,
	}
}

// Add grants collaboratorID access to the playlist and returns the grant ID.
// The collaborator's cached playlist listing is dropped so the shared
// playlist shows up on their next read.
func (s *CollaborationService) Add(ctx context.Context, playlistID, ownerID, collaboratorID string) (string, error) {
	playlist, err := s.access.VerifyOwner(ctx, playlistID, ownerID)
	if err != nil {
		return "", err
	}
	if playlist.Owner == collaboratorID {
		return "", domain.ErrSelfCollaboration
	}
	if _, err := s.userRepo.GetByID(ctx, collaboratorID); err != nil {
		return "", err
	}

	collab := &domain.Collaboration{
		ID:         domain.NewID(domain.PrefixCollab),
		PlaylistID: playlistID,
		UserID:     collaboratorID,
	}
	if err := s.collabRepo.Add(ctx, collab); err != nil {
		return "", err
	}

	s.playlists.InvalidateListing(ctx, collaboratorID)
	return collab.ID, nil
}

// Delete revokes collaboratorID's access to the playlist.
func (s *CollaborationService) Delete(ctx context.Context, playlistID, ownerID, collaboratorID string) error {
	if _, err := s.access.VerifyOwner(ctx, playlistID, ownerID); err != nil {
		return err
	}
	if err := s.collabRepo.Delete(ctx, playlistID, collaboratorID); err != nil {
		return err
	}

	s.playlists.InvalidateListing(ctx, collaboratorID)
	return nil
}

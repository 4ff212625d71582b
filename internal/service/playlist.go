package service

import (
	"context"
	"encoding/json"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/internal/repository"
	"github.com/fityannugroho/openmusic-api/pkg/logger"
	"github.com/fityannugroho/openmusic-api/pkg/redis"
)

// PlaylistService manages playlists, their songs and the activity log. The
// per-user playlist listing is served through the cache; every write that
// could change a listing invalidates the affected user's entry after the
// database write has committed.
type PlaylistService struct {
	playlistRepo repository.PlaylistRepository
	songRepo     repository.SongRepository
	userRepo     repository.UserRepository
	access       *AccessService
	cache        *redis.ReadThrough
	log          logger.Logger
}

// NewPlaylistService creates a playlist service.
func NewPlaylistService(
	playlistRepo repository.PlaylistRepository,
	songRepo repository.SongRepository,
	userRepo repository.UserRepository,
	access *AccessService,
	cache *redis.ReadThrough,
	log logger.Logger,
) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		songRepo:     songRepo,
		userRepo:     userRepo,
		access:       access,
		cache:        cache,
		log:          log,
	}
}

// Create stores a new playlist owned by userID and returns its ID.
func (s *PlaylistService) Create(ctx context.Context, userID, name string) (string, error) {
	playlist := &domain.Playlist{
		ID:    domain.NewID(domain.PrefixPlaylist),
		Name:  name,
		Owner: userID,
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return "", err
	}
	s.invalidateListing(ctx, userID)
	return playlist.ID, nil
}

// List returns the playlists userID owns or collaborates on, served through
// the cache. The second result reports whether the value came from the cache.
func (s *PlaylistService) List(ctx context.Context, userID string) ([]domain.PlaylistSummary, bool, error) {
	key := redis.UserPlaylistsKey(userID)
	value, fromCache, err := s.cache.GetString(ctx, key, redis.DefaultTTL, func(ctx context.Context) (string, error) {
		playlists, err := s.playlistRepo.ListByUser(ctx, userID)
		if err != nil {
			return "", err
		}
		encoded, err := json.Marshal(playlists)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	})
	if err != nil {
		return nil, false, err
	}

	var playlists []domain.PlaylistSummary
	if err := json.Unmarshal([]byte(value), &playlists); err != nil {
		// A corrupt cached value is dropped and served from the database.
		s.invalidateListing(ctx, userID)
		fresh, dbErr := s.playlistRepo.ListByUser(ctx, userID)
		return fresh, false, dbErr
	}
	if playlists == nil {
		playlists = []domain.PlaylistSummary{}
	}
	return playlists, fromCache, nil
}

// Delete removes a playlist. Only the owner may delete it.
func (s *PlaylistService) Delete(ctx context.Context, playlistID, userID string) error {
	if _, err := s.access.VerifyOwner(ctx, playlistID, userID); err != nil {
		return err
	}
	if err := s.playlistRepo.Delete(ctx, playlistID); err != nil {
		return err
	}
	s.invalidateListing(ctx, userID)
	return nil
}

// AddSong puts an existing song into the playlist and records the activity.
// Owner and collaborators may add songs.
func (s *PlaylistService) AddSong(ctx context.Context, playlistID, userID, songID string) error {
	if _, err := s.access.VerifyAccess(ctx, playlistID, userID); err != nil {
		return err
	}
	if _, err := s.songRepo.GetByID(ctx, songID); err != nil {
		return err
	}
	if err := s.playlistRepo.AddSong(ctx, playlistID, songID); err != nil {
		return err
	}
	if err := s.playlistRepo.AddActivity(ctx, playlistID, songID, userID, domain.ActivityAdd); err != nil {
		s.log.Warn("failed to record playlist activity",
			logger.String("playlist_id", playlistID),
			logger.Error(err),
		)
	}
	return nil
}

// GetDetail returns the playlist with its songs. Owner and collaborators
// may read it.
func (s *PlaylistService) GetDetail(ctx context.Context, playlistID, userID string) (*domain.PlaylistDetail, error) {
	playlist, err := s.access.VerifyAccess(ctx, playlistID, userID)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, playlist.Owner)
	if err != nil {
		return nil, err
	}
	songs, err := s.playlistRepo.ListSongs(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return &domain.PlaylistDetail{
		ID:       playlist.ID,
		Name:     playlist.Name,
		Username: owner.Username,
		Songs:    songs,
	}, nil
}

// DeleteSong removes a song from the playlist and records the activity.
// Owner and collaborators may remove songs.
func (s *PlaylistService) DeleteSong(ctx context.Context, playlistID, userID, songID string) error {
	if _, err := s.access.VerifyAccess(ctx, playlistID, userID); err != nil {
		return err
	}
	if err := s.playlistRepo.DeleteSong(ctx, playlistID, songID); err != nil {
		return err
	}
	if err := s.playlistRepo.AddActivity(ctx, playlistID, songID, userID, domain.ActivityDelete); err != nil {
		s.log.Warn("failed to record playlist activity",
			logger.String("playlist_id", playlistID),
			logger.Error(err),
		)
	}
	return nil
}

// Activities returns the playlist's song activity log in chronological
// order. Owner and collaborators may read it.
func (s *PlaylistService) Activities(ctx context.Context, playlistID, userID string) ([]domain.Activity, error) {
	if _, err := s.access.VerifyAccess(ctx, playlistID, userID); err != nil {
		return nil, err
	}
	return s.playlistRepo.ListActivities(ctx, playlistID)
}

// InvalidateListing drops the cached playlist listing for userID. Exposed
// for collaborators, whose listings change when grants are added or revoked.
func (s *PlaylistService) InvalidateListing(ctx context.Context, userID string) {
	s.invalidateListing(ctx, userID)
}

func (s *PlaylistService) invalidateListing(ctx context.Context, userID string) {
	key := redis.UserPlaylistsKey(userID)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.log.Warn("failed to invalidate playlist listing cache",
			logger.String("user_id", userID),
			logger.Error(err),
		)
	}
}

package service

import (
	"context"
	"strconv"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/internal/repository"
	"github.com/fityannugroho/openmusic-api/pkg/logger"
	"github.com/fityannugroho/openmusic-api/pkg/redis"
)

// LikeService implements the album like toggle. The toggle decision is made
// from the user's current state, so liking twice or unliking a never-liked
// album fails cleanly instead of corrupting the count.
type LikeService struct {
	likeRepo  repository.LikeRepository
	albumRepo repository.AlbumRepository
	cache     *redis.ReadThrough
	log       logger.Logger
}

// NewLikeService creates a like service.
func NewLikeService(likeRepo repository.LikeRepository, albumRepo repository.AlbumRepository, cache *redis.ReadThrough, log logger.Logger) *LikeService {
	return &LikeService{likeRepo: likeRepo, albumRepo: albumRepo, cache: cache, log: log}
}

// IsLiked reports whether userID has liked albumID. The album must exist.
func (s *LikeService) IsLiked(ctx context.Context, userID, albumID string) (bool, error) {
	if _, err := s.albumRepo.GetByID(ctx, albumID); err != nil {
		return false, err
	}
	return s.likeRepo.IsLiked(ctx, userID, albumID)
}

// Like records userID liking albumID. The album must exist and must not
// already be liked by this user.
func (s *LikeService) Like(ctx context.Context, userID, albumID string) error {
	liked, err := s.IsLiked(ctx, userID, albumID)
	if err != nil {
		return err
	}
	if liked {
		return domain.ErrAlreadyLiked
	}

	if err := s.likeRepo.Like(ctx, userID, albumID); err != nil {
		return err
	}

	s.invalidateCount(ctx, albumID)
	return nil
}

// Unlike removes userID's like from albumID.
func (s *LikeService) Unlike(ctx context.Context, userID, albumID string) error {
	if err := s.likeRepo.Unlike(ctx, userID, albumID); err != nil {
		return err
	}

	s.invalidateCount(ctx, albumID)
	return nil
}

// Count returns the number of likes on albumID, served through the cache.
// The second result reports whether the value came from the cache.
func (s *LikeService) Count(ctx context.Context, albumID string) (int, bool, error) {
	key := redis.AlbumLikesKey(albumID)
	value, fromCache, err := s.cache.GetString(ctx, key, redis.DefaultTTL, func(ctx context.Context) (string, error) {
		count, err := s.likeRepo.Count(ctx, albumID)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(count), nil
	})
	if err != nil {
		return 0, false, err
	}

	count, err := strconv.Atoi(value)
	if err != nil {
		// A corrupt cached value is dropped and recomputed on the next read.
		s.invalidateCount(ctx, albumID)
		fresh, countErr := s.likeRepo.Count(ctx, albumID)
		return fresh, false, countErr
	}
	return count, fromCache, nil
}

func (s *LikeService) invalidateCount(ctx context.Context, albumID string) {
	key := redis.AlbumLikesKey(albumID)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.log.Warn("failed to invalidate like count cache",
			logger.String("album_id", albumID),
			logger.Error(err),
		)
	}
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/pkg/errors"
)

// LikeRepository persists album likes. Uniqueness of (user, album) is
// enforced by the store, so concurrent duplicate likes surface as an
// invariant error from Like rather than silently double counting.
type LikeRepository interface {
	Like(ctx context.Context, userID, albumID string) error
	Unlike(ctx context.Context, userID, albumID string) error
	IsLiked(ctx context.Context, userID, albumID string) (bool, error)
	Count(ctx context.Context, albumID string) (int, error)
}

type likeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates an album like repository.
func NewLikeRepository(db *pgxpool.Pool) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Like(ctx context.Context, userID, albumID string) error {
	query := `INSERT INTO user_album_likes (id, user_id, album_id) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, domain.NewID(domain.PrefixLike), userID, albumID)
	if err != nil {
		// Missing album (or user) shows up as a foreign key violation.
		if isForeignKeyViolation(err) {
			return domain.ErrAlbumNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrAlreadyLiked
		}
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

func (r *likeRepository) Unlike(ctx context.Context, userID, albumID string) error {
	query := `DELETE FROM user_album_likes WHERE user_id = $1 AND album_id = $2`
	tag, err := r.db.Exec(ctx, query, userID, albumID)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotLiked
	}
	return nil
}

func (r *likeRepository) IsLiked(ctx context.Context, userID, albumID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_album_likes WHERE user_id = $1 AND album_id = $2)`
	var liked bool
	if err := r.db.QueryRow(ctx, query, userID, albumID).Scan(&liked); err != nil {
		return false, errors.ErrDatabaseError.WithError(err)
	}
	return liked, nil
}

func (r *likeRepository) Count(ctx context.Context, albumID string) (int, error) {
	query := `SELECT COUNT(*) FROM user_album_likes WHERE album_id = $1`
	var count int
	if err := r.db.QueryRow(ctx, query, albumID).Scan(&count); err != nil {
		return 0, errors.ErrDatabaseError.WithError(err)
	}
	return count, nil
}

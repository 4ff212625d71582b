package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/pkg/errors"
)

// CollaborationRepository persists playlist collaboration grants.
type CollaborationRepository interface {
	Add(ctx context.Context, collab *domain.Collaboration) error
	Delete(ctx context.Context, playlistID, userID string) error
	// Verify reports whether userID is a collaborator on playlistID.
	// Returns domain.ErrCollabNotFound when no grant exists.
	Verify(ctx context.Context, playlistID, userID string) error
}

type collaborationRepository struct {
	db *pgxpool.Pool
}

// NewCollaborationRepository creates a collaboration repository.
func NewCollaborationRepository(db *pgxpool.Pool) CollaborationRepository {
	return &collaborationRepository{db: db}
}

func (r *collaborationRepository) Add(ctx context.Context, collab *domain.Collaboration) error {
	query := `INSERT INTO collaborations (id, playlist_id, user_id) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, collab.ID, collab.PlaylistID, collab.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Invariant("User is already a collaborator")
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

func (r *collaborationRepository) Delete(ctx context.Context, playlistID, userID string) error {
	query := `DELETE FROM collaborations WHERE playlist_id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, playlistID, userID)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCollabNotFound
	}
	return nil
}

func (r *collaborationRepository) Verify(ctx context.Context, playlistID, userID string) error {
	query := `SELECT id FROM collaborations WHERE playlist_id = $1 AND user_id = $2`
	var id string
	err := r.db.QueryRow(ctx, query, playlistID, userID).Scan(&id)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrCollabNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

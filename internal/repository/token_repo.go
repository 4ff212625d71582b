package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/pkg/errors"
)

// TokenRepository persists issued refresh tokens. A refresh token is only
// honored while its row exists; logout deletes the row.
type TokenRepository interface {
	Add(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) error
	Delete(ctx context.Context, token string) error
}

type tokenRepository struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a refresh token repository.
func NewTokenRepository(db *pgxpool.Pool) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Add(ctx context.Context, token string) error {
	query := `INSERT INTO authentications (token) VALUES ($1)`
	_, err := r.db.Exec(ctx, query, token)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

func (r *tokenRepository) Verify(ctx context.Context, token string) error {
	query := `SELECT token FROM authentications WHERE token = $1`
	var stored string
	err := r.db.QueryRow(ctx, query, token).Scan(&stored)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrInvalidRefresh
		}
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

func (r *tokenRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM authentications WHERE token = $1`
	tag, err := r.db.Exec(ctx, query, token)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidRefresh
	}
	return nil
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/pkg/errors"
)

// AlbumRepository persists albums.
type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	GetByID(ctx context.Context, id string) (*domain.Album, error)
	Update(ctx context.Context, album *domain.Album) error
	UpdateCover(ctx context.Context, id, coverURL string) error
	Delete(ctx context.Context, id string) error
}

type albumRepository struct {
	db *pgxpool.Pool
}

// NewAlbumRepository creates an album repository.
func NewAlbumRepository(db *pgxpool.Pool) AlbumRepository {
	return &albumRepository{db: db}
}

func (r *albumRepository) Create(ctx context.Context, album *domain.Album) error {
	query := `INSERT INTO albums (id, name, year) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, album.ID, album.Name, album.Year)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

func (r *albumRepository) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	query := `SELECT id, name, year, cover_url FROM albums WHERE id = $1`
	var album domain.Album
	err := r.db.QueryRow(ctx, query, id).Scan(&album.ID, &album.Name, &album.Year, &album.CoverURL)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &album, nil
}

func (r *albumRepository) Update(ctx context.Context, album *domain.Album) error {
	query := `UPDATE albums SET name = $2, year = $3 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, album.ID, album.Name, album.Year)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

func (r *albumRepository) UpdateCover(ctx context.Context, id, coverURL string) error {
	query := `UPDATE albums SET cover_url = $2 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, coverURL)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

func (r *albumRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM albums WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

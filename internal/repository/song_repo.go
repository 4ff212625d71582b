package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/pkg/errors"
)

// SongFilter narrows song listings. Empty fields match everything.
type SongFilter struct {
	Title     string
	Performer string
}

// SongRepository persists songs.
type SongRepository interface {
	Create(ctx context.Context, song *domain.Song) error
	GetByID(ctx context.Context, id string) (*domain.Song, error)
	List(ctx context.Context, filter SongFilter) ([]domain.SongSummary, error)
	ListByAlbum(ctx context.Context, albumID string) ([]domain.Song, error)
	Update(ctx context.Context, song *domain.Song) error
	Delete(ctx context.Context, id string) error
}

type songRepository struct {
	db *pgxpool.Pool
}

// NewSongRepository creates a song repository.
func NewSongRepository(db *pgxpool.Pool) SongRepository {
	return &songRepository{db: db}
}

func (r *songRepository) Create(ctx context.Context, song *domain.Song) error {
	query := `
		INSERT INTO songs (id, title, year, genre, performer, duration, album_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		song.ID, song.Title, song.Year, song.Genre, song.Performer, song.Duration, song.AlbumID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrAlbumNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

func (r *songRepository) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	query := `
		SELECT id, title, year, genre, performer, duration, album_id
		FROM songs WHERE id = $1
	`
	var song domain.Song
	err := r.db.QueryRow(ctx, query, id).Scan(
		&song.ID, &song.Title, &song.Year, &song.Genre, &song.Performer, &song.Duration, &song.AlbumID,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrSongNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &song, nil
}

func (r *songRepository) List(ctx context.Context, filter SongFilter) ([]domain.SongSummary, error) {
	query := `
		SELECT id, title, performer FROM songs
		WHERE title ILIKE '%' || $1 || '%' AND performer ILIKE '%' || $2 || '%'
		ORDER BY title
	`
	rows, err := r.db.Query(ctx, query, filter.Title, filter.Performer)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	defer rows.Close()

	songs := []domain.SongSummary{}
	for rows.Next() {
		var song domain.SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return songs, nil
}

func (r *songRepository) ListByAlbum(ctx context.Context, albumID string) ([]domain.Song, error) {
	query := `
		SELECT id, title, year, genre, performer, duration, album_id
		FROM songs WHERE album_id = $1
		ORDER BY title
	`
	rows, err := r.db.Query(ctx, query, albumID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	defer rows.Close()

	songs := []domain.Song{}
	for rows.Next() {
		var song domain.Song
		err := rows.Scan(
			&song.ID, &song.Title, &song.Year, &song.Genre, &song.Performer, &song.Duration, &song.AlbumID,
		)
		if err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return songs, nil
}

func (r *songRepository) Update(ctx context.Context, song *domain.Song) error {
	query := `
		UPDATE songs
		SET title = $2, year = $3, genre = $4, performer = $5, duration = $6, album_id = $7
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		song.ID, song.Title, song.Year, song.Genre, song.Performer, song.Duration, song.AlbumID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrAlbumNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

func (r *songRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM songs WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

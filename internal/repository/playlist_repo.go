package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/pkg/errors"
)

// PlaylistRepository persists playlists, their songs and activity log.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	GetByID(ctx context.Context, id string) (*domain.Playlist, error)
	ListByUser(ctx context.Context, userID string) ([]domain.PlaylistSummary, error)
	Delete(ctx context.Context, id string) error

	AddSong(ctx context.Context, playlistID, songID string) error
	DeleteSong(ctx context.Context, playlistID, songID string) error
	ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error)

	AddActivity(ctx context.Context, playlistID, songID, userID string, action domain.ActivityAction) error
	ListActivities(ctx context.Context, playlistID string) ([]domain.Activity, error)
}

type playlistRepository struct {
	db *pgxpool.Pool
}

// NewPlaylistRepository creates a playlist repository.
func NewPlaylistRepository(db *pgxpool.Pool) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	query := `INSERT INTO playlists (id, name, owner) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, playlist.ID, playlist.Name, playlist.Owner)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	query := `SELECT id, name, owner FROM playlists WHERE id = $1`
	var playlist domain.Playlist
	err := r.db.QueryRow(ctx, query, id).Scan(&playlist.ID, &playlist.Name, &playlist.Owner)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &playlist, nil
}

// ListByUser returns playlists the user owns plus playlists shared with the
// user through a collaboration.
func (r *playlistRepository) ListByUser(ctx context.Context, userID string) ([]domain.PlaylistSummary, error) {
	query := `
		SELECT DISTINCT p.id, p.name, u.username
		FROM playlists p
		JOIN users u ON u.id = p.owner
		LEFT JOIN collaborations c ON c.playlist_id = p.id
		WHERE p.owner = $1 OR c.user_id = $1
		ORDER BY p.name
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	defer rows.Close()

	playlists := []domain.PlaylistSummary{}
	for rows.Next() {
		var p domain.PlaylistSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Username); err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return playlists, nil
}

func (r *playlistRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM playlists WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}

func (r *playlistRepository) AddSong(ctx context.Context, playlistID, songID string) error {
	query := `INSERT INTO playlist_songs (id, playlist_id, song_id) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, domain.NewID("plysong"), playlistID, songID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSongNotFound
		}
		if isUniqueViolation(err) {
			return errors.Invariant("Song is already in the playlist")
		}
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

func (r *playlistRepository) DeleteSong(ctx context.Context, playlistID, songID string) error {
	query := `DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`
	tag, err := r.db.Exec(ctx, query, playlistID, songID)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotInPlaylist
	}
	return nil
}

func (r *playlistRepository) ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error) {
	query := `
		SELECT s.id, s.title, s.performer
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		WHERE ps.playlist_id = $1
		ORDER BY s.title
	`
	rows, err := r.db.Query(ctx, query, playlistID)
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

func (r *playlistRepository) AddActivity(ctx context.Context, playlistID, songID, userID string, action domain.ActivityAction) error {
	query := `
		INSERT INTO playlist_song_activities (id, playlist_id, song_id, user_id, action, time)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		domain.NewID(domain.PrefixActivity), playlistID, songID, userID, action, time.Now(),
	)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

func (r *playlistRepository) ListActivities(ctx context.Context, playlistID string) ([]domain.Activity, error) {
	query := `
		SELECT u.username, s.title, a.action, a.time
		FROM playlist_song_activities a
		JOIN users u ON u.id = a.user_id
		JOIN songs s ON s.id = a.song_id
		WHERE a.playlist_id = $1
		ORDER BY a.time
	`
	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.Username, &a.Title, &a.Action, &a.Time); err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return activities, nil
}

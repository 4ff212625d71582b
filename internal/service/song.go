package service

import (
	"context"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/internal/repository"
)

// SongInput carries the writable fields of a song.
type SongInput struct {
	Title     string
	Year      int
	Genre     string
	Performer string
	Duration  *int
	AlbumID   *string
}

// SongService manages songs.
type SongService struct {
	songRepo repository.SongRepository
}

// NewSongService creates a song service.
func NewSongService(songRepo repository.SongRepository) *SongService {
	return &SongService{songRepo: songRepo}
}

// Create stores a new song and returns its generated ID.
func (s *SongService) Create(ctx context.Context, input SongInput) (string, error) {
	song := &domain.Song{
		ID:        domain.NewID(domain.PrefixSong),
		Title:     input.Title,
		Year:      input.Year,
		Genre:     input.Genre,
		Performer: input.Performer,
		Duration:  input.Duration,
		AlbumID:   input.AlbumID,
	}
	if err := s.songRepo.Create(ctx, song); err != nil {
		return "", err
	}
	return song.ID, nil
}

// GetByID returns a single song.
func (s *SongService) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	return s.songRepo.GetByID(ctx, id)
}

// List returns songs matching the optional title and performer filters.
func (s *SongService) List(ctx context.Context, title, performer string) ([]domain.SongSummary, error) {
	return s.songRepo.List(ctx, repository.SongFilter{Title: title, Performer: performer})
}

// Update replaces a song's fields.
func (s *SongService) Update(ctx context.Context, id string, input SongInput) error {
	song := &domain.Song{
		ID:        id,
		Title:     input.Title,
		Year:      input.Year,
		Genre:     input.Genre,
		Performer: input.Performer,
		Duration:  input.Duration,
		AlbumID:   input.AlbumID,
	}
	return s.songRepo.Update(ctx, song)
}

// Delete removes a song.
func (s *SongService) Delete(ctx context.Context, id string) error {
	return s.songRepo.Delete(ctx, id)
}

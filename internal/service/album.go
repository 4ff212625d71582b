package service

import (
	"context"
	"io"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/internal/repository"
	"github.com/fityannugroho/openmusic-api/internal/storage"
	"github.com/fityannugroho/openmusic-api/pkg/logger"
)

// AlbumService manages albums and their cover art.
type AlbumService struct {
	albumRepo repository.AlbumRepository
	songRepo  repository.SongRepository
	store     *storage.Local
	log       logger.Logger
}

// NewAlbumService creates an album service.
func NewAlbumService(albumRepo repository.AlbumRepository, songRepo repository.SongRepository, store *storage.Local, log logger.Logger) *AlbumService {
	return &AlbumService{albumRepo: albumRepo, songRepo: songRepo, store: store, log: log}
}

// Create stores a new album and returns its generated ID.
func (s *AlbumService) Create(ctx context.Context, name string, year int) (string, error) {
	album := &domain.Album{
		ID:   domain.NewID(domain.PrefixAlbum),
		Name: name,
		Year: year,
	}
	if err := s.albumRepo.Create(ctx, album); err != nil {
		return "", err
	}
	return album.ID, nil
}

// GetByID returns the album together with its songs.
func (s *AlbumService) GetByID(ctx context.Context, id string) (*domain.AlbumDetail, error) {
	album, err := s.albumRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	songs, err := s.songRepo.ListByAlbum(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.AlbumDetail{Album: *album, Songs: songs}, nil
}

// Update changes an album's name and year.
func (s *AlbumService) Update(ctx context.Context, id, name string, year int) error {
	return s.albumRepo.Update(ctx, &domain.Album{ID: id, Name: name, Year: year})
}

// Delete removes an album and its cover file if one exists.
func (s *AlbumService) Delete(ctx context.Context, id string) error {
	album, err := s.albumRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.albumRepo.Delete(ctx, id); err != nil {
		return err
	}
	if album.CoverURL != nil {
		if err := s.store.Remove(*album.CoverURL); err != nil {
			s.log.Warn("failed to remove album cover file",
				logger.String("album_id", id),
				logger.Error(err),
			)
		}
	}
	return nil
}

// SetCover uploads a new cover image for the album. A previous cover file is
// removed after the new one is stored and recorded, so a failed upload never
// leaves the album without its old cover.
func (s *AlbumService) SetCover(ctx context.Context, id, filename string, content io.Reader) (string, error) {
	album, err := s.albumRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	coverURL, err := s.store.Save(filename, content)
	if err != nil {
		return "", err
	}

	if err := s.albumRepo.UpdateCover(ctx, id, coverURL); err != nil {
		// Roll back the orphaned file.
		if rmErr := s.store.Remove(coverURL); rmErr != nil {
			s.log.Warn("failed to remove orphaned cover file", logger.Error(rmErr))
		}
		return "", err
	}

	if album.CoverURL != nil && *album.CoverURL != coverURL {
		if err := s.store.Remove(*album.CoverURL); err != nil {
			s.log.Warn("failed to remove previous cover file",
				logger.String("album_id", id),
				logger.Error(err),
			)
		}
	}
	return coverURL, nil
}

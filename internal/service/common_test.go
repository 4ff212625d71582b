package service

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/fityannugroho/openmusic-api/internal/domain"
	"github.com/fityannugroho/openmusic-api/internal/repository"
	"github.com/fityannugroho/openmusic-api/pkg/errors"
	"github.com/fityannugroho/openmusic-api/pkg/logger"
	"github.com/fityannugroho/openmusic-api/pkg/redis"
)

// In-memory fakes implementing the repository interfaces. State is shared
// through memState so cross-repository behavior (joins, foreign keys) can be
// exercised without a database.

type memState struct {
	albums    map[string]*domain.Album
	songs     map[string]*domain.Song
	users     map[string]*domain.User
	playlists map[string]*domain.Playlist
	// playlistID -> songID set
	playlistSongs map[string]map[string]bool
	// playlistID -> userID set
	collabs map[string]map[string]bool
	// albumID -> userID set
	likes      map[string]map[string]bool
	tokens     map[string]bool
	activities []activityRow

	// listCalls counts PlaylistRepository.ListByUser invocations, so tests
	// can tell cache hits from database reads.
	listCalls int
}

type activityRow struct {
	playlistID string
	songID     string
	userID     string
	action     domain.ActivityAction
	at         time.Time
}

func newMemState() *memState {
	return &memState{
		albums:        map[string]*domain.Album{},
		songs:         map[string]*domain.Song{},
		users:         map[string]*domain.User{},
		playlists:     map[string]*domain.Playlist{},
		playlistSongs: map[string]map[string]bool{},
		collabs:       map[string]map[string]bool{},
		likes:         map[string]map[string]bool{},
		tokens:        map[string]bool{},
	}
}

func (s *memState) addUser(id, username string) {
	s.users[id] = &domain.User{ID: id, Username: username, Fullname: username}
}

func (s *memState) addAlbum(id, name string) {
	s.albums[id] = &domain.Album{ID: id, Name: name, Year: 2020}
}

func (s *memState) addSong(id, title string) {
	s.songs[id] = &domain.Song{ID: id, Title: title, Year: 2020, Genre: "rock", Performer: title}
}

func (s *memState) addPlaylist(id, name, owner string) {
	s.playlists[id] = &domain.Playlist{ID: id, Name: name, Owner: owner}
}

type fakeAlbumRepo struct{ s *memState }

func (r *fakeAlbumRepo) Create(_ context.Context, album *domain.Album) error {
	r.s.albums[album.ID] = album
	return nil
}

func (r *fakeAlbumRepo) GetByID(_ context.Context, id string) (*domain.Album, error) {
	album, ok := r.s.albums[id]
	if !ok {
		return nil, domain.ErrAlbumNotFound
	}
	copied := *album
	return &copied, nil
}

func (r *fakeAlbumRepo) Update(_ context.Context, album *domain.Album) error {
	stored, ok := r.s.albums[album.ID]
	if !ok {
		return domain.ErrAlbumNotFound
	}
	stored.Name = album.Name
	stored.Year = album.Year
	return nil
}

func (r *fakeAlbumRepo) UpdateCover(_ context.Context, id, coverURL string) error {
	album, ok := r.s.albums[id]
	if !ok {
		return domain.ErrAlbumNotFound
	}
	album.CoverURL = &coverURL
	return nil
}

func (r *fakeAlbumRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.albums[id]; !ok {
		return domain.ErrAlbumNotFound
	}
	delete(r.s.albums, id)
	return nil
}

type fakeSongRepo struct{ s *memState }

func (r *fakeSongRepo) Create(_ context.Context, song *domain.Song) error {
	r.s.songs[song.ID] = song
	return nil
}

func (r *fakeSongRepo) GetByID(_ context.Context, id string) (*domain.Song, error) {
	song, ok := r.s.songs[id]
	if !ok {
		return nil, domain.ErrSongNotFound
	}
	copied := *song
	return &copied, nil
}

func (r *fakeSongRepo) List(_ context.Context, _ repository.SongFilter) ([]domain.SongSummary, error) {
	songs := []domain.SongSummary{}
	for _, song := range r.s.songs {
		songs = append(songs, song.Summary())
	}
	return songs, nil
}

func (r *fakeSongRepo) ListByAlbum(_ context.Context, albumID string) ([]domain.Song, error) {
	songs := []domain.Song{}
	for _, song := range r.s.songs {
		if song.AlbumID != nil && *song.AlbumID == albumID {
			songs = append(songs, *song)
		}
	}
	return songs, nil
}

func (r *fakeSongRepo) Update(_ context.Context, song *domain.Song) error {
	if _, ok := r.s.songs[song.ID]; !ok {
		return domain.ErrSongNotFound
	}
	r.s.songs[song.ID] = song
	return nil
}

func (r *fakeSongRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.songs[id]; !ok {
		return domain.ErrSongNotFound
	}
	delete(r.s.songs, id)
	return nil
}

type fakeUserRepo struct{ s *memState }

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.s.users {
		if existing.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type fakeTokenRepo struct{ s *memState }

func (r *fakeTokenRepo) Add(_ context.Context, token string) error {
	r.s.tokens[token] = true
	return nil
}

func (r *fakeTokenRepo) Verify(_ context.Context, token string) error {
	if !r.s.tokens[token] {
		return domain.ErrInvalidRefresh
	}
	return nil
}

func (r *fakeTokenRepo) Delete(_ context.Context, token string) error {
	if !r.s.tokens[token] {
		return domain.ErrInvalidRefresh
	}
	delete(r.s.tokens, token)
	return nil
}

type fakePlaylistRepo struct{ s *memState }

func (r *fakePlaylistRepo) Create(_ context.Context, playlist *domain.Playlist) error {
	r.s.playlists[playlist.ID] = playlist
	return nil
}

func (r *fakePlaylistRepo) GetByID(_ context.Context, id string) (*domain.Playlist, error) {
	playlist, ok := r.s.playlists[id]
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	copied := *playlist
	return &copied, nil
}

func (r *fakePlaylistRepo) ListByUser(_ context.Context, userID string) ([]domain.PlaylistSummary, error) {
	r.s.listCalls++
	result := []domain.PlaylistSummary{}
	for _, playlist := range r.s.playlists {
		if playlist.Owner != userID && !r.s.collabs[playlist.ID][userID] {
			continue
		}
		username := ""
		if owner, ok := r.s.users[playlist.Owner]; ok {
			username = owner.Username
		}
		result = append(result, domain.PlaylistSummary{
			ID:       playlist.ID,
			Name:     playlist.Name,
			Username: username,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakePlaylistRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.playlists[id]; !ok {
		return domain.ErrPlaylistNotFound
	}
	delete(r.s.playlists, id)
	delete(r.s.playlistSongs, id)
	delete(r.s.collabs, id)
	return nil
}

func (r *fakePlaylistRepo) AddSong(_ context.Context, playlistID, songID string) error {
	if _, ok := r.s.songs[songID]; !ok {
		return domain.ErrSongNotFound
	}
	if r.s.playlistSongs[playlistID] == nil {
		r.s.playlistSongs[playlistID] = map[string]bool{}
	}
	if r.s.playlistSongs[playlistID][songID] {
		return errors.Invariant("Song is already in the playlist")
	}
	r.s.playlistSongs[playlistID][songID] = true
	return nil
}

func (r *fakePlaylistRepo) DeleteSong(_ context.Context, playlistID, songID string) error {
	if !r.s.playlistSongs[playlistID][songID] {
		return domain.ErrSongNotInPlaylist
	}
	delete(r.s.playlistSongs[playlistID], songID)
	return nil
}

func (r *fakePlaylistRepo) ListSongs(_ context.Context, playlistID string) ([]domain.SongSummary, error) {
	songs := []domain.SongSummary{}
	for songID := range r.s.playlistSongs[playlistID] {
		if song, ok := r.s.songs[songID]; ok {
			songs = append(songs, song.Summary())
		}
	}
	sort.Slice(songs, func(i, j int) bool { return songs[i].Title < songs[j].Title })
	return songs, nil
}

func (r *fakePlaylistRepo) AddActivity(_ context.Context, playlistID, songID, userID string, action domain.ActivityAction) error {
	r.s.activities = append(r.s.activities, activityRow{
		playlistID: playlistID,
		songID:     songID,
		userID:     userID,
		action:     action,
		at:         time.Now(),
	})
	return nil
}

func (r *fakePlaylistRepo) ListActivities(_ context.Context, playlistID string) ([]domain.Activity, error) {
	result := []domain.Activity{}
	for _, row := range r.s.activities {
		if row.playlistID != playlistID {
			continue
		}
		username := ""
		if user, ok := r.s.users[row.userID]; ok {
			username = user.Username
		}
		title := ""
		if song, ok := r.s.songs[row.songID]; ok {
			title = song.Title
		}
		result = append(result, domain.Activity{
			Username: username,
			Title:    title,
			Action:   row.action,
			Time:     row.at,
		})
	}
	return result, nil
}

type fakeCollabRepo struct{ s *memState }

func (r *fakeCollabRepo) Add(_ context.Context, collab *domain.Collaboration) error {
	if _, ok := r.s.users[collab.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	if r.s.collabs[collab.PlaylistID] == nil {
		r.s.collabs[collab.PlaylistID] = map[string]bool{}
	}
	if r.s.collabs[collab.PlaylistID][collab.UserID] {
		return errors.Invariant("User is already a collaborator")
	}
	r.s.collabs[collab.PlaylistID][collab.UserID] = true
	return nil
}

func (r *fakeCollabRepo) Delete(_ context.Context, playlistID, userID string) error {
	if !r.s.collabs[playlistID][userID] {
		return domain.ErrCollabNotFound
	}
	delete(r.s.collabs[playlistID], userID)
	return nil
}

func (r *fakeCollabRepo) Verify(_ context.Context, playlistID, userID string) error {
	if !r.s.collabs[playlistID][userID] {
		return domain.ErrCollabNotFound
	}
	return nil
}

type fakeLikeRepo struct {
	s *memState
	// countCalls counts Count invocations for cache assertions.
	countCalls int
}

func (r *fakeLikeRepo) Like(_ context.Context, userID, albumID string) error {
	if _, ok := r.s.albums[albumID]; !ok {
		return domain.ErrAlbumNotFound
	}
	if r.s.likes[albumID] == nil {
		r.s.likes[albumID] = map[string]bool{}
	}
	if r.s.likes[albumID][userID] {
		return domain.ErrAlreadyLiked
	}
	r.s.likes[albumID][userID] = true
	return nil
}

func (r *fakeLikeRepo) Unlike(_ context.Context, userID, albumID string) error {
	if !r.s.likes[albumID][userID] {
		return domain.ErrNotLiked
	}
	delete(r.s.likes[albumID], userID)
	return nil
}

func (r *fakeLikeRepo) IsLiked(_ context.Context, userID, albumID string) (bool, error) {
	return r.s.likes[albumID][userID], nil
}

func (r *fakeLikeRepo) Count(_ context.Context, albumID string) (int, error) {
	r.countCalls++
	return len(r.s.likes[albumID]), nil
}

// memCache is an in-memory redis.Cache with optional error injection.
type memCache struct {
	data   map[string]string
	getErr error
	setErr error
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}}
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	value, ok := c.data[key]
	if !ok {
		return "", redis.ErrKeyNotFound
	}
	return value, nil
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value.(string)
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.data, key)
	}
	return nil
}

func quietLogger() logger.Logger {
	return logger.New(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
}

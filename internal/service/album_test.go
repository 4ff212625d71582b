package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fityannugroho/openmusic-api/internal/storage"
	"github.com/fityannugroho/openmusic-api/pkg/errors"
)

func newAlbumFixture(t *testing.T) (*memState, *AlbumService) {
	t.Helper()
	s := newMemState()
	store, err := storage.NewLocal(t.TempDir(), "http://localhost:5000/uploads/images")
	require.NoError(t, err)
	return s, NewAlbumService(&fakeAlbumRepo{s: s}, &fakeSongRepo{s: s}, store, quietLogger())
}

func TestAlbumCRUD(t *testing.T) {
	_, svc := newAlbumFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, "Night Visions", 2012)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "album-"))

	album, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Night Visions", album.Name)
	assert.Empty(t, album.Songs)
	assert.Nil(t, album.CoverURL)

	require.NoError(t, svc.Update(ctx, id, "Evolve", 2017))
	album, err = svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Evolve", album.Name)
	assert.Equal(t, 2017, album.Year)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.GetByID(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestAlbumDetailIncludesSongs(t *testing.T) {
	s, svc := newAlbumFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, "Night Visions", 2012)
	require.NoError(t, err)

	s.addSong("song-1", "Radioactive")
	s.songs["song-1"].AlbumID = &id

	album, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, album.Songs, 1)
	assert.Equal(t, "Radioactive", album.Songs[0].Title)
}

func TestSetCoverReplacesPrevious(t *testing.T) {
	s, svc := newAlbumFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, "Night Visions", 2012)
	require.NoError(t, err)

	first, err := svc.SetCover(ctx, id, "cover.jpg", strings.NewReader("first image"))
	require.NoError(t, err)
	assert.Contains(t, first, "/uploads/images/")
	require.NotNil(t, s.albums[id].CoverURL)
	assert.Equal(t, first, *s.albums[id].CoverURL)

	second, err := svc.SetCover(ctx, id, "cover.png", strings.NewReader("second image"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, *s.albums[id].CoverURL)
}

func TestSetCoverMissingAlbum(t *testing.T) {
	_, svc := newAlbumFixture(t)

	_, err := svc.SetCover(context.Background(), "album-missing", "cover.jpg", strings.NewReader("img"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

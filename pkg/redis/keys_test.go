package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPlaylistsKey(t *testing.T) {
	key := UserPlaylistsKey("user-123")
	assert.Equal(t, "om:user:user-123:playlists", key)
}

func TestAlbumLikesKey(t *testing.T) {
	key := AlbumLikesKey("album-456")
	assert.Equal(t, "om:album:album-456:likes", key)
}

func TestKeyBuilder(t *testing.T) {
	kb := NewKeyBuilder()
	key := kb.Entity("user").ID("123").Field("playlists").Build()
	assert.Equal(t, "om:user:123:playlists", key)
}

func TestKeyBuilder_OnlyEntity(t *testing.T) {
	kb := NewKeyBuilder()
	key := kb.Entity("stats").Build()
	assert.Equal(t, "om:stats", key)
}

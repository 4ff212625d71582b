package redis

import (
	"strings"
	"time"
)

// Key naming conventions for Redis keys.
// All keys follow the pattern: {namespace}:{entity}:{id}:{field}
//
// Example: "om:user:123:playlists" for user 123's playlist listing

const (
	// KeyNamespace prefixes all keys owned by this service.
	KeyNamespace = "om" // OpenMusic
)

// DefaultTTL is the expiry applied to derived read caches. The cache is
// never authoritative, so TTL expiry is only a safety net behind explicit
// invalidation.
const DefaultTTL = 30 * time.Minute

// KeyBuilder helps build Redis keys following naming conventions.
type KeyBuilder struct {
	parts []string
}

// NewKeyBuilder creates a new key builder.
func NewKeyBuilder() *KeyBuilder {
	return &KeyBuilder{
		parts: []string{KeyNamespace},
	}
}

// Entity adds an entity type to the key.
func (kb *KeyBuilder) Entity(entity string) *KeyBuilder {
	kb.parts = append(kb.parts, entity)
	return kb
}

// ID adds an ID to the key.
func (kb *KeyBuilder) ID(id string) *KeyBuilder {
	kb.parts = append(kb.parts, id)
	return kb
}

// Field adds a field name to the key.
func (kb *KeyBuilder) Field(field string) *KeyBuilder {
	kb.parts = append(kb.parts, field)
	return kb
}

// Build constructs the final key string.
func (kb *KeyBuilder) Build() string {
	return strings.Join(kb.parts, ":")
}

// Derived-read cache keys: one key per (derived query, scoping id) pair.
// Every write that changes the underlying rows must invalidate the exact
// key a subsequent read would use.

// UserPlaylistsKey returns the key caching a user's visible playlists
// (owned plus collaborations).
// Example: om:user:123:playlists
func UserPlaylistsKey(userID string) string {
	return NewKeyBuilder().Entity("user").ID(userID).Field("playlists").Build()
}

// AlbumLikesKey returns the key caching an album's like count.
// Example: om:album:456:likes
func AlbumLikesKey(albumID string) string {
	return NewKeyBuilder().Entity("album").ID(albumID).Field("likes").Build()
}

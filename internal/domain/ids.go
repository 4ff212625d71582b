package domain

import "github.com/google/uuid"

// ID prefixes per entity, so identifiers are self-describing.
const (
	PrefixAlbum    = "album"
	PrefixSong     = "song"
	PrefixUser     = "user"
	PrefixPlaylist = "playlist"
	PrefixCollab   = "collab"
	PrefixActivity = "plyact"
	PrefixLike     = "like"
)

// NewID returns a prefixed unique identifier, e.g. "album-9f3c...".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

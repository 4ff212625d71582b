// Package domain defines the core entities and domain errors of the
// OpenMusic service.
package domain

import "time"

// Album represents a music album.
type Album struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Year     int     `json:"year"`
	CoverURL *string `json:"coverUrl"`
}

// AlbumDetail is an album together with its songs.
type AlbumDetail struct {
	Album
	Songs []Song `json:"songs"`
}

// Song represents a single track.
type Song struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  *int    `json:"duration,omitempty"`
	AlbumID   *string `json:"albumId,omitempty"`
}

// SongSummary is the compact song shape used in listings.
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// Summary projects a song down to its listing shape.
func (s Song) Summary() SongSummary {
	return SongSummary{ID: s.ID, Title: s.Title, Performer: s.Performer}
}

// User represents a registered account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // argon2id encoded hash, never serialized
	Fullname string `json:"fullname"`
}

// Playlist represents a user-owned playlist.
type Playlist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Owner string `json:"-"`
}

// PlaylistSummary is a playlist with its owner's username, used in listings.
type PlaylistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// PlaylistDetail is a playlist with its songs resolved.
type PlaylistDetail struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Username string        `json:"username"`
	Songs    []SongSummary `json:"songs"`
}

// Collaboration grants a user shared access to a playlist.
type Collaboration struct {
	ID         string `json:"id"`
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
}

// ActivityAction enumerates playlist song activity types.
type ActivityAction string

const (
	ActivityAdd    ActivityAction = "add"
	ActivityDelete ActivityAction = "delete"
)

// Activity records a song being added to or removed from a playlist.
type Activity struct {
	ID         string         `json:"-"`
	PlaylistID string         `json:"-"`
	Username   string         `json:"username"`
	Title      string         `json:"title"`
	Action     ActivityAction `json:"action"`
	Time       time.Time      `json:"time"`
}

// AlbumLike marks a user having liked an album.
type AlbumLike struct {
	ID      string
	UserID  string
	AlbumID string
}

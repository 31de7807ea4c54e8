// internal/models/song.go
package models

import "time"

type Song struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Artist     string     `json:"artist"`
	Album      *string    `json:"album"`
	Genre      *string    `json:"genre"`
	Year       *int       `json:"year"`
	Duration   *int       `json:"duration"` // seconds
	ArtworkURL *string    `json:"artwork_url"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type SongCreate struct {
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Album      *string `json:"album"`
	Genre      *string `json:"genre"`
	Year       *int    `json:"year"`
	Duration   *int    `json:"duration"`
	ArtworkURL *string `json:"artwork_url"`
}

// SongUpdate carries a partial update. A nil field was not supplied and the
// stored value stays untouched; a non-nil field overwrites, including a
// pointer to the empty string.
type SongUpdate struct {
	Title      *string `json:"title"`
	Artist     *string `json:"artist"`
	Album      *string `json:"album"`
	Genre      *string `json:"genre"`
	Year       *int    `json:"year"`
	Duration   *int    `json:"duration"`
	ArtworkURL *string `json:"artwork_url"`
}

// internal/models/stats.go
package models

type TopEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type RecentSong struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

type LibraryStats struct {
	TotalSongs      int          `json:"total_songs"`
	TotalArtists    int          `json:"total_artists"`
	TotalAlbums     int          `json:"total_albums"`
	TotalGenres     int          `json:"total_genres"`
	TotalDuration   int          `json:"total_duration"`
	AverageDuration *int         `json:"average_duration"`
	AverageYear     *int         `json:"average_year"`
	TopArtist       *TopEntry    `json:"top_artist"`
	TopGenre        *TopEntry    `json:"top_genre"`
	RecentAdditions []RecentSong `json:"recent_additions"`
}

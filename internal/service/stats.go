package service

import (
	"math"
	"sort"

	"musiccatalog/internal/models"
)

const recentAdditionsLimit = 5

// computeStats aggregates a catalog snapshot. songs must be in insertion
// order: top-entry ties resolve to the value encountered first.
func computeStats(songs []models.Song) *models.LibraryStats {
	stats := &models.LibraryStats{
		TotalSongs:      len(songs),
		RecentAdditions: []models.RecentSong{},
	}

	artistCounts := make(map[string]int)
	genreCounts := make(map[string]int)
	albums := make(map[string]struct{})
	var artistOrder, genreOrder []string

	var durationSum, durationCount int
	var yearSum, yearCount int

	for _, song := range songs {
		if song.Artist != "" {
			if _, seen := artistCounts[song.Artist]; !seen {
				artistOrder = append(artistOrder, song.Artist)
			}
			artistCounts[song.Artist]++
		}
		if song.Album != nil && *song.Album != "" {
			albums[*song.Album] = struct{}{}
		}
		if song.Genre != nil && *song.Genre != "" {
			if _, seen := genreCounts[*song.Genre]; !seen {
				genreOrder = append(genreOrder, *song.Genre)
			}
			genreCounts[*song.Genre]++
		}
		if song.Duration != nil {
			durationSum += *song.Duration
			durationCount++
		}
		if song.Year != nil {
			yearSum += *song.Year
			yearCount++
		}
	}

	stats.TotalArtists = len(artistCounts)
	stats.TotalAlbums = len(albums)
	stats.TotalGenres = len(genreCounts)
	stats.TotalDuration = durationSum

	// Averages divide by the count of songs that have the field set, not by
	// the catalog size, so unset values do not drag the mean down.
	if durationCount > 0 {
		avg := roundedDiv(durationSum, durationCount)
		stats.AverageDuration = &avg
	}
	if yearCount > 0 {
		avg := roundedDiv(yearSum, yearCount)
		stats.AverageYear = &avg
	}

	stats.TopArtist = topEntry(artistCounts, artistOrder)
	stats.TopGenre = topEntry(genreCounts, genreOrder)

	recent := make([]models.Song, len(songs))
	copy(recent, songs)
	sort.SliceStable(recent, func(i, j int) bool {
		if recent[i].CreatedAt.Equal(recent[j].CreatedAt) {
			return recent[i].ID > recent[j].ID
		}
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentAdditionsLimit {
		recent = recent[:recentAdditionsLimit]
	}
	for _, song := range recent {
		stats.RecentAdditions = append(stats.RecentAdditions, models.RecentSong{
			ID:     song.ID,
			Title:  song.Title,
			Artist: song.Artist,
		})
	}

	return stats
}

// topEntry picks the most frequent value; on a tie the value seen first in
// catalog order wins.
func topEntry(counts map[string]int, order []string) *models.TopEntry {
	var top *models.TopEntry
	for _, name := range order {
		if top == nil || counts[name] > top.Count {
			top = &models.TopEntry{Name: name, Count: counts[name]}
		}
	}
	return top
}

func roundedDiv(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}

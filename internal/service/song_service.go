package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"musiccatalog/internal/artwork"
	"musiccatalog/internal/lib/logger/utils"
	"musiccatalog/internal/models"
	"musiccatalog/internal/storage"

	"go.uber.org/zap"
)

// ErrStoreUnavailable marks a persistence-layer failure. Handlers map it to a
// 5xx response; it is always logged at the point of failure.
var ErrStoreUnavailable = errors.New("store unavailable")

// ValidationError reports the first field of a payload that failed
// validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid song: field %q %s", e.Field, e.Message)
}

// Release years before recorded music are rejected along with years more
// than one ahead of the current one (pre-release entries are allowed).
const minYear = 1000

type SongService struct {
	storage    storage.SongStorage
	artworkAPI artwork.ArtworkAPI
}

// NewSongService wires the service to its record store and an optional
// artwork lookup client (nil disables enrichment).
func NewSongService(storage storage.SongStorage, artworkAPI artwork.ArtworkAPI) *SongService {
	return &SongService{
		storage:    storage,
		artworkAPI: artworkAPI,
	}
}

func (s *SongService) AddSong(ctx context.Context, req *models.SongCreate) (*models.Song, error) {
	utils.Logger.Debug("SongService.AddSong", zap.String("title", req.Title), zap.String("artist", req.Artist))

	if err := validateCreate(req); err != nil {
		utils.Logger.Warn("SongService.AddSong - validation failed", zap.Error(err))
		return nil, err
	}

	newSong := &models.Song{
		Title:      req.Title,
		Artist:     req.Artist,
		Album:      req.Album,
		Genre:      req.Genre,
		Year:       req.Year,
		Duration:   req.Duration,
		ArtworkURL: req.ArtworkURL,
	}

	// Best-effort enrichment: a failed lookup never fails the create.
	if s.artworkAPI != nil && (newSong.ArtworkURL == nil || *newSong.ArtworkURL == "") {
		artworkURL, err := s.artworkAPI.GetArtworkURL(req.Artist, req.Title)
		if err != nil {
			utils.Logger.Warn("SongService.AddSong - artwork lookup failed", zap.Error(err))
		} else if artworkURL != "" {
			newSong.ArtworkURL = &artworkURL
		}
	}

	addedSong, err := s.storage.Create(ctx, newSong)
	if err != nil {
		utils.Logger.Error("SongService.AddSong - storage.Create failed", zap.Error(err))
		return nil, fmt.Errorf("SongService.AddSong - storage.Create failed: %w", ErrStoreUnavailable)
	}

	utils.Logger.Info("SongService.AddSong - song added", zap.Int("song_id", addedSong.ID), zap.String("title", addedSong.Title), zap.String("artist", addedSong.Artist))
	return addedSong, nil
}

func (s *SongService) GetSong(ctx context.Context, id int) (*models.Song, error) {
	utils.Logger.Debug("SongService.GetSong", zap.Int("id", id))

	song, err := s.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("SongService.GetSong - storage.GetByID failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("SongService.GetSong - storage.GetByID failed: %w", ErrStoreUnavailable)
	}
	return song, nil
}

func (s *SongService) GetSongs(ctx context.Context, pagination *models.Pagination) ([]models.Song, error) {
	utils.Logger.Debug("SongService.GetSongs", zap.Any("pagination", pagination))

	songs, err := s.storage.List(ctx, pagination)
	if err != nil {
		utils.Logger.Error("SongService.GetSongs - storage.List failed", zap.Error(err), zap.Any("pagination", pagination))
		return nil, fmt.Errorf("SongService.GetSongs - storage.List failed: %w", ErrStoreUnavailable)
	}
	return songs, nil
}

func (s *SongService) UpdateSong(ctx context.Context, id int, upd *models.SongUpdate) (*models.Song, error) {
	utils.Logger.Debug("SongService.UpdateSong", zap.Int("id", id))

	if err := validateUpdate(upd); err != nil {
		utils.Logger.Warn("SongService.UpdateSong - validation failed", zap.Error(err), zap.Int("id", id))
		return nil, err
	}

	updatedSong, err := s.storage.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("SongService.UpdateSong - storage.Update failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("SongService.UpdateSong - storage.Update failed: %w", ErrStoreUnavailable)
	}
	utils.Logger.Info("SongService.UpdateSong - song updated", zap.Int("song_id", updatedSong.ID))
	return updatedSong, nil
}

func (s *SongService) DeleteSong(ctx context.Context, id int) error {
	utils.Logger.Debug("SongService.DeleteSong", zap.Int("id", id))

	err := s.storage.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			return storage.ErrSongNotFound
		}
		utils.Logger.Error("SongService.DeleteSong - storage.Delete failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("SongService.DeleteSong - storage.Delete failed: %w", ErrStoreUnavailable)
	}
	utils.Logger.Info("SongService.DeleteSong - song deleted", zap.Int("song_id", id))
	return nil
}

// GetSongsByArtist lists every song whose artist name contains the given
// value, case-insensitively. An unknown artist yields an empty list, not an
// error.
func (s *SongService) GetSongsByArtist(ctx context.Context, artist string) ([]models.Song, error) {
	utils.Logger.Debug("SongService.GetSongsByArtist", zap.String("artist", artist))

	songs, err := s.storage.ListByArtist(ctx, artist)
	if err != nil {
		utils.Logger.Error("SongService.GetSongsByArtist - storage.ListByArtist failed", zap.Error(err), zap.String("artist", artist))
		return nil, fmt.Errorf("SongService.GetSongsByArtist - storage.ListByArtist failed: %w", ErrStoreUnavailable)
	}
	return songs, nil
}

// GetSongsByGenre lists every song whose genre contains the given value,
// case-insensitively.
func (s *SongService) GetSongsByGenre(ctx context.Context, genre string) ([]models.Song, error) {
	utils.Logger.Debug("SongService.GetSongsByGenre", zap.String("genre", genre))

	songs, err := s.storage.ListByGenre(ctx, genre)
	if err != nil {
		utils.Logger.Error("SongService.GetSongsByGenre - storage.ListByGenre failed", zap.Error(err), zap.String("genre", genre))
		return nil, fmt.Errorf("SongService.GetSongsByGenre - storage.ListByGenre failed: %w", ErrStoreUnavailable)
	}
	return songs, nil
}

// SearchSongs returns every song whose title, artist, album or genre contains
// the query, case-insensitively. An empty query intentionally returns the
// whole catalog; callers expecting "no match" there are wrong.
func (s *SongService) SearchSongs(ctx context.Context, query string) ([]models.Song, error) {
	utils.Logger.Debug("SongService.SearchSongs", zap.String("query", query))

	songs, err := s.storage.Search(ctx, query)
	if err != nil {
		utils.Logger.Error("SongService.SearchSongs - storage.Search failed", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("SongService.SearchSongs - storage.Search failed: %w", ErrStoreUnavailable)
	}
	return songs, nil
}

// GetStats aggregates the whole catalog on demand. The snapshot comes from a
// single SELECT, so concurrent writes cannot skew the passes below.
func (s *SongService) GetStats(ctx context.Context) (*models.LibraryStats, error) {
	utils.Logger.Debug("SongService.GetStats")

	songs, err := s.storage.All(ctx)
	if err != nil {
		utils.Logger.Error("SongService.GetStats - storage.All failed", zap.Error(err))
		return nil, fmt.Errorf("SongService.GetStats - storage.All failed: %w", ErrStoreUnavailable)
	}
	return computeStats(songs), nil
}

func validateCreate(req *models.SongCreate) error {
	if strings.TrimSpace(req.Title) == "" {
		return &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if strings.TrimSpace(req.Artist) == "" {
		return &ValidationError{Field: "artist", Message: "must not be empty"}
	}
	if req.Year != nil {
		if err := validateYear(*req.Year); err != nil {
			return err
		}
	}
	if req.Duration != nil && *req.Duration < 0 {
		return &ValidationError{Field: "duration", Message: "must not be negative"}
	}
	return nil
}

// validateUpdate checks only the supplied fields; nil fields keep their
// stored value and are not inspected.
func validateUpdate(upd *models.SongUpdate) error {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if upd.Artist != nil && strings.TrimSpace(*upd.Artist) == "" {
		return &ValidationError{Field: "artist", Message: "must not be empty"}
	}
	if upd.Year != nil {
		if err := validateYear(*upd.Year); err != nil {
			return err
		}
	}
	if upd.Duration != nil && *upd.Duration < 0 {
		return &ValidationError{Field: "duration", Message: "must not be negative"}
	}
	return nil
}

func validateYear(year int) error {
	if year < minYear || year > time.Now().Year()+1 {
		return &ValidationError{Field: "year", Message: "must be a plausible release year"}
	}
	return nil
}

// internal/api/handlers/songs/songs_handlers.go
package songs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"musiccatalog/internal/lib/logger/utils"
	"musiccatalog/internal/lib/response"
	"musiccatalog/internal/models"
	"musiccatalog/internal/service"
	"musiccatalog/internal/storage"
)

type SongHandlers struct {
	songService *service.SongService
}

func NewSongHandlers(songService *service.SongService) *SongHandlers {
	return &SongHandlers{
		songService: songService,
	}
}

// @Summary List songs
// @Description Get songs in insertion order with an offset/limit window.
// @Tags songs
// @Produce json
// @Param skip query int false "Number of songs to skip" default(0)
// @Param limit query int false "Maximum number of songs to return (capped at 1000)" default(100)
// @Success 200 {array} models.Song
// @Router /api/songs [get]
func (h *SongHandlers) GetSongsHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetSongsHandler called")

	queryParams := r.URL.Query()
	skip, _ := strconv.Atoi(queryParams.Get("skip"))
	limit, _ := strconv.Atoi(queryParams.Get("limit"))

	pagination := models.NewPagination(skip, limit)

	songs, err := h.songService.GetSongs(r.Context(), pagination)
	if err != nil {
		utils.Logger.Error("GetSongsHandler - songService.GetSongs failed", zap.Error(err), zap.Any("pagination", pagination))
		response.Error(w, http.StatusInternalServerError, "Failed to get songs")
		return
	}
	if songs == nil {
		songs = []models.Song{}
	}

	response.JSON(w, http.StatusOK, songs)
	utils.Logger.Debug("GetSongsHandler - songs retrieved", zap.Int("count", len(songs)))
}

// @Summary Add a new song
// @Description Add a song to the catalog. Title and artist are required.
// @Tags songs
// @Accept json
// @Produce json
// @Param body body models.SongCreate true "Song to add"
// @Success 201 {object} models.Song
// @Failure 400 {string} string "Bad Request"
// @Failure 422 {string} string "Unprocessable Entity"
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/songs [post]
func (h *SongHandlers) AddSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("AddSongHandler called")
	var req models.SongCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("AddSongHandler - invalid request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	addedSong, err := h.songService.AddSong(r.Context(), &req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			response.FieldError(w, http.StatusUnprocessableEntity, vErr.Error(), vErr.Field)
			return
		}
		utils.Logger.Error("AddSongHandler - songService.AddSong failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to add song")
		return
	}

	response.JSON(w, http.StatusCreated, addedSong)
	utils.Logger.Info("AddSongHandler - song added successfully", zap.Int("song_id", addedSong.ID), zap.String("title", addedSong.Title), zap.String("artist", addedSong.Artist))
}

// @Summary Get song by ID
// @Tags songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} models.Song
// @Failure 404 {string} string "Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/songs/{id} [get]
func (h *SongHandlers) GetSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetSongHandler called")
	id, ok := songIDFromRequest(w, r)
	if !ok {
		return
	}

	song, err := h.songService.GetSong(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			response.Error(w, http.StatusNotFound, "Song not found")
			return
		}
		utils.Logger.Error("GetSongHandler - songService.GetSong failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to get song")
		return
	}

	response.JSON(w, http.StatusOK, song)
	utils.Logger.Debug("GetSongHandler - song retrieved", zap.Int("song_id", song.ID))
}

// @Summary Update song by ID
// @Description Apply a partial update. Only supplied fields change; an
// @Description explicitly empty optional field overwrites the stored value.
// @Tags songs
// @Accept json
// @Produce json
// @Param id path int true "Song ID"
// @Param body body models.SongUpdate true "Fields to update"
// @Success 200 {object} models.Song
// @Failure 400 {string} string "Bad Request"
// @Failure 404 {string} string "Not Found"
// @Failure 422 {string} string "Unprocessable Entity"
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/songs/{id} [put]
func (h *SongHandlers) UpdateSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("UpdateSongHandler called")
	id, ok := songIDFromRequest(w, r)
	if !ok {
		return
	}

	var upd models.SongUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.Logger.Warn("UpdateSongHandler - invalid request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updatedSong, err := h.songService.UpdateSong(r.Context(), id, &upd)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			response.FieldError(w, http.StatusUnprocessableEntity, vErr.Error(), vErr.Field)
			return
		}
		if errors.Is(err, storage.ErrSongNotFound) {
			response.Error(w, http.StatusNotFound, "Song not found")
			return
		}
		utils.Logger.Error("UpdateSongHandler - songService.UpdateSong failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to update song")
		return
	}

	response.JSON(w, http.StatusOK, updatedSong)
	utils.Logger.Info("UpdateSongHandler - song updated successfully", zap.Int("song_id", updatedSong.ID))
}

// @Summary Delete song by ID
// @Tags songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 204 "No Content"
// @Failure 404 {string} string "Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/songs/{id} [delete]
func (h *SongHandlers) DeleteSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("DeleteSongHandler called")
	id, ok := songIDFromRequest(w, r)
	if !ok {
		return
	}

	err := h.songService.DeleteSong(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			response.Error(w, http.StatusNotFound, "Song not found")
			return
		}
		utils.Logger.Error("DeleteSongHandler - songService.DeleteSong failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to delete song")
		return
	}

	w.WriteHeader(http.StatusNoContent)
	utils.Logger.Info("DeleteSongHandler - song deleted successfully", zap.Int("song_id", id))
}

// @Summary List songs by artist
// @Description Get every song whose artist name contains the given value,
// @Description case-insensitively. An unknown artist yields an empty list.
// @Tags songs
// @Produce json
// @Param artist path string true "Artist name"
// @Success 200 {array} models.Song
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/artists/{artist}/songs [get]
func (h *SongHandlers) GetSongsByArtistHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetSongsByArtistHandler called")
	artist := mux.Vars(r)["artist"]

	songs, err := h.songService.GetSongsByArtist(r.Context(), artist)
	if err != nil {
		utils.Logger.Error("GetSongsByArtistHandler - songService.GetSongsByArtist failed", zap.Error(err), zap.String("artist", artist))
		response.Error(w, http.StatusInternalServerError, "Failed to get songs by artist")
		return
	}
	if songs == nil {
		songs = []models.Song{}
	}

	response.JSON(w, http.StatusOK, songs)
	utils.Logger.Debug("GetSongsByArtistHandler - songs retrieved", zap.Int("count", len(songs)), zap.String("artist", artist))
}

// @Summary List songs by genre
// @Description Get every song whose genre contains the given value,
// @Description case-insensitively.
// @Tags songs
// @Produce json
// @Param genre path string true "Genre name"
// @Success 200 {array} models.Song
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/genres/{genre}/songs [get]
func (h *SongHandlers) GetSongsByGenreHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetSongsByGenreHandler called")
	genre := mux.Vars(r)["genre"]

	songs, err := h.songService.GetSongsByGenre(r.Context(), genre)
	if err != nil {
		utils.Logger.Error("GetSongsByGenreHandler - songService.GetSongsByGenre failed", zap.Error(err), zap.String("genre", genre))
		response.Error(w, http.StatusInternalServerError, "Failed to get songs by genre")
		return
	}
	if songs == nil {
		songs = []models.Song{}
	}

	response.JSON(w, http.StatusOK, songs)
	utils.Logger.Debug("GetSongsByGenreHandler - songs retrieved", zap.Int("count", len(songs)), zap.String("genre", genre))
}

// @Summary Search songs
// @Description Case-insensitive substring search over title, artist, album
// @Description and genre. An empty query returns the whole catalog.
// @Tags songs
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} models.Song
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/search [get]
func (h *SongHandlers) SearchSongsHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("SearchSongsHandler called")
	query := r.URL.Query().Get("q")

	songs, err := h.songService.SearchSongs(r.Context(), query)
	if err != nil {
		utils.Logger.Error("SearchSongsHandler - songService.SearchSongs failed", zap.Error(err), zap.String("query", query))
		response.Error(w, http.StatusInternalServerError, "Failed to search songs")
		return
	}
	if songs == nil {
		songs = []models.Song{}
	}

	response.JSON(w, http.StatusOK, songs)
	utils.Logger.Debug("SearchSongsHandler - songs retrieved", zap.Int("count", len(songs)), zap.String("query", query))
}

// @Summary Catalog statistics
// @Description Aggregate statistics computed on demand from one consistent snapshot.
// @Tags songs
// @Produce json
// @Success 200 {object} models.LibraryStats
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/stats [get]
func (h *SongHandlers) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetStatsHandler called")

	stats, err := h.songService.GetStats(r.Context())
	if err != nil {
		utils.Logger.Error("GetStatsHandler - songService.GetStats failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to get stats")
		return
	}

	response.JSON(w, http.StatusOK, stats)
	utils.Logger.Debug("GetStatsHandler - stats computed", zap.Int("total_songs", stats.TotalSongs))
}

func (h *SongHandlers) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func songIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.Logger.Warn("invalid song ID", zap.Error(err), zap.String("id", idStr))
		response.Error(w, http.StatusBadRequest, "Invalid song ID")
		return 0, false
	}
	return id, true
}

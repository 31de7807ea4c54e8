package songs_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"musiccatalog/internal/api/handlers/songs"
	"musiccatalog/internal/lib/logger/utils"
	"musiccatalog/internal/models"
	"musiccatalog/internal/service"
	"musiccatalog/internal/storage"
	mock_storage "musiccatalog/internal/storage/mocks"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := utils.InitLogger(""); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	exitCode := m.Run()
	utils.Logger.Sync()
	os.Exit(exitCode)
}

func newHandlers(t *testing.T) (*songs.SongHandlers, *mock_storage.MockSongStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := mock_storage.NewMockSongStorage(ctrl)
	songService := service.NewSongService(mockStorage, nil)
	return songs.NewSongHandlers(songService), mockStorage
}

func strPtr(s string) *string { return &s }

func TestAddSongHandler(t *testing.T) {
	testCases := []struct {
		name           string
		requestBody    string
		mockStorageFn  func(s *mock_storage.MockSongStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Valid request",
			requestBody: `{"title": "Imagine", "artist": "John Lennon"}`,
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Song{ID: 1, Title: "Imagine", Artist: "John Lennon"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":1,"title":"Imagine","artist":"John Lennon","album":null,"genre":null,"year":null,"duration":null,"artwork_url":null,"created_at":"0001-01-01T00:00:00Z","updated_at":null}`,
		},
		{
			name:           "Invalid request body",
			requestBody:    `invalid json`,
			mockStorageFn:  func(s *mock_storage.MockSongStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body"}`,
		},
		{
			name:           "Missing title",
			requestBody:    `{"artist": "John Lennon"}`,
			mockStorageFn:  func(s *mock_storage.MockSongStorage) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"invalid song: field \"title\" must not be empty","field":"title"}`,
		},
		{
			name:           "Missing artist",
			requestBody:    `{"title": "Imagine"}`,
			mockStorageFn:  func(s *mock_storage.MockSongStorage) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"invalid song: field \"artist\" must not be empty","field":"artist"}`,
		},
		{
			name:        "Storage error",
			requestBody: `{"title": "Imagine", "artist": "John Lennon"}`,
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to add song"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockStorage := newHandlers(t)
			tc.mockStorageFn(mockStorage)

			req := httptest.NewRequest("POST", "/api/songs", bytes.NewBufferString(tc.requestBody))
			w := httptest.NewRecorder()

			handler.AddSongHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestGetSongHandler(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().GetByID(gomock.Any(), 1).Return(&models.Song{ID: 1, Title: "Imagine", Artist: "John Lennon"}, nil)

	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/songs/1", nil), map[string]string{"id": "1"})
	w := httptest.NewRecorder()

	handler.GetSongHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Imagine"`)
}

func TestGetSongHandler_NotFound(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().GetByID(gomock.Any(), 99).Return(nil, storage.ErrSongNotFound)

	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/songs/99", nil), map[string]string{"id": "99"})
	w := httptest.NewRecorder()

	handler.GetSongHandler(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Song not found"}`, w.Body.String())
}

func TestGetSongHandler_InvalidID(t *testing.T) {
	handler, _ := newHandlers(t)

	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/songs/abc", nil), map[string]string{"id": "abc"})
	w := httptest.NewRecorder()

	handler.GetSongHandler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid song ID"}`, w.Body.String())
}

func TestGetSongsHandler_DefaultPagination(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().List(gomock.Any(), models.NewPagination(0, 0)).Return([]models.Song{}, nil)

	req := httptest.NewRequest("GET", "/api/songs", nil)
	w := httptest.NewRecorder()

	handler.GetSongsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetSongsHandler_LimitClamped(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	// limit=5000 must be clamped to the 1000 cap before it reaches the store.
	mockStorage.EXPECT().List(gomock.Any(), &models.Pagination{Skip: 10, Limit: 1000}).Return(nil, nil)

	req := httptest.NewRequest("GET", "/api/songs?skip=10&limit=5000", nil)
	w := httptest.NewRecorder()

	handler.GetSongsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateSongHandler(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().Update(gomock.Any(), 1, gomock.Any()).DoAndReturn(
		func(_ context.Context, id int, upd *models.SongUpdate) (*models.Song, error) {
			require.NotNil(t, upd.Genre)
			assert.Equal(t, "Pop", *upd.Genre)
			assert.Nil(t, upd.Title)
			return &models.Song{ID: 1, Title: "Imagine", Artist: "John Lennon", Genre: upd.Genre}, nil
		})

	req := mux.SetURLVars(
		httptest.NewRequest("PUT", "/api/songs/1", bytes.NewBufferString(`{"genre": "Pop"}`)),
		map[string]string{"id": "1"},
	)
	w := httptest.NewRecorder()

	handler.UpdateSongHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"genre":"Pop"`)
	assert.Contains(t, w.Body.String(), `"title":"Imagine"`)
}

func TestUpdateSongHandler_NotFound(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().Update(gomock.Any(), 99, gomock.Any()).Return(nil, storage.ErrSongNotFound)

	req := mux.SetURLVars(
		httptest.NewRequest("PUT", "/api/songs/99", bytes.NewBufferString(`{"genre": "Pop"}`)),
		map[string]string{"id": "99"},
	)
	w := httptest.NewRecorder()

	handler.UpdateSongHandler(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Song not found"}`, w.Body.String())
}

func TestUpdateSongHandler_EmptyTitleRejected(t *testing.T) {
	handler, _ := newHandlers(t)

	req := mux.SetURLVars(
		httptest.NewRequest("PUT", "/api/songs/1", bytes.NewBufferString(`{"title": ""}`)),
		map[string]string{"id": "1"},
	)
	w := httptest.NewRecorder()

	handler.UpdateSongHandler(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"title"`)
}

func TestDeleteSongHandler(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().Delete(gomock.Any(), 1).Return(nil)

	req := mux.SetURLVars(httptest.NewRequest("DELETE", "/api/songs/1", nil), map[string]string{"id": "1"})
	w := httptest.NewRecorder()

	handler.DeleteSongHandler(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteSongHandler_NotFound(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().Delete(gomock.Any(), 99).Return(storage.ErrSongNotFound)

	req := mux.SetURLVars(httptest.NewRequest("DELETE", "/api/songs/99", nil), map[string]string{"id": "99"})
	w := httptest.NewRecorder()

	handler.DeleteSongHandler(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchSongsHandler(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().Search(gomock.Any(), "Queen").Return([]models.Song{
		{ID: 1, Title: "Bohemian Rhapsody", Artist: "Queen"},
	}, nil)

	req := httptest.NewRequest("GET", "/api/search?q=Queen", nil)
	w := httptest.NewRecorder()

	handler.SearchSongsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"artist":"Queen"`)
}

func TestSearchSongsHandler_EmptyQueryReturnsAll(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().Search(gomock.Any(), "").Return([]models.Song{
		{ID: 1, Title: "Imagine", Artist: "John Lennon"},
		{ID: 2, Title: "Bohemian Rhapsody", Artist: "Queen"},
	}, nil)

	req := httptest.NewRequest("GET", "/api/search", nil)
	w := httptest.NewRecorder()

	handler.SearchSongsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Imagine"`)
	assert.Contains(t, w.Body.String(), `"title":"Bohemian Rhapsody"`)
}

func TestGetStatsHandler(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	duration := 240
	mockStorage.EXPECT().All(gomock.Any()).Return([]models.Song{
		{ID: 1, Title: "Imagine", Artist: "John Lennon", Genre: strPtr("Pop"), Duration: &duration},
	}, nil)

	req := httptest.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()

	handler.GetStatsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_songs":1`)
	assert.Contains(t, w.Body.String(), `"total_duration":240`)
	assert.Contains(t, w.Body.String(), `"top_artist":{"name":"John Lennon","count":1}`)
}

func TestGetStatsHandler_StoreFailure(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().All(gomock.Any()).Return(nil, errors.New("storage error"))

	req := httptest.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()

	handler.GetStatsHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to get stats"}`, w.Body.String())
}

func TestGetSongsByArtistHandler(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().ListByArtist(gomock.Any(), "Queen").Return([]models.Song{
		{ID: 1, Title: "Bohemian Rhapsody", Artist: "Queen"},
		{ID: 2, Title: "Somebody to Love", Artist: "Queen"},
	}, nil)

	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/artists/Queen/songs", nil), map[string]string{"artist": "Queen"})
	w := httptest.NewRecorder()

	handler.GetSongsByArtistHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Bohemian Rhapsody"`)
	assert.Contains(t, w.Body.String(), `"title":"Somebody to Love"`)
}

func TestGetSongsByArtistHandler_UnknownArtistIsEmptyList(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().ListByArtist(gomock.Any(), "Nobody").Return(nil, nil)

	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/artists/Nobody/songs", nil), map[string]string{"artist": "Nobody"})
	w := httptest.NewRecorder()

	handler.GetSongsByArtistHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetSongsByArtistHandler_StorageError(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().ListByArtist(gomock.Any(), "Queen").Return(nil, errors.New("storage error"))

	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/artists/Queen/songs", nil), map[string]string{"artist": "Queen"})
	w := httptest.NewRecorder()

	handler.GetSongsByArtistHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSongsByGenreHandler(t *testing.T) {
	handler, mockStorage := newHandlers(t)
	mockStorage.EXPECT().ListByGenre(gomock.Any(), "Jazz").Return([]models.Song{
		{ID: 3, Title: "Take Five", Artist: "Dave Brubeck"},
	}, nil)

	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/genres/Jazz/songs", nil), map[string]string{"genre": "Jazz"})
	w := httptest.NewRecorder()

	handler.GetSongsByGenreHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Take Five"`)
}

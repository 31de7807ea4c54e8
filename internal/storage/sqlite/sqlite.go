// Package sqlite implements SongStorage on an embedded SQLite database.
// modernc.org/sqlite is a pure Go driver, so the binary stays CGo-free and
// ":memory:" databases are available for tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"musiccatalog/internal/lib/logger/utils"
	"musiccatalog/internal/models"
	"musiccatalog/internal/storage"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const songColumns = "id, title, artist, album, genre, year, duration, artwork_url, created_at, updated_at"

var _ storage.SongStorage = (*SQLiteStorage)(nil)

type SQLiteStorage struct {
	db *sql.DB
}

// New opens the database file at path (":memory:" for an in-memory catalog).
func New(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("SQLiteStorage.New - open failed: %w", err)
	}
	// A single connection serializes writers and keeps ":memory:" databases
	// from being silently duplicated per pool connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("SQLiteStorage.New - ping failed: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("SQLiteStorage.New - set WAL failed: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Bootstrap creates the songs table if it does not exist yet. AUTOINCREMENT
// keeps ids of deleted rows from ever being reused.
func (s *SQLiteStorage) Bootstrap(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS songs (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            title TEXT NOT NULL,
            artist TEXT NOT NULL,
            album TEXT,
            genre TEXT,
            year INTEGER,
            duration INTEGER,
            artwork_url TEXT,
            created_at DATETIME NOT NULL,
            updated_at DATETIME
        )
    `)
	if err != nil {
		return fmt.Errorf("SQLiteStorage.Bootstrap - exec failed: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Create(ctx context.Context, song *models.Song) (*models.Song, error) {
	query := `
        INSERT INTO songs (title, artist, album, genre, year, duration, artwork_url, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        RETURNING ` + songColumns
	var added models.Song
	err := s.db.QueryRowContext(ctx, query,
		song.Title, song.Artist, song.Album, song.Genre, song.Year, song.Duration, song.ArtworkURL,
		time.Now().UTC(),
	).Scan(
		&added.ID, &added.Title, &added.Artist, &added.Album, &added.Genre,
		&added.Year, &added.Duration, &added.ArtworkURL, &added.CreatedAt, &added.UpdatedAt,
	)
	if err != nil {
		utils.Logger.Error("SQLiteStorage.Create - queryRow failed", zap.Error(err))
		return nil, fmt.Errorf("SQLiteStorage.Create - queryRow failed: %w", err)
	}
	return &added, nil
}

func (s *SQLiteStorage) GetByID(ctx context.Context, id int) (*models.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs WHERE id = ?`
	var song models.Song
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&song.ID, &song.Title, &song.Artist, &song.Album, &song.Genre,
		&song.Year, &song.Duration, &song.ArtworkURL, &song.CreatedAt, &song.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("SQLiteStorage.GetByID - queryRow failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("SQLiteStorage.GetByID - queryRow failed: %w", err)
	}
	return &song, nil
}

func (s *SQLiteStorage) List(ctx context.Context, pagination *models.Pagination) ([]models.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs ORDER BY id LIMIT ? OFFSET ?`
	rows, err := s.db.QueryContext(ctx, query, pagination.GetLimit(), pagination.GetOffset())
	if err != nil {
		utils.Logger.Error("SQLiteStorage.List - query failed", zap.Error(err), zap.Any("pagination", pagination))
		return nil, fmt.Errorf("SQLiteStorage.List - query failed: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows, "SQLiteStorage.List")
}

// Search matches the query as a case-insensitive substring of title, artist,
// album or genre. The empty query matches every song. Wildcards in the query
// are escaped so "100%" only matches a literal "100%".
func (s *SQLiteStorage) Search(ctx context.Context, query string) ([]models.Song, error) {
	sqlQuery := `
        SELECT ` + songColumns + ` FROM songs
        WHERE title LIKE ? ESCAPE '\'
           OR artist LIKE ? ESCAPE '\'
           OR album LIKE ? ESCAPE '\'
           OR genre LIKE ? ESCAPE '\'
        ORDER BY id`
	pattern := "%" + storage.EscapeLike(query) + "%"
	rows, err := s.db.QueryContext(ctx, sqlQuery, pattern, pattern, pattern, pattern)
	if err != nil {
		utils.Logger.Error("SQLiteStorage.Search - query failed", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("SQLiteStorage.Search - query failed: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows, "SQLiteStorage.Search")
}

// ListByArtist returns every song whose artist contains the given name,
// case-insensitively.
func (s *SQLiteStorage) ListByArtist(ctx context.Context, artist string) ([]models.Song, error) {
	sqlQuery := `SELECT ` + songColumns + ` FROM songs WHERE artist LIKE ? ESCAPE '\' ORDER BY id`
	rows, err := s.db.QueryContext(ctx, sqlQuery, "%"+storage.EscapeLike(artist)+"%")
	if err != nil {
		utils.Logger.Error("SQLiteStorage.ListByArtist - query failed", zap.Error(err), zap.String("artist", artist))
		return nil, fmt.Errorf("SQLiteStorage.ListByArtist - query failed: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows, "SQLiteStorage.ListByArtist")
}

// ListByGenre returns every song whose genre contains the given name,
// case-insensitively.
func (s *SQLiteStorage) ListByGenre(ctx context.Context, genre string) ([]models.Song, error) {
	sqlQuery := `SELECT ` + songColumns + ` FROM songs WHERE genre LIKE ? ESCAPE '\' ORDER BY id`
	rows, err := s.db.QueryContext(ctx, sqlQuery, "%"+storage.EscapeLike(genre)+"%")
	if err != nil {
		utils.Logger.Error("SQLiteStorage.ListByGenre - query failed", zap.Error(err), zap.String("genre", genre))
		return nil, fmt.Errorf("SQLiteStorage.ListByGenre - query failed: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows, "SQLiteStorage.ListByGenre")
}

// Update overwrites only the supplied fields in a single statement, so a
// concurrent delete of the same id resolves to exactly one outcome.
func (s *SQLiteStorage) Update(ctx context.Context, id int, upd *models.SongUpdate) (*models.Song, error) {
	query := `
        UPDATE songs
        SET title       = COALESCE(?, title),
            artist      = COALESCE(?, artist),
            album       = COALESCE(?, album),
            genre       = COALESCE(?, genre),
            year        = COALESCE(?, year),
            duration    = COALESCE(?, duration),
            artwork_url = COALESCE(?, artwork_url),
            updated_at  = ?
        WHERE id = ?
        RETURNING ` + songColumns
	var updated models.Song
	err := s.db.QueryRowContext(ctx, query,
		upd.Title, upd.Artist, upd.Album, upd.Genre, upd.Year, upd.Duration, upd.ArtworkURL,
		time.Now().UTC(), id,
	).Scan(
		&updated.ID, &updated.Title, &updated.Artist, &updated.Album, &updated.Genre,
		&updated.Year, &updated.Duration, &updated.ArtworkURL, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("SQLiteStorage.Update - queryRow failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("SQLiteStorage.Update - queryRow failed: %w", err)
	}
	return &updated, nil
}

func (s *SQLiteStorage) Delete(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM songs WHERE id = ?", id)
	if err != nil {
		utils.Logger.Error("SQLiteStorage.Delete - exec failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("SQLiteStorage.Delete - exec failed: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("SQLiteStorage.Delete - rowsAffected failed: %w", err)
	}
	if affected == 0 {
		return storage.ErrSongNotFound
	}
	return nil
}

// All returns the full catalog ordered by id. A single SELECT gives callers
// one consistent snapshot for multi-pass aggregation.
func (s *SQLiteStorage) All(ctx context.Context) ([]models.Song, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+songColumns+" FROM songs ORDER BY id")
	if err != nil {
		utils.Logger.Error("SQLiteStorage.All - query failed", zap.Error(err))
		return nil, fmt.Errorf("SQLiteStorage.All - query failed: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows, "SQLiteStorage.All")
}

func collectSongs(rows *sql.Rows, op string) ([]models.Song, error) {
	var songs []models.Song
	for rows.Next() {
		var song models.Song
		err := rows.Scan(
			&song.ID, &song.Title, &song.Artist, &song.Album, &song.Genre,
			&song.Year, &song.Duration, &song.ArtworkURL, &song.CreatedAt, &song.UpdatedAt,
		)
		if err != nil {
			utils.Logger.Error(op+" - rows.Scan failed", zap.Error(err))
			return nil, fmt.Errorf("%s - rows.Scan failed: %w", op, err)
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		utils.Logger.Error(op+" - rows.Err failed", zap.Error(err))
		return nil, fmt.Errorf("%s - rows.Err failed: %w", op, err)
	}

	return songs, nil
}

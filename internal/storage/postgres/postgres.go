package postgres

import (
	"context"
	"errors"
	"fmt"

	"musiccatalog/internal/lib/logger/utils"
	"musiccatalog/internal/models"
	"musiccatalog/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const songColumns = "id, title, artist, album, genre, year, duration, artwork_url, created_at, updated_at"

var _ storage.SongStorage = (*PgStorage)(nil)

// PgStorage runs every statement on a pgxpool.Pool, which is safe for
// concurrent use by multiple request handlers.
type PgStorage struct {
	pool *pgxpool.Pool
}

func NewPgStorage(pool *pgxpool.Pool) *PgStorage {
	return &PgStorage{pool: pool}
}

// Bootstrap creates the songs table if it does not exist yet.
func (s *PgStorage) Bootstrap(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS songs (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            artist TEXT NOT NULL,
            album TEXT,
            genre TEXT,
            year INTEGER,
            duration INTEGER,
            artwork_url TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMPTZ
        )
    `)
	if err != nil {
		return fmt.Errorf("PgStorage.Bootstrap - exec failed: %w", err)
	}
	return nil
}

// Create inserts a new song and returns the stored row.
func (s *PgStorage) Create(ctx context.Context, song *models.Song) (*models.Song, error) {
	query := `
        INSERT INTO songs (title, artist, album, genre, year, duration, artwork_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + songColumns
	var added models.Song
	err := s.pool.QueryRow(ctx, query,
		song.Title, song.Artist, song.Album, song.Genre, song.Year, song.Duration, song.ArtworkURL,
	).Scan(
		&added.ID, &added.Title, &added.Artist, &added.Album, &added.Genre,
		&added.Year, &added.Duration, &added.ArtworkURL, &added.CreatedAt, &added.UpdatedAt,
	)
	if err != nil {
		utils.Logger.Error("PgStorage.Create - queryRow failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.Create - queryRow failed: %w", err)
	}
	return &added, nil
}

func (s *PgStorage) GetByID(ctx context.Context, id int) (*models.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs WHERE id = $1`
	var song models.Song
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&song.ID, &song.Title, &song.Artist, &song.Album, &song.Genre,
		&song.Year, &song.Duration, &song.ArtworkURL, &song.CreatedAt, &song.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("PgStorage.GetByID - queryRow failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PgStorage.GetByID - queryRow failed: %w", err)
	}
	return &song, nil
}

func (s *PgStorage) List(ctx context.Context, pagination *models.Pagination) ([]models.Song, error) {
	query := fmt.Sprintf("SELECT %s FROM songs ORDER BY id LIMIT %d OFFSET %d",
		songColumns, pagination.GetLimit(), pagination.GetOffset())

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		utils.Logger.Error("PgStorage.List - query failed", zap.Error(err), zap.Any("pagination", pagination))
		return nil, fmt.Errorf("PgStorage.List - query failed: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows, "PgStorage.List")
}

// Search matches the query as a case-insensitive substring of title, artist,
// album or genre. The empty query matches every song. Wildcards in the query
// are escaped so "100%" only matches a literal "100%".
func (s *PgStorage) Search(ctx context.Context, query string) ([]models.Song, error) {
	sqlQuery := `
        SELECT ` + songColumns + ` FROM songs
        WHERE title ILIKE $1 ESCAPE '\'
           OR artist ILIKE $1 ESCAPE '\'
           OR album ILIKE $1 ESCAPE '\'
           OR genre ILIKE $1 ESCAPE '\'
        ORDER BY id`
	rows, err := s.pool.Query(ctx, sqlQuery, "%"+storage.EscapeLike(query)+"%")
	if err != nil {
		utils.Logger.Error("PgStorage.Search - query failed", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("PgStorage.Search - query failed: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows, "PgStorage.Search")
}

// ListByArtist returns every song whose artist contains the given name,
// case-insensitively.
func (s *PgStorage) ListByArtist(ctx context.Context, artist string) ([]models.Song, error) {
	sqlQuery := `SELECT ` + songColumns + ` FROM songs WHERE artist ILIKE $1 ESCAPE '\' ORDER BY id`
	rows, err := s.pool.Query(ctx, sqlQuery, "%"+storage.EscapeLike(artist)+"%")
	if err != nil {
		utils.Logger.Error("PgStorage.ListByArtist - query failed", zap.Error(err), zap.String("artist", artist))
		return nil, fmt.Errorf("PgStorage.ListByArtist - query failed: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows, "PgStorage.ListByArtist")
}

// ListByGenre returns every song whose genre contains the given name,
// case-insensitively.
func (s *PgStorage) ListByGenre(ctx context.Context, genre string) ([]models.Song, error) {
	sqlQuery := `SELECT ` + songColumns + ` FROM songs WHERE genre ILIKE $1 ESCAPE '\' ORDER BY id`
	rows, err := s.pool.Query(ctx, sqlQuery, "%"+storage.EscapeLike(genre)+"%")
	if err != nil {
		utils.Logger.Error("PgStorage.ListByGenre - query failed", zap.Error(err), zap.String("genre", genre))
		return nil, fmt.Errorf("PgStorage.ListByGenre - query failed: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows, "PgStorage.ListByGenre")
}

// Update overwrites only the supplied fields in a single statement, so a
// concurrent delete of the same id resolves to exactly one outcome.
func (s *PgStorage) Update(ctx context.Context, id int, upd *models.SongUpdate) (*models.Song, error) {
	query := `
        UPDATE songs
        SET title       = COALESCE($1, title),
            artist      = COALESCE($2, artist),
            album       = COALESCE($3, album),
            genre       = COALESCE($4, genre),
            year        = COALESCE($5, year),
            duration    = COALESCE($6, duration),
            artwork_url = COALESCE($7, artwork_url),
            updated_at  = CURRENT_TIMESTAMP
        WHERE id = $8
        RETURNING ` + songColumns
	var updated models.Song
	err := s.pool.QueryRow(ctx, query,
		upd.Title, upd.Artist, upd.Album, upd.Genre, upd.Year, upd.Duration, upd.ArtworkURL, id,
	).Scan(
		&updated.ID, &updated.Title, &updated.Artist, &updated.Album, &updated.Genre,
		&updated.Year, &updated.Duration, &updated.ArtworkURL, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("PgStorage.Update - queryRow failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PgStorage.Update - queryRow failed: %w", err)
	}
	return &updated, nil
}

func (s *PgStorage) Delete(ctx context.Context, id int) error {
	result, err := s.pool.Exec(ctx, "DELETE FROM songs WHERE id = $1", id)
	if err != nil {
		utils.Logger.Error("PgStorage.Delete - exec failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("PgStorage.Delete - exec failed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return storage.ErrSongNotFound
	}
	return nil
}

// All returns the full catalog ordered by id. A single SELECT gives callers
// one consistent snapshot for multi-pass aggregation.
func (s *PgStorage) All(ctx context.Context) ([]models.Song, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+songColumns+" FROM songs ORDER BY id")
	if err != nil {
		utils.Logger.Error("PgStorage.All - query failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.All - query failed: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows, "PgStorage.All")
}

func collectSongs(rows pgx.Rows, op string) ([]models.Song, error) {
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

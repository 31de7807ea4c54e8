// internal/storage/storage.go
package storage

import (
	"context"
	"errors"
	"strings"

	"musiccatalog/internal/models"
)

var ErrSongNotFound = errors.New("song not found")

type SongStorage interface {
	Create(ctx context.Context, song *models.Song) (*models.Song, error)
	GetByID(ctx context.Context, id int) (*models.Song, error)
	List(ctx context.Context, pagination *models.Pagination) ([]models.Song, error)
	ListByArtist(ctx context.Context, artist string) ([]models.Song, error)
	ListByGenre(ctx context.Context, genre string) ([]models.Song, error)
	Search(ctx context.Context, query string) ([]models.Song, error)
	Update(ctx context.Context, id int, upd *models.SongUpdate) (*models.Song, error)
	Delete(ctx context.Context, id int) error
	// All returns every song ordered by id, read in a single statement so
	// callers doing multi-pass aggregation see one consistent snapshot.
	All(ctx context.Context) ([]models.Song, error)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE wildcards in user input so backends match it
// as a literal substring. Patterns built from it must carry ESCAPE '\'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

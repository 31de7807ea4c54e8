// cmd/musiccatalog/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"musiccatalog/config"
	"musiccatalog/internal/api/handlers/songs"
	"musiccatalog/internal/artwork"
	"musiccatalog/internal/lib/logger/utils"
	"musiccatalog/internal/service"
	"musiccatalog/internal/storage"
	"musiccatalog/internal/storage/postgres"
	"musiccatalog/internal/storage/sqlite"
	_ "musiccatalog/swagger" // Import generated swagger docs

	"github.com/jackc/pgx/v5/pgxpool"
)

// @title Music Catalog API
// @version 1.0
// @description Personal music catalog: song CRUD, search and statistics.

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	// 1. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	// 2. Initialize logger
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Logger.Sync()

	utils.Logger.Info("Starting Music Catalog API")
	utils.Logger.Debug("Configuration loaded", zap.String("storage_driver", cfg.StorageDriver))

	// 3. Open the record store and bootstrap the schema
	ctx := context.Background()
	var songStorage storage.SongStorage

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		// A pool rather than a single connection: handlers run concurrently.
		pool, err := pgxpool.New(ctx, cfg.DBURL)
		if err != nil {
			utils.Logger.Fatal("Database pool creation failed", zap.Error(err))
			return
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			utils.Logger.Fatal("Database connection failed", zap.Error(err))
			return
		}

		pgStorage := postgres.NewPgStorage(pool)
		if err := pgStorage.Bootstrap(ctx); err != nil {
			utils.Logger.Fatal("Schema bootstrap failed", zap.Error(err))
			return
		}
		songStorage = pgStorage
		utils.Logger.Info("Postgres storage ready", zap.String("host", cfg.DBHost))

	case config.DriverSQLite:
		sqliteStorage, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			utils.Logger.Fatal("Database open failed", zap.Error(err))
			return
		}
		defer sqliteStorage.Close()

		if err := sqliteStorage.Bootstrap(ctx); err != nil {
			utils.Logger.Fatal("Schema bootstrap failed", zap.Error(err))
			return
		}
		songStorage = sqliteStorage
		utils.Logger.Info("SQLite storage ready", zap.String("path", cfg.SQLitePath))
	}

	// 4. Artwork client (optional) and service
	var artworkClient artwork.ArtworkAPI
	if cfg.ArtworkAPIURL != "" {
		artworkClient = artwork.NewArtworkClient(cfg.ArtworkAPIURL)
		utils.Logger.Info("Artwork lookup enabled", zap.String("url", cfg.ArtworkAPIURL))
	}
	songService := service.NewSongService(songStorage, artworkClient)

	// 5. API handlers
	songHandlers := songs.NewSongHandlers(songService)

	// 6. Router
	router := mux.NewRouter()

	router.HandleFunc("/health", songHandlers.HealthCheckHandler).Methods("GET")
	router.HandleFunc("/api/songs", songHandlers.GetSongsHandler).Methods("GET")
	router.HandleFunc("/api/songs", songHandlers.AddSongHandler).Methods("POST")
	router.HandleFunc("/api/songs/{id}", songHandlers.GetSongHandler).Methods("GET")
	router.HandleFunc("/api/songs/{id}", songHandlers.UpdateSongHandler).Methods("PUT")
	router.HandleFunc("/api/songs/{id}", songHandlers.DeleteSongHandler).Methods("DELETE")
	router.HandleFunc("/api/artists/{artist}/songs", songHandlers.GetSongsByArtistHandler).Methods("GET")
	router.HandleFunc("/api/genres/{genre}/songs", songHandlers.GetSongsByGenreHandler).Methods("GET")
	router.HandleFunc("/api/search", songHandlers.SearchSongsHandler).Methods("GET")
	router.HandleFunc("/api/stats", songHandlers.GetStatsHandler).Methods("GET")

	// Swagger documentation
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// 7. Serve
	serverAddr := fmt.Sprintf(":%d", cfg.ServerPort)
	utils.Logger.Info("Server starting", zap.String("address", serverAddr))
	log.Fatal(http.ListenAndServe(serverAddr, router))
}

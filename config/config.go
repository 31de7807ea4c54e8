// config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	StorageDriver string
	DBURL         string
	DBHost        string
	DBPort        int
	DBUser        string
	DBPassword    string
	DBName        string
	SQLitePath    string
	ArtworkAPIURL string
	ServerPort    int
	LogLevel      string
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	serverPort, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		serverPort = 8080
	}

	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = DriverSQLite
	}
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}

	sqlitePath := os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "music_catalog.db"
	}

	cfg := &Config{
		StorageDriver: driver,
		SQLitePath:    sqlitePath,
		ArtworkAPIURL: os.Getenv("ARTWORK_API_URL"),
		ServerPort:    serverPort,
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}

	if driver != DriverPostgres {
		return cfg, nil
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbHost := os.Getenv("DB_HOST")
		dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
		if err != nil {
			dbPort = 5432
		}
		dbUser := os.Getenv("DB_USER")
		dbPassword := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")

		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", dbUser, dbPassword, dbHost, dbPort, dbName)
	}

	parsedDBURL, err := url.Parse(dbURL)
	if err != nil {
		return nil, err
	}

	cfg.DBURL = dbURL
	cfg.DBHost = parsedDBURL.Hostname()
	cfg.DBPort, _ = strconv.Atoi(parsedDBURL.Port())
	cfg.DBUser = parsedDBURL.User.Username()
	cfg.DBPassword, _ = parsedDBURL.User.Password()
	cfg.DBName = strings.TrimPrefix(parsedDBURL.Path, "/")

	return cfg, nil
}

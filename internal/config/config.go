package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ModeDebug   = "debug"
	ModeRelease = "release"
	ModeTest    = "test"

	defaultLocalDatabaseURL = "sqlite://catalog.db"
)

// Backend identifies which store implementation a DATABASE_URL selects.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendMongo    Backend = "mongo"
	BackendSQLite   Backend = "sqlite"
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is required in release mode")

type Config struct {
	GinMode      string
	Addr         string
	TZ           string
	LogLevel     string
	DatabaseURL  string
	DatabaseName string
}

// Load reads the process environment, after merging an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not load .env", "error", err)
	}

	cfg := &Config{
		GinMode:      getenv("GIN_MODE", ModeDebug),
		Addr:         getenv("ADDR", ":8080"),
		TZ:           getenv("TZ", "UTC"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getenv("DATABASE_NAME", "catalog"),
	}

	if cfg.DatabaseURL == "" && cfg.GinMode != ModeRelease {
		cfg.DatabaseURL = defaultLocalDatabaseURL
	}

	return cfg
}

func (c *Config) Validate() error {
	switch c.GinMode {
	case ModeDebug, ModeRelease, ModeTest:
	default:
		return fmt.Errorf("GIN_MODE %q is not one of debug, release, test", c.GinMode)
	}

	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}

	if _, err := c.Backend(); err != nil {
		return err
	}

	return nil
}

// IsRelease reports whether failure detail must be hidden from rendered pages.
func (c *Config) IsRelease() bool {
	return c.GinMode == ModeRelease
}

func (c *Config) Backend() (Backend, error) {
	switch {
	case strings.HasPrefix(c.DatabaseURL, "postgres://"),
		strings.HasPrefix(c.DatabaseURL, "postgresql://"):
		return BackendPostgres, nil
	case strings.HasPrefix(c.DatabaseURL, "mongodb://"),
		strings.HasPrefix(c.DatabaseURL, "mongodb+srv://"):
		return BackendMongo, nil
	case strings.HasPrefix(c.DatabaseURL, "sqlite://"),
		strings.HasPrefix(c.DatabaseURL, "file:"):
		return BackendSQLite, nil
	}
	return "", fmt.Errorf("unsupported DATABASE_URL scheme: %s", c.RedactedDatabaseURL())
}

// SQLitePath converts a sqlite:// URL into the DSN the sqlite driver expects.
// Foreign keys are off by default in sqlite, so the DSN always turns them on.
func (c *Config) SQLitePath() string {
	return SQLiteWithForeignKeys(strings.TrimPrefix(c.DatabaseURL, "sqlite://"))
}

// SQLiteWithForeignKeys adds _foreign_keys=on to a sqlite DSN unless the DSN
// already sets it.
func SQLiteWithForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// RedactedDatabaseURL masks the password so the URL can be logged.
func (c *Config) RedactedDatabaseURL() string {
	u, err := url.Parse(c.DatabaseURL)
	if err != nil || u.User == nil {
		return c.DatabaseURL
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

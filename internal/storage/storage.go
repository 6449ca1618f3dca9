package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/misterclayt0n/overload/internal/config"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Storage is a key/value slot table behind database/sql. Each slot holds one
// serialized document that is always read and written whole.
type Storage struct {
	DB *sql.DB
}

// Open connects to the configured database and makes sure the slot table exists.
// Remote libsql URLs go through the libsql client; file: URLs and plain paths open
// a local SQLite file.
func Open(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	driver, dsn, err := resolveDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite" {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	}

	if err := initializeDB(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func resolveDSN(cfg config.DBConfig) (driver, dsn string, err error) {
	conn := strings.TrimSpace(cfg.ConnectionString)
	if conn == "" {
		return "", "", errors.New("no database connection string configured")
	}

	scheme, _, hasScheme := strings.Cut(conn, "://")
	if hasScheme {
		switch scheme {
		case "libsql", "http", "https", "ws", "wss":
			return "libsql", withAuthToken(conn, cfg.AuthToken), nil
		case "file":
		default:
			return "", "", fmt.Errorf("unsupported database scheme %q", scheme)
		}
	}

	if path := localPath(conn); path != "" && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", "", fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return "sqlite", conn, nil
}

func withAuthToken(conn, token string) string {
	if token == "" {
		return conn
	}
	u, err := url.Parse(conn)
	if err != nil {
		return conn
	}
	q := u.Query()
	q.Set("authToken", token)
	u.RawQuery = q.Encode()
	return u.String()
}

// localPath returns the file path of a SQLite DSN, without the file: prefix and query.
func localPath(conn string) string {
	path := strings.TrimPrefix(conn, "file:")
	path = strings.TrimPrefix(path, "//")
	path, _, _ = strings.Cut(path, "?")
	return path
}

func initializeDB(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS slots (
            name TEXT PRIMARY KEY,
            data TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// Get returns the content of a slot. ok is false when the slot was never written.
func (s *Storage) Get(ctx context.Context, name string) (data string, ok bool, err error) {
	err = s.DB.QueryRowContext(ctx,
		`SELECT data FROM slots WHERE name = ?`,
		name,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read slot %s: %w", name, err)
	}
	return data, true, nil
}

// Set replaces the content of a slot in a single statement, so a failed write
// leaves the previous content in place.
func (s *Storage) Set(ctx context.Context, name, data string) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO slots (name, data, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				data = excluded.data,
				updated_at = excluded.updated_at`,
		name,
		data,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", name, err)
	}
	return nil
}

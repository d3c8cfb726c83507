package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"mealdash/internal/models"
	storageerrors "mealdash/internal/storage"
	"mealdash/pkg/lib/logger/sl"

	_ "github.com/glebarez/go-sqlite"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Storage is the durable client-side key-value store. It holds the
// persisted session (token + serialized user) in a local sqlite file.
type Storage struct {
	log *slog.Logger
	db  *sqlx.DB
}

func New(log *slog.Logger, path string) (*Storage, error) {
	const op = "storage.localstore.New"

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		log.With("op", op).Error("Error opening local store", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wd, err := os.Getwd()
	if err != nil {
		log.With("op", op).Error("Error getting work dir", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	migrationsPath := filepath.Join(wd, "migrations")

	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := goose.Up(db.DB, migrationsPath); err != nil {
		log.With("op", op).Error("Error applying migrations", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		log: log,
		db:  db,
	}, nil
}

func NewWithParams(log *slog.Logger, db *sqlx.DB) *Storage {
	return &Storage{
		log: log,
		db:  db,
	}
}

// SaveSession writes the token and user together; both keys are set in
// one transaction so a restore never sees half a session.
func (s *Storage) SaveSession(ctx context.Context, token string, user models.Session) error {
	const op = "storage.localstore.SaveSession"
	log := s.log.With("op", op)

	userData, err := json.Marshal(user)
	if err != nil {
		log.Error("Failed to marshal user", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := s.db.Beginx()
	if err != nil {
		log.Error("Failed to begin transaction", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	for _, kv := range []struct {
		key   string
		value string
	}{
		{keyToken, token},
		{keyUser, string(userData)},
	} {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO kv_store (key, value)
			VALUES ($1, $2)
			ON CONFLICT(key) DO UPDATE SET value=excluded.value;
		`, kv.key, kv.value); err != nil {
			log.Error("Failed to store session key", sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// LoadSession restores the persisted token and user. ErrNotFound is
// returned unless both keys are present.
func (s *Storage) LoadSession(ctx context.Context) (string, models.Session, error) {
	const op = "storage.localstore.LoadSession"
	log := s.log.With("op", op)

	var token string
	if err := s.db.QueryRowxContext(ctx, `
		SELECT value FROM kv_store
		WHERE key=$1;
	`, keyToken).Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.Session{}, fmt.Errorf("%s: %w", op, storageerrors.ErrNotFound)
		}
		log.Error("Failed to read token", sl.Err(err))
		return "", models.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	var userData string
	if err := s.db.QueryRowxContext(ctx, `
		SELECT value FROM kv_store
		WHERE key=$1;
	`, keyUser).Scan(&userData); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.Session{}, fmt.Errorf("%s: %w", op, storageerrors.ErrNotFound)
		}
		log.Error("Failed to read user", sl.Err(err))
		return "", models.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	var user models.Session
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		log.Error("Failed to unmarshal user", sl.Err(err))
		return "", models.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	return token, user, nil
}

// ClearSession removes both keys together.
func (s *Storage) ClearSession(ctx context.Context) error {
	const op = "storage.localstore.ClearSession"
	log := s.log.With("op", op)

	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM kv_store
		WHERE key IN ($1, $2);
	`, keyToken, keyUser); err != nil {
		log.Error("Failed to clear session", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() {
	if err := s.db.Close(); err != nil {
		s.log.Error("Failed to close local store", sl.Err(err))
	}
}

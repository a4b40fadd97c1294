package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alumnihub/portal-cli/internal/client/models"
	"github.com/alumnihub/portal-cli/internal/dbx"
)

// SQLiteStore keeps the session in a key-value table of the client's local
// SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Save persists token and user in a single transaction so readers never
// observe a half-written session.
func (s *SQLiteStore) Save(ctx context.Context, token string, user *models.UserProfile) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		return s.set(ctx, tx, keyUser, data)
	})
}

// Clear removes both entries. Repeated clears are harmless.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	value, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// User returns the persisted profile. Unparseable data is treated as
// absent: the caller sees a logged-out state, not an error.
func (s *SQLiteStore) User(ctx context.Context) (*models.UserProfile, error) {
	value, err := s.get(ctx, s.db, keyUser)
	if err != nil {
		return nil, err
	}
	if len(value) == 0 || string(value) == "null" {
		return nil, nil
	}
	var user models.UserProfile
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

func (s *SQLiteStore) HasToken(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

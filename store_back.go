//go:build !wasm

package enroll

import (
	"database/sql"
	"time"
)

// SQLStore keeps flags in the enroll_flags table.
type SQLStore struct {
	exec Executor
}

// NewSQLStore runs the migrations and returns a store over exec.
func NewSQLStore(exec Executor) (*SQLStore, error) {
	if err := runMigrations(exec); err != nil {
		return nil, err
	}
	return &SQLStore{exec: exec}, nil
}

func (s *SQLStore) Get(key string) (string, error) {
	var v string
	err := s.exec.QueryRow("SELECT value FROM enroll_flags WHERE key = ?", key).Scan(&v)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return v, nil
}

func (s *SQLStore) Set(key, value string) error {
	return s.exec.Exec(
		`INSERT INTO enroll_flags (key, value, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
}

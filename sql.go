package enroll

import (
	"database/sql"
)

// Executor interface abstracts database operations.
type Executor interface {
	Exec(query string, args ...any) error
	QueryRow(query string, args ...any) Scanner
}

// Scanner interface abstracts scanning a row.
type Scanner interface {
	Scan(dest ...any) error
}

// DBExecutor adapts *sql.DB to Executor.
type DBExecutor struct {
	*sql.DB
}

func NewDBExecutor(db *sql.DB) *DBExecutor {
	return &DBExecutor{db}
}

func (e *DBExecutor) Exec(query string, args ...any) error {
	_, err := e.DB.Exec(query, args...)
	return err
}

func (e *DBExecutor) QueryRow(query string, args ...any) Scanner {
	return e.DB.QueryRow(query, args...)
}

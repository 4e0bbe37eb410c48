package storage

import (
	"github.com/mwhitfield/caretrack/internal/storage/sqlite"
)

// NewSQLiteStore creates a Provider backed by a local SQLite database.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

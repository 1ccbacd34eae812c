// Package storage provides durable storage for the moderation service on top of the sql engine.
// Each table is represented by a struct with methods working with the table, all tables are partitioned by the group id
// of the engine, so several instances can share one database.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested record doesn't exist
var ErrNotFound = errors.New("not found")

// notFound converts sql.ErrNoRows to ErrNotFound, other errors are wrapped with msg
func notFound(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/strikeguard/app/storage/engine"
)

// Whitelist is a storage for users bypassing moderation
type Whitelist struct {
	*engine.SQL
	engine.RWLocker
}

// WhitelistEntry is a whitelisted user
type WhitelistEntry struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	UserName  string    `db:"user_name" json:"user_name,omitempty"`
	AddedBy   string    `db:"added_by" json:"added_by,omitempty"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

func (e WhitelistEntry) String() string {
	if e.UserName == "" {
		return fmt.Sprintf("%d", e.UserID)
	}
	return fmt.Sprintf("%q (%d)", e.UserName, e.UserID)
}

// all whitelist queries
const (
	CmdCreateWhitelistTable engine.DBCmd = iota + 300
	CmdCreateWhitelistIndexes
	CmdAddWhitelist
)

var whitelistQueries = engine.NewQueryMap().
	Add(CmdCreateWhitelistTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS whitelist (
			id INTEGER PRIMARY KEY,
			gid TEXT NOT NULL DEFAULT '',
			user_id INTEGER NOT NULL,
			user_name TEXT NOT NULL DEFAULT '',
			added_by TEXT NOT NULL DEFAULT '',
			timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(gid, user_id)
		)`,
		Postgres: `CREATE TABLE IF NOT EXISTS whitelist (
			id SERIAL PRIMARY KEY,
			gid TEXT NOT NULL DEFAULT '',
			user_id BIGINT NOT NULL,
			user_name TEXT NOT NULL DEFAULT '',
			added_by TEXT NOT NULL DEFAULT '',
			timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(gid, user_id)
		)`,
	}).
	AddSame(CmdCreateWhitelistIndexes, `CREATE INDEX IF NOT EXISTS idx_whitelist_gid ON whitelist(gid)`).
	Add(CmdAddWhitelist, engine.Query{
		Sqlite: `INSERT INTO whitelist (gid, user_id, user_name, added_by, timestamp)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (gid, user_id) DO UPDATE
			SET user_name = excluded.user_name, added_by = excluded.added_by, timestamp = excluded.timestamp`,
		Postgres: `INSERT INTO whitelist (gid, user_id, user_name, added_by, timestamp)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (gid, user_id) DO UPDATE
			SET user_name = EXCLUDED.user_name, added_by = EXCLUDED.added_by, timestamp = EXCLUDED.timestamp`,
	})

// NewWhitelist makes whitelist storage and creates the table if needed
func NewWhitelist(ctx context.Context, db *engine.SQL) (*Whitelist, error) {
	if db == nil {
		return nil, fmt.Errorf("no db provided")
	}
	cfg := engine.TableConfig{
		Name:          "whitelist",
		CreateTable:   CmdCreateWhitelistTable,
		CreateIndexes: CmdCreateWhitelistIndexes,
		QueriesMap:    whitelistQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init whitelist table: %w", err)
	}
	return &Whitelist{SQL: db, RWLocker: db.MakeLock()}, nil
}

// Add whitelists the user, re-adding updates name and timestamp
func (w *Whitelist) Add(ctx context.Context, entry WhitelistEntry) error {
	if entry.UserID == 0 {
		return fmt.Errorf("user id can't be zero")
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	w.Lock()
	defer w.Unlock()

	query, err := whitelistQueries.Pick(w.Type(), CmdAddWhitelist)
	if err != nil {
		return fmt.Errorf("failed to get add query: %w", err)
	}
	if _, err := w.ExecContext(ctx, query, w.GID(), entry.UserID, entry.UserName, entry.AddedBy,
		entry.Timestamp.UTC()); err != nil {
		return fmt.Errorf("failed to whitelist %s: %w", entry, err)
	}
	return nil
}

// Remove drops the user from the whitelist, ErrNotFound if it wasn't there
func (w *Whitelist) Remove(ctx context.Context, userID int64) error {
	w.Lock()
	defer w.Unlock()

	res, err := w.ExecContext(ctx, w.Adopt("DELETE FROM whitelist WHERE gid = ? AND user_id = ?"), w.GID(), userID)
	if err != nil {
		return fmt.Errorf("failed to remove %d from whitelist: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	return nil
}

// Get returns the whitelist entry of the user
func (w *Whitelist) Get(ctx context.Context, userID int64) (WhitelistEntry, error) {
	w.RLock()
	defer w.RUnlock()

	var res WhitelistEntry
	query := w.Adopt("SELECT user_id, user_name, added_by, timestamp FROM whitelist WHERE gid = ? AND user_id = ?")
	if err := w.GetContext(ctx, &res, query, w.GID(), userID); err != nil {
		return WhitelistEntry{}, notFound(err, fmt.Sprintf("failed to get whitelisted user %d", userID))
	}
	res.Timestamp = res.Timestamp.Local()
	return res, nil
}

// List returns all whitelisted users, sorted by user id
func (w *Whitelist) List(ctx context.Context) ([]WhitelistEntry, error) {
	w.RLock()
	defer w.RUnlock()

	res := []WhitelistEntry{}
	query := w.Adopt("SELECT user_id, user_name, added_by, timestamp FROM whitelist WHERE gid = ? ORDER BY user_id")
	if err := w.SelectContext(ctx, &res, query, w.GID()); err != nil {
		return nil, fmt.Errorf("failed to list whitelist: %w", err)
	}
	for i := range res {
		res[i].Timestamp = res[i].Timestamp.Local()
	}
	return res, nil
}

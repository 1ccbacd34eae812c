package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/strikeguard/app/storage/engine"
)

// Actions is the audit log of moderation actions
type Actions struct {
	*engine.SQL
	engine.RWLocker
	maxSize int
}

// Action is a single moderation action taken against the user
type Action struct {
	ID        int64     `db:"id" json:"id"`
	Kind      string    `db:"kind" json:"kind"`
	UserID    int64     `db:"user_id" json:"user_id"`
	UserName  string    `db:"user_name" json:"user_name,omitempty"`
	Reason    string    `db:"reason" json:"reason,omitempty"`
	Message   string    `db:"message" json:"message,omitempty"`
	Strikes   int       `db:"strikes" json:"strikes"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// all actions queries
const (
	CmdCreateActionsTable engine.DBCmd = iota + 400
	CmdCreateActionsIndexes
)

var actionsQueries = engine.NewQueryMap().
	Add(CmdCreateActionsTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS actions (
			id INTEGER PRIMARY KEY,
			gid TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL,
			user_id INTEGER NOT NULL,
			user_name TEXT NOT NULL DEFAULT '',
			reason TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			strikes INTEGER NOT NULL DEFAULT 0,
			timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		Postgres: `CREATE TABLE IF NOT EXISTS actions (
			id SERIAL PRIMARY KEY,
			gid TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL,
			user_id BIGINT NOT NULL,
			user_name TEXT NOT NULL DEFAULT '',
			reason TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			strikes INTEGER NOT NULL DEFAULT 0,
			timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}).
	AddSame(CmdCreateActionsIndexes, `
		CREATE INDEX IF NOT EXISTS idx_actions_gid_ts ON actions(gid, timestamp DESC);
		CREATE INDEX IF NOT EXISTS idx_actions_gid_user ON actions(gid, user_id)`)

// NewActions makes the audit log storage. Positive maxSize limits the number of kept records per group.
func NewActions(ctx context.Context, db *engine.SQL, maxSize int) (*Actions, error) {
	if db == nil {
		return nil, fmt.Errorf("no db provided")
	}
	cfg := engine.TableConfig{
		Name:          "actions",
		CreateTable:   CmdCreateActionsTable,
		CreateIndexes: CmdCreateActionsIndexes,
		QueriesMap:    actionsQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init actions table: %w", err)
	}
	return &Actions{SQL: db, RWLocker: db.MakeLock(), maxSize: maxSize}, nil
}

// Add records the action and trims the log to maxSize
func (a *Actions) Add(ctx context.Context, act Action) error {
	if act.Kind == "" {
		return fmt.Errorf("empty action kind")
	}
	if act.Timestamp.IsZero() {
		act.Timestamp = time.Now()
	}

	a.Lock()
	defer a.Unlock()

	tx, err := a.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	query := a.Adopt(`INSERT INTO actions (gid, kind, user_id, user_name, reason, message, strikes, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if _, err = tx.ExecContext(ctx, query, a.GID(), act.Kind, act.UserID, act.UserName, act.Reason, act.Message,
		act.Strikes, act.Timestamp.UTC()); err != nil {
		return fmt.Errorf("failed to add %s action for %d: %w", act.Kind, act.UserID, err)
	}

	if a.maxSize > 0 {
		cleanup := a.Adopt(`DELETE FROM actions WHERE gid = ? AND id NOT IN (
			SELECT id FROM actions WHERE gid = ? ORDER BY timestamp DESC, id DESC LIMIT ?)`)
		if _, err = tx.ExecContext(ctx, cleanup, a.GID(), a.GID(), a.maxSize); err != nil {
			return fmt.Errorf("failed to trim actions: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit action: %w", err)
	}
	return nil
}

// Read returns up to limit latest actions, newest first
func (a *Actions) Read(ctx context.Context, limit int) ([]Action, error) {
	a.RLock()
	defer a.RUnlock()

	res := []Action{}
	query := a.Adopt(`SELECT id, kind, user_id, user_name, reason, message, strikes, timestamp FROM actions
		WHERE gid = ? ORDER BY timestamp DESC, id DESC LIMIT ?`)
	if err := a.SelectContext(ctx, &res, query, a.GID(), limit); err != nil {
		return nil, fmt.Errorf("failed to read actions: %w", err)
	}
	return localize(res), nil
}

// ReadUser returns up to limit latest actions of the user, newest first
func (a *Actions) ReadUser(ctx context.Context, userID int64, limit int) ([]Action, error) {
	a.RLock()
	defer a.RUnlock()

	res := []Action{}
	query := a.Adopt(`SELECT id, kind, user_id, user_name, reason, message, strikes, timestamp FROM actions
		WHERE gid = ? AND user_id = ? ORDER BY timestamp DESC, id DESC LIMIT ?`)
	if err := a.SelectContext(ctx, &res, query, a.GID(), userID, limit); err != nil {
		return nil, fmt.Errorf("failed to read actions of %d: %w", userID, err)
	}
	return localize(res), nil
}

func localize(acts []Action) []Action {
	for i := range acts {
		acts[i].Timestamp = acts[i].Timestamp.Local()
	}
	return acts
}

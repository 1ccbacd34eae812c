package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/umputun/strikeguard/app/storage/engine"
	"github.com/umputun/strikeguard/lib/moderation"
)

// Snapshots keeps serialized engine state, one blob per kind and group. Implements moderation.SnapshotStore.
type Snapshots struct {
	*engine.SQL
	engine.RWLocker
}

// SnapshotInfo describes a stored snapshot without its data
type SnapshotInfo struct {
	Kind      string    `db:"kind" json:"kind"`
	Size      int       `db:"size" json:"size"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// all snapshot queries
const (
	CmdCreateSnapshotsTable engine.DBCmd = iota + 200
	CmdCreateSnapshotsIndexes
	CmdSaveSnapshot
)

var snapshotsQueries = engine.NewQueryMap().
	Add(CmdCreateSnapshotsTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY,
			gid TEXT NOT NULL,
			kind TEXT NOT NULL,
			data TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(gid, kind)
		)`,
		Postgres: `CREATE TABLE IF NOT EXISTS snapshots (
			id SERIAL PRIMARY KEY,
			gid TEXT NOT NULL,
			kind TEXT NOT NULL,
			data TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(gid, kind)
		)`,
	}).
	AddSame(CmdCreateSnapshotsIndexes, `CREATE INDEX IF NOT EXISTS idx_snapshots_gid ON snapshots(gid)`).
	Add(CmdSaveSnapshot, engine.Query{
		Sqlite: `INSERT INTO snapshots (gid, kind, data, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (gid, kind) DO UPDATE
			SET data = excluded.data, updated_at = excluded.updated_at`,
		Postgres: `INSERT INTO snapshots (gid, kind, data, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (gid, kind) DO UPDATE
			SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
	})

// NewSnapshots makes snapshot storage and creates the table if needed
func NewSnapshots(ctx context.Context, db *engine.SQL) (*Snapshots, error) {
	if db == nil {
		return nil, fmt.Errorf("no db provided")
	}
	cfg := engine.TableConfig{
		Name:          "snapshots",
		CreateTable:   CmdCreateSnapshotsTable,
		CreateIndexes: CmdCreateSnapshotsIndexes,
		QueriesMap:    snapshotsQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init snapshots table: %w", err)
	}
	return &Snapshots{SQL: db, RWLocker: db.MakeLock()}, nil
}

// Load returns the snapshot of the kind. Missing snapshot reported as moderation.ErrNoSnapshot.
func (s *Snapshots) Load(ctx context.Context, kind string) ([]byte, error) {
	s.RLock()
	defer s.RUnlock()

	var data string
	query := s.Adopt("SELECT data FROM snapshots WHERE gid = ? AND kind = ?")
	if err := s.GetContext(ctx, &data, query, s.GID(), kind); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", moderation.ErrNoSnapshot, kind)
		}
		return nil, fmt.Errorf("failed to load %s snapshot: %w", kind, err)
	}
	return []byte(data), nil
}

// Save stores the snapshot, replacing the previous one of the same kind
func (s *Snapshots) Save(ctx context.Context, kind string, data []byte) error {
	if kind == "" {
		return fmt.Errorf("empty snapshot kind")
	}
	if len(data) == 0 {
		return fmt.Errorf("empty %s snapshot", kind)
	}

	s.Lock()
	defer s.Unlock()

	query, err := snapshotsQueries.Pick(s.Type(), CmdSaveSnapshot)
	if err != nil {
		return fmt.Errorf("failed to get save query: %w", err)
	}
	if _, err := s.ExecContext(ctx, query, s.GID(), kind, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save %s snapshot: %w", kind, err)
	}
	return nil
}

// List returns info about all stored snapshots of the group, sorted by kind
func (s *Snapshots) List(ctx context.Context) ([]SnapshotInfo, error) {
	s.RLock()
	defer s.RUnlock()

	res := []SnapshotInfo{}
	query := s.Adopt("SELECT kind, LENGTH(data) AS size, updated_at FROM snapshots WHERE gid = ? ORDER BY kind")
	if err := s.SelectContext(ctx, &res, query, s.GID()); err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return res, nil
}

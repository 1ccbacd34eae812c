package engine

import (
	"fmt"
	"sync"
)

// DBCmd identifies a query in a QueryMap
type DBCmd int

// Query is a statement spelled for each supported dialect
type Query struct {
	Sqlite   string
	Postgres string
}

// QueryMap keeps dialect-specific statements by command, built once at init and read-only afterwards
type QueryMap struct {
	queries map[DBCmd]Query
}

// NewQueryMap makes an empty QueryMap
func NewQueryMap() *QueryMap {
	return &QueryMap{queries: make(map[DBCmd]Query)}
}

// Add sets the statement for cmd, replacing the previous one
func (q *QueryMap) Add(cmd DBCmd, query Query) *QueryMap {
	q.queries[cmd] = query
	return q
}

// AddSame sets a statement valid for all dialects
func (q *QueryMap) AddSame(cmd DBCmd, query string) *QueryMap {
	return q.Add(cmd, Query{Sqlite: query, Postgres: query})
}

// Pick returns the statement of cmd for the engine type
func (q *QueryMap) Pick(dbType Type, cmd DBCmd) (string, error) {
	query, ok := q.queries[cmd]
	if !ok {
		return "", fmt.Errorf("unsupported command type %d", cmd)
	}
	switch dbType {
	case Sqlite:
		return query.Sqlite, nil
	case Postgres:
		return query.Postgres, nil
	default:
		return "", fmt.Errorf("unsupported database type %q", dbType)
	}
}

// RWLocker is implemented by sync.RWMutex and NoopLocker
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// NoopLocker is used for engines serializing access on their own
type NoopLocker struct{}

// Lock does nothing
func (NoopLocker) Lock() {}

// Unlock does nothing
func (NoopLocker) Unlock() {}

// RLock does nothing
func (NoopLocker) RLock() {}

// RUnlock does nothing
func (NoopLocker) RUnlock() {}

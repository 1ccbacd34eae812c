package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/umputun/strikeguard/lib/strikes"
)

//go:generate moq --out mocks/snapshot_store.go --pkg mocks --skip-ensure --with-resets . SnapshotStore

// snapshotVersion is the current layout version of both snapshots
const snapshotVersion = 1

// ErrSnapshotVersion is returned when restoring a snapshot of unsupported version
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

// snapshot kinds, one per persisted component
const (
	KindLedger   = "ledger"
	KindLearning = "learning"
)

// SnapshotStore is a durable storage for snapshots.
// Load returns an error wrapping ErrNoSnapshot if nothing was saved for the kind.
type SnapshotStore interface {
	Load(ctx context.Context, kind string) ([]byte, error)
	Save(ctx context.Context, kind string, data []byte) error
}

// ErrNoSnapshot means nothing was saved yet
var ErrNoSnapshot = errors.New("no snapshot")

type ledgerSnapshot struct {
	Version  int              `json:"version"`
	SavedAt  time.Time        `json:"saved_at"`
	Records  []strikes.Record `json:"user_strikes"`
	Banned   []int64          `json:"banned_users"`
	Settings Settings         `json:"settings"`
}

type learningSnapshot struct {
	Version        int                   `json:"version"`
	SavedAt        time.Time             `json:"saved_at"`
	FalsePositives []Feedback            `json:"false_positives"`
	FalseNegatives []Feedback            `json:"false_negatives"`
	SpamPatterns   []string              `json:"learned_spam_patterns"`
	SafePatterns   []string              `json:"learned_safe_patterns"`
	Reports        map[string][]Feedback `json:"user_feedback,omitempty"`
}

// Snapshot serializes records, bans and settings
func (l *Ledger) Snapshot() ([]byte, error) {
	l.lock.RLock()
	snap := ledgerSnapshot{
		Version:  snapshotVersion,
		SavedAt:  l.nowFn(),
		Records:  l.sortedRecords(),
		Banned:   l.bannedIDs(),
		Settings: l.settings,
	}
	l.lock.RUnlock()

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("can't marshal ledger: %w", err)
	}
	return data, nil
}

// Restore replaces the ledger state with the snapshot. On error the state is not changed.
func (l *Ledger) Restore(data []byte) error {
	var snap ledgerSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("can't unmarshal ledger: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}
	if err := snap.Settings.Validate(); err != nil {
		return fmt.Errorf("bad settings in ledger snapshot: %w", err)
	}

	banned := make(map[int64]struct{}, len(snap.Banned))
	for _, id := range snap.Banned {
		banned[id] = struct{}{}
	}
	records := make(map[int64]strikes.Record, len(snap.Records))
	for _, rec := range snap.Records {
		if rec.Count <= 0 {
			return fmt.Errorf("bad strike count %d for user %d", rec.Count, rec.UserID)
		}
		if _, ok := banned[rec.UserID]; ok {
			continue // ban supersedes strikes
		}
		if rec.Reasons == nil {
			rec.Reasons = []strikes.Reason{}
		}
		records[rec.UserID] = rec
	}

	l.lock.Lock()
	defer l.lock.Unlock()
	l.records, l.banned, l.settings = records, banned, snap.Settings
	return nil
}

// Snapshot serializes logs and learned patterns
func (l *LearningStore) Snapshot() ([]byte, error) {
	l.lock.RLock()
	snap := learningSnapshot{
		Version:        snapshotVersion,
		SavedAt:        l.nowFn(),
		FalsePositives: append([]Feedback{}, l.falsePositives...),
		FalseNegatives: append([]Feedback{}, l.falseNegatives...),
		SpamPatterns:   sortedKeys(l.spam),
		SafePatterns:   sortedKeys(l.safe),
		Reports:        make(map[string][]Feedback, len(l.reports)),
	}
	for k, v := range l.reports {
		snap.Reports[k] = append([]Feedback{}, v...)
	}
	l.lock.RUnlock()

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("can't marshal learning data: %w", err)
	}
	return data, nil
}

// Restore replaces the learning state with the snapshot. On error the state is not changed.
func (l *LearningStore) Restore(data []byte) error {
	var snap learningSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("can't unmarshal learning data: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}

	toSet := func(src []string) map[string]struct{} {
		res := make(map[string]struct{}, len(src))
		for _, s := range src {
			res[s] = struct{}{}
		}
		return res
	}
	orEmpty := func(src []Feedback) []Feedback {
		if src == nil {
			return []Feedback{}
		}
		return src
	}
	reports := snap.Reports
	if reports == nil {
		reports = map[string][]Feedback{}
	}

	l.lock.Lock()
	defer l.lock.Unlock()
	l.safe, l.spam = toSet(snap.SafePatterns), toSet(snap.SpamPatterns)
	l.falsePositives, l.falseNegatives = orEmpty(snap.FalsePositives), orEmpty(snap.FalseNegatives)
	l.reports = reports
	return nil
}

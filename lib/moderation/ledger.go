package moderation

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/umputun/strikeguard/lib/strikes"
)

// ErrInvalidSetting is returned for out of range configuration values, the previous value is kept
var ErrInvalidSetting = errors.New("invalid setting")

// default settings
const (
	DefaultStrikeLimit = 3
	DefaultResetHours  = 24
	DefaultThreshold   = 0.5
)

// Settings is the runtime-mutable configuration of the engine.
type Settings struct {
	StrikeLimit int     `json:"strike_limit"`         // strikes to ban, > 0
	ResetHours  int     `json:"reset_interval_hours"` // hours after the last strike to forget strikes, > 0
	Threshold   float64 `json:"threshold"`            // classifier probability cutoff, (0, 1)
}

// DefaultSettings returns settings with default values
func DefaultSettings() Settings {
	return Settings{StrikeLimit: DefaultStrikeLimit, ResetHours: DefaultResetHours, Threshold: DefaultThreshold}
}

// Validate checks all settings are in range
func (s Settings) Validate() error {
	if s.StrikeLimit <= 0 {
		return fmt.Errorf("%w: strike limit must be positive, got %d", ErrInvalidSetting, s.StrikeLimit)
	}
	if s.ResetHours <= 0 {
		return fmt.Errorf("%w: reset window must be positive, got %d hours", ErrInvalidSetting, s.ResetHours)
	}
	if !(s.Threshold > 0 && s.Threshold < 1) {
		return fmt.Errorf("%w: threshold must be in (0, 1), got %v", ErrInvalidSetting, s.Threshold)
	}
	return nil
}

// ResetWindow returns the reset window as a duration
func (s Settings) ResetWindow() time.Duration { return time.Duration(s.ResetHours) * time.Hour }

// Ledger tracks strikes and bans per user, thread-safe.
// All mutations are serialized by a single lock, so strikes of a user are applied in call order
// and a user is never both banned and holding a strike record.
type Ledger struct {
	lock     sync.RWMutex
	records  map[int64]strikes.Record
	banned   map[int64]struct{}
	settings Settings
	nowFn    func() time.Time
}

// NewLedger makes an empty ledger. Invalid settings are replaced with defaults.
func NewLedger(s Settings) *Ledger {
	if err := s.Validate(); err != nil {
		s = DefaultSettings()
	}
	return &Ledger{
		records:  map[int64]strikes.Record{},
		banned:   map[int64]struct{}{},
		settings: s,
		nowFn:    time.Now,
	}
}

// AddStrike records a violation and returns the new strike count and whether the limit is reached.
// A strike arriving after the reset window since the previous one starts the count over.
// For a banned user nothing is recorded and (0, true) is returned.
func (l *Ledger) AddStrike(user strikes.User, reason, msg string) (count int, shouldBan bool) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if _, ok := l.banned[user.ID]; ok {
		return 0, true
	}

	now := l.nowFn()
	rec, ok := l.records[user.ID]
	if !ok || now.Sub(rec.LastStrike) >= l.settings.ResetWindow() {
		rec = strikes.Record{UserID: user.ID, Reasons: []strikes.Reason{}}
	}
	rec.UserName = user.Name()
	rec.Count++
	rec.LastStrike = now
	rec.Reasons = append(rec.Reasons, strikes.NewReason(now, reason, msg))
	l.records[user.ID] = rec
	return rec.Count, rec.Count >= l.settings.StrikeLimit
}

// Ban adds the user to the ban set and drops the strike record
func (l *Ledger) Ban(userID int64) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.banned[userID] = struct{}{}
	delete(l.records, userID)
}

// Unban removes the user from the ban set, returns true if the user was banned
func (l *Ledger) Unban(userID int64) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	if _, ok := l.banned[userID]; !ok {
		return false
	}
	delete(l.banned, userID)
	return true
}

// ResetStrikes drops the strike record, returns true if one existed
func (l *Ledger) ResetStrikes(userID int64) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	if _, ok := l.records[userID]; !ok {
		return false
	}
	delete(l.records, userID)
	return true
}

// IsBanned reports whether the user is in the ban set
func (l *Ledger) IsBanned(userID int64) bool {
	l.lock.RLock()
	defer l.lock.RUnlock()
	_, ok := l.banned[userID]
	return ok
}

// GetStrikes returns a copy of the user record, a clean record for unknown users
func (l *Ledger) GetStrikes(userID int64) strikes.Record {
	l.lock.RLock()
	defer l.lock.RUnlock()
	rec, ok := l.records[userID]
	if !ok {
		return strikes.Record{UserID: userID, Reasons: []strikes.Reason{}}
	}
	return rec.Clone()
}

// Banned returns ids of all banned users, sorted
func (l *Ledger) Banned() []int64 {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.bannedIDs()
}

// Records returns copies of all strike records, sorted by user id
func (l *Ledger) Records() []strikes.Record {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.sortedRecords()
}

// Settings returns the current settings
func (l *Ledger) Settings() Settings {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.settings
}

// SetStrikeLimit changes the number of strikes to ban
func (l *Ledger) SetStrikeLimit(n int) error {
	return l.update(func(s *Settings) { s.StrikeLimit = n })
}

// SetResetWindow changes the reset window, in hours
func (l *Ledger) SetResetWindow(hours int) error {
	return l.update(func(s *Settings) { s.ResetHours = hours })
}

// SetThreshold changes the classifier probability cutoff
func (l *Ledger) SetThreshold(f float64) error {
	return l.update(func(s *Settings) { s.Threshold = f })
}

// update applies fn to a copy of the settings and keeps the result only if valid
func (l *Ledger) update(fn func(s *Settings)) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	upd := l.settings
	fn(&upd)
	if err := upd.Validate(); err != nil {
		return err
	}
	l.settings = upd
	return nil
}

// clear drops all records and bans, settings are kept
func (l *Ledger) clear() {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.records = map[int64]strikes.Record{}
	l.banned = map[int64]struct{}{}
}

func (l *Ledger) bannedIDs() []int64 {
	res := make([]int64, 0, len(l.banned))
	for id := range l.banned {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func (l *Ledger) sortedRecords() []strikes.Record {
	res := make([]strikes.Record, 0, len(l.records))
	for _, rec := range l.records {
		res = append(res, rec.Clone())
	}
	sort.Slice(res, func(i, j int) bool { return res[i].UserID < res[j].UserID })
	return res
}

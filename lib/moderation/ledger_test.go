package moderation

import (
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/strikeguard/lib/strikes"
)

// newTestLedger makes a ledger with a controllable clock
func newTestLedger(s Settings) (l *Ledger, advance func(time.Duration)) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l = NewLedger(s)
	l.nowFn = func() time.Time { return now }
	return l, func(d time.Duration) { now = now.Add(d) }
}

func TestLedger_AddStrike(t *testing.T) {
	l, _ := newTestLedger(DefaultSettings())
	user := strikes.User{ID: 42, UserName: "spammer"}

	count, ban := l.AddStrike(user, "explicit_keywords", "msg 1")
	assert.Equal(t, 1, count)
	assert.False(t, ban)
	count, ban = l.AddStrike(user, "explicit_keywords", "msg 2")
	assert.Equal(t, 2, count)
	assert.False(t, ban)
	count, ban = l.AddStrike(user, "ml_model", "msg 3")
	assert.Equal(t, 3, count)
	assert.True(t, ban, "limit reached")

	rec := l.GetStrikes(42)
	assert.Equal(t, int64(42), rec.UserID)
	assert.Equal(t, "spammer", rec.UserName)
	assert.Equal(t, 3, rec.Count)
	require.Len(t, rec.Reasons, 3)
	assert.Equal(t, "ml_model", rec.Reasons[2].Reason)
	assert.Equal(t, "msg 3", rec.Reasons[2].Message)
	assert.False(t, l.IsBanned(42), "ledger signals the ban, doesn't apply it")
}

func TestLedger_ResetWindow(t *testing.T) {
	l, advance := newTestLedger(DefaultSettings())
	user := strikes.User{ID: 1}

	count, ban := l.AddStrike(user, "r", "m")
	assert.Equal(t, 1, count)
	assert.False(t, ban)

	advance(23 * time.Hour)
	count, _ = l.AddStrike(user, "r", "m")
	assert.Equal(t, 2, count, "within the window")

	advance(25 * time.Hour)
	count, ban = l.AddStrike(user, "r", "m")
	assert.Equal(t, 1, count, "window expired")
	assert.False(t, ban)
	assert.Len(t, l.GetStrikes(1).Reasons, 1, "reasons reset with the count")

	advance(24 * time.Hour)
	count, _ = l.AddStrike(user, "r", "m")
	assert.Equal(t, 1, count, "strikes a full window apart start over")
}

func TestLedger_Ban(t *testing.T) {
	l, _ := newTestLedger(DefaultSettings())
	user := strikes.User{ID: 7, DisplayName: "John"}
	l.AddStrike(user, "r", "m")
	require.Equal(t, 1, l.GetStrikes(7).Count)

	l.Ban(7)
	assert.True(t, l.IsBanned(7))
	assert.Equal(t, strikes.Record{UserID: 7, Reasons: []strikes.Reason{}}, l.GetStrikes(7), "ban drops strikes")
	assert.Equal(t, []int64{7}, l.Banned())
	assert.Empty(t, l.Records())

	count, ban := l.AddStrike(user, "r", "m")
	assert.Equal(t, 0, count)
	assert.True(t, ban)
	assert.Empty(t, l.Records(), "banned users don't collect strikes")

	l.Ban(7)
	assert.Equal(t, []int64{7}, l.Banned(), "ban is idempotent")

	assert.True(t, l.Unban(7))
	assert.False(t, l.Unban(7))
	assert.False(t, l.IsBanned(7))
	count, _ = l.AddStrike(user, "r", "m")
	assert.Equal(t, 1, count, "unbanned user starts clean")
}

func TestLedger_ResetStrikes(t *testing.T) {
	l, _ := newTestLedger(DefaultSettings())
	assert.False(t, l.ResetStrikes(1))
	l.AddStrike(strikes.User{ID: 1}, "r", "m")
	assert.True(t, l.ResetStrikes(1))
	assert.Equal(t, 0, l.GetStrikes(1).Count)
	assert.False(t, l.ResetStrikes(1))
}

func TestLedger_GetStrikesIsCopy(t *testing.T) {
	l, _ := newTestLedger(DefaultSettings())
	l.AddStrike(strikes.User{ID: 1}, "r", "m")
	rec := l.GetStrikes(1)
	rec.Reasons[0].Reason = "changed"
	rec.Count = 100
	assert.Equal(t, "r", l.GetStrikes(1).Reasons[0].Reason)
	assert.Equal(t, 1, l.GetStrikes(1).Count)
}

func TestLedger_LongMessageTruncated(t *testing.T) {
	l, _ := newTestLedger(DefaultSettings())
	l.AddStrike(strikes.User{ID: 1}, "r", strings.Repeat("я", 300))
	assert.Len(t, []rune(l.GetStrikes(1).Reasons[0].Message), strikes.MaxExcerpt)
}

func TestLedger_Records(t *testing.T) {
	l, _ := newTestLedger(DefaultSettings())
	for _, id := range []int64{30, 10, 20} {
		l.AddStrike(strikes.User{ID: id}, "r", "m")
	}
	l.Ban(99)
	l.Ban(5)

	recs := l.Records()
	require.Len(t, recs, 3)
	assert.Equal(t, []int64{10, 20, 30}, []int64{recs[0].UserID, recs[1].UserID, recs[2].UserID})
	assert.Equal(t, []int64{5, 99}, l.Banned())
}

func TestLedger_Settings(t *testing.T) {
	l, _ := newTestLedger(DefaultSettings())
	assert.Equal(t, Settings{StrikeLimit: 3, ResetHours: 24, Threshold: 0.5}, l.Settings())

	require.NoError(t, l.SetStrikeLimit(5))
	require.NoError(t, l.SetResetWindow(48))
	require.NoError(t, l.SetThreshold(0.7))
	assert.Equal(t, Settings{StrikeLimit: 5, ResetHours: 48, Threshold: 0.7}, l.Settings())

	for _, err := range []error{l.SetStrikeLimit(0), l.SetStrikeLimit(-1), l.SetResetWindow(0), l.SetThreshold(0),
		l.SetThreshold(1), l.SetThreshold(1.5)} {
		assert.ErrorIs(t, err, ErrInvalidSetting)
	}
	assert.Equal(t, Settings{StrikeLimit: 5, ResetHours: 48, Threshold: 0.7}, l.Settings(), "invalid values not applied")

	require.NoError(t, l.SetStrikeLimit(1))
	_, ban := l.AddStrike(strikes.User{ID: 1}, "r", "m")
	assert.True(t, ban, "new limit applied")
}

func TestNewLedger_InvalidSettings(t *testing.T) {
	l := NewLedger(Settings{StrikeLimit: 0, ResetHours: 24, Threshold: 0.5})
	assert.Equal(t, DefaultSettings(), l.Settings())
}

func TestSettings_ResetWindow(t *testing.T) {
	assert.Equal(t, 36*time.Hour, Settings{ResetHours: 36}.ResetWindow())
}

func TestLedger_ConcurrentStrikes(t *testing.T) {
	l := NewLedger(Settings{StrikeLimit: 50, ResetHours: 24, Threshold: 0.5})
	user := strikes.User{ID: 1}

	var mu sync.Mutex
	counts := []int{}
	bans := 0
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			count, ban := l.AddStrike(user, "r", "m")
			mu.Lock()
			defer mu.Unlock()
			counts = append(counts, count)
			if ban {
				bans++
			}
		}()
	}
	wg.Wait()

	sort.Ints(counts)
	for i, c := range counts {
		assert.Equal(t, i+1, c, "each strike observed exactly once")
	}
	assert.Equal(t, 51, bans)
	assert.Equal(t, 100, l.GetStrikes(1).Count)
}

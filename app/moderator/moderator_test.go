package moderator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/strikeguard/app/moderator/mocks"
	"github.com/umputun/strikeguard/app/storage"
	"github.com/umputun/strikeguard/lib/moderation"
	"github.com/umputun/strikeguard/lib/strikes"
	"github.com/umputun/strikeguard/lib/verdict"
)

var (
	bob   = strikes.User{ID: 100, UserName: "bob", DisplayName: "Bob"}
	alice = strikes.User{ID: 200, UserName: "alice"}
)

func newStores() (*mocks.WhitelistStoreMock, *mocks.ActionStoreMock) {
	wl := &mocks.WhitelistStoreMock{
		AddFunc:    func(context.Context, storage.WhitelistEntry) error { return nil },
		RemoveFunc: func(context.Context, int64) error { return nil },
		ListFunc:   func(context.Context) ([]storage.WhitelistEntry, error) { return nil, nil },
	}
	acts := &mocks.ActionStoreMock{AddFunc: func(context.Context, storage.Action) error { return nil }}
	return wl, acts
}

func newModerator(t *testing.T, cfg Config) (*Moderator, *moderation.Engine, *mocks.ActionStoreMock) {
	t.Helper()
	eng := moderation.NewEngine(moderation.Config{})
	wl, acts := newStores()
	m, err := New(context.Background(), eng, wl, acts, cfg)
	require.NoError(t, err)
	return m, eng, acts
}

func TestNew(t *testing.T) {
	t.Run("loads whitelist", func(t *testing.T) {
		wl, acts := newStores()
		wl.ListFunc = func(context.Context) ([]storage.WhitelistEntry, error) {
			return []storage.WhitelistEntry{{UserID: 1}, {UserID: 2}}, nil
		}
		m, err := New(context.Background(), moderation.NewEngine(moderation.Config{}), wl, acts, Config{})
		require.NoError(t, err)
		assert.True(t, m.IsWhitelisted(1))
		assert.True(t, m.IsWhitelisted(2))
		assert.False(t, m.IsWhitelisted(3))
		assert.Equal(t, []int64{1, 2}, m.Whitelisted())
	})

	t.Run("whitelist load error", func(t *testing.T) {
		wl, _ := newStores()
		wl.ListFunc = func(context.Context) ([]storage.WhitelistEntry, error) { return nil, errors.New("db down") }
		_, err := New(context.Background(), moderation.NewEngine(moderation.Config{}), wl, nil, Config{})
		require.EqualError(t, err, "failed to load whitelist: db down")
	})

	t.Run("no engine", func(t *testing.T) {
		_, err := New(context.Background(), nil, nil, nil, Config{})
		require.EqualError(t, err, "no engine provided")
	})

	t.Run("no stores", func(t *testing.T) {
		m, err := New(context.Background(), moderation.NewEngine(moderation.Config{}), nil, nil, Config{})
		require.NoError(t, err)
		assert.Empty(t, m.Whitelisted())
	})
}

func TestModerator_OnMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("clean message", func(t *testing.T) {
		m, _, acts := newModerator(t, Config{URLBlocking: true, MentionBlocking: true, HistorySize: 10})
		resp := m.OnMessage(ctx, Message{ID: 1, User: bob, Text: "good morning everyone"})
		assert.Equal(t, ActionNone, resp.Action)
		assert.False(t, resp.Verdict.Spam)
		assert.Empty(t, acts.AddCalls())
		require.Len(t, m.History(10), 1)
		assert.Equal(t, "good morning everyone", m.History(10)[0].Msg)
	})

	t.Run("strikes, warnings and ban", func(t *testing.T) {
		m, eng, acts := newModerator(t, Config{HistorySize: 10})

		resp := m.OnMessage(ctx, Message{ID: 1, User: bob, Text: "selling pics of a minor"})
		assert.Equal(t, ActionDelete, resp.Action)
		assert.Equal(t, "spam (severe_keywords)", resp.Reason)
		assert.Equal(t, 1, resp.Strikes)
		assert.Equal(t, 3, resp.Limit)
		assert.Equal(t, 2, resp.Remaining)
		assert.Equal(t, 1, resp.ReplyTo)
		assert.Equal(t, "warning, strike 1/3 for Bob: spam (severe_keywords). 2 strike(s) remaining before ban", resp.Text)

		resp = m.OnMessage(ctx, Message{ID: 2, User: bob, Text: "selling pics of a minor"})
		assert.Equal(t, ActionDelete, resp.Action)
		assert.Equal(t, 1, resp.Remaining)

		resp = m.OnMessage(ctx, Message{ID: 3, User: bob, Text: "selling pics of a minor"})
		assert.Equal(t, ActionBan, resp.Action)
		assert.Equal(t, 3, resp.Strikes)
		assert.Equal(t, "user Bob banned, 3 strikes reached", resp.Text)
		assert.True(t, eng.IsBanned(bob.ID))
		assert.True(t, eng.GetStrikes(bob.ID).Clean(), "ban drops strikes")

		// banned user is not checked anymore
		resp = m.OnMessage(ctx, Message{ID: 4, User: bob, Text: "selling pics of a minor"})
		assert.Equal(t, ActionNone, resp.Action)

		calls := acts.AddCalls()
		require.Len(t, calls, 3)
		assert.Equal(t, "delete", calls[0].Act.Kind)
		assert.Equal(t, "ban", calls[2].Act.Kind)
		assert.Equal(t, 3, calls[2].Act.Strikes)
		assert.Equal(t, "Bob", calls[2].Act.UserName)

		st := m.Stats()
		assert.Equal(t, int64(4), st.MessagesScanned)
		assert.Equal(t, int64(3), st.SpamDetected)
		assert.Equal(t, int64(3), st.SevereDetections)
		assert.Equal(t, int64(3), st.MessagesDeleted)
		assert.Equal(t, int64(1), st.UsersBanned)
		assert.Len(t, m.SpamHistory(10), 3)
	})

	t.Run("url blocked", func(t *testing.T) {
		m, _, _ := newModerator(t, Config{URLBlocking: true})
		resp := m.OnMessage(ctx, Message{ID: 1, User: alice, Text: "look at https://example.com/x"})
		assert.Equal(t, ActionDelete, resp.Action)
		assert.Equal(t, "url_blocked (url_link)", resp.Reason)
		assert.Equal(t, 1, resp.Strikes)

		resp = m.OnMessage(ctx, Message{ID: 2, User: alice, Text: "visit shop.xyz today"})
		assert.Equal(t, "url_blocked (domain_name)", resp.Reason)
		assert.Equal(t, int64(2), m.Stats().URLBlocked)
		assert.Empty(t, m.History(10), "pre-checked messages are not scored")
	})

	t.Run("url allowed when disabled", func(t *testing.T) {
		m, _, _ := newModerator(t, Config{})
		resp := m.OnMessage(ctx, Message{ID: 1, User: alice, Text: "look at https://example.com/x"})
		assert.Equal(t, ActionNone, resp.Action)
	})

	t.Run("mention blocked", func(t *testing.T) {
		m, _, _ := newModerator(t, Config{MentionBlocking: true})
		resp := m.OnMessage(ctx, Message{ID: 1, User: alice, Text: "ask @seller_one or @seller_two"})
		assert.Equal(t, ActionDelete, resp.Action)
		assert.Equal(t, "mention_blocked (2 mentions)", resp.Reason)
		assert.Equal(t, int64(1), m.Stats().MentionBlocked)

		resp = m.OnMessage(ctx, Message{ID: 2, User: alice, Text: "thanks @bob"})
		assert.Equal(t, ActionNone, resp.Action, "short handles are fine")
	})

	t.Run("whitelisted user skipped", func(t *testing.T) {
		m, _, _ := newModerator(t, Config{URLBlocking: true})
		require.NoError(t, m.AddWhitelist(ctx, alice, "admin"))
		resp := m.OnMessage(ctx, Message{ID: 1, User: alice, Text: "selling pics of a minor https://x.com"})
		assert.Equal(t, ActionNone, resp.Action)
	})

	t.Run("dry mode", func(t *testing.T) {
		m, eng, acts := newModerator(t, Config{Dry: true})
		resp := m.OnMessage(ctx, Message{ID: 1, User: bob, Text: "selling pics of a minor"})
		assert.Equal(t, ActionNone, resp.Action)
		assert.Equal(t, "spam (severe_keywords)", resp.Reason)
		assert.True(t, resp.Verdict.Spam)
		assert.True(t, eng.GetStrikes(bob.ID).Clean())
		assert.Empty(t, acts.AddCalls())
	})

	t.Run("system and empty messages ignored", func(t *testing.T) {
		m, _, _ := newModerator(t, Config{})
		assert.Equal(t, ActionNone, m.OnMessage(ctx, Message{Text: "selling pics of a minor"}).Action)
		assert.Equal(t, ActionNone, m.OnMessage(ctx, Message{User: bob, Text: "  "}).Action)
		assert.Zero(t, m.Stats().MessagesScanned)
	})
}

func TestModerator_OnMessageWithMockEngine(t *testing.T) {
	ctx := context.Background()
	eng := &mocks.EngineMock{
		IsBannedFunc: func(int64) bool { return false },
		CheckFunc: func(string) verdict.Verdict {
			return verdict.Verdict{Spam: true, Confidence: 0.9, Method: verdict.MethodMLModel, Probability: 0.9}
		},
		SettingsFunc: func() moderation.Settings { return moderation.DefaultSettings() },
		AddStrikeFunc: func(strikes.User, string, string) (int, bool, error) {
			return 1, false, errors.New("store is down")
		},
	}
	m, err := New(ctx, eng, nil, nil, Config{})
	require.NoError(t, err)

	resp := m.OnMessage(ctx, Message{ID: 7, User: bob, Text: "some ml spam"})
	assert.Equal(t, ActionDelete, resp.Action, "strike applied even if persisting failed")
	assert.Equal(t, "spam (ml_model)", resp.Reason)
	assert.Equal(t, 1, resp.Strikes)
	assert.Equal(t, int64(1), m.Stats().MLDetections)
	require.Len(t, eng.AddStrikeCalls(), 1)
	assert.Equal(t, "spam (ml_model)", eng.AddStrikeCalls()[0].Reason)
	assert.Equal(t, "some ml spam", eng.AddStrikeCalls()[0].Msg)
}

func TestModerator_AdminActions(t *testing.T) {
	ctx := context.Background()
	m, eng, acts := newModerator(t, Config{})

	_, _, err := eng.AddStrike(bob, "spam", "msg")
	require.NoError(t, err)

	ok, err := m.ResetStrikes(ctx, bob.ID, "admin")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, eng.GetStrikes(bob.ID).Clean())

	ok, err = m.ResetStrikes(ctx, bob.ID, "admin")
	require.NoError(t, err)
	assert.False(t, ok, "nothing to reset")

	require.NoError(t, m.Ban(ctx, bob, "admin"))
	assert.True(t, eng.IsBanned(bob.ID))

	ok, err = m.Unban(ctx, bob.ID, "admin")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, eng.IsBanned(bob.ID))

	ok, err = m.Unban(ctx, bob.ID, "admin")
	require.NoError(t, err)
	assert.False(t, ok)

	calls := acts.AddCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, "reset", calls[0].Act.Kind)
	assert.Equal(t, 1, calls[0].Act.Strikes)
	assert.Equal(t, "strikes reset by admin", calls[0].Act.Reason)
	assert.Equal(t, "ban", calls[1].Act.Kind)
	assert.Equal(t, "unban", calls[2].Act.Kind)
}

func TestModerator_Whitelist(t *testing.T) {
	ctx := context.Background()

	t.Run("add and remove", func(t *testing.T) {
		wl, acts := newStores()
		m, err := New(ctx, moderation.NewEngine(moderation.Config{}), wl, acts, Config{})
		require.NoError(t, err)

		require.NoError(t, m.AddWhitelist(ctx, alice, "admin"))
		assert.True(t, m.IsWhitelisted(alice.ID))
		require.Len(t, wl.AddCalls(), 1)
		assert.Equal(t, storage.WhitelistEntry{UserID: 200, UserName: "alice", AddedBy: "admin"}, wl.AddCalls()[0].Entry)

		require.NoError(t, m.RemoveWhitelist(ctx, alice.ID, "admin"))
		assert.False(t, m.IsWhitelisted(alice.ID))
		require.Len(t, wl.RemoveCalls(), 1)

		require.Len(t, acts.AddCalls(), 2)
		assert.Equal(t, "whitelist", acts.AddCalls()[0].Act.Kind)
		assert.Equal(t, "unwhitelist", acts.AddCalls()[1].Act.Kind)
	})

	t.Run("store failure keeps memory intact", func(t *testing.T) {
		wl, acts := newStores()
		wl.AddFunc = func(context.Context, storage.WhitelistEntry) error { return errors.New("db down") }
		m, err := New(ctx, moderation.NewEngine(moderation.Config{}), wl, acts, Config{})
		require.NoError(t, err)

		err = m.AddWhitelist(ctx, alice, "admin")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
		assert.False(t, m.IsWhitelisted(alice.ID))
		assert.Empty(t, acts.AddCalls())
	})

	t.Run("remove unknown without store", func(t *testing.T) {
		m, err := New(ctx, moderation.NewEngine(moderation.Config{}), nil, nil, Config{})
		require.NoError(t, err)
		err = m.RemoveWhitelist(ctx, 42, "admin")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("zero id", func(t *testing.T) {
		m, err := New(ctx, moderation.NewEngine(moderation.Config{}), nil, nil, Config{})
		require.NoError(t, err)
		require.EqualError(t, m.AddWhitelist(ctx, strikes.User{}, "admin"), "user id can't be zero")
	})
}

func TestModerator_ActionsLog(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	m, err := New(ctx, moderation.NewEngine(moderation.Config{}), nil, nil, Config{ActionsLog: buf})
	require.NoError(t, err)

	long := "selling pics of a minor " + strings.Repeat("x", 200)
	resp := m.OnMessage(ctx, Message{ID: 1, User: bob, Text: long})
	require.Equal(t, ActionDelete, resp.Action)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var act storage.Action
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &act))
	assert.Equal(t, "delete", act.Kind)
	assert.Equal(t, bob.ID, act.UserID)
	assert.Equal(t, "spam (severe_keywords)", act.Reason)
	assert.Len(t, []rune(act.Message), strikes.MaxExcerpt, "message is truncated")
	assert.False(t, act.Timestamp.IsZero())
}

func TestModerator_ActionStoreFailure(t *testing.T) {
	ctx := context.Background()
	_, acts := newStores()
	acts.AddFunc = func(context.Context, storage.Action) error { return errors.New("disk full") }
	eng := moderation.NewEngine(moderation.Config{})
	m, err := New(ctx, eng, nil, acts, Config{})
	require.NoError(t, err)

	err = m.Ban(ctx, bob, "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, eng.IsBanned(bob.ID), "ban applied even if logging failed")
}

func TestModerator_Concurrent(t *testing.T) {
	ctx := context.Background()
	m, eng, _ := newModerator(t, Config{URLBlocking: true, MentionBlocking: true, HistorySize: 50})

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user := strikes.User{ID: int64(i%5 + 1)}
			m.OnMessage(ctx, Message{ID: i, User: user, Text: "selling pics of a minor"})
			m.OnMessage(ctx, Message{ID: i, User: user, Text: "hello there"})
			m.Stats()
			m.History(10)
		}()
	}
	wg.Wait()

	assert.Len(t, eng.Banned(), 5, "each user hit the limit")
	assert.Equal(t, int64(40), m.Stats().MessagesScanned)
}

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/strikeguard/app/storage/engine"
)

func TestWhitelist(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *engine.SQL) {
		ctx := context.Background()
		wl, err := NewWhitelist(ctx, db)
		require.NoError(t, err)

		ts := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, wl.Add(ctx, WhitelistEntry{UserID: 20, UserName: "bob", AddedBy: "admin", Timestamp: ts}))
		require.NoError(t, wl.Add(ctx, WhitelistEntry{UserID: 10, UserName: "alice"}))

		t.Run("get", func(t *testing.T) {
			e, err := wl.Get(ctx, 20)
			require.NoError(t, err)
			assert.Equal(t, "bob", e.UserName)
			assert.Equal(t, "admin", e.AddedBy)
			assert.True(t, ts.Equal(e.Timestamp), "got %v", e.Timestamp)
		})

		t.Run("get missing", func(t *testing.T) {
			_, err := wl.Get(ctx, 30)
			require.ErrorIs(t, err, ErrNotFound)
		})

		t.Run("list sorted by id", func(t *testing.T) {
			list, err := wl.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, int64(10), list[0].UserID)
			assert.Equal(t, int64(20), list[1].UserID)
		})

		t.Run("re-add updates", func(t *testing.T) {
			require.NoError(t, wl.Add(ctx, WhitelistEntry{UserID: 10, UserName: "alice2"}))
			e, err := wl.Get(ctx, 10)
			require.NoError(t, err)
			assert.Equal(t, "alice2", e.UserName)
			list, err := wl.List(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 2)
		})

		t.Run("zero id rejected", func(t *testing.T) {
			require.EqualError(t, wl.Add(ctx, WhitelistEntry{UserName: "nobody"}), "user id can't be zero")
		})

		t.Run("remove", func(t *testing.T) {
			require.NoError(t, wl.Remove(ctx, 10))
			_, err := wl.Get(ctx, 10)
			require.ErrorIs(t, err, ErrNotFound)
			err = wl.Remove(ctx, 10)
			require.ErrorIs(t, err, ErrNotFound)
		})
	})
}

func TestWhitelistEntry_String(t *testing.T) {
	assert.Equal(t, "42", WhitelistEntry{UserID: 42}.String())
	assert.Equal(t, `"bob" (42)`, WhitelistEntry{UserID: 42, UserName: "bob"}.String())
}

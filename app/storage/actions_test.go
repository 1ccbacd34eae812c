package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/strikeguard/app/storage/engine"
)

func TestActions(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *engine.SQL) {
		ctx := context.Background()
		acts, err := NewActions(ctx, db, 0)
		require.NoError(t, err)

		base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
		records := []Action{
			{Kind: "delete", UserID: 1, UserName: "u1", Reason: "explicit_keywords", Message: "msg1", Strikes: 1, Timestamp: base},
			{Kind: "delete", UserID: 2, UserName: "u2", Reason: "ml_classifier", Message: "msg2", Strikes: 1, Timestamp: base.Add(time.Minute)},
			{Kind: "ban", UserID: 1, UserName: "u1", Reason: "explicit_keywords", Message: "msg3", Strikes: 3, Timestamp: base.Add(2 * time.Minute)},
		}
		for _, r := range records {
			require.NoError(t, acts.Add(ctx, r))
		}

		t.Run("read newest first", func(t *testing.T) {
			res, err := acts.Read(ctx, 10)
			require.NoError(t, err)
			require.Len(t, res, 3)
			assert.Equal(t, "ban", res[0].Kind)
			assert.Equal(t, 3, res[0].Strikes)
			assert.Equal(t, "msg2", res[1].Message)
			assert.Equal(t, "msg1", res[2].Message)
			assert.True(t, base.Equal(res[2].Timestamp))
			assert.NotZero(t, res[0].ID)
		})

		t.Run("read limit", func(t *testing.T) {
			res, err := acts.Read(ctx, 1)
			require.NoError(t, err)
			require.Len(t, res, 1)
			assert.Equal(t, "ban", res[0].Kind)
		})

		t.Run("read user", func(t *testing.T) {
			res, err := acts.ReadUser(ctx, 1, 10)
			require.NoError(t, err)
			require.Len(t, res, 2)
			assert.Equal(t, "ban", res[0].Kind)
			assert.Equal(t, "delete", res[1].Kind)

			res, err = acts.ReadUser(ctx, 99, 10)
			require.NoError(t, err)
			assert.Empty(t, res)
		})

		t.Run("empty kind rejected", func(t *testing.T) {
			require.EqualError(t, acts.Add(ctx, Action{UserID: 1}), "empty action kind")
		})
	})
}

func TestActions_MaxSize(t *testing.T) {
	ctx := context.Background()
	db, err := engine.NewSqlite(":memory:", "gr1")
	require.NoError(t, err)
	defer db.Close()

	acts, err := NewActions(ctx, db, 3)
	require.NoError(t, err)

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	for i := range 5 {
		require.NoError(t, acts.Add(ctx, Action{Kind: "delete", UserID: int64(i + 1), Timestamp: base.Add(time.Duration(i) * time.Second)}))
	}

	res, err := acts.Read(ctx, 10)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, int64(5), res[0].UserID)
	assert.Equal(t, int64(3), res[2].UserID)
}

func TestActions_Concurrent(t *testing.T) {
	ctx := context.Background()
	db, err := engine.NewSqlite(":memory:", "gr1")
	require.NoError(t, err)
	defer db.Close()

	acts, err := NewActions(ctx, db, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, acts.Add(ctx, Action{Kind: "delete", UserID: int64(i + 1)}))
			_, err := acts.Read(ctx, 5)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	res, err := acts.Read(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, res, 10)
}

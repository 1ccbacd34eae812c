package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/strikeguard/app/storage"
	"github.com/umputun/strikeguard/app/storage/engine"
	"github.com/umputun/strikeguard/lib/moderation"
)

func TestMakeActionsLogWriter(t *testing.T) {
	setupLog(true, "super-secret-password")
	t.Run("happy path", func(t *testing.T) {
		file, err := os.CreateTemp(os.TempDir(), "log")
		require.NoError(t, err)
		defer os.Remove(file.Name())

		var opts options
		opts.Logger.Enabled = true
		opts.Logger.FileName = file.Name()
		opts.Logger.MaxSize = "1M"
		opts.Logger.MaxBackups = 1

		writer, err := makeActionsLogWriter(opts)
		require.NoError(t, err)

		_, err = writer.Write([]byte("Test log entry\n"))
		assert.NoError(t, err)
		err = writer.Close()
		assert.NoError(t, err)

		content, err := os.ReadFile(file.Name())
		require.NoError(t, err)
		assert.Equal(t, "Test log entry\n", string(content))
	})

	t.Run("failed on wrong size", func(t *testing.T) {
		var opts options
		opts.Logger.Enabled = true
		opts.Logger.FileName = "/tmp"
		opts.Logger.MaxSize = "1f"
		opts.Logger.MaxBackups = 1
		writer, err := makeActionsLogWriter(opts)
		assert.Error(t, err)
		t.Log(err)
		assert.Nil(t, writer)
	})

	t.Run("disabled", func(t *testing.T) {
		var opts options
		opts.Logger.Enabled = false
		opts.Logger.FileName = "/tmp"
		opts.Logger.MaxSize = "10M"
		writer, err := makeActionsLogWriter(opts)
		assert.NoError(t, err)
		assert.IsType(t, nopWriteCloser{}, writer)
	})
}

func TestSizeParse(t *testing.T) {
	tests := []struct {
		inp  string
		res  uint64
		fail bool
	}{
		{"1024", 1024, false},
		{"1k", 1024, false},
		{"2K", 2048, false},
		{"100M", 100 * 1024 * 1024, false},
		{"1g", 1024 * 1024 * 1024, false},
		{"1t", 1024 * 1024 * 1024 * 1024, false},
		{"", 0, true},
		{"1f", 0, true},
		{"xm", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.inp, func(t *testing.T) {
			res, err := sizeParse(tt.inp)
			if tt.fail {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.res, res)
		})
	}
}

func Test_makeClassifier(t *testing.T) {
	dir := t.TempDir()
	spamFile := writeFile(t, dir, "spam.txt", "free money now\nwin a prize today\ncheap pills online\n")
	hamFile := writeFile(t, dir, "ham.txt", "hello everyone\nsee you at the meeting\nthanks for the help\n")
	modelFile := writeFile(t, dir, "model.json", `{
		"vocabulary": {"free": 0, "money": 1, "free money": 2, "hello": 3},
		"idf": [1, 1, 1, 1],
		"ngram_max": 2,
		"layers": [
			{"weights": [[2, 2, 2, 0], [0, 0, 0, 2]], "bias": [0, 0], "activation": "relu"},
			{"weights": [[3, -3]], "bias": [-1], "activation": "sigmoid"}
		]
	}`)

	t.Run("none", func(t *testing.T) {
		var opts options
		opts.Model.Type = "none"
		cl, err := makeClassifier(opts)
		require.NoError(t, err)
		assert.Nil(t, cl)
	})

	t.Run("bayes", func(t *testing.T) {
		var opts options
		opts.Model.Type = "bayes"
		opts.Model.SpamSamples = []string{spamFile}
		opts.Model.HamSamples = []string{hamFile}
		cl, err := makeClassifier(opts)
		require.NoError(t, err)
		require.IsType(t, &moderation.BayesModel{}, cl)
		assert.Equal(t, moderation.BayesStats{Spam: 3, Ham: 3}, cl.(*moderation.BayesModel).Stats())

		prob, err := cl.Score(context.Background(), "free money")
		require.NoError(t, err)
		assert.Greater(t, prob, 0.5)
	})

	t.Run("bayes without ham", func(t *testing.T) {
		var opts options
		opts.Model.Type = "bayes"
		opts.Model.SpamSamples = []string{spamFile}
		_, err := makeClassifier(opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't train bayes model")
	})

	t.Run("bayes missing file", func(t *testing.T) {
		var opts options
		opts.Model.Type = "bayes"
		opts.Model.SpamSamples = []string{spamFile, path.Join(dir, "nope.txt")}
		opts.Model.HamSamples = []string{hamFile}
		_, err := makeClassifier(opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("neural", func(t *testing.T) {
		var opts options
		opts.Model.Type = "neural"
		opts.Model.File = modelFile
		opts.Model.InputSize = 4
		cl, err := makeClassifier(opts)
		require.NoError(t, err)
		require.IsType(t, &moderation.NeuralModel{}, cl)
		assert.Equal(t, 4, cl.(*moderation.NeuralModel).Dim())
	})

	t.Run("neural dimension mismatch", func(t *testing.T) {
		var opts options
		opts.Model.Type = "neural"
		opts.Model.File = modelFile
		opts.Model.InputSize = moderation.DefaultModelInputSize
		_, err := makeClassifier(opts)
		require.ErrorIs(t, err, moderation.ErrDimensionMismatch)
	})

	t.Run("neural missing file", func(t *testing.T) {
		var opts options
		opts.Model.Type = "neural"
		opts.Model.File = path.Join(dir, "nope.json")
		_, err := makeClassifier(opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("unknown", func(t *testing.T) {
		var opts options
		opts.Model.Type = "gpt"
		_, err := makeClassifier(opts)
		assert.EqualError(t, err, `unknown classifier type "gpt"`)
	})
}

func Test_makeEngine(t *testing.T) {
	ctx := context.Background()

	makeStore := func(t *testing.T) *storage.Snapshots {
		db, err := engine.NewSqlite(path.Join(t.TempDir(), "test.db"), "gr1")
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		store, err := storage.NewSnapshots(ctx, db)
		require.NoError(t, err)
		return store
	}

	t.Run("invalid settings", func(t *testing.T) {
		opts := defaultOpts()
		opts.Settings.Threshold = 1.5
		_, err := makeEngine(ctx, opts, makeStore(t))
		require.ErrorIs(t, err, moderation.ErrInvalidSetting)
	})

	t.Run("custom lexicon", func(t *testing.T) {
		opts := defaultOpts()
		opts.Files.Lexicon = writeFile(t, t.TempDir(), "lexicon.yml", "severe:\n  - forbidden word\n")
		eng, err := makeEngine(ctx, opts, makeStore(t))
		require.NoError(t, err)
		assert.True(t, eng.Check("this has a forbidden word in it").Spam)
		assert.False(t, eng.Check("selling pics of a minor").Spam, "built-in lexicon replaced")
	})

	t.Run("missing lexicon", func(t *testing.T) {
		opts := defaultOpts()
		opts.Files.Lexicon = path.Join(t.TempDir(), "nope.yml")
		_, err := makeEngine(ctx, opts, makeStore(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("classifier timeout", func(t *testing.T) {
		opts := defaultOpts()
		eng, err := makeEngine(ctx, opts, makeStore(t))
		require.NoError(t, err)
		assert.Equal(t, moderation.DefaultClassifierTimeout, eng.ClassifierTimeout, "unset timeout gets the default")

		opts.Model.Timeout = 300 * time.Millisecond
		eng, err = makeEngine(ctx, opts, makeStore(t))
		require.NoError(t, err)
		assert.Equal(t, 300*time.Millisecond, eng.ClassifierTimeout)
	})

	t.Run("state restored", func(t *testing.T) {
		store := makeStore(t)
		opts := defaultOpts()
		eng, err := makeEngine(ctx, opts, store)
		require.NoError(t, err)
		require.NoError(t, eng.Ban(42))
		require.NoError(t, eng.SetStrikeLimit(5))

		opts.Settings.StrikeLimit = 2 // restored settings take precedence
		eng2, err := makeEngine(ctx, opts, store)
		require.NoError(t, err)
		assert.True(t, eng2.IsBanned(42))
		assert.Equal(t, 5, eng2.Settings().StrikeLimit)
	})
}

func Test_makeModeratorConfig(t *testing.T) {
	tests := []struct {
		name               string
		args               []string
		urlBlock, mentions bool
	}{
		{"defaults", nil, true, true},
		{"no urls", []string{"--no-block-urls"}, false, true},
		{"no mentions", []string{"--no-block-mentions"}, true, false},
		{"both off", []string{"--no-block-urls", "--no-block-mentions"}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options
			_, err := flags.NewParser(&opts, flags.Default).ParseArgs(tt.args)
			require.NoError(t, err)
			cfg := makeModeratorConfig(opts)
			assert.Equal(t, tt.urlBlock, cfg.URLBlocking)
			assert.Equal(t, tt.mentions, cfg.MentionBlocking)
			assert.Equal(t, 100, cfg.HistorySize)
			assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
			assert.Equal(t, moderation.DefaultClassifierTimeout, opts.Model.Timeout)
		})
	}
}

func Test_execute(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := defaultOpts()
	opts.Listen = ":9988"
	opts.Server.AuthPasswd = "secret"
	opts.DataBase = fmt.Sprintf("sqlite://%s", path.Join(t.TempDir(), "strikeguard.db"))
	opts.Files.Lexicon = writeFile(t, t.TempDir(), "lexicon.yml", "severe:\n  - forbidden word\n")
	opts.Logger.Enabled = true
	opts.Logger.FileName = path.Join(t.TempDir(), "actions.log")

	done := make(chan struct{})
	go func() {
		err := execute(ctx, opts)
		assert.NoError(t, err)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://localhost:9988/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, time.Second*5, time.Millisecond*100, "server did not start")

	body := `{"id": 1, "user": {"id": 123, "user_name": "spammer"}, "text": "this has a forbidden word in it"}`
	req, err := http.NewRequest(http.MethodPost, "http://localhost:9988/message", strings.NewReader(body))
	require.NoError(t, err)
	req.SetBasicAuth("strikeguard", "secret")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := struct {
		Action  string `json:"action"`
		Strikes int    `json:"strikes"`
	}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "delete", res.Action)
	assert.Equal(t, 1, res.Strikes)

	resp2, err := http.Get("http://localhost:9988/strikes/123") // no auth
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)

	cancel()
	<-done

	actionsLog, err := os.ReadFile(opts.Logger.FileName)
	require.NoError(t, err)
	assert.Contains(t, string(actionsLog), `"user_id":123`)

	// state saved on exit
	db, err := engine.New(context.Background(), opts.DataBase, opts.GID)
	require.NoError(t, err)
	defer db.Close()
	store, err := storage.NewSnapshots(context.Background(), db)
	require.NoError(t, err)
	eng, err := makeEngine(context.Background(), opts, store)
	require.NoError(t, err)
	assert.Equal(t, 1, eng.GetStrikes(123).Count)
}

func defaultOpts() options {
	var opts options
	opts.GID = "gr1"
	opts.Settings.StrikeLimit = 3
	opts.Settings.ResetHours = 24
	opts.Settings.Threshold = 0.5
	opts.Model.Type = "none"
	opts.HistorySize = 100
	opts.StoreTimeout = time.Second
	opts.AutoSave = time.Minute
	opts.Files.WatchDelay = time.Millisecond * 100
	opts.Logger.MaxSize = "1M"
	return opts
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	file := path.Join(dir, name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

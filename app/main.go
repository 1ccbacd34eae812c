package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/fileutils"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/strikeguard/app/moderator"
	"github.com/umputun/strikeguard/app/storage"
	"github.com/umputun/strikeguard/app/storage/engine"
	"github.com/umputun/strikeguard/app/webapi"
	"github.com/umputun/strikeguard/lib/moderation"
)

type options struct {
	Listen   string `long:"listen" env:"LISTEN" default:":8080" description:"listen address for the web api"`
	DataBase string `long:"db" env:"DB" default:"strikeguard.db" description:"database url, sqlite file or postgres://"`
	GID      string `long:"gid" env:"GID" default:"strikeguard" description:"group id, separates state of multiple instances in one db"`

	Settings struct {
		StrikeLimit int     `long:"strike-limit" env:"STRIKE_LIMIT" default:"3" description:"strikes before ban"`
		ResetHours  int     `long:"reset-hours" env:"RESET_HOURS" default:"24" description:"hours without strikes to forget them"`
		Threshold   float64 `long:"threshold" env:"THRESHOLD" default:"0.5" description:"classifier spam probability threshold"`
	} `group:"settings" namespace:"settings" env-namespace:"SETTINGS"`

	Files struct {
		Lexicon    string        `long:"lexicon" env:"LEXICON" description:"lexicon yaml file, built-in lexicon if not set"`
		WatchDelay time.Duration `long:"watch-delay" env:"WATCH_DELAY" default:"5s" description:"delay before reloading changed lexicon"`
	} `group:"files" namespace:"files" env-namespace:"FILES"`

	Model struct {
		Type         string        `long:"type" env:"TYPE" default:"none" choice:"none" choice:"neural" choice:"bayes" description:"classifier type"`
		File         string        `long:"file" env:"FILE" default:"data/model.json" description:"neural model file"`
		InputSize    int           `long:"input-size" env:"INPUT_SIZE" default:"150" description:"neural model feature dimension"`
		SpamSamples  []string      `long:"spam-samples" env:"SPAM_SAMPLES" env-delim:"," description:"spam samples for bayes model"`
		HamSamples   []string      `long:"ham-samples" env:"HAM_SAMPLES" env-delim:"," description:"ham samples for bayes model"`
		Timeout      time.Duration `long:"timeout" env:"TIMEOUT" default:"2s" description:"classifier call timeout"`
		CacheSize    int           `long:"cache-size" env:"CACHE_SIZE" default:"1000" description:"max memoized classifier results, 0 to disable"`
		CacheTTL     time.Duration `long:"cache-ttl" env:"CACHE_TTL" default:"10m" description:"ttl of memoized classifier results"`
		MaxFeedbacks int           `long:"max-feedbacks" env:"MAX_FEEDBACKS" default:"0" description:"max entries in each feedback log, 0 - unlimited"`
	} `group:"model" namespace:"model" env-namespace:"MODEL"`

	Server struct {
		AuthUser   string  `long:"auth-user" env:"AUTH_USER" default:"strikeguard" description:"basic auth user"`
		AuthPasswd string  `long:"auth" env:"AUTH" description:"basic auth password, \"auto\" to generate"`
		RateLimit  float64 `long:"rate-limit" env:"RATE_LIMIT" default:"10" description:"max requests per second per client, 0 - no limit"`
	} `group:"server" namespace:"server" env-namespace:"SERVER"`

	Logger struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable rotated moderation actions log"`
		FileName   string `long:"file" env:"FILE" default:"strikeguard-actions.log" description:"location of actions log"`
		MaxSize    string `long:"max-size" env:"MAX_SIZE" default:"100M" description:"maximum size before it gets rotated"`
		MaxBackups int    `long:"max-backups" env:"MAX_BACKUPS" default:"10" description:"maximum number of old log files to retain"`
	} `group:"logger" namespace:"logger" env-namespace:"LOGGER"`

	NoURLBlocking     bool          `long:"no-block-urls" env:"NO_BLOCK_URLS" description:"allow messages with links and domain names"`
	NoMentionBlocking bool          `long:"no-block-mentions" env:"NO_BLOCK_MENTIONS" description:"allow messages with @mentions"`
	HistorySize       int           `long:"history-size" env:"HISTORY_SIZE" default:"100" description:"number of checked messages kept in history"`
	MaxActions        int           `long:"max-actions" env:"MAX_ACTIONS" default:"10000" description:"max stored moderation actions, 0 - unlimited"`
	AutoSave          time.Duration `long:"autosave" env:"AUTOSAVE" default:"5m" description:"snapshot autosave interval, 0 to disable"`
	StoreTimeout      time.Duration `long:"store-timeout" env:"STORE_TIMEOUT" default:"5s" description:"timeout for storage calls"`

	Dry bool `long:"dry" env:"DRY" description:"dry mode, detect and log only"`
	Dbg bool `long:"dbg" env:"DEBUG" description:"debug mode"`
}

var revision = "local"

func main() {
	fmt.Printf("strikeguard %s\n", revision)
	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var ferr *flags.Error
		if !errors.As(err, &ferr) || ferr.Type != flags.ErrHelp {
			log.Printf("[ERROR] cli error: %v", err)
		}
		os.Exit(2)
	}

	if opts.Server.AuthPasswd == "auto" {
		passwd, err := webapi.GenerateRandomPassword(20)
		if err != nil {
			log.Printf("[ERROR] can't generate password: %v", err)
			os.Exit(1)
		}
		opts.Server.AuthPasswd = passwd
		fmt.Printf("generated basic auth password for user %q: %q\n", opts.Server.AuthUser, passwd)
	}

	setupLog(opts.Dbg, opts.Server.AuthPasswd)
	log.Printf("[DEBUG] options: %+v", opts)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		// catch signal and invoke graceful termination
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Printf("[WARN] interrupt signal")
		cancel()
	}()

	if err := execute(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, opts options) error {
	if opts.Dry {
		log.Print("[WARN] dry mode, detection only, no strikes and no bans")
	}

	db, err := engine.New(ctx, opts.DataBase, opts.GID)
	if err != nil {
		return fmt.Errorf("can't make db engine %s, %w", opts.DataBase, err)
	}
	defer db.Close()
	log.Printf("[DEBUG] database: %s, type: %s, gid: %s", opts.DataBase, db.Type(), db.GID())

	snapshots, err := storage.NewSnapshots(ctx, db)
	if err != nil {
		return fmt.Errorf("can't make snapshots store, %w", err)
	}
	whitelist, err := storage.NewWhitelist(ctx, db)
	if err != nil {
		return fmt.Errorf("can't make whitelist store, %w", err)
	}
	actions, err := storage.NewActions(ctx, db, opts.MaxActions)
	if err != nil {
		return fmt.Errorf("can't make actions store, %w", err)
	}

	eng, err := makeEngine(ctx, opts, snapshots)
	if err != nil {
		return fmt.Errorf("can't make moderation engine, %w", err)
	}
	defer func() {
		if serr := eng.Save(); serr != nil {
			log.Printf("[WARN] can't save state on exit, %v", serr)
		}
	}()

	actionsLog, err := makeActionsLogWriter(opts)
	if err != nil {
		return fmt.Errorf("can't make actions log writer, %w", err)
	}
	defer actionsLog.Close()

	modCfg := makeModeratorConfig(opts)
	modCfg.ActionsLog = actionsLog
	mod, err := moderator.New(ctx, eng, whitelist, actions, modCfg)
	if err != nil {
		return fmt.Errorf("can't make moderator, %w", err)
	}
	log.Printf("[DEBUG] moderator config: {url: %v, mention: %v, dry: %v, history: %d}",
		modCfg.URLBlocking, modCfg.MentionBlocking, modCfg.Dry, modCfg.HistorySize)

	srv := webapi.NewServer(webapi.Config{
		Version:    revision,
		ListenAddr: opts.Listen,
		Engine:     eng,
		Moderator:  mod,
		Actions:    actions,
		Snapshots:  snapshots,
		AuthUser:   opts.Server.AuthUser,
		AuthPasswd: opts.Server.AuthPasswd,
		RateLimit:  opts.Server.RateLimit,
		Dbg:        opts.Dbg,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	if opts.AutoSave > 0 {
		g.Go(func() error { autoSave(gctx, eng, opts.AutoSave); return nil })
	}
	if opts.Files.Lexicon != "" {
		g.Go(func() error { return mod.WatchLexicon(gctx, opts.Files.Lexicon, opts.Files.WatchDelay) })
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("service failed, %w", err)
	}
	return nil
}

// makeModeratorConfig maps options to the moderator config, url and mention blocking are on unless disabled
func makeModeratorConfig(opts options) moderator.Config {
	return moderator.Config{
		URLBlocking:     !opts.NoURLBlocking,
		MentionBlocking: !opts.NoMentionBlocking,
		Dry:             opts.Dry,
		HistorySize:     opts.HistorySize,
		StoreTimeout:    opts.StoreTimeout,
	}
}

// makeEngine creates the moderation engine with lexicon and classifier, and restores its state
func makeEngine(ctx context.Context, opts options, store moderation.SnapshotStore) (*moderation.Engine, error) {
	settings := moderation.Settings{
		StrikeLimit: opts.Settings.StrikeLimit,
		ResetHours:  opts.Settings.ResetHours,
		Threshold:   opts.Settings.Threshold,
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	eng := moderation.NewEngine(moderation.Config{
		Settings:            settings,
		ClassifierTimeout:   opts.Model.Timeout,
		ClassifierCacheSize: opts.Model.CacheSize,
		ClassifierCacheTTL:  opts.Model.CacheTTL,
		MaxFeedbackLog:      opts.Model.MaxFeedbacks,
		StorageTimeout:      opts.StoreTimeout,
	})

	if opts.Files.Lexicon != "" {
		lex, err := loadLexicon(opts.Files.Lexicon)
		if err != nil {
			return nil, err
		}
		eng.WithLexicon(lex)
		log.Printf("[INFO] lexicon loaded from %s, %d entries", opts.Files.Lexicon, lex.Size())
	}

	cl, err := makeClassifier(opts)
	if err != nil {
		return nil, err
	}
	if cl != nil {
		eng.WithClassifier(cl)
	}

	eng.WithSnapshotStore(store)
	res := eng.Load(ctx)
	log.Printf("[INFO] state restored, users with strikes: %d, banned: %d, safe patterns: %d, spam patterns: %d",
		res.Records, res.Banned, res.SafePatterns, res.SpamPatterns)
	return eng, nil
}

func loadLexicon(path string) (*moderation.Lexicon, error) {
	if !fileutils.IsFile(path) {
		return nil, fmt.Errorf("lexicon file %s not found", path)
	}
	fh, err := os.Open(path) //nolint:gosec // path from cli options
	if err != nil {
		return nil, fmt.Errorf("can't open lexicon %s, %w", path, err)
	}
	defer fh.Close()
	lex, err := moderation.LoadLexicon(fh)
	if err != nil {
		return nil, fmt.Errorf("can't load lexicon %s, %w", path, err)
	}
	return lex, nil
}

// makeClassifier loads the statistical classifier selected by options, nil for "none"
func makeClassifier(opts options) (moderation.Classifier, error) {
	switch opts.Model.Type {
	case "", "none":
		log.Printf("[INFO] no classifier, lexicon and rules only")
		return nil, nil
	case "neural":
		if !fileutils.IsFile(opts.Model.File) {
			return nil, fmt.Errorf("model file %s not found", opts.Model.File)
		}
		fh, err := os.Open(opts.Model.File)
		if err != nil {
			return nil, fmt.Errorf("can't open model %s, %w", opts.Model.File, err)
		}
		defer fh.Close()
		model, err := moderation.LoadNeuralModel(fh, opts.Model.InputSize)
		if err != nil {
			return nil, fmt.Errorf("can't load model %s, %w", opts.Model.File, err)
		}
		log.Printf("[INFO] neural model loaded from %s, %d features", opts.Model.File, model.Dim())
		return model, nil
	case "bayes":
		spam, closeSpam, err := openAll(opts.Model.SpamSamples)
		if err != nil {
			return nil, fmt.Errorf("can't open spam samples, %w", err)
		}
		defer closeSpam()
		ham, closeHam, err := openAll(opts.Model.HamSamples)
		if err != nil {
			return nil, fmt.Errorf("can't open ham samples, %w", err)
		}
		defer closeHam()
		model := moderation.NewBayesModel()
		st, err := model.Load(spam, ham)
		if err != nil {
			return nil, fmt.Errorf("can't train bayes model, %w", err)
		}
		log.Printf("[INFO] bayes model trained, spam samples: %d, ham samples: %d", st.Spam, st.Ham)
		return model, nil
	}
	return nil, fmt.Errorf("unknown classifier type %q", opts.Model.Type)
}

// openAll opens all files, returned func closes the opened ones
func openAll(files []string) (readers []io.Reader, closeFn func(), err error) {
	var opened []*os.File
	closeFn = func() {
		for _, fh := range opened {
			_ = fh.Close()
		}
	}
	for _, file := range files {
		if !fileutils.IsFile(file) {
			closeFn()
			return nil, func() {}, fmt.Errorf("file %s not found", file)
		}
		fh, err := os.Open(file) //nolint:gosec // path from cli options
		if err != nil {
			closeFn()
			return nil, func() {}, fmt.Errorf("can't open %s, %w", file, err)
		}
		opened = append(opened, fh)
		readers = append(readers, fh)
	}
	return readers, closeFn, nil
}

// autoSave writes engine snapshots periodically. Failed saves are retried a few times before giving up till the next tick.
func autoSave(ctx context.Context, eng *moderation.Engine, interval time.Duration) {
	log.Printf("[DEBUG] auto-save snapshots every %v", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	rpt := repeater.NewDefault(3, time.Second)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[DEBUG] auto-save stopped")
			return
		case <-ticker.C:
			if err := rpt.Do(ctx, eng.Save); err != nil {
				log.Printf("[WARN] can't save snapshots, %v", err)
			}
		}
	}
}

// makeActionsLogWriter creates the writer for json lines of moderation actions.
// It parses options and makes lumberjack logger with rotation.
func makeActionsLogWriter(opts options) (io.WriteCloser, error) {
	if !opts.Logger.Enabled {
		return nopWriteCloser{io.Discard}, nil
	}

	maxSize, err := sizeParse(opts.Logger.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("can't parse logger MaxSize: %w", err)
	}
	maxSize /= 1048576

	log.Printf("[INFO] actions log enabled for %s, max size %dM", opts.Logger.FileName, maxSize)
	return &lumberjack.Logger{
		Filename:   opts.Logger.FileName,
		MaxSize:    int(maxSize), // in MB
		MaxBackups: opts.Logger.MaxBackups,
		Compress:   true,
		LocalTime:  true,
	}, nil
}

// sizeParse parses size with optional k/m/g/t suffix
func sizeParse(inp string) (uint64, error) {
	if inp == "" {
		return 0, errors.New("empty value")
	}
	for i, sfx := range []string{"k", "m", "g", "t"} {
		if strings.HasSuffix(strings.ToLower(inp), sfx) {
			val, err := strconv.Atoi(inp[:len(inp)-1])
			if err != nil {
				return 0, fmt.Errorf("can't parse %s: %w", inp, err)
			}
			return uint64(float64(val) * math.Pow(1024, float64(i+1))), nil
		}
	}
	return strconv.ParseUint(inp, 10, 64)
}

type nopWriteCloser struct{ io.Writer }

func (n nopWriteCloser) Close() error { return nil }

func setupLog(dbg bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var nonEmpty []string
	for _, s := range secrets {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) > 0 {
		logOpts = append(logOpts, lgr.Secret(nonEmpty...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

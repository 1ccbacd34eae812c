package moderation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/umputun/strikeguard/lib/strikes"
	"github.com/umputun/strikeguard/lib/verdict"
)

// Engine scores messages and keeps strike, ban and learning state, thread-safe.
// Every mutating call is written to the snapshot store, if one is set, before it returns.
type Engine struct {
	Config
	scorer   *Scorer
	learning *LearningStore
	ledger   *Ledger

	clLock     sync.RWMutex
	classifier *guardedClassifier

	store       SnapshotStore
	persistLock sync.Mutex
}

// Config is a set of parameters for Engine.
type Config struct {
	Settings            Settings      // initial settings, replaced by restored snapshot
	ClassifierTimeout   time.Duration // time budget for a classifier call, 0 - DefaultClassifierTimeout
	ClassifierCacheSize int           // max memoized classifier results, 0 - no memoization
	ClassifierCacheTTL  time.Duration // ttl of memoized classifier results
	MaxFeedbackLog      int           // max entries in each learning log, 0 - unlimited
	StorageTimeout      time.Duration // timeout for snapshot store operations, 0 - no timeout
}

// LoadResult is a summary of state restored from the snapshot store.
type LoadResult struct {
	Records      int // users with strikes
	Banned       int // banned users
	SafePatterns int // learned safe patterns
	SpamPatterns int // learned spam patterns
}

// DefaultClassifierTimeout is used for Config.ClassifierTimeout if not set
const DefaultClassifierTimeout = 2 * time.Second

// NewEngine makes an engine with the built-in lexicon and no classifier
func NewEngine(cfg Config) *Engine {
	if cfg.Settings == (Settings{}) {
		cfg.Settings = DefaultSettings()
	}
	if cfg.ClassifierTimeout <= 0 {
		cfg.ClassifierTimeout = DefaultClassifierTimeout
	}
	return &Engine{
		Config:   cfg,
		scorer:   NewScorer(nil),
		learning: NewLearningStore(cfg.MaxFeedbackLog),
		ledger:   NewLedger(cfg.Settings),
	}
}

// WithClassifier sets the statistical classifier, nil disables it
func (e *Engine) WithClassifier(cl Classifier) {
	e.clLock.Lock()
	defer e.clLock.Unlock()
	e.classifier.purge()
	if cl == nil {
		e.classifier = nil
		return
	}
	e.classifier = newGuardedClassifier(cl, e.ClassifierTimeout, e.ClassifierCacheSize, e.ClassifierCacheTTL)
}

// WithLexicon replaces the rule scorer lexicon
func (e *Engine) WithLexicon(lex *Lexicon) { e.scorer.SetLexicon(lex) }

// WithSnapshotStore sets the durable store for snapshots
func (e *Engine) WithSnapshotStore(s SnapshotStore) { e.store = s }

// ReloadLexicon parses a yaml lexicon and activates it. On error the active lexicon is kept.
func (e *Engine) ReloadLexicon(r io.Reader) (int, error) {
	lex, err := LoadLexicon(r)
	if err != nil {
		return 0, err
	}
	e.scorer.SetLexicon(lex)
	return lex.Size(), nil
}

// Check scores text with the configured threshold
func (e *Engine) Check(text string) verdict.Verdict {
	return e.Score(text, e.ledger.Settings().Threshold)
}

// Score evaluates text and returns a verdict. Threshold outside of (0, 1) is replaced with the configured one.
// Rule signals are evaluated first and may produce a verdict without invoking the classifier.
// Text learned as safe is never spam, even with severe terms.
func (e *Engine) Score(text string, threshold float64) (res verdict.Verdict) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WARN] scoring failed, %v", r)
			res = verdict.Verdict{Method: verdict.MethodError, Probability: -1}
		}
	}()

	if !(threshold > 0 && threshold < 1) {
		threshold = e.ledger.Settings().Threshold
	}

	normalized := Normalize(text)
	if normalized == "" {
		return verdict.Verdict{Method: verdict.MethodEmpty, Probability: -1}
	}

	if e.learning.IsLikelySafe(normalized) {
		return verdict.Verdict{Method: verdict.MethodLearnedSafe, Probability: -1}
	}

	finding := e.scorer.Scan(normalized, text)
	if learned := e.learning.LearnedSpamOverlap(normalized); len(learned) >= 2 {
		if len(learned) > 3 {
			learned = learned[:3]
		}
		finding.Terms = append(finding.Terms, learned...)
		finding.Score += learnedSpamWeight
	}

	ruleVerdict := func(confidence float64, method verdict.Method) verdict.Verdict {
		return verdict.Verdict{Spam: true, Confidence: confidence, Method: method, Keywords: finding.Terms,
			Severity: finding.Score, Probability: -1}
	}

	switch {
	case finding.Score >= severeWeight:
		return ruleVerdict(1.0, verdict.MethodSevereKeywords)
	case finding.Explicit && finding.Score >= 3:
		return ruleVerdict(0.95, verdict.MethodExplicitKeywords)
	}

	prob, err := e.classify(normalized)
	if err != nil {
		if !errors.Is(err, ErrNoClassifier) {
			log.Printf("[WARN] classifier failed, %v", err)
		}
		if finding.Explicit {
			return ruleVerdict(0.8, verdict.MethodKeywordFallback)
		}
		return verdict.Verdict{Method: verdict.MethodError, Severity: finding.Score, Probability: -1}
	}

	switch {
	case prob > threshold:
		return verdict.Verdict{Spam: true, Confidence: prob, Method: verdict.MethodMLModel, Keywords: finding.Terms,
			Severity: finding.Score, Probability: prob}
	case finding.Explicit:
		conf := math.Min(1, math.Max(prob, float64(finding.Score)/10))
		return verdict.Verdict{Spam: true, Confidence: conf, Method: verdict.MethodCombined, Keywords: finding.Terms,
			Severity: finding.Score, Probability: prob}
	default:
		return verdict.Verdict{Confidence: prob, Method: verdict.MethodSafe, Severity: finding.Score, Probability: prob}
	}
}

// IsLikelySafe reports whether text overlaps with learned safe patterns
func (e *Engine) IsLikelySafe(text string) bool { return e.learning.IsLikelySafe(text) }

// RecordFalsePositive learns a message wrongly judged as spam
func (e *Engine) RecordFalsePositive(msg string) error {
	e.learning.RecordFalsePositive(msg)
	return e.persist(KindLearning)
}

// RecordFalseNegative learns a missed spam message
func (e *Engine) RecordFalseNegative(msg string) error {
	e.learning.RecordFalseNegative(msg)
	return e.persist(KindLearning)
}

// AddReport keeps a user report about a message
func (e *Engine) AddReport(userID int64, msg string, spam bool) error {
	e.learning.AddReport(userID, msg, spam)
	return e.persist(KindLearning)
}

// ResetLearning drops everything learned
func (e *Engine) ResetLearning() error {
	e.learning.Reset()
	return e.persist(KindLearning)
}

// LearningStats returns the learning store summary
func (e *Engine) LearningStats() LearningStats { return e.learning.Stats() }

// LearnedKeywords returns up to n learned spam patterns
func (e *Engine) LearnedKeywords(n int) []string { return e.learning.LearnedKeywords(n) }

// AddStrike records a violation for the user. The strike is applied even if persisting fails.
func (e *Engine) AddStrike(user strikes.User, reason, msg string) (count int, shouldBan bool, err error) {
	count, shouldBan = e.ledger.AddStrike(user, reason, msg)
	return count, shouldBan, e.persist(KindLedger)
}

// Ban bans the user and drops its strikes
func (e *Engine) Ban(userID int64) error {
	e.ledger.Ban(userID)
	return e.persist(KindLedger)
}

// Unban lifts the ban, returns true if the user was banned
func (e *Engine) Unban(userID int64) (bool, error) {
	if !e.ledger.Unban(userID) {
		return false, nil
	}
	return true, e.persist(KindLedger)
}

// ResetStrikes drops strikes of the user, returns true if there were any
func (e *Engine) ResetStrikes(userID int64) (bool, error) {
	if !e.ledger.ResetStrikes(userID) {
		return false, nil
	}
	return true, e.persist(KindLedger)
}

// IsBanned reports whether the user is banned
func (e *Engine) IsBanned(userID int64) bool { return e.ledger.IsBanned(userID) }

// GetStrikes returns the user record, clean for unknown users
func (e *Engine) GetStrikes(userID int64) strikes.Record { return e.ledger.GetStrikes(userID) }

// Banned returns all banned user ids
func (e *Engine) Banned() []int64 { return e.ledger.Banned() }

// Records returns all active strike records
func (e *Engine) Records() []strikes.Record { return e.ledger.Records() }

// Settings returns current settings
func (e *Engine) Settings() Settings { return e.ledger.Settings() }

// SetStrikeLimit changes the strike limit, must be positive
func (e *Engine) SetStrikeLimit(n int) error {
	if err := e.ledger.SetStrikeLimit(n); err != nil {
		return err
	}
	return e.persist(KindLedger)
}

// SetResetWindow changes the reset window in hours, must be positive
func (e *Engine) SetResetWindow(hours int) error {
	if err := e.ledger.SetResetWindow(hours); err != nil {
		return err
	}
	return e.persist(KindLedger)
}

// SetThreshold changes the classifier threshold, must be in (0, 1)
func (e *Engine) SetThreshold(f float64) error {
	if err := e.ledger.SetThreshold(f); err != nil {
		return err
	}
	return e.persist(KindLedger)
}

// SnapshotLedger serializes the strike ledger
func (e *Engine) SnapshotLedger() ([]byte, error) { return e.ledger.Snapshot() }

// SnapshotLearning serializes the learning store
func (e *Engine) SnapshotLearning() ([]byte, error) { return e.learning.Snapshot() }

// RestoreLedger replaces the strike ledger. A bad snapshot leaves the ledger empty.
func (e *Engine) RestoreLedger(data []byte) error {
	if err := e.ledger.Restore(data); err != nil {
		log.Printf("[WARN] can't restore ledger, starting empty: %v", err)
		e.ledger.clear()
		return err
	}
	return e.persist(KindLedger)
}

// RestoreLearning replaces the learning store. A bad snapshot leaves the store empty.
func (e *Engine) RestoreLearning(data []byte) error {
	if err := e.learning.Restore(data); err != nil {
		log.Printf("[WARN] can't restore learning data, starting empty: %v", err)
		e.learning.Reset()
		return err
	}
	return e.persist(KindLearning)
}

// Load restores state from the snapshot store. Missing or broken snapshots are logged and skipped.
func (e *Engine) Load(ctx context.Context) LoadResult {
	if e.store == nil {
		return LoadResult{}
	}

	load := func(kind string, restore func([]byte) error, clear func()) {
		sctx, cancel := e.ctxWithStoreTimeout(ctx)
		defer cancel()
		data, err := e.store.Load(sctx, kind)
		if errors.Is(err, ErrNoSnapshot) {
			log.Printf("[INFO] no %s snapshot, starting empty", kind)
			return
		}
		if err != nil {
			log.Printf("[WARN] can't load %s snapshot, starting empty: %v", kind, err)
			return
		}
		if err := restore(data); err != nil {
			log.Printf("[WARN] can't restore %s snapshot, starting empty: %v", kind, err)
			clear()
		}
	}
	load(KindLedger, e.ledger.Restore, e.ledger.clear)
	load(KindLearning, e.learning.Restore, e.learning.Reset)

	ls := e.learning.Stats()
	return LoadResult{
		Records:      len(e.ledger.Records()),
		Banned:       len(e.ledger.Banned()),
		SafePatterns: ls.SafePatterns,
		SpamPatterns: ls.SpamPatterns,
	}
}

// Save writes both snapshots to the store
func (e *Engine) Save() error {
	errs := new(multierror.Error)
	errs = multierror.Append(errs, e.persist(KindLedger), e.persist(KindLearning))
	return errs.ErrorOrNil()
}

// persist writes the snapshot of the given kind. Snapshots are taken under the lock,
// so the last write always carries the latest state.
func (e *Engine) persist(kind string) error {
	if e.store == nil {
		return nil
	}
	e.persistLock.Lock()
	defer e.persistLock.Unlock()

	var data []byte
	var err error
	switch kind {
	case KindLedger:
		data, err = e.ledger.Snapshot()
	case KindLearning:
		data, err = e.learning.Snapshot()
	default:
		return fmt.Errorf("unknown snapshot kind %q", kind)
	}
	if err != nil {
		return err
	}

	ctx, cancel := e.ctxWithStoreTimeout(context.Background())
	defer cancel()
	if err := e.store.Save(ctx, kind, data); err != nil {
		log.Printf("[WARN] can't save %s snapshot: %v", kind, err)
		return fmt.Errorf("can't save %s snapshot: %w", kind, err)
	}
	return nil
}

func (e *Engine) classify(normalized string) (float64, error) {
	e.clLock.RLock()
	cl := e.classifier
	e.clLock.RUnlock()
	return cl.Score(context.Background(), normalized)
}

func (e *Engine) ctxWithStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.StorageTimeout == 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, e.StorageTimeout)
}

package moderation

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"math"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"
)

//go:generate moq --out mocks/classifier.go --pkg mocks --skip-ensure --with-resets . Classifier

// classifier errors
var (
	ErrClassifierTimeout = errors.New("classifier timeout")
	ErrNoClassifier      = errors.New("classifier not configured")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Classifier scores normalized text with a spam probability in [0, 1].
// Implementations must be deterministic and must not mutate shared state.
type Classifier interface {
	Score(ctx context.Context, text string) (float64, error)
}

// ClassifierFunc is an adapter to use a function as a Classifier
type ClassifierFunc func(ctx context.Context, text string) (float64, error)

// Score calls f(ctx, text)
func (f ClassifierFunc) Score(ctx context.Context, text string) (float64, error) { return f(ctx, text) }

// guardedClassifier bounds classifier calls in time, validates results and memoizes them
type guardedClassifier struct {
	cl      Classifier
	timeout time.Duration
	memo    cache.Cache[[sha256.Size]byte, float64]
}

func newGuardedClassifier(cl Classifier, timeout time.Duration, cacheSize int, cacheTTL time.Duration) *guardedClassifier {
	res := &guardedClassifier{cl: cl, timeout: timeout}
	if cacheSize > 0 {
		res.memo = cache.NewCache[[sha256.Size]byte, float64]().WithMaxKeys(cacheSize).WithTTL(cacheTTL).WithLRU()
	}
	return res
}

// Score runs the wrapped classifier with the time budget.
// The scoring goroutine is abandoned on timeout, it can't affect the result.
func (g *guardedClassifier) Score(ctx context.Context, text string) (float64, error) {
	if g == nil || g.cl == nil {
		return 0, ErrNoClassifier
	}

	key := sha256.Sum256([]byte(text))
	if g.memo != nil {
		if prob, ok := g.memo.Get(key); ok {
			return prob, nil
		}
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	type result struct {
		prob float64
		err  error
	}
	resCh := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				resCh <- result{err: fmt.Errorf("classifier panic: %v", r)}
			}
		}()
		prob, err := g.cl.Score(ctx, text)
		resCh <- result{prob: prob, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return 0, ErrClassifierTimeout
		}
		return 0, ctx.Err()
	case res := <-resCh:
		if res.err != nil {
			return 0, res.err
		}
		if math.IsNaN(res.prob) || res.prob < 0 || res.prob > 1 {
			return 0, fmt.Errorf("classifier returned out of range probability %v", res.prob)
		}
		if g.memo != nil {
			g.memo.Set(key, res.prob, 0)
		}
		return res.prob, nil
	}
}

// purge drops memoized results, used when the classifier is replaced
func (g *guardedClassifier) purge() {
	if g != nil && g.memo != nil {
		g.memo.Purge()
	}
}

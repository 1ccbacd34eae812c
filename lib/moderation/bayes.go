package moderation

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"log"
	"math"
	"strings"
	"sync"
)

// label is a class of a training sample
type label string

// enum of sample classes
const (
	labelSpam label = "spam"
	labelHam  label = "ham"
)

// BayesModel is a multinomial naive Bayes classifier trained on spam and ham samples, thread-safe.
// Based on https://github.com/RadhiFadlillah/go-bayesian
type BayesModel struct {
	lock        sync.RWMutex
	tokenCounts map[string]map[label]int
	logPriors   map[label]float64
	docsByLabel map[label]int
	freqByLabel map[label]int
	docs        int
}

// BayesStats is the amount of loaded samples.
type BayesStats struct {
	Spam int `json:"spam"`
	Ham  int `json:"ham"`
}

// NewBayesModel makes an untrained model
func NewBayesModel() *BayesModel {
	res := &BayesModel{}
	res.reset()
	return res
}

// Load resets the model and trains it with samples, one message per line
func (b *BayesModel) Load(spam, ham []io.Reader) (BayesStats, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.reset()

	st := BayesStats{}
	for msg := range samples(spam...) {
		b.learn(labelSpam, msg)
		st.Spam++
	}
	for msg := range samples(ham...) {
		b.learn(labelHam, msg)
		st.Ham++
	}
	if st.Spam == 0 || st.Ham == 0 {
		return st, fmt.Errorf("both spam and ham samples required, got spam:%d, ham:%d", st.Spam, st.Ham)
	}
	return st, nil
}

// Learn adds a single message to the model
func (b *BayesModel) Learn(msg string, spam bool) {
	b.lock.Lock()
	defer b.lock.Unlock()
	if spam {
		b.learn(labelSpam, msg)
		return
	}
	b.learn(labelHam, msg)
}

// Stats returns the number of documents per class
func (b *BayesModel) Stats() BayesStats {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return BayesStats{Spam: b.docsByLabel[labelSpam], Ham: b.docsByLabel[labelHam]}
}

// Score returns the posterior probability of the spam class
func (b *BayesModel) Score(_ context.Context, text string) (float64, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if b.docsByLabel[labelSpam] == 0 || b.docsByLabel[labelHam] == 0 {
		return 0, fmt.Errorf("bayes model is not trained")
	}

	vocabulary := len(b.tokenCounts)
	posteriors := make(map[label]float64, len(b.logPriors))
	for lbl, prior := range b.logPriors {
		posteriors[lbl] = prior
	}
	for lbl, freq := range b.freqByLabel {
		for _, tok := range uniqueTokens(text) {
			n := b.tokenCounts[tok][lbl]
			posteriors[lbl] += math.Log(float64(n+1) / float64(freq+vocabulary))
		}
	}
	return softmax(posteriors)[labelSpam], nil
}

func (b *BayesModel) learn(lbl label, msg string) {
	b.docs++
	b.docsByLabel[lbl]++
	for _, tok := range uniqueTokens(Normalize(msg)) {
		b.freqByLabel[lbl]++
		if _, ok := b.tokenCounts[tok]; !ok {
			b.tokenCounts[tok] = make(map[label]int)
		}
		b.tokenCounts[tok][lbl]++
	}
	for l, n := range b.docsByLabel {
		b.logPriors[l] = math.Log(float64(n) / float64(b.docs))
	}
}

func (b *BayesModel) reset() {
	b.tokenCounts = make(map[string]map[label]int)
	b.logPriors = make(map[label]float64)
	b.docsByLabel = make(map[label]int)
	b.freqByLabel = make(map[label]int)
	b.docs = 0
}

// softmax converts log probabilities to probabilities, shifted by the max to avoid underflow
func softmax(logProbs map[label]float64) map[label]float64 {
	maxLog := math.Inf(-1)
	for _, lp := range logProbs {
		maxLog = math.Max(maxLog, lp)
	}
	sum := 0.0
	for _, lp := range logProbs {
		sum += math.Exp(lp - maxLog)
	}
	res := make(map[label]float64, len(logProbs))
	for lbl, lp := range logProbs {
		res[lbl] = math.Exp(lp-maxLog) / sum
	}
	return res
}

func uniqueTokens(text string) []string {
	seen := map[string]struct{}{}
	res := []string{}
	for _, tok := range strings.Fields(text) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		res = append(res, tok)
	}
	return res
}

// samples iterates over non-empty trimmed lines of all readers
func samples(readers ...io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, r := range readers {
			if r == nil {
				continue
			}
			scanner := bufio.NewScanner(r)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if !yield(line) {
					return
				}
			}
			if err := scanner.Err(); err != nil {
				log.Printf("[WARN] failed to read samples, error=%v", err)
			}
		}
	}
}

package moderation

import (
	"strings"
	"sync"
)

// rule weights
const (
	severeWeight      = 10
	explicitWeight    = 1
	patternWeight     = 2
	punctuationWeight = 1
	learnedSpamWeight = 3
)

// match labels for non-term findings
const (
	patternMatchTerm         = "pattern_match"
	excessivePunctuationTerm = "excessive_punctuation"
)

// Finding is the result of rule scanning.
type Finding struct {
	Terms    []string // matched terms in match order, may repeat
	Score    int      // accumulated severity
	Explicit bool     // severity >= 2 or at least two distinct terms
}

// Scorer matches messages against a lexicon, thread-safe. The lexicon can be swapped at runtime.
type Scorer struct {
	lock sync.RWMutex
	lex  *Lexicon
}

// NewScorer makes a scorer with the given lexicon, the built-in one if nil
func NewScorer(lex *Lexicon) *Scorer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Scorer{lex: lex}
}

// SetLexicon replaces the lexicon, nil is ignored
func (s *Scorer) SetLexicon(lex *Lexicon) {
	if lex == nil {
		return
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.lex = lex
}

// Lexicon returns the active lexicon
func (s *Scorer) Lexicon() *Lexicon {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.lex
}

// Scan scores the normalized text and the raw message against the lexicon.
// Empty or whitespace-only input gives an empty finding.
func (s *Scorer) Scan(normalized, raw string) Finding {
	if normalized == "" && strings.TrimSpace(raw) == "" {
		return Finding{}
	}
	lex := s.Lexicon()

	texts := map[Form]string{
		FormNormalized: normalized,
		FormLower:      compact(fold(raw)),
		FormRaw:        compact(raw),
	}

	res := Finding{}
	add := func(term string, weight int) {
		res.Terms = append(res.Terms, term)
		res.Score += weight
	}

	for _, t := range lex.severe {
		if t.match(texts) {
			add(t.orig, severeWeight)
		}
	}

	for _, g := range lex.Explicit {
		for _, t := range g.terms {
			if t.match(texts) {
				add(t.orig, explicitWeight)
			}
		}
	}

	for _, p := range lex.Patterns {
		if p.match(texts[FormLower]) {
			add(patternMatchTerm, patternWeight)
			break
		}
	}

	if lex.Punctuation.Chars != "" {
		count := 0
		for _, r := range raw {
			if strings.ContainsRune(lex.Punctuation.Chars, r) {
				count++
			}
		}
		if count > lex.Punctuation.Limit {
			add(excessivePunctuationTerm, punctuationWeight)
		}
	}

	res.Explicit = isExplicit(res)
	return res
}

// isExplicit is true for severity of 2 and above, or for two or more distinct terms
func isExplicit(f Finding) bool {
	if f.Score >= 2 {
		return true
	}
	seen := make(map[string]struct{}, len(f.Terms))
	for _, t := range f.Terms {
		seen[t] = struct{}{}
	}
	return len(seen) >= 2
}

package moderation

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// minPatternLen is the minimum token length (exclusive, in runes) to be learned as a pattern
const minPatternLen = 3

// Feedback is a single reported misclassification or user report.
type Feedback struct {
	Message string    `json:"message"`
	Time    time.Time `json:"timestamp"`
	UserID  int64     `json:"user_id,omitempty"` // set for user reports only
	Spam    bool      `json:"is_spam,omitempty"` // set for user reports only
}

// LearningStats is a summary of the learning store content.
type LearningStats struct {
	SafePatterns   int `json:"safe_patterns"`
	SpamPatterns   int `json:"spam_patterns"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`
	Reports        int `json:"reports"`
}

func (s LearningStats) String() string {
	return fmt.Sprintf("safe patterns: %d, spam patterns: %d, false positives: %d, false negatives: %d, reports: %d",
		s.SafePatterns, s.SpamPatterns, s.FalsePositives, s.FalseNegatives, s.Reports)
}

// LearningStore keeps word patterns learned from corrections, thread-safe.
// Safe patterns come from false positives, spam patterns from false negatives.
type LearningStore struct {
	lock           sync.RWMutex
	safe           map[string]struct{}
	spam           map[string]struct{}
	falsePositives []Feedback
	falseNegatives []Feedback
	reports        map[string][]Feedback // user reports keyed by "userid_date"
	maxLog         int                   // max entries per log, 0 for unlimited
	nowFn          func() time.Time
}

// NewLearningStore makes an empty store. maxLog caps each feedback log with FIFO eviction, 0 means no cap.
func NewLearningStore(maxLog int) *LearningStore {
	res := &LearningStore{maxLog: maxLog, nowFn: time.Now}
	res.clear()
	return res
}

// IsLikelySafe reports whether at least two distinct tokens of text were learned as safe
func (l *LearningStore) IsLikelySafe(text string) bool {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return len(intersect(text, l.safe)) >= 2
}

// LearnedSpamOverlap returns the distinct tokens of text learned as spam, sorted
func (l *LearningStore) LearnedSpamOverlap(text string) []string {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return intersect(text, l.spam)
}

// RecordFalsePositive logs a message wrongly judged as spam and learns its words as safe
func (l *LearningStore) RecordFalsePositive(msg string) {
	msg = validText(msg)
	l.lock.Lock()
	defer l.lock.Unlock()
	l.falsePositives = l.appendLog(l.falsePositives, Feedback{Message: msg, Time: l.nowFn()})
	learn(msg, l.safe)
}

// RecordFalseNegative logs a missed spam message and learns its words as spam
func (l *LearningStore) RecordFalseNegative(msg string) {
	msg = validText(msg)
	l.lock.Lock()
	defer l.lock.Unlock()
	l.falseNegatives = l.appendLog(l.falseNegatives, Feedback{Message: msg, Time: l.nowFn()})
	learn(msg, l.spam)
}

// AddReport keeps a user report about a message, grouped by user and day. Reports don't change patterns.
func (l *LearningStore) AddReport(userID int64, msg string, spam bool) {
	msg = validText(msg)
	l.lock.Lock()
	defer l.lock.Unlock()
	now := l.nowFn()
	key := fmt.Sprintf("%d_%s", userID, now.Format("2006-01-02"))
	l.reports[key] = l.appendLog(l.reports[key], Feedback{Message: msg, Time: now, UserID: userID, Spam: spam})
}

// LearnedKeywords returns up to n learned spam patterns, sorted
func (l *LearningStore) LearnedKeywords(n int) []string {
	l.lock.RLock()
	defer l.lock.RUnlock()
	res := sortedKeys(l.spam)
	if n >= 0 && len(res) > n {
		res = res[:n]
	}
	return res
}

// Stats returns sizes of the patterns and logs
func (l *LearningStore) Stats() LearningStats {
	l.lock.RLock()
	defer l.lock.RUnlock()
	reports := 0
	for _, r := range l.reports {
		reports += len(r)
	}
	return LearningStats{
		SafePatterns:   len(l.safe),
		SpamPatterns:   len(l.spam),
		FalsePositives: len(l.falsePositives),
		FalseNegatives: len(l.falseNegatives),
		Reports:        reports,
	}
}

// Reset drops everything learned
func (l *LearningStore) Reset() {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.clear()
}

func (l *LearningStore) clear() {
	l.safe = map[string]struct{}{}
	l.spam = map[string]struct{}{}
	l.falsePositives = []Feedback{}
	l.falseNegatives = []Feedback{}
	l.reports = map[string][]Feedback{}
}

func (l *LearningStore) appendLog(log []Feedback, fb Feedback) []Feedback {
	log = append(log, fb)
	if l.maxLog > 0 && len(log) > l.maxLog {
		log = append([]Feedback{}, log[len(log)-l.maxLog:]...)
	}
	return log
}

// validText replaces invalid utf-8 sequences with U+FFFD
func validText(s string) string { return strings.ToValidUTF8(s, "\uFFFD") }

func learn(msg string, dst map[string]struct{}) {
	for _, tok := range tokens(msg) {
		if utf8.RuneCountInString(tok) > minPatternLen {
			dst[tok] = struct{}{}
		}
	}
}

func intersect(text string, set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	seen := map[string]struct{}{}
	for _, tok := range tokens(text) {
		if _, ok := set[tok]; ok {
			seen[tok] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

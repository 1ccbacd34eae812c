// Package verdict defines the result of a moderation check and a bounded history of recent checks.
package verdict

import (
	"fmt"
	"strings"
)

// Method is the decision path that produced a Verdict.
type Method string

// enum of all decision paths
const (
	MethodEmpty            Method = "empty"
	MethodLearnedSafe      Method = "learned_safe"
	MethodSevereKeywords   Method = "severe_keywords"
	MethodExplicitKeywords Method = "explicit_keywords"
	MethodMLModel          Method = "ml_model"
	MethodCombined         Method = "combined"
	MethodKeywordFallback  Method = "keyword_fallback"
	MethodSafe             Method = "safe"
	MethodError            Method = "error"
)

// Verdict is the outcome of scoring one message. Immutable once produced.
type Verdict struct {
	Spam        bool     `json:"spam"`
	Confidence  float64  `json:"confidence"`            // 0.0 - 1.0
	Method      Method   `json:"method"`                // decision path
	Keywords    []string `json:"keywords,omitempty"`    // matched terms, in match order
	Severity    int      `json:"severity"`              // accumulated rule severity, informational
	Probability float64  `json:"probability,omitempty"` // classifier probability, -1 if not invoked
}

func (v Verdict) String() string {
	spamOrHam := "ham"
	if v.Spam {
		spamOrHam = "spam"
	}
	if len(v.Keywords) == 0 {
		return fmt.Sprintf("%s: %s, %.2f", v.Method, spamOrHam, v.Confidence)
	}
	return fmt.Sprintf("%s: %s, %.2f, [%s]", v.Method, spamOrHam, v.Confidence, strings.Join(v.Keywords, ", "))
}

// Request is a message submitted for moderation, kept in history.
type Request struct {
	Msg      string `json:"msg"`       // message text
	UserID   int64  `json:"user_id"`   // sender id
	UserName string `json:"user_name"` // sender name
}

func (r Request) String() string {
	return fmt.Sprintf("msg:%q, user:%q, id:%d", r.Msg, r.UserName, r.UserID)
}

// Record binds a request to the verdict it received.
type Record struct {
	Request
	Verdict Verdict `json:"verdict"`
}

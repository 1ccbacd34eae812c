// Package strikes defines per-user strike records and the user value type used by the moderation engine.
package strikes

import (
	"fmt"
	"strings"
	"time"
)

// MaxExcerpt is the maximum number of runes of an offending message kept in a Reason
const MaxExcerpt = 100

// User identifies the author of a message.
type User struct {
	ID          int64  `json:"id"`
	UserName    string `json:"user_name,omitempty"`    // handle, without @
	DisplayName string `json:"display_name,omitempty"` // human-readable name
}

// Name returns the best available name for the user, "Unknown" if none set
func (u User) Name() string {
	switch {
	case u.DisplayName != "":
		return u.DisplayName
	case u.UserName != "":
		return u.UserName
	default:
		return "Unknown"
	}
}

func (u User) String() string {
	if u.UserName == "" {
		return fmt.Sprintf("%q (%d)", u.Name(), u.ID)
	}
	return fmt.Sprintf("%q @%s (%d)", u.Name(), u.UserName, u.ID)
}

// Reason is a single recorded violation.
type Reason struct {
	Time    time.Time `json:"time"`
	Reason  string    `json:"reason"`
	Message string    `json:"message"` // excerpt, at most MaxExcerpt runes
}

// NewReason makes a reason entry with the message truncated to MaxExcerpt runes
func NewReason(ts time.Time, reason, msg string) Reason {
	return Reason{Time: ts, Reason: reason, Message: Excerpt(msg)}
}

// Record is the strike state of a single user. Zero value is a clean user.
type Record struct {
	UserID     int64     `json:"user_id"`
	UserName   string    `json:"name"`
	Count      int       `json:"count"`
	LastStrike time.Time `json:"last_strike_time"`
	Reasons    []Reason  `json:"reasons"`
}

// Clean reports whether the record holds no strikes
func (r Record) Clean() bool { return r.Count == 0 }

// Clone returns a deep copy of the record
func (r Record) Clone() Record {
	res := r
	if r.Reasons != nil {
		res.Reasons = make([]Reason, len(r.Reasons))
		copy(res.Reasons, r.Reasons)
	}
	return res
}

func (r Record) String() string {
	if r.UserName == "" {
		return fmt.Sprintf("%d: %d strikes", r.UserID, r.Count)
	}
	return fmt.Sprintf("%q (%d): %d strikes", r.UserName, r.UserID, r.Count)
}

// Excerpt truncates msg to MaxExcerpt runes. Invalid utf-8 sequences are replaced with U+FFFD.
func Excerpt(msg string) string {
	msg = strings.ToValidUTF8(msg, "\uFFFD")
	runes := []rune(msg)
	if len(runes) <= MaxExcerpt {
		return msg
	}
	return string(runes[:MaxExcerpt])
}

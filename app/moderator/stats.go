package moderator

import (
	"fmt"
	"sync/atomic"
)

// Stats is a snapshot of moderation counters
type Stats struct {
	MessagesScanned   int64 `json:"messages_scanned"`
	SpamDetected      int64 `json:"spam_detected"`
	MessagesDeleted   int64 `json:"messages_deleted"`
	UsersBanned       int64 `json:"users_banned"`
	SevereDetections  int64 `json:"severe_detections"`
	KeywordDetections int64 `json:"keyword_detections"`
	MLDetections      int64 `json:"ml_detections"`
	URLBlocked        int64 `json:"url_blocked"`
	MentionBlocked    int64 `json:"mention_blocked"`
	Emojis            int64 `json:"emojis"`
}

func (s Stats) String() string {
	return fmt.Sprintf("scanned: %d, spam: %d (severe: %d, keyword: %d, ml: %d), urls: %d, mentions: %d, deleted: %d, banned: %d",
		s.MessagesScanned, s.SpamDetected, s.SevereDetections, s.KeywordDetections, s.MLDetections,
		s.URLBlocked, s.MentionBlocked, s.MessagesDeleted, s.UsersBanned)
}

type stats struct {
	scanned, spam, deleted, banned atomic.Int64
	severe, keyword, ml            atomic.Int64
	urlBlocked, mentionBlocked     atomic.Int64
	emojis                         atomic.Int64
}

func (s *stats) get() Stats {
	return Stats{
		MessagesScanned:   s.scanned.Load(),
		SpamDetected:      s.spam.Load(),
		MessagesDeleted:   s.deleted.Load(),
		UsersBanned:       s.banned.Load(),
		SevereDetections:  s.severe.Load(),
		KeywordDetections: s.keyword.Load(),
		MLDetections:      s.ml.Load(),
		URLBlocked:        s.urlBlocked.Load(),
		MentionBlocked:    s.mentionBlocked.Load(),
		Emojis:            s.emojis.Load(),
	}
}

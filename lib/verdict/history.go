package verdict

import (
	"container/ring"
	"sync"
)

// History keeps the last N checked messages with their verdicts, thread-safe.
type History struct {
	records *ring.Ring
	size    int
	lock    sync.RWMutex
}

// NewHistory makes a history of the given size, at least 1
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{records: ring.New(size), size: size}
}

// Push adds a record, overwriting the oldest one if full
func (h *History) Push(rec Record) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.records.Value = rec
	h.records = h.records.Next()
}

// Last returns up to n most recent records, oldest first
func (h *History) Last(n int) []Record {
	if n < 1 {
		return []Record{}
	}

	h.lock.RLock()
	defer h.lock.RUnlock()

	all := make([]Record, 0, h.size)
	h.records.Do(func(v any) {
		if rec, ok := v.(Record); ok {
			all = append(all, rec)
		}
	})
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all
}

// Spam returns up to n most recent records judged as spam, oldest first
func (h *History) Spam(n int) []Record {
	res := []Record{}
	for _, rec := range h.Last(h.size) {
		if rec.Verdict.Spam {
			res = append(res, rec)
		}
	}
	if len(res) > n {
		res = res[len(res)-n:]
	}
	return res
}

// Size returns the capacity of the history
func (h *History) Size() int { return h.size }

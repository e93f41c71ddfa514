// Package session holds per-browser-session state: the append-only emotion
// history and the current detection.
package session

import (
	"time"

	"github.com/justestif/go-mindful-moments/internal/emotion"
)

// HistoryEntry is one recorded detection. Entries are never mutated after
// they are appended.
type HistoryEntry struct {
	Time     time.Time
	Category emotion.Category
	Score    float64
}

// History is an append-only ordered record of detections. Storage is
// unbounded; callers cap what they render via Recent.
type History struct {
	entries []HistoryEntry
}

// Append adds an entry to the end of the history.
func (h *History) Append(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

// Recent returns up to n entries in most-recent-first order. Non-destructive;
// repeated calls between appends return the same result.
func (h *History) Recent(n int) []HistoryEntry {
	if n > len(h.entries) {
		n = len(h.entries)
	}
	if n <= 0 {
		return nil
	}

	out := make([]HistoryEntry, 0, n)
	for i := len(h.entries) - 1; i >= len(h.entries)-n; i-- {
		out = append(out, h.entries[i])
	}
	return out
}

// Len returns the total number of entries recorded.
func (h *History) Len() int {
	return len(h.entries)
}

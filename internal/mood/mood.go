package mood

import (
	"slices"
	"sync"
	"time"
)

type Type string

const (
	TypeExcellent Type = "excellent"
	TypeGood      Type = "good"
	TypeOkay      Type = "okay"
	TypePoor      Type = "poor"
	TypeTerrible  Type = "terrible"
)

func (t Type) Valid() bool {
	switch t {
	case TypeExcellent, TypeGood, TypeOkay, TypePoor, TypeTerrible:
		return true
	}
	return false
}

// Entry is a single mood log. Date is a plain calendar day (2006-01-02).
type Entry struct {
	Date string `json:"date"`
	Mood Type   `json:"mood"`
	Note string `json:"note,omitempty"`
}

// Tracker keeps per-user mood logs in memory. Mood data is deliberately not
// persisted alongside the fitness progress.
type Tracker struct {
	mu      sync.RWMutex
	entries map[string][]Entry
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		entries: make(map[string][]Entry),
		now:     time.Now,
	}
}

// Log records a mood for the given user, stamped with today's date.
func (t *Tracker) Log(userID string, moodType Type, note string) Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry := Entry{
		Date: t.now().Format("2006-01-02"),
		Mood: moodType,
		Note: note,
	}
	t.entries[userID] = append(t.entries[userID], entry)
	return entry
}

// Recent returns up to limit entries for the user, newest first.
func (t *Tracker) Recent(userID string, limit int) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries := t.entries[userID]
	recent := slices.Clone(entries)
	slices.Reverse(recent)
	if len(recent) > limit {
		recent = recent[:limit]
	}
	if recent == nil {
		recent = []Entry{}
	}
	return recent
}

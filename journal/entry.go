package journal

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single journal record. Entries are immutable once created; the
// store only prepends new ones and truncates the oldest.
type Entry struct {
	ID      string   `json:"id"`
	Date    string   `json:"date"`
	Emotion string   `json:"emotion"`
	Prompts []string `json:"prompts"`
	Answer  string   `json:"answer"`
}

// NewEntry stamps a fresh entry with an id and the current time. The emotion
// label is stored as typed; it is never normalized against a closed set.
func NewEntry(emotion string, prompts []string, answer string) Entry {
	return Entry{
		ID:      uuid.NewString(),
		Date:    time.Now().UTC().Format(time.RFC3339),
		Emotion: emotion,
		Prompts: append([]string(nil), prompts...),
		Answer:  answer,
	}
}

// Time parses the entry's creation timestamp. ok is false when the stored
// date is not RFC 3339; such entries are skipped by time-bucketed views.
func (e Entry) Time() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

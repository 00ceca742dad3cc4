package server

import (
	"net/http"

	"github.com/innerprompt/innerprompt/journal"
)

// StatsResponse is the aggregate view for GET /api/stats: encounter-ordered
// frequency, zero-filled trend series over sorted buckets, the top three
// emotions, and the positive/negative totals.
type StatsResponse struct {
	Frequency []journal.EmotionCount `json:"frequency"`
	Buckets   []string               `json:"buckets"`
	Series    []journal.TrendSeries  `json:"series"`
	Top       []journal.EmotionCount `json:"top"`
	Positive  int                    `json:"positive"`
	Negative  int                    `json:"negative"`
}

// HandleStats recomputes aggregate statistics from the stored log. Nothing
// is cached or maintained incrementally; each call derives from scratch.
// ?range= selects day, week, or month buckets (default month).
func (d *Deps) HandleStats(w http.ResponseWriter, r *http.Request) {
	g := journal.Granularity(r.URL.Query().Get("range"))
	if g == "" {
		g = journal.ByMonth
	}
	switch g {
	case journal.ByDay, journal.ByWeek, journal.ByMonth:
	default:
		jsonError(w, "Invalid range", http.StatusBadRequest)
		return
	}

	entries := d.Journal.Load()
	freq := journal.Frequency(entries)
	trend := journal.TrendOf(entries, g)
	positive, negative := journal.Ratio(freq)

	jsonOK(w, StatsResponse{
		Frequency: freq,
		Buckets:   trend.Buckets,
		Series:    trend.Series,
		Top:       journal.TopEmotions(freq, 3),
		Positive:  positive,
		Negative:  negative,
	})
}

// HandleCompanion returns the care content for one of the ten suggested
// emotion labels.
func (d *Deps) HandleCompanion(w http.ResponseWriter, r *http.Request) {
	emotion := r.URL.Query().Get("emotion")
	if emotion == "" {
		jsonError(w, "Emotion is required", http.StatusBadRequest)
		return
	}

	companion, ok := journal.CompanionFor(emotion)
	if !ok {
		jsonError(w, "Unknown emotion", http.StatusNotFound)
		return
	}

	jsonOK(w, companion)
}

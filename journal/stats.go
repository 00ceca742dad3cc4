package journal

import (
	"fmt"
	"sort"
	"time"
)

// Granularity selects the trend bucket size.
type Granularity string

const (
	ByDay   Granularity = "day"
	ByWeek  Granularity = "week"
	ByMonth Granularity = "month"
)

// EmotionCount pairs an emotion label with its number of entries.
type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

// Frequency counts entries per emotion label. Labels keep the order in which
// they were first encountered in the log, so chart colors stay stable across
// reloads.
func Frequency(entries []Entry) []EmotionCount {
	idx := make(map[string]int)
	var freq []EmotionCount
	for _, e := range entries {
		if i, ok := idx[e.Emotion]; ok {
			freq[i].Count++
			continue
		}
		idx[e.Emotion] = len(freq)
		freq = append(freq, EmotionCount{Emotion: e.Emotion, Count: 1})
	}
	return freq
}

// TopEmotions returns the n most frequent emotions in descending count
// order. Ties keep first-encountered order (stable sort over the frequency
// list).
func TopEmotions(freq []EmotionCount, n int) []EmotionCount {
	top := append([]EmotionCount(nil), freq...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if n >= 0 && len(top) > n {
		top = top[:n]
	}
	return top
}

// BucketKey derives the trend grouping identifier for t.
//
// Day and month keys use 1-based, unpadded numbers ("2024-3-5", "2024-3").
// The week key is {year}-W{ceil((dayOfMonth + weekday)/7)} with Sunday as
// weekday 0. That arithmetic is not ISO-8601 and is knowingly kept that way:
// existing journals were bucketed under these keys, so "fixing" the formula
// would split history across mismatched series.
func BucketKey(t time.Time, g Granularity) string {
	switch g {
	case ByDay:
		return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
	case ByWeek:
		week := (t.Day() + int(t.Weekday()) + 6) / 7
		return fmt.Sprintf("%d-W%d", t.Year(), week)
	default:
		return fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
	}
}

// TrendSeries is one emotion's per-bucket counts, aligned with
// Trend.Buckets.
type TrendSeries struct {
	Emotion string `json:"emotion"`
	Counts  []int  `json:"counts"`
}

// Trend is the bucketed view of the log for one granularity. Every emotion
// seen anywhere in the history gets a series covering every bucket, with
// zeroes where it did not occur.
type Trend struct {
	Buckets []string      `json:"buckets"`
	Series  []TrendSeries `json:"series"`
}

// TrendOf groups entry counts by the bucket key of their creation time.
// Buckets are sorted lexically; series follow frequency (first-encounter)
// order. Entries whose date does not parse are left out of the buckets but
// still contribute an all-zero series through Frequency.
func TrendOf(entries []Entry, g Granularity) Trend {
	counts := make(map[string]map[string]int)
	var buckets []string
	for _, e := range entries {
		t, ok := e.Time()
		if !ok {
			continue
		}
		key := BucketKey(t, g)
		if counts[key] == nil {
			counts[key] = make(map[string]int)
			buckets = append(buckets, key)
		}
		counts[key][e.Emotion]++
	}
	sort.Strings(buckets)

	var series []TrendSeries
	for _, ec := range Frequency(entries) {
		row := TrendSeries{Emotion: ec.Emotion, Counts: make([]int, len(buckets))}
		for i, b := range buckets {
			row.Counts[i] = counts[b][ec.Emotion]
		}
		series = append(series, row)
	}
	return Trend{Buckets: buckets, Series: series}
}

var positiveEmotions = map[string]bool{
	"Happy":    true,
	"Calm":     true,
	"Love":     true,
	"Grateful": true,
}

var negativeEmotions = map[string]bool{
	"Sad":        true,
	"Angry":      true,
	"Anxious":    true,
	"Lonely":     true,
	"Frustrated": true,
	"Tired":      true,
}

// Ratio sums frequency counts over the fixed positive and negative label
// sets. The partition recognizes only the ten suggested labels, exact case;
// free-text emotions outside it count toward neither side even though they
// appear in frequency and trend views.
func Ratio(freq []EmotionCount) (positive, negative int) {
	for _, ec := range freq {
		switch {
		case positiveEmotions[ec.Emotion]:
			positive += ec.Count
		case negativeEmotions[ec.Emotion]:
			negative += ec.Count
		}
	}
	return positive, negative
}

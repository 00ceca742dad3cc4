package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/innerprompt/innerprompt/journal"
	"github.com/innerprompt/innerprompt/journal/gateway"
)

type stubAnalyzer struct {
	emotion string
	err     error
}

func (s stubAnalyzer) AnalyzeEmotion(ctx context.Context, answer string) (string, error) {
	if strings.TrimSpace(answer) == "" {
		return "", gateway.ErrEmptyAnswer
	}
	return s.emotion, s.err
}

type stubPrompter struct {
	prompts []string
	err     error
}

func (s stubPrompter) GeneratePrompts(ctx context.Context, emotion string) ([]string, error) {
	return s.prompts, s.err
}

type stubSummarizer struct {
	insight gateway.JournalInsight
	err     error
}

func (s stubSummarizer) SummarizeJournal(ctx context.Context, entries []journal.Entry) (gateway.JournalInsight, error) {
	return s.insight, s.err
}

func newTestDeps(t *testing.T) *Deps {
	t.Helper()
	return &Deps{
		Journal:  journal.NewStore(filepath.Join(t.TempDir(), "journal.json")),
		Analyzer: stubAnalyzer{emotion: "Happy"},
		Prompter: stubPrompter{prompts: []string{"p1", "p2", "p3"}},
	}
}

func do(t *testing.T, deps *Deps, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	deps.Routes().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, rec, &body)
	return body["error"]
}

func TestAnalyzeEmotion_OK(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestDeps(t), http.MethodPost, "/api/analyze-emotion", `{"answer":"today was lovely"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["emotion"] != "Happy" {
		t.Fatalf("emotion=%q", body["emotion"])
	}
}

func TestAnalyzeEmotion_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestDeps(t), http.MethodGet, "/api/analyze-emotion", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("code=%d", rec.Code)
	}
	if got := errorBody(t, rec); got != "Method not allowed" {
		t.Fatalf("error=%q", got)
	}
}

func TestAnalyzeEmotion_MissingAnswer(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	for _, body := range []string{`{}`, `{"answer":""}`, `{"answer":"   "}`, `not json`} {
		rec := do(t, deps, http.MethodPost, "/api/analyze-emotion", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body=%s code=%d", body, rec.Code)
		}
		if got := errorBody(t, rec); got != "Answer is required" {
			t.Fatalf("body=%s error=%q", body, got)
		}
	}
}

func TestAnalyzeEmotion_GatewayFailure(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	deps.Analyzer = stubAnalyzer{err: &gateway.GatewayError{Action: "analyze emotion", Err: errors.New("upstream down")}}

	rec := do(t, deps, http.MethodPost, "/api/analyze-emotion", `{"answer":"hmm"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d", rec.Code)
	}
	// Upstream detail stays on the diagnostic log, not in the response.
	if got := errorBody(t, rec); got != "Failed to analyze emotion" {
		t.Fatalf("error=%q", got)
	}
}

func TestAnalyzeEmotion_NoKeyConfigured(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	deps.Analyzer = nil
	rec := do(t, deps, http.MethodPost, "/api/analyze-emotion", `{"answer":"hmm"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestGeneratePrompts_OK(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestDeps(t), http.MethodPost, "/api/generate", `{"emotion":"Melancholy"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var body map[string][]string
	decodeBody(t, rec, &body)
	if len(body["prompts"]) != 3 {
		t.Fatalf("prompts=%v", body["prompts"])
	}
}

func TestGeneratePrompts_MissingEmotion(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestDeps(t), http.MethodPost, "/api/generate", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", rec.Code)
	}
	if got := errorBody(t, rec); got != "Emotion is required" {
		t.Fatalf("error=%q", got)
	}
}

func TestGeneratePrompts_GatewayFailure(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	deps.Prompter = stubPrompter{err: errors.New("upstream down")}
	rec := do(t, deps, http.MethodPost, "/api/generate", `{"emotion":"Sad"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d", rec.Code)
	}
	if got := errorBody(t, rec); got != "Failed to generate prompts" {
		t.Fatalf("error=%q", got)
	}
}

func TestEntries_RoundTrip(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	rec := do(t, deps, http.MethodPost, "/api/entries", `{"emotion":"Happy","prompts":["p1"],"answer":"a"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create code=%d body=%s", rec.Code, rec.Body.String())
	}
	var created journal.Entry
	decodeBody(t, rec, &created)
	if created.ID == "" || created.Date == "" {
		t.Fatalf("created=%+v", created)
	}

	rec = do(t, deps, http.MethodGet, "/api/entries", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list code=%d", rec.Code)
	}
	var entries []journal.Entry
	decodeBody(t, rec, &entries)
	if len(entries) != 1 || entries[0].ID != created.ID {
		t.Fatalf("entries=%+v", entries)
	}
}

func TestCreateEntry_MissingEmotion(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestDeps(t), http.MethodPost, "/api/entries", `{"answer":"a"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", rec.Code)
	}
	if got := errorBody(t, rec); got != "Emotion is required" {
		t.Fatalf("error=%q", got)
	}
}

func TestStats_AggregatesStoredLog(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	for _, emotion := range []string{"Happy", "Happy", "Sad", "Excited"} {
		if err := deps.Journal.Append(journal.NewEntry(emotion, nil, "")); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	rec := do(t, deps, http.MethodGet, "/api/stats?range=month", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var stats StatsResponse
	decodeBody(t, rec, &stats)
	if stats.Positive != 2 || stats.Negative != 1 {
		t.Fatalf("positive=%d negative=%d", stats.Positive, stats.Negative)
	}
	if len(stats.Frequency) != 3 || len(stats.Buckets) != 1 {
		t.Fatalf("frequency=%v buckets=%v", stats.Frequency, stats.Buckets)
	}
	if len(stats.Top) != 3 || stats.Top[0].Emotion != "Happy" {
		t.Fatalf("top=%v", stats.Top)
	}
}

func TestStats_InvalidRange(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestDeps(t), http.MethodGet, "/api/stats?range=year", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestCompanion_KnownAndUnknown(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	rec := do(t, deps, http.MethodGet, "/api/companion?emotion=Happy", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d", rec.Code)
	}
	var c journal.Companion
	decodeBody(t, rec, &c)
	if c.Quote == "" || c.Music.URL == "" {
		t.Fatalf("companion=%+v", c)
	}

	rec = do(t, deps, http.MethodGet, "/api/companion?emotion=Excited", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code=%d", rec.Code)
	}
	rec = do(t, deps, http.MethodGet, "/api/companion", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestInsight_EmptyJournal(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	deps.Summarizer = stubSummarizer{}
	rec := do(t, deps, http.MethodPost, "/api/insight", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestInsight_OK(t *testing.T) {
	t.Parallel()

	deps := newTestDeps(t)
	deps.Summarizer = stubSummarizer{insight: gateway.JournalInsight{EmotionalSummary: "a steady week"}}
	if err := deps.Journal.Append(journal.NewEntry("Calm", nil, "quiet day")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	rec := do(t, deps, http.MethodPost, "/api/insight", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var insight gateway.JournalInsight
	decodeBody(t, rec, &insight)
	if insight.EmotionalSummary != "a steady week" {
		t.Fatalf("insight=%+v", insight)
	}
}

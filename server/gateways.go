package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/innerprompt/innerprompt/journal/gateway"
)

// AnalyzeEmotionRequest is the JSON body for POST /api/analyze-emotion.
type AnalyzeEmotionRequest struct {
	Answer string `json:"answer"`
}

// HandleAnalyzeEmotion classifies a journal answer into a single emotion
// word. The result is display-only; nothing is persisted here.
func (d *Deps) HandleAnalyzeEmotion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if d.Analyzer == nil {
		jsonError(w, "OpenAI API key not configured", http.StatusServiceUnavailable)
		return
	}

	var req AnalyzeEmotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answer == "" {
		jsonError(w, "Answer is required", http.StatusBadRequest)
		return
	}

	emotion, err := d.Analyzer.AnalyzeEmotion(r.Context(), req.Answer)
	if err != nil {
		if errors.Is(err, gateway.ErrEmptyAnswer) {
			jsonError(w, "Answer is required", http.StatusBadRequest)
			return
		}
		log.Printf("analyze emotion: %v", err)
		jsonError(w, "Failed to analyze emotion", http.StatusInternalServerError)
		return
	}

	jsonOK(w, map[string]string{"emotion": emotion})
}

// GeneratePromptsRequest is the JSON body for POST /api/generate.
type GeneratePromptsRequest struct {
	Emotion string `json:"emotion"`
}

// HandleGeneratePrompts resolves journal prompts for an emotion label,
// lexicon first, completion API on a miss.
func (d *Deps) HandleGeneratePrompts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if d.Prompter == nil {
		jsonError(w, "OpenAI API key not configured", http.StatusServiceUnavailable)
		return
	}

	var req GeneratePromptsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Emotion == "" {
		jsonError(w, "Emotion is required", http.StatusBadRequest)
		return
	}

	prompts, err := d.Prompter.GeneratePrompts(r.Context(), req.Emotion)
	if err != nil {
		log.Printf("generate prompts: %v", err)
		jsonError(w, "Failed to generate prompts", http.StatusInternalServerError)
		return
	}

	jsonOK(w, map[string][]string{"prompts": prompts})
}

// HandleInsight summarizes the stored journal log into a structured insight.
func (d *Deps) HandleInsight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if d.Summarizer == nil {
		jsonError(w, "OpenAI API key not configured", http.StatusServiceUnavailable)
		return
	}

	entries := d.Journal.Load()
	if len(entries) == 0 {
		jsonError(w, "Journal is empty", http.StatusBadRequest)
		return
	}

	insight, err := d.Summarizer.SummarizeJournal(r.Context(), entries)
	if err != nil {
		log.Printf("summarize journal: %v", err)
		jsonError(w, "Failed to summarize journal", http.StatusInternalServerError)
		return
	}

	jsonOK(w, insight)
}

package server

import (
	"context"

	"github.com/innerprompt/innerprompt/journal"
	"github.com/innerprompt/innerprompt/journal/gateway"
)

// EmotionAnalyzer classifies a free-text journal answer into one emotion
// word.
type EmotionAnalyzer interface {
	AnalyzeEmotion(ctx context.Context, answer string) (string, error)
}

// PromptGenerator resolves reflective prompts for an emotion label.
type PromptGenerator interface {
	GeneratePrompts(ctx context.Context, emotion string) ([]string, error)
}

// JournalSummarizer produces a structured insight over the journal log.
type JournalSummarizer interface {
	SummarizeJournal(ctx context.Context, entries []journal.Entry) (gateway.JournalInsight, error)
}

// Deps holds all handler dependencies. A nil gateway means the completion
// API is not configured; its routes answer 503.
type Deps struct {
	Journal    *journal.Store
	Analyzer   EmotionAnalyzer
	Prompter   PromptGenerator
	Summarizer JournalSummarizer
}

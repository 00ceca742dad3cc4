package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"

	"github.com/innerprompt/innerprompt/journal"
)

const analyzeEmotionInstruction = "You are an assistant that extracts the main emotion from a journal entry. " +
	"Reply with only one English emotion word (e.g., Happy, Sad, Angry, Calm, Anxious, Love, Lonely, Frustrated, Grateful, Tired)."

const generatePromptsInstruction = "You are a helpful assistant that generates journal prompts based on emotions. " +
	"Generate 3 thoughtful and reflective prompts that help users explore their feelings."

// Client fronts the OpenAI completion API for the emotion classifier, the
// prompt generator, and the journal insight summarizer. Stateless; every
// call is a fresh round trip with no caching.
type Client struct {
	client       *openai.Client
	model        string
	insightModel string
}

// NewClient wires a Client over an SDK client. model drives the classifier
// and prompt completions; insightModel drives the structured summarizer and
// falls back to model when empty.
func NewClient(client *openai.Client, model, insightModel string) *Client {
	if insightModel == "" {
		insightModel = model
	}
	return &Client{client: client, model: model, insightModel: insightModel}
}

// AnalyzeEmotion maps a free-text journal answer to a single emotion word.
// The label is whatever token the model produced, sanitized but not mapped
// back to a closed set; it is display-only and never persisted as an entry's
// emotion.
func (c *Client) AnalyzeEmotion(ctx context.Context, answer string) (string, error) {
	if strings.TrimSpace(answer) == "" {
		return "", ErrEmptyAnswer
	}
	if c == nil || c.client == nil {
		return "", &GatewayError{Action: "analyze emotion", Err: errors.New("client is nil")}
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(analyzeEmotionInstruction),
			openai.UserMessage("Journal entry: " + answer),
		},
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(10),
	})
	if err != nil {
		return "", &GatewayError{Action: "analyze emotion", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &GatewayError{Action: "analyze emotion", Err: errors.New("completion has no choices")}
	}

	emotion := journal.FirstWord(resp.Choices[0].Message.Content)
	if emotion == "" {
		return "", &GatewayError{Action: "analyze emotion", Err: errors.New("completion is empty after sanitization")}
	}
	return emotion, nil
}

// GeneratePrompts resolves reflective prompts for an emotion label: the
// static lexicon first (lowercased lookup, no network), the completion API
// on a miss. The empty string is an ordinary miss and still goes remote;
// presence validation belongs to the HTTP boundary. The remote path runs at
// temperature 0.7 and is not deterministic.
func (c *Client) GeneratePrompts(ctx context.Context, emotion string) ([]string, error) {
	if prompts, ok := journal.LexiconPrompts(emotion); ok {
		return prompts, nil
	}
	if c == nil || c.client == nil {
		return nil, &GatewayError{Action: "generate prompts", Err: errors.New("client is nil")}
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(generatePromptsInstruction),
			openai.UserMessage(fmt.Sprintf("Generate 3 journal prompts for someone feeling %s.", emotion)),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(150),
	})
	if err != nil {
		return nil, &GatewayError{Action: "generate prompts", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &GatewayError{Action: "generate prompts", Err: errors.New("completion has no choices")}
	}

	prompts := journal.ParsePromptLines(resp.Choices[0].Message.Content)
	if len(prompts) == 0 {
		return nil, &GatewayError{Action: "generate prompts", Err: errors.New("completion contained no prompt lines")}
	}
	return prompts, nil
}

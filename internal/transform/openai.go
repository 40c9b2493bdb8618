// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultModel = "gpt-4o-mini"

// cleanupInstruction is the fixed prompt sent with every chunk.
const cleanupInstruction = `You are a cleanup system for text extracted from PDF documentation.
Rewrite the following chunk of extracted text:
- preserve technical content, code fragments, and identifiers exactly as written;
- remove extraction artifacts, navigation noise, and redundant repetition;
- do not add commentary, summaries, or explanatory preamble.
Respond with the cleaned text only.`

// OpenAIBackend cleans chunks through the OpenAI chat completions API.
// Requests use zero temperature so the output is deterministic, and SDK
// retries are disabled: a failed call is the stage's signal to fall back.
type OpenAIBackend struct {
	client openai.Client
	model  string
}

// NewOpenAIBackend creates a backend for the given credential. An empty
// model selects the default.
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	if model == "" {
		model = defaultModel
	}
	return &OpenAIBackend{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithMaxRetries(0),
		),
		model: model,
	}
}

// CleanChunk submits one chunk with the cleanup instruction and returns the
// model's single rewritten text.
func (b *OpenAIBackend) CleanChunk(ctx context.Context, chunk string) (string, error) {
	resp, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(b.model),
		Temperature: openai.Float(0),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(cleanupInstruction),
			openai.UserMessage(chunk),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

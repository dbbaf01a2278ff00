package models

import "context"

// ChatLLM runs chat completions against a hosted language model.
type ChatLLM interface {
	// Complete runs a single system + user prompt exchange and returns
	// the generated text. No streaming; the full text is returned at
	// once.
	Complete(
		ctx context.Context,
		systemPrompt string,
		userPrompt string,
		temperature float32,
		maxTokens int,
	) (string, error)
	// GetTokenCount returns the number of tokens in the given text
	GetTokenCount(text string) (int, error)
}

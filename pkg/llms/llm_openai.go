package llms

import (
	"context"
	"sync"

	"github.com/avast/retry-go/v4"
	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/Hemachandra9899/Bacckend/config"
	"github.com/Hemachandra9899/Bacckend/pkg/models"
)

var _ models.ChatLLM = &OpenAIChatLLM{}

func NewOpenAIChatLLM(ctx context.Context, cfg *config.Config) (*OpenAIChatLLM, error) {
	llm := &OpenAIChatLLM{}
	err := llm.Init(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return llm, nil
}

type OpenAIChatLLM struct {
	client *openai.Client
	model  string

	tkmOnce sync.Once
	tkm     *tiktoken.Tiktoken
	tkmErr  error
}

func (llm *OpenAIChatLLM) Init(_ context.Context, cfg *config.Config) error {
	apiKey := cfg.LLM.APIKey
	if apiKey == "" {
		return models.NewCompletionError(GroqAPIKeyNotSetError, nil)
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if cfg.LLM.Endpoint != "" {
		clientConfig.BaseURL = cfg.LLM.Endpoint
	}
	clientConfig.HTTPClient.Timeout = ChatAPITimeout

	llm.client = openai.NewClientWithConfig(clientConfig)
	llm.model = cfg.LLM.Model

	return nil
}

// Complete runs a system + user prompt exchange and returns the generated
// text. The call is retried with backoff; callers see a single success or
// a CompletionError.
func (llm *OpenAIChatLLM) Complete(
	ctx context.Context,
	systemPrompt string,
	userPrompt string,
	temperature float32,
	maxTokens int,
) (string, error) {
	if llm.client == nil {
		return "", models.NewCompletionError("chat client is not initialized", nil)
	}

	llm.logPromptTokens(systemPrompt, userPrompt)

	request := openai.ChatCompletionRequest{
		Model: llm.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	thisCtx, cancel := context.WithTimeout(ctx, ChatAPITimeout)
	defer cancel()

	var response openai.ChatCompletionResponse
	err := retry.Do(
		func() error {
			var err error
			response, err = llm.client.CreateChatCompletion(thisCtx, request)
			return err
		},
		retry.Attempts(MaxChatAPIRequestAttempts),
		retry.Context(thisCtx),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("Retrying chat completion attempt #%d: %s", n, err)
		}),
	)
	if err != nil {
		return "", models.NewCompletionError("chat completion request failed", err)
	}

	if len(response.Choices) == 0 {
		return "", models.NewCompletionError("chat completion returned no choices", nil)
	}

	return response.Choices[0].Message.Content, nil
}

// GetTokenCount returns the number of tokens in the text
func (llm *OpenAIChatLLM) GetTokenCount(text string) (int, error) {
	llm.tkmOnce.Do(func() {
		llm.tkm, llm.tkmErr = tiktoken.GetEncoding("cl100k_base")
	})
	if llm.tkmErr != nil {
		return 0, llm.tkmErr
	}
	return len(llm.tkm.Encode(text, nil, nil)), nil
}

// logPromptTokens reports prompt size at debug level. The tokenizer is
// only loaded when debug logging is on.
func (llm *OpenAIChatLLM) logPromptTokens(systemPrompt, userPrompt string) {
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	count, err := llm.GetTokenCount(systemPrompt + userPrompt)
	if err != nil {
		log.Debugf("failed to count prompt tokens: %s", err)
		return
	}
	log.Debugf("chat completion prompt tokens: %d", count)
}

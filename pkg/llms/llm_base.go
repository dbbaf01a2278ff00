package llms

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Hemachandra9899/Bacckend/config"
	"github.com/Hemachandra9899/Bacckend/internal"
	"github.com/Hemachandra9899/Bacckend/pkg/models"
)

const ChatAPITimeout = 90 * time.Second
const MaxChatAPIRequestAttempts = 3

const GroqAPIKeyNotSetError = "GROQ_API_KEY is not set" //nolint:gosec

var log = internal.GetLogger()

// NewChatClient returns the chat completion client configured by
// llm.service. Groq exposes an OpenAI-compatible endpoint, so both
// services share the same client.
func NewChatClient(ctx context.Context, cfg *config.Config) (models.ChatLLM, error) {
	switch cfg.LLM.Service {
	case "groq", "openai":
		return NewOpenAIChatLLM(ctx, cfg)
	case "":
		// for backward compatibility
		return NewOpenAIChatLLM(ctx, cfg)
	default:
		return nil, fmt.Errorf("invalid LLM service: %s", cfg.LLM.Service)
	}
}

// NewRetryableHTTPClient returns an HTTP client with bounded retry and
// backoff for calls to external APIs.
func NewRetryableHTTPClient(retryMax int, timeout time.Duration) *retryablehttp.Client {
	retryableHTTPClient := retryablehttp.NewClient()
	retryableHTTPClient.RetryMax = retryMax
	retryableHTTPClient.HTTPClient.Timeout = timeout
	retryableHTTPClient.Logger = internal.NewLeveledLogrus(log)
	retryableHTTPClient.Backoff = retryablehttp.DefaultBackoff
	retryableHTTPClient.CheckRetry = retryPolicy

	return retryableHTTPClient
}

// retryPolicy is a retryablehttp.CheckRetry function. It is used to determine
// whether a request should be retried or not.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	// do not retry on context.Canceled or context.DeadlineExceeded
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	// Do not retry 400 errors as they're used by OpenAI-compatible APIs
	// to indicate maximum context length exceeded
	if resp != nil && resp.StatusCode == 400 {
		return false, err
	}

	shouldRetry, _ := retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	return shouldRetry, nil
}

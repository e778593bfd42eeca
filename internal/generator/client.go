package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

const defaultModel = "claude-sonnet-4-5"

// requestTimeout bounds every provider round trip; a slow provider makes
// that one request slow, nothing else blocks on it.
const requestTimeout = 60 * time.Second

// Config is the user-supplied provider configuration. Endpoint and key come
// from the caller's settings, not from server env, so each user talks to
// their own account.
type Config struct {
	Endpoint   string
	APIKey     string
	Model      string
	RolePrompt string
}

// UpstreamError wraps any provider failure: unreachable endpoint, HTTP
// error, or a response that does not parse as the expected shape.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ai provider %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// GeneratedQuestion is one parsed question from the provider response.
type GeneratedQuestion struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

func newClient(cfg Config) anthropic.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Failures surface to the caller; retry policy belongs to the
		// transport layer, not here.
		option.WithMaxRetries(0),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}
	return anthropic.NewClient(opts...)
}

func modelFor(cfg Config) anthropic.Model {
	if cfg.Model != "" {
		return anthropic.Model(cfg.Model)
	}
	return anthropic.Model(defaultModel)
}

// Generate requests count reflection questions, optionally steered toward
// the given preferred categories, and parses the strict JSON reply.
func Generate(ctx context.Context, cfg Config, count int, categories []string) ([]GeneratedQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	client := newClient(cfg)

	params := anthropic.MessageNewParams{
		Model:       modelFor(cfg),
		MaxTokens:   2048,
		Temperature: param.NewOpt(0.9),
		System: []anthropic.TextBlockParam{
			{Text: SystemPrompt(cfg.RolePrompt)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildUserPrompt(count, categories))),
		},
	}

	message, err := client.Messages.New(ctx, params)
	if err != nil {
		return nil, &UpstreamError{Op: "generate", Err: err}
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}
	if responseText == "" {
		return nil, &UpstreamError{Op: "generate", Err: fmt.Errorf("no text content in response")}
	}

	questions, err := ParseQuestions(responseText)
	if err != nil {
		return nil, &UpstreamError{Op: "parse", Err: err}
	}
	return questions, nil
}

// Ping performs one minimal round trip to validate credentials and
// connectivity, reporting latency in milliseconds.
func Ping(ctx context.Context, cfg Config) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	client := newClient(cfg)

	start := time.Now()
	_, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     modelFor(cfg),
		MaxTokens: 1,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock("ping")),
		},
	})
	if err != nil {
		return 0, &UpstreamError{Op: "ping", Err: err}
	}
	return time.Since(start).Milliseconds(), nil
}

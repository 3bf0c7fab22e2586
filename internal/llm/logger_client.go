package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/tmc/langchaingo/llms"
)

// LoggerClient traces every chat-completion request at debug level.
type LoggerClient struct {
	client llms.Model
}

// GenerateContent implements llms.Model.
func (c *LoggerClient) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	ctx = slogx.WithAttrs(ctx, slog.String("llm_request", "chat_completion"))

	before := time.Now()
	defer func() {
		slog.DebugContext(ctx, "llm request completed", slog.Duration("duration", time.Since(before)))
	}()

	slog.DebugContext(ctx, "llm request started")

	return c.client.GenerateContent(ctx, messages, options...)
}

// Call implements llms.Model.
func (c *LoggerClient) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, c, prompt, options...)
}

func NewLoggerClient(client llms.Model) *LoggerClient {
	return &LoggerClient{
		client: client,
	}
}

var _ llms.Model = &LoggerClient{}

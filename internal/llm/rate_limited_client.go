package llm

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"golang.org/x/time/rate"
)

// RateLimitedClient enforces a minimum delay between completion requests.
type RateLimitedClient struct {
	limiter *rate.Limiter
	client  llms.Model
}

// GenerateContent implements llms.Model.
func (r *RateLimitedClient) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	return r.client.GenerateContent(ctx, messages, options...)
}

// Call implements llms.Model.
func (r *RateLimitedClient) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, r, prompt, options...)
}

func NewRateLimitedClient(client llms.Model, minDelay time.Duration) *RateLimitedClient {
	return &RateLimitedClient{
		limiter: rate.NewLimiter(rate.Every(minDelay), 1),
		client:  client,
	}
}

var _ llms.Model = &RateLimitedClient{}

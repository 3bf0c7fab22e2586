package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/retrospect/internal/config"
	retrollm "github.com/bornholm/retrospect/internal/llm"
	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// getLLMClient returns the decorated chat-completion client, or nil when
// no API key is configured. A nil client is not an error here: the
// generator degrades to its error placeholder instead of aborting the run.
var getLLMClient = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (llms.Model, error) {
	provider := conf.LLM.Provider

	if provider.Key == "" {
		slog.ErrorContext(ctx, "no API key configured, set OPENAI_API_KEY in .env or as an environment variable")
		return nil, nil
	}

	client, err := openai.New(
		openai.WithToken(provider.Key),
		openai.WithModel(provider.ChatCompletionModel),
		openai.WithBaseURL(provider.BaseURL),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not create chat completion client")
	}

	var model llms.Model = retrollm.NewLoggerClient(client)

	if provider.RateLimit != 0 {
		model = retrollm.NewRateLimitedClient(model, provider.RateLimit)
	}

	return model, nil
})

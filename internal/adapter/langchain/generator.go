package langchain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bornholm/retrospect/internal/core/port"
	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
)

const reportSystemPrompt = "You are an advanced personal development assistant, skilled in helping users" +
	" gain deeper self-awareness and create practical action plans based on their" +
	" daily notes. Your goal is to help the user uncover hidden aspects or patterns" +
	" they may not notice, and guide them to a concrete 1-week plan to address" +
	" opportunities or challenges. Provide thoughtful insights and constructive," +
	" realistic next steps."

const reportUserPromptTemplate = `Below is the user's journal or daily records for the specified period. Please read it carefully, and produce a thorough review that includes:

1. Key Observations:
   - Summarize the main themes, trends, and recurring patterns.
2. Self-Awareness & Hidden Insights:
   - Highlight any emotional/behavioral patterns the user might not realize.
   - Discuss potential root causes or motivations.
3. Reflection & Next Steps:
   - Suggest how the user can reflect on these insights to learn more about themselves.
   - Offer a clear and concrete 1-week action plan with steps for improvement, habit formation, or problem-solving.

Be sure the final output helps the user gain new self-awareness and practical guidance for the coming week.

%s`

// ReportGenerator produces the self-reflection report from the combined
// journal text via a chat-completion model.
type ReportGenerator struct {
	client      llms.Model
	maxTokens   int
	temperature float64
}

// Generate implements port.Generator. A nil client means no API key was
// configured; this fails without issuing any network call.
func (g *ReportGenerator) Generate(ctx context.Context, text string) (string, error) {
	if g.client == nil {
		return "", errors.New("no chat completion client configured, check that the API key is set")
	}

	res, err := g.client.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, reportSystemPrompt),
			llms.TextParts(llms.ChatMessageTypeHuman, fmt.Sprintf(reportUserPromptTemplate, text)),
		},
		llms.WithMaxTokens(g.maxTokens),
		llms.WithTemperature(g.temperature),
	)
	if err != nil {
		return "", errors.Wrap(err, "could not retrieve chat completion")
	}

	if len(res.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	slog.InfoContext(ctx, "chat completion succeeded")

	return strings.TrimSpace(res.Choices[0].Content), nil
}

func NewReportGenerator(client llms.Model, maxTokens int, temperature float64) *ReportGenerator {
	return &ReportGenerator{
		client:      client,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

var _ port.Generator = &ReportGenerator{}

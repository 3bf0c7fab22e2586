package langchain

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	response *llms.ContentResponse
	err      error

	calls    int
	messages []llms.MessageContent
	options  llms.CallOptions
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.calls++
	m.messages = messages

	for _, opt := range options {
		opt(&m.options)
	}

	return m.response, m.err
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestReportGeneratorGenerate(t *testing.T) {
	model := &fakeModel{
		response: &llms.ContentResponse{
			Choices: []*llms.ContentChoice{
				{Content: "  a thoughtful report  \n"},
			},
		},
	}

	generator := NewReportGenerator(model, 2500, 0.7)

	report, err := generator.Generate(context.Background(), "journal text")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "a thoughtful report", report; e != g {
		t.Errorf("report: expected '%s', got '%s'", e, g)
	}

	if e, g := 1, model.calls; e != g {
		t.Errorf("calls: expected '%d', got '%d'", e, g)
	}

	if e, g := 2, len(model.messages); e != g {
		t.Fatalf("len(messages): expected '%d', got '%d'", e, g)
	}

	if e, g := llms.ChatMessageTypeSystem, model.messages[0].Role; e != g {
		t.Errorf("messages[0].Role: expected '%s', got '%s'", e, g)
	}

	if e, g := llms.ChatMessageTypeHuman, model.messages[1].Role; e != g {
		t.Errorf("messages[1].Role: expected '%s', got '%s'", e, g)
	}

	userPart, ok := model.messages[1].Parts[0].(llms.TextContent)
	if !ok {
		t.Fatalf("messages[1].Parts[0]: expected a text part, got %T", model.messages[1].Parts[0])
	}

	// The journal text is embedded verbatim in the instructional template
	if !strings.Contains(userPart.Text, "journal text") {
		t.Errorf("user prompt does not embed the journal text: '%s'", userPart.Text)
	}

	if !strings.Contains(userPart.Text, "1-week action plan") {
		t.Errorf("user prompt does not request an action plan: '%s'", userPart.Text)
	}

	if e, g := 2500, model.options.MaxTokens; e != g {
		t.Errorf("options.MaxTokens: expected '%d', got '%d'", e, g)
	}

	if e, g := 0.7, model.options.Temperature; e != g {
		t.Errorf("options.Temperature: expected '%v', got '%v'", e, g)
	}
}

func TestReportGeneratorGenerateWithoutClient(t *testing.T) {
	generator := NewReportGenerator(nil, 2500, 0.7)

	if _, err := generator.Generate(context.Background(), "journal text"); err == nil {
		t.Error("expected an error, got nil")
	}
}

func TestReportGeneratorGenerateServiceFailure(t *testing.T) {
	model := &fakeModel{
		err: errors.New("quota exceeded"),
	}

	generator := NewReportGenerator(model, 2500, 0.7)

	if _, err := generator.Generate(context.Background(), "journal text"); err == nil {
		t.Error("expected an error, got nil")
	}
}

func TestReportGeneratorGenerateEmptyResponse(t *testing.T) {
	model := &fakeModel{
		response: &llms.ContentResponse{},
	}

	generator := NewReportGenerator(model, 2500, 0.7)

	if _, err := generator.Generate(context.Background(), "journal text"); err == nil {
		t.Error("expected an error, got nil")
	}
}

package setup

import (
	"context"

	"github.com/bornholm/retrospect/internal/adapter/googleworkspace"
	"github.com/bornholm/retrospect/internal/adapter/langchain"
	"github.com/bornholm/retrospect/internal/config"
	"github.com/bornholm/retrospect/internal/core/service"
	"github.com/pkg/errors"
)

// NewReportManagerFromConfig wires the full pipeline: Drive locator, Docs
// extractor, chat-completion generator and Drive+Docs writer.
func NewReportManagerFromConfig(ctx context.Context, conf *config.Config) (*service.ReportManager, error) {
	driveService, err := getDriveService(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	docsService, err := getDocsService(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	llmClient, err := getLLMClient(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	generator := langchain.NewReportGenerator(llmClient, conf.LLM.Provider.MaxTokens, conf.LLM.Provider.Temperature)

	return service.NewReportManager(
		googleworkspace.NewLocator(driveService),
		googleworkspace.NewExtractor(docsService),
		generator,
		googleworkspace.NewWriter(driveService, docsService),
	), nil
}

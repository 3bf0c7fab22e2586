package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/retrospect/internal/core/model"
	"github.com/bornholm/retrospect/internal/core/port"
)

// ErrorReportPlaceholder is written as the report body when the generator
// fails. The run is still considered successful; the failure is only
// visible in the log.
const ErrorReportPlaceholder = "Error: could not generate a report."

// ReportManager sequences a single pipeline run: locate journal documents,
// flatten their text, generate the report and write it back to the store.
type ReportManager struct {
	locator   port.Locator
	extractor port.Extractor
	generator port.Generator
	writer    port.Writer
}

// Run executes the pipeline for the given range. Finding no journal
// document is a normal outcome: the run terminates without producing a
// report.
func (m *ReportManager) Run(ctx context.Context, r model.DateRange, sourceFolderID, reportFolderID string) error {
	documents := m.locator.Locate(ctx, sourceFolderID, r)
	if len(documents) == 0 {
		slog.InfoContext(ctx, "no documents found within the specified date range")
		return nil
	}

	slog.InfoContext(ctx, "found documents in the specified date range", slog.Int("total", len(documents)))

	var combined strings.Builder
	for _, doc := range documents {
		combined.WriteString(m.extractor.Extract(ctx, doc.ID))
		combined.WriteString("\n")
	}

	content, err := m.generator.Generate(ctx, combined.String())
	if err != nil {
		slog.ErrorContext(ctx, "could not generate report", slogx.Error(err))
		content = ErrorReportPlaceholder
	}

	name := r.ReportName()

	m.writer.Write(ctx, reportFolderID, name, content)

	slog.InfoContext(ctx, "pipeline completed", slog.String("report", name))

	return nil
}

func NewReportManager(locator port.Locator, extractor port.Extractor, generator port.Generator, writer port.Writer) *ReportManager {
	return &ReportManager{
		locator:   locator,
		extractor: extractor,
		generator: generator,
		writer:    writer,
	}
}

package googleworkspace

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/retrospect/internal/core/port"
	"github.com/pkg/errors"
	"google.golang.org/api/docs/v1"
)

// Extractor flattens a Google Docs body to plain text.
type Extractor struct {
	docs *docs.Service
}

// Extract implements port.Extractor. A retrieval failure is logged and
// contributes an empty string; the batch continues without this document.
func (e *Extractor) Extract(ctx context.Context, documentID string) string {
	slog.InfoContext(ctx, "extracting document content", slog.String("document_id", documentID))

	doc, err := e.docs.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve document content", slog.String("document_id", documentID), slogx.Error(errors.WithStack(err)))
		return ""
	}

	return flattenBody(doc.Body)
}

// flattenBody appends every text run of every paragraph in document
// order, exactly as given. Non-paragraph elements and non-text runs
// contribute nothing.
func flattenBody(body *docs.Body) string {
	if body == nil {
		return ""
	}

	var sb strings.Builder

	for _, element := range body.Content {
		if element.Paragraph == nil {
			continue
		}

		for _, el := range element.Paragraph.Elements {
			if el.TextRun == nil {
				continue
			}

			sb.WriteString(el.TextRun.Content)
		}
	}

	return sb.String()
}

func NewExtractor(docsService *docs.Service) *Extractor {
	return &Extractor{
		docs: docsService,
	}
}

var _ port.Extractor = &Extractor{}

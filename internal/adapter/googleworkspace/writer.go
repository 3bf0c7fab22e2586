package googleworkspace

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/retrospect/internal/core/port"
	"github.com/pkg/errors"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
)

// Writer creates report documents: one Drive create of an empty Google
// Doc, then one Docs insertion of the report text.
type Writer struct {
	drive *drive.Service
	docs  *docs.Service
}

// Write implements port.Writer. Failures are logged only; there is no
// retry and no rollback, so an insertion failure can leave an empty
// document behind.
func (w *Writer) Write(ctx context.Context, folderID string, name string, content string) {
	slog.InfoContext(ctx, "creating report document", slog.String("name", name))

	metadata := &drive.File{
		Name:     name,
		MimeType: documentMimeType,
		Parents:  []string{folderID},
	}

	created, err := w.drive.Files.Create(metadata).Fields("id").Context(ctx).Do()
	if err != nil {
		slog.ErrorContext(ctx, "could not create report document", slogx.Error(errors.WithStack(err)))
		return
	}

	update := &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{
			{
				InsertText: &docs.InsertTextRequest{
					Location: &docs.Location{Index: 1},
					Text:     content,
				},
			},
		},
	}

	if _, err := w.docs.Documents.BatchUpdate(created.Id, update).Context(ctx).Do(); err != nil {
		slog.ErrorContext(ctx, "could not insert report content", slog.String("document_id", created.Id), slogx.Error(errors.WithStack(err)))
		return
	}

	slog.InfoContext(ctx, "report document created", slog.String("document_id", created.Id))
}

func NewWriter(driveService *drive.Service, docsService *docs.Service) *Writer {
	return &Writer{
		drive: driveService,
		docs:  docsService,
	}
}

var _ port.Writer = &Writer{}

package googleworkspace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/retrospect/internal/core/model"
	"github.com/bornholm/retrospect/internal/core/port"
	"github.com/pkg/errors"
	"google.golang.org/api/drive/v3"
)

const documentMimeType = "application/vnd.google-apps.document"

// Locator finds journal documents in a Drive folder by their localized
// date prefix.
type Locator struct {
	drive *drive.Service
}

// Locate implements port.Locator. Only the first page of the listing is
// considered. A listing failure is logged and yields an empty result.
func (l *Locator) Locate(ctx context.Context, folderID string, r model.DateRange) []model.DocumentRef {
	slog.InfoContext(ctx, "fetching documents", slog.String("folder_id", folderID))

	query := fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", folderID, documentMimeType)

	res, err := l.drive.Files.List().Q(query).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		slog.ErrorContext(ctx, "could not list documents", slogx.Error(errors.WithStack(err)))
		return nil
	}

	return filterByDate(ctx, res.Files, r)
}

// filterByDate keeps the files whose name carries a valid date within r,
// preserving the order of the listing.
func filterByDate(ctx context.Context, files []*drive.File, r model.DateRange) []model.DocumentRef {
	documents := make([]model.DocumentRef, 0, len(files))

	for _, f := range files {
		date, matched, err := model.ParseJournalDate(f.Name)
		if !matched {
			slog.DebugContext(ctx, "file not matching date format", slog.String("name", f.Name))
			continue
		}

		if err != nil {
			slog.WarnContext(ctx, "filename matched but date is invalid", slog.String("name", f.Name))
			continue
		}

		if !r.Contains(date) {
			continue
		}

		documents = append(documents, model.DocumentRef{ID: f.Id, Name: f.Name})
	}

	return documents
}

func NewLocator(driveService *drive.Service) *Locator {
	return &Locator{
		drive: driveService,
	}
}

var _ port.Locator = &Locator{}

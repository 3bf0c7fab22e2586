package port

import (
	"context"

	"github.com/bornholm/retrospect/internal/core/model"
)

// The locator, extractor and writer absorb their own external-call
// failures: they log and return a neutral value instead of propagating an
// error. Callers must treat an empty result as "nothing to do", not as
// proof that no failure occurred upstream.

// Locator lists the journal documents of a folder whose name carries a
// date within the given range, in the order the store returned them.
type Locator interface {
	Locate(ctx context.Context, folderID string, r model.DateRange) []model.DocumentRef
}

// Extractor flattens a document's structured body to plain text. A failed
// retrieval contributes an empty string.
type Extractor interface {
	Extract(ctx context.Context, documentID string) string
}

// Generator produces the self-reflection report for the combined journal
// text. Unlike the other components it surfaces failures, letting the
// orchestrator decide what to write in their place.
type Generator interface {
	Generate(ctx context.Context, text string) (string, error)
}

// Writer creates a new document named name under folderID and inserts
// content as its body. Creation or insertion failures are logged only; a
// created-but-empty document may remain behind.
type Writer interface {
	Write(ctx context.Context, folderID string, name string, content string)
}

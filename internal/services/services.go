package services

import (
	"context"

	"github.com/desertthunder/bandsite/internal/models"
)

// ShowSource produces the tour feed envelope. [SheetService] is the production implementation.
type ShowSource interface {
	// FetchShows returns the current shows or the reason they could not be read.
	FetchShows(ctx context.Context) ([]models.Show, error)

	// Load returns a servable envelope in every case, plus the underlying error on failure.
	Load(ctx context.Context) (models.ShowList, error)
}

// FetchRecorder persists the outcome of each sheet fetch.
//
// Implementations must not retain or serve show data; the feed is always read fresh.
type FetchRecorder interface {
	RecordFetch(entry *models.FetchLog) error
}

var _ ShowSource = (*SheetService)(nil)

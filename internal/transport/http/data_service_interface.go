package http

import (
	"context"

	"mpreview/internal/services"
)

// DataService is the handler's view of the extraction service.
type DataService interface {
	FetchBatch(ctx context.Context, batch string) (*services.BatchData, error)
	Batches(ctx context.Context) []string
}

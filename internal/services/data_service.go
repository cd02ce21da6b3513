// Package services contains the business logic between the HTTP layer and
// the storage and extraction packages.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"mpreview/internal/config"
	"mpreview/internal/extract"
	"mpreview/internal/infrastructure"
	"mpreview/internal/worksheet"
	"mpreview/pkg/contracts/domain"
)

// ErrUnknownBatch is returned when a request names a batch that is not
// configured.
var ErrUnknownBatch = errors.New("unknown batch")

// ErrDownload wraps storage failures so the transport layer can map them to
// a bad gateway response.
var ErrDownload = errors.New("workbook download failed")

// ErrWorkbook wraps decode failures of the downloaded workbook.
var ErrWorkbook = errors.New("workbook unreadable")

// BlobStore fetches objects from the remote blob storage.
type BlobStore interface {
	Download(ctx context.Context, bucket, object string) ([]byte, error)
}

// BatchData is the result of one extraction run: both record sets derived
// from the same worksheet. Slices are always non-nil.
type BatchData struct {
	Batch   string
	MPData  []domain.MPRecord
	KYMData []domain.KYMRecord
}

// DataService downloads the source workbook and normalizes its rows into
// record sets.
type DataService struct {
	cfg       *config.Config
	store     BlobStore
	logger    *slog.Logger
	metrics   *infrastructure.Metrics
	tracer    trace.Tracer
	mpSchema  extract.Schema
	kymSchema extract.Schema
}

// NewDataService resolves the column schemas once and wires the service.
// Metrics and tracer may be nil, in which case instrumentation is skipped.
func NewDataService(cfg *config.Config, store BlobStore, logger *slog.Logger, metrics *infrastructure.Metrics, tracer trace.Tracer) (*DataService, error) {
	mpSchema, err := cfg.MPSchema()
	if err != nil {
		return nil, fmt.Errorf("resolve mp schema: %w", err)
	}
	kymSchema, err := cfg.KYMSchema()
	if err != nil {
		return nil, fmt.Errorf("resolve kym schema: %w", err)
	}

	return &DataService{
		cfg:       cfg,
		store:     store,
		logger:    logger.With(slog.String("service", "data")),
		metrics:   metrics,
		tracer:    tracer,
		mpSchema:  mpSchema,
		kymSchema: kymSchema,
	}, nil
}

// Batches returns the configured batch names in stable order.
func (s *DataService) Batches(ctx context.Context) []string {
	return s.cfg.BatchNames()
}

// FetchBatch downloads the workbook, decodes the batch's worksheet and
// extracts both record sets. An empty batch name selects the default batch.
func (s *DataService) FetchBatch(ctx context.Context, batch string) (*BatchData, error) {
	start := time.Now()

	if batch == "" {
		batch = s.cfg.DefaultBatch()
	}

	if s.tracer != nil {
		var span trace.Span
		ctx, span = s.tracer.Start(ctx, "data.fetch_batch",
			trace.WithAttributes(attribute.String("batch", batch)))
		defer span.End()
	}

	info, ok := s.cfg.Batches[batch]
	if !ok {
		s.countRequest(batch, "unknown_batch")
		return nil, fmt.Errorf("%w: %q", ErrUnknownBatch, batch)
	}

	data, err := s.store.Download(ctx, s.cfg.Storage.Bucket, s.cfg.Storage.Object)
	if err != nil {
		s.countRequest(batch, "download_error")
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	sheet, err := worksheet.Decode(data, info.SheetName)
	if err != nil {
		s.countRequest(batch, "decode_error")
		return nil, fmt.Errorf("%w: %v", ErrWorkbook, err)
	}

	link := s.linkResolver(info)

	result := &BatchData{Batch: batch}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.MPData = extract.MPRecords(sheet, s.mpSchema, link)
		return nil
	})
	g.Go(func() error {
		result.KYMData = extract.KYMRecords(sheet, s.kymSchema, link)
		return nil
	})
	_ = g.Wait()

	s.countRequest(batch, "success")
	s.countRecords(batch, "mp", len(result.MPData))
	s.countRecords(batch, "kym", len(result.KYMData))
	if s.metrics != nil {
		s.metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	}

	s.logger.InfoContext(ctx, "batch extracted",
		slog.String("batch", batch),
		slog.String("sheet", info.SheetName),
		slog.Int("mp_records", len(result.MPData)),
		slog.Int("kym_records", len(result.KYMData)),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// linkResolver builds document URLs from the configured base URL and the
// batch's document path prefix. Without a base URL links are disabled.
func (s *DataService) linkResolver(info config.Batch) extract.LinkResolver {
	base := strings.TrimRight(s.cfg.Storage.DocBaseURL, "/")
	if base == "" {
		return nil
	}
	prefix := strings.Trim(info.DocPathPrefix, "/")
	return func(docID string) string {
		if prefix == "" {
			return base + "/" + docID
		}
		return base + "/" + prefix + "/" + docID
	}
}

func (s *DataService) countRequest(batch, status string) {
	if s.metrics != nil {
		s.metrics.ExtractionRequests.WithLabelValues(batch, status).Inc()
	}
}

func (s *DataService) countRecords(batch, kind string, n int) {
	if s.metrics != nil {
		s.metrics.RecordsExtracted.WithLabelValues(batch, kind).Add(float64(n))
	}
}

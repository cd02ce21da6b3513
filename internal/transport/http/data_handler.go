// Package http contains the HTTP handlers and route definitions.
package http

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "mpreview/internal/errors"
	"mpreview/internal/services"
	"mpreview/pkg/contracts/domain"
)

// DataHandler serves the extraction endpoints.
type DataHandler struct {
	service DataService
	logger  *slog.Logger
}

// NewDataHandler creates a data handler.
func NewDataHandler(service DataService, logger *slog.Logger) *DataHandler {
	return &DataHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "data")),
	}
}

// Routes returns the data API routes.
func (h *DataHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/data", h.GetData)
	r.Get("/batches", h.GetBatches)
	return r
}

// dataResponse is the extraction envelope. Record slices are always present
// and non-null, even on failure.
type dataResponse struct {
	MPData  []domain.MPRecord  `json:"mpData"`
	KYMData []domain.KYMRecord `json:"kymData"`
	Success bool               `json:"success"`
	Error   string             `json:"error,omitempty"`
}

// batchesResponse lists the configured batch names.
type batchesResponse struct {
	Batches []string `json:"batches"`
	Success bool     `json:"success"`
}

// GetData handles GET /data. The optional batch query parameter selects the
// worksheet; omitted, the default batch applies.
func (h *DataHandler) GetData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	batch := r.URL.Query().Get("batch")

	result, err := h.service.FetchBatch(ctx, batch)
	if err != nil {
		h.renderError(w, r, batch, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dataResponse{
		MPData:  result.MPData,
		KYMData: result.KYMData,
		Success: true,
	})
}

// GetBatches handles GET /batches.
func (h *DataHandler) GetBatches(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, batchesResponse{
		Batches: h.service.Batches(r.Context()),
		Success: true,
	})
}

// renderError maps service failures onto the envelope. The record slices stay
// empty but present so clients never branch on null.
func (h *DataHandler) renderError(w http.ResponseWriter, r *http.Request, batch string, err error) {
	apiErr := mapServiceError(batch, err)

	h.logger.ErrorContext(r.Context(), "extraction failed",
		slog.String("batch", batch),
		slog.String("error_code", apiErr.ErrorCode),
		slog.String("error", err.Error()),
	)

	render.Status(r, apiErr.StatusCode)
	render.JSON(w, r, dataResponse{
		MPData:  []domain.MPRecord{},
		KYMData: []domain.KYMRecord{},
		Success: false,
		Error:   err.Error(),
	})
}

// mapServiceError classifies a service failure into the API error taxonomy.
func mapServiceError(batch string, err error) *apierrors.APIError {
	switch {
	case stderrors.Is(err, services.ErrUnknownBatch):
		return apierrors.ErrUnknownBatch(batch)
	case stderrors.Is(err, services.ErrDownload):
		return apierrors.ErrDownloadFailed(err)
	case stderrors.Is(err, services.ErrWorkbook):
		return apierrors.ErrWorkbookUnreadable(err)
	}
	return apierrors.ErrInternalServer
}

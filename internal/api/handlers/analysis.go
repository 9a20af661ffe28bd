package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/swrscope/internal/processing"
	"github.com/RMahshie/swrscope/internal/repository"
	"github.com/RMahshie/swrscope/internal/touchstone"
	"github.com/RMahshie/swrscope/pkg/models"
)

// AnalysisHandler handles analysis-related HTTP requests
type AnalysisHandler struct {
	svc     processing.AnalysisService
	catalog repository.BandCatalog
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc processing.AnalysisService, catalog repository.BandCatalog) *AnalysisHandler {
	return &AnalysisHandler{
		svc:     svc,
		catalog: catalog,
	}
}

// Analyze parses a Touchstone file and returns SWR figures per band
func (h *AnalysisHandler) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	log.Info().Str("filename", req.Body.Filename).Int("size", len(req.Body.Content)).Msg("Analysis request received")

	report, err := h.svc.Analyze(ctx, req.Body)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &models.AnalyzeResponse{Body: report}, nil
}

// SimulateShift re-runs the analysis with per-band element length changes
func (h *AnalysisHandler) SimulateShift(ctx context.Context, req *models.ShiftRequest) (*models.ShiftResponse, error) {
	log.Info().Int("bands", len(req.Body.Shifts)).Msg("Shift simulation request received")

	report, err := h.svc.SimulateShift(ctx, req.Body)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &models.ShiftResponse{Body: report}, nil
}

// ListBands returns the band catalog and band plans
func (h *AnalysisHandler) ListBands(ctx context.Context, _ *struct{}) (*models.BandCatalogResponse, error) {
	bands, err := h.catalog.Bands(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load band catalog", err)
	}
	plans, err := h.catalog.BandPlans(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load band plans", err)
	}

	return &models.BandCatalogResponse{
		Body: models.BandCatalogBody{
			Bands:     bands,
			BandPlans: plans,
		},
	}, nil
}

// toHTTPError maps pipeline errors to user-facing API errors
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, touchstone.ErrNoData):
		return huma.Error422UnprocessableEntity("No usable data found in file", err)
	case errors.Is(err, processing.ErrNoBandData):
		return huma.Error422UnprocessableEntity("No data found in the selected frequency bands", err)
	case errors.Is(err, processing.ErrUnknownBand):
		return huma.Error400BadRequest("Unknown band requested", err)
	case errors.Is(err, processing.ErrShiftOutOfRange), errors.Is(err, processing.ErrNoShifts):
		return huma.Error400BadRequest("Invalid frequency shift", err)
	default:
		log.Error().Err(err).Msg("Analysis failed")
		return huma.Error500InternalServerError("Analysis failed", err)
	}
}

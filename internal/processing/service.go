package processing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/swrscope/internal/observability"
	"github.com/RMahshie/swrscope/internal/repository"
	"github.com/RMahshie/swrscope/internal/swr"
	"github.com/RMahshie/swrscope/internal/touchstone"
	"github.com/RMahshie/swrscope/pkg/models"
)

// MaxShiftPercent bounds the element length change accepted by SimulateShift
const MaxShiftPercent = 50.0

var (
	// ErrNoBandData is returned when a file parses but covers none of the bands
	ErrNoBandData = errors.New("no data found in the selected frequency bands")
	// ErrUnknownBand is returned when a request names a band missing from the catalog
	ErrUnknownBand = errors.New("unknown band")
	// ErrShiftOutOfRange is returned for shifts beyond ±MaxShiftPercent
	ErrShiftOutOfRange = errors.New("shift percent out of range")
	// ErrNoShifts is returned when a simulation names no bands
	ErrNoShifts = errors.New("no band shifts requested")
)

// AnalysisService runs the Touchstone to band summary pipeline.
// Every call is independent; nothing is kept between calls.
type AnalysisService interface {
	Analyze(ctx context.Context, req models.AnalyzeRequestBody) (*models.AnalysisReport, error)
	SimulateShift(ctx context.Context, req models.ShiftRequestBody) (*models.ShiftReport, error)
}

type analysisService struct {
	catalog       repository.BandCatalog
	metrics       *observability.Collector
	bufferPercent float64
}

// NewAnalysisService creates the pipeline service. metrics may be nil.
func NewAnalysisService(catalog repository.BandCatalog, metrics *observability.Collector, bufferPercent float64) AnalysisService {
	return &analysisService{
		catalog:       catalog,
		metrics:       metrics,
		bufferPercent: bufferPercent,
	}
}

func (s *analysisService) Analyze(ctx context.Context, req models.AnalyzeRequestBody) (report *models.AnalysisReport, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveRun("analyze", outcome(err), time.Since(start)) }()

	data, points, err := s.measure(req.Content)
	if err != nil {
		log.Warn().Err(err).Str("filename", req.Filename).Msg("Touchstone parse failed")
		return nil, err
	}

	bands, err := s.bands(ctx, req.Bands)
	if err != nil {
		return nil, err
	}

	summaries := swr.Aggregate(points, bands, s.buffer(req.BufferPercent))
	if len(summaries) == 0 {
		log.Warn().Str("filename", req.Filename).Int("points", len(points)).Msg("No band data in file")
		return nil, ErrNoBandData
	}

	var plans map[string][]models.BandPlanSegment
	if req.IncludeBandPlan {
		plans, err = s.catalog.BandPlans(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load band plans: %w", err)
		}
	}

	reports := make([]models.BandReport, len(summaries))
	for i, summary := range summaries {
		reports[i] = bandReport(summary, plans[summary.Band.Name])
		s.metrics.ObserveBand(summary.Band.Name, summary.MinSWR)
	}

	lo, hi, _ := swr.Span(points)
	report = &models.AnalysisReport{
		ID:                 uuid.New().String(),
		Filename:           req.Filename,
		Format:             data.Format(),
		PortCount:          data.PortCount,
		ReferenceImpedance: data.ReferenceImpedance,
		PointCount:         len(points),
		MinFrequency:       lo,
		MaxFrequency:       hi,
		SWRPoints:          points,
		Bands:              reports,
		RecommendedBands:   swr.Recommended(summaries),
		CreatedAt:          time.Now(),
	}

	log.Info().
		Str("analysisID", report.ID).
		Str("filename", req.Filename).
		Int("ports", report.PortCount).
		Int("points", report.PointCount).
		Int("bands", len(reports)).
		Msg("Analysis completed")

	return report, nil
}

func (s *analysisService) SimulateShift(ctx context.Context, req models.ShiftRequestBody) (report *models.ShiftReport, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveRun("shift", outcome(err), time.Since(start)) }()

	if len(req.Shifts) == 0 {
		return nil, ErrNoShifts
	}

	names := make([]string, 0, len(req.Shifts))
	for name, pct := range req.Shifts {
		if math.Abs(pct) > MaxShiftPercent {
			return nil, fmt.Errorf("%w: %s %.2f%% exceeds ±%.0f%%", ErrShiftOutOfRange, name, pct, MaxShiftPercent)
		}
		names = append(names, name)
	}

	_, points, err := s.measure(req.Content)
	if err != nil {
		log.Warn().Err(err).Msg("Touchstone parse failed")
		return nil, err
	}

	bands, err := s.bands(ctx, names)
	if err != nil {
		return nil, err
	}

	report = &models.ShiftReport{
		ID:      uuid.New().String(),
		Results: []models.ShiftResult{},
		Skipped: []string{},
	}

	buffer := s.buffer(req.BufferPercent)
	for _, band := range bands {
		original, ok := swr.Summarize(points, band, buffer)
		if !ok {
			report.Skipped = append(report.Skipped, band.Name)
			continue
		}
		pct := req.Shifts[band.Name]
		if pct == 0 {
			continue
		}

		shifted, inBand := swr.ShiftSummary(original, pct)
		report.Results = append(report.Results, models.ShiftResult{
			Band:         band.Name,
			ShiftPercent: pct,
			Original:     original,
			Shifted:      shifted,
			InBand:       inBand,
		})
	}

	log.Info().
		Str("simulationID", report.ID).
		Int("results", len(report.Results)).
		Strs("skipped", report.Skipped).
		Msg("Shift simulation completed")

	return report, nil
}

// measure parses the file and derives its SWR points
func (s *analysisService) measure(content string) (*models.ParsedNetworkData, []models.SWRPoint, error) {
	data, err := touchstone.Parse(content)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse touchstone data: %w", err)
	}
	s.metrics.ObservePoints(len(data.Points))
	return data, swr.Compute(data), nil
}

// bands returns the catalog restricted to names, or the whole catalog when
// names is empty
func (s *analysisService) bands(ctx context.Context, names []string) ([]models.Band, error) {
	catalog, err := s.catalog.Bands(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load band catalog: %w", err)
	}
	if len(names) == 0 {
		return catalog, nil
	}

	selected, missing := swr.SelectBands(catalog, names)
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownBand, missing)
	}
	return selected, nil
}

func (s *analysisService) buffer(requested *float64) float64 {
	if requested != nil {
		return *requested
	}
	return s.bufferPercent
}

func bandReport(summary models.BandSummary, plan []models.BandPlanSegment) models.BandReport {
	r := models.BandReport{
		BandSummary:  summary,
		Quality:      swr.Grade(summary.MinSWR),
		ReflectedPct: swr.PowerReflected(summary.MinSWR),
		BandPlan:     plan,
	}
	if rl := swr.ReturnLoss(summary.MinSWR); !math.IsInf(rl, 0) {
		r.ReturnLossDB = &rl
	}
	return r
}

// outcome labels a pipeline result for metrics
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, touchstone.ErrNoData):
		return "no_data"
	case errors.Is(err, ErrNoBandData):
		return "no_band_data"
	case errors.Is(err, ErrUnknownBand), errors.Is(err, ErrShiftOutOfRange), errors.Is(err, ErrNoShifts):
		return "invalid"
	default:
		return "error"
	}
}

package swr

import (
	"github.com/RMahshie/swrscope/pkg/models"
)

// Shift models a change in element length of shiftPercent. A longer element
// resonates lower, so a positive shift scales frequencies by 1 - shift/100.
// SWR values are carried over unchanged.
func Shift(points []models.SWRPoint, shiftPercent float64) []models.SWRPoint {
	multiplier := 1 - shiftPercent/100
	out := make([]models.SWRPoint, len(points))
	for i, p := range points {
		out[i] = models.SWRPoint{
			Frequency: p.Frequency * multiplier,
			SWR:       p.SWR,
		}
	}
	return out
}

// CompensatingShift returns the shift that undoes a shift of x percent,
// i.e. the y for which (1-x/100)(1-y/100) = 1.
func CompensatingShift(x float64) float64 {
	return 100 * (1 - 1/(1-x/100))
}

// ShiftSummary shifts the points of a band summary and recomputes its
// statistics against the original band edges. ok is false when no shifted
// point remains inside the band; the shifted points are still returned.
func ShiftSummary(summary models.BandSummary, shiftPercent float64) (models.BandSummary, bool) {
	shifted := Shift(summary.Points, shiftPercent)
	minSWR, maxSWR, avgSWR, n := Stats(shifted, summary.Band)
	return models.BandSummary{
		Band:   summary.Band,
		Points: shifted,
		MinSWR: minSWR,
		MaxSWR: maxSWR,
		AvgSWR: avgSWR,
		InBand: n,
	}, n > 0
}

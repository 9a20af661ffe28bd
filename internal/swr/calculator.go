// Package swr derives standing wave ratio figures from reflection data and
// summarises them per amateur band.
package swr

import (
	"math"

	"github.com/RMahshie/swrscope/pkg/models"
)

const (
	// MaxSWR is reported for reflection magnitudes at or above ClampMagnitude
	MaxSWR = 100.0
	// ClampMagnitude is the |Γ| from which SWR is clamped to MaxSWR
	ClampMagnitude = 0.99
)

// FromReflection returns the SWR for a reflection coefficient magnitude.
// The result is never below 1. NaN and infinite magnitudes clamp to MaxSWR.
func FromReflection(mag float64) float64 {
	var swr float64
	if !(mag < ClampMagnitude) {
		swr = MaxSWR
	} else {
		swr = (1 + mag) / (1 - mag)
	}
	return math.Max(1, swr)
}

// Compute returns one SWR point per measurement point, in order, using S11
func Compute(data *models.ParsedNetworkData) []models.SWRPoint {
	if data == nil {
		return nil
	}
	out := make([]models.SWRPoint, len(data.Points))
	for i, p := range data.Points {
		out[i] = models.SWRPoint{
			Frequency: p.Frequency,
			SWR:       FromReflection(p.S11.Abs()),
		}
	}
	return out
}

// Span returns the lowest and highest frequency in points
func Span(points []models.SWRPoint) (lo, hi float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, false
	}
	lo, hi = points[0].Frequency, points[0].Frequency
	for _, p := range points[1:] {
		lo = math.Min(lo, p.Frequency)
		hi = math.Max(hi, p.Frequency)
	}
	return lo, hi, true
}

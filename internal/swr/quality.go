package swr

import (
	"fmt"
	"math"

	"github.com/RMahshie/swrscope/pkg/models"
)

// ReflectionFromSWR returns |Γ| for an SWR value
func ReflectionFromSWR(swr float64) float64 {
	return math.Abs((swr - 1) / (swr + 1))
}

// ReturnLoss returns the return loss in dB. A perfect match is +Inf.
func ReturnLoss(swr float64) float64 {
	if swr <= 1 {
		return math.Inf(1)
	}
	return -20 * math.Log10(ReflectionFromSWR(swr))
}

// PowerReflected returns the percentage of forward power reflected
func PowerReflected(swr float64) float64 {
	if swr <= 1 {
		return 0
	}
	gamma := ReflectionFromSWR(swr)
	return gamma * gamma * 100
}

// PowerTransmitted returns the percentage of forward power delivered
func PowerTransmitted(swr float64) float64 {
	return 100 - PowerReflected(swr)
}

var grades = []struct {
	limit float64
	q     models.Quality
}{
	{1.5, models.Quality{Grade: "Excellent", Color: "#10b981", Description: "Ideal match, minimal power loss"}},
	{2.0, models.Quality{Grade: "Good", Color: "#3b82f6", Description: "Acceptable for most applications"}},
	{3.0, models.Quality{Grade: "Fair", Color: "#f59e0b", Description: "Some power loss, tuning recommended"}},
}

var poor = models.Quality{Grade: "Poor", Color: "#ef4444", Description: "Significant power loss, tuning required"}

// Grade classifies an SWR value
func Grade(swr float64) models.Quality {
	for _, g := range grades {
		if swr <= g.limit {
			return g.q
		}
	}
	return poor
}

// FormatFrequency renders a frequency in MHz with precision suited to its size
func FormatFrequency(hz float64) string {
	mhz := hz / 1e6
	switch {
	case mhz >= 100:
		return fmt.Sprintf("%.1f MHz", mhz)
	case mhz >= 10:
		return fmt.Sprintf("%.2f MHz", mhz)
	default:
		return fmt.Sprintf("%.3f MHz", mhz)
	}
}

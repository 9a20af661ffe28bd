package swr

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RMahshie/swrscope/pkg/models"
)

// DefaultBufferPercent is the buffer kept around each band, as a percentage
// of the band's centre frequency. 20% leaves room for a ±10% shift.
const DefaultBufferPercent = 20.0

// Buffer returns the width of the buffer zone on each side of band
func Buffer(band models.Band, bufferPercent float64) float64 {
	return bufferPercent / 100 * band.Center()
}

// FilterByBand returns the points within the band edges widened by the buffer
func FilterByBand(points []models.SWRPoint, band models.Band, bufferPercent float64) []models.SWRPoint {
	buffer := Buffer(band, bufferPercent)
	lo, hi := band.StartFreq-buffer, band.EndFreq+buffer

	var out []models.SWRPoint
	for _, p := range points {
		if p.Frequency >= lo && p.Frequency <= hi {
			out = append(out, p)
		}
	}
	return out
}

// Stats computes min, max and mean SWR over the points inside the band edges.
// n is the number of points used; when it is zero the other values are zero.
func Stats(points []models.SWRPoint, band models.Band) (minSWR, maxSWR, avgSWR float64, n int) {
	values := make([]float64, 0, len(points))
	for _, p := range points {
		if band.Contains(p.Frequency) {
			values = append(values, p.SWR)
		}
	}
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	return floats.Min(values), floats.Max(values), stat.Mean(values, nil), len(values)
}

// Summarize builds the summary for one band. ok is false when no point lies
// inside the band edges.
func Summarize(points []models.SWRPoint, band models.Band, bufferPercent float64) (models.BandSummary, bool) {
	retained := FilterByBand(points, band, bufferPercent)
	minSWR, maxSWR, avgSWR, n := Stats(retained, band)
	if n == 0 {
		return models.BandSummary{}, false
	}
	return models.BandSummary{
		Band:   band,
		Points: retained,
		MinSWR: minSWR,
		MaxSWR: maxSWR,
		AvgSWR: avgSWR,
		InBand: n,
	}, true
}

// Aggregate summarises points for each band in the order given. Bands with
// no point inside their edges are left out.
func Aggregate(points []models.SWRPoint, bands []models.Band, bufferPercent float64) []models.BandSummary {
	out := make([]models.BandSummary, 0, len(bands))
	for _, band := range bands {
		if s, ok := Summarize(points, band, bufferPercent); ok {
			out = append(out, s)
		}
	}
	return out
}

// Recommended names the bands whose minimum SWR is below 3. When none
// qualify the first band is returned so a caller always has a selection.
func Recommended(summaries []models.BandSummary) []string {
	names := []string{}
	for _, s := range summaries {
		if s.MinSWR < 3 {
			names = append(names, s.Band.Name)
		}
	}
	if len(names) == 0 && len(summaries) > 0 {
		names = append(names, summaries[0].Band.Name)
	}
	return names
}

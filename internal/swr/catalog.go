package swr

import (
	"github.com/RMahshie/swrscope/pkg/models"
)

var amateurBands = []models.Band{
	{Name: "160m", StartFreq: 1800000, EndFreq: 2000000, Color: "#FF6384"},
	{Name: "80m", StartFreq: 3500000, EndFreq: 4000000, Color: "#36A2EB"},
	{Name: "40m", StartFreq: 7000000, EndFreq: 7200000, Color: "#FFCE56"},
	{Name: "30m", StartFreq: 10100000, EndFreq: 10150000, Color: "#4BC0C0"},
	{Name: "20m", StartFreq: 14000000, EndFreq: 14350000, Color: "#9966FF"},
	{Name: "17m", StartFreq: 18068000, EndFreq: 18168000, Color: "#FF9F40"},
	{Name: "15m", StartFreq: 21000000, EndFreq: 21450000, Color: "#FF6384"},
	{Name: "12m", StartFreq: 24890000, EndFreq: 24990000, Color: "#C9CBCF"},
	{Name: "10m", StartFreq: 28000000, EndFreq: 29700000, Color: "#36A2EB"},
	{Name: "6m", StartFreq: 50000000, EndFreq: 54000000, Color: "#FFCE56"},
	{Name: "2m", StartFreq: 144000000, EndFreq: 148000000, Color: "#4BC0C0"},
	{Name: "70cm", StartFreq: 420000000, EndFreq: 450000000, Color: "#9966FF"},
}

// AmateurBands returns a copy of the default band catalog
func AmateurBands() []models.Band {
	out := make([]models.Band, len(amateurBands))
	copy(out, amateurBands)
	return out
}

const (
	cwColor      = "rgba(255, 99, 132, 0.2)"
	digitalColor = "rgba(54, 162, 235, 0.2)"
	ssbColor     = "rgba(75, 192, 192, 0.2)"
	beaconColor  = "rgba(255, 206, 86, 0.2)"
	allColor     = "rgba(153, 102, 255, 0.2)"
	satColor     = "rgba(255, 159, 64, 0.2)"
)

func seg(start, end float64, mode models.Mode, label, color string) models.BandPlanSegment {
	return models.BandPlanSegment{StartFreq: start, EndFreq: end, Mode: mode, Label: label, Color: color}
}

// RSGB (UK) band plans
var rsgbBandPlans = map[string][]models.BandPlanSegment{
	"160m": {
		seg(1810000, 1838000, models.ModeCW, "CW", cwColor),
		seg(1838000, 1843000, models.ModeDigital, "Digital", digitalColor),
		seg(1843000, 2000000, models.ModeSSB, "SSB", ssbColor),
	},
	// 3.8-4.0 MHz varies by country
	"80m": {
		seg(3500000, 3570000, models.ModeCW, "CW", cwColor),
		seg(3570000, 3600000, models.ModeDigital, "Digital", digitalColor),
		seg(3600000, 3800000, models.ModeSSB, "SSB", ssbColor),
	},
	"40m": {
		seg(7000000, 7040000, models.ModeCW, "CW", cwColor),
		seg(7040000, 7060000, models.ModeDigital, "Digital", digitalColor),
		seg(7060000, 7200000, models.ModeSSB, "SSB", ssbColor),
	},
	"30m": {
		seg(10100000, 10130000, models.ModeCW, "CW", cwColor),
		seg(10130000, 10150000, models.ModeDigital, "Digital", digitalColor),
	},
	"20m": {
		seg(14000000, 14070000, models.ModeCW, "CW", cwColor),
		seg(14070000, 14095000, models.ModeDigital, "Digital", digitalColor),
		seg(14095000, 14099000, models.ModeDigital, "IBP", beaconColor),
		seg(14099000, 14101000, models.ModeBeacon, "Beacons", beaconColor),
		seg(14101000, 14350000, models.ModeSSB, "SSB", ssbColor),
	},
	"17m": {
		seg(18068000, 18095000, models.ModeCW, "CW", cwColor),
		seg(18095000, 18110000, models.ModeDigital, "Digital", digitalColor),
		seg(18110000, 18168000, models.ModeSSB, "SSB", ssbColor),
	},
	"15m": {
		seg(21000000, 21070000, models.ModeCW, "CW", cwColor),
		seg(21070000, 21110000, models.ModeDigital, "Digital", digitalColor),
		seg(21110000, 21149000, models.ModeDigital, "Digital", digitalColor),
		seg(21149000, 21151000, models.ModeBeacon, "Beacons", beaconColor),
		seg(21151000, 21450000, models.ModeSSB, "SSB", ssbColor),
	},
	"12m": {
		seg(24890000, 24915000, models.ModeCW, "CW", cwColor),
		seg(24915000, 24930000, models.ModeDigital, "Digital", digitalColor),
		seg(24930000, 24990000, models.ModeSSB, "SSB", ssbColor),
	},
	"10m": {
		seg(28000000, 28070000, models.ModeCW, "CW", cwColor),
		seg(28070000, 28190000, models.ModeDigital, "Digital", digitalColor),
		seg(28190000, 28225000, models.ModeBeacon, "Beacons", beaconColor),
		seg(28225000, 29700000, models.ModeSSB, "SSB", ssbColor),
	},
	"6m": {
		seg(50000000, 50100000, models.ModeCW, "CW/Beacons", cwColor),
		seg(50100000, 50500000, models.ModeSSB, "SSB/Digital", ssbColor),
		seg(50500000, 52000000, models.ModeAll, "All Modes", allColor),
	},
	"2m": {
		seg(144000000, 144150000, models.ModeCW, "CW/SSB", cwColor),
		seg(144150000, 144400000, models.ModeSSB, "SSB", ssbColor),
		seg(144400000, 144490000, models.ModeBeacon, "Beacons", beaconColor),
		seg(144490000, 144990000, models.ModeAll, "All Modes", allColor),
		seg(144990000, 145800000, models.ModeAll, "FM/Repeaters", allColor),
		seg(145800000, 146000000, models.ModeAll, "Satellite", satColor),
	},
	"70cm": {
		seg(430000000, 431000000, models.ModeCW, "CW/SSB", cwColor),
		seg(431000000, 432000000, models.ModeDigital, "Digital", digitalColor),
		seg(432000000, 432100000, models.ModeCW, "CW/SSB", cwColor),
		seg(432100000, 432400000, models.ModeSSB, "SSB", ssbColor),
		seg(432400000, 432490000, models.ModeBeacon, "Beacons", beaconColor),
		seg(432490000, 438000000, models.ModeAll, "All Modes", allColor),
		seg(438000000, 440000000, models.ModeAll, "FM/Repeaters", allColor),
	},
}

// RSGBBandPlans returns a copy of the default band plan catalog
func RSGBBandPlans() map[string][]models.BandPlanSegment {
	out := make(map[string][]models.BandPlanSegment, len(rsgbBandPlans))
	for name, segs := range rsgbBandPlans {
		out[name] = append([]models.BandPlanSegment(nil), segs...)
	}
	return out
}

// SelectBands returns the bands from catalog whose names appear in names,
// in catalog order. The second result lists names not found.
func SelectBands(catalog []models.Band, names []string) ([]models.Band, []string) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var selected []models.Band
	for _, b := range catalog {
		if want[b.Name] {
			selected = append(selected, b)
			delete(want, b.Name)
		}
	}

	var missing []string
	for _, n := range names {
		if want[n] {
			missing = append(missing, n)
			want[n] = false
		}
	}
	return selected, missing
}

package models

// SWRPoint represents the standing wave ratio at a single frequency
type SWRPoint struct {
	Frequency float64 `json:"frequency" doc:"Frequency in Hz"`
	SWR       float64 `json:"swr" doc:"Standing wave ratio, always >= 1"`
}

// Band is a named frequency allocation
type Band struct {
	Name      string  `json:"name" yaml:"name" doc:"Band identifier, e.g. 20m"`
	StartFreq float64 `json:"start_freq" yaml:"start_hz" doc:"Lower band edge in Hz"`
	EndFreq   float64 `json:"end_freq" yaml:"end_hz" doc:"Upper band edge in Hz"`
	Color     string  `json:"color" yaml:"color" doc:"Display colour"`
}

// Center returns the centre frequency of the band
func (b Band) Center() float64 {
	return (b.StartFreq + b.EndFreq) / 2
}

// Contains reports whether f lies within the band edges, inclusive
func (b Band) Contains(f float64) bool {
	return f >= b.StartFreq && f <= b.EndFreq
}

// BandSummary holds the SWR data for one band.
// Points include the buffer zone around the band; the statistics only
// cover points inside the band edges.
type BandSummary struct {
	Band   Band       `json:"band"`
	Points []SWRPoint `json:"swr_points"`
	MinSWR float64    `json:"min_swr"`
	MaxSWR float64    `json:"max_swr"`
	AvgSWR float64    `json:"avg_swr"`
	InBand int        `json:"in_band_points" doc:"Number of points inside the band edges"`
}

// Mode is the usage of a band plan segment
type Mode string

const (
	ModeCW      Mode = "CW"
	ModeDigital Mode = "Digital"
	ModeSSB     Mode = "SSB"
	ModeMixed   Mode = "Mixed"
	ModeBeacon  Mode = "Beacon"
	ModeAll     Mode = "All"
)

// BandPlanSegment is a sub-range of a band with a usage label
type BandPlanSegment struct {
	StartFreq float64 `json:"start_freq" yaml:"start_hz"`
	EndFreq   float64 `json:"end_freq" yaml:"end_hz"`
	Mode      Mode    `json:"mode" yaml:"mode" enum:"CW,Digital,SSB,Mixed,Beacon,All"`
	Label     string  `json:"label" yaml:"label"`
	Color     string  `json:"color" yaml:"color"`
}

package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// Quality grades an SWR value for display
type Quality struct {
	Grade       string `json:"grade" enum:"Excellent,Good,Fair,Poor" doc:"SWR grade"`
	Color       string `json:"color" doc:"Display colour for the grade"`
	Description string `json:"description" doc:"Human-readable explanation"`
}

// AnalyzeRequestBody is the body of an analysis request
type AnalyzeRequestBody struct {
	Filename        string   `json:"filename,omitempty" maxLength:"255" doc:"Original file name, informational only"`
	Content         string   `json:"content" minLength:"1" doc:"Touchstone (.s1p/.s2p) file text"`
	BufferPercent   *float64 `json:"buffer_percent,omitempty" minimum:"0" maximum:"100" doc:"Buffer around each band as a percentage of its centre frequency"`
	Bands           []string `json:"bands,omitempty" doc:"Restrict the analysis to these catalog bands"`
	IncludeBandPlan bool     `json:"include_band_plan,omitempty" doc:"Attach band plan segments to each band"`
}

// AnalyzeRequest represents a request to analyse a Touchstone file
type AnalyzeRequest struct {
	Body AnalyzeRequestBody
}

// BandReport is a band summary decorated with display metrics
type BandReport struct {
	BandSummary
	Quality      Quality           `json:"quality" doc:"Grade of the minimum in-band SWR"`
	ReturnLossDB *float64          `json:"return_loss_db,omitempty" doc:"Return loss at the minimum SWR, omitted for a perfect match"`
	ReflectedPct float64           `json:"reflected_power_pct" doc:"Percentage of forward power reflected at the minimum SWR"`
	BandPlan     []BandPlanSegment `json:"band_plan,omitempty" doc:"Band plan segments for this band"`
}

// AnalysisReport is the full result of analysing one file
type AnalysisReport struct {
	ID                 string       `json:"id" doc:"Report identifier"`
	Filename           string       `json:"filename,omitempty" doc:"Original file name"`
	Format             string       `json:"format" enum:"s1p,s2p" doc:"File kind implied by the detected port count"`
	PortCount          int          `json:"port_count" doc:"Detected number of ports (1 or 2)"`
	ReferenceImpedance float64      `json:"reference_impedance" doc:"Reference impedance in ohms"`
	PointCount         int          `json:"point_count" doc:"Number of measurement points"`
	MinFrequency       float64      `json:"min_frequency" doc:"Lowest measured frequency in Hz"`
	MaxFrequency       float64      `json:"max_frequency" doc:"Highest measured frequency in Hz"`
	SWRPoints          []SWRPoint   `json:"swr_points" doc:"SWR across the whole sweep"`
	Bands              []BandReport `json:"bands" doc:"Per-band summaries in catalog order"`
	RecommendedBands   []string     `json:"recommended_bands" doc:"Bands with a usable match"`
	CreatedAt          time.Time    `json:"created_at" doc:"Report creation timestamp"`
}

// AnalyzeResponse wraps the analysis report
type AnalyzeResponse struct {
	Body *AnalysisReport
}

// ShiftRequestBody is the body of a frequency-shift simulation request
type ShiftRequestBody struct {
	Content       string             `json:"content" minLength:"1" doc:"Touchstone (.s1p/.s2p) file text"`
	BufferPercent *float64           `json:"buffer_percent,omitempty" minimum:"0" maximum:"100" doc:"Buffer around each band as a percentage of its centre frequency"`
	Shifts        map[string]float64 `json:"shifts" minProperties:"1" doc:"Element length change in percent per band name; positive lengthens"`
}

// ShiftRequest represents a request to simulate element length changes
type ShiftRequest struct {
	Body ShiftRequestBody
}

// ShiftResult compares a band before and after a simulated shift
type ShiftResult struct {
	Band         string      `json:"band" doc:"Band name"`
	ShiftPercent float64     `json:"shift_percent" doc:"Applied element length change in percent"`
	Original     BandSummary `json:"original" doc:"Measured band summary"`
	Shifted      BandSummary `json:"shifted" doc:"Band summary after the shift"`
	InBand       bool        `json:"in_band" doc:"Whether any shifted point still falls inside the band edges"`
}

// ShiftReport is the result of a shift simulation
type ShiftReport struct {
	ID      string        `json:"id" doc:"Report identifier"`
	Results []ShiftResult `json:"results" doc:"One entry per band with a non-zero shift and data"`
	Skipped []string      `json:"skipped" doc:"Requested bands that had no data"`
}

// ShiftResponse wraps the shift report
type ShiftResponse struct {
	Body *ShiftReport
}

// BandCatalogBody lists the bands and band plans known to the service
type BandCatalogBody struct {
	Bands     []Band                       `json:"bands"`
	BandPlans map[string][]BandPlanSegment `json:"band_plans"`
}

// BandCatalogResponse wraps the band catalog
type BandCatalogResponse struct {
	Body BandCatalogBody
}

package observability

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the Prometheus metrics for the analysis pipeline
type Collector struct {
	gatherer prometheus.Gatherer

	Analyses         *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	PointsParsed     prometheus.Histogram
	BandMinSWR       *prometheus.HistogramVec
}

// NewCollector registers the pipeline metrics against reg, defaulting to the
// global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	analyses, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "swr_analyses_total",
		Help: "Total number of pipeline runs, labeled by operation and outcome.",
	}, []string{"operation", "outcome"}))
	if err != nil {
		return nil, err
	}

	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swr_analysis_duration_seconds",
		Help:    "Time spent running the pipeline, in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
	}, []string{"operation"}))
	if err != nil {
		return nil, err
	}

	points, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "swr_points_parsed",
		Help:    "Number of measurement points per parsed file.",
		Buckets: prometheus.ExponentialBuckets(10, 2, 12),
	}))
	if err != nil {
		return nil, err
	}

	minSWR, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swr_band_min_swr",
		Help:    "Minimum in-band SWR of analysed files, labeled by band.",
		Buckets: []float64{1.1, 1.25, 1.5, 2, 3, 5, 10, 100},
	}, []string{"band"}))
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:         gatherer,
		Analyses:         analyses,
		AnalysisDuration: duration,
		PointsParsed:     points,
		BandMinSWR:       minSWR,
	}, nil
}

// ObserveRun records the outcome and latency of one pipeline run
func (c *Collector) ObserveRun(operation, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Analyses.WithLabelValues(operation, outcome).Inc()
	c.AnalysisDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObservePoints records the size of a parsed file
func (c *Collector) ObservePoints(n int) {
	if c == nil {
		return
	}
	c.PointsParsed.Observe(float64(n))
}

// ObserveBand records the minimum SWR found in a band
func (c *Collector) ObserveBand(band string, minSWR float64) {
	if c == nil {
		return
	}
	c.BandMinSWR.WithLabelValues(band).Observe(minSWR)
}

// Handler exposes the registered metrics in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// register adds a collector, reusing an existing one of the same name
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

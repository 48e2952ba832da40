package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// records-request service.
type Metrics struct {
	// Directory snapshot metrics.
	DirectoryLoads      prometheus.Counter
	DirectoryLoadErrors prometheus.Counter
	DirectoryRows       prometheus.Gauge
	DirectoryUsable     prometheus.Gauge // 1 when all required columns present

	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,no_match,error}
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeAPIDuration prometheus.Histogram
	GeocodeEnabled     prometheus.Gauge

	// Resolution metrics.
	ResolveRequests  *prometheus.CounterVec // labels: tier={exact,unincorporated,wildcard,none,no_county}
	ParcelAdvisories prometheus.Counter

	// Rendering metrics.
	RendersTotal prometheus.Counter
	RenderErrors prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DirectoryLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pubrec",
			Name:      "directory_loads_total",
			Help:      "Total directory snapshot loads, including reloads.",
		}),
		DirectoryLoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pubrec",
			Name:      "directory_load_errors_total",
			Help:      "Total failed directory loads (unreadable workbook).",
		}),
		DirectoryRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pubrec",
			Name:      "directory_rows",
			Help:      "Rows in the current directory snapshot.",
		}),
		DirectoryUsable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pubrec",
			Name:      "directory_usable",
			Help:      "1 when the current snapshot has all required columns, 0 otherwise.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pubrec",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pubrec",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pubrec",
			Name:      "geocode_api_duration_seconds",
			Help:      "Census geocoder request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pubrec",
			Name:      "geocode_enabled",
			Help:      "1 when address geocoding is enabled, 0 otherwise.",
		}),
		ResolveRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pubrec",
			Name:      "resolve_requests_total",
			Help:      "Jurisdiction resolutions by match tier.",
		}, []string{"tier"}),
		ParcelAdvisories: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pubrec",
			Name:      "parcel_advisories_total",
			Help:      "Resolutions where the folio prefix disagreed with the resolved city.",
		}),
		RendersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pubrec",
			Name:      "renders_total",
			Help:      "Total rendered request letters.",
		}),
		RenderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pubrec",
			Name:      "render_errors_total",
			Help:      "Template renders that failed on a missing context key.",
		}),
	}

	prometheus.MustRegister(
		m.DirectoryLoads,
		m.DirectoryLoadErrors,
		m.DirectoryRows,
		m.DirectoryUsable,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.GeocodeEnabled,
		m.ResolveRequests,
		m.ParcelAdvisories,
		m.RendersTotal,
		m.RenderErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		DirectoryLoads:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "pubrec", Name: "directory_loads_total"}),
		DirectoryLoadErrors: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "pubrec", Name: "directory_load_errors_total"}),
		DirectoryRows:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "pubrec", Name: "directory_rows"}),
		DirectoryUsable:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "pubrec", Name: "directory_usable"}),
		GeocodeRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "pubrec", Name: "geocode_requests_total"}, []string{"outcome"}),
		GeocodeCache:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "pubrec", Name: "geocode_cache_total"}, []string{"result"}),
		GeocodeAPIDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "pubrec", Name: "geocode_api_duration_seconds"}),
		GeocodeEnabled:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "pubrec", Name: "geocode_enabled"}),
		ResolveRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "pubrec", Name: "resolve_requests_total"}, []string{"tier"}),
		ParcelAdvisories:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "pubrec", Name: "parcel_advisories_total"}),
		RendersTotal:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "pubrec", Name: "renders_total"}),
		RenderErrors:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "pubrec", Name: "render_errors_total"}),
	}
}

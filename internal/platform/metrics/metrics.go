package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. Construct it
// once in main; services tolerate a nil receiver wiring for tests.
type Metrics struct {
	CampaignsCreated  prometheus.Counter
	DraftsSaved       prometheus.Counter
	CampaignsLaunched prometheus.Counter
	EventsApplied     *prometheus.CounterVec
	RecomputeSeconds  prometheus.Histogram
	ContactLookups    prometheus.Counter

	CatalogCacheHits   prometheus.Counter
	CatalogCacheMisses prometheus.Counter
	CatalogFallbacks   prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		CampaignsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "giftwell_campaigns_created_total",
			Help: "Total number of campaign designer sessions created",
		}),
		DraftsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "giftwell_drafts_saved_total",
			Help: "Total number of campaign drafts persisted",
		}),
		CampaignsLaunched: promauto.NewCounter(prometheus.CounterOpts{
			Name: "giftwell_campaigns_launched_total",
			Help: "Total number of campaigns launched",
		}),
		EventsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "giftwell_designer_events_applied_total",
			Help: "Designer events applied, labeled by event kind",
		}, []string{"kind"}),
		RecomputeSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "giftwell_budget_recompute_seconds",
			Help:    "Latency of full budget re-derivation per applied event",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
		ContactLookups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "giftwell_contact_lookups_total",
			Help: "Total number of dispatched contact search lookups",
		}),
		CatalogCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "giftwell_catalog_cache_hits_total",
			Help: "Bundle catalog listings served from cache",
		}),
		CatalogCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "giftwell_catalog_cache_misses_total",
			Help: "Bundle catalog cache misses",
		}),
		CatalogFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "giftwell_catalog_fallbacks_total",
			Help: "Bundle catalog listings served from the static fallback",
		}),
	}
}

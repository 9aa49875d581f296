package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation pipeline end to end
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the recommendation pipeline",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served, by variant
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total recommendation requests served",
	}, []string{"variant"})

	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_cache_hits_total",
		Help: "Recommendation responses served from the result cache",
	})

	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_cache_misses_total",
		Help: "Recommendation requests that missed the result cache",
	})

	RerankFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_rerank_fallbacks_total",
		Help: "How many times the LLM re-ranker returned nothing and heuristic order was kept",
	})

	FeedbackEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feedback_events_total",
		Help: "Thumbs up/down feedback events",
	}, []string{"variant", "sentiment"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		CacheHits,
		CacheMisses,
		RerankFallbacks,
		FeedbackEvents,
	)
}

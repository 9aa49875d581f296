package domain

import "time"

const (
	EventSearch   = "search"
	EventCacheHit = "cache_hit"
)

// EventRecord is one telemetry event. Events live in process memory only
// and are cleared on restart.
type EventRecord struct {
	Type            string    `json:"type"`
	Timestamp       time.Time `json:"timestamp"`
	Location        string    `json:"location"`
	Cuisines        []string  `json:"cuisines,omitempty"`
	PriceRange      []string  `json:"price_range,omitempty"`
	MinRating       float64   `json:"min_rating,omitempty"`
	FreeText        bool      `json:"free_text,omitempty"`
	CacheHit        bool      `json:"cache_hit"`
	TotalCandidates int       `json:"total_candidates"`
	ResultCount     int       `json:"result_count"`
	ResponseTimeMS  float64   `json:"response_time_ms"`
	Variant         string    `json:"variant,omitempty"`
}

type FeedbackRecord struct {
	RestaurantID  string    `json:"restaurant_id"`
	QueryLocation string    `json:"query_location"`
	IsPositive    bool      `json:"is_positive"`
	Variant       string    `json:"variant,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CacheCounters struct {
	Hits    int     `json:"hits"`
	Misses  int     `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

type FeedbackSummary struct {
	Total            int     `json:"total"`
	Positive         int     `json:"positive"`
	Negative         int     `json:"negative"`
	SatisfactionRate float64 `json:"satisfaction_rate"`
}

type AnalyticsReport struct {
	TotalSearches     int                `json:"total_searches"`
	AvgResponseTimeMS float64            `json:"avg_response_time_ms"`
	TopLocations      []NameCount        `json:"top_locations"`
	TopCuisines       []NameCount        `json:"top_cuisines"`
	PriceRangeUsage   map[string]int     `json:"price_range_usage"`
	FilterUsage       map[string]float64 `json:"filter_usage"`
	CacheStats        CacheCounters      `json:"cache_stats"`
	FeedbackSummary   FeedbackSummary    `json:"feedback_summary"`
}

package analytics

import (
	"math"
	"sort"

	"dineWise/domain"
)

const topN = 10

// Service computes the usage report from the event and feedback logs.
type Service struct {
	events   *EventLog
	feedback *FeedbackLog
}

func NewService(events *EventLog, feedback *FeedbackLog) *Service {
	return &Service{events: events, feedback: feedback}
}

func (s *Service) Events() *EventLog      { return s.events }
func (s *Service) Feedback() *FeedbackLog { return s.feedback }

// Report aggregates every search event recorded so far. Cache hits count
// as searches; the hit flag splits them out in the cache stats.
func (s *Service) Report() domain.AnalyticsReport {
	var searches []domain.EventRecord
	for _, e := range s.events.Events() {
		if e.Type == domain.EventSearch || e.Type == domain.EventCacheHit {
			searches = append(searches, e)
		}
	}
	total := len(searches)

	var timeSum float64
	timeCount := 0
	locCounts := map[string]int{}
	cuisineCounts := map[string]int{}
	priceUsage := map[string]int{}
	filterCounts := map[string]int{
		"price_range": 0,
		"cuisine":     0,
		"rating":      0,
		"free_text":   0,
	}
	cacheHits := 0

	for _, e := range searches {
		timeSum += e.ResponseTimeMS
		timeCount++

		loc := e.Location
		if loc == "" {
			loc = "unknown"
		}
		locCounts[loc]++

		for _, c := range e.Cuisines {
			cuisineCounts[c]++
		}
		for _, p := range e.PriceRange {
			priceUsage[p]++
		}

		if len(e.PriceRange) > 0 {
			filterCounts["price_range"]++
		}
		if len(e.Cuisines) > 0 {
			filterCounts["cuisine"]++
		}
		if e.MinRating > 0 {
			filterCounts["rating"]++
		}
		if e.FreeText {
			filterCounts["free_text"]++
		}

		if e.CacheHit {
			cacheHits++
		}
	}

	report := domain.AnalyticsReport{
		TotalSearches:   total,
		TopLocations:    topCounts(locCounts, topN),
		TopCuisines:     topCounts(cuisineCounts, topN),
		PriceRangeUsage: priceUsage,
		FilterUsage:     map[string]float64{},
		CacheStats: domain.CacheCounters{
			Hits:   cacheHits,
			Misses: total - cacheHits,
		},
		FeedbackSummary: s.feedback.Summary(),
	}

	if timeCount > 0 {
		report.AvgResponseTimeMS = round1(timeSum / float64(timeCount))
	}
	for name, count := range filterCounts {
		if total > 0 {
			report.FilterUsage[name] = round1(float64(count) / float64(total) * 100)
		} else {
			report.FilterUsage[name] = 0
		}
	}
	if total > 0 {
		report.CacheStats.HitRate = round1(float64(cacheHits) / float64(total) * 100)
	}

	return report
}

// topCounts sorts by count descending, name ascending for equal counts so
// the ordering is deterministic.
func topCounts(counts map[string]int, limit int) []domain.NameCount {
	out := make([]domain.NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, domain.NameCount{Name: name, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

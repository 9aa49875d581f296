package recommendation

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"dineWise/domain"
	"dineWise/pkg/logger"
	"dineWise/pkg/metrics"
)

// DatasetStore serves the read-only restaurant table.
type DatasetStore interface {
	Restaurants() ([]domain.Restaurant, error)
}

// EmbeddingProvider supplies the semantic signal. Available reports whether
// precomputed restaurant vectors were loaded; when false the heuristic
// score stands unmodified.
type EmbeddingProvider interface {
	Available() bool
	Encode(ctx context.Context, text string) ([]float64, error)
	RestaurantVector(rowIndex int) []float64
}

// RerankAdvisor may reorder the top-K and attach explanations. A nil or
// empty result keeps the heuristic order; it never returns an error.
type RerankAdvisor interface {
	RankAndExplain(ctx context.Context, prefs domain.RecommendationRequest, candidates []domain.RerankCandidate) []domain.RankedExplanation
}

// SessionStore persists the sticky per-session variant.
type SessionStore interface {
	GetVariant(ctx context.Context, sessionID string) (string, error)
	SetVariant(ctx context.Context, sessionID, variant string) error
}

// VariantAssigner resolves the scoring-weight variant for a request.
type VariantAssigner interface {
	AssignVariant(hint string) string
	VariantWeights(variant string) domain.Weights
	RecordSearch(variant string)
}

// EventRecorder receives telemetry events.
type EventRecorder interface {
	Record(event domain.EventRecord)
}

type Service struct {
	dataset    DatasetStore
	embeddings EmbeddingProvider
	advisor    RerankAdvisor
	sessions   SessionStore
	assigner   VariantAssigner
	events     EventRecorder
	cache      *ResultCache
}

func NewService(
	dataset DatasetStore,
	embeddings EmbeddingProvider,
	advisor RerankAdvisor,
	sessions SessionStore,
	assigner VariantAssigner,
	events EventRecorder,
	cache *ResultCache,
) *Service {
	return &Service{
		dataset:    dataset,
		embeddings: embeddings,
		advisor:    advisor,
		sessions:   sessions,
		assigner:   assigner,
		events:     events,
		cache:      cache,
	}
}

func (s *Service) Cache() *ResultCache {
	return s.cache
}

type scoredCandidate struct {
	rowIndex   int
	restaurant domain.Restaurant
	score      float64
}

// GetRecommendations runs the full retrieval funnel: variant resolution,
// cache lookup, hard filters, heuristic scoring, optional semantic blend,
// top-K selection, optional LLM re-rank, cache store.
func (s *Service) GetRecommendations(ctx context.Context, sessionID string, req domain.RecommendationRequest) (domain.RecommendationResponse, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationResponse{}, fmt.Errorf("context error: %w", err)
	}

	start := time.Now()
	req = req.Normalized()

	// 1) resolve variant: session hint first, fresh draw otherwise. The
	// draw is persisted back into session storage here, not in the assigner.
	hint := ""
	if s.sessions != nil && sessionID != "" {
		v, err := s.sessions.GetVariant(ctx, sessionID)
		if err != nil {
			logger.Warn("failed to read session variant, drawing fresh", "error", err)
		} else {
			hint = v
		}
	}

	variant := s.assigner.AssignVariant(hint)
	if hint != variant && s.sessions != nil && sessionID != "" {
		// covers both a missing value and a corrupted one, so the fresh
		// draw sticks for the rest of the session
		if err := s.sessions.SetVariant(ctx, sessionID, variant); err != nil {
			logger.Warn("failed to persist session variant", "error", err)
		}
	}

	weights := s.assigner.VariantWeights(variant)

	// 2) cache lookup
	key := Key(req, variant)
	if cached, ok := s.cache.Get(key); ok {
		metrics.CacheHits.Inc()
		s.assigner.RecordSearch(variant)
		s.recordEvent(req, variant, true, cached.TotalCandidates, len(cached.Recommendations), time.Since(start))
		return cached, nil
	}
	metrics.CacheMisses.Inc()

	rows, err := s.dataset.Restaurants()
	if err != nil {
		return domain.RecommendationResponse{}, err
	}

	// 3) hard filters, in order: location, price, rating, cuisines
	reqCuisines := lowerSet(req.Cuisines)
	candidates := s.filterCandidates(rows, req, reqCuisines)
	totalCandidates := len(candidates)

	// 4) fast exit: nothing survived, skip scoring and re-ranking entirely
	if totalCandidates == 0 {
		resp := domain.RecommendationResponse{
			Recommendations: []domain.RecommendationItem{},
			TotalCandidates: 0,
			Variant:         variant,
		}
		s.finish(key, resp, req, variant, start)
		return resp, nil
	}

	// 5) heuristic score + optional semantic blend, then stable top-K
	for i := range candidates {
		candidates[i].score = ScoreRestaurant(candidates[i].restaurant, reqCuisines, req.PriceRange, weights)
	}
	s.blendSemantic(ctx, req, candidates)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > req.Limit {
		candidates = candidates[:req.Limit]
	}

	// 6) LLM re-rank of the selected top-K only
	items := s.rerank(ctx, req, candidates)

	resp := domain.RecommendationResponse{
		Recommendations: items,
		TotalCandidates: totalCandidates,
		Variant:         variant,
	}

	s.finish(key, resp, req, variant, start)
	return resp, nil
}

func (s *Service) filterCandidates(rows []domain.Restaurant, req domain.RecommendationRequest, reqCuisines map[string]struct{}) []scoredCandidate {
	location := strings.ToLower(strings.TrimSpace(req.Location))

	buckets := make(map[string]struct{}, len(req.PriceRange))
	for _, b := range req.PriceRange {
		buckets[b] = struct{}{}
	}

	var out []scoredCandidate
	for i, r := range rows {
		if location != "" &&
			!strings.Contains(r.CityLower, location) &&
			!strings.Contains(r.LocalityLower, location) {
			continue
		}

		if len(buckets) > 0 {
			if _, ok := buckets[r.PriceBucket]; !ok {
				continue
			}
		}

		if req.MinRating > 0 {
			if r.AvgRating == nil || *r.AvgRating < req.MinRating {
				continue
			}
		}

		if len(reqCuisines) > 0 && !anyCuisineMatch(r.Cuisines, reqCuisines) {
			continue
		}

		out = append(out, scoredCandidate{rowIndex: i, restaurant: r})
	}

	return out
}

func anyCuisineMatch(cuisines []string, requested map[string]struct{}) bool {
	for _, c := range cuisines {
		if _, ok := requested[c]; ok {
			return true
		}
	}
	return false
}

// blendSemantic mixes the heuristic score 50/50 with embedding cosine
// similarity. Any failure leaves the heuristic scores untouched.
func (s *Service) blendSemantic(ctx context.Context, req domain.RecommendationRequest, candidates []scoredCandidate) {
	if req.FreeTextPreferences == "" || s.embeddings == nil || !s.embeddings.Available() {
		return
	}

	userVec, err := s.embeddings.Encode(ctx, req.FreeTextPreferences)
	if err != nil {
		logger.Warn("failed to encode preferences, skipping semantic blend", "error", err)
		return
	}

	for i := range candidates {
		vec := s.embeddings.RestaurantVector(candidates[i].rowIndex)
		if vec == nil {
			continue
		}
		sim := cosine(userVec, vec)
		semantic := (sim + 1.0) / 2.0
		candidates[i].score = 0.5*candidates[i].score + 0.5*semantic
	}
}

// rerank hands the selected top-K to the advisor. A non-empty answer
// dictates the ordering; ids the advisor omitted are appended in heuristic
// order. An empty answer keeps the heuristic order.
func (s *Service) rerank(ctx context.Context, req domain.RecommendationRequest, top []scoredCandidate) []domain.RecommendationItem {
	byID := make(map[string]scoredCandidate, len(top))
	heuristicOrder := make([]string, 0, len(top))
	for _, c := range top {
		byID[c.restaurant.ID] = c
		heuristicOrder = append(heuristicOrder, c.restaurant.ID)
	}

	reasons := make(map[string]string)
	var ordered []string

	var ranked []domain.RankedExplanation
	if s.advisor != nil {
		rerankCandidates := make([]domain.RerankCandidate, 0, len(top))
		for _, c := range top {
			rerankCandidates = append(rerankCandidates, domain.RerankCandidate{
				ID:          c.restaurant.ID,
				Name:        c.restaurant.Name,
				PriceBucket: c.restaurant.PriceBucket,
				AvgRating:   c.restaurant.AvgRating,
				Cuisines:    c.restaurant.Cuisines,
			})
		}
		ranked = s.advisor.RankAndExplain(ctx, req, rerankCandidates)
	}

	if len(ranked) > 0 {
		seen := make(map[string]struct{}, len(ranked))
		for _, r := range ranked {
			if _, dup := seen[r.ID]; dup {
				continue
			}
			if _, ok := byID[r.ID]; !ok {
				// advisor invented an id; ignore it
				continue
			}
			seen[r.ID] = struct{}{}
			ordered = append(ordered, r.ID)
			reasons[r.ID] = r.Reason
		}
		for _, id := range heuristicOrder {
			if _, ok := seen[id]; !ok {
				ordered = append(ordered, id)
			}
		}
	} else {
		metrics.RerankFallbacks.Inc()
		ordered = heuristicOrder
	}

	items := make([]domain.RecommendationItem, 0, len(ordered))
	for _, id := range ordered {
		c := byID[id]
		items = append(items, domain.RecommendationItem{
			Restaurant: c.restaurant,
			Score:      round4(c.score),
			Reason:     reasons[id],
		})
	}

	return items
}

func (s *Service) finish(key string, resp domain.RecommendationResponse, req domain.RecommendationRequest, variant string, start time.Time) {
	s.cache.Set(key, resp)
	s.assigner.RecordSearch(variant)
	s.recordEvent(req, variant, false, resp.TotalCandidates, len(resp.Recommendations), time.Since(start))

	metrics.RecommendRequests.WithLabelValues(variant).Inc()
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())
}

func (s *Service) recordEvent(req domain.RecommendationRequest, variant string, cacheHit bool, totalCandidates, resultCount int, elapsed time.Duration) {
	if s.events == nil {
		return
	}

	eventType := domain.EventSearch
	if cacheHit {
		eventType = domain.EventCacheHit
	}

	s.events.Record(domain.EventRecord{
		Type:            eventType,
		Timestamp:       time.Now(),
		Location:        req.Location,
		Cuisines:        req.Cuisines,
		PriceRange:      req.PriceRange,
		MinRating:       req.MinRating,
		FreeText:        req.FreeTextPreferences != "",
		CacheHit:        cacheHit,
		TotalCandidates: totalCandidates,
		ResultCount:     resultCount,
		ResponseTimeMS:  float64(elapsed.Microseconds()) / 1000.0,
		Variant:         variant,
	})
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

package experiment

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"dineWise/domain"
	"dineWise/pkg/logger"
)

const ExperimentID = "scoring_weights"

// The winner threshold: one variant's satisfaction rate has to beat the
// other by at least this many percentage points.
const winnerThresholdPP = 5.0

var variantWeights = map[string]domain.Weights{
	domain.VariantA: {Rating: 0.6, Cuisine: 0.3, Price: 0.1}, // rating-heavy (control)
	domain.VariantB: {Rating: 0.4, Cuisine: 0.3, Price: 0.3}, // price-balanced (treatment)
}

type variantCounters struct {
	searches         int
	feedbackPositive int
	feedbackNegative int
}

// Assigner owns the scoring-weights experiment: sticky per-session variant
// draws, the weight lookup, and per-variant counters. All state is process
// lifetime only and mutex-guarded.
type Assigner struct {
	mu          sync.Mutex
	assignments []domain.Assignment
	counters    map[string]*variantCounters
}

func NewAssigner() *Assigner {
	return &Assigner{
		counters: map[string]*variantCounters{
			domain.VariantA: {},
			domain.VariantB: {},
		},
	}
}

// AssignVariant returns the variant for the current request. A valid hint
// (the session's persisted variant) is returned as-is; otherwise a fresh
// 50/50 draw is made and logged. Persisting the draw back into session
// storage is the caller's job.
func (a *Assigner) AssignVariant(hint string) string {
	if hint == domain.VariantA || hint == domain.VariantB {
		return hint
	}

	variant := domain.VariantA
	if rand.Intn(2) == 1 {
		variant = domain.VariantB
	}

	a.mu.Lock()
	a.assignments = append(a.assignments, domain.Assignment{
		ExperimentID: ExperimentID,
		Variant:      variant,
		Timestamp:    time.Now(),
	})
	a.mu.Unlock()

	logger.Debug("assigned experiment variant", "experiment", ExperimentID, "variant", variant)
	return variant
}

// VariantWeights returns the scoring weights for a variant. Unknown
// variants fall back to variant A's weights.
func (a *Assigner) VariantWeights(variant string) domain.Weights {
	if w, ok := variantWeights[variant]; ok {
		return w
	}
	return variantWeights[domain.VariantA]
}

func (a *Assigner) RecordSearch(variant string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if c, ok := a.counters[variant]; ok {
		c.searches++
	}
}

func (a *Assigner) RecordFeedback(variant string, isPositive bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.counters[variant]
	if !ok {
		return
	}
	if isPositive {
		c.feedbackPositive++
	} else {
		c.feedbackNegative++
	}
}

// Stats derives per-variant satisfaction rates and the winner. A winner is
// declared only when both variants have at least one piece of feedback and
// the rates differ by at least five percentage points.
func (a *Assigner) Stats() domain.ExperimentStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	statsA := a.counters[domain.VariantA].snapshot()
	statsB := a.counters[domain.VariantB].snapshot()

	out := domain.ExperimentStats{A: statsA, B: statsB}

	hasData := statsA.TotalFeedback > 0 && statsB.TotalFeedback > 0
	if hasData && math.Abs(statsA.SatisfactionRate-statsB.SatisfactionRate) >= winnerThresholdPP {
		if statsA.SatisfactionRate > statsB.SatisfactionRate {
			out.Winner = domain.VariantA
		} else {
			out.Winner = domain.VariantB
		}
	}

	return out
}

func (c *variantCounters) snapshot() domain.VariantStats {
	total := c.feedbackPositive + c.feedbackNegative
	rate := 0.0
	if total > 0 {
		rate = round1(float64(c.feedbackPositive) / float64(total) * 100)
	}

	return domain.VariantStats{
		Searches:         c.searches,
		FeedbackPositive: c.feedbackPositive,
		FeedbackNegative: c.feedbackNegative,
		TotalFeedback:    total,
		SatisfactionRate: rate,
	}
}

// Assignments returns a copy of the assignment log.
func (a *Assigner) Assignments() []domain.Assignment {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]domain.Assignment, len(a.assignments))
	copy(out, a.assignments)
	return out
}

// Reset clears all assignment and counter state. Used by tests and the
// admin reset endpoint.
func (a *Assigner) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.assignments = nil
	for _, c := range a.counters {
		*c = variantCounters{}
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

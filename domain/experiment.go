package domain

import "time"

const (
	VariantA = "A"
	VariantB = "B"
)

// Weights is one variant's scoring-weight triple. The three weights sum to 1.
type Weights struct {
	Rating  float64 `json:"rating"`
	Cuisine float64 `json:"cuisine"`
	Price   float64 `json:"price"`
}

// Assignment is one logged variant draw.
type Assignment struct {
	ExperimentID string    `json:"experiment_id"`
	Variant      string    `json:"variant"`
	Timestamp    time.Time `json:"timestamp"`
}

type VariantStats struct {
	Searches         int     `json:"searches"`
	FeedbackPositive int     `json:"feedback_positive"`
	FeedbackNegative int     `json:"feedback_negative"`
	TotalFeedback    int     `json:"total_feedback"`
	SatisfactionRate float64 `json:"satisfaction_rate"`
}

// ExperimentStats is the per-variant rollup. Winner is empty until both
// variants have feedback and their satisfaction rates differ by at least
// five percentage points.
type ExperimentStats struct {
	A      VariantStats `json:"A"`
	B      VariantStats `json:"B"`
	Winner string       `json:"winner,omitempty"`
}

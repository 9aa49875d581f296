package domain

type RecommendationRequest struct {
	// Empty location means no location filter.
	Location            string   `json:"location"`
	PriceRange          []string `json:"price_range" validate:"omitempty,dive,oneof=$ $$ $$$ $$$$"`
	MinRating           float64  `json:"min_rating" validate:"gte=0,lte=5"`
	Cuisines            []string `json:"cuisines"`
	FreeTextPreferences string   `json:"free_text_preferences"`
	Limit               int      `json:"limit" validate:"omitempty,gte=1,lte=50"`
}

const DefaultLimit = 10

// Normalized returns a copy with defaults applied, suitable for cache keying.
func (r RecommendationRequest) Normalized() RecommendationRequest {
	if r.Limit == 0 {
		r.Limit = DefaultLimit
	}
	return r
}

type RecommendationItem struct {
	Restaurant Restaurant `json:"restaurant"`
	Score      float64    `json:"score"`
	Reason     string     `json:"reason,omitempty"`
}

type RecommendationResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
	TotalCandidates int                  `json:"total_candidates"`
	Variant         string               `json:"variant,omitempty"`
}

type FeedbackRequest struct {
	RestaurantID  string `json:"restaurant_id" validate:"required"`
	QueryLocation string `json:"query_location" validate:"required"`
	IsPositive    bool   `json:"is_positive"`
	Variant       string `json:"variant" validate:"omitempty,oneof=A B"`
}

type FeedbackResponse struct {
	Status        string `json:"status"`
	TotalFeedback int    `json:"total_feedback"`
}

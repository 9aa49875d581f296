package domain

// RerankCandidate is the slice of a restaurant shown to the re-ranking
// advisor.
type RerankCandidate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	PriceBucket string   `json:"price_bucket"`
	AvgRating   *float64 `json:"avg_rating"`
	Cuisines    []string `json:"cuisines"`
}

// RankedExplanation is one advisor result. Slice order is the advisor's
// preferred ordering, best first.
type RankedExplanation struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

package domain

// PriceOrder is the ordered set of price buckets, cheapest first.
var PriceOrder = []string{"$", "$$", "$$$", "$$$$"}

// Restaurant is one row of the processed dataset. The slice loaded at
// startup is read-only for the process lifetime; its natural order is the
// tie-break order for equal scores.
type Restaurant struct {
	ID            string   `csv:"id" json:"id"`
	Name          string   `csv:"name" json:"name"`
	Address       string   `csv:"address" json:"address"`
	City          string   `csv:"city" json:"city"`
	Locality      string   `csv:"locality" json:"locality"`
	PriceBucket string `csv:"price_bucket" json:"price_bucket"`

	// The numeric columns are nullable. They are read as raw strings and
	// parsed at load time so an empty cell yields nil, not a zero value.
	AvgCostForTwoRaw string `csv:"avg_cost_for_two" json:"-"`
	AvgRatingRaw     string `csv:"avg_rating" json:"-"`
	CuisinesRaw      string `csv:"cuisines" json:"-"`

	// Derived at load time.
	AvgCostForTwo *float64 `csv:"-" json:"avg_cost_for_two"`
	AvgRating     *float64 `csv:"-" json:"avg_rating"`
	Cuisines      []string `csv:"-" json:"cuisines"`
	CityLower     string   `csv:"-" json:"-"`
	LocalityLower string   `csv:"-" json:"-"`
}

// PriceIndex returns the position of a bucket in PriceOrder, or -1.
func PriceIndex(bucket string) int {
	for i, b := range PriceOrder {
		if b == bucket {
			return i
		}
	}
	return -1
}

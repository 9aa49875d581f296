package recommendation

import (
	"math"
	"testing"

	"dineWise/domain"
)

func ratingPtr(v float64) *float64 { return &v }

var testWeights = domain.Weights{Rating: 0.6, Cuisine: 0.3, Price: 0.1}

func TestPriceDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"$", "$", 0},
		{"$", "$$", 1},
		{"$", "$$$$", 3},
		{"$$$$", "$", 3},
		{"???", "$$", 0},
		{"$$", "", 0},
	}

	for _, tc := range cases {
		if got := PriceDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("PriceDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestScoreRestaurantBounds(t *testing.T) {
	restaurants := []domain.Restaurant{
		{AvgRating: ratingPtr(5.0), PriceBucket: "$", Cuisines: []string{"italian"}},
		{AvgRating: ratingPtr(0.0), PriceBucket: "$$$$", Cuisines: nil},
		{AvgRating: nil, PriceBucket: "???", Cuisines: []string{"thai", "chinese"}},
	}

	cuisines := lowerSet([]string{"Italian", "Thai"})
	buckets := []string{"$", "$$"}

	for i, r := range restaurants {
		score := ScoreRestaurant(r, cuisines, buckets, testWeights)
		if score < 0 || score > 1 {
			t.Errorf("restaurant %d: score %v out of [0,1]", i, score)
		}
	}
}

func TestScoreRestaurantNilRating(t *testing.T) {
	r := domain.Restaurant{AvgRating: nil, PriceBucket: "$", Cuisines: []string{"italian"}}

	got := ScoreRestaurant(r, lowerSet([]string{"italian"}), []string{"$"}, testWeights)
	want := 0.6*0 + 0.3*1 + 0.1*1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got, want)
	}
}

func TestScoreRestaurantCuisineOverlap(t *testing.T) {
	// one match out of two requested cuisines gives half credit
	r := domain.Restaurant{AvgRating: ratingPtr(4.0), Cuisines: []string{"chinese"}}

	got := ScoreRestaurant(r, lowerSet([]string{"Chinese", "Thai"}), nil, testWeights)
	want := 0.6*(4.0/5.0) + 0.3*0.5 + 0.1*1.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got, want)
	}
}

func TestScoreRestaurantNoCuisineFilter(t *testing.T) {
	r := domain.Restaurant{AvgRating: ratingPtr(2.5), Cuisines: []string{"cafe"}}

	got := ScoreRestaurant(r, nil, nil, testWeights)
	want := 0.6*0.5 + 0.3*1.0 + 0.1*1.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got, want)
	}
}

func TestScoreRestaurantPriceOneStepAway(t *testing.T) {
	// "$$$" against requested ["$", "$$"]: closest bucket is one step away
	r := domain.Restaurant{AvgRating: ratingPtr(5.0), PriceBucket: "$$$"}

	got := ScoreRestaurant(r, nil, []string{"$", "$$"}, testWeights)
	want := 0.6*1.0 + 0.3*1.0 + 0.1*0.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got, want)
	}
}

func TestScoreRestaurantPriceFarAway(t *testing.T) {
	// three steps away floors the price component at zero
	r := domain.Restaurant{AvgRating: ratingPtr(5.0), PriceBucket: "$$$$"}

	got := ScoreRestaurant(r, nil, []string{"$"}, testWeights)
	want := 0.6*1.0 + 0.3*1.0 + 0.1*0.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got, want)
	}
}

func TestScoreRestaurantUnknownBucket(t *testing.T) {
	// unknown bucket means distance zero, full price credit
	r := domain.Restaurant{AvgRating: ratingPtr(5.0), PriceBucket: "unknown"}

	got := ScoreRestaurant(r, nil, []string{"$$$$"}, testWeights)
	want := 0.6*1.0 + 0.3*1.0 + 0.1*1.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got, want)
	}
}

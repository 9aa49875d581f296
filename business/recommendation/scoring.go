package recommendation

import (
	"strings"

	"dineWise/domain"
)

// PriceDistance returns how many bucket steps apart two price buckets are.
// An unrecognized bucket counts as distance 0, never an error.
func PriceDistance(a, b string) int {
	ia := domain.PriceIndex(a)
	ib := domain.PriceIndex(b)
	if ia < 0 || ib < 0 {
		return 0
	}
	if ia > ib {
		return ia - ib
	}
	return ib - ia
}

// ScoreRestaurant computes the weighted heuristic score for one candidate.
// With weights summing to 1 the result is always in [0, 1].
func ScoreRestaurant(
	r domain.Restaurant,
	requestedCuisinesLower map[string]struct{},
	requestedBuckets []string,
	weights domain.Weights,
) float64 {
	ratingScore := 0.0
	if r.AvgRating != nil {
		ratingScore = *r.AvgRating / 5.0
	}

	cuisineScore := 1.0 // no filter, full credit
	if len(requestedCuisinesLower) > 0 {
		matches := 0
		for _, c := range r.Cuisines {
			if _, ok := requestedCuisinesLower[c]; ok {
				matches++
			}
		}
		cuisineScore = float64(matches) / float64(len(requestedCuisinesLower))
	}

	priceScore := 1.0
	if len(requestedBuckets) > 0 {
		minDist := PriceDistance(r.PriceBucket, requestedBuckets[0])
		for _, b := range requestedBuckets[1:] {
			if d := PriceDistance(r.PriceBucket, b); d < minDist {
				minDist = d
			}
		}
		priceScore = 1.0 - float64(minDist)*0.5
		if priceScore < 0 {
			priceScore = 0
		}
	}

	return weights.Rating*ratingScore + weights.Cuisine*cuisineScore + weights.Price*priceScore
}

// lowerSet builds the case-insensitive lookup set for requested cuisines.
func lowerSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out[v] = struct{}{}
		}
	}
	return out
}

package dataset

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"dineWise/domain"

	"github.com/gocarina/gocsv"
)

// Store owns the canonical restaurant table. It is loaded once from the
// processed CSV and read-only afterwards.
type Store struct {
	csvPath string

	once        sync.Once
	loadErr     error
	restaurants []domain.Restaurant
}

func NewStore(csvPath string) *Store {
	return &Store{csvPath: csvPath}
}

// Load reads and parses the CSV. It is idempotent; a missing or malformed
// file is a fatal startup condition reported to the caller, never retried.
func (s *Store) Load() error {
	s.once.Do(func() {
		f, err := os.Open(s.csvPath)
		if err != nil {
			s.loadErr = fmt.Errorf("failed to open dataset %s: %w", s.csvPath, err)
			return
		}
		defer f.Close()

		var rows []*domain.Restaurant
		if err := gocsv.UnmarshalFile(f, &rows); err != nil {
			s.loadErr = fmt.Errorf("failed to parse dataset %s: %w", s.csvPath, err)
			return
		}

		s.restaurants = make([]domain.Restaurant, 0, len(rows))
		for _, r := range rows {
			r.AvgCostForTwo = parseNullableFloat(r.AvgCostForTwoRaw)
			r.AvgRating = parseNullableFloat(r.AvgRatingRaw)
			r.Cuisines = parseCuisines(r.CuisinesRaw)
			r.CityLower = strings.ToLower(r.City)
			r.LocalityLower = strings.ToLower(r.Locality)
			s.restaurants = append(s.restaurants, *r)
		}
	})

	return s.loadErr
}

// Restaurants returns the full table in natural row order. Callers must not
// mutate the returned slice.
func (s *Store) Restaurants() ([]domain.Restaurant, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s.restaurants, nil
}

// Metadata returns the sorted distinct cities and cuisines in the dataset.
func (s *Store) Metadata() (cities []string, cuisines []string, err error) {
	rows, err := s.Restaurants()
	if err != nil {
		return nil, nil, err
	}

	citySet := make(map[string]struct{})
	cuisineSet := make(map[string]struct{})
	for _, r := range rows {
		if r.City != "" {
			citySet[r.City] = struct{}{}
		}
		for _, c := range strings.Split(r.CuisinesRaw, ",") {
			c = strings.TrimSpace(c)
			if c != "" {
				cuisineSet[c] = struct{}{}
			}
		}
	}

	for c := range citySet {
		cities = append(cities, c)
	}
	for c := range cuisineSet {
		cuisines = append(cuisines, c)
	}
	sort.Strings(cities)
	sort.Strings(cuisines)

	return cities, cuisines, nil
}

// parseNullableFloat maps an empty or unparseable cell to nil.
func parseNullableFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseCuisines(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

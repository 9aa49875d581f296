package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleCSV = `id,name,address,city,locality,price_bucket,avg_cost_for_two,avg_rating,cuisines
1,Spice Route,12 MG Road,Bangalore,BTM,$,400,4.2,"North Indian, Chinese"
2,Trattoria,5 Church St,Bangalore,Koramangala,$$$,1800,4.6,Italian
3,Noodle Bar,8 Brigade Rd,Mumbai,Bandra,$$,,,"Chinese , Thai"
`

func writeSampleCSV(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "restaurants.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDerivesFields(t *testing.T) {
	store := NewStore(writeSampleCSV(t))

	rows, err := store.Restaurants()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	first := rows[0]
	if first.ID != "1" || first.Name != "Spice Route" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if !reflect.DeepEqual(first.Cuisines, []string{"north indian", "chinese"}) {
		t.Errorf("cuisines = %v", first.Cuisines)
	}
	if first.CityLower != "bangalore" || first.LocalityLower != "btm" {
		t.Errorf("lowered city/locality = %q/%q", first.CityLower, first.LocalityLower)
	}
	if first.AvgRating == nil || *first.AvgRating != 4.2 {
		t.Errorf("avg rating = %v", first.AvgRating)
	}
	if first.AvgCostForTwo == nil || *first.AvgCostForTwo != 400 {
		t.Errorf("avg cost for two = %v", first.AvgCostForTwo)
	}

	// whitespace in the raw cuisine list is trimmed
	if !reflect.DeepEqual(rows[2].Cuisines, []string{"chinese", "thai"}) {
		t.Errorf("cuisines = %v", rows[2].Cuisines)
	}
	// empty numeric cells stay nil
	if rows[2].AvgRating != nil {
		t.Errorf("missing rating should be nil, got %v", *rows[2].AvgRating)
	}
	if rows[2].AvgCostForTwo != nil {
		t.Errorf("missing cost should be nil, got %v", *rows[2].AvgCostForTwo)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.csv"))

	if err := store.Load(); err == nil {
		t.Fatal("expected error for missing file")
	}
	// the error sticks across calls
	if _, err := store.Restaurants(); err == nil {
		t.Fatal("expected sticky load error")
	}
}

func TestMetadata(t *testing.T) {
	store := NewStore(writeSampleCSV(t))

	cities, cuisines, err := store.Metadata()
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(cities, []string{"Bangalore", "Mumbai"}) {
		t.Errorf("cities = %v", cities)
	}
	if !reflect.DeepEqual(cuisines, []string{"Chinese", "Italian", "North Indian", "Thai"}) {
		t.Errorf("cuisines = %v", cuisines)
	}
}

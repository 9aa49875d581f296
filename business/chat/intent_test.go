package chat

import (
	"reflect"
	"strings"
	"testing"

	"dineWise/domain"
)

func TestMapPriceSentimentKeywords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"cheap", []string{"$"}},
		{"something cheap please", []string{"$"}},
		{"moderate", []string{"$$"}},
		{"mid-range", []string{"$$"}},
		{"expensive", []string{"$$$", "$$$$"}},
		{"inexpensive", []string{"$"}},
		{"fine dining", []string{"$$$", "$$$$"}},
		{"luxury", []string{"$$$$"}},
	}

	for _, tc := range cases {
		if got := mapPriceSentiment(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("mapPriceSentiment(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMapPriceSentimentAmounts(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"under 500", []string{"$"}},
		{"under 400 per person", []string{"$", "$$"}}, // 800 for two
		{"below 1000", []string{"$", "$$"}},
		{"less than 2000", []string{"$", "$$", "$$$"}},
		{"max ₹1500", []string{"$", "$$", "$$$"}},
		{"up to rs 5000", []string{"$", "$$", "$$$", "$$$$"}},
	}

	for _, tc := range cases {
		if got := mapPriceSentiment(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("mapPriceSentiment(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMapPriceSentimentNoSignal(t *testing.T) {
	if got := mapPriceSentiment(""); got != nil {
		t.Errorf("empty input = %v, want nil", got)
	}
	if got := mapPriceSentiment("somewhere nice"); got != nil {
		t.Errorf("unknown expression = %v, want nil", got)
	}
}

func TestMapIntentToRequest(t *testing.T) {
	intent := domain.ExtractedIntent{
		Location:       "BTM",
		Cuisines:       []string{"Italian"},
		PriceSentiment: "cheap",
		MinRating:      4.0,
		Mood:           "romantic",
		Occasion:       "date night",
		Dietary:        []string{"vegetarian"},
	}

	req := mapIntentToRequest(intent, "somewhere romantic in BTM")

	if req.Location != "BTM" {
		t.Errorf("location = %q", req.Location)
	}
	if !reflect.DeepEqual(req.PriceRange, []string{"$"}) {
		t.Errorf("price range = %v", req.PriceRange)
	}
	if req.MinRating != 4.0 {
		t.Errorf("min rating = %v", req.MinRating)
	}
	if !reflect.DeepEqual(req.Cuisines, []string{"Italian"}) {
		t.Errorf("cuisines = %v", req.Cuisines)
	}

	for _, fragment := range []string{"mood: romantic", "occasion: date night", "dietary: vegetarian", "somewhere romantic in BTM"} {
		if !strings.Contains(req.FreeTextPreferences, fragment) {
			t.Errorf("free text missing %q: %q", fragment, req.FreeTextPreferences)
		}
	}
}

func TestMapIntentToRequestMinimal(t *testing.T) {
	req := mapIntentToRequest(domain.ExtractedIntent{}, "food near me")

	if req.FreeTextPreferences != "food near me" {
		t.Errorf("free text = %q, want the original message alone", req.FreeTextPreferences)
	}
	if req.PriceRange != nil {
		t.Errorf("price range = %v, want nil", req.PriceRange)
	}
}

func TestAccumulateIntentScalarOverwrite(t *testing.T) {
	acc := domain.ExtractedIntent{Location: "BTM", Mood: "casual"}
	fresh := domain.ExtractedIntent{Location: "Koramangala", Confidence: 0.8}

	merged := accumulateIntent(acc, fresh)

	if merged.Location != "Koramangala" {
		t.Errorf("location = %q, want overwrite", merged.Location)
	}
	if merged.Mood != "casual" {
		t.Errorf("mood = %q, empty fresh value must not erase it", merged.Mood)
	}
	if merged.Confidence != 0.8 {
		t.Errorf("confidence = %v, want latest", merged.Confidence)
	}
}

func TestAccumulateIntentListUnion(t *testing.T) {
	acc := domain.ExtractedIntent{Cuisines: []string{"Thai", "Chinese"}}
	fresh := domain.ExtractedIntent{Cuisines: []string{"Chinese", "Italian"}}

	merged := accumulateIntent(acc, fresh)

	want := []string{"Chinese", "Italian", "Thai"}
	if !reflect.DeepEqual(merged.Cuisines, want) {
		t.Errorf("cuisines = %v, want %v", merged.Cuisines, want)
	}
}

func TestUpdateConversationWindow(t *testing.T) {
	state := domain.ConversationState{}

	for i := 0; i < 5; i++ {
		state = updateConversation(state, "question", "answer", domain.ExtractedIntent{}, nil)
	}

	if len(state.Turns) != maxTurns {
		t.Errorf("turns = %d, want capped at %d", len(state.Turns), maxTurns)
	}
	if state.Turns[0].Role != "user" || state.Turns[len(state.Turns)-1].Role != "assistant" {
		t.Errorf("window should keep whole exchanges, got %+v", state.Turns)
	}
}

func TestUpdateConversationResultIDs(t *testing.T) {
	state := domain.ConversationState{LastResultIDs: []string{"old"}}

	state = updateConversation(state, "q", "a", domain.ExtractedIntent{}, nil)
	if !reflect.DeepEqual(state.LastResultIDs, []string{"old"}) {
		t.Errorf("nil result ids should keep previous, got %v", state.LastResultIDs)
	}

	state = updateConversation(state, "q", "a", domain.ExtractedIntent{}, []string{"1", "2"})
	if !reflect.DeepEqual(state.LastResultIDs, []string{"1", "2"}) {
		t.Errorf("result ids = %v", state.LastResultIDs)
	}
}

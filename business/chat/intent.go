package chat

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"dineWise/domain"
)

const (
	confidenceThreshold = 0.6
	maxClarifications   = 1
	maxTurns            = 6
)

type priceKeyword struct {
	keyword string
	buckets []string
}

// Ordered so that "inexpensive" wins over its "expensive" substring.
var priceKeywords = []priceKeyword{
	{"cheap", []string{"$"}},
	{"budget", []string{"$"}},
	{"affordable", []string{"$", "$$"}},
	{"inexpensive", []string{"$"}},
	{"moderate", []string{"$$"}},
	{"mid-range", []string{"$$"}},
	{"mid range", []string{"$$"}},
	{"expensive", []string{"$$$", "$$$$"}},
	{"fine dining", []string{"$$$", "$$$$"}},
	{"premium", []string{"$$$", "$$$$"}},
	{"luxury", []string{"$$$$"}},
	{"splurge", []string{"$$$", "$$$$"}},
}

var (
	amountRe    = regexp.MustCompile(`(?i)(?:under|below|less than|max|upto|up to)\s*(?:₹|rs\.?|inr)?\s*(\d+)`)
	perPersonRe = regexp.MustCompile(`(?i)per\s*person`)
)

// mapPriceSentiment turns a raw price expression like "cheap" or
// "under 500 per person" into price buckets. Amounts are interpreted as
// cost for two; "per person" doubles the amount first.
func mapPriceSentiment(sentiment string) []string {
	lower := strings.ToLower(strings.TrimSpace(sentiment))
	if lower == "" {
		return nil
	}

	for _, pk := range priceKeywords {
		if strings.Contains(lower, pk.keyword) {
			return pk.buckets
		}
	}

	match := amountRe.FindStringSubmatch(lower)
	if match == nil {
		return nil
	}

	amount, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	if perPersonRe.MatchString(lower) {
		amount *= 2
	}

	switch {
	case amount <= 500:
		return []string{"$"}
	case amount <= 1000:
		return []string{"$", "$$"}
	case amount <= 2000:
		return []string{"$", "$$", "$$$"}
	default:
		return []string{"$", "$$", "$$$", "$$$$"}
	}
}

// mapIntentToRequest builds the retrieval request from an extracted
// intent. Soft signals (mood, occasion, vibe, dietary and so on) flow
// into free-text preferences together with the original message.
func mapIntentToRequest(intent domain.ExtractedIntent, originalMessage string) domain.RecommendationRequest {
	var parts []string
	if intent.Mood != "" {
		parts = append(parts, fmt.Sprintf("mood: %s", intent.Mood))
	}
	if intent.Occasion != "" {
		parts = append(parts, fmt.Sprintf("occasion: %s", intent.Occasion))
	}
	if intent.Vibe != "" {
		parts = append(parts, fmt.Sprintf("vibe: %s", intent.Vibe))
	}
	if intent.TimeContext != "" {
		parts = append(parts, fmt.Sprintf("time: %s", intent.TimeContext))
	}
	if intent.GroupSize != "" {
		parts = append(parts, fmt.Sprintf("group: %s", intent.GroupSize))
	}
	if len(intent.Dietary) > 0 {
		parts = append(parts, fmt.Sprintf("dietary: %s", strings.Join(intent.Dietary, ", ")))
	}
	parts = append(parts, originalMessage)

	return domain.RecommendationRequest{
		Location:            intent.Location,
		PriceRange:          mapPriceSentiment(intent.PriceSentiment),
		MinRating:           intent.MinRating,
		Cuisines:            intent.Cuisines,
		FreeTextPreferences: strings.Join(parts, " | "),
	}
}

// accumulateIntent merges a freshly extracted intent into the running
// per-conversation one. Lists union, scalars overwrite only when the new
// value is set; confidence and missing fields always reflect the latest
// extraction.
func accumulateIntent(accumulated, fresh domain.ExtractedIntent) domain.ExtractedIntent {
	out := accumulated

	if fresh.Location != "" {
		out.Location = fresh.Location
	}
	if fresh.PriceSentiment != "" {
		out.PriceSentiment = fresh.PriceSentiment
	}
	if fresh.MinRating > 0 {
		out.MinRating = fresh.MinRating
	}
	if fresh.Mood != "" {
		out.Mood = fresh.Mood
	}
	if fresh.Occasion != "" {
		out.Occasion = fresh.Occasion
	}
	if fresh.GroupSize != "" {
		out.GroupSize = fresh.GroupSize
	}
	if fresh.Vibe != "" {
		out.Vibe = fresh.Vibe
	}
	if fresh.TimeContext != "" {
		out.TimeContext = fresh.TimeContext
	}

	out.Cuisines = unionSorted(accumulated.Cuisines, fresh.Cuisines)
	out.Dietary = unionSorted(accumulated.Dietary, fresh.Dietary)

	out.Confidence = fresh.Confidence
	out.MissingFields = fresh.MissingFields

	return out
}

func unionSorted(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(a)+len(b))
	for _, v := range a {
		seen[v] = struct{}{}
	}
	for _, v := range b {
		seen[v] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// updateConversation appends one user/assistant exchange and trims the
// window to the last maxTurns messages.
func updateConversation(state domain.ConversationState, userMessage, assistantMessage string, fresh domain.ExtractedIntent, resultIDs []string) domain.ConversationState {
	turns := append([]domain.ConversationTurn{}, state.Turns...)
	turns = append(turns,
		domain.ConversationTurn{Role: "user", Content: userMessage},
		domain.ConversationTurn{Role: "assistant", Content: assistantMessage},
	)
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}

	next := domain.ConversationState{
		Turns:              turns,
		AccumulatedIntent:  accumulateIntent(state.AccumulatedIntent, fresh),
		ClarificationCount: state.ClarificationCount,
		LastResultIDs:      state.LastResultIDs,
	}
	if len(resultIDs) > 0 {
		next.LastResultIDs = resultIDs
	}

	return next
}

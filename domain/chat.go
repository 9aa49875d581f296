package domain

type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=1000"`
}

const (
	ChatResponseResults       = "results"
	ChatResponseClarification = "clarification"
)

type ChatResponse struct {
	Type         string                  `json:"type"`
	Message      string                  `json:"message"`
	Results      *RecommendationResponse `json:"results,omitempty"`
	ParsedIntent ExtractedIntent         `json:"parsed_intent"`
}

// ExtractedIntent is the structured output of the LLM intent parser.
type ExtractedIntent struct {
	Location       string   `json:"location,omitempty"`
	Cuisines       []string `json:"cuisines,omitempty"`
	PriceSentiment string   `json:"price_sentiment,omitempty"`
	MinRating      float64  `json:"min_rating,omitempty"`
	Mood           string   `json:"mood,omitempty"`
	Occasion       string   `json:"occasion,omitempty"`
	GroupSize      string   `json:"group_size,omitempty"`
	Dietary        []string `json:"dietary,omitempty"`
	Vibe           string   `json:"vibe,omitempty"`
	TimeContext    string   `json:"time_context,omitempty"`
	Confidence     float64  `json:"confidence"`
	MissingFields  []string `json:"missing_fields,omitempty"`
}

type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationState is the per-session chat memory, persisted in the
// session store between turns.
type ConversationState struct {
	Turns              []ConversationTurn `json:"turns"`
	AccumulatedIntent  ExtractedIntent    `json:"accumulated_intent"`
	ClarificationCount int                `json:"clarification_count"`
	LastResultIDs      []string           `json:"last_result_ids,omitempty"`
}

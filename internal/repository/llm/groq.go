package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dineWise/domain"
	"dineWise/pkg/logger"
)

type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
	MaxTokens      int
	Enabled        bool
}

// Client is a thin Groq chat-completions client. Every public method fails
// closed: disabled config, transport errors and malformed output all
// degrade to a documented default instead of surfacing an error.
type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}

	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	MaxTokens      int           `json:"max_tokens"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, system, user string, maxTokens int, temperature float64, jsonMode bool) (string, error) {
	body := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	if jsonMode {
		body.ResponseFormat = &struct {
			Type string `json:"type"`
		}{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+c.cfg.APIKey)

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		raw, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("llm service returned %d: %s", res.StatusCode, string(raw))
	}

	var parsed chatResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

func buildRerankMessage(prefs domain.RecommendationRequest, candidates []domain.RerankCandidate) string {
	lines := []string{"## User Preferences"}
	if prefs.Location != "" {
		lines = append(lines, fmt.Sprintf("- Location: %s", prefs.Location))
	}
	if len(prefs.PriceRange) > 0 {
		lines = append(lines, fmt.Sprintf("- Price range: %s", strings.Join(prefs.PriceRange, ", ")))
	}
	if prefs.MinRating > 0 {
		lines = append(lines, fmt.Sprintf("- Minimum rating: %g", prefs.MinRating))
	}
	if len(prefs.Cuisines) > 0 {
		lines = append(lines, fmt.Sprintf("- Cuisines: %s", strings.Join(prefs.Cuisines, ", ")))
	}
	if prefs.FreeTextPreferences != "" {
		lines = append(lines, fmt.Sprintf("- Special preferences: %s", prefs.FreeTextPreferences))
	}

	lines = append(lines, "", "## Candidate Restaurants")
	lines = append(lines, "| ID | Name | Price | Rating | Cuisines |")
	lines = append(lines, "|---|---|---|---|---|")
	for _, c := range candidates {
		rating := "N/A"
		if c.AvgRating != nil {
			rating = fmt.Sprintf("%g", *c.AvgRating)
		}
		price := c.PriceBucket
		if price == "" {
			price = "?"
		}
		lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s | %s |",
			c.ID, c.Name, price, rating, strings.Join(c.Cuisines, ", ")))
	}

	return strings.Join(lines, "\n")
}

// RankAndExplain asks the LLM to re-order the candidates and explain each.
// It returns nil on any failure; the caller keeps its heuristic order.
func (c *Client) RankAndExplain(ctx context.Context, prefs domain.RecommendationRequest, candidates []domain.RerankCandidate) []domain.RankedExplanation {
	if !c.cfg.Enabled || c.cfg.APIKey == "" || len(candidates) == 0 {
		return nil
	}

	content, err := c.complete(ctx, rerankSystemPrompt, buildRerankMessage(prefs, candidates), c.cfg.MaxTokens, 0.3, true)
	if err != nil {
		logger.Warn("llm re-ranking failed, keeping heuristic order", "error", err)
		return nil
	}

	var parsed struct {
		Recommendations []struct {
			ID     string `json:"id"`
			Reason string `json:"reason"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		logger.Warn("llm re-ranking returned malformed JSON, keeping heuristic order", "error", err)
		return nil
	}

	out := make([]domain.RankedExplanation, 0, len(parsed.Recommendations))
	for _, item := range parsed.Recommendations {
		if item.ID != "" && item.Reason != "" {
			out = append(out, domain.RankedExplanation{ID: item.ID, Reason: item.Reason})
		}
	}
	return out
}

// ExtractIntent parses free text into structured dining preferences. On any
// failure it returns the zero-confidence intent.
func (c *Client) ExtractIntent(ctx context.Context, message string, state *domain.ConversationState) domain.ExtractedIntent {
	fallback := domain.ExtractedIntent{
		Confidence:    0.0,
		MissingFields: []string{"location", "cuisines"},
	}

	if !c.cfg.Enabled || c.cfg.APIKey == "" {
		return fallback
	}

	user := message
	if state != nil && len(state.Turns) > 0 {
		var history []string
		turns := state.Turns
		if len(turns) > 4 {
			turns = turns[len(turns)-4:]
		}
		for _, t := range turns {
			history = append(history, fmt.Sprintf("%s: %s", t.Role, t.Content))
		}
		if known, err := json.Marshal(state.AccumulatedIntent); err == nil {
			history = append(history, "Known preferences so far: "+string(known))
		}
		user = fmt.Sprintf("Conversation context:\n%s\n\nLatest message: %s", strings.Join(history, "\n"), message)
	}

	content, err := c.complete(ctx, intentSystemPrompt, user, 512, 0.1, true)
	if err != nil {
		logger.Warn("intent extraction failed, using fallback", "error", err)
		return fallback
	}

	var intent domain.ExtractedIntent
	if err := json.Unmarshal([]byte(content), &intent); err != nil {
		logger.Warn("intent extraction returned malformed JSON, using fallback", "error", err)
		return fallback
	}
	return intent
}

// GenerateClarification produces a short follow-up question for an
// incomplete intent, with a deterministic fallback.
func (c *Client) GenerateClarification(ctx context.Context, intent domain.ExtractedIntent) string {
	if !c.cfg.Enabled || c.cfg.APIKey == "" {
		return fallbackClarification(intent)
	}

	known, _ := json.Marshal(intent)
	missing := "unclear"
	if len(intent.MissingFields) > 0 {
		missing = strings.Join(intent.MissingFields, ", ")
	}
	user := fmt.Sprintf("Known preferences: %s\nMissing information: %s\nGenerate a brief follow-up question.", string(known), missing)

	content, err := c.complete(ctx, clarificationSystemPrompt, user, 128, 0.5, false)
	if err != nil {
		logger.Warn("clarification generation failed, using fallback", "error", err)
		return fallbackClarification(intent)
	}

	question := strings.TrimSpace(content)
	if question == "" {
		return fallbackClarification(intent)
	}
	return question
}

func fallbackClarification(intent domain.ExtractedIntent) string {
	if intent.Location == "" && len(intent.Cuisines) == 0 {
		return "I'd love to help! Which area are you looking to eat in, and do you have a cuisine preference?"
	}
	if intent.Location == "" {
		return "Sounds great! Which area or neighborhood should I search in?"
	}
	return "Nice choice! Any particular cuisine or vibe you're going for?"
}

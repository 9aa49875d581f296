package chat

import (
	"context"

	"dineWise/domain"
	"dineWise/pkg/logger"
)

// IntentExtractor parses dining preferences out of free text and asks
// follow-up questions. Both methods degrade to deterministic fallbacks
// and never fail.
type IntentExtractor interface {
	ExtractIntent(ctx context.Context, message string, state *domain.ConversationState) domain.ExtractedIntent
	GenerateClarification(ctx context.Context, intent domain.ExtractedIntent) string
}

// Recommender runs the retrieval funnel for a parsed request.
type Recommender interface {
	GetRecommendations(ctx context.Context, sessionID string, req domain.RecommendationRequest) (domain.RecommendationResponse, error)
}

// ConversationStore persists chat memory between turns.
type ConversationStore interface {
	GetConversation(ctx context.Context, sessionID string) (*domain.ConversationState, error)
	SaveConversation(ctx context.Context, sessionID string, state *domain.ConversationState) error
}

type Service struct {
	extractor     IntentExtractor
	recommender   Recommender
	conversations ConversationStore
}

func NewService(extractor IntentExtractor, recommender Recommender, conversations ConversationStore) *Service {
	return &Service{
		extractor:     extractor,
		recommender:   recommender,
		conversations: conversations,
	}
}

const resultsMessage = "Here are some places I think you'll like!"

// Handle runs one chat turn. A confident intent goes straight to the
// recommendation funnel; a vague one earns at most one clarification
// question before results are forced on the next turn.
func (s *Service) Handle(ctx context.Context, sessionID, message string) (domain.ChatResponse, error) {
	state := s.loadState(ctx, sessionID)

	fresh := s.extractor.ExtractIntent(ctx, message, &state)
	merged := accumulateIntent(state.AccumulatedIntent, fresh)

	if fresh.Confidence < confidenceThreshold && state.ClarificationCount < maxClarifications {
		question := s.extractor.GenerateClarification(ctx, merged)

		next := updateConversation(state, message, question, fresh, nil)
		next.ClarificationCount = state.ClarificationCount + 1
		s.saveState(ctx, sessionID, next)

		return domain.ChatResponse{
			Type:         domain.ChatResponseClarification,
			Message:      question,
			ParsedIntent: merged,
		}, nil
	}

	req := mapIntentToRequest(merged, message)
	results, err := s.recommender.GetRecommendations(ctx, sessionID, req)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	resultIDs := make([]string, 0, len(results.Recommendations))
	for _, item := range results.Recommendations {
		resultIDs = append(resultIDs, item.Restaurant.ID)
	}

	next := updateConversation(state, message, resultsMessage, fresh, resultIDs)
	next.ClarificationCount = 0
	s.saveState(ctx, sessionID, next)

	return domain.ChatResponse{
		Type:         domain.ChatResponseResults,
		Message:      resultsMessage,
		Results:      &results,
		ParsedIntent: merged,
	}, nil
}

func (s *Service) loadState(ctx context.Context, sessionID string) domain.ConversationState {
	if s.conversations == nil || sessionID == "" {
		return domain.ConversationState{}
	}

	state, err := s.conversations.GetConversation(ctx, sessionID)
	if err != nil {
		logger.Warn("failed to load conversation state, starting fresh", "error", err)
		return domain.ConversationState{}
	}
	if state == nil {
		return domain.ConversationState{}
	}

	return *state
}

func (s *Service) saveState(ctx context.Context, sessionID string, state domain.ConversationState) {
	if s.conversations == nil || sessionID == "" {
		return
	}

	if err := s.conversations.SaveConversation(ctx, sessionID, &state); err != nil {
		logger.Warn("failed to persist conversation state", "error", err)
	}
}

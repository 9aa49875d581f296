package chat

import (
	"context"
	"testing"

	"dineWise/domain"
)

type fakeExtractor struct {
	intent   domain.ExtractedIntent
	question string
}

func (f *fakeExtractor) ExtractIntent(_ context.Context, _ string, _ *domain.ConversationState) domain.ExtractedIntent {
	return f.intent
}

func (f *fakeExtractor) GenerateClarification(_ context.Context, _ domain.ExtractedIntent) string {
	return f.question
}

type fakeRecommender struct {
	calls int
	resp  domain.RecommendationResponse
}

func (f *fakeRecommender) GetRecommendations(_ context.Context, _ string, _ domain.RecommendationRequest) (domain.RecommendationResponse, error) {
	f.calls++
	return f.resp, nil
}

type fakeConversations struct {
	states map[string]*domain.ConversationState
}

func newFakeConversations() *fakeConversations {
	return &fakeConversations{states: make(map[string]*domain.ConversationState)}
}

func (f *fakeConversations) GetConversation(_ context.Context, sessionID string) (*domain.ConversationState, error) {
	return f.states[sessionID], nil
}

func (f *fakeConversations) SaveConversation(_ context.Context, sessionID string, state *domain.ConversationState) error {
	f.states[sessionID] = state
	return nil
}

func TestHandleConfidentQueryReturnsResults(t *testing.T) {
	recommender := &fakeRecommender{resp: domain.RecommendationResponse{
		Recommendations: []domain.RecommendationItem{{Restaurant: domain.Restaurant{ID: "42"}}},
		TotalCandidates: 1,
	}}
	extractor := &fakeExtractor{intent: domain.ExtractedIntent{
		Location:   "BTM",
		Cuisines:   []string{"Italian"},
		Confidence: 0.9,
	}}
	conversations := newFakeConversations()
	svc := NewService(extractor, recommender, conversations)

	resp, err := svc.Handle(context.Background(), "s1", "italian in BTM tonight")
	if err != nil {
		t.Fatal(err)
	}

	if resp.Type != domain.ChatResponseResults {
		t.Errorf("type = %s, want results", resp.Type)
	}
	if resp.Results == nil || resp.Results.TotalCandidates != 1 {
		t.Errorf("results = %+v", resp.Results)
	}
	if recommender.calls != 1 {
		t.Errorf("recommender calls = %d, want 1", recommender.calls)
	}

	saved := conversations.states["s1"]
	if saved == nil {
		t.Fatal("conversation state not persisted")
	}
	if len(saved.LastResultIDs) != 1 || saved.LastResultIDs[0] != "42" {
		t.Errorf("last result ids = %v", saved.LastResultIDs)
	}
}

func TestHandleVagueQueryAsksClarification(t *testing.T) {
	recommender := &fakeRecommender{}
	extractor := &fakeExtractor{
		intent:   domain.ExtractedIntent{Confidence: 0.2, MissingFields: []string{"location"}},
		question: "Which area are you looking to eat in?",
	}
	conversations := newFakeConversations()
	svc := NewService(extractor, recommender, conversations)

	resp, err := svc.Handle(context.Background(), "s1", "food")
	if err != nil {
		t.Fatal(err)
	}

	if resp.Type != domain.ChatResponseClarification {
		t.Errorf("type = %s, want clarification", resp.Type)
	}
	if resp.Message != extractor.question {
		t.Errorf("message = %q", resp.Message)
	}
	if recommender.calls != 0 {
		t.Errorf("recommender consulted on a vague query")
	}
	if conversations.states["s1"].ClarificationCount != 1 {
		t.Errorf("clarification count = %d, want 1", conversations.states["s1"].ClarificationCount)
	}
}

func TestHandleForcesResultsAfterMaxClarifications(t *testing.T) {
	recommender := &fakeRecommender{}
	extractor := &fakeExtractor{
		intent:   domain.ExtractedIntent{Confidence: 0.1},
		question: "anything else?",
	}
	conversations := newFakeConversations()
	svc := NewService(extractor, recommender, conversations)

	// first vague turn gets a clarification, the second must not
	if _, err := svc.Handle(context.Background(), "s1", "food"); err != nil {
		t.Fatal(err)
	}
	resp, err := svc.Handle(context.Background(), "s1", "just food")
	if err != nil {
		t.Fatal(err)
	}

	if resp.Type != domain.ChatResponseResults {
		t.Errorf("type = %s, want forced results after one clarification", resp.Type)
	}
	if recommender.calls != 1 {
		t.Errorf("recommender calls = %d, want 1", recommender.calls)
	}
	if conversations.states["s1"].ClarificationCount != 0 {
		t.Errorf("clarification count should reset after results, got %d", conversations.states["s1"].ClarificationCount)
	}
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dineWise/domain"

	"github.com/redis/go-redis/v9"
)

// SessionData is the opaque per-session record the auth layer owns.
type SessionData struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionRepository is a key-value store scoped to the caller's session:
// auth token, assigned A/B variant, and conversation memory.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{
		client: client,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func variantKey(sessionID string) string {
	return fmt.Sprintf("session:%s:variant", sessionID)
}

func conversationKey(sessionID string) string {
	return fmt.Sprintf("session:%s:conversation", sessionID)
}

func tokenLookupKey(token string) string {
	return fmt.Sprintf("token:lookup:%s", token)
}

func (r *SessionRepository) StoreSession(ctx context.Context, sessionID string, data SessionData, ttl time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(sessionID), jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in Redis: %w", err)
	}

	// reverse lookup token -> session id for quick validation
	if err := r.client.Set(ctx, tokenLookupKey(data.Token), sessionID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token lookup: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.New("session not found")
		}
		return nil, fmt.Errorf("failed to get session from Redis: %w", err)
	}

	var data SessionData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &data, nil
}

// ValidateToken checks whether a token maps to a live session.
func (r *SessionRepository) ValidateToken(ctx context.Context, token string) (string, error) {
	sessionID, err := r.client.Get(ctx, tokenLookupKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.New("token not found or expired")
		}
		return "", fmt.Errorf("failed to validate token: %w", err)
	}

	return sessionID, nil
}

// DeleteSession removes the session record, its token lookup and any
// session-scoped state (variant, conversation).
func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID, token string) error {
	keys := []string{
		sessionKey(sessionID),
		variantKey(sessionID),
		conversationKey(sessionID),
		tokenLookupKey(token),
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// GetVariant returns the session's assigned A/B variant, or "" when none
// was persisted yet.
func (r *SessionRepository) GetVariant(ctx context.Context, sessionID string) (string, error) {
	val, err := r.client.Get(ctx, variantKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get session variant: %w", err)
	}
	return val, nil
}

func (r *SessionRepository) SetVariant(ctx context.Context, sessionID, variant string) error {
	if err := r.client.Set(ctx, variantKey(sessionID), variant, 0).Err(); err != nil {
		return fmt.Errorf("failed to store session variant: %w", err)
	}
	return nil
}

// GetConversation returns the session's conversation state, or nil when the
// session has no chat history yet.
func (r *SessionRepository) GetConversation(ctx context.Context, sessionID string) (*domain.ConversationState, error) {
	val, err := r.client.Get(ctx, conversationKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get conversation state: %w", err)
	}

	var state domain.ConversationState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation state: %w", err)
	}

	return &state, nil
}

func (r *SessionRepository) SaveConversation(ctx context.Context, sessionID string, state *domain.ConversationState) error {
	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation state: %w", err)
	}

	if err := r.client.Set(ctx, conversationKey(sessionID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to store conversation state: %w", err)
	}

	return nil
}

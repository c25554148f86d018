package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"slotcal/internal/models"
)

const (
	// Key prefix for Redis
	sessionKeyPrefix = "booking:session:"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL applied to session keys; zero means no expiry
	SessionTTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.SessionTTL,
	}, nil
}

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	// Marshal the session to JSON
	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Session.ID)
	if err := r.client.Set(ctx, sessionKey, sessionJSON, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by its token from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	// Unmarshal the session from JSON
	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// UpdateSelectedDate replaces the selected date on a stored session
func (r *redisRepository) UpdateSelectedDate(ctx context.Context, input *UpdateSelectedDateInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	session, err := r.GetSession(ctx, &GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return err
	}

	session.SelectedDate = input.SelectedDate

	return r.SaveSession(ctx, &SaveSessionInput{
		Session: session,
	})
}

// DeleteSession removes a session from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	if err := r.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

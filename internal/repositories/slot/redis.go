package slot

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
	slotsKeyPrefix = "booking:slots:"
)

// Config holds configuration for the Redis slot repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL applied to slot keys; zero means no expiry
	SessionTTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed slot repository
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

// AddSlot appends a booked slot to the session's list in Redis
func (r *redisRepository) AddSlot(ctx context.Context, input *AddSlotInput) error {
	if input == nil || input.Slot == nil {
		return errors.New("input and slot cannot be nil")
	}

	if input.SessionID == "" {
		return errors.New("session ID cannot be empty")
	}

	// Marshal the slot to JSON
	slotJSON, err := json.Marshal(input.Slot)
	if err != nil {
		return fmt.Errorf("failed to marshal slot: %w", err)
	}

	slotsKey := fmt.Sprintf("%s%s", slotsKeyPrefix, input.SessionID)

	// Append and refresh the key's TTL in one round trip
	pipe := r.client.Pipeline()
	pipe.RPush(ctx, slotsKey, slotJSON)
	if r.ttl > 0 {
		pipe.Expire(ctx, slotsKey, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add slot: %w", err)
	}

	return nil
}

// ListSlots retrieves all booked slots for a session in insertion order
func (r *redisRepository) ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	slotsKey := fmt.Sprintf("%s%s", slotsKeyPrefix, input.SessionID)
	entries, err := r.client.LRange(ctx, slotsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	slots := make([]*models.BookedSlot, 0, len(entries))
	for _, entry := range entries {
		var bookedSlot models.BookedSlot
		if err := json.Unmarshal([]byte(entry), &bookedSlot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal slot: %w", err)
		}
		slots = append(slots, &bookedSlot)
	}

	return &ListSlotsOutput{
		Slots: slots,
	}, nil
}

// RemoveSlot rewrites the session's list without the matching entries.
// Removing zero entries is not an error.
func (r *redisRepository) RemoveSlot(ctx context.Context, input *RemoveSlotInput) (*RemoveSlotOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	listOutput, err := r.ListSlots(ctx, &ListSlotsInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	remaining := make([]*models.BookedSlot, 0, len(listOutput.Slots))
	removed := 0
	for _, bookedSlot := range listOutput.Slots {
		if bookedSlot.Date.Equal(input.Date) && bookedSlot.Hour == input.Hour {
			removed++
			continue
		}
		remaining = append(remaining, bookedSlot)
	}

	if removed == 0 {
		return &RemoveSlotOutput{Removed: 0}, nil
	}

	slotsKey := fmt.Sprintf("%s%s", slotsKeyPrefix, input.SessionID)

	// Replace the list atomically
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, slotsKey)
	for _, bookedSlot := range remaining {
		slotJSON, err := json.Marshal(bookedSlot)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal slot: %w", err)
		}
		pipe.RPush(ctx, slotsKey, slotJSON)
	}
	if r.ttl > 0 && len(remaining) > 0 {
		pipe.Expire(ctx, slotsKey, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to remove slot: %w", err)
	}

	return &RemoveSlotOutput{
		Removed: removed,
	}, nil
}

// ClearSlots removes every slot for a session from Redis
func (r *redisRepository) ClearSlots(ctx context.Context, input *ClearSlotsInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	slotsKey := fmt.Sprintf("%s%s", slotsKeyPrefix, input.SessionID)
	if err := r.client.Del(ctx, slotsKey).Err(); err != nil {
		return fmt.Errorf("failed to clear slots: %w", err)
	}

	return nil
}

package roll_log

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/scribbler/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	rollLogKeyPrefix = "roll_log:"
)

// Config holds configuration for the Redis roll log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis lists
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roll log repository
func NewRedis(cfg *Config) (*redisRepository, error) {
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
	}, nil
}

func rollLogKey(scopeID string) string {
	return fmt.Sprintf("%s%s", rollLogKeyPrefix, scopeID)
}

// AddEntry pushes an entry onto the head of the scope's list and trims the tail
func (r *redisRepository) AddEntry(ctx context.Context, input *AddEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entry := input.Entry
	if entry.ID == "" {
		return errors.New("entry ID cannot be empty")
	}
	if entry.ScopeID == "" {
		return errors.New("entry scope ID cannot be empty")
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal roll log entry: %w", err)
	}

	key := rollLogKey(entry.ScopeID)

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, entryJSON)
	pipe.LTrim(ctx, key, 0, MaxEntries-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add roll log entry: %w", err)
	}

	return nil
}

// ListEntries reads the scope's list head first
func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil || input.ScopeID == "" {
		return nil, errors.New("input and scope ID cannot be empty")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	values, err := r.client.LRange(ctx, rollLogKey(input.ScopeID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list roll log entries: %w", err)
	}

	entries := make([]*models.RollLogEntry, 0, len(values))
	for _, value := range values {
		var entry models.RollLogEntry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roll log entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}

// ClearEntries deletes the scope's list
func (r *redisRepository) ClearEntries(ctx context.Context, input *ClearEntriesInput) error {
	if input == nil || input.ScopeID == "" {
		return errors.New("input and scope ID cannot be empty")
	}

	if err := r.client.Del(ctx, rollLogKey(input.ScopeID)).Err(); err != nil {
		return fmt.Errorf("failed to clear roll log: %w", err)
	}

	return nil
}

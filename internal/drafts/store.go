package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workout"
)

const (
	draftKeyPrefix = "liftlog-draft||"
	DefaultTTL     = 24 * time.Hour
)

// Store keeps one workout draft per user in redis, as JSON.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewStore(redisClient *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func draftKey(userID int) string {
	return fmt.Sprintf("%s%d", draftKeyPrefix, userID)
}

// Get returns the stored draft, or an empty one when none exists.
func (s *Store) Get(ctx context.Context, userID int) (_ *workout.Draft, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.drafts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	val, err := s.redisClient.Get(ctx, draftKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return workout.NewDraft(), nil
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	draft := workout.NewDraft()
	if err := json.Unmarshal([]byte(val), draft); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	if draft.Exercises == nil {
		draft.Exercises = []workout.ExerciseEntry{}
	}

	return draft, nil
}

// Put stores the draft and refreshes its expiry.
func (s *Store) Put(ctx context.Context, userID int, draft *workout.Draft) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.drafts.put")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	draftBytes, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	if err := s.redisClient.Set(ctx, draftKey(userID), string(draftBytes), s.ttl).Err(); err != nil {
		return fmt.Errorf("set draft: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context, userID int) error {
	if err := s.redisClient.Del(ctx, draftKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

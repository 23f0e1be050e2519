package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	now         func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		now:         time.Now,
	}
}

// Session resolves the token to a live session, or returns ErrSessionNotFound.
func (lc *LoginChecker) Session(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	val, err := lc.redisClient.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	session, err := parseSessionValue(token, val)
	if err != nil {
		return nil, err
	}

	if lc.now().Sub(session.CreatedAt) > lc.ttl {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	sessionKeyPrefix = "liftlog-session||"
	tokensSetKey     = "liftlog-sessions"

	TokenHeader = "X-LIFTLOG-TOKEN"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrMalformedSession = errors.New("malformed session")
)

// Session is an authenticated login of a single user.
type Session struct {
	Token     string
	UserID    int
	CreatedAt time.Time
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// sessionValue is stored in redis as "<user id>|<created at unix>".
func sessionValue(userID int, createdAt time.Time) string {
	return fmt.Sprintf("%d|%d", userID, createdAt.Unix())
}

func parseSessionValue(token, val string) (*Session, error) {
	parts := strings.Split(val, "|")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedSession, val)
	}

	userID, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: user id: %s", ErrMalformedSession, err)
	}
	createdAtUnix, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: created at: %s", ErrMalformedSession, err)
	}

	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

type sessionCtxKey struct{}

func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return session, ok && session != nil
}

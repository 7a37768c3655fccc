package auth

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

var _ UserResolver = (*SessionResolver)(nil)

// UserResolver maps a session token to the id of the user it belongs to.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (string, error)
}

type SessionResolver struct {
	ttl         time.Duration
	redisClient *redis.Client
	nowFunc     func() time.Time
}

func NewSessionResolver(ttl time.Duration, redisClient *redis.Client) *SessionResolver {
	return &SessionResolver{
		ttl:         ttl,
		redisClient: redisClient,
		nowFunc:     time.Now,
	}
}

func (sr *SessionResolver) ResolveUser(ctx context.Context, token string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.resolveUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if token == "" {
		return "", ErrSessionNotFound
	}

	raw, err := sr.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}

	session, err := decodeSession(raw)
	if err != nil {
		return "", err
	}

	if session.expired(sr.ttl, sr.nowFunc()) {
		return "", ErrSessionExpired
	}

	return session.UserID, nil
}

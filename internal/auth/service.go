package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/users"
	"github.com/2beens/liftlog/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "liftlog-session||"
	tokensSetKey     = "liftlog-sessions"
	tokenLength      = 35
)

var (
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionExpired   = errors.New("session expired")
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth

type credentialsStore interface {
	// GetCredentials returns the user id and the bcrypt password hash for the given email.
	GetCredentials(ctx context.Context, email string) (userID, passwordHash string, err error)
}

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	credentials credentialsStore
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
	credentials credentialsStore,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		credentials:    credentials,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login checks the password and opens a new session for the user.
// An unknown email and a wrong password both give ErrWrongCredentials,
// any other credentials store failure is returned wrapped.
func (as *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, passwordHash, err := as.credentials.GetCredentials(ctx, creds.Email)
	if errors.Is(err, users.ErrUserNotFound) {
		log.Tracef("[credentials] failed login attempt for %s: %s", creds.Email, err)
		return "", ErrWrongCredentials
	}
	if err != nil {
		return "", fmt.Errorf("get credentials: %w", err)
	}

	if !pkg.CheckPasswordHash(creds.Password, passwordHash) {
		log.Tracef("[password] failed login attempt for %s", creds.Email)
		return "", ErrWrongCredentials
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	session := Session{
		UserID:    userID,
		CreatedAt: createdAt,
	}
	if err := as.redisClient.Set(ctx, sessionKeyPrefix+token, session.encode(), 0).Err(); err != nil {
		return "", err
	}

	// add token to the set of sessions, so ScanAndClean can find it
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout reports whether the token belonged to a live session.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	deleted, err := as.redisClient.Del(ctx, sessionKey).Result()
	if err != nil {
		return false, err
	}

	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	now := time.Now()
	var toRemove []string
	for _, token := range sessionTokens {
		raw, err := as.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
		if errors.Is(err, redis.Nil) {
			// session key gone, only the set entry is left
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		session, err := decodeSession(raw)
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			toRemove = append(toRemove, token)
			continue
		}

		if session.expired(as.ttl, now) {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
	}

	log.Debugf("auth service, scan and clean done, removed %d sessions", len(toRemove))
}

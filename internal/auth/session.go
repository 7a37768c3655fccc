package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedSession = errors.New("malformed session")

// Session is what a token maps to in redis, stored as "<userID>|<createdAtUnix>".
type Session struct {
	UserID    string
	CreatedAt time.Time
}

func (s Session) encode() string {
	return fmt.Sprintf("%s|%d", s.UserID, s.CreatedAt.Unix())
}

func decodeSession(raw string) (Session, error) {
	sep := strings.LastIndex(raw, "|")
	if sep <= 0 {
		return Session{}, ErrMalformedSession
	}

	createdAtUnix, err := strconv.ParseInt(raw[sep+1:], 10, 64)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %s", ErrMalformedSession, err)
	}

	return Session{
		UserID:    raw[:sep],
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

func (s Session) expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(s.CreatedAt) > ttl
}

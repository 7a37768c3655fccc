package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

type userStore interface {
	Create(ctx context.Context, user *User, passwordHash string) error
}

type Service struct {
	store userStore
}

func NewService(store userStore) *Service {
	return &Service{
		store: store,
	}
}

func (s *Service) Register(ctx context.Context, req CreateUserRequest) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:              uuid.NewString(),
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
	}
	if err := s.store.Create(ctx, user, passwordHash); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

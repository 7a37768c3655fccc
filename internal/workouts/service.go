package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutStore interface {
	Create(ctx context.Context, userID string, day time.Time, req CreateWorkoutRequest) (*Workout, error)
	ListByDate(ctx context.Context, userID string, day time.Time) ([]Workout, error)
}

// namesInvalidator drops cached exercise names of a user, so new exercises
// show up in progress searches right away.
type namesInvalidator interface {
	InvalidateUser(userID string)
}

type Service struct {
	store            workoutStore
	namesInvalidator namesInvalidator
	logger           logrus.FieldLogger
	metricsManager   *metrics.Manager
	nowFunc          func() time.Time
}

func NewService(
	store workoutStore,
	namesInvalidator namesInvalidator,
	logger logrus.FieldLogger,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		store:            store,
		namesInvalidator: namesInvalidator,
		logger:           logger,
		metricsManager:   metricsManager,
		nowFunc:          time.Now,
	}
}

func (s *Service) Create(ctx context.Context, userID string, req CreateWorkoutRequest) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	if userID == "" {
		return nil, fmt.Errorf("%w: user id empty", ErrInvalidWorkout)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Validate already checked the format
	day, _ := ParseDay(req.Date)

	workout, err := s.store.Create(ctx, userID, day, req)
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}

	if s.namesInvalidator != nil {
		s.namesInvalidator.InvalidateUser(userID)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsCreated.Inc()
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"workout_id": workout.ID,
		"exercises":  len(workout.Exercises),
	}).Debug("workout created")

	return workout, nil
}

// ListByDate lists workouts of the given day. A zero day means today (UTC).
func (s *Service) ListByDate(ctx context.Context, userID string, day time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.listByDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, fmt.Errorf("%w: user id empty", ErrInvalidWorkout)
	}
	if day.IsZero() {
		day = Today(s.nowFunc())
	}
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("day", day.Format(dayLayout)),
	)

	workouts, err := s.store.ListByDate(ctx, userID, day)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("list workouts by date")
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	if workouts == nil {
		workouts = []Workout{}
	}

	return workouts, nil
}

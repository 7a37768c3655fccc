package progress

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=progress_test

// Store is the read side of the workouts database the progress queries need.
type Store interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	// ListSetRows returns set rows of the limit most recent workouts in which the user
	// did the exercise. Name comparison is case-insensitive.
	ListSetRows(ctx context.Context, userID, exerciseName string, limit int) ([]SetRecord, error)
	ListExerciseNames(ctx context.Context, userID string) ([]string, error)
}

type Service struct {
	store          Store
	logger         logrus.FieldLogger
	metricsManager *metrics.Manager
}

func NewService(store Store, logger logrus.FieldLogger, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:          store,
		logger:         logger,
		metricsManager: metricsManager,
	}
}

// GetProgress returns per-workout stats of one exercise, most recent workout first.
// An exercise the user never did yields an empty slice.
func (s *Service) GetProgress(ctx context.Context, userID, exerciseName string, limit int) (_ []WorkoutStat, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if isBlank(userID) {
		return nil, fmt.Errorf("%w: user id empty", ErrInvalidInput)
	}
	if isBlank(exerciseName) {
		return nil, fmt.Errorf("%w: exercise name empty", ErrInvalidInput)
	}

	limit = NormalizeLimit(limit)
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("exercise.name", exerciseName),
		attribute.Int("limit", limit),
	)

	found := 0
	defer func() {
		s.observe(metrics.QueryKindExact, err, found)
	}()

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	stats, err := s.progress(ctx, userID, exerciseName, limit)
	if err != nil {
		return nil, err
	}

	found = len(stats)
	s.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"exercise": exerciseName,
		"workouts": found,
	}).Trace("exercise progress fetched")

	return stats, nil
}

// Resolve finds the user's logged exercise name closest to a free-text query
// and returns the progress for it. No match is not an error.
func (s *Service) Resolve(ctx context.Context, userID, query string) (_ *ResolveResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if isBlank(userID) {
		return nil, fmt.Errorf("%w: user id empty", ErrInvalidInput)
	}
	if isBlank(query) {
		return nil, fmt.Errorf("%w: query empty", ErrInvalidInput)
	}
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("query", query),
	)

	resolved := 0
	defer func() {
		s.observe(metrics.QueryKindFuzzy, err, resolved)
	}()

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	names, err := s.store.ListExerciseNames(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("list exercise names")
		return nil, fmt.Errorf("list exercise names: %w", err)
	}

	matches := Rank(query, names)
	if len(matches) == 0 {
		s.logger.WithFields(logrus.Fields{
			"user_id":    userID,
			"query":      query,
			"candidates": len(names),
		}).Debug("no exercise name matched")
		return emptyResolveResult(), nil
	}

	bestMatch := matches[0].Original
	otherMatches := make([]string, 0, len(matches)-1)
	for _, m := range matches[1:] {
		otherMatches = append(otherMatches, m.Original)
	}
	span.SetAttributes(attribute.String("best_match", bestMatch))

	stats, err := s.progress(ctx, userID, bestMatch, DefaultLimit)
	if err != nil {
		return nil, err
	}
	resolved = 1

	return &ResolveResult{
		BestMatch:    &bestMatch,
		OtherMatches: otherMatches,
		Progress:     stats,
	}, nil
}

// ExerciseNames lists the distinct exercise names the user has logged.
func (s *Service) ExerciseNames(ctx context.Context, userID string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.names")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if isBlank(userID) {
		return nil, fmt.Errorf("%w: user id empty", ErrInvalidInput)
	}

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	names, err := s.store.ListExerciseNames(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("list exercise names")
		return nil, fmt.Errorf("list exercise names: %w", err)
	}
	if names == nil {
		names = []string{}
	}

	return names, nil
}

func (s *Service) checkUser(ctx context.Context, userID string) error {
	exists, err := s.store.UserExists(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("check user exists")
		return fmt.Errorf("check user exists: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

func (s *Service) progress(ctx context.Context, userID, exerciseName string, limit int) ([]WorkoutStat, error) {
	rows, err := s.store.ListSetRows(ctx, userID, exerciseName, limit)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"exercise": exerciseName,
		}).Error("list set rows")
		return nil, fmt.Errorf("list set rows: %w", err)
	}
	return Aggregate(rows, limit), nil
}

func (s *Service) observe(kind string, err error, found int) {
	outcome := metrics.QueryOutcomeHit
	switch {
	case err != nil:
		outcome = metrics.QueryOutcomeError
	case found == 0:
		outcome = metrics.QueryOutcomeEmpty
	}
	s.metricsManager.ObserveProgressQuery(kind, outcome)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

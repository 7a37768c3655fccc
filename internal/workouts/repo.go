package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create stores the workout together with all its exercises and sets,
// in a single transaction. On any error, commit included, no workout is returned.
func (r *Repo) Create(ctx context.Context, userID string, day time.Time, req CreateWorkoutRequest) (created *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("exercises", len(req.Exercises)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
			return
		}
		if err = tx.Commit(ctx); err != nil {
			created = nil
			err = fmt.Errorf("commit tx: %w", err)
		}
	}()

	workout := &Workout{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Duration:  req.Duration,
		Notes:     req.Notes,
		Exercises: make([]Exercise, 0, len(req.Exercises)),
	}
	err = tx.QueryRow(
		ctx,
		`INSERT INTO workouts (id, user_id, date, start_time, end_time, duration, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at;`,
		workout.ID, userID, day, req.StartTime, req.EndTime, req.Duration, nullableText(req.Notes),
	).Scan(&workout.CreatedAt)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	for _, exReq := range req.Exercises {
		exercise := Exercise{
			ID:           uuid.NewString(),
			WorkoutID:    workout.ID,
			ExerciseName: exReq.ExerciseName,
			StartTime:    exReq.StartTime,
			EndTime:      exReq.EndTime,
			Duration:     exReq.Duration,
			Notes:        exReq.Notes,
			Sets:         make([]Set, 0, len(exReq.Sets)),
		}
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO exercises (id, workout_id, exercise_name, start_time, end_time, duration, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			exercise.ID, workout.ID, exercise.ExerciseName, exercise.StartTime, exercise.EndTime,
			exercise.Duration, nullableText(exercise.Notes),
		); err != nil {
			return nil, fmt.Errorf("insert exercise [%s]: %w", exercise.ExerciseName, err)
		}

		for _, setReq := range exReq.Sets {
			set := Set{
				ID:         uuid.NewString(),
				ExerciseID: exercise.ID,
				SetNumber:  setReq.SetNumber,
				Reps:       setReq.Reps,
				Weight:     setReq.Weight,
				Notes:      setReq.Notes,
			}
			if _, err = tx.Exec(
				ctx,
				`INSERT INTO sets (id, exercise_id, reps, weight, set_number, notes)
					VALUES ($1, $2, $3, $4, $5, $6);`,
				set.ID, exercise.ID, set.Reps, set.Weight, set.SetNumber, nullableText(set.Notes),
			); err != nil {
				if pkg.IsCheckViolationError(err) {
					return nil, fmt.Errorf("%w: %w", ErrInvalidWorkout, err)
				}
				return nil, fmt.Errorf("insert set: %w", err)
			}
			exercise.Sets = append(exercise.Sets, set)
		}

		workout.Exercises = append(workout.Exercises, exercise)
	}

	return workout, nil
}

// ListByDate returns the user's workouts of a single day, with exercises and sets nested.
func (r *Repo) ListByDate(ctx context.Context, userID string, day time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listByDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("day", day.Format(dayLayout)),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT
				w.id, w.user_id, w.date, w.created_at, w.start_time, w.end_time, w.duration, COALESCE(w.notes, ''),
				e.id, e.exercise_name, e.start_time, e.end_time, e.duration, COALESCE(e.notes, ''),
				s.id, s.set_number, s.reps, s.weight, COALESCE(s.notes, '')
			FROM workouts w
				JOIN exercises e ON e.workout_id = w.id
				JOIN sets s ON s.exercise_id = e.id
			WHERE w.user_id = $1 AND w.date = $2
			ORDER BY w.start_time, w.id, e.start_time, e.id, s.set_number;`,
		userID, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dayRows []dayRow
	for rows.Next() {
		var row dayRow
		if err := rows.Scan(
			&row.Workout.ID,
			&row.Workout.UserID,
			&row.Workout.Date,
			&row.Workout.CreatedAt,
			&row.Workout.StartTime,
			&row.Workout.EndTime,
			&row.Workout.Duration,
			&row.Workout.Notes,
			&row.Exercise.ID,
			&row.Exercise.ExerciseName,
			&row.Exercise.StartTime,
			&row.Exercise.EndTime,
			&row.Exercise.Duration,
			&row.Exercise.Notes,
			&row.Set.ID,
			&row.Set.SetNumber,
			&row.Set.Reps,
			&row.Set.Weight,
			&row.Set.Notes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		dayRows = append(dayRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groupRows(dayRows), nil
}

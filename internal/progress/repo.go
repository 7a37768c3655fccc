package progress

import (
	"context"
	"fmt"

	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var _ Store = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UserExists(ctx context.Context, userID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.userExists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`,
		userID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("query row: %w", err)
	}

	return exists, nil
}

// ListSetRows picks the limit most recent workouts containing the exercise first,
// so the limit counts workouts, not sets.
func (r *Repo) ListSetRows(ctx context.Context, userID, exerciseName string, limit int) (_ []SetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listSetRows")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("exercise.name", exerciseName),
		attribute.Int("limit", limit),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT w.id, w.date, s.reps, s.weight, s.set_number
			FROM workouts w
				JOIN exercises e ON e.workout_id = w.id
				JOIN sets s ON s.exercise_id = e.id
			WHERE LOWER(e.exercise_name) = LOWER($2)
				AND w.id IN (
					SELECT lw.id
					FROM workouts lw
						JOIN exercises le ON le.workout_id = lw.id
						JOIN sets ls ON ls.exercise_id = le.id
					WHERE lw.user_id = $1 AND LOWER(le.exercise_name) = LOWER($2)
					GROUP BY lw.id, lw.date
					ORDER BY lw.date DESC, lw.id
					LIMIT $3
				)
			ORDER BY w.date DESC, w.id, s.set_number;`,
		userID, exerciseName, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []SetRecord
	for rows.Next() {
		var rec SetRecord
		if err := rows.Scan(
			&rec.WorkoutID,
			&rec.Date,
			&rec.Reps,
			&rec.Weight,
			&rec.SetNumber,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("rows", len(records)))
	return records, nil
}

func (r *Repo) ListExerciseNames(ctx context.Context, userID string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listExerciseNames")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT e.exercise_name
			FROM exercises e
				JOIN workouts w ON w.id = e.workout_id
			WHERE w.user_id = $1
			ORDER BY e.exercise_name;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

//go:build integration_test || all_tests

package workouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/liftlog/internal/progress"
	"github.com/2beens/liftlog/internal/users"
	"github.com/2beens/liftlog/internal/workouts"
	testingpkg "github.com/2beens/liftlog/pkg/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo_CreateAndListByDate(t *testing.T) {
	ctx := context.Background()
	dbPool := testingpkg.StartPostgres(t)
	repo := workouts.NewRepo(dbPool)

	user := &users.User{
		ID:        uuid.NewString(),
		Email:     "lifter@liftlog.app",
		FirstName: "Lifter",
		LastName:  "Strong",
	}
	require.NoError(t, users.NewRepo(dbPool).Create(ctx, user, "hash"))

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	req := newWorkoutRequest()
	req.Exercises[0].Sets = []workouts.CreateSetRequest{
		{SetNumber: 2, Reps: 5, Weight: 125},
		{SetNumber: 1, Reps: 5, Weight: 120, Notes: "easy"},
	}
	req.Exercises = append(req.Exercises, workouts.CreateExerciseRequest{
		ExerciseName: "Bench Press",
		StartTime:    req.StartTime.Add(30 * time.Minute),
		EndTime:      req.StartTime.Add(50 * time.Minute),
		Duration:     20,
		Sets:         []workouts.CreateSetRequest{{SetNumber: 1, Reps: 8, Weight: 80}},
	})

	created, err := repo.Create(ctx, user.ID, day, req)
	require.NoError(t, err)
	require.Len(t, created.Exercises, 2)
	assert.False(t, created.CreatedAt.IsZero())

	// another day, must not show up
	_, err = repo.Create(ctx, user.ID, day.AddDate(0, 0, -1), newWorkoutRequest())
	require.NoError(t, err)

	list, err := repo.ListByDate(ctx, user.ID, day)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.True(t, day.Equal(list[0].Date))
	require.Len(t, list[0].Exercises, 2)
	squat := list[0].Exercises[0]
	assert.Equal(t, "Squat", squat.ExerciseName)
	require.Len(t, squat.Sets, 2)
	assert.Equal(t, 1, squat.Sets[0].SetNumber)
	assert.Equal(t, "easy", squat.Sets[0].Notes)
	assert.Equal(t, 2, squat.Sets[1].SetNumber)

	// other users see nothing
	list, err = repo.ListByDate(ctx, uuid.NewString(), day)
	require.NoError(t, err)
	assert.Empty(t, list)

	// progress reads what the workouts repo wrote
	progressRepo := progress.NewRepo(dbPool)
	rows, err := progressRepo.ListSetRows(ctx, user.ID, "squat", 10)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	names, err := progressRepo.ListExerciseNames(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bench Press", "Squat"}, names)
}

func TestRepo_Create_Rollback(t *testing.T) {
	ctx := context.Background()
	dbPool := testingpkg.StartPostgres(t)
	repo := workouts.NewRepo(dbPool)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, uuid.NewString(), day, newWorkoutRequest())
	assert.ErrorIs(t, err, workouts.ErrUserNotFound)

	user := &users.User{
		ID:        uuid.NewString(),
		Email:     "lifter@liftlog.app",
		FirstName: "Lifter",
		LastName:  "Strong",
	}
	require.NoError(t, users.NewRepo(dbPool).Create(ctx, user, "hash"))

	// check constraint fails on the last set, nothing may be left behind
	req := newWorkoutRequest()
	req.Exercises[0].Sets = append(req.Exercises[0].Sets, workouts.CreateSetRequest{SetNumber: 2, Reps: -1, Weight: 100})
	_, err = repo.Create(ctx, user.ID, day, req)
	assert.ErrorIs(t, err, workouts.ErrInvalidWorkout)

	var count int
	require.NoError(t, dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM workouts;`).Scan(&count))
	assert.Zero(t, count)
	require.NoError(t, dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM exercises;`).Scan(&count))
	assert.Zero(t, count)
}

func TestRepo_Create_CommitFailure(t *testing.T) {
	ctx := context.Background()
	dbPool := testingpkg.StartPostgres(t)
	repo := workouts.NewRepo(dbPool)

	user := &users.User{
		ID:        uuid.NewString(),
		Email:     "lifter@liftlog.app",
		FirstName: "Lifter",
		LastName:  "Strong",
	}
	require.NoError(t, users.NewRepo(dbPool).Create(ctx, user, "hash"))

	// a deferred constraint trigger only fires at commit time
	_, err := dbPool.Exec(ctx, `
		CREATE FUNCTION fail_on_commit() RETURNS trigger LANGUAGE plpgsql AS $$
		BEGIN
			IF NEW.notes = 'fail at commit' THEN
				RAISE EXCEPTION 'rejected at commit';
			END IF;
			RETURN NEW;
		END;
		$$;`)
	require.NoError(t, err)
	_, err = dbPool.Exec(ctx, `
		CREATE CONSTRAINT TRIGGER workouts_fail_on_commit
			AFTER INSERT ON workouts
			DEFERRABLE INITIALLY DEFERRED
			FOR EACH ROW EXECUTE FUNCTION fail_on_commit();`)
	require.NoError(t, err)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	req := newWorkoutRequest()
	req.Notes = "fail at commit"

	created, err := repo.Create(ctx, user.ID, day, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit tx")
	assert.Nil(t, created)

	list, err := repo.ListByDate(ctx, user.ID, day)
	require.NoError(t, err)
	assert.Empty(t, list)
}

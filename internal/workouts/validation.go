package workouts

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidWorkout, fmt.Sprintf(format, args...))
}

// Validate returns all violations combined, each one wrapping ErrInvalidWorkout.
func (r CreateWorkoutRequest) Validate() error {
	var err error

	if r.Date == "" {
		err = multierr.Append(err, invalid("date is required"))
	} else if _, parseErr := ParseDay(r.Date); parseErr != nil {
		err = multierr.Append(err, invalid("date must be in YYYY-MM-DD format"))
	}
	err = multierr.Append(err, validateTimes("workout", r.StartTime, r.EndTime, r.Duration))

	if len(r.Exercises) == 0 {
		err = multierr.Append(err, invalid("at least one exercise is required"))
	}
	for i, exercise := range r.Exercises {
		err = multierr.Append(err, exercise.validate(i))
	}

	return err
}

func (r CreateExerciseRequest) validate(idx int) error {
	var err error

	name := fmt.Sprintf("exercise %d", idx+1)
	if strings.TrimSpace(r.ExerciseName) == "" {
		err = multierr.Append(err, invalid("%s: name is required", name))
	}
	err = multierr.Append(err, validateTimes(name, r.StartTime, r.EndTime, r.Duration))

	// exercises without sets would never show up in the day view
	if len(r.Sets) == 0 {
		err = multierr.Append(err, invalid("%s: at least one set is required", name))
	}

	seenSetNumbers := make(map[int]bool, len(r.Sets))
	for _, set := range r.Sets {
		if set.SetNumber < 1 {
			err = multierr.Append(err, invalid("%s: set number must be at least 1", name))
		} else if seenSetNumbers[set.SetNumber] {
			err = multierr.Append(err, invalid("%s: duplicate set number %d", name, set.SetNumber))
		}
		seenSetNumbers[set.SetNumber] = true

		if set.Reps < 0 {
			err = multierr.Append(err, invalid("%s, set %d: reps must not be negative", name, set.SetNumber))
		}
		if set.Weight < 0 {
			err = multierr.Append(err, invalid("%s, set %d: weight must not be negative", name, set.SetNumber))
		}
	}

	return err
}

func validateTimes(name string, start, end time.Time, duration int) error {
	var err error
	if start.IsZero() || end.IsZero() {
		err = multierr.Append(err, invalid("%s: start and end time are required", name))
	} else if end.Before(start) {
		err = multierr.Append(err, invalid("%s: end time before start time", name))
	}
	if duration < 0 {
		err = multierr.Append(err, invalid("%s: duration must not be negative", name))
	}
	return err
}

package workouts

import (
	"errors"
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

var (
	ErrInvalidWorkout = errors.New("invalid workout")
	ErrUserNotFound   = errors.New("user not found")
)

type Workout struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Date      time.Time  `json:"date"`
	CreatedAt time.Time  `json:"createdAt"`
	StartTime time.Time  `json:"startTime"`
	EndTime   time.Time  `json:"endTime"`
	Duration  int        `json:"duration"`
	Notes     string     `json:"notes,omitempty"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise is one exercise performed within a workout.
type Exercise struct {
	ID           string    `json:"id"`
	WorkoutID    string    `json:"workoutId"`
	ExerciseName string    `json:"exerciseName"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Duration     int       `json:"duration"`
	Notes        string    `json:"notes,omitempty"`
	Sets         []Set     `json:"sets"`
}

type Set struct {
	ID         string  `json:"id"`
	ExerciseID string  `json:"exerciseId"`
	SetNumber  int     `json:"setNumber"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	Notes      string  `json:"notes,omitempty"`
}

type CreateWorkoutRequest struct {
	// Date is the training day, YYYY-MM-DD
	Date      string                  `json:"date"`
	StartTime time.Time               `json:"startTime"`
	EndTime   time.Time               `json:"endTime"`
	Duration  int                     `json:"duration"`
	Notes     string                  `json:"notes,omitempty"`
	Exercises []CreateExerciseRequest `json:"exercises"`
}

type CreateExerciseRequest struct {
	ExerciseName string             `json:"exerciseName"`
	StartTime    time.Time          `json:"startTime"`
	EndTime      time.Time          `json:"endTime"`
	Duration     int                `json:"duration"`
	Notes        string             `json:"notes,omitempty"`
	Sets         []CreateSetRequest `json:"sets"`
}

type CreateSetRequest struct {
	SetNumber int     `json:"setNumber"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Notes     string  `json:"notes,omitempty"`
}

// ParseDay parses a YYYY-MM-DD day into midnight UTC.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day [%s]: %w", day, err)
	}
	return t, nil
}

func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

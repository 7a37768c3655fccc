package progress

import (
	"errors"
	"time"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUserNotFound = errors.New("user not found")
)

// SetRecord is one performed set, flattened together with its workout.
type SetRecord struct {
	WorkoutID string    `json:"workoutId"`
	Date      time.Time `json:"date"`
	Reps      int       `json:"reps"`
	Weight    float64   `json:"weight"`
	SetNumber int       `json:"setNumber"`
}

// WorkoutStat sums up a single exercise within one workout.
type WorkoutStat struct {
	WorkoutID    string      `json:"workoutId"`
	Date         time.Time   `json:"date"`
	Sets         []SetRecord `json:"sets"`
	MaxWeight    float64     `json:"maxWeight"`
	TotalVolume  float64     `json:"totalVolume"`
	MaxOneRepMax float64     `json:"maxOneRepMax"`
}

type NameMatch struct {
	Original   string  `json:"original"`
	Normalized string  `json:"normalized"`
	Similarity float64 `json:"similarity"`
}

type ResolveResult struct {
	BestMatch    *string       `json:"bestMatch"`
	OtherMatches []string      `json:"otherMatches"`
	Progress     []WorkoutStat `json:"progress"`
}

func emptyResolveResult() *ResolveResult {
	return &ResolveResult{
		BestMatch:    nil,
		OtherMatches: []string{},
		Progress:     []WorkoutStat{},
	}
}

// NormalizeLimit applies the default for non-positive values and caps the rest at MaxLimit.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

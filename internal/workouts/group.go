package workouts

import "sort"

// dayRow is one row of the workouts x exercises x sets join.
type dayRow struct {
	Workout  Workout
	Exercise Exercise
	Set      Set
}

// groupRows nests flat join rows into workouts, keeping the order in which
// workouts and exercises first appear. Repeated sets are dropped, and sets
// end up sorted by set number.
func groupRows(rows []dayRow) []Workout {
	var order []string
	byID := make(map[string]*Workout)
	exerciseIdx := make(map[string]int)
	seenSets := make(map[string]bool)

	for _, row := range rows {
		w, ok := byID[row.Workout.ID]
		if !ok {
			workout := row.Workout
			workout.Exercises = []Exercise{}
			w = &workout
			byID[workout.ID] = w
			order = append(order, workout.ID)
		}

		idx, ok := exerciseIdx[row.Exercise.ID]
		if !ok {
			exercise := row.Exercise
			exercise.WorkoutID = w.ID
			exercise.Sets = []Set{}
			w.Exercises = append(w.Exercises, exercise)
			idx = len(w.Exercises) - 1
			exerciseIdx[exercise.ID] = idx
		}

		if seenSets[row.Set.ID] {
			continue
		}
		seenSets[row.Set.ID] = true

		set := row.Set
		set.ExerciseID = row.Exercise.ID
		w.Exercises[idx].Sets = append(w.Exercises[idx].Sets, set)
	}

	grouped := make([]Workout, 0, len(order))
	for _, id := range order {
		w := byID[id]
		for i := range w.Exercises {
			sets := w.Exercises[i].Sets
			sort.SliceStable(sets, func(a, b int) bool {
				return sets[a].SetNumber < sets[b].SetNumber
			})
		}
		grouped = append(grouped, *w)
	}

	return grouped
}

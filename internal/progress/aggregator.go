package progress

import (
	"sort"
)

// sets above this rep count give unreliable 1RM estimates and are skipped
const oneRepMaxRepsCeiling = 10

// EstimateOneRepMax uses the Brzycki formula. ok is false when reps is too high for a useful estimate.
func EstimateOneRepMax(weight float64, reps int) (_ float64, ok bool) {
	if reps > oneRepMaxRepsCeiling {
		return 0, false
	}
	return weight * 36 / float64(37-reps), true
}

type workoutGroup struct {
	stat WorkoutStat
}

func (g *workoutGroup) fold(row SetRecord) {
	g.stat.Sets = append(g.stat.Sets, row)
	if row.Weight > g.stat.MaxWeight {
		g.stat.MaxWeight = row.Weight
	}
	g.stat.TotalVolume += row.Weight * float64(row.Reps)
	if orm, ok := EstimateOneRepMax(row.Weight, row.Reps); ok && orm > g.stat.MaxOneRepMax {
		g.stat.MaxOneRepMax = orm
	}
}

// Aggregate groups set rows by workout and computes per-workout stats.
// Output is ordered by date, most recent first (ties keep the order workouts were first seen in),
// and holds at most NormalizeLimit(limit) workouts.
func Aggregate(rows []SetRecord, limit int) []WorkoutStat {
	limit = NormalizeLimit(limit)

	groups := make(map[string]*workoutGroup)
	var order []string
	for _, row := range rows {
		g, ok := groups[row.WorkoutID]
		if !ok {
			g = &workoutGroup{
				stat: WorkoutStat{
					WorkoutID: row.WorkoutID,
					Date:      row.Date,
				},
			}
			groups[row.WorkoutID] = g
			order = append(order, row.WorkoutID)
		}
		g.fold(row)
	}

	stats := make([]WorkoutStat, 0, len(order))
	for _, id := range order {
		stat := groups[id].stat
		sort.SliceStable(stat.Sets, func(i, j int) bool {
			return stat.Sets[i].SetNumber < stat.Sets[j].SetNumber
		})
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Date.After(stats[j].Date)
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}

	return stats
}

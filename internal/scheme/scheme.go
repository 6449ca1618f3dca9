package scheme

import (
	"fmt"
	"math"
)

// SetsPerDay is the number of working sets prescribed for every training day.
const SetsPerDay = 5

// MaxReps caps a single set. Larger maxima saturate here instead of overflowing int.
const MaxReps = math.MaxInt32

// TrainingDays are the day indices a progression is built from, in order.
var TrainingDays = []int{1, 3, 5}

// Base returns the dominant rep count for a day: max × (50% + 5% per day index), floored
// and capped at MaxReps.
func Base(max float64, day int) int {
	b := math.Floor(max * (0.50 + 0.05*float64(day)))
	if b >= MaxReps {
		return MaxReps
	}
	return int(b)
}

// Compute returns the reps for each of the five sets of a training day.
// The first `day` sets get the base count, the rest one fewer. Nothing goes below 1.
func Compute(max float64, day int) []int {
	base := Base(max, day)

	reps := make([]int, SetsPerDay)
	for i := 1; i <= SetsPerDay; i++ {
		r := base
		if i > day {
			r = base - 1
		}
		reps[i-1] = max1(r)
	}

	return reps
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// IsTrainingDay reports whether day is one of TrainingDays.
func IsTrainingDay(day int) bool {
	for _, d := range TrainingDays {
		if d == day {
			return true
		}
	}
	return false
}

// DisplayDay maps a day index to its position in the progression (1 -> 1, 3 -> 2, 5 -> 3).
// Unknown indices map to 0.
func DisplayDay(day int) int {
	for i, d := range TrainingDays {
		if d == day {
			return i + 1
		}
	}
	return 0
}

func Label(day int) string {
	return fmt.Sprintf("Day %d", DisplayDay(day))
}

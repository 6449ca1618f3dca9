package models

import (
	"fmt"
	"math"

	"github.com/misterclayt0n/overload/internal/scheme"
)

// ExerciseRecord is one training day of one exercise. The three records of a
// progression share ID and Timestamp.
type ExerciseRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Max       float64 `json:"max"`
	Day       int     `json:"day"`
	Reps      []int   `json:"reps"`
	Timestamp string  `json:"timestamp"`
}

// ExerciseGroup is every record created together for one exercise, sorted by day.
type ExerciseGroup struct {
	ID        string
	Name      string
	Max       float64
	Timestamp string
	Records   []ExerciseRecord
}

// NewExerciseRecords builds the full progression for an exercise, one record per training day.
func NewExerciseRecords(id, name string, max float64, timestamp string) []ExerciseRecord {
	records := make([]ExerciseRecord, 0, len(scheme.TrainingDays))
	for _, day := range scheme.TrainingDays {
		records = append(records, ExerciseRecord{
			ID:        id,
			Name:      name,
			Max:       max,
			Day:       day,
			Reps:      scheme.Compute(max, day),
			Timestamp: timestamp,
		})
	}
	return records
}

// Validate checks that a record has the persisted shape.
func (r ExerciseRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record has no id")
	}
	if r.Name == "" {
		return fmt.Errorf("record %s has no name", r.ID)
	}
	if math.IsNaN(r.Max) || math.IsInf(r.Max, 0) || r.Max <= 0 {
		return fmt.Errorf("record %s: max must be a positive number, got %v", r.ID, r.Max)
	}
	if !scheme.IsTrainingDay(r.Day) {
		return fmt.Errorf("record %s: day %d is not a training day", r.ID, r.Day)
	}
	if len(r.Reps) != scheme.SetsPerDay {
		return fmt.Errorf("record %s: expected %d sets, got %d", r.ID, scheme.SetsPerDay, len(r.Reps))
	}
	for i, reps := range r.Reps {
		if reps < 1 {
			return fmt.Errorf("record %s: set %d has %d reps", r.ID, i+1, reps)
		}
	}
	return nil
}

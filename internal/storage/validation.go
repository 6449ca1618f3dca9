package storage

import (
	"encoding/json"
	"fmt"

	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/scheme"
)

// decodeRecords parses a persisted collection and rejects it as a whole if any
// record does not have the expected shape.
func decodeRecords(data []byte) ([]models.ExerciseRecord, error) {
	var records []models.ExerciseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid record at index %d: %w", i, err)
		}
	}

	if err := validateGroups(records); err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.ExerciseRecord{}
	}
	return records, nil
}

// validateGroups checks that every id has exactly one record for each training day.
func validateGroups(records []models.ExerciseRecord) error {
	days := make(map[string]map[int]bool)
	var order []string
	for _, r := range records {
		seen, ok := days[r.ID]
		if !ok {
			seen = make(map[int]bool)
			days[r.ID] = seen
			order = append(order, r.ID)
		}
		if seen[r.Day] {
			return fmt.Errorf("exercise %q has more than one day %d record", r.ID, r.Day)
		}
		seen[r.Day] = true
	}

	for _, id := range order {
		if len(days[id]) != len(scheme.TrainingDays) {
			return fmt.Errorf("exercise %q has %d of %d training days", id, len(days[id]), len(scheme.TrainingDays))
		}
	}
	return nil
}

func encodeRecords(records []models.ExerciseRecord) ([]byte, error) {
	if records == nil {
		records = []models.ExerciseRecord{}
	}
	return json.Marshal(records)
}

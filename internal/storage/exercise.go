package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterclayt0n/overload/internal/models"

	"github.com/sirupsen/logrus"
)

// ExercisesSlot is the slot holding every saved exercise record.
const ExercisesSlot = "savedExercises"

var ErrInvalidRecord = errors.New("invalid exercise record")

// Slot is a named document store. Storage is the production implementation.
type Slot interface {
	Get(ctx context.Context, name string) (string, bool, error)
	Set(ctx context.Context, name, data string) error
}

// ExerciseStore keeps the flat list of exercise records in a single slot.
// Every change reads the whole list, modifies it in memory and writes it back.
type ExerciseStore struct {
	slot Slot
	name string
}

func NewExerciseStore(slot Slot) *ExerciseStore {
	return &ExerciseStore{slot: slot, name: ExercisesSlot}
}

// LoadAll returns every stored record in insertion order. Missing, unreadable or
// corrupt content is reported as an empty list.
func (s *ExerciseStore) LoadAll(ctx context.Context) []models.ExerciseRecord {
	records, err := s.read(ctx)
	if err != nil {
		logrus.WithError(err).Warn("exercise slot unreadable, treating as empty")
		return []models.ExerciseRecord{}
	}
	return records
}

// Records is LoadAll for callers that must not act on a slot they could not read.
// Corrupt content still comes back as an empty list.
func (s *ExerciseStore) Records(ctx context.Context) ([]models.ExerciseRecord, error) {
	records, err := s.read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read exercises: %w", err)
	}
	return records, nil
}

// AppendBatch adds records after the existing ones and persists the whole list.
// The result must still hold exactly one record per training day for every id.
func (s *ExerciseStore) AppendBatch(ctx context.Context, records []models.ExerciseRecord) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
	}
	if len(records) == 0 {
		return nil
	}

	existing, err := s.read(ctx)
	if err != nil {
		return err
	}

	merged := append(existing, records...)
	if err := validateGroups(merged); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if err := s.write(ctx, merged); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"id":      records[0].ID,
		"records": len(records),
	}).Info("exercise records appended")
	return nil
}

// DeleteByID removes every record with the given id. An unknown id is a no-op.
func (s *ExerciseStore) DeleteByID(ctx context.Context, id string) error {
	records, err := s.read(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.ExerciseRecord, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		logrus.WithField("id", id).Debug("nothing to delete")
		return nil
	}

	if err := s.write(ctx, kept); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"id":      id,
		"records": len(records) - len(kept),
	}).Info("exercise deleted")
	return nil
}

// read fails only when the slot itself cannot be read. Content that does not decode
// is logged and replaced by an empty list.
func (s *ExerciseStore) read(ctx context.Context) ([]models.ExerciseRecord, error) {
	data, ok, err := s.slot.Get(ctx, s.name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.ExerciseRecord{}, nil
	}

	records, err := decodeRecords([]byte(data))
	if err != nil {
		logrus.WithError(err).Warn("discarding corrupt exercise slot")
		return []models.ExerciseRecord{}, nil
	}
	return records, nil
}

func (s *ExerciseStore) write(ctx context.Context, records []models.ExerciseRecord) error {
	data, err := encodeRecords(records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	if err := s.slot.Set(ctx, s.name, string(data)); err != nil {
		logrus.WithError(err).Error("failed to persist exercise records")
		return err
	}
	return nil
}

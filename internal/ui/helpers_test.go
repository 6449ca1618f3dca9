package ui_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/ui"
)

// fakeStore keeps records in memory and counts writes.
type fakeStore struct {
	records   []models.ExerciseRecord
	appendErr error
	loadErr   error
	appends   int
	deletes   []string
}

func (s *fakeStore) LoadAll(context.Context) []models.ExerciseRecord {
	return append([]models.ExerciseRecord{}, s.records...)
}

func (s *fakeStore) Records(ctx context.Context) ([]models.ExerciseRecord, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.LoadAll(ctx), nil
}

func (s *fakeStore) AppendBatch(_ context.Context, records []models.ExerciseRecord) error {
	s.appends++
	if s.appendErr != nil {
		return s.appendErr
	}
	s.records = append(s.records, records...)
	return nil
}

func (s *fakeStore) DeleteByID(_ context.Context, id string) error {
	s.deletes = append(s.deletes, id)
	kept := s.records[:0]
	for _, r := range s.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.records = kept
	return nil
}

func sequentialIDs(ids ...string) func() string {
	i := 0
	return func() string {
		if i >= len(ids) {
			panic(fmt.Sprintf("only %d ids prepared", len(ids)))
		}
		id := ids[i]
		i++
		return id
	}
}

func newTestController(t *testing.T, store ui.RecordStore, now time.Time, ids ...string) (*ui.Controller, *bytes.Buffer) {
	t.Helper()
	noColor(t)

	buf := &bytes.Buffer{}
	c := ui.NewController(store, buf,
		ui.WithClock(func() time.Time { return now }),
		ui.WithIDGenerator(sequentialIDs(ids...)),
		ui.WithTimestampFormat(time.UTC, "02/01/2006 15:04:05"),
	)
	return c, buf
}

func noColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

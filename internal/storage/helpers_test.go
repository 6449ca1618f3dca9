package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/overload/internal/config"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/storage"

	"github.com/stretchr/testify/require"
)

func openTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "overload.db")
	st, err := storage.Open(context.Background(), config.DBConfig{ConnectionString: "file:" + path})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func group(id, name string, max float64) []models.ExerciseRecord {
	return models.NewExerciseRecords(id, name, max, "15/10/2026 10:00:00")
}

var errDiskFull = errors.New("disk full")

// memSlot is an in-memory Slot whose reads and writes can be made to fail.
type memSlot struct {
	data    map[string]string
	getErr  error
	setErr  error
	setCall int
}

func newMemSlot() *memSlot {
	return &memSlot{data: make(map[string]string)}
}

func (m *memSlot) Get(_ context.Context, name string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[name]
	return v, ok, nil
}

func (m *memSlot) Set(_ context.Context, name, data string) error {
	m.setCall++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[name] = data
	return nil
}

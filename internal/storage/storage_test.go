package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/overload/internal/config"
	"github.com/misterclayt0n/overload/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_GetMissingSlot(t *testing.T) {
	st := openTestStorage(t)

	data, ok, err := st.Get(context.Background(), "nothing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, data)
}

func TestStorage_SetOverwrites(t *testing.T) {
	st := openTestStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, "slot", "first"))
	require.NoError(t, st.Set(ctx, "slot", "second"))
	require.NoError(t, st.Set(ctx, "other", "third"))

	data, ok, err := st.Get(ctx, "slot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", data)

	var rows int
	require.NoError(t, st.DB.QueryRow(`SELECT COUNT(*) FROM slots`).Scan(&rows))
	assert.Equal(t, 2, rows)
}

func TestStorage_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	cfg := config.DBConfig{ConnectionString: filepath.Join(t.TempDir(), "plain.db")}

	st, err := storage.Open(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, "slot", "kept"))
	require.NoError(t, st.Close())

	st, err = storage.Open(ctx, cfg)
	require.NoError(t, err)
	defer st.Close()

	data, ok, err := st.Get(ctx, "slot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "kept", data)
}

func TestOpen_Rejections(t *testing.T) {
	ctx := context.Background()

	_, err := storage.Open(ctx, config.DBConfig{})
	assert.Error(t, err)

	_, err = storage.Open(ctx, config.DBConfig{ConnectionString: "postgres://localhost/db"})
	assert.ErrorContains(t, err, "unsupported database scheme")
}

package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, 10, 15, 21, 5, 9, 0, time.UTC)

	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	assert.Equal(t, "15/10/2026 18:05:09", FormatTimestamp(ts, sp, "02/01/2006 15:04:05"))
	assert.Equal(t, "2026-10-15", FormatTimestamp(ts, time.UTC, "2006-01-02"))
}

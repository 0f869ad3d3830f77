package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	t.Run("explicit month", func(t *testing.T) {
		got, err := parseMonth("2024-06")
		require.NoError(t, err)
		assert.True(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local).Equal(got))
	})

	t.Run("empty defaults to current month", func(t *testing.T) {
		got, err := parseMonth("")
		require.NoError(t, err)
		now := time.Now()
		assert.Equal(t, now.Year(), got.Year())
		assert.Equal(t, now.Month(), got.Month())
		assert.Equal(t, 1, got.Day())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := parseMonth("June 2024")
		assert.Error(t, err)
	})
}

func TestParseDay(t *testing.T) {
	got, err := parseDay("2024-06-15")
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local).Equal(got))

	_, err = parseDay("15/06/2024")
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	t.Setenv("SCANLEDGER_TEST_DIR", "/tmp/scanledger")

	assert.Equal(t, "/tmp/scanledger/data.db", expandPath("$SCANLEDGER_TEST_DIR/data.db"))
	assert.Equal(t, "relative/path.db", expandPath("relative/path.db"))
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("RFC 3339", func(t *testing.T) {
		parsed, err := parseDate("2024-03-01T18:30:00Z")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC), parsed)
	})

	t.Run("Space-separated timestamp", func(t *testing.T) {
		parsed, err := parseDate("2024-03-01 18:30:00")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC), parsed)
	})

	t.Run("Calendar date", func(t *testing.T) {
		parsed, err := parseDate("2024-01-15")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("Unrecognized layout", func(t *testing.T) {
		_, err := parseDate("15/01/2024")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unrecognized date")
	})

	t.Run("Empty string", func(t *testing.T) {
		_, err := parseDate("")
		assert.Error(t, err)
	})
}

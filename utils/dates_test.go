package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-01-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDate("")
	assert.False(t, ok)

	_, ok = ParseDate("15/01/2024")
	assert.False(t, ok)
}

func TestParseDateTime(t *testing.T) {
	got, ok := ParseDateTime("2024-01-15T14:30")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC), got)

	_, ok = ParseDateTime("2024-01-15")
	assert.False(t, ok)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 1, 15, 23, 50, 0, 0, time.UTC)
	end := time.Date(2024, 1, 17, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysBetween(start, end))
}

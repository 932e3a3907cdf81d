package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextOutgoingSequence(t *testing.T) {
	testCases := []struct {
		name     string
		numbers  []string
		expected int
	}{
		{"empty month starts at one", nil, 1},
		{"continues after highest", []string{"001/OUT/VIII/2025", "002/OUT/VIII/2025"}, 3},
		{"order does not matter", []string{"009/OUT/I/2025", "003/OUT/I/2025"}, 10},
		{"non-numeric prefixes contribute nothing", []string{"UND-13/2025", "004/OUT/V/2025"}, 5},
		{"only non-numeric prefixes", []string{"UND-13/2025"}, 1},
		{"unpadded prefixes still count", []string{"12/OUT/XII/2024"}, 13},
		{"hand-entered leading digits count", []string{"12-UND/2025"}, 13},
		{"hand-entered number can hold the maximum", []string{"030-X/2025", "004/OUT/V/2025"}, 31},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, nextOutgoingSequence(tc.numbers))
		})
	}
}

func TestFormatOutgoingNumber(t *testing.T) {
	aug := time.Date(2025, time.August, 31, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "007/OUT/VIII/2025", formatOutgoingNumber(7, aug))

	dec := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "001/OUT/XII/2024", formatOutgoingNumber(1, dec))

	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "120/OUT/I/2026", formatOutgoingNumber(120, jan))

	// Padding widens past 999 rather than wrapping.
	assert.Equal(t, "1000/OUT/I/2026", formatOutgoingNumber(1000, jan))
}

func TestMonthBounds(t *testing.T) {
	from, to := monthBounds(time.Date(2025, time.August, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), to)

	// December rolls over to January of the next year.
	from, to = monthBounds(time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestNextArchiveNumber(t *testing.T) {
	testCases := []struct {
		name     string
		last     string
		year     int
		expected string
	}{
		{"first of the year", "", 2025, "AR/2025/001"},
		{"increments last", "AR/2025/041", 2025, "AR/2025/042"},
		{"crosses into four digits", "AR/2025/999", 2025, "AR/2025/1000"},
		{"malformed last restarts sequence", "AR-2025-041", 2025, "AR/2025/001"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, nextArchiveNumber(tc.last, tc.year))
		})
	}
}

package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// romanMonths maps time.Month (1-12) to the roman numeral used in official
// letter numbers.
var romanMonths = [13]string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

// leadingSequence extracts the numeric sequence prefix of a letter number,
// e.g. "012/OUT/VIII/2025" -> 12. Hand-entered numbers count too as long as
// they start with digits ("12-UND/2025" -> 12); anything else contributes no
// sequence.
var leadingSequence = regexp.MustCompile(`^(\d+)`)

// monthBounds returns the first instant of the month containing t and the
// first instant of the following month, in t's location.
func monthBounds(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 1, 0)
}

// nextOutgoingSequence returns one past the highest sequence prefix found in
// the given letter numbers, starting at 1 for an empty month.
func nextOutgoingSequence(numbers []string) int {
	max := 0
	for _, number := range numbers {
		m := leadingSequence.FindStringSubmatch(number)
		if m == nil {
			continue
		}
		seq, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max + 1
}

// formatOutgoingNumber renders a sequence into the official outgoing letter
// number format, e.g. 7 in August 2025 -> "007/OUT/VIII/2025".
func formatOutgoingNumber(seq int, date time.Time) string {
	return fmt.Sprintf("%03d/OUT/%s/%d", seq, romanMonths[date.Month()], date.Year())
}

// archiveNumberPrefix returns the archive number prefix for a year, e.g.
// "AR/2025/".
func archiveNumberPrefix(year int) string {
	return fmt.Sprintf("AR/%d/", year)
}

// nextArchiveNumber computes the archive number following lastNumber within
// the given year. An empty lastNumber starts the year's sequence at 1.
// Sequences keep three digits of padding but grow past 999 without wrapping.
func nextArchiveNumber(lastNumber string, year int) string {
	seq := 0
	if lastNumber != "" {
		parts := strings.Split(lastNumber, "/")
		if len(parts) == 3 {
			if n, err := strconv.Atoi(parts[2]); err == nil {
				seq = n
			}
		}
	}
	return fmt.Sprintf("AR/%d/%03d", year, seq+1)
}

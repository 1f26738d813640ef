package domain

import (
	"math"
	"strings"
)

// WordsPerMinute is the assumed reading speed.
const WordsPerMinute = 220

// ReadingTime estimates whole minutes to read text, rounding half up.
// Empty or whitespace-only text reads in zero minutes.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return int(math.Floor(float64(words)/WordsPerMinute + 0.5))
}

package stats

import (
	"errors"
	"sort"
)

// ErrEmptyInput is returned when a statistic is undefined for zero values
var ErrEmptyInput = errors.New("stats: empty input")

// Median returns the middle value of the sorted input, or the mean of the
// two middle values for an even count. The input slice is not reordered.
// Infinite inputs can yield an infinite or NaN median; callers that need a
// finite value must check.
func Median(values []float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	s := append([]float64(nil), values...)
	sort.Float64s(s)

	if n%2 == 1 {
		return s[n/2], nil
	}
	// halve before adding so two large values cannot overflow
	return s[n/2-1]/2 + s[n/2]/2, nil
}

package src

import (
	"math"

	"github.com/gonum/floats"
	"github.com/montanaflynn/stats"
)

const rankTolerance = 1e-12

// CorrectRanks replaces the negative sentinels of incomplete predictions in
// place. The k entries tied at the current minimum v < 0 become
// i*(-v)/(k+1) for i = 1..k, as if the omitted edges had been ranked
// uniformly at random below the last submitted one. Repeats until no
// negative value is left.
func CorrectRanks(values []float64) {
	if len(values) == 0 {
		return
	}
	for {
		min := floats.Min(values)
		if min >= -rankTolerance {
			return
		}
		k := 0
		for _, v := range values {
			if v == min {
				k++
			}
		}
		step := -min / float64(k+1)
		i := 1
		for c, v := range values {
			if v == min {
				values[c] = float64(i) * step
				i++
			}
		}
	}
}

// Median is the middle element of the sorted values, or the mean of the two
// middle ones. NaN for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	m, err := stats.Median(values)
	if err != nil {
		return math.NaN()
	}
	return m
}

//copy, correct and take the median, leaves values untouched
func CorrectedMedian(values []float64) (median float64, corrected []float64) {
	corrected = make([]float64, len(values))
	copy(corrected, values)
	CorrectRanks(corrected)
	return Median(corrected), corrected
}

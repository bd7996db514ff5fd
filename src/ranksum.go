package src

import (
	"math"

	"github.com/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// PValueNotComputed marks a test skipped for lack of data.
const PValueNotComputed = -1.0

// RankSumTest is the two-sided Mann-Whitney U test of x against y, using the
// normal approximation with tie and continuity correction. u is the U
// statistic of x.
func RankSumTest(x []float64, y []float64) (u float64, p float64) {
	n1 := len(x)
	n2 := len(y)
	if n1 == 0 || n2 == 0 {
		return 0, PValueNotComputed
	}
	n := n1 + n2
	pooled := make([]float64, 0, n)
	pooled = append(pooled, x...)
	pooled = append(pooled, y...)
	inds := make([]int, n)
	floats.Argsort(pooled, inds)

	//average ranks over ties
	ranks := make([]float64, n)
	tieSum := 0.0
	for i := 0; i < n; {
		j := i + 1
		for j < n && pooled[j] == pooled[i] {
			j++
		}
		avg := float64(i+j+1) / 2.0
		for k := i; k < j; k++ {
			ranks[inds[k]] = avg
		}
		t := float64(j - i)
		tieSum += t*t*t - t
		i = j
	}
	r1 := 0.0
	for i := 0; i < n1; i++ {
		r1 += ranks[i]
	}
	f1 := float64(n1)
	f2 := float64(n2)
	fn := float64(n)
	u = r1 - f1*(f1+1)/2.0
	mu := f1 * f2 / 2.0
	variance := f1 * f2 / 12.0 * ((fn + 1) - tieSum/(fn*(fn-1)))
	if variance <= 0 {
		return u, 1.0
	}
	z := (math.Abs(u-mu) - 0.5) / math.Sqrt(variance)
	if z < 0 {
		z = 0
	}
	p = 2.0 * distuv.UnitNormal.Survival(z)
	return u, clampPValue(p)
}

// clampPValue maps underflowed p-values and the overflow artifact 2.0 to 0.
func clampPValue(p float64) float64 {
	if p < 1e-200 || p == 2.0 {
		return 0.0
	}
	if p > 1.0 {
		return 1.0
	}
	return p
}

// SignificanceTest runs RankSumTest only when both samples have more than
// one value, otherwise p stays PValueNotComputed.
func SignificanceTest(sample []float64, background []float64) (p float64) {
	if len(sample) <= 1 || len(background) <= 1 {
		return PValueNotComputed
	}
	_, p = RankSumTest(sample, background)
	return p
}

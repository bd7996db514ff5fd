package src

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/integrate"
)

// points in the synthetic tail of an incomplete prediction are thinned to at
// most this many; the tail is analytic so the areas do not depend on it
const maxTailPoints = 10000

type Point struct {
	X float64
	Y float64
}

// ScoreCurve is the PR and ROC evaluation of one prediction. When the list is
// incomplete the true edges left over are assumed to be spread uniformly at
// random over the unscored pairs.
type ScoreCurve struct {
	P         int
	T         int
	L         int
	Recall    []float64
	Precision []float64
	TPR       []float64
	FPR       []float64
	AUPR      float64
	AUROC     float64
}

func NewScoreCurve(rm *RankMatrix) (sc *ScoreCurve, err error) {
	if rm == nil {
		return nil, ErrNoPrediction
	}
	facts := rm.Facts
	n := facts.N()
	type kv struct {
		Key   int
		Value float64
	}
	var sortR []kv
	nTrue := 0
	for tgt := 0; tgt < n; tgt++ {
		for src := 0; src < n; src++ {
			if src == tgt && !rm.AllowSelf {
				continue
			}
			if facts.HasEdge(src, tgt) {
				nTrue++
			}
			if rm.Predicted(src, tgt) {
				sortR = append(sortR, kv{tgt*n + src, rm.R.At(tgt, src)})
			}
		}
	}
	if nTrue == 0 {
		return nil, ErrNoTrueEdges
	}
	sort.Slice(sortR, func(i, j int) bool {
		return sortR[i].Value > sortR[j].Value
	})

	P := float64(nTrue)
	T := float64(rm.MaxPossible)
	nNeg := T - P
	L := len(sortR)
	sc = &ScoreCurve{P: nTrue, T: rm.MaxPossible, L: L}
	sc.TPR = append(sc.TPR, 0.0)
	sc.FPR = append(sc.FPR, 0.0)

	fpr := func(fp float64) float64 {
		if nNeg <= 0 {
			return 0.0
		}
		return fp / nNeg
	}

	tp := 0.0
	fp := 0.0
	aupr := 0.0
	for c, e := range sortR {
		k := float64(c + 1)
		if facts.HasEdge(e.Key%n, e.Key/n) {
			tp += 1.0
			//exact area of the interpolated segment between two true positives
			if fp == 0 {
				aupr += 1.0 / P
			} else {
				aupr += (1.0 - fp*math.Log(k/(k-1.0))) / P
			}
		} else {
			fp += 1.0
		}
		sc.Recall = append(sc.Recall, tp/P)
		sc.Precision = append(sc.Precision, tp/k)
		sc.TPR = append(sc.TPR, tp/P)
		sc.FPR = append(sc.FPR, fpr(fp))
	}

	if L < rm.MaxPossible {
		fL := float64(L)
		recL := tp / P
		rh := (P - tp) / (T - fL)
		if L == 0 {
			aupr = P / T
		} else if rh > 0 {
			aupr += rh*(1.0-recL) + rh*(recL-fL*rh/P)*math.Log((fL*rh+P*(1.0-recL))/(fL*rh))
		}
		rest := rm.MaxPossible - L
		step := 1
		if rest > maxTailPoints {
			step = (rest + maxTailPoints - 1) / maxTailPoints
		}
		for i := step; ; i += step {
			if i > rest {
				i = rest
			}
			d := float64(i)
			k := fL + d
			tpK := tp + rh*d
			fpK := fp + (1.0-rh)*d
			sc.Recall = append(sc.Recall, tpK/P)
			sc.Precision = append(sc.Precision, tpK/k)
			sc.TPR = append(sc.TPR, tpK/P)
			sc.FPR = append(sc.FPR, fpr(fpK))
			if i == rest {
				break
			}
		}
	}
	sc.AUPR = aupr
	if nNeg <= 0 {
		sc.AUROC = 1.0
	} else {
		sc.AUROC = integrate.Trapezoidal(sc.FPR, sc.TPR)
	}
	return sc, nil
}

func compactPoints(xs []float64, ys []float64) (points []Point) {
	for i := range xs {
		p := Point{round2(xs[i]), round2(ys[i])}
		if len(points) > 0 && points[len(points)-1] == p {
			continue
		}
		points = append(points, p)
	}
	return points
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// PRPoints are the (recall, precision) points rounded to two decimals with
// consecutive duplicates removed.
func (sc *ScoreCurve) PRPoints() []Point {
	return compactPoints(sc.Recall, sc.Precision)
}

// ROCPoints are the (FPR, TPR) points, compacted like PRPoints.
func (sc *ScoreCurve) ROCPoints() []Point {
	return compactPoints(sc.FPR, sc.TPR)
}

func PointString(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

package src

import (
	"github.com/gonum/matrix/mat64"
)

//one parsed line of a prediction list, Line is 1-based in the source file
type PredictionRow struct {
	Source     string
	Target     string
	Confidence float64
	Line       int
}

// RankMatrix holds the normalized ranks of one prediction against one gold
// standard. R.At(tgt, src) is the rank of the edge src->tgt: the most
// confident edge is closest to 1. Pairs that were never submitted hold the
// negative of the rank the next edge in the list would have received.
type RankMatrix struct {
	Facts       *GraphFacts
	File        string
	R           *mat64.Dense
	AllowSelf   bool
	MaxPossible int
	Submitted   int
	predicted   []bool
}

func NewRankMatrix(facts *GraphFacts, rows []PredictionRow, allowSelf bool) (rm *RankMatrix, err error) {
	return newRankMatrix(facts, "", rows, allowSelf)
}

// LoadRankMatrix is NewRankMatrix with the file name kept for error context.
func LoadRankMatrix(facts *GraphFacts, file string, rows []PredictionRow, allowSelf bool) (rm *RankMatrix, err error) {
	return newRankMatrix(facts, file, rows, allowSelf)
}

func newRankMatrix(facts *GraphFacts, file string, rows []PredictionRow, allowSelf bool) (rm *RankMatrix, err error) {
	n := facts.N()
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	maxPossible := n*n - n
	if allowSelf {
		maxPossible = n * n
	}
	R := mat64.NewDense(n, n, nil)
	predicted := make([]bool, n*n)
	denom := float64(maxPossible - 1)

	pos := 0
	for _, row := range rows {
		src, ok1 := facts.Index[row.Source]
		tgt, ok2 := facts.Index[row.Target]
		if !ok1 || !ok2 {
			return nil, &PredictionError{File: file, Line: row.Line, Source: row.Source, Target: row.Target, Err: ErrUnknownLabel}
		}
		if src == tgt && !allowSelf {
			return nil, &PredictionError{File: file, Line: row.Line, Source: row.Source, Target: row.Target, Err: ErrSelfLoop}
		}
		if predicted[tgt*n+src] {
			return nil, &PredictionError{File: file, Line: row.Line, Source: row.Source, Target: row.Target, Err: ErrDuplicateEdge}
		}
		predicted[tgt*n+src] = true
		R.Set(tgt, src, float64(maxPossible-pos-1)/denom)
		pos++
	}

	//incomplete list, mark the rest with the negative next rank
	if pos < maxPossible {
		sentinel := -float64(maxPossible-pos-1) / denom
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !allowSelf {
					continue
				}
				if !predicted[i*n+j] {
					R.Set(i, j, sentinel)
				}
			}
		}
	}

	rm = &RankMatrix{
		Facts:       facts,
		File:        file,
		R:           R,
		AllowSelf:   allowSelf,
		MaxPossible: maxPossible,
		Submitted:   pos,
		predicted:   predicted,
	}
	return rm, nil
}

// Rank returns the rank of src->tgt. ok is false without a loaded prediction.
func (rm *RankMatrix) Rank(src int, tgt int) (rank float64, ok bool) {
	if rm == nil || rm.R == nil {
		return 0, false
	}
	return rm.R.At(tgt, src), true
}

func (rm *RankMatrix) Predicted(src int, tgt int) bool {
	if rm == nil {
		return false
	}
	return rm.predicted[tgt*rm.Facts.N()+src]
}

func (rm *RankMatrix) Complete() bool {
	return rm.Submitted >= rm.MaxPossible
}

// EdgeClassRanks splits the ranks of all non-self pairs into true edges,
// back edges (absent but the reverse is a true edge) and absent edges.
func (rm *RankMatrix) EdgeClassRanks() (trueR []float64, backR []float64, absentR []float64) {
	facts := rm.Facts
	n := facts.N()
	trueR = make([]float64, 0, facts.NumEdges())
	backR = make([]float64, 0, facts.NumEdges())
	absentR = make([]float64, 0, n*n)
	for src := 0; src < n; src++ {
		for tgt := 0; tgt < n; tgt++ {
			if src == tgt {
				continue
			}
			r := rm.R.At(tgt, src)
			if facts.HasEdge(src, tgt) {
				trueR = append(trueR, r)
			} else if facts.HasEdge(tgt, src) {
				backR = append(backR, r)
			} else {
				absentR = append(absentR, r)
			}
		}
	}
	return trueR, backR, absentR
}

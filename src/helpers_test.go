package src

import (
	"math/rand"
	"strconv"
)

func geneLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = "G" + strconv.Itoa(i+1)
	}
	return labels
}

// randomGold draws every directed non-self pair with probability density.
func randomGold(rng *rand.Rand, n int, density float64) *GoldStandard {
	labels := geneLabels(n)
	var edges [][2]string
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rng.Float64() < density {
				edges = append(edges, [2]string{labels[i], labels[j]})
			}
		}
	}
	return NewGoldStandard("random", labels, edges, false)
}

func rowsOf(pairs ...[2]string) (rows []PredictionRow) {
	for i, p := range pairs {
		rows = append(rows, PredictionRow{Source: p[0], Target: p[1], Confidence: float64(len(pairs) - i), Line: i + 1})
	}
	return rows
}

// allPairs lists every non-self pair, true edges first when trueFirst is set.
func allPairs(facts *GraphFacts, trueFirst bool) (pairs [][2]string) {
	n := facts.N()
	var trueP, falseP [][2]string
	for src := 0; src < n; src++ {
		for tgt := 0; tgt < n; tgt++ {
			if src == tgt {
				continue
			}
			p := [2]string{facts.Labels[src], facts.Labels[tgt]}
			if facts.HasEdge(src, tgt) {
				trueP = append(trueP, p)
			} else {
				falseP = append(falseP, p)
			}
		}
	}
	if trueFirst {
		return append(trueP, falseP...)
	}
	return append(falseP, trueP...)
}

func shuffledPairs(rng *rand.Rand, facts *GraphFacts) [][2]string {
	pairs := allPairs(facts, true)
	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	return pairs
}

func chainGold() *GoldStandard {
	return NewGoldStandard("chain", []string{"G1", "G2", "G3"}, [][2]string{{"G1", "G2"}, {"G2", "G3"}}, false)
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

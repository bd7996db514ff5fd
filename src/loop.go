package src

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

type LoopCategory int

const (
	// true edges whose endpoints share a strongly connected component
	InCycle LoopCategory = iota
	NotInCycle
	// true edges whose reverse is also a true edge
	FeedbackPair
	// every true edge
	AllTrueEdges
	numLoopCategories
)

var loopCategoryNames = [numLoopCategories]string{"inCycle", "notInCycle", "feedbackPair", "allTrue"}

func (c LoopCategory) String() string {
	return loopCategoryNames[c]
}

// LoopAnalysis classifies the true edges of a gold standard by their
// membership in feedback structures and collects their ranks.
type LoopAnalysis struct {
	Facts     *GraphFacts
	Ranks     *RankMatrix
	Component []int
	Counts    [numLoopCategories]int
	Values    [numLoopCategories][]float64
}

// Components labels each node with its strongly connected component and
// returns the component sizes. Self-loops do not join components.
func Components(facts *GraphFacts) (component []int, sizes []int) {
	n := facts.N()
	g := simple.NewDirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for src := 0; src < n; src++ {
		for tgt := 0; tgt < n; tgt++ {
			if src != tgt && facts.HasEdge(src, tgt) {
				g.SetEdge(g.NewEdge(simple.Node(int64(src)), simple.Node(int64(tgt))))
			}
		}
	}
	component = make([]int, n)
	sccs := topo.TarjanSCC(g)
	sizes = make([]int, len(sccs))
	for c, scc := range sccs {
		sizes[c] = len(scc)
		for _, node := range scc {
			component[int(node.ID())] = c
		}
	}
	return component, sizes
}

func NewLoopAnalysis(facts *GraphFacts, rm *RankMatrix) (la *LoopAnalysis) {
	la = &LoopAnalysis{Facts: facts, Ranks: rm}
	component, sizes := Components(facts)
	la.Component = component
	n := facts.N()
	for src := 0; src < n; src++ {
		for tgt := 0; tgt < n; tgt++ {
			if src == tgt || !facts.HasEdge(src, tgt) {
				continue
			}
			cats := []LoopCategory{AllTrueEdges}
			if component[src] == component[tgt] && sizes[component[src]] > 1 {
				cats = append(cats, InCycle)
			} else {
				cats = append(cats, NotInCycle)
			}
			if facts.HasEdge(tgt, src) {
				cats = append(cats, FeedbackPair)
			}
			r, ok := rm.Rank(src, tgt)
			for _, c := range cats {
				la.Counts[c]++
				if ok {
					la.Values[c] = append(la.Values[c], r)
				}
			}
		}
	}
	return la
}

// LoopBatch pools loop analyses of several networks.
type LoopBatch struct {
	Counts [numLoopCategories]int
	Values [numLoopCategories][]float64
}

func (b *LoopBatch) Add(la *LoopAnalysis) {
	for c := LoopCategory(0); c < numLoopCategories; c++ {
		b.Counts[c] += la.Counts[c]
		b.Values[c] = append(b.Values[c], la.Values[c]...)
	}
}

type LoopResult struct {
	Category   LoopCategory
	Count      int
	Median     float64
	Divergence float64
	PValue     float64
}

// Summarize compares each category with all true edges. Ranks are corrected
// before medians and tests.
func (b *LoopBatch) Summarize() (results []LoopResult) {
	bgMedian, bg := CorrectedMedian(b.Values[AllTrueEdges])
	for c := LoopCategory(0); c < numLoopCategories; c++ {
		median, corrected := CorrectedMedian(b.Values[c])
		res := LoopResult{
			Category:   c,
			Count:      b.Counts[c],
			Median:     median,
			Divergence: median - bgMedian,
			PValue:     PValueNotComputed,
		}
		if c != AllTrueEdges {
			res.PValue = SignificanceTest(corrected, bg)
		} else {
			res.Divergence = 0
		}
		results = append(results, res)
	}
	return results
}

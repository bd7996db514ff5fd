package src

import (
	"github.com/gonum/matrix/mat64"
)

//parsed gold standard, edges are {source, target} node indices
type GoldStandard struct {
	Name      string
	Labels    []string
	Index     map[string]int
	Edges     [][2]int
	AllowSelf bool
}

func (g *GoldStandard) N() int {
	return len(g.Labels)
}

// GraphFacts holds what is derived once from a gold standard. A.At(i, j) == 1
// means the edge j->i exists: source is the column, target is the row.
// It is never modified after NewGraphFacts returns and may be shared.
type GraphFacts struct {
	Name      string
	Labels    []string
	Index     map[string]int
	A         *mat64.Dense
	Indegree  []int
	Outdegree []int
	AllowSelf bool
	nEdges    int
}

func NewGraphFacts(gs *GoldStandard) (facts *GraphFacts) {
	n := gs.N()
	facts = &GraphFacts{
		Name:      gs.Name,
		Labels:    gs.Labels,
		Index:     gs.Index,
		A:         mat64.NewDense(n, n, nil),
		Indegree:  make([]int, n),
		Outdegree: make([]int, n),
		AllowSelf: gs.AllowSelf,
	}
	for _, e := range gs.Edges {
		src, tgt := e[0], e[1]
		if src == tgt && !gs.AllowSelf {
			continue
		}
		//no parallel edges
		if facts.A.At(tgt, src) == 1.0 {
			continue
		}
		facts.A.Set(tgt, src, 1.0)
		facts.Indegree[tgt] += 1
		facts.Outdegree[src] += 1
		facts.nEdges += 1
	}
	return facts
}

func (f *GraphFacts) N() int {
	return len(f.Labels)
}

func (f *GraphFacts) HasEdge(src int, tgt int) bool {
	return f.A.At(tgt, src) == 1.0
}

// Connected reports whether a and b are adjacent in either direction.
func (f *GraphFacts) Connected(a int, b int) bool {
	return f.HasEdge(a, b) || f.HasEdge(b, a)
}

func (f *GraphFacts) NumEdges() int {
	return f.nEdges
}

//number of directed pairs a prediction can score
func (f *GraphFacts) NumScorable() int {
	n := f.N()
	if f.AllowSelf {
		return n * n
	}
	return n*n - n
}

// Scorable reports whether the pair src->tgt is part of the evaluation.
func (f *GraphFacts) Scorable(src int, tgt int) bool {
	return src != tgt || f.AllowSelf
}

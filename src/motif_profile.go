package src

import (
	"context"
)

// Triad is one connected three-node instance. Nodes are in enumeration order;
// canonical node i of motif ID is Nodes[Perm[i]].
type Triad struct {
	Nodes [3]int
	Code  uint8
	ID    int
	Perm  [3]int
}

func (t Triad) Canonical() (nodes [3]int) {
	for i := 0; i < 3; i++ {
		nodes[i] = t.Nodes[t.Perm[i]]
	}
	return nodes
}

// per motif aggregates, slot ranks are in canonical slot order
type MotifStats struct {
	Count      int
	NonOverlap int
	SlotRanks  [NumSlots][]float64
	InSum      [3]int
	OutSum     [3]int
}

func (s *MotifStats) AvgIndegree() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.InSum[0]+s.InSum[1]+s.InSum[2]) / float64(3*s.Count)
}

func (s *MotifStats) AvgOutdegree() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.OutSum[0]+s.OutSum[1]+s.OutSum[2]) / float64(3*s.Count)
}

// MotifProfile collects the motif instances of one gold standard and, when a
// prediction is given, the ranks of their edges. Without a prediction only
// instance counts and degrees are collected.
type MotifProfile struct {
	Catalog *Catalog
	Facts   *GraphFacts
	Ranks   *RankMatrix
	Motifs  [NumMotifs]MotifStats
	used    [NumMotifs][]bool
	nTriads int
}

func NewMotifProfile(cat *Catalog, facts *GraphFacts, rm *RankMatrix) *MotifProfile {
	return &MotifProfile{Catalog: cat, Facts: facts, Ranks: rm}
}

func (p *MotifProfile) CountingOnly() bool {
	return p.Ranks == nil
}

//undirected neighbours without self, ascending
func neighbourLists(facts *GraphFacts) (nb [][]int) {
	n := facts.N()
	nb = make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && facts.Connected(i, j) {
				nb[i] = append(nb[i], j)
			}
		}
	}
	return nb
}

func triadCode(facts *GraphFacts, nodes [3]int) (code uint8) {
	for k, e := range slotEnds {
		if facts.HasEdge(nodes[e[0]], nodes[e[1]]) {
			code |= slotBit(k)
		}
	}
	return code
}

// ForEachTriad calls fn once for every unordered connected node triple. For
// each g, the second node n is a neighbour of g above g, and the third node is
// either a neighbour of g above n or a neighbour of n above g that is not
// itself a neighbour of g. The context is checked once per g.
func ForEachTriad(ctx context.Context, cat *Catalog, facts *GraphFacts, fn func(Triad)) error {
	n := facts.N()
	nb := neighbourLists(facts)
	inNg := make([]bool, n)
	for g := 0; g < n; g++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		ng := make([]int, 0, len(nb[g]))
		for _, v := range nb[g] {
			if v > g {
				ng = append(ng, v)
				inNg[v] = true
			}
		}
		for _, second := range ng {
			third := make([]int, 0)
			for _, v := range ng {
				if v > second {
					third = append(third, v)
				}
			}
			for _, v := range nb[second] {
				if v > g && !inNg[v] {
					third = append(third, v)
				}
			}
			for _, m := range third {
				nodes := [3]int{g, second, m}
				code := triadCode(facts, nodes)
				id, perm, ok := cat.Lookup(code)
				if !ok {
					continue
				}
				fn(Triad{Nodes: nodes, Code: code, ID: id, Perm: perm})
			}
		}
		for _, v := range ng {
			inNg[v] = false
		}
	}
	return nil
}

// TriadRanks returns the six edge ranks of a triad in canonical slot order.
func (p *MotifProfile) TriadRanks(t Triad) (ranks [NumSlots]float64, err error) {
	if p.Ranks == nil {
		return ranks, ErrNoPrediction
	}
	c := t.Canonical()
	for k, e := range slotEnds {
		ranks[k], _ = p.Ranks.Rank(c[e[0]], c[e[1]])
	}
	return ranks, nil
}

// Run enumerates all triads and fills the per-motif aggregates.
func (p *MotifProfile) Run(ctx context.Context) error {
	n := p.Facts.N()
	for id := 0; id < NumMotifs; id++ {
		p.Motifs[id] = MotifStats{}
		p.used[id] = make([]bool, n)
	}
	p.nTriads = 0
	return ForEachTriad(ctx, p.Catalog, p.Facts, p.add)
}

func (p *MotifProfile) add(t Triad) {
	s := &p.Motifs[t.ID]
	s.Count++
	p.nTriads++

	//approximate: depends on enumeration order
	used := p.used[t.ID]
	if !used[t.Nodes[0]] && !used[t.Nodes[1]] && !used[t.Nodes[2]] {
		s.NonOverlap++
		used[t.Nodes[0]] = true
		used[t.Nodes[1]] = true
		used[t.Nodes[2]] = true
	}

	c := t.Canonical()
	for i, node := range c {
		s.InSum[i] += p.Facts.Indegree[node]
		s.OutSum[i] += p.Facts.Outdegree[node]
	}
	if p.CountingOnly() {
		return
	}
	ranks, _ := p.TriadRanks(t)
	for k := 0; k < NumSlots; k++ {
		s.SlotRanks[k] = append(s.SlotRanks[k], ranks[k])
	}
}

func (p *MotifProfile) NumTriads() int {
	return p.nTriads
}

func (p *MotifProfile) Count(id int) int {
	return p.Motifs[id].Count
}

// NonOverlapCount is a greedy, enumeration-order dependent count of instances
// that share no node with an earlier counted instance of the same motif. It
// is not a maximum independent set.
func (p *MotifProfile) NonOverlapCount(id int) int {
	return p.Motifs[id].NonOverlap
}

func (p *MotifProfile) SlotRanks(id int, slot int) []float64 {
	return p.Motifs[id].SlotRanks[slot]
}

// GroupRanks pools the ranks of all slots in one symmetry group.
func (p *MotifProfile) GroupRanks(id int, group []int) (ranks []float64) {
	for _, k := range group {
		ranks = append(ranks, p.Motifs[id].SlotRanks[k]...)
	}
	return ranks
}

//ids with at least one instance, ascending
func (p *MotifProfile) Present() (ids []int) {
	for id := 0; id < NumMotifs; id++ {
		if p.Motifs[id].Count > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

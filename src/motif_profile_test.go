package src

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForceTriads lists every node triple without an isolated member.
func bruteForceTriads(facts *GraphFacts) (triads map[[3]int]bool) {
	triads = make(map[[3]int]bool)
	n := facts.N()
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				ab := facts.Connected(a, b)
				ac := facts.Connected(a, c)
				bc := facts.Connected(b, c)
				if (ab || ac) && (ab || bc) && (ac || bc) {
					triads[[3]int{a, b, c}] = true
				}
			}
		}
	}
	return triads
}

func TestForEachTriad_CompleteAndUnique(t *testing.T) {
	cat := NewCatalog()
	rng := rand.New(rand.NewSource(7))
	for _, density := range []float64{0.05, 0.15, 0.4} {
		facts := NewGraphFacts(randomGold(rng, 25, density))
		want := bruteForceTriads(facts)
		got := make(map[[3]int]int)
		err := ForEachTriad(context.Background(), cat, facts, func(tr Triad) {
			nodes := tr.Nodes
			s := nodes[:]
			sort.Ints(s)
			got[[3]int{s[0], s[1], s[2]}]++
		})
		require.NoError(t, err)
		assert.Len(t, got, len(want), "density %v", density)
		for k, c := range got {
			assert.Equal(t, 1, c, "triad %v emitted %d times", k, c)
			assert.True(t, want[k], "triad %v is not connected", k)
		}
	}
}

func TestForEachTriad_CanonicalPattern(t *testing.T) {
	cat := NewCatalog()
	rng := rand.New(rand.NewSource(11))
	facts := NewGraphFacts(randomGold(rng, 20, 0.2))
	err := ForEachTriad(context.Background(), cat, facts, func(tr Triad) {
		assert.Equal(t, cat.Pattern(tr.ID), triadCode(facts, tr.Canonical()))
	})
	require.NoError(t, err)
}

func TestMotifProfile_RelabeledFeedForward(t *testing.T) {
	// G3 regulates G1 and G2, G1 regulates G2
	gs := NewGoldStandard("ffl", []string{"G1", "G2", "G3"}, [][2]string{{"G3", "G1"}, {"G3", "G2"}, {"G1", "G2"}}, false)
	facts := NewGraphFacts(gs)
	rm, err := NewRankMatrix(facts, rowsOf([2]string{"G3", "G1"}, [2]string{"G1", "G2"}, [2]string{"G2", "G3"}), false)
	require.NoError(t, err)
	p := NewMotifProfile(NewCatalog(), facts, rm)
	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, 1, p.NumTriads())
	assert.Equal(t, 1, p.Count(6))
	var seen Triad
	ForEachTriad(context.Background(), p.Catalog, facts, func(tr Triad) { seen = tr })
	assert.Equal(t, [3]int{2, 0, 1}, seen.Canonical())

	ranks, err := p.TriadRanks(seen)
	require.NoError(t, err)
	c := seen.Canonical()
	for k, e := range slotEnds {
		want, _ := rm.Rank(c[e[0]], c[e[1]])
		assert.Equal(t, want, ranks[k], "slot %d", k)
		assert.Equal(t, []float64{want}, p.SlotRanks(6, k))
	}
	// slot 0 is regulator -> middle, i.e. G3 -> G1, ranked first
	assert.Equal(t, 1.0, ranks[0])
	// G1 -> G2 was second
	assert.Equal(t, 0.8, ranks[3])
}

func TestMotifProfile_CountingOnly(t *testing.T) {
	facts := NewGraphFacts(chainGold())
	p := NewMotifProfile(NewCatalog(), facts, nil)
	require.True(t, p.CountingOnly())
	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, 1, p.Count(2))
	assert.Empty(t, p.SlotRanks(2, 0))
	assert.Equal(t, []int{2}, p.Present())

	var tr Triad
	ForEachTriad(context.Background(), p.Catalog, facts, func(x Triad) { tr = x })
	_, err := p.TriadRanks(tr)
	assert.ErrorIs(t, err, ErrNoPrediction)
}

func TestMotifProfile_NonOverlapping(t *testing.T) {
	star := NewGoldStandard("star", geneLabels(5), [][2]string{{"G1", "G2"}, {"G1", "G3"}, {"G1", "G4"}, {"G1", "G5"}}, false)
	p := NewMotifProfile(NewCatalog(), NewGraphFacts(star), nil)
	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, 6, p.Count(0))
	assert.Equal(t, 1, p.NonOverlapCount(0))
	assert.Equal(t, 6, p.NumTriads())

	twoChains := NewGoldStandard("chains", geneLabels(6), [][2]string{{"G1", "G2"}, {"G2", "G3"}, {"G4", "G5"}, {"G5", "G6"}}, false)
	p = NewMotifProfile(NewCatalog(), NewGraphFacts(twoChains), nil)
	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, 2, p.Count(2))
	assert.Equal(t, 2, p.NonOverlapCount(2))
}

func TestMotifProfile_Degrees(t *testing.T) {
	p := NewMotifProfile(NewCatalog(), NewGraphFacts(chainGold()), nil)
	require.NoError(t, p.Run(context.Background()))
	s := p.Motifs[2]
	// canonical cascade 0->1->2 is G1->G2->G3
	assert.Equal(t, [3]int{0, 1, 1}, s.InSum)
	assert.Equal(t, [3]int{1, 1, 0}, s.OutSum)
	assert.InDelta(t, 2.0/3, s.AvgIndegree(), 1e-12)
	assert.InDelta(t, 2.0/3, s.AvgOutdegree(), 1e-12)
}

func TestMotifProfile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewMotifProfile(NewCatalog(), NewGraphFacts(chainGold()), nil)
	assert.ErrorIs(t, p.Run(ctx), context.Canceled)
}

func TestMotifProfile_SelfLoopsIgnored(t *testing.T) {
	gs := NewGoldStandard("auto", []string{"G1", "G2", "G3"}, [][2]string{{"G1", "G1"}, {"G1", "G2"}, {"G2", "G3"}}, true)
	p := NewMotifProfile(NewCatalog(), NewGraphFacts(gs), nil)
	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, 1, p.Count(2))
	assert.Equal(t, 1, p.NumTriads())
}

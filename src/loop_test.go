package src

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a 3-cycle feeding a feedback pair
func loopGold() *GoldStandard {
	return NewGoldStandard("loops", geneLabels(5), [][2]string{
		{"G1", "G2"}, {"G2", "G3"}, {"G3", "G1"},
		{"G3", "G4"}, {"G4", "G5"}, {"G5", "G4"},
	}, false)
}

func TestComponents(t *testing.T) {
	component, sizes := Components(NewGraphFacts(loopGold()))
	assert.Equal(t, component[0], component[1])
	assert.Equal(t, component[0], component[2])
	assert.Equal(t, component[3], component[4])
	assert.NotEqual(t, component[0], component[3])
	assert.ElementsMatch(t, []int{3, 2}, sizes)
}

func TestComponents_SelfLoopIsNotACycle(t *testing.T) {
	gs := NewGoldStandard("self", geneLabels(2), [][2]string{{"G1", "G1"}, {"G1", "G2"}}, true)
	facts := NewGraphFacts(gs)
	component, sizes := Components(facts)
	assert.NotEqual(t, component[0], component[1])
	assert.Equal(t, []int{1, 1}, sizes)

	la := NewLoopAnalysis(facts, nil)
	assert.Equal(t, 1, la.Counts[AllTrueEdges])
	assert.Equal(t, 1, la.Counts[NotInCycle])
}

func TestLoopAnalysis_Counts(t *testing.T) {
	la := NewLoopAnalysis(NewGraphFacts(loopGold()), nil)
	assert.Equal(t, 5, la.Counts[InCycle])
	assert.Equal(t, 1, la.Counts[NotInCycle])
	assert.Equal(t, 2, la.Counts[FeedbackPair])
	assert.Equal(t, 6, la.Counts[AllTrueEdges])
	for c := LoopCategory(0); c < numLoopCategories; c++ {
		assert.Empty(t, la.Values[c])
	}
}

func TestLoopAnalysis_Ranks(t *testing.T) {
	facts := NewGraphFacts(loopGold())
	// the edge leaving the cycle first, the feedback pair last
	rm, err := NewRankMatrix(facts, rowsOf(
		[2]string{"G3", "G4"}, [2]string{"G1", "G2"}, [2]string{"G2", "G3"},
		[2]string{"G3", "G1"}, [2]string{"G4", "G5"}, [2]string{"G5", "G4"},
	), false)
	require.NoError(t, err)
	la := NewLoopAnalysis(facts, rm)
	assert.Equal(t, []float64{1.0}, la.Values[NotInCycle])
	assert.Len(t, la.Values[InCycle], 5)
	assert.InDeltaSlice(t, []float64{15.0 / 19, 14.0 / 19}, la.Values[FeedbackPair], 1e-12)

	var b LoopBatch
	b.Add(la)
	b.Add(la)
	results := b.Summarize()
	require.Len(t, results, int(numLoopCategories))
	all := results[AllTrueEdges]
	assert.Equal(t, 12, all.Count)
	assert.Equal(t, PValueNotComputed, all.PValue)
	assert.Equal(t, 0.0, all.Divergence)

	fb := results[FeedbackPair]
	assert.Equal(t, 4, fb.Count)
	assert.InDelta(t, 14.5/19, fb.Median, 1e-12)
	assert.InDelta(t, fb.Median-all.Median, fb.Divergence, 1e-12)
	assert.True(t, fb.PValue >= 0 && fb.PValue <= 1)
	assert.True(t, results[NotInCycle].Divergence > 0)
}

func TestLoopBatch_CountingOnly(t *testing.T) {
	var b LoopBatch
	b.Add(NewLoopAnalysis(NewGraphFacts(loopGold()), nil))
	for _, r := range b.Summarize() {
		assert.True(t, math.IsNaN(r.Median))
		assert.Equal(t, PValueNotComputed, r.PValue)
	}
	assert.Equal(t, "feedbackPair", FeedbackPair.String())
}

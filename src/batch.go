package src

import (
	"context"
	"log"
	"math"

	"github.com/gonum/stat"
	"golang.org/x/sync/errgroup"
)

// which analyses an evaluation runs
type Analyses struct {
	Score bool
	Motif bool
	Loop  bool
}

var AllAnalyses = Analyses{Score: true, Motif: true, Loop: true}

// Job is one gold standard with its (optional) parsed prediction.
type Job struct {
	Gold      *GoldStandard
	PredFile  string
	Rows      []PredictionRow
	HasPred   bool
	AllowSelf bool
}

// Evaluation owns everything computed for one network.
type Evaluation struct {
	Name    string
	Facts   *GraphFacts
	Ranks   *RankMatrix
	Profile *MotifProfile
	Loops   *LoopAnalysis
	Curve   *ScoreCurve
	// input-integrity failure of the prediction, rank dependent results are missing
	PredErr error
}

// Evaluate runs the requested analyses on one network. A broken prediction
// does not fail the evaluation: it is reported in PredErr and the motif and
// loop analyses fall back to counting only.
func Evaluate(ctx context.Context, cat *Catalog, job Job, analyses Analyses) (ev *Evaluation, err error) {
	facts := NewGraphFacts(job.Gold)
	ev = &Evaluation{Name: job.Gold.Name, Facts: facts}
	if job.HasPred {
		ev.Ranks, ev.PredErr = LoadRankMatrix(facts, job.PredFile, job.Rows, job.AllowSelf)
		if ev.PredErr != nil {
			log.Print("prediction skipped: ", ev.PredErr)
		}
	}
	if analyses.Motif {
		ev.Profile = NewMotifProfile(cat, facts, ev.Ranks)
		if err = ev.Profile.Run(ctx); err != nil {
			return nil, err
		}
	}
	if analyses.Loop {
		ev.Loops = NewLoopAnalysis(facts, ev.Ranks)
	}
	if analyses.Score && ev.Ranks != nil {
		ev.Curve, err = NewScoreCurve(ev.Ranks)
		if err != nil {
			log.Print(ev.Name, ": no score curve: ", err)
			err = nil
		}
	}
	return ev, nil
}

// PairCount is the number of usable gold standard / prediction pairs. A
// mismatch is logged and the batch continues with the shorter list; no
// predictions at all means counting only.
func PairCount(nGold int, nPred int) int {
	if nPred == 0 || nPred == nGold {
		return nGold
	}
	log.Printf("warning: %d gold standards but %d predictions, using the first %d pairs", nGold, nPred, minInt(nGold, nPred))
	return minInt(nGold, nPred)
}

// Batch pools evaluations of many networks. Medians and tests need the whole
// pooled sample, so Summarize is only meaningful after every Add.
type Batch struct {
	Catalog     *Catalog
	Background  [3][]float64
	Motifs      [NumMotifs]MotifStats
	Loops       LoopBatch
	Evaluations []*Evaluation
	avgIn       [NumMotifs][]float64
	avgOut      [NumMotifs][]float64
	weights     [NumMotifs][]float64
}

func NewBatch(cat *Catalog) *Batch {
	return &Batch{Catalog: cat}
}

// Run evaluates the jobs with up to threads goroutines and adds them in input
// order. Cancelling ctx stops the batch between networks and inside triad
// enumeration.
func (b *Batch) Run(ctx context.Context, jobs []Job, threads int, analyses Analyses) error {
	evs := make([]*Evaluation, len(jobs))
	g, gCtx := errgroup.WithContext(ctx)
	if threads < 1 {
		threads = 1
	}
	g.SetLimit(threads)
	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			ev, err := Evaluate(gCtx, b.Catalog, jobs[i], analyses)
			if err != nil {
				return err
			}
			evs[i] = ev
			log.Print("network ", i+1, "/", len(jobs), " evaluated: ", ev.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, ev := range evs {
		b.Add(ev)
	}
	return nil
}

func (b *Batch) Add(ev *Evaluation) {
	b.Evaluations = append(b.Evaluations, ev)
	if ev.Ranks != nil {
		trueR, backR, absentR := ev.Ranks.EdgeClassRanks()
		b.Background[TrueEdge] = append(b.Background[TrueEdge], trueR...)
		b.Background[BackEdge] = append(b.Background[BackEdge], backR...)
		b.Background[AbsentEdge] = append(b.Background[AbsentEdge], absentR...)
	}
	if ev.Profile != nil {
		for id := 0; id < NumMotifs; id++ {
			src := &ev.Profile.Motifs[id]
			dst := &b.Motifs[id]
			dst.Count += src.Count
			dst.NonOverlap += src.NonOverlap
			for k := 0; k < NumSlots; k++ {
				dst.SlotRanks[k] = append(dst.SlotRanks[k], src.SlotRanks[k]...)
			}
			for i := 0; i < 3; i++ {
				dst.InSum[i] += src.InSum[i]
				dst.OutSum[i] += src.OutSum[i]
			}
			if src.Count > 0 {
				b.avgIn[id] = append(b.avgIn[id], src.AvgIndegree())
				b.avgOut[id] = append(b.avgOut[id], src.AvgOutdegree())
				b.weights[id] = append(b.weights[id], float64(src.Count))
			}
		}
	}
	if ev.Loops != nil {
		b.Loops.Add(ev.Loops)
	}
}

type SlotResult struct {
	Slots      []int
	Role       EdgeRole
	N          int
	Median     float64
	Divergence float64
	PValue     float64
}

type MotifResult struct {
	ID           int
	Name         string
	Count        int
	NonOverlap   int
	AvgIndegree  float64
	AvgOutdegree float64
	Groups       []SlotResult
}

type BatchSummary struct {
	BackgroundMedian [3]float64
	BackgroundN      [3]int
	Motifs           []MotifResult
	Loops            []LoopResult
	AUPR             []float64
	AUROC            []float64
	MeanAUPR         float64
	MeanAUROC        float64
}

func (b *Batch) Summarize() (sum *BatchSummary) {
	sum = &BatchSummary{}
	var background [3][]float64
	for role := TrueEdge; role <= AbsentEdge; role++ {
		sum.BackgroundMedian[role], background[role] = CorrectedMedian(b.Background[role])
		sum.BackgroundN[role] = len(background[role])
	}
	for id := 0; id < NumMotifs; id++ {
		s := &b.Motifs[id]
		if s.Count == 0 {
			continue
		}
		res := MotifResult{
			ID:           id,
			Name:         b.Catalog.Name(id),
			Count:        s.Count,
			NonOverlap:   s.NonOverlap,
			AvgIndegree:  stat.Mean(b.avgIn[id], b.weights[id]),
			AvgOutdegree: stat.Mean(b.avgOut[id], b.weights[id]),
		}
		for _, group := range b.Catalog.Groups(id) {
			var pooled []float64
			for _, k := range group {
				pooled = append(pooled, s.SlotRanks[k]...)
			}
			role := b.Catalog.Role(id, group[0])
			median, corrected := CorrectedMedian(pooled)
			res.Groups = append(res.Groups, SlotResult{
				Slots:      group,
				Role:       role,
				N:          len(corrected),
				Median:     median,
				Divergence: median - sum.BackgroundMedian[role],
				PValue:     SignificanceTest(corrected, background[role]),
			})
		}
		sum.Motifs = append(sum.Motifs, res)
	}
	sum.Loops = b.Loops.Summarize()
	for _, ev := range b.Evaluations {
		if ev.Curve != nil {
			sum.AUPR = append(sum.AUPR, ev.Curve.AUPR)
			sum.AUROC = append(sum.AUROC, ev.Curve.AUROC)
		}
	}
	sum.MeanAUPR = math.NaN()
	sum.MeanAUROC = math.NaN()
	if len(sum.AUPR) > 0 {
		sum.MeanAUPR = stat.Mean(sum.AUPR, nil)
		sum.MeanAUROC = stat.Mean(sum.AUROC, nil)
	}
	return sum
}

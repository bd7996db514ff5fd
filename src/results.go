package src

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gonum/matrix/mat64"
)

func slotsLabel(slots []int) string {
	names := make([]string, len(slots))
	for i, k := range slots {
		names[i] = SlotName(k)
	}
	return strings.Join(names, ",")
}

func WriteMotifTable(outFile string, sum *BatchSummary) (err error) {
	var rowNames []string
	var values []float64
	for _, m := range sum.Motifs {
		for _, g := range m.Groups {
			rowNames = append(rowNames, fmt.Sprintf("%d\t%s\t%s\t%s", m.ID, m.Name, slotsLabel(g.Slots), g.Role))
			values = append(values, float64(g.N), g.Median, g.Divergence, g.PValue,
				float64(m.Count), float64(m.NonOverlap), m.AvgIndegree, m.AvgOutdegree)
		}
	}
	header := []string{"id", "motif", "edges", "role", "n", "median", "divergence", "pvalue", "instances", "nonOverlapping", "avgIndegree", "avgOutdegree"}
	if len(rowNames) == 0 {
		return WriteString(outFile, strings.Join(header, "\t")+"\n")
	}
	return WriteTable(outFile, header, rowNames, mat64.NewDense(len(rowNames), 8, values))
}

// WriteBackgroundTable writes the corrected background medians per edge role.
func WriteBackgroundTable(outFile string, sum *BatchSummary) (err error) {
	values := make([]float64, 0, 6)
	rowNames := make([]string, 0, 3)
	for role := TrueEdge; role <= AbsentEdge; role++ {
		rowNames = append(rowNames, role.String())
		values = append(values, float64(sum.BackgroundN[role]), sum.BackgroundMedian[role])
	}
	return WriteTable(outFile, []string{"role", "n", "median"}, rowNames, mat64.NewDense(3, 2, values))
}

func WriteLoopTable(outFile string, results []LoopResult) (err error) {
	rowNames := make([]string, len(results))
	values := make([]float64, 0, 4*len(results))
	for i, r := range results {
		rowNames[i] = r.Category.String()
		values = append(values, float64(r.Count), r.Median, r.Divergence, r.PValue)
	}
	header := []string{"category", "n", "median", "divergence", "pvalue"}
	if len(results) == 0 {
		return WriteString(outFile, strings.Join(header, "\t")+"\n")
	}
	return WriteTable(outFile, header, rowNames, mat64.NewDense(len(results), 4, values))
}

// WriteCurveTable writes one row per ranked position; the ROC origin is left
// out so all columns have the same length.
func WriteCurveTable(outFile string, sc *ScoreCurve) (err error) {
	n := len(sc.Recall)
	header := []string{"recall", "precision", "tpr", "fpr"}
	if n == 0 {
		return WriteString(outFile, strings.Join(header, "\t")+"\n")
	}
	data := mat64.NewDense(n, 4, nil)
	for i := 0; i < n; i++ {
		data.Set(i, 0, sc.Recall[i])
		data.Set(i, 1, sc.Precision[i])
		data.Set(i, 2, sc.TPR[i+1])
		data.Set(i, 3, sc.FPR[i+1])
	}
	return WriteTable(outFile, header, nil, data)
}

func WriteScoreTable(outFile string, evs []*Evaluation) (err error) {
	var rowNames []string
	var values []float64
	for _, ev := range evs {
		if ev.Curve == nil {
			continue
		}
		sc := ev.Curve
		rowNames = append(rowNames, ev.Name)
		values = append(values, float64(sc.P), float64(sc.T), float64(sc.L), sc.AUPR, sc.AUROC)
	}
	header := []string{"network", "P", "T", "L", "AUPR", "AUROC"}
	if len(rowNames) == 0 {
		return WriteString(outFile, strings.Join(header, "\t")+"\n")
	}
	return WriteTable(outFile, header, rowNames, mat64.NewDense(len(rowNames), 5, values))
}

// WriteCountTable writes the per-network motif instance counts, usable
// without predictions.
func WriteCountTable(outFile string, p *MotifProfile) (err error) {
	rowNames := make([]string, NumMotifs)
	data := mat64.NewDense(NumMotifs, 4, nil)
	for id := 0; id < NumMotifs; id++ {
		s := &p.Motifs[id]
		rowNames[id] = strconv.Itoa(id) + "\t" + p.Catalog.Name(id)
		data.Set(id, 0, float64(s.Count))
		data.Set(id, 1, float64(s.NonOverlap))
		data.Set(id, 2, s.AvgIndegree())
		data.Set(id, 3, s.AvgOutdegree())
	}
	return WriteTable(outFile, []string{"id", "motif", "instances", "nonOverlapping", "avgIndegree", "avgOutdegree"}, rowNames, data)
}

// SaveBatch writes every result table of a batch into resFolder. Failed
// writes are logged; the summary stays usable either way.
func SaveBatch(resFolder string, b *Batch, sum *BatchSummary, analyses Analyses) (nFailed int) {
	save := func(name string, err error) {
		if !saveOrLog(filepath.Join(resFolder, name), err) {
			nFailed++
		}
	}
	if analyses.Score {
		f := filepath.Join(resFolder, "scores.tsv")
		save("scores.tsv", WriteScoreTable(f, b.Evaluations))
		for _, ev := range b.Evaluations {
			if ev.Curve != nil {
				name := ev.Name + ".curve.tsv"
				save(name, WriteCurveTable(filepath.Join(resFolder, name), ev.Curve))
			}
		}
	}
	if analyses.Motif {
		save("motifs.tsv", WriteMotifTable(filepath.Join(resFolder, "motifs.tsv"), sum))
		save("background.tsv", WriteBackgroundTable(filepath.Join(resFolder, "background.tsv"), sum))
		for _, ev := range b.Evaluations {
			if ev.Profile != nil {
				name := ev.Name + ".motifCounts.tsv"
				save(name, WriteCountTable(filepath.Join(resFolder, name), ev.Profile))
			}
		}
	}
	if analyses.Loop {
		save("loops.tsv", WriteLoopTable(filepath.Join(resFolder, "loops.tsv"), sum.Loops))
	}
	return nFailed
}

package src

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadGoldStandard(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "net1_gold.tsv", "G1\tG2\t1\nG2\tG3\nG4\tG5\t0\n\nG3\tG3\t1\r\n")
	gs, err := ReadGoldStandard(file, false)
	require.NoError(t, err)
	assert.Equal(t, "net1_gold", gs.Name)
	assert.Equal(t, []string{"G1", "G2", "G3", "G4", "G5"}, gs.Labels)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 2}}, gs.Edges)

	facts := NewGraphFacts(gs)
	assert.Equal(t, 2, facts.NumEdges())
	assert.Equal(t, 20, facts.NumScorable())
}

func TestReadGoldStandard_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadGoldStandard(writeFile(t, dir, "a.tsv", "G1\tG2\nG3\n"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.tsv:2")

	_, err = ReadGoldStandard(writeFile(t, dir, "b.tsv", "G1\tG2\tx\n"), false)
	assert.Error(t, err)

	_, err = ReadGoldStandard(filepath.Join(dir, "missing.tsv"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadPrediction(t *testing.T) {
	dir := t.TempDir()
	rows, err := ReadPrediction(writeFile(t, dir, "pred.tsv", "G1\tG2\t0.5\n\nG2\tG3\t0.9\nG1\tG3\t0.5\n"))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, PredictionRow{Source: "G2", Target: "G3", Confidence: 0.9, Line: 3}, rows[1])

	SortByConfidence(rows)
	assert.Equal(t, []int{3, 1, 4}, []int{rows[0].Line, rows[1].Line, rows[2].Line})

	_, err = ReadPrediction(writeFile(t, dir, "bad.tsv", "G1\tG2\t0.5\nG1\tG3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.tsv:2")
}

func TestWriteTable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "table.tsv")
	data := mat64.NewDense(2, 2, []float64{1, 0.5, 0.25, 0})
	require.NoError(t, WriteTable(file, []string{"name", "a", "b"}, []string{"x", "y"}, data))
	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "name\ta\tb\nx\t1.000000\t0.500000\ny\t0.250000\t0.000000\n", string(content))
}

func TestInit(t *testing.T) {
	resFolder := filepath.Join(t.TempDir(), "res", "run1")
	logFile, err := Init(resFolder)
	require.NoError(t, err)
	defer logFile.Close()
	assert.FileExists(t, filepath.Join(resFolder, "log.txt"))
}

func TestSaveBatch(t *testing.T) {
	b := NewBatch(NewCatalog())
	require.NoError(t, b.Run(context.Background(), []Job{perfectJob(fflGold())}, 1, AllAnalyses))
	sum := b.Summarize()

	resFolder := t.TempDir()
	assert.Equal(t, 0, SaveBatch(resFolder, b, sum, AllAnalyses))
	for _, name := range []string{"scores.tsv", "ffl.curve.tsv", "motifs.tsv", "background.tsv", "ffl.motifCounts.tsv", "loops.tsv"} {
		assert.FileExists(t, filepath.Join(resFolder, name))
	}
	content, err := os.ReadFile(filepath.Join(resFolder, "motifs.tsv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	// header plus one row per slot of the only motif present
	assert.Len(t, lines, 1+NumSlots)
	assert.True(t, strings.HasPrefix(lines[1], "6\tfeed-forward loop\t"))

	// a regular file in place of the result folder makes every write fail
	notDir := writeFile(t, t.TempDir(), "file", "")
	assert.Equal(t, 4, SaveBatch(notDir, b, sum, Analyses{Motif: true, Loop: true}))
}

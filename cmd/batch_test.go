package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chenhao392/motifeval/src"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalyses(t *testing.T) {
	analyses, err := parseAnalyses([]string{"score", " loop", ""})
	require.NoError(t, err)
	assert.Equal(t, src.Analyses{Score: true, Loop: true}, analyses)

	_, err = parseAnalyses([]string{"motifs"})
	assert.Error(t, err)
}

func TestLoadJobs(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}
	gold1 := write("g1.tsv", "G1\tG2\nG2\tG3\n")
	gold2 := write("g2.tsv", "G1\tG2\n")
	pred1 := write("p1.tsv", "G2\tG3\t0.1\nG1\tG2\t0.9\n")
	pred2 := write("p2.tsv", "G1\tG2\n")

	jobs, err := loadJobs([]string{gold1, gold2}, []string{pred1, pred2}, false, true)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.True(t, jobs[0].HasPred)
	assert.Equal(t, "G1", jobs[0].Rows[0].Source)
	// unreadable prediction: network kept, counting only
	assert.False(t, jobs[1].HasPred)
	assert.Equal(t, "g2", jobs[1].Gold.Name)

	jobs, err = loadJobs([]string{gold1, gold2}, nil, false, false)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	_, err = loadJobs([]string{filepath.Join(dir, "missing.tsv")}, nil, false, false)
	assert.Error(t, err)
}

package src

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gonum/matrix/mat64"
)

const readBufSize = 32768000

// readLines calls fn with every line of a tab separated file and its 1-based
// line number.
func readLines(inFile string, fn func(line string, lineNo int) error) (err error) {
	file, err := os.Open(inFile)
	if err != nil {
		return err
	}
	defer file.Close()
	br := bufio.NewReaderSize(file, readBufSize)
	lineNo := 0
	for {
		line, isPrefix, err1 := br.ReadLine()
		if err1 == io.EOF {
			return nil
		}
		if err1 != nil {
			return err1
		}
		lineNo++
		if isPrefix {
			return fmt.Errorf("%s:%d: line too long", inFile, lineNo)
		}
		if err = fn(strings.TrimRight(string(line), "\r"), lineNo); err != nil {
			return err
		}
	}
}

// ReadGoldStandard reads "source<TAB>target[<TAB>value]" lines. Rows with a
// value of 0 only declare their nodes. Nodes are indexed in order of first
// appearance.
func ReadGoldStandard(inFile string, allowSelf bool) (gs *GoldStandard, err error) {
	name := strings.TrimSuffix(filepath.Base(inFile), filepath.Ext(inFile))
	gs = &GoldStandard{Name: name, Index: make(map[string]int), AllowSelf: allowSelf}
	err = readLines(inFile, func(line string, lineNo int) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		elements := strings.Split(line, "\t")
		if len(elements) < 2 {
			return fmt.Errorf("%s:%d: expected at least two columns", inFile, lineNo)
		}
		a := gs.addLabel(elements[0])
		b := gs.addLabel(elements[1])
		if len(elements) > 2 {
			v, err := strconv.ParseFloat(strings.TrimSpace(elements[2]), 64)
			if err != nil {
				return fmt.Errorf("%s:%d: %v", inFile, lineNo, err)
			}
			if v == 0.0 {
				return nil
			}
		}
		gs.Edges = append(gs.Edges, [2]int{a, b})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}

func (g *GoldStandard) addLabel(label string) int {
	idx, exist := g.Index[label]
	if !exist {
		idx = len(g.Labels)
		g.Index[label] = idx
		g.Labels = append(g.Labels, label)
	}
	return idx
}

// NewGoldStandard builds a gold standard from labels and labelled edges.
func NewGoldStandard(name string, labels []string, edges [][2]string, allowSelf bool) *GoldStandard {
	gs := &GoldStandard{Name: name, Index: make(map[string]int), AllowSelf: allowSelf}
	for _, l := range labels {
		gs.addLabel(l)
	}
	for _, e := range edges {
		gs.Edges = append(gs.Edges, [2]int{gs.addLabel(e[0]), gs.addLabel(e[1])})
	}
	return gs
}

// ReadPrediction reads "source<TAB>target<TAB>confidence" rows. Empty lines
// are skipped; anything else without exactly three fields is an error.
func ReadPrediction(inFile string) (rows []PredictionRow, err error) {
	err = readLines(inFile, func(line string, lineNo int) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		elements := strings.Split(line, "\t")
		if len(elements) != 3 {
			return fmt.Errorf("%s:%d: expected 3 columns, found %d", inFile, lineNo, len(elements))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(elements[2]), 64)
		if err != nil {
			return fmt.Errorf("%s:%d: %v", inFile, lineNo, err)
		}
		rows = append(rows, PredictionRow{Source: elements[0], Target: elements[1], Confidence: v, Line: lineNo})
		return nil
	})
	return rows, err
}

// SortByConfidence orders rows by decreasing confidence, keeping file order
// among equal values.
func SortByConfidence(rows []PredictionRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Confidence > rows[j].Confidence
	})
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteTable writes a header line and one row per data row, prefixed with the
// row name when rowNames is given.
func WriteTable(outFile string, header []string, rowNames []string, data *mat64.Dense) (err error) {
	file, err := os.OpenFile(outFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	wr := bufio.NewWriterSize(file, 192000)
	if len(header) > 0 {
		wr.WriteString(strings.Join(header, "\t"))
		wr.WriteString("\n")
	}
	nRow, nCol := data.Dims()
	for i := 0; i < nRow; i++ {
		if rowNames != nil {
			wr.WriteString(rowNames[i])
			wr.WriteString("\t")
		}
		for j := 0; j < nCol; j++ {
			if j > 0 {
				wr.WriteString("\t")
			}
			wr.WriteString(formatValue(data.At(i, j)))
		}
		wr.WriteString("\n")
	}
	return wr.Flush()
}

func WriteString(outFile string, content string) (err error) {
	return os.WriteFile(outFile, []byte(content), 0644)
}

// Init creates the result folder and opens its log file for appending.
func Init(resFolder string) (logFile *os.File, err error) {
	if err = os.MkdirAll(resFolder, 0755); err != nil {
		return nil, err
	}
	logFile, err = os.OpenFile(filepath.Join(resFolder, "log.txt"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return logFile, nil
}

// saveOrLog keeps a failed write from aborting the analysis.
func saveOrLog(outFile string, err error) bool {
	if err != nil {
		log.Print("could not write ", outFile, ": ", err)
		return false
	}
	return true
}

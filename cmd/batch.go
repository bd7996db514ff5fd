// Copyright © 2019 Hao Chen <chenhao.mymail@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.


package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/chenhao392/motifeval/src"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "all analyses over a batch of networks",
	Long: `

Score predictions, profile network motifs and feedback loops over a batch
of gold standards. Ranks of incomplete predictions are corrected before
medians are pooled over the batch.

 1) The gold standard file is tab-delimited with two or three columns.
    The first two columns define a directed edge (source, target). A
    third column of 0 declares the two genes without an edge.

 2) The prediction file is tab-delimited with three columns: source,
    target and confidence. Row order is the ranking unless --sort is
    given. Edges left out of the list are treated as tied at the end.

 Sample usages:
   motifeval batch --gold net1_gold.tsv,net2_gold.tsv \
                   --pred net1_pred.tsv,net2_pred.tsv --t 4 --analyses score,motif`,
	Run: func(cmd *cobra.Command, args []string) {
		analyses, err := parseAnalyses(viper.GetStringSlice("analyses"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := runBatch(analyses); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringSlice("analyses", []string{"score", "motif", "loop"}, "analyses to run: score, motif, loop")
	viper.BindPFlag("analyses", batchCmd.Flags().Lookup("analyses"))
}

func parseAnalyses(names []string) (analyses src.Analyses, err error) {
	for _, name := range names {
		switch strings.TrimSpace(name) {
		case "score":
			analyses.Score = true
		case "motif":
			analyses.Motif = true
		case "loop":
			analyses.Loop = true
		case "":
		default:
			return analyses, fmt.Errorf("unknown analysis %q", name)
		}
	}
	return analyses, nil
}

// loadJobs reads all gold standards and predictions up front. A prediction
// that cannot be read is logged and its network is evaluated without it.
func loadJobs(goldFiles []string, predFiles []string, allowSelf bool, sortConf bool) (jobs []src.Job, err error) {
	n := src.PairCount(len(goldFiles), len(predFiles))
	for i := 0; i < n; i++ {
		gs, err := src.ReadGoldStandard(goldFiles[i], allowSelf)
		if err != nil {
			return nil, err
		}
		job := src.Job{Gold: gs, AllowSelf: allowSelf}
		if i < len(predFiles) {
			rows, err := src.ReadPrediction(predFiles[i])
			if err != nil {
				log.Print("prediction skipped: ", err)
			} else {
				if sortConf {
					src.SortByConfidence(rows)
				}
				job.PredFile = predFiles[i]
				job.Rows = rows
				job.HasPred = true
			}
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func runBatch(analyses src.Analyses) (err error) {
	goldFiles := viper.GetStringSlice("gold")
	if len(goldFiles) == 0 {
		return fmt.Errorf("no gold standard given, see --gold")
	}
	resFolder := viper.GetString("res")

	//result dir and logging
	logFile, err := src.Init(resFolder)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Print("Program started.")
	if viper.GetBool("profile") {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(resFolder), profile.Quiet).Stop()
	}

	jobs, err := loadJobs(goldFiles, viper.GetStringSlice("pred"), viper.GetBool("self"), viper.GetBool("sort"))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	batch := src.NewBatch(src.NewCatalog())
	if err = batch.Run(ctx, jobs, viper.GetInt("t"), analyses); err != nil {
		log.Print("batch stopped: ", err)
		return err
	}
	sum := batch.Summarize()
	if nFailed := src.SaveBatch(resFolder, batch, sum, analyses); nFailed > 0 {
		fmt.Printf("%d result file(s) could not be written, see %s/log.txt\n", nFailed, resFolder)
	}
	printSummary(batch, sum, analyses)
	log.Print("Program finished.")
	return nil
}

func printSummary(batch *src.Batch, sum *src.BatchSummary, analyses src.Analyses) {
	if analyses.Score {
		for _, ev := range batch.Evaluations {
			if ev.Curve != nil {
				fmt.Printf("%s\tAUPR: %1.4f\tAUROC: %1.4f\n", ev.Name, ev.Curve.AUPR, ev.Curve.AUROC)
			}
		}
		if len(sum.AUPR) > 1 {
			fmt.Printf("mean\tAUPR: %1.4f\tAUROC: %1.4f\n", sum.MeanAUPR, sum.MeanAUROC)
		}
	}
	if analyses.Motif {
		for _, m := range sum.Motifs {
			fmt.Printf("%d\t%s\tinstances: %d\tnon-overlapping: %d\n", m.ID, m.Name, m.Count, m.NonOverlap)
		}
	}
	if analyses.Loop {
		for _, l := range sum.Loops {
			fmt.Printf("%s\tn: %d\tmedian: %1.4f\tp: %g\n", l.Category, l.Count, l.Median, l.PValue)
		}
	}
}

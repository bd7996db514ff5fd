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
	"fmt"
	"os"

	"github.com/chenhao392/motifeval/src"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "AUPR and AUROC of predictions",
	Long: `

Precision-recall and ROC curves of one or more predictions against their
gold standards. Incomplete predictions are completed analytically, assuming
the true edges left out are spread uniformly over the unscored pairs.

 Sample usages:
   motifeval score --gold net1_gold.tsv --pred net1_pred.tsv`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(viper.GetStringSlice("pred")) == 0 {
			cmd.Help()
			os.Exit(0)
		}
		if err := runBatch(src.Analyses{Score: true}); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// motifCmd represents the motif command
var motifCmd = &cobra.Command{
	Use:   "motif",
	Short: "network motif analysis",
	Long: `

Enumerate the three-node motifs of the gold standards. With predictions,
the median rank of every motif edge is compared with the background of
true, back and absent edges. Without predictions only instances are counted.

 Sample usages:
   motifeval motif --gold net1_gold.tsv,net2_gold.tsv --pred p1.tsv,p2.tsv
   motifeval motif --gold net1_gold.tsv`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBatch(src.Analyses{Motif: true}); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// loopCmd represents the loop command
var loopCmd = &cobra.Command{
	Use:   "loop",
	Short: "feedback loop analysis",
	Long: `

Compare the prediction ranks of true edges inside strongly connected
components and in two-gene feedback loops with all true edges.

 Sample usages:
   motifeval loop --gold net1_gold.tsv --pred net1_pred.tsv`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBatch(src.Analyses{Loop: true}); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// motifdefCmd represents the motifdef command
var motifdefCmd = &cobra.Command{
	Use:   "motifdef",
	Short: "print the motif definitions",
	Run: func(cmd *cobra.Command, args []string) {
		outFile, _ := cmd.Flags().GetString("o")
		defs := src.NewCatalog().Definitions()
		if outFile == "" {
			fmt.Print(defs)
			return
		}
		if err := src.WriteString(outFile, defs); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(motifCmd)
	rootCmd.AddCommand(loopCmd)
	rootCmd.AddCommand(motifdefCmd)
	motifdefCmd.Flags().String("o", "", "output file (default stdout)")
}

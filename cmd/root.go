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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "motifeval",
	Short: "gene network prediction evaluation",
	Long: `
                 _   _  __                  _ 
  _ __ ___   ___ | |_(_)/ _| _____   ____ _| |
 | '_ ' _ \ / _ \| __| | |_ / _ \ \ / / _' | |
 | | | | | | (_) | |_| |  _|  __/\ V / (_| | |
 |_| |_| |_|\___/ \__|_|_|  \___| \_/ \__,_|_|

Evaluate predicted gene regulatory networks against gold standards:
PR/ROC curves with exact AUPR/AUROC, network motif and feedback loop
analysis of prediction confidence.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.motifeval.yaml)")
	pf.StringSlice("gold", nil, "gold standard network file(s), comma separated")
	pf.StringSlice("pred", nil, "prediction file(s), comma separated,\nin the same order as the gold standards")
	pf.String("res", "result", "result folder")
	pf.Bool("self", false, "score autoregulatory (self-loop) predictions")
	pf.Bool("sort", false, "sort prediction rows by confidence\n(default false, row order is the ranking)")
	pf.Int("t", 1, "number of threads")
	pf.Bool("profile", false, "write a cpu profile to the result folder")
	for _, key := range []string{"gold", "pred", "res", "self", "sort", "t", "profile"} {
		viper.BindPFlag(key, pf.Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".motifeval")
	}
	viper.SetEnvPrefix("motifeval")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// Package cmd is for command line interactions with the
// demultiplex-scripts application
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "demultiplex",
	Short: `Prepare, QC and demultiplex paired-end amplicon sequencing runs.
Validate paired-end FASTA/FASTQ sets, count barcode and primer motifs per file,
and split reads by barcode via cutadapt`,
	Version: "0.2.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		stderr.Fatalf("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "echo external tool invocations to stderr")
	rootCmd.PersistentFlags().IntP("workers", "j", 0, "number of workers forwarded to external tools (default: all CPUs)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
}

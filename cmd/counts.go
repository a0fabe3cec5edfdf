package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/daniel-nimptsch/demultiplex-scripts/config"
	"github.com/daniel-nimptsch/demultiplex-scripts/internal/demux"
	"github.com/spf13/cobra"
)

// countsCmd counts reads per paired-end file with seqkit stats.
var countsCmd = &cobra.Command{
	Use:   "counts [input-dir]",
	Short: "Count reads in a directory of paired-end FASTA/FASTQ files",
	Long: `Count reads in a directory of paired-end FASTA/FASTQ files using "seqkit stats".

The per-file counts are printed with their share of the total. The raw seqkit
output is stored as seqkit_stats_raw.tsv in the input directory; with --output
the processed table is also written to <output>/seqkit_stats.tsv.`,
	Example: "  demultiplex counts ./run42 -o ./qc",
	Args:    cobra.ExactArgs(1),
	Run:     runCountsCmd,
}

func runCountsCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	inputDir := args[0]

	records, err := demux.ValidateInput(inputDir)
	if err != nil {
		stderr.Fatalf("Error: %v", err)
	}

	stats, err := demux.RunSeqkitStats(
		demux.Paths(records),
		conf.Workers,
		filepath.Join(inputDir, "seqkit_stats_raw.tsv"),
		conf.Verbose,
	)
	if err != nil {
		stderr.Fatalf("Error: %v", err)
	}

	if stats.TotalReads() == 0 {
		stderr.Fatal("Error: no reads found")
	}

	fmt.Print(stats.CountsString())

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := stats.WriteCountsTSV(filepath.Join(output, "seqkit_stats.tsv")); err != nil {
			stderr.Fatalf("Error: %v", err)
		}
	}
}

func init() {
	countsCmd.Flags().StringP("output", "o", "", "directory for the processed seqkit_stats.tsv (default: none written)")

	rootCmd.AddCommand(countsCmd)
}

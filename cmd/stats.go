package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/daniel-nimptsch/demultiplex-scripts/config"
	"github.com/daniel-nimptsch/demultiplex-scripts/internal/demux"
	"github.com/spf13/cobra"
)

// statsCmd counts barcode and primer motifs per input file and merges
// them with read counts into one report.
var statsCmd = &cobra.Command{
	Use:   "stats [input-dir]",
	Short: "Count reads and barcode/primer motif occurrences per paired-end file",
	Long: `Count reads and motif occurrences in a directory of paired-end FASTA/FASTQ files.

Read counts come from "seqkit stats" over the whole validated file set. Barcode
and primer motifs are located per file with "seqkit locate"; barcode hits only
count near a read's 5' end or within a trailing window of its 3' end, primer
hits count anywhere. The merged table has one row per file and one column per
pattern, with raw tool output persisted alongside for auditability.

The report is printed to stdout, or written to <output>/motif_counts.tsv when
--output is set.`,
	Example: "  demultiplex stats ./run42 --forward-barcode bc_fwd.fasta --reverse-barcode bc_rev.fasta --forward-primer p_fwd.fasta",
	Args:    cobra.ExactArgs(1),
	Run:     runStatsCmd,
}

func runStatsCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	output, _ := cmd.Flags().GetString("output")
	fwdBarcode, _ := cmd.Flags().GetString("forward-barcode")
	revBarcode, _ := cmd.Flags().GetString("reverse-barcode")
	fwdPrimer, _ := cmd.Flags().GetString("forward-primer")
	revPrimer, _ := cmd.Flags().GetString("reverse-primer")

	if fwdBarcode == "" && revBarcode == "" && fwdPrimer == "" && revPrimer == "" {
		stderr.Fatal("Error: at least one barcode or primer FASTA is required")
	}

	flags := &demux.MotifFlags{
		InputDir:        args[0],
		ArtifactDir:     output,
		ForwardBarcodes: fwdBarcode,
		ReverseBarcodes: revBarcode,
		ForwardPrimers:  fwdPrimer,
		ReversePrimers:  revPrimer,
	}

	report, failures, err := demux.MotifCounts(flags, conf)
	if err != nil {
		stderr.Fatalf("Error: %v", err)
	}

	if output != "" {
		reportPath := filepath.Join(output, "motif_counts.tsv")
		if err := report.WriteTSVFile(reportPath); err != nil {
			stderr.Fatalf("Error: %v", err)
		}
		stderr.Printf("wrote %s\n", reportPath)
	} else {
		fmt.Print(report.String())
	}

	// failed locator invocations leave their rows at zero; report them
	// rather than dropping them silently
	for _, f := range failures {
		stderr.Printf("warning: %s: %v\n", f.File, f.Err)
	}
}

func init() {
	statsCmd.Flags().StringP("forward-barcode", "f", "", "path to the forward barcode FASTA file")
	statsCmd.Flags().StringP("reverse-barcode", "r", "", "path to the reverse barcode FASTA file")
	statsCmd.Flags().StringP("forward-primer", "p", "", "path to the forward primer FASTA file")
	statsCmd.Flags().StringP("reverse-primer", "q", "", "path to the reverse primer FASTA file")
	statsCmd.Flags().StringP("output", "o", "", "output directory for motif_counts.tsv and raw tool output (default: print to stdout, artifacts in input dir)")

	rootCmd.AddCommand(statsCmd)
}

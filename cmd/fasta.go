package cmd

import (
	"github.com/daniel-nimptsch/demultiplex-scripts/internal/demux"
	"github.com/spf13/cobra"
)

// fastaCmd generates cutadapt barcode FASTAs from a samplesheet.
var fastaCmd = &cobra.Command{
	Use:   "fasta [samplesheet.tsv]",
	Short: "Generate barcode FASTA files from a samplesheet",
	Long: `Generate barcodes_fwd.fasta and barcodes_rev.fasta from a tab-delimited
samplesheet with the columns: sample name, forward barcode, reverse barcode,
forward primer, reverse primer. The FASTA record names are the sample names so
cutadapt pairs them under --pair-adapters.`,
	Example: "  demultiplex fasta samples.tsv -o ./barcodes --include-primers",
	Args:    cobra.ExactArgs(1),
	Run:     runFastaCmd,
}

func runFastaCmd(cmd *cobra.Command, args []string) {
	output, _ := cmd.Flags().GetString("output")
	includePrimers, _ := cmd.Flags().GetBool("include-primers")

	samples, err := demux.ReadSampleSheet(args[0])
	if err != nil {
		stderr.Fatalf("Error: %v", err)
	}

	fwd, rev, err := demux.BarcodeFastas(samples, output, includePrimers)
	if err != nil {
		stderr.Fatalf("Error: %v", err)
	}

	stderr.Printf("wrote %s and %s\n", fwd, rev)
}

func init() {
	fastaCmd.Flags().StringP("output", "o", ".", "directory for the output FASTA files")
	fastaCmd.Flags().Bool("include-primers", false, "append each sample's primer to its barcode")

	rootCmd.AddCommand(fastaCmd)
}

package cmd

import (
	"github.com/daniel-nimptsch/demultiplex-scripts/config"
	"github.com/daniel-nimptsch/demultiplex-scripts/internal/demux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// demuxCmd splits one paired-end file pair by barcode via cutadapt.
var demuxCmd = &cobra.Command{
	Use:   "demux [R1] [R2] [forward.fasta] [reverse.fasta]",
	Short: "Demultiplex a paired-end file pair by barcode with cutadapt",
	Long: `Demultiplex paired-end FASTQ files with cutadapt, using forward and reverse
barcode FASTA files ("demultiplex fasta" generates them from a samplesheet).
Each sample's reads land in demux-<name>_R1.fastq.gz and demux-<name>_R2.fastq.gz
in the output directory.`,
	Example: "  demultiplex demux s1_R1.fastq.gz s1_R2.fastq.gz barcodes_fwd.fasta barcodes_rev.fasta -o ./demuxed",
	Args:    cobra.ExactArgs(4),
	Run:     runDemuxCmd,
}

func runDemuxCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	output, _ := cmd.Flags().GetString("output")

	if err := demux.RunCutadapt(args[0], args[1], args[2], args[3], output, conf); err != nil {
		stderr.Fatalf("Error: %v", err)
	}
}

func init() {
	demuxCmd.Flags().StringP("output", "o", ".", "output directory for the demultiplexed files")
	demuxCmd.Flags().Float64P("error-rate", "e", 2, "maximum error rate passed to cutadapt")

	viper.BindPFlag("demux.error-rate", demuxCmd.Flags().Lookup("error-rate"))

	rootCmd.AddCommand(demuxCmd)
}

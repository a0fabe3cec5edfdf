package cmd

import (
	"os"

	"github.com/daniel-nimptsch/demultiplex-scripts/internal/demux"
	"github.com/spf13/cobra"
)

// renameCmd copies files to new names from a two-column pattern list.
var renameCmd = &cobra.Command{
	Use:   "rename [patterns.txt]",
	Short: "Copy files to new names from a pattern listing",
	Long: `Copy files into the output directory under new names. Each line of the
pattern listing holds the old path and the new name, separated by whitespace.
With no argument the listing is read from stdin.`,
	Example: "  demultiplex rename patterns.txt -o ./renamed",
	Args:    cobra.MaximumNArgs(1),
	Run:     runRenameCmd,
}

func runRenameCmd(cmd *cobra.Command, args []string) {
	output, _ := cmd.Flags().GetString("output")

	patterns := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			stderr.Fatalf("Error: failed to open pattern listing: %v", err)
		}
		defer f.Close()
		patterns = f
	}

	if err := demux.CopyRenamed(patterns, output); err != nil {
		stderr.Fatalf("Error: %v", err)
	}
}

func init() {
	renameCmd.Flags().StringP("output", "o", ".", "output directory for the copied files")

	rootCmd.AddCommand(renameCmd)
}

package demux

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// CountsString renders the per-file read counts as a fixed-width table
// with each file's share of the total and a closing Total row.
func (t *StatsTable) CountsString() string {
	total := t.TotalReads()

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "file\tnum_seqs\trel_num_seqs")
	for _, file := range t.files {
		rel := 0.0
		if total > 0 {
			rel = float64(t.stats[file].NumSeqs) / float64(total)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.6f\n", file, t.stats[file].NumSeqs, rel)
	}
	fmt.Fprintf(tw, "Total\t%d\t1.000000\n", total)
	tw.Flush()

	return sb.String()
}

// WriteCountsTSV writes the processed file/num_seqs table to path.
func (t *StatsTable) WriteCountsTSV(path string) error {
	var sb strings.Builder
	sb.WriteString("file\tnum_seqs\n")
	for _, file := range t.files {
		fmt.Fprintf(&sb, "%s\t%d\n", file, t.stats[file].NumSeqs)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write read counts to %s: %v", path, err)
	}

	return nil
}

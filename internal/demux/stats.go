package demux

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// seqkit stats -T column indexes
const (
	statsFileCol    = 0
	statsNumSeqsCol = 3
	statsAvgLenCol  = 6
)

// ReadStats is one file's row from seqkit stats.
type ReadStats struct {
	// NumSeqs is the total read count in the file
	NumSeqs int

	// AvgLen is the average read length in the file
	AvgLen float64
}

// StatsTable holds per-file read statistics keyed by file path.
// It is read-only once built.
type StatsTable struct {
	// files in the order seqkit reported them
	files []string

	stats map[string]ReadStats
}

// RunSeqkitStats invokes seqkit stats over the whole validated file
// set, persists the raw tab-separated output verbatim to rawOut and
// parses it into a StatsTable. The worker count is forwarded opaquely
// to seqkit.
func RunSeqkitStats(files []string, workers int, rawOut string, verbose bool) (*StatsTable, error) {
	args := append([]string{"stats"}, files...)
	args = append(args, "-T", "--quiet", "-j", strconv.Itoa(workers))

	statsCmd := exec.Command("seqkit", args...)
	if verbose {
		stderr.Println(strings.Join(statsCmd.Args, " "))
	}

	output, err := statsCmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("failed to execute seqkit stats: %v: %s", err, exitErr.Stderr)
		}
		return nil, fmt.Errorf("failed to execute seqkit stats: %v", err)
	}

	if rawOut != "" {
		if err := os.WriteFile(rawOut, output, 0644); err != nil {
			return nil, fmt.Errorf("failed to write raw seqkit stats to %s: %v", rawOut, err)
		}
	}

	return parseStats(string(output)), nil
}

// parseStats reads seqkit stats -T output into a StatsTable. Rows that
// don't have the expected columns are skipped, they reflect output
// drift between seqkit versions rather than bad input.
func parseStats(output string) *StatsTable {
	table := &StatsTable{stats: make(map[string]ReadStats)}

	for _, line := range strings.Split(output, "\n") {
		cols := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(cols) <= statsAvgLenCol || cols[statsFileCol] == "file" {
			continue
		}

		numSeqs, err := strconv.Atoi(strings.ReplaceAll(cols[statsNumSeqsCol], ",", ""))
		if err != nil {
			continue
		}
		avgLen, err := strconv.ParseFloat(strings.ReplaceAll(cols[statsAvgLenCol], ",", ""), 64)
		if err != nil {
			continue
		}

		file := cols[statsFileCol]
		table.files = append(table.files, file)
		table.stats[file] = ReadStats{NumSeqs: numSeqs, AvgLen: avgLen}
	}

	return table
}

// Files returns the file paths in the table, in seqkit's output order.
func (t *StatsTable) Files() []string {
	return t.files
}

// Stats returns the row for a file.
func (t *StatsTable) Stats(file string) (ReadStats, bool) {
	s, ok := t.stats[file]

	return s, ok
}

// TotalReads sums the read counts of every file in the table.
func (t *StatsTable) TotalReads() int {
	total := 0
	for _, s := range t.stats {
		total += s.NumSeqs
	}

	return total
}

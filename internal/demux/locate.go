package demux

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// seqkit locate column indexes: seqID, patternName, pattern, strand,
// start, end
const (
	locatePatternCol = 1
	locateStartCol   = 4
)

// Occurrence is one reported motif match inside a read: the pattern
// identifier seqkit matched and the 1-based position within the read.
type Occurrence struct {
	Pattern string
	Pos     int
}

// LocateInline runs seqkit locate over one read file with an inline,
// already deduplicated list of pattern sequences. The reported pattern
// identifier of each occurrence is the matched sequence itself.
func LocateInline(file string, seqs []string, workers int, rawOut string, verbose bool) ([]Occurrence, error) {
	return runLocate(file, []string{"-p", strings.Join(seqs, ",")}, workers, rawOut, verbose)
}

// LocateFile runs seqkit locate over one read file with a FASTA pattern
// collection. The reported pattern identifier of each occurrence is the
// pattern's name in the collection.
func LocateFile(file, patternFasta string, workers int, rawOut string, verbose bool) ([]Occurrence, error) {
	return runLocate(file, []string{"-f", patternFasta}, workers, rawOut, verbose)
}

// runLocate invokes seqkit locate, persists its raw tab-separated
// output verbatim to rawOut for auditability and parses the occurrence
// records. -d makes seqkit honor degenerate nucleotide codes in the
// patterns; validating the pattern alphabet is seqkit's job, not ours.
func runLocate(file string, patternArgs []string, workers int, rawOut string, verbose bool) ([]Occurrence, error) {
	args := []string{"locate", "-d", "-j", strconv.Itoa(workers)}
	args = append(args, patternArgs...)
	args = append(args, file)

	locateCmd := exec.Command("seqkit", args...)
	if verbose {
		stderr.Println(strings.Join(locateCmd.Args, " "))
	}

	output, err := locateCmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("failed to execute seqkit locate on %s: %v: %s", file, err, exitErr.Stderr)
		}
		return nil, fmt.Errorf("failed to execute seqkit locate on %s: %v", file, err)
	}

	if rawOut != "" {
		if err := os.WriteFile(rawOut, output, 0644); err != nil {
			return nil, fmt.Errorf("failed to write raw locate output to %s: %v", rawOut, err)
		}
	}

	return parseOccurrences(string(output)), nil
}

// parseOccurrences reads seqkit locate output into Occurrences.
// Malformed rows (wrong column count, non-numeric position) are skipped
// silently: they represent locator output drift, not domain errors, and
// must not abort the run.
func parseOccurrences(output string) []Occurrence {
	var occs []Occurrence

	for _, line := range strings.Split(output, "\n") {
		cols := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(cols) <= locateStartCol || cols[locatePatternCol] == "patternName" {
			continue
		}

		pos, err := strconv.Atoi(cols[locateStartCol])
		if err != nil {
			continue
		}

		occs = append(occs, Occurrence{Pattern: cols[locatePatternCol], Pos: pos})
	}

	return occs
}

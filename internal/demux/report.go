package demux

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

// ReportTable is the final per-file QC artifact: total reads and
// average read length joined with one integer column per pattern.
// Row and column order are fixed at aggregation time.
type ReportTable struct {
	// Files are the row keys, in validated-input order
	Files []string

	// Columns are the pattern column names, barcodes then primers,
	// each in load order
	Columns []string

	// NumSeqs and AvgLen hold the per-file read statistics
	NumSeqs map[string]int
	AvgLen  map[string]float64

	// Counts maps file -> pattern name -> occurrence tally
	Counts map[string]map[string]int
}

// Aggregate merges per-file read statistics with the motif count table
// into one report, keyed by file path. The count table was initialized
// with every file and pattern up front, so no row is dropped for being
// sparse; a file the stats tool skipped still appears with zero reads.
func Aggregate(stats *StatsTable, counts *CountTable) *ReportTable {
	report := &ReportTable{
		Files:   append([]string{}, counts.Files()...),
		Columns: append([]string{}, counts.Columns()...),
		NumSeqs: make(map[string]int),
		AvgLen:  make(map[string]float64),
		Counts:  make(map[string]map[string]int),
	}

	for _, file := range report.Files {
		s, _ := stats.Stats(file)
		report.NumSeqs[file] = s.NumSeqs
		report.AvgLen[file] = s.AvgLen

		row := make(map[string]int, len(report.Columns))
		for _, col := range report.Columns {
			row[col] = counts.Count(file, col)
		}
		report.Counts[file] = row
	}

	return report
}

// header returns the full column header, file and stats columns first.
func (r *ReportTable) header() []string {
	return append([]string{"file", "num_seqs", "avg_len"}, r.Columns...)
}

// row returns one file's cells as strings, in header order.
func (r *ReportTable) row(file string) []string {
	cells := []string{
		file,
		strconv.Itoa(r.NumSeqs[file]),
		strconv.FormatFloat(r.AvgLen[file], 'f', 1, 64),
	}
	for _, col := range r.Columns {
		cells = append(cells, strconv.Itoa(r.Counts[file][col]))
	}

	return cells
}

// WriteTSV writes the report as tab-separated values.
func (r *ReportTable) WriteTSV(w io.Writer) error {
	if _, err := fmt.Fprintln(w, strings.Join(r.header(), "\t")); err != nil {
		return err
	}

	for _, file := range r.Files {
		if _, err := fmt.Fprintln(w, strings.Join(r.row(file), "\t")); err != nil {
			return err
		}
	}

	return nil
}

// WriteTSVFile writes the report to path as tab-separated values.
func (r *ReportTable) WriteTSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %v", path, err)
	}
	defer f.Close()

	if err := r.WriteTSV(f); err != nil {
		return fmt.Errorf("failed to write report to %s: %v", path, err)
	}

	return nil
}

// String renders the report as a human-readable fixed-width table.
// Cell values are identical to the TSV rendition, only the padding
// differs.
func (r *ReportTable) String() string {
	var sb strings.Builder

	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(r.header(), "\t"))
	for _, file := range r.Files {
		fmt.Fprintln(tw, strings.Join(r.row(file), "\t"))
	}
	tw.Flush()

	return sb.String()
}

// ParseReport reads a tab-separated report back into a ReportTable.
// Inverse of WriteTSV.
func ParseReport(rd io.Reader) (*ReportTable, error) {
	scanner := bufio.NewScanner(rd)

	if !scanner.Scan() {
		return nil, fmt.Errorf("report is empty")
	}
	header := strings.Split(scanner.Text(), "\t")
	if len(header) < 3 || header[0] != "file" || header[1] != "num_seqs" || header[2] != "avg_len" {
		return nil, fmt.Errorf("unexpected report header: %q", scanner.Text())
	}

	report := &ReportTable{
		Columns: header[3:],
		NumSeqs: make(map[string]int),
		AvgLen:  make(map[string]float64),
		Counts:  make(map[string]map[string]int),
	}

	for scanner.Scan() {
		cells := strings.Split(scanner.Text(), "\t")
		if len(cells) != len(header) {
			return nil, fmt.Errorf("report row has %d cells, expected %d: %q", len(cells), len(header), scanner.Text())
		}

		file := cells[0]
		numSeqs, err := strconv.Atoi(cells[1])
		if err != nil {
			return nil, fmt.Errorf("bad num_seqs for %s: %v", file, err)
		}
		avgLen, err := strconv.ParseFloat(cells[2], 64)
		if err != nil {
			return nil, fmt.Errorf("bad avg_len for %s: %v", file, err)
		}

		row := make(map[string]int, len(report.Columns))
		for i, col := range report.Columns {
			count, err := strconv.Atoi(cells[3+i])
			if err != nil {
				return nil, fmt.Errorf("bad count for %s/%s: %v", file, col, err)
			}
			row[col] = count
		}

		report.Files = append(report.Files, file)
		report.NumSeqs[file] = numSeqs
		report.AvgLen[file] = avgLen
		report.Counts[file] = row
	}

	return report, scanner.Err()
}

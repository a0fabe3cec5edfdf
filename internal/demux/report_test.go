package demux

import (
	"reflect"
	"strings"
	"testing"
)

// buildReport assembles the report of the spec'd end-to-end scenario:
// two paired files, one barcode hit at position 1 in the first file and
// two primer hits anywhere in it, nothing in its mate.
func buildReport(t *testing.T) *ReportTable {
	t.Helper()

	stats := parseStats(seqkitStatsOutput)
	barcodes := testPatternSet("BC1", "ACGTACGT")
	primers := testPatternSet("P1", "TTAACC")

	classifier := NewClassifier(barcodes, primers, 3, 10)
	table := classifier.NewCountTable([]string{"s1_1.fastq", "s1_2.fastq"})

	classifier.CountBarcodes(table, "s1_1.fastq", []Occurrence{{Pattern: "ACGTACGT", Pos: 1}}, 150)
	classifier.CountPrimers(table, "s1_1.fastq", []Occurrence{
		{Pattern: "P1", Pos: 12},
		{Pattern: "P1", Pos: 97},
	})

	return Aggregate(stats, table)
}

func Test_Aggregate(t *testing.T) {
	report := buildReport(t)

	if !reflect.DeepEqual(report.Files, []string{"s1_1.fastq", "s1_2.fastq"}) {
		t.Fatalf("Files = %v", report.Files)
	}
	if !reflect.DeepEqual(report.Columns, []string{"BC1", "P1"}) {
		t.Fatalf("Columns = %v", report.Columns)
	}

	tests := []struct {
		file    string
		numSeqs int
		bc1     int
		p1      int
	}{
		{"s1_1.fastq", 10, 1, 2},
		{"s1_2.fastq", 10, 0, 0},
	}

	for _, tt := range tests {
		if got := report.NumSeqs[tt.file]; got != tt.numSeqs {
			t.Errorf("NumSeqs[%s] = %d, want %d", tt.file, got, tt.numSeqs)
		}
		if got := report.Counts[tt.file]["BC1"]; got != tt.bc1 {
			t.Errorf("Counts[%s][BC1] = %d, want %d", tt.file, got, tt.bc1)
		}
		if got := report.Counts[tt.file]["P1"]; got != tt.p1 {
			t.Errorf("Counts[%s][P1] = %d, want %d", tt.file, got, tt.p1)
		}
	}
}

func Test_ReportTable_roundTrip(t *testing.T) {
	report := buildReport(t)

	var sb strings.Builder
	if err := report.WriteTSV(&sb); err != nil {
		t.Fatalf("WriteTSV() error = %v", err)
	}

	parsed, err := ParseReport(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("ParseReport() error = %v", err)
	}

	if !reflect.DeepEqual(parsed, report) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", parsed, report)
	}
}

// the printed table and the TSV must hold identical cell values, only
// the padding differs
func Test_ReportTable_renditionsAgree(t *testing.T) {
	report := buildReport(t)

	var sb strings.Builder
	if err := report.WriteTSV(&sb); err != nil {
		t.Fatalf("WriteTSV() error = %v", err)
	}
	tsvLines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	prettyLines := strings.Split(strings.TrimSpace(report.String()), "\n")

	if len(tsvLines) != len(prettyLines) {
		t.Fatalf("row count differs: tsv %d, pretty %d", len(tsvLines), len(prettyLines))
	}
	for i := range tsvLines {
		tsvCells := strings.Split(tsvLines[i], "\t")
		prettyCells := strings.Fields(prettyLines[i])
		if !reflect.DeepEqual(tsvCells, prettyCells) {
			t.Errorf("row %d differs: tsv %v, pretty %v", i, tsvCells, prettyCells)
		}
	}
}

func Test_ParseReport_badInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong header", "path\tnum_seqs\tavg_len\tBC1\n"},
		{"short row", "file\tnum_seqs\tavg_len\tBC1\ns1_1.fastq\t10\t150.0\n"},
		{"non-numeric count", "file\tnum_seqs\tavg_len\tBC1\ns1_1.fastq\t10\t150.0\tmany\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseReport(strings.NewReader(tt.input)); err == nil {
				t.Error("ParseReport() did not fail")
			}
		})
	}
}

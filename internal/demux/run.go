package demux

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/daniel-nimptsch/demultiplex-scripts/config"
)

// MotifFlags are the inputs of one motif counting run.
type MotifFlags struct {
	// InputDir holds the paired-end read files
	InputDir string

	// ArtifactDir is where raw tool output and the report land.
	// Defaults to InputDir.
	ArtifactDir string

	// ForwardBarcodes and ReverseBarcodes are FASTA paths with named
	// barcode motifs. Either may be empty.
	ForwardBarcodes string
	ReverseBarcodes string

	// ForwardPrimers and ReversePrimers are FASTA paths with named
	// primer motifs. Either may be empty.
	ForwardPrimers string
	ReversePrimers string
}

// FileFailure records one file whose locator invocation failed. Its
// report row stays at zero; other files keep processing.
type FileFailure struct {
	File string
	Err  error
}

// MotifCounts runs the whole pipeline: validate the paired-end input
// set, gather read statistics over it, locate barcode and primer
// motifs per file, classify occurrences positionally and aggregate
// everything into one report.
//
// Locator invocations run one goroutine per file. Each file writes its
// own raw artifacts (named by the file's stem) and its own count table
// row, so the goroutines never contend. A failed invocation is
// recorded, not fatal.
func MotifCounts(flags *MotifFlags, conf *config.Config) (*ReportTable, []FileFailure, error) {
	records, err := ValidateInput(flags.InputDir)
	if err != nil {
		return nil, nil, err
	}
	files := Paths(records)

	artifactDir := flags.ArtifactDir
	if artifactDir == "" {
		artifactDir = flags.InputDir
	} else if err := os.MkdirAll(artifactDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create output directory %s: %v", artifactDir, err)
	}

	barcodes, err := LoadPatterns(flags.ForwardBarcodes, flags.ReverseBarcodes)
	if err != nil {
		return nil, nil, err
	}
	primers, err := LoadPatterns(flags.ForwardPrimers, flags.ReversePrimers)
	if err != nil {
		return nil, nil, err
	}

	stats, err := RunSeqkitStats(
		files,
		conf.Workers,
		filepath.Join(artifactDir, "seqkit_stats_raw.tsv"),
		conf.Verbose,
	)
	if err != nil {
		return nil, nil, err
	}

	classifier := NewClassifier(barcodes, primers, conf.Barcode.HeadMargin, conf.Barcode.TailWindow)
	table := classifier.NewCountTable(files)

	barcodeSeqs := barcodes.UniqueSeqs()
	primerFasta := ""
	if primers.Len() > 0 {
		// hand the locator the whole primer collection in one file
		primerFasta, err = writePrimerFasta(primers, artifactDir)
		if err != nil {
			return nil, nil, err
		}
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []FileFailure
	)

	for _, file := range files {
		wg.Add(1)
		go func(file string) {
			defer wg.Done()

			fail := func(err error) {
				mu.Lock()
				failures = append(failures, FileFailure{File: file, Err: err})
				mu.Unlock()
			}

			if len(barcodeSeqs) > 0 {
				rawOut := filepath.Join(artifactDir, stem(file)+"_barcode_stats.tsv")
				occs, err := LocateInline(file, barcodeSeqs, conf.Workers, rawOut, conf.Verbose)
				if err != nil {
					fail(err)
				} else {
					avg := 0.0
					if s, ok := stats.Stats(file); ok {
						avg = s.AvgLen
					}
					classifier.CountBarcodes(table, file, occs, avg)
				}
			}

			if primers.Len() > 0 {
				rawOut := filepath.Join(artifactDir, stem(file)+"_primer_stats.tsv")
				occs, err := LocateFile(file, primerFasta, conf.Workers, rawOut, conf.Verbose)
				if err != nil {
					fail(err)
				} else {
					classifier.CountPrimers(table, file, occs)
				}
			}
		}(file)
	}
	wg.Wait()

	sort.Slice(failures, func(i, j int) bool { return failures[i].File < failures[j].File })

	return Aggregate(stats, table), failures, nil
}

// writePrimerFasta writes the primer collection to a FASTA file inside
// dir so seqkit locate can consume it with -f.
func writePrimerFasta(primers *PatternSet, dir string) (string, error) {
	path := filepath.Join(dir, "primers.fasta")

	entries := make([]FastaEntry, 0, primers.Len())
	for _, name := range primers.Names() {
		seq, _ := primers.Seq(name)
		entries = append(entries, FastaEntry{Name: name, Seq: seq})
	}

	if err := WriteFasta(path, entries); err != nil {
		return "", fmt.Errorf("failed to write primer collection: %v", err)
	}

	return path, nil
}

package demux

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shenwei356/xopen"
)

// FastaEntry is one named sequence to be written to FASTA.
type FastaEntry struct {
	Name string
	Seq  string
}

// WriteFasta writes entries to path as FASTA. A .gz suffix on path
// compresses the output transparently.
func WriteFasta(path string, entries []FastaEntry) error {
	w, err := xopen.Wopen(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", entry.Name, entry.Seq); err != nil {
			w.Close()
			return fmt.Errorf("failed to write %s: %v", path, err)
		}
	}

	return w.Close()
}

// BarcodeFastas writes the forward and reverse barcode FASTA files
// cutadapt consumes for demultiplexing, one record per sample, named
// by the sample so both files pair up under --pair-adapters. With
// includePrimers the sample's primer is appended to its barcode,
// matching amplicons that carry the primer directly after the barcode.
func BarcodeFastas(samples []Sample, outDir string, includePrimers bool) (fwd, rev string, err error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory %s: %v", outDir, err)
	}

	fwdEntries := make([]FastaEntry, 0, len(samples))
	revEntries := make([]FastaEntry, 0, len(samples))
	for _, s := range samples {
		fwdSeq := s.ForwardBarcode
		revSeq := s.ReverseBarcode
		if includePrimers {
			fwdSeq += s.ForwardPrimer
			revSeq += s.ReversePrimer
		}

		fwdEntries = append(fwdEntries, FastaEntry{Name: s.Name, Seq: fwdSeq})
		revEntries = append(revEntries, FastaEntry{Name: s.Name, Seq: revSeq})
	}

	fwd = filepath.Join(outDir, "barcodes_fwd.fasta")
	rev = filepath.Join(outDir, "barcodes_rev.fasta")

	if err := WriteFasta(fwd, fwdEntries); err != nil {
		return "", "", err
	}
	if err := WriteFasta(rev, revEntries); err != nil {
		return "", "", err
	}

	return fwd, rev, nil
}

package demux

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// writeFastaFile creates a FASTA file with the given content in a temp dir.
func writeFastaFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}

	return path
}

func Test_LoadPatterns(t *testing.T) {
	path := writeFastaFile(t, "barcodes.fasta", ">BC1\nACGTACGT\n>BC2\nTTGGAACC\n")

	set, err := LoadPatterns(path)
	if err != nil {
		t.Fatalf("LoadPatterns() error = %v", err)
	}

	if !reflect.DeepEqual(set.Names(), []string{"BC1", "BC2"}) {
		t.Errorf("Names() = %v, want [BC1 BC2]", set.Names())
	}
	if seq, _ := set.Seq("BC1"); seq != "ACGTACGT" {
		t.Errorf("Seq(BC1) = %q, want ACGTACGT", seq)
	}
	if seq, _ := set.Seq("BC2"); seq != "TTGGAACC" {
		t.Errorf("Seq(BC2) = %q, want TTGGAACC", seq)
	}
}

func Test_LoadPatterns_multipleCollections(t *testing.T) {
	fwd := writeFastaFile(t, "fwd.fasta", ">F1\nAAAA\n")
	rev := writeFastaFile(t, "rev.fasta", ">R1\nCCCC\n")

	// empty paths are skipped, mirroring optional CLI flags
	set, err := LoadPatterns(fwd, "", rev)
	if err != nil {
		t.Fatalf("LoadPatterns() error = %v", err)
	}

	if !reflect.DeepEqual(set.Names(), []string{"F1", "R1"}) {
		t.Errorf("Names() = %v, want [F1 R1]", set.Names())
	}
}

func Test_LoadPatterns_duplicateName(t *testing.T) {
	path := writeFastaFile(t, "dup.fasta", ">BC1\nACGT\n>BC1\nTTTT\n")

	if _, err := LoadPatterns(path); err == nil {
		t.Error("LoadPatterns() did not fail on a duplicate pattern name")
	} else if !strings.Contains(err.Error(), "BC1") {
		t.Errorf("LoadPatterns() error %q does not name the duplicate", err)
	}
}

// duplicate sequences under different names are legal: both names stay
// distinct tracked motifs, deduplication only happens at the locator
// boundary
func Test_PatternSet_duplicateSequences(t *testing.T) {
	path := writeFastaFile(t, "dupseq.fasta", ">BC1\nacgtACGT\n>BC2\nACGTACGT\n>BC3\nGGGG\n")

	set, err := LoadPatterns(path)
	if err != nil {
		t.Fatalf("LoadPatterns() error = %v", err)
	}

	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
	if got := set.UniqueSeqs(); !reflect.DeepEqual(got, []string{"ACGTACGT", "GGGG"}) {
		t.Errorf("UniqueSeqs() = %v, want [ACGTACGT GGGG]", got)
	}
	if got := set.NamesForSeq("ACGTACGT"); !reflect.DeepEqual(got, []string{"BC1", "BC2"}) {
		t.Errorf("NamesForSeq(ACGTACGT) = %v, want [BC1 BC2]", got)
	}
	if got := set.NamesForSeq("gggg"); !reflect.DeepEqual(got, []string{"BC3"}) {
		t.Errorf("NamesForSeq(gggg) = %v, want [BC3]", got)
	}
}

func Test_PatternSet_empty(t *testing.T) {
	set, err := LoadPatterns()
	if err != nil {
		t.Fatalf("LoadPatterns() error = %v", err)
	}

	if set.Len() != 0 || len(set.UniqueSeqs()) != 0 {
		t.Errorf("empty set is not empty: %v", set.Names())
	}

	var nilSet *PatternSet
	if nilSet.Len() != 0 || nilSet.Contains("BC1") {
		t.Error("nil PatternSet should behave as empty")
	}
}

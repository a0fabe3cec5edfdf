package demux

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_CopyRenamed(t *testing.T) {
	srcDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "renamed")

	src := filepath.Join(srcDir, "demux-s1_R1.fastq.gz")
	if err := os.WriteFile(src, []byte("reads"), 0644); err != nil {
		t.Fatal(err)
	}

	patterns := strings.NewReader(
		src + " sampleA_R1.fastq.gz\n" +
			filepath.Join(srcDir, "missing.fastq") + " sampleB_R1.fastq.gz\n")

	// the missing source is logged and skipped, not fatal
	if err := CopyRenamed(patterns, outDir); err != nil {
		t.Fatalf("CopyRenamed() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(outDir, "sampleA_R1.fastq.gz"))
	if err != nil {
		t.Fatalf("copied file missing: %v", err)
	}
	if string(content) != "reads" {
		t.Errorf("copied content = %q, want %q", content, "reads")
	}

	if _, err := os.Stat(filepath.Join(outDir, "sampleB_R1.fastq.gz")); !os.IsNotExist(err) {
		t.Error("missing source should not produce an output file")
	}
}

func Test_CopyRenamed_badLine(t *testing.T) {
	if err := CopyRenamed(strings.NewReader("only-one-column\n"), t.TempDir()); err == nil {
		t.Error("CopyRenamed() did not fail on a malformed pattern line")
	}
}

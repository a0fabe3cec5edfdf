package demux

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/daniel-nimptsch/demultiplex-scripts/config"
)

// RunCutadapt splits one paired-end file pair by barcode with cutadapt.
// The forward and reverse barcode FASTAs are anchored at the 5' end of
// each mate (-g/-G ^file:), pair-adapters keeps both mates assigned to
// the same sample, and each sample lands in
// demux-<name>_R1.fastq.gz / demux-<name>_R2.fastq.gz under outDir.
// The trimming itself is entirely cutadapt's.
func RunCutadapt(r1, r2, fwdFasta, revFasta, outDir string, conf *config.Config) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %v", outDir, err)
	}

	cutadaptCmd := exec.Command(
		"cutadapt",
		"-e", strconv.FormatFloat(conf.Demux.ErrorRate, 'f', -1, 64),
		"--pair-adapters",
		"--cores", strconv.Itoa(conf.Workers),
		"-g", "^file:"+fwdFasta,
		"-G", "^file:"+revFasta,
		"-o", filepath.Join(outDir, "demux-{name}_R1.fastq.gz"),
		"-p", filepath.Join(outDir, "demux-{name}_R2.fastq.gz"),
		r1,
		r2,
	)

	if conf.Verbose {
		stderr.Println(strings.Join(cutadaptCmd.Args, " "))
	}

	if output, err := cutadaptCmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to execute cutadapt on %s, %s: %v: %s", r1, r2, err, string(output))
	}

	return nil
}

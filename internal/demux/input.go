// Package demux validates paired-end sequencing inputs and builds
// per-file motif count reports from external seqkit invocations.
package demux

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// pairedEndRe matches paired-end read files: base name, the literal
	// read digit 1 or 2, an extension and an optional .gz marker.
	// Example: sample_R1.fastq.gz or sample_2.fq
	pairedEndRe = regexp.MustCompile(`^(.+)([12])\.([^.]+)(\.gz)?$`)
)

// acceptedEndings are the recognized FASTA/FASTQ file extensions,
// compared after lower-casing and stripping a .gz marker.
var acceptedEndings = map[string]bool{
	"fasta": true,
	"fastq": true,
	"fq":    true,
	"fa":    true,
	"fna":   true,
}

// FileRecord is one paired-end read file parsed from its filename.
type FileRecord struct {
	// Path is the full path to the file
	Path string

	// Base is the sample name shared by both mates of a pair
	Base string

	// Slot is the read number, 1 or 2
	Slot int

	// Ending is the file's type ending, eg "fastq" or "fastq.gz"
	Ending string
}

// NoInputFilesError is returned when a directory holds no paired-end
// FASTA/FASTQ files at all.
type NoInputFilesError struct {
	Dir string
}

func (e *NoInputFilesError) Error() string {
	return fmt.Sprintf("no valid FASTA/FASTQ files found in %s", e.Dir)
}

// MixedTypeError is returned when the matched files span more than one
// extension (ignoring compression).
type MixedTypeError struct {
	Endings []string
}

func (e *MixedTypeError) Error() string {
	return fmt.Sprintf(
		"multiple file endings found: %s. All files should have the same ending",
		strings.Join(e.Endings, ", "),
	)
}

// IncompletePairError is returned when at least one sample base name is
// missing one of its two read slots. Bases lists every offender.
type IncompletePairError struct {
	Bases []string
}

func (e *IncompletePairError) Error() string {
	return fmt.Sprintf("incomplete paired-end files found for: %s", strings.Join(e.Bases, ", "))
}

// ValidateInput scans dir for paired-end FASTA/FASTQ files and returns
// them as FileRecords, sorted by filename. Files that do not look like
// paired-end reads are ignored. The directory is re-read on every call.
//
// It fails when no files match, when the matched files mix extensions,
// or when any base name is missing one of its two read slots.
func ValidateInput(dir string) ([]FileRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %v", dir, err)
	}

	var records []FileRecord
	endings := make(map[string]bool)
	slots := make(map[string]map[int]bool)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		groups := pairedEndRe.FindStringSubmatch(entry.Name())
		if groups == nil {
			continue
		}

		base, slotDigit, ending, gz := groups[1], groups[2], strings.ToLower(groups[3]), groups[4]
		if !acceptedEndings[ending] {
			continue
		}

		slot := 1
		if slotDigit == "2" {
			slot = 2
		}

		records = append(records, FileRecord{
			Path:   filepath.Join(dir, entry.Name()),
			Base:   base,
			Slot:   slot,
			Ending: ending + gz,
		})

		endings[ending] = true
		if slots[base] == nil {
			slots[base] = make(map[int]bool)
		}
		slots[base][slot] = true
	}

	if len(records) == 0 {
		return nil, &NoInputFilesError{Dir: dir}
	}

	if len(endings) > 1 {
		var es []string
		for e := range endings {
			es = append(es, e)
		}
		sort.Strings(es)

		return nil, &MixedTypeError{Endings: es}
	}

	var incomplete []string
	for base, s := range slots {
		if !s[1] || !s[2] {
			incomplete = append(incomplete, base)
		}
	}
	if len(incomplete) > 0 {
		sort.Strings(incomplete)

		return nil, &IncompletePairError{Bases: incomplete}
	}

	return records, nil
}

// Paths returns just the file paths of the validated records, in order.
func Paths(records []FileRecord) []string {
	paths := make([]string, len(records))
	for i, r := range records {
		paths[i] = r.Path
	}

	return paths
}

// stem returns a file's name without its directory, compression marker
// or extension. Used to name the per-file raw locator artifacts.
func stem(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")

	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}

	return name
}

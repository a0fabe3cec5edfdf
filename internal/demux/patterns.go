package demux

import (
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/bio/seqio/fastx"
)

// PatternSet is an ordered collection of named motif sequences
// (barcodes or primers) loaded from FASTA. Names are unique within a
// set; sequences may repeat under different names and every name stays
// a distinct tracked motif.
type PatternSet struct {
	// names in load order, used for report column ordering
	names []string

	// seqs maps a pattern name to its nucleotide sequence
	seqs map[string]string
}

// LoadPatterns reads name+sequence pairs from one or more FASTA files
// (gzip is handled transparently) into a single PatternSet. A name seen
// twice is a hard error: silently overwriting would misreport counts.
// Sequences are passed through unchanged, degenerate codes included.
func LoadPatterns(paths ...string) (*PatternSet, error) {
	set := &PatternSet{seqs: make(map[string]string)}

	for _, path := range paths {
		if path == "" {
			continue
		}

		reader, err := fastx.NewDefaultReader(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read pattern collection %s: %v", path, err)
		}

		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("failed to parse pattern collection %s: %v", path, err)
			}

			name := string(record.Name)
			if _, seen := set.seqs[name]; seen {
				return nil, fmt.Errorf("duplicate pattern name %q in %s", name, path)
			}

			set.names = append(set.names, name)
			set.seqs[name] = string(record.Seq.Seq)
		}
	}

	return set, nil
}

// Names returns the pattern names in load order.
func (p *PatternSet) Names() []string {
	if p == nil {
		return nil
	}

	return p.names
}

// Len returns the number of named patterns in the set.
func (p *PatternSet) Len() int {
	if p == nil {
		return 0
	}

	return len(p.names)
}

// Seq returns the sequence stored under name.
func (p *PatternSet) Seq(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	seq, ok := p.seqs[name]

	return seq, ok
}

// Contains reports whether name is a pattern in the set.
func (p *PatternSet) Contains(name string) bool {
	_, ok := p.Seq(name)

	return ok
}

// UniqueSeqs returns the set's sequences upper-cased and deduplicated,
// in order of first appearance. Deduplication happens only here, at the
// locator boundary, so the same sequence isn't searched for twice;
// counts are expanded back to every name via NamesForSeq.
func (p *PatternSet) UniqueSeqs() []string {
	if p == nil {
		return nil
	}

	var unique []string
	seen := make(map[string]bool)
	for _, name := range p.names {
		seq := strings.ToUpper(p.seqs[name])
		if seen[seq] {
			continue
		}
		seen[seq] = true
		unique = append(unique, seq)
	}

	return unique
}

// NamesForSeq returns every pattern name whose sequence matches seq,
// case-insensitively, in load order.
func (p *PatternSet) NamesForSeq(seq string) []string {
	if p == nil {
		return nil
	}

	seq = strings.ToUpper(seq)
	var names []string
	for _, name := range p.names {
		if strings.ToUpper(p.seqs[name]) == seq {
			names = append(names, name)
		}
	}

	return names
}

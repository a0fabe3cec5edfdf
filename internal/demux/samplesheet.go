package demux

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/shenwei356/xopen"
)

// Sample is one row of a plain samplesheet: a sample name, its barcode
// pair and its primer pair.
type Sample struct {
	Name           string
	ForwardBarcode string
	ReverseBarcode string
	ForwardPrimer  string
	ReversePrimer  string
}

// ReadSampleSheet parses a tab-delimited samplesheet with the columns
// sample name, forward barcode, reverse barcode, forward primer and
// reverse primer. Comment lines and a literal header row are skipped.
// Gzip'd sheets are handled transparently.
func ReadSampleSheet(path string) ([]Sample, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open samplesheet %s: %v", path, err)
	}
	defer r.Close()

	var samples []Sample
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, "\t")
		if lineNum == 1 && strings.EqualFold(strings.TrimSpace(cols[0]), "sample") {
			continue // header row
		}
		if len(cols) < 5 {
			return nil, fmt.Errorf("samplesheet %s line %d: expected 5 tab-separated columns, got %d", path, lineNum, len(cols))
		}

		name := strings.TrimSpace(cols[0])
		if name == "" {
			return nil, fmt.Errorf("samplesheet %s line %d: empty sample name", path, lineNum)
		}
		if seen[name] {
			return nil, fmt.Errorf("samplesheet %s line %d: duplicate sample name %q", path, lineNum, name)
		}
		seen[name] = true

		samples = append(samples, Sample{
			Name:           name,
			ForwardBarcode: strings.TrimSpace(cols[1]),
			ReverseBarcode: strings.TrimSpace(cols[2]),
			ForwardPrimer:  strings.TrimSpace(cols[3]),
			ReversePrimer:  strings.TrimSpace(cols[4]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samplesheet %s: %v", path, err)
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("samplesheet %s holds no samples", path)
	}

	return samples, nil
}

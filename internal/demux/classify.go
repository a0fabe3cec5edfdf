package demux

// Classifier turns raw locator occurrences into per-file, per-pattern
// counts. Barcodes are positional: a hit counts only near a read's 5'
// end or within a trailing window of its 3' end (barcodes show up in
// forward or reverse-complement orientation at either end). Primers
// count wherever they occur.
type Classifier struct {
	barcodes *PatternSet
	primers  *PatternSet

	// headMargin is the largest 1-based position still counted as
	// "near the 5' end"
	headMargin int

	// tailWindow is the width of the 3' window, anchored at the
	// file's average read length
	tailWindow int
}

// NewClassifier returns a Classifier for the given barcode and primer
// sets with the configured positional margins.
func NewClassifier(barcodes, primers *PatternSet, headMargin, tailWindow int) *Classifier {
	return &Classifier{
		barcodes:   barcodes,
		primers:    primers,
		headMargin: headMargin,
		tailWindow: tailWindow,
	}
}

// CountTable accumulates motif counts, one row per file and one column
// per pattern name (barcodes first, then primers, each in load order).
// Every cell is initialized to zero up front so files without any
// occurrence still produce full rows. Rows never share state, so
// distinct files may be filled from concurrent goroutines.
type CountTable struct {
	files   []string
	columns []string
	cells   map[string]map[string]int
}

// NewCountTable builds a zero-filled CountTable for the given files.
func (c *Classifier) NewCountTable(files []string) *CountTable {
	columns := append([]string{}, c.barcodes.Names()...)
	columns = append(columns, c.primers.Names()...)

	cells := make(map[string]map[string]int, len(files))
	for _, file := range files {
		row := make(map[string]int, len(columns))
		for _, col := range columns {
			row[col] = 0
		}
		cells[file] = row
	}

	return &CountTable{
		files:   append([]string{}, files...),
		columns: columns,
		cells:   cells,
	}
}

// CountBarcodes tallies barcode occurrences for one file. Occurrences
// outside both positional windows are discarded, not errors. The
// occurrence's pattern identifier is the matched sequence (barcodes are
// handed to the locator as a deduplicated inline list), so each hit is
// expanded to every barcode name sharing that sequence.
func (c *Classifier) CountBarcodes(t *CountTable, file string, occs []Occurrence, avgLen float64) {
	row := t.cells[file]
	if row == nil {
		return
	}

	tailStart := avgLen - float64(c.tailWindow)
	for _, occ := range occs {
		if occ.Pos > c.headMargin && float64(occ.Pos) < tailStart {
			continue
		}

		for _, name := range c.barcodes.NamesForSeq(occ.Pattern) {
			row[name]++
		}
	}
}

// CountPrimers tallies primer occurrences for one file. No positional
// filter applies. Occurrences whose pattern name isn't in the primer
// set are skipped.
func (c *Classifier) CountPrimers(t *CountTable, file string, occs []Occurrence) {
	row := t.cells[file]
	if row == nil {
		return
	}

	for _, occ := range occs {
		if !c.primers.Contains(occ.Pattern) {
			continue
		}
		row[occ.Pattern]++
	}
}

// Files returns the table's row keys in validated-input order.
func (t *CountTable) Files() []string {
	return t.files
}

// Columns returns the pattern column names in report order.
func (t *CountTable) Columns() []string {
	return t.columns
}

// Count returns the tally for one file and pattern.
func (t *CountTable) Count(file, pattern string) int {
	return t.cells[file][pattern]
}

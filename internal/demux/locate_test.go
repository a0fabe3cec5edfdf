package demux

import (
	"reflect"
	"testing"
)

func Test_parseOccurrences(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []Occurrence
	}{
		{
			"regular locate output",
			"seqID\tpatternName\tpattern\tstrand\tstart\tend\n" +
				"read1\tBC1\tACGT\t+\t1\t4\n" +
				"read2\tBC1\tACGT\t-\t140\t143\n" +
				"read2\tP1\tTTAACC\t+\t33\t38\n",
			[]Occurrence{{"BC1", 1}, {"BC1", 140}, {"P1", 33}},
		},
		{
			"malformed rows are skipped",
			"seqID\tpatternName\tpattern\tstrand\tstart\tend\n" +
				"read1\tBC1\tACGT\t+\tnot-a-number\t4\n" + // non-numeric position
				"read1\tBC1\n" + // wrong column count
				"\n" +
				"read9\tBC2\tGGTT\t+\t2\t5\n",
			[]Occurrence{{"BC2", 2}},
		},
		{
			"no hits",
			"seqID\tpatternName\tpattern\tstrand\tstart\tend\n",
			nil,
		},
		{
			"empty output",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseOccurrences(tt.output); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseOccurrences() = %v, want %v", got, tt.want)
			}
		})
	}
}

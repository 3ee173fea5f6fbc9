package sample

import (
	"log"

	"github.com/carbocation/gpsvis/gpsdb"
)

// PassingQC are the QC statuses whose lanes are usable.
var PassingQC = map[string]struct{}{
	"Pass":     {},
	"PassPlus": {},
}

// UniqueSample marks the one analysis row kept per biological sample.
const UniqueSample = "UNIQUE"

// QualityFilter drops QC rows that failed QC and analysis rows that are
// resequenced duplicates. It runs before the join so the join has less to do.
func QualityFilter(qc, analysis *gpsdb.Table) {
	dropped := qc.Filter(func(r gpsdb.Row) bool {
		_, ok := PassingQC[r[ColQC]]
		return ok
	})
	log.Printf("%s: dropped %d lanes that did not pass QC, %d remain\n", qc.Name, dropped, len(qc.Rows))

	dropped = analysis.Filter(func(r gpsdb.Row) bool {
		return r[ColDuplicate] == UniqueSample
	})
	log.Printf("%s: dropped %d duplicate lanes, %d remain\n", analysis.Name, dropped, len(analysis.Rows))
}

package sample

import (
	"gopkg.in/guregu/null.v3"

	"github.com/carbocation/gpsvis/gpsdb"
)

// Sample is one sequenced isolate after the three tables have been joined.
type Sample struct {
	PublicName string
	LaneID     string
	QC         string

	Country     string
	Region      string
	Institution string

	// YearText is the collection year as stored; Year is its parsed value and
	// is invalid when YearText is not a recognizable year.
	YearText string
	Year     null.Int

	VaccinePeriod string
	ManifestType  string
	UnderFive     string
	Published     string

	Serotype      string
	SerotypeColor string
	Lineage       string
	LineageColor  string

	// SIR holds the raw susceptibility call per antibiotic and Resistant the
	// encoded 0/1 value, both in configured antibiotic order. Resistant is
	// nil until EncodeResistance has run.
	SIR       []string
	Resistant []int
}

// FromTable converts joined rows into samples. antibiotics names the columns
// holding resistance calls, in the order they should be kept.
func FromTable(t *gpsdb.Table, antibiotics []string) []Sample {
	out := make([]Sample, 0, len(t.Rows))
	for _, r := range t.Rows {
		s := Sample{
			PublicName:    r[ColPublicName],
			LaneID:        r[ColLaneID],
			QC:            r[ColQC],
			Country:       r[ColCountry],
			Region:        r[ColRegion],
			Institution:   r[ColInstitution],
			YearText:      r[ColYear],
			Year:          ParseYear(r[ColYear]),
			VaccinePeriod: r[ColVaccinePeriod],
			ManifestType:  r[ColManifestType],
			UnderFive:     r[ColUnderFive],
			Published:     r[ColPublished],
			Serotype:      r[ColSerotype],
			SerotypeColor: r[ColSerotypeColor],
			Lineage:       r[ColLineage],
			LineageColor:  r[ColLineageColor],
			SIR:           make([]string, len(antibiotics)),
		}
		for i, a := range antibiotics {
			s.SIR[i] = r[a]
		}
		out = append(out, s)
	}

	return out
}

package aggregate

import (
	"github.com/montanaflynn/stats"

	"github.com/carbocation/gpsvis/sample"
)

// ResistanceRates returns, for every lineage with samples in the age group,
// the percentage of those samples resistant to each antibiotic, rounded to
// two decimals. Lineages without samples in the age group are absent rather
// than reported as zero.
func ResistanceRates(samples []sample.Sample, ageFlag string, nAntibiotics int) LineageRates {
	sums := map[string][]int{}
	totals := map[string]int{}
	for _, s := range samples {
		if s.UnderFive != ageFlag {
			continue
		}
		sum, ok := sums[s.Lineage]
		if !ok {
			sum = make([]int, nAntibiotics)
			sums[s.Lineage] = sum
		}
		for i := 0; i < nAntibiotics && i < len(s.Resistant); i++ {
			sum[i] += s.Resistant[i]
		}
		totals[s.Lineage]++
	}

	out := LineageRates{}
	for lineage, sum := range sums {
		out[lineage] = percentages(sum, totals[lineage])
	}

	return out
}

func percentages(resistant []int, total int) []float64 {
	out := make([]float64, len(resistant))
	if total == 0 {
		return out
	}

	for i, r := range resistant {
		pct, err := stats.Round(100*float64(r)/float64(total), 2)
		if err != nil {
			continue
		}
		out[i] = pct
	}

	return out
}

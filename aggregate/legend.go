package aggregate

import (
	"sort"

	"github.com/carbocation/gpsvis/sample"
)

// Legends collects every distinct (id, color) pair of serotypes and lineages
// across all samples, sorted by id and then color. An id seen with two colors
// appears twice.
func Legends(samples []sample.Sample) DomainRange {
	serotypes := map[[2]string]struct{}{}
	lineages := map[[2]string]struct{}{}
	for _, s := range samples {
		serotypes[[2]string{s.Serotype, s.SerotypeColor}] = struct{}{}
		lineages[[2]string{s.Lineage, s.LineageColor}] = struct{}{}
	}

	return DomainRange{
		Serotype: legend(serotypes),
		Lineage:  legend(lineages),
	}
}

func legend(pairs map[[2]string]struct{}) Legend {
	sorted := make([][2]string, 0, len(pairs))
	for p := range pairs {
		sorted = append(sorted, p)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] {
			return sorted[i][0] < sorted[j][0]
		}
		return sorted[i][1] < sorted[j][1]
	})

	out := Legend{Domain: make([]string, 0, len(sorted)), Range: make([]string, 0, len(sorted))}
	for _, p := range sorted {
		out.Domain = append(out.Domain, p[0])
		out.Range = append(out.Range, p[1])
	}

	return out
}

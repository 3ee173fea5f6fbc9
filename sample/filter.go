package sample

import (
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/carbocation/gpsvis"
)

// Manifestation types.
const (
	IPD      = "IPD"
	Carriage = "Carriage"
)

// Values of the under-five flag and the publication flag.
const (
	Yes = "Y"
	No  = "N"
)

// Predicate is one named inclusion rule. A sample is retained only if every
// predicate keeps it.
type Predicate struct {
	Description string
	Keep        func(s *Sample) bool
}

// Selection returns the inclusion rules applied to joined samples. The rules
// are independent of each other, so their order only affects the drop counts
// that get logged.
func Selection(cfg gpsvis.Config) []Predicate {
	countries := stringSet(cfg.CountryLabels()...)

	return []Predicate{
		{"country is configured", func(s *Sample) bool {
			_, ok := countries[s.Country]
			return ok
		}},
		{"manifest type is IPD or Carriage", func(s *Sample) bool {
			return s.ManifestType == IPD || s.ManifestType == Carriage
		}},
		{"serotype is assigned", func(s *Sample) bool {
			return startsWithNumber(s.Serotype)
		}},
		{"lineage is assigned", func(s *Sample) bool {
			return startsWithNumber(s.Lineage)
		}},
		{"vaccine period is known", func(s *Sample) bool {
			return s.VaccinePeriod != cfg.UnknownPeriod
		}},
		{"under-five flag is Y or N", func(s *Sample) bool {
			return s.UnderFive == Yes || s.UnderFive == No
		}},
		{"sample is published", func(s *Sample) bool {
			return s.Published == Yes
		}},
		{"submitting institution is accepted for the country", func(s *Sample) bool {
			institution, restricted := cfg.InstitutionOverrides[s.Country]
			return !restricted || s.Institution == institution
		}},
	}
}

// Apply narrows samples to those every predicate keeps. The input slice is
// reused.
func Apply(samples []Sample, predicates []Predicate) []Sample {
	for _, p := range predicates {
		kept := samples[:0]
		for i := range samples {
			if p.Keep(&samples[i]) {
				kept = append(kept, samples[i])
			}
		}
		if dropped := len(samples) - len(kept); dropped > 0 {
			log.Printf("Dropped %d samples failing %q, %d remain\n", dropped, p.Description, len(kept))
		}
		samples = kept
	}

	return samples
}

// ReclassifyRegions moves samples whose region is listed into a country of
// the same name, e.g. HONG KONG out of CHINA. It must run before anything
// partitions samples by country.
func ReclassifyRegions(samples []Sample, regions []string) {
	promote := stringSet(regions...)
	for i := range samples {
		if _, ok := promote[samples[i].Region]; ok {
			samples[i].Country = samples[i].Region
		}
	}
}

// StripPeriodSuffixes drops anything from the first "-" of each vaccine
// period, so PostPCV13-3yr becomes PostPCV13.
func StripPeriodSuffixes(samples []Sample) {
	for i := range samples {
		if idx := strings.Index(samples[i].VaccinePeriod, "-"); idx >= 0 {
			samples[i].VaccinePeriod = samples[i].VaccinePeriod[:idx]
		}
	}
}

func startsWithNumber(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsNumber(r)
}

func stringSet(values ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

package aggregate

import (
	"fmt"
	"log"
	"sort"

	"github.com/carbocation/gpsvis"
	"github.com/carbocation/gpsvis/period"
	"github.com/carbocation/gpsvis/sample"
)

// View names.
const (
	ViewAll      = "all"
	ViewDisease  = "disease"
	ViewCarriage = "carriage"
)

// View restricts samples to a set of manifestation types.
type View struct {
	Name  string
	Types []string
}

// Views lists every manifestation-type view in the document.
var Views = []View{
	{ViewAll, []string{sample.IPD, sample.Carriage}},
	{ViewDisease, []string{sample.IPD}},
	{ViewCarriage, []string{sample.Carriage}},
}

func (v View) includes(s *sample.Sample) bool {
	for _, t := range v.Types {
		if s.ManifestType == t {
			return true
		}
	}
	return false
}

// AgeGroup is one value of the under-five flag and its position in the
// document.
type AgeGroup struct {
	Index int
	Flag  string
}

func (a AgeGroup) Key() string { return fmt.Sprintf("age%d", a.Index) }

var AgeGroups = []AgeGroup{
	{0, sample.Yes},
	{1, sample.No},
}

// Build assembles the document. Every configured country must have at least
// one sample; otherwise a *gpsvis.CountryDataMissingError is returned and no
// document is produced.
func Build(samples []sample.Sample, cfg gpsvis.Config) (*Document, error) {
	doc := &Document{
		Summary:     map[string]*CountrySummary{},
		Global:      map[string]*GlobalView{},
		Country:     map[string]*CountryView{},
		DomainRange: Legends(samples),
		Antibiotics: append([]string{}, cfg.Antibiotics...),
	}

	for _, country := range cfg.Countries {
		inCountry := ForCountry(samples, country.Label)
		if len(inCountry) == 0 {
			return nil, &gpsvis.CountryDataMissingError{Label: country.Label}
		}

		periods := period.Classify(inCountry, cfg.PrePCVLabel)
		ages := PresentAgeGroups(inCountry)

		summary := &CountrySummary{Periods: periods, Link: country.Link}
		for _, age := range ages {
			summary.AgeGroups[age.Index] = true
		}
		doc.Summary[country.Code] = summary

		global := newGlobalView()
		countryView := newCountryView()
		latest := periods[len(periods)-1].Raw
		for _, view := range Views {
			global.set(view.Name, CountGroups(inCountry, func(s *sample.Sample) bool {
				return view.includes(s) && s.VaccinePeriod == latest
			}))

			byAge := countryView.breakdown(view.Name)
			for _, age := range ages {
				byPeriod := PeriodBreakdown{}
				for i, p := range periods {
					byPeriod[fmt.Sprintf("period%d", i)] = CountGroups(inCountry, func(s *sample.Sample) bool {
						return view.includes(s) && s.VaccinePeriod == p.Raw && s.UnderFive == age.Flag
					})
				}
				byAge[age.Key()] = byPeriod
			}
		}

		for _, age := range ages {
			countryView.Resistance[age.Key()] = ResistanceRates(inCountry, age.Flag, len(cfg.Antibiotics))
		}

		doc.Global[country.Code] = global
		doc.Country[country.Code] = countryView

		log.Printf("%s (%s): %d samples, %d periods, %d age groups\n", country.Label, country.Code, len(inCountry), len(periods), len(ages))
	}

	return doc, nil
}

// ForCountry returns the samples whose country is label.
func ForCountry(samples []sample.Sample, label string) []sample.Sample {
	out := []sample.Sample{}
	for _, s := range samples {
		if s.Country == label {
			out = append(out, s)
		}
	}
	return out
}

// PresentAgeGroups returns the age groups with at least one sample.
func PresentAgeGroups(samples []sample.Sample) []AgeGroup {
	out := []AgeGroup{}
	for _, age := range AgeGroups {
		for _, s := range samples {
			if s.UnderFive == age.Flag {
				out = append(out, age)
				break
			}
		}
	}
	return out
}

type serotypeLineage struct {
	serotype, lineage string
}

// CountGroups counts the samples kept by keep per serotype-lineage pair,
// ordered by serotype and then lineage.
func CountGroups(samples []sample.Sample, keep func(*sample.Sample) bool) []GroupCount {
	counts := map[serotypeLineage]int{}
	for i := range samples {
		if keep(&samples[i]) {
			counts[serotypeLineage{samples[i].Serotype, samples[i].Lineage}]++
		}
	}

	keys := make([]serotypeLineage, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].serotype != keys[j].serotype {
			return keys[i].serotype < keys[j].serotype
		}
		return keys[i].lineage < keys[j].lineage
	})

	out := make([]GroupCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, GroupCount{Group: k.serotype + "-" + k.lineage, Count: counts[k]})
	}

	return out
}

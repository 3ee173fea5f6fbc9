// Package period derives the vaccine-era periods shown for a country: which
// periods exist, what years each covers and the order they are displayed in.
package period

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/montanaflynn/stats"

	"github.com/carbocation/gpsvis/sample"
)

// NoVaccination is the display name used when a country only has samples from
// before any vaccine was introduced.
const NoVaccination = "No Vaccination"

// Period is one vaccine-era bucket of a country. It serializes as the
// three-element array [YearRange, Name, Raw].
type Period struct {
	YearRange string
	Name      string
	Raw       string
}

func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]string{p.YearRange, p.Name, p.Raw})
}

func (p *Period) UnmarshalJSON(data []byte) error {
	var parts [3]string
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	p.YearRange, p.Name, p.Raw = parts[0], parts[1], parts[2]
	return nil
}

// Classify returns the periods present in one country's samples, ordered by
// the first year each covers. A country whose only period is prePCV gets a
// single "No Vaccination" entry.
func Classify(samples []sample.Sample, prePCV string) []Period {
	labels := distinctPeriods(samples)

	if len(labels) == 1 && labels[0] == prePCV {
		return []Period{{YearRange: YearRange(samples), Name: NoVaccination, Raw: prePCV}}
	}

	out := make([]Period, 0, len(labels))
	for _, label := range labels {
		out = append(out, Period{
			YearRange: YearRange(inPeriod(samples, label)),
			Name:      DisplayName(label),
			Raw:       label,
		})
	}

	Sort(out)

	return out
}

// Sort orders periods by the year their YearRange starts with. Periods whose
// range does not start with a year keep their relative order and go last.
func Sort(periods []Period) {
	for _, p := range periods {
		if _, ok := StartYear(p.YearRange); !ok {
			log.Printf("Warning: period %s has year range %q which does not start with a year; listing it last\n", p.Raw, p.YearRange)
		}
	}

	sort.SliceStable(periods, func(i, j int) bool {
		yi, oki := StartYear(periods[i].YearRange)
		yj, okj := StartYear(periods[j].YearRange)
		switch {
		case oki && okj:
			return yi < yj
		default:
			return oki && !okj
		}
	})
}

var leadingYear = regexp.MustCompile(`^\d{4}`)

// StartYear parses the four-digit year that a year range begins with.
func StartYear(yearRange string) (int, bool) {
	m := leadingYear.FindString(yearRange)
	if m == "" {
		return 0, false
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return y, true
}

// YearRange formats the span of collection years of samples as "2015" or
// "2010 - 2012". Samples whose year did not parse are ignored; if none
// parsed, the range is empty.
func YearRange(samples []sample.Sample) string {
	years := stats.Float64Data{}
	for _, s := range samples {
		if s.Year.Valid {
			years = append(years, float64(s.Year.Int64))
		}
	}
	if len(years) == 0 {
		return ""
	}

	lo, err := years.Min()
	if err != nil {
		return ""
	}
	hi, err := years.Max()
	if err != nil {
		return ""
	}

	if lo == hi {
		return fmt.Sprintf("%d", int64(lo))
	}
	return fmt.Sprintf("%d - %d", int64(lo), int64(hi))
}

// DisplayName turns a label like postPCV13 into Post-PCV13.
func DisplayName(label string) string {
	parts := strings.SplitN(label, "PCV", 2)
	if len(parts) < 2 {
		return capitalize(label)
	}
	return fmt.Sprintf("%s-PCV%s", capitalize(parts[0]), parts[1])
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func distinctPeriods(samples []sample.Sample) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, s := range samples {
		if _, ok := seen[s.VaccinePeriod]; ok {
			continue
		}
		seen[s.VaccinePeriod] = struct{}{}
		out = append(out, s.VaccinePeriod)
	}
	return out
}

func inPeriod(samples []sample.Sample, label string) []sample.Sample {
	out := []sample.Sample{}
	for _, s := range samples {
		if s.VaccinePeriod == label {
			out = append(out, s)
		}
	}
	return out
}

package period

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/guregu/null.v3"

	"github.com/carbocation/gpsvis/sample"
)

func s(periodLabel string, year int64) sample.Sample {
	return sample.Sample{VaccinePeriod: periodLabel, Year: null.IntFrom(year)}
}

func TestSortByStartingYear(t *testing.T) {
	periods := []Period{
		{YearRange: "2010 - 2012", Raw: "b"},
		{YearRange: "2015", Raw: "c"},
		{YearRange: "", Raw: "unknown"},
		{YearRange: "2008 - 2009", Raw: "a"},
	}

	Sort(periods)

	got := []string{}
	for _, p := range periods {
		got = append(got, p.Raw)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "unknown"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"PrePCV":    "Pre-PCV",
		"PostPCV10": "Post-PCV10",
		"postPCV13": "Post-PCV13",
		"POSTPCV7":  "Post-PCV7",
		"Baseline":  "Baseline",
	}
	for in, want := range cases {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestYearRange(t *testing.T) {
	if got := YearRange([]sample.Sample{s("x", 2011), s("x", 2011)}); got != "2011" {
		t.Errorf("single year: got %q", got)
	}
	if got := YearRange([]sample.Sample{s("x", 2013), s("x", 2009), s("x", 2011)}); got != "2009 - 2013" {
		t.Errorf("span: got %q", got)
	}
	if got := YearRange([]sample.Sample{{VaccinePeriod: "x"}}); got != "" {
		t.Errorf("no parsed years: got %q", got)
	}
}

func TestClassifyOnlyPrePCV(t *testing.T) {
	got := Classify([]sample.Sample{s("PrePCV", 2005), s("PrePCV", 2008)}, "PrePCV")

	want := []Period{{YearRange: "2005 - 2008", Name: NoVaccination, Raw: "PrePCV"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyMultiplePeriods(t *testing.T) {
	samples := []sample.Sample{
		s("PostPCV13", 2015),
		s("PrePCV", 2008),
		s("PostPCV10", 2011),
		s("PostPCV10", 2012),
		s("PostPCV13", 2016),
		s("PrePCV", 2009),
	}

	got := Classify(samples, "PrePCV")

	want := []Period{
		{YearRange: "2008 - 2009", Name: "Pre-PCV", Raw: "PrePCV"},
		{YearRange: "2011 - 2012", Name: "Post-PCV10", Raw: "PostPCV10"},
		{YearRange: "2015 - 2016", Name: "Post-PCV13", Raw: "PostPCV13"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPeriodJSON(t *testing.T) {
	b, err := json.Marshal(Period{YearRange: "2015", Name: NoVaccination, Raw: "PrePCV"})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `["2015","No Vaccination","PrePCV"]` {
		t.Errorf("got %s", b)
	}

	var p Period
	if err := json.Unmarshal(b, &p); err != nil {
		t.Fatal(err)
	}
	if p.Raw != "PrePCV" || p.Name != NoVaccination {
		t.Errorf("got %+v", p)
	}
}

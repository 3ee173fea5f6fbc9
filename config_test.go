package gpsvis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAntibioticAbbreviation(t *testing.T) {
	cases := map[string]string{
		"penicillin":     "PEN",
		"co-trimoxazole": "COT",
		"tetracycline":   "TET",
		"a-b":            "AB",
	}
	for in, want := range cases {
		if got := AntibioticAbbreviation(in); got != want {
			t.Errorf("AntibioticAbbreviation(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Error(err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing table", func(c *Config) { c.Tables.QC = "" }},
		{"no antibiotics", func(c *Config) { c.Antibiotics = nil }},
		{"short antibiotic", func(c *Config) { c.Antibiotics = []string{"ab"} }},
		{"duplicate antibiotic", func(c *Config) { c.Antibiotics = []string{"penicillin", "penicillin"} }},
		{"no countries", func(c *Config) { c.Countries = nil }},
		{"duplicate code", func(c *Config) { c.Countries = append(c.Countries, Country{Code: "AR", Label: "X"}) }},
		{"duplicate label", func(c *Config) { c.Countries = append(c.Countries, Country{Code: "XX", Label: "BRAZIL"}) }},
		{"empty label", func(c *Config) { c.Countries = []Country{{Code: "XX"}} }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestParseJSONConfigFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
	"tables": {"meta": "m", "qc": "q", "analysis": "a"},
	"antibiotics": ["penicillin"],
	"countries": [{"code": "HK", "label": "HONG KONG", "link": ""}]
}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseJSONConfigFromPath(path)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(TableNames{Meta: "m", QC: "q", Analysis: "a"}, cfg.Tables); diff != "" {
		t.Errorf("tables mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Country{{Code: "HK", Label: "HONG KONG"}}, cfg.Countries); diff != "" {
		t.Errorf("countries mismatch (-want +got):\n%s", diff)
	}
	// Untouched keys keep their defaults
	if cfg.ResistanceColumnPrefix != "WGS_" || cfg.PrePCVLabel != "PrePCV" {
		t.Errorf("defaults were not kept: %+v", cfg)
	}
}

func TestParseJSONConfigFromPathRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"antibiotic": ["penicillin"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ParseJSONConfigFromPath(path); err == nil {
		t.Error("expected an error for a misspelled key")
	}
}

func TestParseCountries(t *testing.T) {
	in := "code\tlabel\tlink\nAR\tARGENTINA\thttps://example.org/ar\nGM\tTHE GAMBIA\t\n"

	got, err := ParseCountries(strings.NewReader(in), '\t')
	if err != nil {
		t.Fatal(err)
	}

	want := []Country{
		{Code: "AR", Label: "ARGENTINA", Link: "https://example.org/ar"},
		{Code: "GM", Label: "THE GAMBIA"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCountriesTSVCommaDelimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.csv")
	body := "code,label,link\nAR,ARGENTINA,https://example.org/ar\nUS,USA,\nPE,PERU,\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadCountriesTSV(path)
	if err != nil {
		t.Fatal(err)
	}

	want := []Country{
		{Code: "AR", Label: "ARGENTINA", Link: "https://example.org/ar"},
		{Code: "US", Label: "USA"},
		{Code: "PE", Label: "PERU"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

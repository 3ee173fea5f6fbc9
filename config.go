package gpsvis

import (
	"fmt"
	"strings"
	"unicode"
)

// TableNames identifies the three relations read from the GPS database.
type TableNames struct {
	Meta     string `json:"meta"`
	QC       string `json:"qc"`
	Analysis string `json:"analysis"`
}

// Country maps a two-letter code (used as the key in the output document) to
// the value found in the database's Country column. Link points to the
// published paper for that country and may be empty.
type Country struct {
	Code  string `json:"code" csv:"code"`
	Label string `json:"label" csv:"label"`
	Link  string `json:"link" csv:"link"`
}

// Config holds everything that is fixed for the duration of a run. It is
// passed by value into the pipeline; nothing reads it from package state.
type Config struct {
	Tables      TableNames `json:"tables"`
	Antibiotics []string   `json:"antibiotics"`
	Countries   []Country  `json:"countries"`

	// Resistance calls live in columns named <prefix><ABC>_SIR or
	// <prefix><ABC>_SIR_Meningitis.
	ResistanceColumnPrefix string `json:"resistance_column_prefix"`

	// Rows whose Region equals one of these values are treated as belonging
	// to a country of the same name.
	RegionAsCountry []string `json:"region_as_country"`

	// Country label => the only submitting institution accepted for it.
	InstitutionOverrides map[string]string `json:"institution_overrides"`

	PrePCVLabel   string `json:"prepcv_label"`
	UnknownPeriod string `json:"unknown_period"`
}

// DefaultConfig returns the configuration used to build the production
// data.json from the GPS1 database.
func DefaultConfig() Config {
	return Config{
		Tables: TableNames{
			Meta:     "table1_Metadata_v3",
			QC:       "table2_QC_v3",
			Analysis: "table3_analysis_v3",
		},
		Antibiotics: []string{"penicillin", "chloramphenicol", "erythromycin", "co-trimoxazole", "tetracycline"},
		Countries: []Country{
			{"AR", "ARGENTINA", "https://www.microbiologyresearch.org/content/journal/mgen/10.1099/mgen.0.000636"},
			{"BR", "BRAZIL", "https://www.microbiologyresearch.org/content/journal/mgen/10.1099/mgen.0.000635"},
			{"IN", "INDIA", "https://www.microbiologyresearch.org/content/journal/mgen/10.1099/mgen.0.000645"},
			{"ZA", "SOUTH AFRICA", "https://www.microbiologyresearch.org/content/journal/mgen/10.1099/mgen.0.000746"},
			{"NP", "NEPAL", "https://www.sciencedirect.com/science/article/pii/S2666524722000660"},
			{"GM", "THE GAMBIA", ""},
			{"US", "USA", ""},
			{"MW", "MALAWI", ""},
			{"IL", "ISRAEL", ""},
			{"PE", "PERU", ""},
			{"PL", "POLAND", ""},
			{"MZ", "MOZAMBIQUE", ""},
			{"KH", "CAMBODIA", ""},
			{"PG", "PAPUA NEW GUINEA", ""},
		},
		ResistanceColumnPrefix: "WGS_",
		RegionAsCountry:        []string{"HONG KONG"},
		InstitutionOverrides: map[string]string{
			"INDIA": "KEMPEGOWDA INSTITUTE OF MEDICAL SCIENCES",
		},
		PrePCVLabel:   "PrePCV",
		UnknownPeriod: "_",
	}
}

// CountryLabels returns the database labels of all configured countries.
func (c Config) CountryLabels() []string {
	out := make([]string, 0, len(c.Countries))
	for _, country := range c.Countries {
		out = append(out, country.Label)
	}
	return out
}

// AntibioticAbbreviation returns the upper-cased first three letters of an
// antibiotic's name, e.g. "co-trimoxazole" => "COT".
func AntibioticAbbreviation(name string) string {
	var b strings.Builder
	n := 0
	for _, r := range name {
		if !unicode.IsLetter(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		n++
		if n == 3 {
			break
		}
	}
	return b.String()
}

// Validate reports configuration that can never produce a document.
func (c Config) Validate() error {
	if c.Tables.Meta == "" || c.Tables.QC == "" || c.Tables.Analysis == "" {
		return fmt.Errorf("all three table names must be set, got %+v", c.Tables)
	}

	if len(c.Antibiotics) == 0 {
		return fmt.Errorf("no antibiotics configured")
	}
	seenAntibiotic := make(map[string]struct{})
	for _, a := range c.Antibiotics {
		if len([]rune(AntibioticAbbreviation(a))) < 3 {
			return fmt.Errorf("antibiotic %q has fewer than three letters", a)
		}
		if _, exists := seenAntibiotic[a]; exists {
			return fmt.Errorf("antibiotic %q listed twice", a)
		}
		seenAntibiotic[a] = struct{}{}
	}

	if len(c.Countries) == 0 {
		return fmt.Errorf("no countries configured")
	}
	codes := make(map[string]struct{})
	labels := make(map[string]struct{})
	for _, country := range c.Countries {
		if country.Code == "" || country.Label == "" {
			return fmt.Errorf("country entry %+v needs both a code and a label", country)
		}
		if _, exists := codes[country.Code]; exists {
			return fmt.Errorf("country code %q listed twice", country.Code)
		}
		if _, exists := labels[country.Label]; exists {
			return fmt.Errorf("country label %q listed twice", country.Label)
		}
		codes[country.Code] = struct{}{}
		labels[country.Label] = struct{}{}
	}

	return nil
}

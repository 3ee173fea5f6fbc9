// Package aggregate builds the data.json document read by the GPS
// visualiser from filtered, encoded samples.
package aggregate

import (
	"encoding/json"
	"fmt"

	"github.com/carbocation/gpsvis/period"
)

// Document is the complete data.json.
type Document struct {
	Summary     map[string]*CountrySummary `json:"summary"`
	Global      map[string]*GlobalView     `json:"global"`
	Country     map[string]*CountryView    `json:"country"`
	DomainRange DomainRange                `json:"domainRange"`
	Antibiotics []string                   `json:"antibiotics"`
}

type CountrySummary struct {
	Periods []period.Period `json:"periods"`
	// AgeGroups[0] is set when the country has samples from children under
	// five, AgeGroups[1] when it has samples from anyone older.
	AgeGroups [2]bool `json:"ageGroups"`
	Link      string  `json:"link"`
}

// GlobalView holds serotype-lineage counts of a country's most recent period.
type GlobalView struct {
	All      []GroupCount `json:"all"`
	Carriage []GroupCount `json:"carriage"`
	Disease  []GroupCount `json:"disease"`
}

// CountryView holds serotype-lineage counts per age group and period, plus
// resistance percentages per age group and lineage.
type CountryView struct {
	All        AgeBreakdown            `json:"all"`
	Carriage   AgeBreakdown            `json:"carriage"`
	Disease    AgeBreakdown            `json:"disease"`
	Resistance map[string]LineageRates `json:"resistance"`
}

// AgeBreakdown is keyed by age group ("age0", "age1").
type AgeBreakdown map[string]PeriodBreakdown

// PeriodBreakdown is keyed by "period<i>", i indexing the country's sorted
// period list.
type PeriodBreakdown map[string][]GroupCount

// LineageRates maps a lineage to its resistance percentage per antibiotic, in
// the document's antibiotic order.
type LineageRates map[string][]float64

// GroupCount is the number of samples of one serotype-lineage pair. It
// serializes as ["<serotype>-<lineage>", count].
type GroupCount struct {
	Group string
	Count int
}

func (g GroupCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{g.Group, g.Count})
}

func (g *GroupCount) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("group count needs 2 elements, got %d", len(parts))
	}
	if err := json.Unmarshal(parts[0], &g.Group); err != nil {
		return err
	}
	return json.Unmarshal(parts[1], &g.Count)
}

// Legend pairs ids (Domain) with display colors (Range) index by index.
type Legend struct {
	Domain []string `json:"domain"`
	Range  []string `json:"range"`
}

type DomainRange struct {
	Serotype Legend `json:"serotype"`
	Lineage  Legend `json:"lineage"`
}

func newGlobalView() *GlobalView {
	return &GlobalView{All: []GroupCount{}, Carriage: []GroupCount{}, Disease: []GroupCount{}}
}

func newCountryView() *CountryView {
	return &CountryView{
		All:        AgeBreakdown{},
		Carriage:   AgeBreakdown{},
		Disease:    AgeBreakdown{},
		Resistance: map[string]LineageRates{},
	}
}

func (g *GlobalView) set(view string, counts []GroupCount) {
	switch view {
	case ViewAll:
		g.All = counts
	case ViewCarriage:
		g.Carriage = counts
	case ViewDisease:
		g.Disease = counts
	}
}

func (c *CountryView) breakdown(view string) AgeBreakdown {
	switch view {
	case ViewCarriage:
		return c.Carriage
	case ViewDisease:
		return c.Disease
	default:
		return c.All
	}
}

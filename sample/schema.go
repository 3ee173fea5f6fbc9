// Package sample turns the three normalized GPS tables into one typed record
// per sequenced isolate and narrows those records down to the ones the
// visualiser may show.
package sample

import (
	"fmt"
	"log"

	"github.com/carbocation/gpsvis"
	"github.com/carbocation/gpsvis/gpsdb"
)

// Canonical column names. Source columns are renamed to these before the
// join, so the join keys are spelled one way regardless of table version.
const (
	ColLaneID        = "Lane_id"
	ColPublicName    = "Public_name"
	ColCountry       = "Country"
	ColRegion        = "Region"
	ColInstitution   = "Submitting_Institution"
	ColYear          = "Year_collection"
	ColVaccinePeriod = "VaccinePeriod"
	ColQC            = "QC"
	ColDuplicate     = "Duplicate"
	ColManifestType  = "Manifest_type"
	ColUnderFive     = "Children<5yrs"
	ColLineage       = "GPSC_PoPUNK2"
	ColLineageColor  = "GPSC_PoPUNK2__colour"
	ColSerotype      = "In_Silico_serotype"
	ColSerotypeColor = "In_Silico_serotype__colour"
	ColPublished     = "Published(Y/N)"
)

// Field is a canonical column and the other spellings it has had across
// database releases. The canonical name is always tried first.
type Field struct {
	Name    string
	Aliases []string
}

var (
	publicName = Field{ColPublicName, []string{"Public_Name", "public_name"}}
	laneID     = Field{ColLaneID, []string{"Lane_ID", "lane_id"}}
)

var MetaFields = []Field{
	publicName,
	{ColCountry, []string{"country"}},
	{ColRegion, []string{"region"}},
	{ColInstitution, []string{"submitting_institution"}},
	{ColYear, []string{"year_collection"}},
	{ColVaccinePeriod, []string{"vaccineperiod"}},
}

var QCFields = []Field{
	laneID,
	{ColQC, []string{"qc"}},
}

var AnalysisFields = []Field{
	laneID,
	publicName,
	{ColDuplicate, []string{"duplicate"}},
	{ColManifestType, []string{"manifest_type"}},
	{ColUnderFive, []string{"children<5yrs"}},
	{ColLineage, []string{"gpsc_popunk2"}},
	{ColLineageColor, []string{"gpsc_popunk2__colour"}},
	{ColSerotype, []string{"in_silico_serotype"}},
	{ColSerotypeColor, []string{"in_silico_serotype__colour"}},
	{ColPublished, []string{"published(y/n)"}},
}

// AntibioticColumnCandidates lists, in the order they are tried, the analysis
// table columns that may hold the resistance call for an antibiotic.
func AntibioticColumnCandidates(prefix, antibiotic string) []string {
	abbr := gpsvis.AntibioticAbbreviation(antibiotic)
	return []string{
		fmt.Sprintf("%s%s_SIR", prefix, abbr),
		fmt.Sprintf("%s%s_SIR_Meningitis", prefix, abbr),
	}
}

// RenameAntibiotics renames the resistance column of every configured
// antibiotic to the antibiotic's own name.
func RenameAntibiotics(analysis *gpsdb.Table, cfg gpsvis.Config) error {
	for _, antibiotic := range cfg.Antibiotics {
		candidates := AntibioticColumnCandidates(cfg.ResistanceColumnPrefix, antibiotic)

		found := ""
		for _, col := range candidates {
			if analysis.HasColumn(col) {
				found = col
				break
			}
		}
		if found == "" {
			return &gpsvis.AntibioticNotFoundError{Antibiotic: antibiotic, Tried: candidates}
		}

		if err := analysis.Rename(found, antibiotic); err != nil {
			return &gpsvis.DatabaseIncompatibleError{Table: analysis.Name, Err: err}
		}
	}

	return nil
}

// Canonicalize renames each field's source column to its canonical name and
// drops every column that is not a field or one of extra.
func Canonicalize(t *gpsdb.Table, fields []Field, extra ...string) error {
	keep := make([]string, 0, len(fields)+len(extra))
	for _, f := range fields {
		col, err := resolve(t, f)
		if err != nil {
			return err
		}
		if err := t.Rename(col, f.Name); err != nil {
			return &gpsvis.DatabaseIncompatibleError{Table: t.Name, Err: err}
		}
		keep = append(keep, f.Name)
	}

	t.Keep(append(keep, extra...))

	return nil
}

func resolve(t *gpsdb.Table, f Field) (string, error) {
	for _, name := range append([]string{f.Name}, f.Aliases...) {
		if t.HasColumn(name) {
			return name, nil
		}
	}

	return "", &gpsvis.DatabaseIncompatibleError{
		Table: t.Name,
		Err:   fmt.Errorf("no column for %s (also tried %v)", f.Name, f.Aliases),
	}
}

// Normalize resolves antibiotic columns and reduces each table to its
// canonical columns.
func Normalize(meta, qc, analysis *gpsdb.Table, cfg gpsvis.Config) error {
	if err := RenameAntibiotics(analysis, cfg); err != nil {
		return err
	}

	if err := Canonicalize(meta, MetaFields); err != nil {
		return err
	}
	if err := Canonicalize(qc, QCFields); err != nil {
		return err
	}
	if err := Canonicalize(analysis, AnalysisFields, cfg.Antibiotics...); err != nil {
		return err
	}

	log.Printf("Normalized tables: %s (%d rows), %s (%d rows), %s (%d rows)\n",
		meta.Name, len(meta.Rows), qc.Name, len(qc.Rows), analysis.Name, len(analysis.Rows))

	return nil
}

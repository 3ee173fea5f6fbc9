// Package pipeline runs the whole GPS database to data.json transformation.
package pipeline

import (
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/carbocation/gpsvis"
	"github.com/carbocation/gpsvis/aggregate"
	"github.com/carbocation/gpsvis/gpsdb"
	"github.com/carbocation/gpsvis/sample"
)

// Run reads the configured tables from db and builds the document. Any error
// means no document: there is no partial output.
func Run(db sqlx.Queryer, cfg gpsvis.Config) (*aggregate.Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tables, err := gpsdb.LoadTables(db, cfg.Tables.Meta, cfg.Tables.QC, cfg.Tables.Analysis)
	if err != nil {
		return nil, err
	}

	return Transform(tables[0], tables[1], tables[2], cfg)
}

// Transform is Run for tables that are already in memory. The tables are
// modified in place.
func Transform(meta, qc, analysis *gpsdb.Table, cfg gpsvis.Config) (*aggregate.Document, error) {
	samples, err := Samples(meta, qc, analysis, cfg)
	if err != nil {
		return nil, err
	}

	return aggregate.Build(samples, cfg)
}

// Samples normalizes, filters and joins the tables and returns the samples
// that go into the document, with resistance calls encoded.
func Samples(meta, qc, analysis *gpsdb.Table, cfg gpsvis.Config) ([]sample.Sample, error) {
	if err := sample.Normalize(meta, qc, analysis, cfg); err != nil {
		return nil, err
	}

	sample.QualityFilter(qc, analysis)

	lanes, err := gpsdb.InnerJoin(qc, analysis, sample.ColLaneID)
	if err != nil {
		return nil, &gpsvis.DatabaseIncompatibleError{Table: analysis.Name, Err: err}
	}
	joined, err := gpsdb.InnerJoin(meta, lanes, sample.ColPublicName)
	if err != nil {
		return nil, &gpsvis.DatabaseIncompatibleError{Table: meta.Name, Err: err}
	}
	log.Printf("%d samples are present in all three tables\n", len(joined.Rows))

	samples := sample.FromTable(joined, cfg.Antibiotics)
	sample.ReclassifyRegions(samples, cfg.RegionAsCountry)
	samples = sample.Apply(samples, sample.Selection(cfg))
	sample.StripPeriodSuffixes(samples)
	samples = sample.EncodeResistance(samples)

	log.Printf("%d samples retained\n", len(samples))

	return samples, nil
}

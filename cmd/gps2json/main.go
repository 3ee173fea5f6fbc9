// gps2json converts a GPS database snapshot into the data.json file read by
// the GPS visualiser. Both the database path and data.json are relative to the
// folder holding this binary. The snapshot may be gzip, zip, xz, bzip2 or
// zlib compressed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kardianos/osext"

	"github.com/carbocation/gpsvis"
	"github.com/carbocation/gpsvis/compileinfo"
	"github.com/carbocation/gpsvis/gpsdb"
	"github.com/carbocation/gpsvis/pipeline"
)

const (
	OutputFilename = "data.json"
	Usage          = "gps2json [-config config.json] [-countries countries.tsv] database.db"
)

func main() {
	compileinfo.PrintToStdErr()

	var configPath, countriesPath string
	flag.StringVar(&configPath, "config", "", "Optional JSON file overriding table names, antibiotics, countries and filter settings.")
	flag.StringVar(&countriesPath, "countries", "", "Optional tab-delimited file with columns code, label and link. Replaces the configured country list.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s\n", Usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	folder, err := osext.ExecutableFolder()
	if err != nil {
		log.Fatalln(err)
	}

	if err := run(folder, configPath, countriesPath, flag.Args()); err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("%s has been created at %s.\n", OutputFilename, folder)
}

func run(folder, configPath, countriesPath string, args []string) error {
	if len(args) != 1 {
		return &gpsvis.UsageError{Usage: Usage}
	}

	dbPath := resolvePath(folder, args[0])
	if info, err := os.Stat(dbPath); err != nil || !info.Mode().IsRegular() {
		return &gpsvis.FileNotFoundError{Path: dbPath}
	}

	cfg, err := loadConfig(configPath, countriesPath)
	if err != nil {
		return err
	}

	snapshot, cleanup, err := gpsdb.Snapshot(dbPath)
	if err != nil {
		return &gpsvis.DatabaseIncompatibleError{Err: err}
	}
	defer cleanup()

	db, err := gpsdb.Open(snapshot)
	if err != nil {
		return &gpsvis.DatabaseIncompatibleError{Err: err}
	}
	defer db.Close()

	log.Println("Processing", dbPath)

	doc, err := pipeline.Run(db, cfg)
	if err != nil {
		return err
	}

	return writeAtomic(filepath.Join(folder, OutputFilename), doc)
}

// resolvePath interprets relative paths against folder rather than the
// working directory.
func resolvePath(folder, path string) string {
	path = gpsvis.ExpandHome(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(folder, path)
}

func loadConfig(configPath, countriesPath string) (gpsvis.Config, error) {
	cfg := gpsvis.DefaultConfig()

	if configPath != "" {
		var err error
		if cfg, err = gpsvis.ParseJSONConfigFromPath(configPath); err != nil {
			return cfg, err
		}
	}

	if countriesPath != "" {
		countries, err := gpsvis.ReadCountriesTSV(countriesPath)
		if err != nil {
			return cfg, err
		}
		cfg.Countries = countries
	}

	return cfg, cfg.Validate()
}

package gpsvis

import (
	"bytes"
	"encoding/csv"
	"io"
	"log"
	"os"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
	"github.com/gocarina/gocsv"
)

// ReadCountriesTSV loads a country list from a delimited file with the header
// "code	label	link". Tabs are expected, but a comma-delimited file is
// detected and read as well. The link column may be empty.
func ReadCountriesTSV(path string) ([]Country, error) {
	log.Printf("Importing countries from %s\n", path)

	fileBytes, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		return nil, pfx.Err(err)
	}

	return ParseCountries(bytes.NewReader(fileBytes), DetermineDelimiter(bytes.NewReader(fileBytes)))
}

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	// Country files are documented as TSV, and a one-column file gives the
	// detector nothing to go on.
	return '\t'
}

// ParseCountries reads a country list delimited by comma.
func ParseCountries(r io.Reader, comma rune) ([]Country, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = comma
		r.LazyQuotes = true
		return r
	})

	records := []*Country{}
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]Country, 0, len(records))
	for _, record := range records {
		out = append(out, *record)
	}

	return out, nil
}

package gpsvis

import (
	"fmt"
	"strings"
)

// UsageError means the tool was invoked with the wrong arguments.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "Invalid command. Use the following format: " + e.Usage
}

// FileNotFoundError means the database path does not resolve to a file.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("File %s does not exist.", e.Path)
}

// DatabaseIncompatibleError means a configured table or column is missing, or
// the file could not be queried as a GPS database at all.
type DatabaseIncompatibleError struct {
	Table string
	Err   error
}

func (e *DatabaseIncompatibleError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("Incorrect or incompatible database is used: %v", e.Err)
	}
	return fmt.Sprintf("Incorrect or incompatible database is used (table %s): %v", e.Table, e.Err)
}

func (e *DatabaseIncompatibleError) Unwrap() error { return e.Err }

// AntibioticNotFoundError means none of the accepted column names for an
// antibiotic exist in the analysis table.
type AntibioticNotFoundError struct {
	Antibiotic string
	Tried      []string
}

func (e *AntibioticNotFoundError) Error() string {
	return fmt.Sprintf("Antibiotic %q is not found in the database (looked for %s).", e.Antibiotic, strings.Join(e.Tried, ", "))
}

// CountryDataMissingError means a configured country has no rows left after
// all filters were applied.
type CountryDataMissingError struct {
	Label string
}

func (e *CountryDataMissingError) Error() string {
	return fmt.Sprintf("Country name %q is not found in the database or has no valid data. Check spelling and casing of your input, and the completeness of data of that country.", e.Label)
}

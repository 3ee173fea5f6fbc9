// Package gpsdb materializes GPS database tables as text-only records and
// joins them. Every value is kept as a string so that keys compare the same
// way no matter how SQLite typed the column.
package gpsdb

import "fmt"

// Row maps a column name to its text value.
type Row map[string]string

// Table is an in-memory copy of one relation.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table has a column with exactly this name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Rename changes a column's name in the header and in every row.
func (t *Table) Rename(from, to string) error {
	if from == to {
		return nil
	}
	if !t.HasColumn(from) {
		return fmt.Errorf("%s: no column %q to rename", t.Name, from)
	}
	if t.HasColumn(to) {
		return fmt.Errorf("%s: cannot rename %q to existing column %q", t.Name, from, to)
	}

	for i, c := range t.Columns {
		if c == from {
			t.Columns[i] = to
		}
	}
	for _, row := range t.Rows {
		row[to] = row[from]
		delete(row, from)
	}

	return nil
}

// Keep drops every column not named in cols. Names in cols that the table
// lacks are ignored.
func (t *Table) Keep(cols []string) {
	wanted := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		wanted[c] = struct{}{}
	}

	kept := t.Columns[:0]
	for _, c := range t.Columns {
		if _, ok := wanted[c]; ok {
			kept = append(kept, c)
		}
	}
	t.Columns = kept

	for _, row := range t.Rows {
		for c := range row {
			if _, ok := wanted[c]; !ok {
				delete(row, c)
			}
		}
	}
}

// Filter keeps the rows for which keep returns true and reports how many were
// dropped.
func (t *Table) Filter(keep func(Row) bool) int {
	before := len(t.Rows)
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	t.Rows = kept

	return before - len(kept)
}

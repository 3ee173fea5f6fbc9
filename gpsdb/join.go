package gpsdb

import "fmt"

// InnerJoin matches rows of left and right whose key columns are equal. Rows
// without a partner on the other side are dropped; a key shared by several
// rows on both sides produces every pairing. Output rows follow the order of
// left, then of right within each left row.
//
// The two tables may only share the key column.
func InnerJoin(left, right *Table, key string) (*Table, error) {
	if !left.HasColumn(key) {
		return nil, fmt.Errorf("join: %s has no column %q", left.Name, key)
	}
	if !right.HasColumn(key) {
		return nil, fmt.Errorf("join: %s has no column %q", right.Name, key)
	}
	for _, c := range right.Columns {
		if c != key && left.HasColumn(c) {
			return nil, fmt.Errorf("join: column %q exists in both %s and %s", c, left.Name, right.Name)
		}
	}

	index := make(map[string][]Row)
	for _, row := range right.Rows {
		index[row[key]] = append(index[row[key]], row)
	}

	out := &Table{
		Name:    left.Name + "+" + right.Name,
		Columns: append(append([]string{}, left.Columns...), withoutColumn(right.Columns, key)...),
	}
	for _, l := range left.Rows {
		for _, r := range index[l[key]] {
			joined := make(Row, len(l)+len(r))
			for k, v := range l {
				joined[k] = v
			}
			for k, v := range r {
				joined[k] = v
			}
			out.Rows = append(out.Rows, joined)
		}
	}

	return out, nil
}

func withoutColumn(cols []string, drop string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if c != drop {
			out = append(out, c)
		}
	}
	return out
}

package gpsdb

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/carbocation/gpsvis"
	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// NullText is the text a NULL value is materialized as.
const NullText = "None"

// LoadTables reads each named table in order. Any table that is missing or
// cannot be read yields a *gpsvis.DatabaseIncompatibleError.
func LoadTables(db sqlx.Queryer, names ...string) ([]*Table, error) {
	out := make([]*Table, 0, len(names))
	for _, name := range names {
		t, err := LoadTable(db, name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

// LoadTable reads every row of one table, converting every value to text.
func LoadTable(db sqlx.Queryer, name string) (*Table, error) {
	rows, err := db.Queryx(fmt.Sprintf("SELECT * FROM %s", quoteIdent(name)))
	if err != nil {
		return nil, &gpsvis.DatabaseIncompatibleError{Table: name, Err: pfx.Err(err)}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &gpsvis.DatabaseIncompatibleError{Table: name, Err: pfx.Err(err)}
	}

	t := &Table{Name: name, Columns: cols}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, &gpsvis.DatabaseIncompatibleError{Table: name, Err: pfx.Err(err)}
		}

		row := make(Row, len(cols))
		for i, c := range cols {
			row[c] = toText(values[i])
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &gpsvis.DatabaseIncompatibleError{Table: name, Err: pfx.Err(err)}
	}

	return t, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func toText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return NullText
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}

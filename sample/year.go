package sample

import (
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"gopkg.in/guregu/null.v3"
)

// ParseYear extracts a collection year from its stored text. Plain integers
// ("2015"), integral floats ("2015.0") and full dates ("2015-03-01") are
// understood; anything else, including NULL, yields an invalid null.Int.
func ParseYear(s string) null.Int {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Int{}
	}

	if y, err := strconv.ParseInt(s, 10, 64); err == nil {
		return null.IntFrom(y)
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f == float64(int64(f)) {
			return null.IntFrom(int64(f))
		}
		return null.Int{}
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		return null.IntFrom(int64(t.Year()))
	}

	return null.Int{}
}

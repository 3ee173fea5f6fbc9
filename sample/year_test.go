package sample

import "testing"

func TestParseYear(t *testing.T) {
	cases := []struct {
		in    string
		want  int64
		valid bool
	}{
		{"2015", 2015, true},
		{" 2009 ", 2009, true},
		{"2015.0", 2015, true},
		{"2015.5", 0, false},
		{"2012-03-01", 2012, true},
		{"None", 0, false},
		{"", 0, false},
		{"unknown", 0, false},
	}

	for _, tc := range cases {
		got := ParseYear(tc.in)
		if got.Valid != tc.valid || (tc.valid && got.Int64 != tc.want) {
			t.Errorf("ParseYear(%q) = %+v, want %d (valid=%v)", tc.in, got, tc.want, tc.valid)
		}
	}
}

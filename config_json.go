package gpsvis

import (
	"encoding/json"
	"log"
	"os"

	"github.com/carbocation/pfx"
)

// ParseJSONConfigFromPath reads a JSON configuration file and lays it over
// DefaultConfig. Keys absent from the file keep their default value; lists are
// replaced wholesale, while institution_overrides entries are merged into the
// defaults.
func ParseJSONConfigFromPath(path string) (Config, error) {
	out := DefaultConfig()

	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}
		return out, pfx.Err(err)
	}

	return out, pfx.Err(out.Validate())
}

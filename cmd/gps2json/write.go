package main

import (
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"

	"github.com/carbocation/gpsvis/aggregate"
)

// writeAtomic encodes doc into a temp file beside path and renames it into
// place, so a failed run leaves any previous file untouched.
func writeAtomic(path string, doc *aggregate.Document) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return pfx.Err(err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := doc.Encode(tmp); err != nil {
		_ = tmp.Close()
		return pfx.Err(err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return pfx.Err(err)
	}
	if err := tmp.Close(); err != nil {
		return pfx.Err(err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return pfx.Err(err)
	}

	return pfx.Err(os.Rename(tmp.Name(), path))
}

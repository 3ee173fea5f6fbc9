package gpsdb

import (
	"net/url"
	"strings"
)

// readOnlyURI turns a file path into a read-only SQLite URI filename. The
// path is percent-escaped so that '#', '?' and '%' in directory or file names
// are not read as URI delimiters. See https://www.sqlite.org/uri.html
func readOnlyURI(path string) string {
	path = strings.TrimPrefix(path, "file:")
	return "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=ro"
}

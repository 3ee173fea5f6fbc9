package gpsdb

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type Compression byte

const (
	CompressionInvalid Compression = iota
	CompressionNone
	CompressionGzip
	CompressionZip
	CompressionXZ
	CompressionZlib
	CompressionBZip2
)

// Byte code signatures from https://stackoverflow.com/a/19127748/199475. A
// zlib stream has no magic number; these are its 2-byte headers for a 32K
// window at each compression level (RFC 1950).
var signatures = map[Compression][][]byte{
	CompressionGzip:  {{0x1f, 0x8b, 0x08}},
	CompressionZip:   {{0x50, 0x4b, 0x03, 0x04}},
	CompressionXZ:    {{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	CompressionZlib:  {{0x78, 0x01}, {0x78, 0x5e}, {0x78, 0x9c}, {0x78, 0xda}},
	CompressionBZip2: {{0x42, 0x5a, 0x68}},
}

// DetectCompression matches the first bytes of a file against known archive
// signatures. Anything unrecognized, including a SQLite file, is
// CompressionNone.
func DetectCompression(head []byte) Compression {
	for c, sigs := range signatures {
		for _, sig := range sigs {
			if bytes.HasPrefix(head, sig) {
				return c
			}
		}
	}
	return CompressionNone
}

// Snapshot makes a database snapshot openable by SQLite. An uncompressed file
// is returned as is; a gzip, zip (first entry), xz, bzip2 or zlib file is
// expanded into a temporary file. cleanup removes that temporary file and is
// always safe to call.
func Snapshot(path string) (dbPath string, cleanup func(), err error) {
	cleanup = func() {}

	f, err := os.Open(path)
	if err != nil {
		return "", cleanup, pfx.Err(err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	head, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return "", cleanup, pfx.Err(err)
	}

	c := DetectCompression(head)
	if c == CompressionNone {
		return path, cleanup, nil
	}

	r, err := decompressor(c, br)
	if err != nil {
		return "", cleanup, pfx.Err(err)
	}

	tmp, err := os.CreateTemp("", "gps-*.db")
	if err != nil {
		return "", cleanup, pfx.Err(err)
	}
	cleanup = func() { _ = os.Remove(tmp.Name()) }

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", func() {}, pfx.Err(err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", func() {}, pfx.Err(err)
	}

	return tmp.Name(), cleanup, nil
}

func decompressor(c Compression, r io.Reader) (io.Reader, error) {
	switch c {
	case CompressionGzip:
		return gzip.NewReader(r)
	case CompressionZip:
		zr := zipstream.NewReader(r)
		if _, err := zr.Next(); err != nil {
			return nil, err
		}
		return zr, nil
	case CompressionBZip2:
		return bzip2.NewReader(r), nil
	case CompressionXZ:
		return xz.NewReader(r, 0)
	case CompressionZlib:
		return zlib.NewReader(r)
	}

	return r, nil
}

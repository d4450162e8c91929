package bsp

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"bsp-entity-generator/internal/diagnostic"
	"bsp-entity-generator/keyvalues"
)

// ReadFile loads a compiled map from disk and extracts its entity bags.
// Files ending in .gz are decompressed before decoding.
func ReadFile(path string) ([]keyvalues.Entity, *diagnostic.Diagnostics, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read map")
	}

	if strings.HasSuffix(path, ".gz") {
		buf, err = gunzip(buf)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "decompress %s", path)
		}
	}

	return Read(buf, path)
}

// gzipMagic prefixes gzip streams, for maps archived without a .gz suffix.
var gzipMagic = []byte{0x1f, 0x8b}

// Read decodes a whole map image held in memory. Gzipped images are
// detected by magic and decompressed first. name labels diagnostics and
// errors, typically the source path.
func Read(buf []byte, name string) ([]keyvalues.Entity, *diagnostic.Diagnostics, error) {
	if bytes.HasPrefix(buf, gzipMagic) {
		var err error
		if buf, err = gunzip(buf); err != nil {
			return nil, nil, errors.Wrapf(err, "decompress %s", name)
		}
	}

	var h Header
	if err := h.FromBuf(buf); err != nil {
		return nil, nil, errors.Wrapf(err, "%s", name)
	}

	data, err := h.LumpData(buf, LumpEntities)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s", name)
	}

	return scanEntities(textFromLump(data), name)
}

// textFromLump truncates the entities payload at its first NUL. Compilers
// pad the lump past the terminator.
func textFromLump(data []byte) string {
	if n := bytes.IndexByte(data, 0); n >= 0 {
		data = data[:n]
	}

	return string(data)
}

func gunzip(buf []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return io.ReadAll(zr)
}

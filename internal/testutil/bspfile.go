package testutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"bsp-entity-generator/internal/bsp"
)

// BSPOptions adjust the synthesized map. The zero value produces a valid
// version 20 file.
type BSPOptions struct {
	Version     int32
	MapRevision int32
	// LZMA prefixes the entities payload with the compressed-lump magic.
	LZMA bool
}

// BSP assembles an in-memory compiled map whose entities lump holds text.
// The payload is NUL-terminated like real compiler output.
func BSP(t *testing.T, text string, opts BSPOptions) []byte {
	t.Helper()

	if opts.Version == 0 {
		opts.Version = 20
	}

	payload := append([]byte(text), 0)
	if opts.LZMA {
		payload = append([]byte("LZMA"), payload...)
	}

	buf := &bytes.Buffer{}
	write := func(v any) {
		require.NoError(t, binary.Write(buf, binary.LittleEndian, v))
	}

	write(int32(bsp.Ident))
	write(opts.Version)

	var lumps [bsp.HeaderLumps]bsp.Lump
	lumps[bsp.LumpEntities] = bsp.Lump{
		FileOfs: int32(bsp.HeaderSize),
		FileLen: int32(len(payload)),
	}
	write(lumps)

	write(opts.MapRevision)

	require.Equal(t, bsp.HeaderSize, buf.Len())
	buf.Write(payload)

	return buf.Bytes()
}

// Gzip compresses data the way archived maps are stored on disk.
func Gzip(t *testing.T, data []byte) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	zw := gzip.NewWriter(buf)

	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

// WriteTemp writes data under a fresh temporary directory and returns the
// full path.
func WriteTemp(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

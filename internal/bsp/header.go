package bsp

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// On-disk layout of a compiled map. All integers are little-endian.
const (
	// Ident is "VBSP" read as a little-endian int32.
	Ident = 0x50534256

	// VersionMin and VersionMax bound the header versions the reader
	// accepts. 19 covers the earliest retail maps, 29 the latest branch.
	VersionMin = 19
	VersionMax = 29

	// HeaderLumps is the number of entries in the lump directory.
	HeaderLumps = 64

	// lumpEntrySize is the on-disk size of one directory entry.
	lumpEntrySize = 16

	// HeaderSize is the full fixed prefix: ident, version, lump directory,
	// map revision.
	HeaderSize = 4 + 4 + HeaderLumps*lumpEntrySize + 4

	// LumpEntities is the directory index of the entities lump.
	LumpEntities = 0
)

// ErrCompressedLump marks lump payloads stored LZMA-compressed.
var ErrCompressedLump = errors.New("lump is LZMA-compressed")

// lzmaMagic prefixes compressed lump payloads.
var lzmaMagic = []byte{'L', 'Z', 'M', 'A'}

// Lump is one directory entry locating a lump's payload in the file.
type Lump struct {
	FileOfs int32
	FileLen int32
	Version int32
	FourCC  [4]byte
}

// Header is the fixed-size prefix of a compiled map.
type Header struct {
	Version     int32
	Lumps       [HeaderLumps]Lump
	MapRevision int32
}

// FromBuf decodes the header from the start of buf.
func (h *Header) FromBuf(buf []byte) error {
	if len(buf) < HeaderSize {
		return errors.Errorf("file too small for header: %d bytes, need %d", len(buf), HeaderSize)
	}

	if ident := int32(binary.LittleEndian.Uint32(buf[0:4])); ident != Ident {
		return errors.Errorf("bad ident 0x%08x, want 0x%08x (\"VBSP\")", ident, Ident)
	}

	h.Version = int32(binary.LittleEndian.Uint32(buf[4:8]))
	if h.Version < VersionMin || h.Version > VersionMax {
		return errors.Errorf("unsupported version %d, want %d..%d", h.Version, VersionMin, VersionMax)
	}

	for i := range h.Lumps {
		off := 8 + i*lumpEntrySize
		h.Lumps[i] = Lump{
			FileOfs: int32(binary.LittleEndian.Uint32(buf[off:])),
			FileLen: int32(binary.LittleEndian.Uint32(buf[off+4:])),
			Version: int32(binary.LittleEndian.Uint32(buf[off+8:])),
		}
		copy(h.Lumps[i].FourCC[:], buf[off+12:off+16])
	}

	h.MapRevision = int32(binary.LittleEndian.Uint32(buf[8+HeaderLumps*lumpEntrySize:]))

	return nil
}

// LumpData extracts lump i's payload from the full file contents. A lump of
// length zero yields a nil payload and no error.
func (h *Header) LumpData(buf []byte, i int) ([]byte, error) {
	lump := h.Lumps[i]
	if lump.FileLen == 0 {
		return nil, nil
	}

	ofs, n := int(lump.FileOfs), int(lump.FileLen)
	if ofs < 0 || n < 0 || ofs+n > len(buf) {
		return nil, errors.Errorf("lump %d out of bounds: offset %d length %d in %d-byte file", i, ofs, n, len(buf))
	}

	data := buf[ofs : ofs+n]
	if bytes.HasPrefix(data, lzmaMagic) {
		return nil, errors.Wrapf(ErrCompressedLump, "lump %d", i)
	}

	return data, nil
}

// Package bsp reads compiled map files and extracts their entity property
// bags.
//
// Key capabilities:
//   - Header and lump directory decoding (little-endian, 64 lumps)
//   - Entities lump extraction with NUL truncation
//   - Quoted key/value block scanning with duplicate key handling
//   - Transparent gzip input for archived maps
//
// Lumps stored LZMA-compressed by console builds are detected and rejected
// with ErrCompressedLump; decompressing them is out of scope.
package bsp

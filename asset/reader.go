// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package asset

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pierrec/lz4"
)

// Open reads the archive index from r. It will also check that the
// file actually is an asset archive and return an error when it is
// not. The reader is retained for later file access.
func Open(r io.ReaderAt) (*Archive, error) {
	magicBytes := make([]byte, MagicLength)
	if _, err := r.ReadAt(magicBytes, 0); err != nil {
		return nil, ErrFileFormat
	}
	if !bytes.Equal(magicBytes, magic[:]) {
		return nil, ErrFileFormat
	}

	sizeBytes := make([]byte, HeaderSizeNumberLength)
	if _, err := r.ReadAt(sizeBytes, MagicLength); err != nil {
		return nil, ErrFileFormat
	}
	headerSize := int64(binary.LittleEndian.Uint64(sizeBytes))

	headerBytes := make([]byte, headerSize)
	if _, err := r.ReadAt(headerBytes, MagicLength+HeaderSizeNumberLength); err != nil {
		return nil, ErrFileFormat
	}

	var header Header
	if err := gobDecode(&header, headerBytes); err != nil {
		return nil, ErrFileFormat
	}

	entries := make(map[string]IndexEntry, len(header.Index))
	for _, e := range header.Index {
		entries[e.Name] = e
	}
	return &Archive{
		reader:      r,
		header:      header,
		entries:     entries,
		payloadBase: MagicLength + HeaderSizeNumberLength + headerSize,
	}, nil
}

// Archive provides concurrent io for an archive file, and can provide
// an io.Reader for each file separately to perform actions on.
type Archive struct {
	reader      io.ReaderAt
	header      Header
	entries     map[string]IndexEntry
	payloadBase int64
}

// Index returns the archive's file index in stored order.
func (a *Archive) Index() []IndexEntry {
	return a.header.Index
}

// ReadAll returns the entire decompressed contents of a file with a
// given name.
func (a *Archive) ReadAll(name string) ([]byte, error) {
	r, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	out := make([]byte, r.Size())
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Open returns a Reader streaming the decompressed contents of a file
// in the Archive.
func (a *Archive) Open(name string) (*Reader, error) {
	entry, ok := a.entries[name]
	if !ok {
		return nil, ErrNotFound
	}
	section := io.NewSectionReader(a.reader, a.payloadBase+entry.Offset, entry.CompressedSize)
	return &Reader{
		entry:        entry,
		decompressor: lz4.NewReader(section),
	}, nil
}

// Reader is a reader for a single file in an Archive. Decompression
// happens on the fly as it is read.
type Reader struct {
	entry        IndexEntry
	decompressor *lz4.Reader
}

// Size returns the decompressed size of the file.
func (r *Reader) Size() int64 {
	return r.entry.Size
}

func (r *Reader) Read(p []byte) (int, error) {
	return r.decompressor.Read(p)
}

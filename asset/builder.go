// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package asset

import (
	"bytes"
	"encoding/binary"
	"io"
	"sync"

	"github.com/pierrec/lz4"
)

// NewBuilder creates a new Builder. Do not fill the Index in
// the header, it will be overwritten anyway.
func NewBuilder(header Header) *Builder {
	header.Index = nil
	return &Builder{header: header}
}

type pendingFile struct {
	name       string
	size       int64
	compressed []byte
}

// Builder assembles an archive. Archives are versioned and cannot be
// appended to, the Builder is the only way to create one. Files are
// compressed as they are added and bundled together by WriteTo.
type Builder struct {
	header Header

	mutex sync.Mutex
	files []pendingFile
}

// Add compresses data from r and appends it under the given name.
// Blocks until lz4 finishes compression. Is safe to use concurrently
// in different goroutines.
func (b *Builder) Add(name string, r io.Reader) error {
	var compressed bytes.Buffer
	w := lz4.NewWriter(&compressed)
	written, err := io.Copy(w, r)
	if err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.files = append(b.files, pendingFile{
		name:       name,
		size:       written,
		compressed: compressed.Bytes(),
	})
	return nil
}

// WriteTo bundles everything added so far and writes out a complete
// archive, draining the Builder.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	header := b.header
	var offset int64
	for _, f := range b.files {
		header.Index = append(header.Index, IndexEntry{
			Name:           f.name,
			Offset:         offset,
			Size:           f.size,
			CompressedSize: int64(len(f.compressed)),
		})
		offset += int64(len(f.compressed))
	}

	rawHeader, err := gobEncode(header)
	if err != nil {
		return 0, err
	}

	var total int64
	sizeBytes := make([]byte, HeaderSizeNumberLength)
	binary.LittleEndian.PutUint64(sizeBytes, uint64(len(rawHeader)))
	for _, chunk := range [][]byte{magic[:], sizeBytes, rawHeader} {
		n, err := w.Write(chunk)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	for _, f := range b.files {
		n, err := w.Write(f.compressed)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	b.files = b.files[:0]
	return total, nil
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package asset is an api for an lz4 backed archive format, suited for
// streaming resources out of. Unlike tar the index is known up front,
// before any file content is read. The archive itself is not compressed
// in any form, every file is individually compressed instead, so any
// one of them can be located and decompressed on the fly. This trades
// some space efficiency for getting resources from disk to a usable
// state as fast as possible. It can be read from concurrently.
package asset

import (
	"bytes"
	"encoding/gob"
	"errors"
)

// package errors
var (
	ErrFileFormat = errors.New("corrupted or not an asset archive")
	ErrNotFound   = errors.New("no such file in the archive")
)

// Sizes relevant to the fixed part of the file header.
const (
	MagicLength            = 4
	HeaderSizeNumberLength = 8
)

var magic = [MagicLength]byte{'E', 'P', 'K', '\x00'}

// IndexEntry is info for one file in the file index. Offset is
// relative to the end of the header.
type IndexEntry struct {
	Name           string
	Offset         int64
	Size           int64
	CompressedSize int64
}

// Header is the archive header.
type Header struct {
	Author      string
	DateCreated int64
	Version     int64
	Index       []IndexEntry
}

func gobEncode(data interface{}) ([]byte, error) {
	var encoded bytes.Buffer
	if err := gob.NewEncoder(&encoded).Encode(data); err != nil {
		return nil, err
	}
	return encoded.Bytes(), nil
}

func gobDecode(obj interface{}, bts []byte) error {
	return gob.NewDecoder(bytes.NewReader(bts)).Decode(obj)
}

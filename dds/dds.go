// Package dds parses the DDS compressed-texture container format: a
// fixed 128-byte header followed by the mip-chain payload. The package
// only classifies and validates; reading the payload and issuing
// uploads is the device layer's job.
package dds

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/devblok/ember/gfx"
)

// package errors
var (
	ErrFileFormat  = errors.New("corrupted or not a dds file")
	ErrPixelFormat = errors.New("unsupported dds pixel format")
)

// Magic is the little-endian "DDS " tag every container starts with.
const Magic = 0x20534444

// HeaderSize is the value the header's own size field must carry.
const HeaderSize = 124

// Header flag bits.
const (
	FlagCaps        = 0x00000001
	FlagHeight      = 0x00000002
	FlagWidth       = 0x00000004
	FlagPitch       = 0x00000008
	FlagPixelFormat = 0x00001000
	FlagMipMapCount = 0x00020000
	FlagLinearSize  = 0x00080000
	FlagDepth       = 0x00800000
)

// Pixel format flag bits.
const (
	PFAlphaPixels = 0x00000001
	PFFourCC      = 0x00000004
	PFIndexed     = 0x00000020
	PFRGB         = 0x00000040
)

// Capability bits.
const (
	CapsComplex  = 0x00000008
	CapsTexture  = 0x00001000
	CapsMipMap   = 0x00400000
	Caps2Cubemap = 0x00000200
	Caps2Volume  = 0x00200000
)

// Block-compression four-character codes, little endian.
const (
	FourCCDXT1 = 0x31545844
	FourCCDXT3 = 0x33545844
	FourCCDXT5 = 0x35545844
	FourCCATI1 = 0x31495441
	FourCCATI2 = 0x32495441
)

// PixelFormat is the pixel-format sub-structure of the header.
type PixelFormat struct {
	Size         uint32
	Flags        uint32
	FourCC       uint32
	RGBBitCount  uint32
	RBitMask     uint32
	GBitMask     uint32
	BBitMask     uint32
	AlphaBitMask uint32
}

// Caps is the capability sub-structure of the header.
type Caps struct {
	Caps1    uint32
	Caps2    uint32
	DDSX     uint32
	Reserved uint32
}

// Header is the on-disk container header, magic included.
type Header struct {
	Magic             uint32
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       PixelFormat
	Caps              Caps
	Reserved2         uint32
}

// LoadInfo describes how a classified pixel format reaches the device:
// whether payload bytes pass through a compressed upload, a palette
// expansion, or a plain upload, and with which native format enums.
type LoadInfo struct {
	Compressed bool
	Swap       bool
	Palette    bool
	BlockBytes int

	Internal     gfx.Enum
	InternalSRGB gfx.Enum
	External     gfx.Enum
	Type         gfx.Enum
}

var (
	loadInfoDXT1 = LoadInfo{
		Compressed: true, BlockBytes: 8,
		Internal: gfx.COMPRESSED_RGBA_S3TC_DXT1_EXT, InternalSRGB: gfx.COMPRESSED_SRGB_ALPHA_S3TC_DXT1_EXT,
	}
	loadInfoDXT3 = LoadInfo{
		Compressed: true, BlockBytes: 16,
		Internal: gfx.COMPRESSED_RGBA_S3TC_DXT3_EXT, InternalSRGB: gfx.COMPRESSED_SRGB_ALPHA_S3TC_DXT3_EXT,
	}
	loadInfoDXT5 = LoadInfo{
		Compressed: true, BlockBytes: 16,
		Internal: gfx.COMPRESSED_RGBA_S3TC_DXT5_EXT, InternalSRGB: gfx.COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT,
	}
	loadInfoATI1 = LoadInfo{
		Compressed: true, BlockBytes: 8,
		Internal: gfx.COMPRESSED_RED_RGTC1,
	}
	loadInfoATI2 = LoadInfo{
		Compressed: true, BlockBytes: 16,
		Internal: gfx.COMPRESSED_RG_RGTC2,
	}
	loadInfoBGRA8 = LoadInfo{
		BlockBytes: 4,
		Internal:   gfx.RGBA8, InternalSRGB: gfx.SRGB8_ALPHA8, External: gfx.BGRA, Type: gfx.UNSIGNED_BYTE,
	}
	loadInfoBGR8 = LoadInfo{
		BlockBytes: 3,
		Internal:   gfx.RGB8, InternalSRGB: gfx.SRGB8, External: gfx.BGR, Type: gfx.UNSIGNED_BYTE,
	}
	loadInfoBGR5A1 = LoadInfo{
		Swap: true, BlockBytes: 2,
		Internal: gfx.RGB5_A1, External: gfx.BGRA, Type: gfx.UNSIGNED_SHORT_1_5_5_5_REV,
	}
	loadInfoBGR565 = LoadInfo{
		Swap: true, BlockBytes: 2,
		Internal: gfx.RGB5, External: gfx.RGB, Type: gfx.UNSIGNED_SHORT_5_6_5,
	}
	loadInfoIndex8 = LoadInfo{
		Palette: true, BlockBytes: 1,
		Internal: gfx.RGB8, InternalSRGB: gfx.SRGB8, External: gfx.BGRA, Type: gfx.UNSIGNED_BYTE,
	}
)

// ParseHeader reads and validates the container header. The magic, the
// declared header size and the mandatory flag bits are checked before
// anything else touches the file.
func ParseHeader(r io.Reader) (Header, error) {
	var hdr Header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return Header{}, ErrFileFormat
	}
	if hdr.Magic != Magic || hdr.Size != HeaderSize ||
		hdr.Flags&FlagPixelFormat == 0 || hdr.Flags&FlagCaps == 0 {
		return Header{}, ErrFileFormat
	}
	return hdr, nil
}

// Identify classifies the pixel format. Predicates are checked in a
// fixed order, the first match wins, no match rejects the file.
func Identify(pf PixelFormat) (LoadInfo, error) {
	switch {
	case isDXT1(pf):
		return loadInfoDXT1, nil
	case isDXT3(pf):
		return loadInfoDXT3, nil
	case isDXT5(pf):
		return loadInfoDXT5, nil
	case isATI1(pf):
		return loadInfoATI1, nil
	case isATI2(pf):
		return loadInfoATI2, nil
	case isBGRA8(pf):
		return loadInfoBGRA8, nil
	case isBGR8(pf):
		return loadInfoBGR8, nil
	case isBGR5A1(pf):
		return loadInfoBGR5A1, nil
	case isBGR565(pf):
		return loadInfoBGR565, nil
	case isIndex8(pf):
		return loadInfoIndex8, nil
	}
	return LoadInfo{}, ErrPixelFormat
}

// MipCount returns the number of mip levels declared by the header,
// defaulting to 1 when the mip flag is absent.
func (h Header) MipCount() int {
	if h.Flags&FlagMipMapCount != 0 {
		return int(h.MipMapCount)
	}
	return 1
}

// Cubemap reports whether the container holds six faces.
func (h Header) Cubemap() bool {
	return h.Caps.Caps2&Caps2Cubemap != 0
}

// SizeDXTC returns the byte size of one block-compressed mip level.
func SizeDXTC(w, h int, format gfx.Enum) int {
	blockBytes := 16
	switch format {
	case gfx.COMPRESSED_RGBA_S3TC_DXT1_EXT, gfx.COMPRESSED_SRGB_ALPHA_S3TC_DXT1_EXT, gfx.COMPRESSED_RED_RGTC1:
		blockBytes = 8
	}
	return ((w + 3) / 4) * ((h + 3) / 4) * blockBytes
}

func isDXT1(pf PixelFormat) bool {
	return pf.Flags&PFFourCC != 0 && pf.FourCC == FourCCDXT1
}

func isDXT3(pf PixelFormat) bool {
	return pf.Flags&PFFourCC != 0 && pf.FourCC == FourCCDXT3
}

func isDXT5(pf PixelFormat) bool {
	return pf.Flags&PFFourCC != 0 && pf.FourCC == FourCCDXT5
}

func isATI1(pf PixelFormat) bool {
	return pf.Flags&PFFourCC != 0 && pf.FourCC == FourCCATI1
}

func isATI2(pf PixelFormat) bool {
	return pf.Flags&PFFourCC != 0 && pf.FourCC == FourCCATI2
}

func isBGRA8(pf PixelFormat) bool {
	return pf.Flags&PFRGB != 0 &&
		pf.Flags&PFAlphaPixels != 0 &&
		pf.RGBBitCount == 32 &&
		pf.RBitMask == 0xff0000 &&
		pf.GBitMask == 0xff00 &&
		pf.BBitMask == 0xff &&
		pf.AlphaBitMask == 0xff000000
}

func isBGR8(pf PixelFormat) bool {
	return pf.Flags&PFRGB != 0 &&
		pf.Flags&PFAlphaPixels == 0 &&
		pf.RGBBitCount == 24 &&
		pf.RBitMask == 0xff0000 &&
		pf.GBitMask == 0xff00 &&
		pf.BBitMask == 0xff
}

func isBGR5A1(pf PixelFormat) bool {
	return pf.Flags&PFRGB != 0 &&
		pf.Flags&PFAlphaPixels != 0 &&
		pf.RGBBitCount == 16 &&
		pf.RBitMask == 0x00007c00 &&
		pf.GBitMask == 0x000003e0 &&
		pf.BBitMask == 0x0000001f &&
		pf.AlphaBitMask == 0x00008000
}

func isBGR565(pf PixelFormat) bool {
	return pf.Flags&PFRGB != 0 &&
		pf.Flags&PFAlphaPixels == 0 &&
		pf.RGBBitCount == 16 &&
		pf.RBitMask == 0x0000f800 &&
		pf.GBitMask == 0x000007e0 &&
		pf.BBitMask == 0x0000001f
}

func isIndex8(pf PixelFormat) bool {
	return pf.Flags&PFIndexed != 0 && pf.RGBBitCount == 8
}

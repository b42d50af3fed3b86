package dds

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/devblok/ember/gfx"
)

func validHeader() Header {
	hdr := Header{
		Magic:  Magic,
		Size:   HeaderSize,
		Flags:  FlagCaps | FlagPixelFormat | FlagWidth | FlagHeight,
		Height: 64,
		Width:  64,
	}
	hdr.PixelFormat.Size = 32
	hdr.PixelFormat.Flags = PFFourCC
	hdr.PixelFormat.FourCC = FourCCDXT1
	hdr.Caps.Caps1 = CapsTexture
	return hdr
}

func headerBytes(hdr Header) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, hdr)
	return buf.Bytes()
}

func TestParseHeader(t *testing.T) {
	hdr, err := ParseHeader(bytes.NewReader(headerBytes(validHeader())))
	if err != nil {
		t.Fatalf("ParseHeader(): %s", err.Error())
	}
	if hdr.Width != 64 || hdr.Height != 64 {
		t.Errorf("unexpected dimensions %dx%d", hdr.Width, hdr.Height)
	}
}

func TestParseHeaderRejects(t *testing.T) {
	badMagic := validHeader()
	badMagic.Magic = 0x12345678

	badSize := validHeader()
	badSize.Size = 100

	noPixelFormat := validHeader()
	noPixelFormat.Flags &^= FlagPixelFormat

	noCaps := validHeader()
	noCaps.Flags &^= FlagCaps

	cases := []struct {
		name string
		data []byte
	}{
		{"truncated", headerBytes(validHeader())[:40]},
		{"bad magic", headerBytes(badMagic)},
		{"bad size field", headerBytes(badSize)},
		{"missing pixel format flag", headerBytes(noPixelFormat)},
		{"missing caps flag", headerBytes(noCaps)},
	}
	for _, c := range cases {
		if _, err := ParseHeader(bytes.NewReader(c.data)); err != ErrFileFormat {
			t.Errorf("%s: expected ErrFileFormat, got %v", c.name, err)
		}
	}
}

func TestIdentifyFourCC(t *testing.T) {
	cases := []struct {
		fourCC     uint32
		internal   gfx.Enum
		blockBytes int
	}{
		{FourCCDXT1, gfx.COMPRESSED_RGBA_S3TC_DXT1_EXT, 8},
		{FourCCDXT3, gfx.COMPRESSED_RGBA_S3TC_DXT3_EXT, 16},
		{FourCCDXT5, gfx.COMPRESSED_RGBA_S3TC_DXT5_EXT, 16},
		{FourCCATI1, gfx.COMPRESSED_RED_RGTC1, 8},
		{FourCCATI2, gfx.COMPRESSED_RG_RGTC2, 16},
	}
	for _, c := range cases {
		pf := PixelFormat{Flags: PFFourCC, FourCC: c.fourCC}
		li, err := Identify(pf)
		if err != nil {
			t.Errorf("fourCC 0x%08x: %s", c.fourCC, err.Error())
			continue
		}
		if !li.Compressed || li.Internal != c.internal || li.BlockBytes != c.blockBytes {
			t.Errorf("fourCC 0x%08x misclassified: %+v", c.fourCC, li)
		}
	}
}

func TestIdentifyUncompressed(t *testing.T) {
	bgra8 := PixelFormat{
		Flags: PFRGB | PFAlphaPixels, RGBBitCount: 32,
		RBitMask: 0xff0000, GBitMask: 0xff00, BBitMask: 0xff, AlphaBitMask: 0xff000000,
	}
	li, err := Identify(bgra8)
	if err != nil {
		t.Fatalf("Identify(bgra8): %s", err.Error())
	}
	if li.Compressed || li.Internal != gfx.RGBA8 || li.External != gfx.BGRA {
		t.Errorf("bgra8 misclassified: %+v", li)
	}

	bgr8 := PixelFormat{
		Flags: PFRGB, RGBBitCount: 24,
		RBitMask: 0xff0000, GBitMask: 0xff00, BBitMask: 0xff,
	}
	if li, err := Identify(bgr8); err != nil || li.BlockBytes != 3 {
		t.Errorf("bgr8 misclassified: %+v, %v", li, err)
	}

	bgr565 := PixelFormat{
		Flags: PFRGB, RGBBitCount: 16,
		RBitMask: 0xf800, GBitMask: 0x07e0, BBitMask: 0x001f,
	}
	if li, err := Identify(bgr565); err != nil || !li.Swap {
		t.Errorf("bgr565 misclassified: %+v, %v", li, err)
	}

	index8 := PixelFormat{Flags: PFIndexed, RGBBitCount: 8}
	if li, err := Identify(index8); err != nil || !li.Palette {
		t.Errorf("index8 misclassified: %+v, %v", li, err)
	}
}

func TestIdentifyRejectsUnknown(t *testing.T) {
	pf := PixelFormat{Flags: PFRGB, RGBBitCount: 48}
	if _, err := Identify(pf); err != ErrPixelFormat {
		t.Errorf("expected ErrPixelFormat, got %v", err)
	}
}

func TestMipCount(t *testing.T) {
	hdr := validHeader()
	if got := hdr.MipCount(); got != 1 {
		t.Errorf("expected default mip count 1, got %d", got)
	}

	hdr.Flags |= FlagMipMapCount
	hdr.MipMapCount = 7
	if got := hdr.MipCount(); got != 7 {
		t.Errorf("expected 7 mips, got %d", got)
	}
}

func TestCubemap(t *testing.T) {
	hdr := validHeader()
	if hdr.Cubemap() {
		t.Error("plain texture misread as a cubemap")
	}
	hdr.Caps.Caps2 = Caps2Cubemap
	if !hdr.Cubemap() {
		t.Error("cubemap caps bit not honoured")
	}
}

func TestSizeDXTC(t *testing.T) {
	cases := []struct {
		w, h   int
		format gfx.Enum
		want   int
	}{
		{4, 4, gfx.COMPRESSED_RGBA_S3TC_DXT1_EXT, 8},
		{4, 4, gfx.COMPRESSED_RGBA_S3TC_DXT5_EXT, 16},
		{8, 8, gfx.COMPRESSED_RGBA_S3TC_DXT1_EXT, 32},
		{1, 1, gfx.COMPRESSED_RGBA_S3TC_DXT1_EXT, 8},
		{5, 5, gfx.COMPRESSED_RGBA_S3TC_DXT5_EXT, 64},
		{4, 4, gfx.COMPRESSED_RED_RGTC1, 8},
	}
	for _, c := range cases {
		if got := SizeDXTC(c.w, c.h, c.format); got != c.want {
			t.Errorf("SizeDXTC(%d, %d, 0x%04x) = %d, want %d", c.w, c.h, uint32(c.format), got, c.want)
		}
	}
}

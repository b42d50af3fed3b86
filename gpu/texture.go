package gpu

import (
	"bytes"
	"io"

	"github.com/devblok/ember/dds"
	"github.com/devblok/ember/gfx"
)

// LoadTexture decodes a DDS container into the texture behind an
// allocated handle and returns its dimensions. Malformed containers
// return an error and leave no native object behind; the handle slot
// stays reserved and may be reused or destroyed by the caller.
func (d *Device) LoadTexture(handle TextureHandle, data []byte, flags TextureFlags) (TextureInfo, error) {
	d.checkThread()

	r := bytes.NewReader(data)
	hdr, err := dds.ParseHeader(r)
	if err != nil {
		d.log.Errorf("texture rejected: %s", err.Error())
		return TextureInfo{}, err
	}
	li, err := dds.Identify(hdr.PixelFormat)
	if err != nil {
		d.log.Errorf("texture rejected: %s", err.Error())
		return TextureInfo{}, err
	}

	internal := li.Internal
	if flags&TextureSRGB != 0 && li.InternalSRGB != 0 {
		internal = li.InternalSRGB
	}

	width := int(hdr.Width)
	height := int(hdr.Height)
	mips := hdr.MipCount()
	cubemap := hdr.Cubemap()

	target := gfx.Enum(gfx.TEXTURE_2D)
	if cubemap {
		target = gfx.TEXTURE_CUBE_MAP
	}

	tex := d.fns.CreateTexture()
	d.fns.BindTexture(target, tex)

	fail := func(err error) (TextureInfo, error) {
		d.fns.BindTexture(target, 0)
		d.fns.DeleteTexture(tex)
		d.log.Errorf("texture rejected: %s", err.Error())
		return TextureInfo{}, err
	}

	switch {
	case li.Compressed:
		if hdr.Flags&dds.FlagLinearSize == 0 ||
			dds.SizeDXTC(width, height, internal) != int(hdr.PitchOrLinearSize) {
			return fail(dds.ErrFileFormat)
		}
	case li.Palette:
		if hdr.Flags&dds.FlagPitch == 0 || hdr.PixelFormat.RGBBitCount != 8 ||
			int(hdr.PitchOrLinearSize)*height != width*height*li.BlockBytes {
			return fail(dds.ErrFileFormat)
		}
	}

	var palette []byte
	if li.Palette {
		palette = make([]byte, 4*256)
		if _, err := io.ReadFull(r, palette); err != nil {
			return fail(dds.ErrFileFormat)
		}
	}

	faces := 1
	if cubemap {
		faces = 6
	}
	for face := 0; face < faces; face++ {
		faceTarget := target
		if cubemap {
			faceTarget = gfx.TEXTURE_CUBE_MAP_POSITIVE_X + gfx.Enum(face)
		}

		w, h := width, height
		for mip := 0; mip < mips; mip++ {
			switch {
			case li.Compressed:
				size := dds.SizeDXTC(w, h, internal)
				buf := make([]byte, size)
				if _, err := io.ReadFull(r, buf); err != nil {
					return fail(dds.ErrFileFormat)
				}
				d.fns.CompressedTexImage2D(faceTarget, mip, internal, w, h, buf)
			case li.Palette:
				buf := make([]byte, w*h*li.BlockBytes)
				if _, err := io.ReadFull(r, buf); err != nil {
					return fail(dds.ErrFileFormat)
				}
				expanded := make([]byte, len(buf)*4)
				for i, idx := range buf {
					copy(expanded[i*4:], palette[int(idx)*4:int(idx)*4+4])
				}
				d.fns.TexImage2D(faceTarget, mip, internal, w, h, li.External, li.Type, expanded)
			default:
				if li.Swap {
					d.fns.PixelStorei(gfx.UNPACK_SWAP_BYTES, 1)
				}
				buf := make([]byte, w*h*li.BlockBytes)
				if _, err := io.ReadFull(r, buf); err != nil {
					return fail(dds.ErrFileFormat)
				}
				d.fns.TexImage2D(faceTarget, mip, internal, w, h, li.External, li.Type, buf)
				if li.Swap {
					d.fns.PixelStorei(gfx.UNPACK_SWAP_BYTES, 0)
				}
			}

			w = halve(w)
			h = halve(h)
		}
	}

	d.fns.TexParameteri(target, gfx.TEXTURE_MAX_LEVEL, mips-1)
	if mips > 1 {
		d.fns.TexParameteri(target, gfx.TEXTURE_MIN_FILTER, int(gfx.LINEAR_MIPMAP_LINEAR))
	} else {
		d.fns.TexParameteri(target, gfx.TEXTURE_MIN_FILTER, int(gfx.LINEAR))
	}
	d.fns.TexParameteri(target, gfx.TEXTURE_MAG_FILTER, int(gfx.LINEAR))
	d.fns.BindTexture(target, 0)
	d.checkGL("gpu.LoadTexture")

	t := &d.textures[handle]
	t.handle = tex
	t.cubemap = cubemap

	return TextureInfo{
		Width:   width,
		Height:  height,
		Depth:   1,
		Layers:  1,
		Mips:    mips,
		Cubemap: cubemap,
	}, nil
}

// halve steps one mip level down, clamping at 1.
func halve(v int) int {
	v /= 2
	if v < 1 {
		return 1
	}
	return v
}

// CreateTexture creates an uncompressed runtime texture, used for
// render targets and procedurally filled images. data may be nil to
// leave the contents undefined.
func (d *Device) CreateTexture(handle TextureHandle, width, height int, format TextureFormat, data []byte) {
	d.checkThread()

	internal, external, xtype := nativeFormat(format)

	tex := d.fns.CreateTexture()
	d.fns.BindTexture(gfx.TEXTURE_2D, tex)
	d.fns.TexImage2D(gfx.TEXTURE_2D, 0, internal, width, height, external, xtype, data)
	d.fns.TexParameteri(gfx.TEXTURE_2D, gfx.TEXTURE_MIN_FILTER, int(gfx.LINEAR))
	d.fns.TexParameteri(gfx.TEXTURE_2D, gfx.TEXTURE_MAG_FILTER, int(gfx.LINEAR))
	d.fns.BindTexture(gfx.TEXTURE_2D, 0)
	d.checkGL("gpu.CreateTexture")

	t := &d.textures[handle]
	t.handle = tex
	t.cubemap = false
}

func nativeFormat(format TextureFormat) (internal, external, xtype gfx.Enum) {
	switch format {
	case TextureD24:
		return gfx.DEPTH_COMPONENT24, gfx.DEPTH_COMPONENT, gfx.UNSIGNED_INT
	case TextureD24S8:
		return gfx.DEPTH24_STENCIL8, gfx.DEPTH_STENCIL, gfx.UNSIGNED_INT_24_8
	case TextureD32:
		return gfx.DEPTH_COMPONENT32, gfx.DEPTH_COMPONENT, gfx.UNSIGNED_INT
	case TextureSRGBFormat:
		return gfx.SRGB8, gfx.RGB, gfx.UNSIGNED_BYTE
	case TextureSRGBA:
		return gfx.SRGB8_ALPHA8, gfx.RGBA, gfx.UNSIGNED_BYTE
	case TextureRGBA8:
		return gfx.RGBA8, gfx.RGBA, gfx.UNSIGNED_BYTE
	case TextureRGBA16F:
		return gfx.RGBA16F, gfx.RGBA, gfx.HALF_FLOAT
	case TextureR16F:
		return gfx.R16F, gfx.RED, gfx.HALF_FLOAT
	case TextureR16:
		return gfx.R16, gfx.RED, gfx.UNSIGNED_SHORT
	case TextureR32F:
		return gfx.R32F, gfx.RED, gfx.FLOAT
	default:
		panic("gpu: unknown texture format")
	}
}

// GetTextureInfo peeks a DDS container's header without touching the
// device, for sizing allocations before upload.
func GetTextureInfo(data []byte) (TextureInfo, error) {
	hdr, err := dds.ParseHeader(bytes.NewReader(data))
	if err != nil {
		return TextureInfo{}, err
	}
	return TextureInfo{
		Width:   int(hdr.Width),
		Height:  int(hdr.Height),
		Depth:   1,
		Layers:  1,
		Mips:    hdr.MipCount(),
		Cubemap: hdr.Cubemap(),
	}, nil
}

// DestroyTexture releases the native object and recycles the handle.
func (d *Device) DestroyTexture(handle TextureHandle) {
	d.checkThread()

	d.fns.DeleteTexture(d.textures[handle].handle)

	d.handleMutex.Lock()
	d.texturePool.dealloc(int(handle))
	d.handleMutex.Unlock()
}

// BindTexture binds the texture to a sampler unit, selecting the
// cubemap target when the texture was loaded as one. An invalid handle
// unbinds the unit.
func (d *Device) BindTexture(unit int, handle TextureHandle) {
	d.checkThread()

	d.fns.ActiveTexture(gfx.TEXTURE0 + gfx.Enum(unit))
	if !handle.Valid() {
		d.fns.BindTexture(gfx.TEXTURE_2D, 0)
		return
	}
	t := &d.textures[handle]
	if t.cubemap {
		d.fns.BindTexture(gfx.TEXTURE_CUBE_MAP, t.handle)
	} else {
		d.fns.BindTexture(gfx.TEXTURE_2D, t.handle)
	}
}

// GetTextureImage reads back the base level as tightly packed RGBA8.
// The buffer must hold width*height*4 bytes.
func (d *Device) GetTextureImage(handle TextureHandle, buf []byte) {
	d.checkThread()
	d.fns.GetTextureImage(d.textures[handle].handle, 0, gfx.RGBA, gfx.UNSIGNED_BYTE, buf)
	d.checkGL("gpu.GetTextureImage")
}

package gpu_test

import (
	"testing"

	"github.com/devblok/ember/gfx"
	"github.com/devblok/ember/gpu"
)

// makeTarget creates a runtime texture and tells the fake which
// internal format a later classification query should report.
func makeTarget(d *gpu.Device, f *fakeFuncs, format gpu.TextureFormat, internal gfx.Enum) gpu.TextureHandle {
	h := d.AllocTextureHandle()
	d.CreateTexture(h, 128, 128, format, nil)
	c, _ := f.last("CreateTexture")
	f.internalFormats[c.args[0].(uint32)] = int(internal)
	return h
}

func TestCreateFramebufferClassifiesAttachments(t *testing.T) {
	d, f, _ := newTestDevice(t)

	color := makeTarget(d, f, gpu.TextureRGBA8, gfx.RGBA8)
	depth := makeTarget(d, f, gpu.TextureD24, gfx.DEPTH_COMPONENT24)

	fb := d.CreateFramebuffer([]gpu.TextureHandle{color, depth})
	if !fb.Valid() {
		t.Fatal("expected a valid framebuffer")
	}

	var colorBound, depthBound bool
	for _, c := range f.calls {
		if c.name != "NamedFramebufferTexture" || c.args[2] == uint32(0) {
			continue
		}
		switch c.args[1] {
		case gfx.Enum(gfx.COLOR_ATTACHMENT0):
			colorBound = true
		case gfx.Enum(gfx.DEPTH_ATTACHMENT):
			depthBound = true
		}
	}
	if !colorBound {
		t.Error("the color texture should land on the first color attachment")
	}
	if !depthBound {
		t.Error("the depth texture should land on the depth attachment")
	}
}

func TestCreateFramebufferClearsUnusedAttachments(t *testing.T) {
	d, f, _ := newTestDevice(t)

	color := makeTarget(d, f, gpu.TextureRGBA8, gfx.RGBA8)
	fb := d.CreateFramebuffer([]gpu.TextureHandle{color})
	if !fb.Valid() {
		t.Fatal("expected a valid framebuffer")
	}

	cleared := 0
	for _, c := range f.calls {
		if c.name == "NamedFramebufferTexture" && c.args[2] == uint32(0) {
			cleared++
		}
	}
	if cleared != 7 {
		t.Errorf("expected 7 cleared color attachments, got %d", cleared)
	}
	if !f.called("NamedFramebufferRenderbuffer") {
		t.Error("an absent depth texture should clear the depth attachment")
	}
}

func TestCreateFramebufferIncomplete(t *testing.T) {
	d, f, _ := newTestDevice(t)

	f.fbStatus = 0x8CD6
	color := makeTarget(d, f, gpu.TextureRGBA8, gfx.RGBA8)
	fb := d.CreateFramebuffer([]gpu.TextureHandle{color})
	if fb.Valid() {
		t.Fatal("an incomplete framebuffer must not produce a handle")
	}
	if !f.called("DeleteFramebuffer") {
		t.Error("the native framebuffer must be released")
	}
}

func TestSetFramebuffer(t *testing.T) {
	d, f, _ := newTestDevice(t)

	color := makeTarget(d, f, gpu.TextureRGBA8, gfx.RGBA8)
	fb := d.CreateFramebuffer([]gpu.TextureHandle{color})

	d.SetFramebuffer(fb, true)
	if c, ok := f.last("Enable"); !ok || c.args[0] != gfx.Enum(gfx.FRAMEBUFFER_SRGB) {
		t.Error("expected sRGB writes enabled")
	}
	if c, ok := f.last("DrawBuffers"); !ok || len(c.args[0].([]gfx.Enum)) != 1 {
		t.Error("expected one draw buffer")
	}

	d.SetFramebuffer(gpu.InvalidFramebuffer, false)
	if c, ok := f.last("BindFramebuffer"); !ok || c.args[1] != uint32(0) {
		t.Error("an invalid handle should bind the default surface")
	}
}

func TestBlitFramebufferDefaultTarget(t *testing.T) {
	d, f, _ := newTestDevice(t)

	color := makeTarget(d, f, gpu.TextureRGBA8, gfx.RGBA8)
	fb := d.CreateFramebuffer([]gpu.TextureHandle{color})

	d.BlitFramebuffer(fb, gpu.InvalidFramebuffer, 128, 128, 640, 480)
	if !f.called("BlitFramebuffer") {
		t.Fatal("expected a blit")
	}

	var draw uint32 = 99
	for _, c := range f.calls {
		if c.name == "BindFramebuffer" && c.args[0] == gfx.Enum(gfx.DRAW_FRAMEBUFFER) {
			draw = c.args[1].(uint32)
		}
	}
	if draw != 0 {
		t.Errorf("expected the default surface as destination, got %d", draw)
	}
}

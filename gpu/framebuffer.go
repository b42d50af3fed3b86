package gpu

import "github.com/devblok/ember/gfx"

// depthFormat reports whether a native internal format is a depth or
// depth-stencil format, which decides the attachment point.
func depthFormat(internal int) bool {
	switch gfx.Enum(internal) {
	case gfx.DEPTH24_STENCIL8, gfx.DEPTH_COMPONENT24, gfx.DEPTH_COMPONENT32:
		return true
	}
	return false
}

// CreateFramebuffer builds a framebuffer from the given textures and
// validates its completeness. An incomplete combination releases the
// native object and returns InvalidFramebuffer.
func (d *Device) CreateFramebuffer(textures []TextureHandle) FramebufferHandle {
	d.checkThread()

	d.handleMutex.Lock()
	if d.framebufferPool.full() {
		d.handleMutex.Unlock()
		d.log.Error("out of free framebuffer slots")
		return InvalidFramebuffer
	}
	id := d.framebufferPool.alloc()
	d.handleMutex.Unlock()

	d.framebuffers[id].handle = d.fns.CreateFramebuffer()
	handle := FramebufferHandle(id)
	d.UpdateFramebuffer(handle, textures)

	d.fns.BindFramebuffer(gfx.FRAMEBUFFER, d.framebuffers[id].handle)
	status := d.fns.CheckFramebufferStatus(gfx.FRAMEBUFFER)
	d.fns.BindFramebuffer(gfx.FRAMEBUFFER, 0)
	if status != gfx.FRAMEBUFFER_COMPLETE {
		d.log.Errorf("framebuffer incomplete, status 0x%04x", uint32(status))
		d.fns.DeleteFramebuffer(d.framebuffers[id].handle)
		d.handleMutex.Lock()
		d.framebufferPool.dealloc(id)
		d.handleMutex.Unlock()
		return InvalidFramebuffer
	}

	d.checkGL("gpu.CreateFramebuffer")
	return handle
}

// UpdateFramebuffer reattaches the framebuffer's textures. Each texture
// is classified by its internal format: depth formats go to the depth
// attachment, everything else fills consecutive color attachments.
// Attachment points beyond the given set are cleared.
func (d *Device) UpdateFramebuffer(handle FramebufferHandle, textures []TextureHandle) {
	d.checkThread()

	fb := &d.framebuffers[handle]
	depthBound := false
	colors := 0
	for _, th := range textures {
		tex := d.textures[th].handle
		d.fns.BindTexture(gfx.TEXTURE_2D, tex)
		internal := d.fns.GetTexLevelParameteri(gfx.TEXTURE_2D, 0, gfx.TEXTURE_INTERNAL_FORMAT)
		d.fns.BindTexture(gfx.TEXTURE_2D, 0)

		if depthFormat(internal) {
			d.fns.NamedFramebufferTexture(fb.handle, gfx.DEPTH_ATTACHMENT, tex, 0)
			depthBound = true
			continue
		}
		d.fns.NamedFramebufferTexture(fb.handle, gfx.COLOR_ATTACHMENT0+gfx.Enum(colors), tex, 0)
		colors++
	}

	max := d.fns.GetInteger(gfx.MAX_COLOR_ATTACHMENTS)
	for i := colors; i < max; i++ {
		d.fns.NamedFramebufferTexture(fb.handle, gfx.COLOR_ATTACHMENT0+gfx.Enum(i), 0, 0)
	}
	if !depthBound {
		d.fns.NamedFramebufferRenderbuffer(fb.handle, gfx.DEPTH_ATTACHMENT, 0)
	}

	fb.colorsCount = colors
	d.checkGL("gpu.UpdateFramebuffer")
}

// SetFramebuffer makes the framebuffer the render target, or the
// default surface when the handle is invalid. srgb toggles the linear
// to sRGB conversion on write.
func (d *Device) SetFramebuffer(handle FramebufferHandle, srgb bool) {
	d.checkThread()

	if srgb {
		d.fns.Enable(gfx.FRAMEBUFFER_SRGB)
	} else {
		d.fns.Disable(gfx.FRAMEBUFFER_SRGB)
	}

	if !handle.Valid() {
		d.fns.BindFramebuffer(gfx.FRAMEBUFFER, 0)
		return
	}

	fb := &d.framebuffers[handle]
	d.fns.BindFramebuffer(gfx.FRAMEBUFFER, fb.handle)
	bufs := make([]gfx.Enum, fb.colorsCount)
	for i := range bufs {
		bufs[i] = gfx.COLOR_ATTACHMENT0 + gfx.Enum(i)
	}
	if len(bufs) > 0 {
		d.fns.DrawBuffers(bufs)
	}
	d.checkGL("gpu.SetFramebuffer")
}

// DestroyFramebuffer releases the native object and recycles the
// handle. Attached textures are untouched.
func (d *Device) DestroyFramebuffer(handle FramebufferHandle) {
	d.checkThread()

	d.fns.DeleteFramebuffer(d.framebuffers[handle].handle)

	d.handleMutex.Lock()
	d.framebufferPool.dealloc(int(handle))
	d.handleMutex.Unlock()
}

// BlitFramebuffer copies the color plane between two framebuffers. An
// invalid handle on either side names the default surface.
func (d *Device) BlitFramebuffer(src, dst FramebufferHandle, srcWidth, srcHeight, dstWidth, dstHeight int) {
	d.checkThread()

	var srcFB, dstFB uint32
	if src.Valid() {
		srcFB = d.framebuffers[src].handle
	}
	if dst.Valid() {
		dstFB = d.framebuffers[dst].handle
	}

	d.fns.BindFramebuffer(gfx.READ_FRAMEBUFFER, srcFB)
	d.fns.BindFramebuffer(gfx.DRAW_FRAMEBUFFER, dstFB)
	d.fns.BlitFramebuffer(0, 0, srcWidth, srcHeight, 0, 0, dstWidth, dstHeight, gfx.COLOR_BUFFER_BIT, gfx.NEAREST)
	d.fns.BindFramebuffer(gfx.FRAMEBUFFER, 0)
	d.checkGL("gpu.BlitFramebuffer")
}

package gpu

import "github.com/devblok/ember/gfx"

// SetVertexBuffer binds the buffer as the vertex source and points the
// attribute arrays at it per the declaration. attribMap remaps
// declaration entries to attribute indices; a negative entry disables
// that attribute. A nil declaration disables every attribute array.
func (d *Device) SetVertexBuffer(decl *VertexDecl, handle BufferHandle, offset int, attribMap []int) {
	d.checkThread()

	if decl == nil {
		max := d.fns.GetInteger(gfx.MAX_VERTEX_ATTRIBS)
		for i := 0; i < max; i++ {
			d.fns.DisableVertexAttribArray(i)
		}
		return
	}

	d.fns.BindBuffer(gfx.ARRAY_BUFFER, d.buffers[handle].handle)
	for i := 0; i < decl.Count; i++ {
		index := i
		if attribMap != nil {
			index = attribMap[i]
		}
		if index < 0 {
			d.fns.DisableVertexAttribArray(i)
			continue
		}

		attr := &decl.Attributes[i]
		if attr.AsInt {
			d.fns.VertexAttribIPointer(index, attr.Components, attr.Type.native(), decl.Size, offset+attr.Offset)
		} else {
			d.fns.VertexAttribPointer(index, attr.Components, attr.Type.native(), attr.Normalized, decl.Size, offset+attr.Offset)
		}
		d.fns.EnableVertexAttribArray(index)
	}
}

// SetIndexBuffer binds the buffer as the index source for indexed
// draws.
func (d *Device) SetIndexBuffer(handle BufferHandle) {
	d.checkThread()
	d.fns.BindBuffer(gfx.ELEMENT_ARRAY_BUFFER, d.buffers[handle].handle)
}

// DrawArrays issues a non-indexed draw.
func (d *Device) DrawArrays(primitive PrimitiveType, first, count int) {
	d.checkThread()
	d.fns.DrawArrays(primitive.native(), first, count)
	d.checkGL("gpu.DrawArrays")
}

// DrawElements issues an indexed draw with 16-bit indices, starting at
// the given index offset into the bound index buffer.
func (d *Device) DrawElements(primitive PrimitiveType, offset, count int) {
	d.checkThread()
	d.fns.DrawElements(primitive.native(), count, gfx.UNSIGNED_SHORT, offset*2)
	d.checkGL("gpu.DrawElements")
}

// DrawTriangles is DrawElements over the whole bound index buffer range
// as a triangle list.
func (d *Device) DrawTriangles(count int) {
	d.DrawElements(PrimitiveTriangles, 0, count)
}

// SetState applies a fixed-function state bit set. Bits not present are
// explicitly disabled, so the set fully describes the state.
func (d *Device) SetState(flags StateFlags) {
	d.checkThread()

	if flags&StateDepthTest != 0 {
		d.fns.Enable(gfx.DEPTH_TEST)
	} else {
		d.fns.Disable(gfx.DEPTH_TEST)
	}

	switch {
	case flags&StateCullFront != 0 && flags&StateCullBack != 0:
		d.fns.Enable(gfx.CULL_FACE)
		d.fns.CullFace(gfx.FRONT_AND_BACK)
	case flags&StateCullFront != 0:
		d.fns.Enable(gfx.CULL_FACE)
		d.fns.CullFace(gfx.FRONT)
	case flags&StateCullBack != 0:
		d.fns.Enable(gfx.CULL_FACE)
		d.fns.CullFace(gfx.BACK)
	default:
		d.fns.Disable(gfx.CULL_FACE)
	}

	if flags&StateWireframe != 0 {
		d.fns.PolygonMode(gfx.FRONT_AND_BACK, gfx.LINE)
	} else {
		d.fns.PolygonMode(gfx.FRONT_AND_BACK, gfx.FILL)
	}
}

// Blending toggles standard alpha blending.
func (d *Device) Blending(enable bool) {
	d.checkThread()

	if enable {
		d.fns.Enable(gfx.BLEND)
		d.fns.BlendFunc(gfx.SRC_ALPHA, gfx.ONE_MINUS_SRC_ALPHA)
	} else {
		d.fns.Disable(gfx.BLEND)
	}
}

// Scissor restricts rendering to a rectangle. Zero width and height
// disable the scissor test.
func (d *Device) Scissor(x, y, width, height int) {
	d.checkThread()

	if width == 0 && height == 0 {
		d.fns.Disable(gfx.SCISSOR_TEST)
		return
	}
	d.fns.Enable(gfx.SCISSOR_TEST)
	d.fns.Scissor(x, y, width, height)
}

// Viewport sets the rendering viewport rectangle.
func (d *Device) Viewport(x, y, width, height int) {
	d.checkThread()
	d.fns.Viewport(x, y, width, height)
}

// Clear fills the selected planes of the current render target. Any
// bound program is unbound first so stale state cannot leak into the
// clear.
func (d *Device) Clear(flags ClearFlags, color [4]float32, depth float64) {
	d.checkThread()

	d.fns.UseProgram(0)

	var mask uint32
	if flags&ClearColor != 0 {
		d.fns.ClearColor(color[0], color[1], color[2], color[3])
		mask |= gfx.COLOR_BUFFER_BIT
	}
	if flags&ClearDepth != 0 {
		d.fns.ClearDepth(depth)
		mask |= gfx.DEPTH_BUFFER_BIT
	}
	d.fns.Clear(mask)
	d.checkGL("gpu.Clear")
}

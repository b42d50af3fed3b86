package gpu_test

import "github.com/devblok/ember/gfx"

// call is one recorded native call with its arguments.
type call struct {
	name string
	args []interface{}
}

type activeUniform struct {
	name  string
	size  int
	xtype gfx.Enum
}

// fakeFuncs records every native call and answers queries from
// test-configured state, so device behaviour can be asserted without a
// context.
type fakeFuncs struct {
	calls []call

	nextID        uint32
	compileStatus int
	linkStatus    int
	fbStatus      gfx.Enum

	uniforms    []activeUniform
	uniformLocs map[string]int
	integers    map[gfx.Enum]int

	boundTexture    uint32
	internalFormats map[uint32]int
}

func newFake() *fakeFuncs {
	return &fakeFuncs{
		compileStatus: 1,
		linkStatus:    1,
		fbStatus:      gfx.FRAMEBUFFER_COMPLETE,
		uniformLocs:   make(map[string]int),
		integers: map[gfx.Enum]int{
			gfx.MAX_COLOR_ATTACHMENTS: 8,
			gfx.MAX_VERTEX_ATTRIBS:    16,
		},
		internalFormats: make(map[uint32]int),
	}
}

func (f *fakeFuncs) record(name string, args ...interface{}) {
	f.calls = append(f.calls, call{name: name, args: args})
}

func (f *fakeFuncs) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

func (f *fakeFuncs) called(name string) bool {
	return f.count(name) > 0
}

func (f *fakeFuncs) last(name string) (call, bool) {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].name == name {
			return f.calls[i], true
		}
	}
	return call{}, false
}

func (f *fakeFuncs) create() uint32 {
	f.nextID++
	return f.nextID
}

type fakePresenter struct {
	presented int
}

func (p *fakePresenter) Present() { p.presented++ }

func (f *fakeFuncs) ActiveTexture(unit gfx.Enum) { f.record("ActiveTexture", unit) }

func (f *fakeFuncs) AttachShader(program, shader uint32) { f.record("AttachShader", program, shader) }

func (f *fakeFuncs) BindBuffer(target gfx.Enum, buffer uint32) { f.record("BindBuffer", target, buffer) }

func (f *fakeFuncs) BindBufferRange(target gfx.Enum, index int, buffer uint32, offset, size int) {
	f.record("BindBufferRange", target, index, buffer, offset, size)
}

func (f *fakeFuncs) BindFramebuffer(target gfx.Enum, framebuffer uint32) {
	f.record("BindFramebuffer", target, framebuffer)
}

func (f *fakeFuncs) BindTexture(target gfx.Enum, texture uint32) {
	f.boundTexture = texture
	f.record("BindTexture", target, texture)
}

func (f *fakeFuncs) BindVertexArray(array uint32) { f.record("BindVertexArray", array) }

func (f *fakeFuncs) BlendFunc(sfactor, dfactor gfx.Enum) { f.record("BlendFunc", sfactor, dfactor) }

func (f *fakeFuncs) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask uint32, filter gfx.Enum) {
	f.record("BlitFramebuffer", srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (f *fakeFuncs) BufferData(target gfx.Enum, data []byte, usage gfx.Enum) {
	f.record("BufferData", target, data, usage)
}

func (f *fakeFuncs) BufferSubData(target gfx.Enum, offset int, data []byte) {
	f.record("BufferSubData", target, offset, data)
}

func (f *fakeFuncs) CheckFramebufferStatus(target gfx.Enum) gfx.Enum {
	f.record("CheckFramebufferStatus", target)
	return f.fbStatus
}

func (f *fakeFuncs) Clear(mask uint32) { f.record("Clear", mask) }

func (f *fakeFuncs) ClearColor(r, g, b, a float32) { f.record("ClearColor", r, g, b, a) }

func (f *fakeFuncs) ClearDepth(depth float64) { f.record("ClearDepth", depth) }

func (f *fakeFuncs) ClipControl(origin, depth gfx.Enum) { f.record("ClipControl", origin, depth) }

func (f *fakeFuncs) CompileShader(shader uint32) { f.record("CompileShader", shader) }

func (f *fakeFuncs) CompressedTexImage2D(target gfx.Enum, level int, internalFormat gfx.Enum, width, height int, data []byte) {
	f.record("CompressedTexImage2D", target, level, internalFormat, width, height, data)
}

func (f *fakeFuncs) CreateBuffer() uint32 {
	b := f.create()
	f.record("CreateBuffer", b)
	return b
}

func (f *fakeFuncs) CreateFramebuffer() uint32 {
	fb := f.create()
	f.record("CreateFramebuffer", fb)
	return fb
}

func (f *fakeFuncs) CreateProgram() uint32 {
	p := f.create()
	f.record("CreateProgram", p)
	return p
}

func (f *fakeFuncs) CreateQuery() uint32 {
	q := f.create()
	f.record("CreateQuery", q)
	return q
}

func (f *fakeFuncs) CreateShader(xtype gfx.Enum) uint32 {
	s := f.create()
	f.record("CreateShader", xtype, s)
	return s
}

func (f *fakeFuncs) CreateTexture() uint32 {
	t := f.create()
	f.record("CreateTexture", t)
	return t
}

func (f *fakeFuncs) CreateVertexArray() uint32 {
	a := f.create()
	f.record("CreateVertexArray", a)
	return a
}

func (f *fakeFuncs) CullFace(mode gfx.Enum) { f.record("CullFace", mode) }

func (f *fakeFuncs) DeleteBuffer(buffer uint32) { f.record("DeleteBuffer", buffer) }

func (f *fakeFuncs) DeleteFramebuffer(framebuffer uint32) { f.record("DeleteFramebuffer", framebuffer) }

func (f *fakeFuncs) DeleteProgram(program uint32) { f.record("DeleteProgram", program) }

func (f *fakeFuncs) DeleteQuery(query uint32) { f.record("DeleteQuery", query) }

func (f *fakeFuncs) DeleteShader(shader uint32) { f.record("DeleteShader", shader) }

func (f *fakeFuncs) DeleteTexture(texture uint32) { f.record("DeleteTexture", texture) }

func (f *fakeFuncs) DeleteVertexArray(array uint32) { f.record("DeleteVertexArray", array) }

func (f *fakeFuncs) DepthFunc(fn gfx.Enum) { f.record("DepthFunc", fn) }

func (f *fakeFuncs) Disable(cap gfx.Enum) { f.record("Disable", cap) }

func (f *fakeFuncs) DisableVertexAttribArray(index int) { f.record("DisableVertexAttribArray", index) }

func (f *fakeFuncs) DrawArrays(mode gfx.Enum, first, count int) {
	f.record("DrawArrays", mode, first, count)
}

func (f *fakeFuncs) DrawBuffers(bufs []gfx.Enum) { f.record("DrawBuffers", bufs) }

func (f *fakeFuncs) DrawElements(mode gfx.Enum, count int, xtype gfx.Enum, offset int) {
	f.record("DrawElements", mode, count, xtype, offset)
}

func (f *fakeFuncs) Enable(cap gfx.Enum) { f.record("Enable", cap) }

func (f *fakeFuncs) EnableVertexAttribArray(index int) { f.record("EnableVertexAttribArray", index) }

func (f *fakeFuncs) GenerateMipmap(target gfx.Enum) { f.record("GenerateMipmap", target) }

func (f *fakeFuncs) GetActiveUniform(program uint32, index int) (string, int, gfx.Enum) {
	u := f.uniforms[index]
	return u.name, u.size, u.xtype
}

func (f *fakeFuncs) GetAttribLocation(program uint32, name string) int {
	if loc, ok := f.uniformLocs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeFuncs) GetError() gfx.Enum { return gfx.NO_ERROR }

func (f *fakeFuncs) GetInteger(pname gfx.Enum) int { return f.integers[pname] }

func (f *fakeFuncs) GetProgrami(program uint32, pname gfx.Enum) int {
	switch pname {
	case gfx.LINK_STATUS:
		return f.linkStatus
	case gfx.ACTIVE_UNIFORMS:
		return len(f.uniforms)
	}
	return 0
}

func (f *fakeFuncs) GetProgramInfoLog(program uint32) string { return "fake link failure" }

func (f *fakeFuncs) GetQueryObjectUint64(query uint32, pname gfx.Enum) uint64 {
	f.record("GetQueryObjectUint64", query, pname)
	return 1
}

func (f *fakeFuncs) GetShaderi(shader uint32, pname gfx.Enum) int {
	if pname == gfx.COMPILE_STATUS {
		return f.compileStatus
	}
	return 0
}

func (f *fakeFuncs) GetShaderInfoLog(shader uint32) string { return "fake compile failure" }

func (f *fakeFuncs) GetTexLevelParameteri(target gfx.Enum, level int, pname gfx.Enum) int {
	return f.internalFormats[f.boundTexture]
}

func (f *fakeFuncs) GetTextureImage(texture uint32, level int, format, xtype gfx.Enum, buf []byte) {
	f.record("GetTextureImage", texture, level, format, xtype, len(buf))
}

func (f *fakeFuncs) GetUniformBlockIndex(program uint32, name string) int {
	f.record("GetUniformBlockIndex", program, name)
	if loc, ok := f.uniformLocs[name]; ok {
		return loc
	}
	return 0
}

func (f *fakeFuncs) GetUniformLocation(program uint32, name string) int {
	if loc, ok := f.uniformLocs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeFuncs) LinkProgram(program uint32) { f.record("LinkProgram", program) }

func (f *fakeFuncs) NamedFramebufferRenderbuffer(framebuffer uint32, attachment gfx.Enum, renderbuffer uint32) {
	f.record("NamedFramebufferRenderbuffer", framebuffer, attachment, renderbuffer)
}

func (f *fakeFuncs) NamedFramebufferTexture(framebuffer uint32, attachment gfx.Enum, texture uint32, level int) {
	f.record("NamedFramebufferTexture", framebuffer, attachment, texture, level)
}

func (f *fakeFuncs) PixelStorei(pname gfx.Enum, param int) { f.record("PixelStorei", pname, param) }

func (f *fakeFuncs) PolygonMode(face, mode gfx.Enum) { f.record("PolygonMode", face, mode) }

func (f *fakeFuncs) PopDebugGroup() { f.record("PopDebugGroup") }

func (f *fakeFuncs) PushDebugGroup(msg string) { f.record("PushDebugGroup", msg) }

func (f *fakeFuncs) QueryCounter(query uint32, target gfx.Enum) {
	f.record("QueryCounter", query, target)
}

func (f *fakeFuncs) Scissor(x, y, width, height int) { f.record("Scissor", x, y, width, height) }

func (f *fakeFuncs) ShaderSource(shader uint32, sources []string) {
	f.record("ShaderSource", shader, sources)
}

func (f *fakeFuncs) TexImage2D(target gfx.Enum, level int, internalFormat gfx.Enum, width, height int, format, xtype gfx.Enum, data []byte) {
	f.record("TexImage2D", target, level, internalFormat, width, height, format, xtype, data)
}

func (f *fakeFuncs) TexParameteri(target, pname gfx.Enum, param int) {
	f.record("TexParameteri", target, pname, param)
}

func (f *fakeFuncs) Uniform1fv(location, count int, v []float32) {
	f.record("Uniform1fv", location, count, v)
}

func (f *fakeFuncs) Uniform1i(location, v int) { f.record("Uniform1i", location, v) }

func (f *fakeFuncs) Uniform2fv(location, count int, v []float32) {
	f.record("Uniform2fv", location, count, v)
}

func (f *fakeFuncs) Uniform3fv(location, count int, v []float32) {
	f.record("Uniform3fv", location, count, v)
}

func (f *fakeFuncs) Uniform4fv(location, count int, v []float32) {
	f.record("Uniform4fv", location, count, v)
}

func (f *fakeFuncs) UniformBlockBinding(program uint32, index, binding int) {
	f.record("UniformBlockBinding", program, index, binding)
}

func (f *fakeFuncs) UniformMatrix3x4fv(location, count int, v []float32) {
	f.record("UniformMatrix3x4fv", location, count, v)
}

func (f *fakeFuncs) UniformMatrix4fv(location, count int, v []float32) {
	f.record("UniformMatrix4fv", location, count, v)
}

func (f *fakeFuncs) UniformMatrix4x3fv(location, count int, v []float32) {
	f.record("UniformMatrix4x3fv", location, count, v)
}

func (f *fakeFuncs) UseProgram(program uint32) { f.record("UseProgram", program) }

func (f *fakeFuncs) VertexAttribIPointer(index, size int, xtype gfx.Enum, stride, offset int) {
	f.record("VertexAttribIPointer", index, size, xtype, stride, offset)
}

func (f *fakeFuncs) VertexAttribPointer(index, size int, xtype gfx.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (f *fakeFuncs) Viewport(x, y, width, height int) { f.record("Viewport", x, y, width, height) }

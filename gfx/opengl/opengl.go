// Package opengl implements the gfx.Functions call surface over the
// OpenGL 4.5 core profile bindings.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/devblok/ember/gfx"
)

// New loads the OpenGL function pointers and returns the call surface.
// A context must be current on the calling thread.
func New() (Functions, error) {
	if err := gl.Init(); err != nil {
		return Functions{}, fmt.Errorf("gl.Init(): %s", err.Error())
	}
	return Functions{}, nil
}

// Functions issues every gfx.Functions call directly against OpenGL.
type Functions struct{}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func safeString(s string) string {
	return s + "\x00"
}

func (Functions) ActiveTexture(unit gfx.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (Functions) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Functions) BindBuffer(target gfx.Enum, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

func (Functions) BindBufferRange(target gfx.Enum, index int, buffer uint32, offset, size int) {
	gl.BindBufferRange(uint32(target), uint32(index), buffer, offset, size)
}

func (Functions) BindFramebuffer(target gfx.Enum, framebuffer uint32) {
	gl.BindFramebuffer(uint32(target), framebuffer)
}

func (Functions) BindTexture(target gfx.Enum, texture uint32) {
	gl.BindTexture(uint32(target), texture)
}

func (Functions) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (Functions) BlendFunc(sfactor, dfactor gfx.Enum) {
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (Functions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask uint32, filter gfx.Enum) {
	gl.BlitFramebuffer(
		int32(srcX0), int32(srcY0), int32(srcX1), int32(srcY1),
		int32(dstX0), int32(dstY0), int32(dstX1), int32(dstY1),
		mask, uint32(filter))
}

func (Functions) BufferData(target gfx.Enum, data []byte, usage gfx.Enum) {
	gl.BufferData(uint32(target), len(data), ptr(data), uint32(usage))
}

func (Functions) BufferSubData(target gfx.Enum, offset int, data []byte) {
	gl.BufferSubData(uint32(target), offset, len(data), ptr(data))
}

func (Functions) CheckFramebufferStatus(target gfx.Enum) gfx.Enum {
	return gfx.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (Functions) Clear(mask uint32) {
	gl.Clear(mask)
}

func (Functions) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Functions) ClearDepth(depth float64) {
	gl.ClearDepth(depth)
}

func (Functions) ClipControl(origin, depth gfx.Enum) {
	gl.ClipControl(uint32(origin), uint32(depth))
}

func (Functions) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (Functions) CompressedTexImage2D(target gfx.Enum, level int, internalFormat gfx.Enum, width, height int, data []byte) {
	gl.CompressedTexImage2D(uint32(target), int32(level), uint32(internalFormat), int32(width), int32(height), 0, int32(len(data)), ptr(data))
}

func (Functions) CreateBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (Functions) CreateFramebuffer() uint32 {
	var f uint32
	gl.GenFramebuffers(1, &f)
	return f
}

func (Functions) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Functions) CreateQuery() uint32 {
	var q uint32
	gl.GenQueries(1, &q)
	return q
}

func (Functions) CreateShader(xtype gfx.Enum) uint32 {
	return gl.CreateShader(uint32(xtype))
}

func (Functions) CreateTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (Functions) CreateVertexArray() uint32 {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return a
}

func (Functions) CullFace(mode gfx.Enum) {
	gl.CullFace(uint32(mode))
}

func (Functions) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (Functions) DeleteFramebuffer(framebuffer uint32) {
	gl.DeleteFramebuffers(1, &framebuffer)
}

func (Functions) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Functions) DeleteQuery(query uint32) {
	gl.DeleteQueries(1, &query)
}

func (Functions) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Functions) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (Functions) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (Functions) DepthFunc(fn gfx.Enum) {
	gl.DepthFunc(uint32(fn))
}

func (Functions) Disable(cap gfx.Enum) {
	gl.Disable(uint32(cap))
}

func (Functions) DisableVertexAttribArray(index int) {
	gl.DisableVertexAttribArray(uint32(index))
}

func (Functions) DrawArrays(mode gfx.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (Functions) DrawBuffers(bufs []gfx.Enum) {
	gl.DrawBuffers(int32(len(bufs)), (*uint32)(&bufs[0]))
}

func (Functions) DrawElements(mode gfx.Enum, count int, xtype gfx.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(xtype), gl.PtrOffset(offset))
}

func (Functions) Enable(cap gfx.Enum) {
	gl.Enable(uint32(cap))
}

func (Functions) EnableVertexAttribArray(index int) {
	gl.EnableVertexAttribArray(uint32(index))
}

func (Functions) GenerateMipmap(target gfx.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (Functions) GetActiveUniform(program uint32, index int) (string, int, gfx.Enum) {
	var (
		buf    [256]byte
		length int32
		size   int32
		xtype  uint32
	)
	gl.GetActiveUniform(program, uint32(index), int32(len(buf)), &length, &size, &xtype, &buf[0])
	return string(buf[:length]), int(size), gfx.Enum(xtype)
}

func (Functions) GetAttribLocation(program uint32, name string) int {
	return int(gl.GetAttribLocation(program, gl.Str(safeString(name))))
}

func (Functions) GetError() gfx.Enum {
	return gfx.Enum(gl.GetError())
}

func (Functions) GetInteger(pname gfx.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (Functions) GetProgrami(program uint32, pname gfx.Enum) int {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return int(v)
}

func (Functions) GetProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	buf := make([]byte, length+1)
	gl.GetProgramInfoLog(program, length, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (Functions) GetQueryObjectUint64(query uint32, pname gfx.Enum) uint64 {
	var v uint64
	gl.GetQueryObjectui64v(query, uint32(pname), &v)
	return v
}

func (Functions) GetShaderi(shader uint32, pname gfx.Enum) int {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return int(v)
}

func (Functions) GetShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	buf := make([]byte, length+1)
	gl.GetShaderInfoLog(shader, length, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (Functions) GetTexLevelParameteri(target gfx.Enum, level int, pname gfx.Enum) int {
	var v int32
	gl.GetTexLevelParameteriv(uint32(target), int32(level), uint32(pname), &v)
	return int(v)
}

func (Functions) GetTextureImage(texture uint32, level int, format, xtype gfx.Enum, buf []byte) {
	gl.GetTextureImage(texture, int32(level), uint32(format), uint32(xtype), int32(len(buf)), ptr(buf))
}

func (Functions) GetUniformBlockIndex(program uint32, name string) int {
	return int(gl.GetUniformBlockIndex(program, gl.Str(safeString(name))))
}

func (Functions) GetUniformLocation(program uint32, name string) int {
	return int(gl.GetUniformLocation(program, gl.Str(safeString(name))))
}

func (Functions) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Functions) NamedFramebufferRenderbuffer(framebuffer uint32, attachment gfx.Enum, renderbuffer uint32) {
	gl.NamedFramebufferRenderbuffer(framebuffer, uint32(attachment), gl.RENDERBUFFER, renderbuffer)
}

func (Functions) NamedFramebufferTexture(framebuffer uint32, attachment gfx.Enum, texture uint32, level int) {
	gl.NamedFramebufferTexture(framebuffer, uint32(attachment), texture, int32(level))
}

func (Functions) PixelStorei(pname gfx.Enum, param int) {
	gl.PixelStorei(uint32(pname), int32(param))
}

func (Functions) PolygonMode(face, mode gfx.Enum) {
	gl.PolygonMode(uint32(face), uint32(mode))
}

func (Functions) PopDebugGroup() {
	gl.PopDebugGroup()
}

func (Functions) PushDebugGroup(msg string) {
	gl.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, -1, gl.Str(safeString(msg)))
}

func (Functions) QueryCounter(query uint32, target gfx.Enum) {
	gl.QueryCounter(query, uint32(target))
}

func (Functions) Scissor(x, y, width, height int) {
	gl.Scissor(int32(x), int32(y), int32(width), int32(height))
}

func (Functions) ShaderSource(shader uint32, sources []string) {
	terminated := make([]string, len(sources))
	for i, src := range sources {
		terminated[i] = safeString(src)
	}
	ptrs, free := gl.Strs(terminated...)
	defer free()
	gl.ShaderSource(shader, int32(len(terminated)), ptrs, nil)
}

func (Functions) TexImage2D(target gfx.Enum, level int, internalFormat gfx.Enum, width, height int, format, xtype gfx.Enum, data []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(xtype), ptr(data))
}

func (Functions) TexParameteri(target, pname gfx.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (Functions) Uniform1fv(location, count int, v []float32) {
	gl.Uniform1fv(int32(location), int32(count), &v[0])
}

func (Functions) Uniform1i(location, v int) {
	gl.Uniform1i(int32(location), int32(v))
}

func (Functions) Uniform2fv(location, count int, v []float32) {
	gl.Uniform2fv(int32(location), int32(count), &v[0])
}

func (Functions) Uniform3fv(location, count int, v []float32) {
	gl.Uniform3fv(int32(location), int32(count), &v[0])
}

func (Functions) Uniform4fv(location, count int, v []float32) {
	gl.Uniform4fv(int32(location), int32(count), &v[0])
}

func (Functions) UniformBlockBinding(program uint32, index, binding int) {
	gl.UniformBlockBinding(program, uint32(index), uint32(binding))
}

func (Functions) UniformMatrix3x4fv(location, count int, v []float32) {
	gl.UniformMatrix3x4fv(int32(location), int32(count), false, &v[0])
}

func (Functions) UniformMatrix4fv(location, count int, v []float32) {
	gl.UniformMatrix4fv(int32(location), int32(count), false, &v[0])
}

func (Functions) UniformMatrix4x3fv(location, count int, v []float32) {
	gl.UniformMatrix4x3fv(int32(location), int32(count), false, &v[0])
}

func (Functions) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Functions) VertexAttribIPointer(index, size int, xtype gfx.Enum, stride, offset int) {
	gl.VertexAttribIPointer(uint32(index), int32(size), uint32(xtype), int32(stride), gl.PtrOffset(offset))
}

func (Functions) VertexAttribPointer(index, size int, xtype gfx.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(index), int32(size), uint32(xtype), normalized, int32(stride), gl.PtrOffset(offset))
}

func (Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

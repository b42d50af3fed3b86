// Package gfx defines the native rendering surface that device layers
// are built on top of. Implementations translate these calls into a
// concrete graphics API, the rest of the engine only ever talks to the
// interfaces defined here.
package gfx

// Releasable defines any memory-occupying item that can be freed.
type Releasable interface {

	// Release releases memory occupied by the implementing structure.
	Release()
}

// Presenter swaps the presentation surface. It is owned by whatever
// created the window and is handed to the device at initialisation.
type Presenter interface {

	// Present makes the current back buffer visible.
	Present()
}

// Functions is the raw call surface the device layer issues against.
// It mirrors the OpenGL entry points the layer needs, one method per
// native call, so an implementation stays a mechanical translation.
// All methods must be called from the thread that owns the context.
type Functions interface {
	ActiveTexture(unit Enum)
	AttachShader(program, shader uint32)
	BindBuffer(target Enum, buffer uint32)
	BindBufferRange(target Enum, index int, buffer uint32, offset, size int)
	BindFramebuffer(target Enum, framebuffer uint32)
	BindTexture(target Enum, texture uint32)
	BindVertexArray(array uint32)
	BlendFunc(sfactor, dfactor Enum)
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask uint32, filter Enum)
	BufferData(target Enum, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	CheckFramebufferStatus(target Enum) Enum
	Clear(mask uint32)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	ClipControl(origin, depth Enum)
	CompileShader(shader uint32)
	CompressedTexImage2D(target Enum, level int, internalFormat Enum, width, height int, data []byte)
	CreateBuffer() uint32
	CreateFramebuffer() uint32
	CreateProgram() uint32
	CreateQuery() uint32
	CreateShader(xtype Enum) uint32
	CreateTexture() uint32
	CreateVertexArray() uint32
	CullFace(mode Enum)
	DeleteBuffer(buffer uint32)
	DeleteFramebuffer(framebuffer uint32)
	DeleteProgram(program uint32)
	DeleteQuery(query uint32)
	DeleteShader(shader uint32)
	DeleteTexture(texture uint32)
	DeleteVertexArray(array uint32)
	DepthFunc(fn Enum)
	Disable(cap Enum)
	DisableVertexAttribArray(index int)
	DrawArrays(mode Enum, first, count int)
	DrawBuffers(bufs []Enum)
	DrawElements(mode Enum, count int, xtype Enum, offset int)
	Enable(cap Enum)
	EnableVertexAttribArray(index int)
	GenerateMipmap(target Enum)
	GetActiveUniform(program uint32, index int) (name string, size int, xtype Enum)
	GetAttribLocation(program uint32, name string) int
	GetError() Enum
	GetInteger(pname Enum) int
	GetProgrami(program uint32, pname Enum) int
	GetProgramInfoLog(program uint32) string
	GetQueryObjectUint64(query uint32, pname Enum) uint64
	GetShaderi(shader uint32, pname Enum) int
	GetShaderInfoLog(shader uint32) string
	GetTexLevelParameteri(target Enum, level int, pname Enum) int
	GetTextureImage(texture uint32, level int, format, xtype Enum, buf []byte)
	GetUniformLocation(program uint32, name string) int
	LinkProgram(program uint32)
	NamedFramebufferRenderbuffer(framebuffer uint32, attachment Enum, renderbuffer uint32)
	NamedFramebufferTexture(framebuffer uint32, attachment Enum, texture uint32, level int)
	PixelStorei(pname Enum, param int)
	PolygonMode(face, mode Enum)
	PopDebugGroup()
	PushDebugGroup(msg string)
	QueryCounter(query uint32, target Enum)
	Scissor(x, y, width, height int)
	ShaderSource(shader uint32, sources []string)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, xtype Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	Uniform1fv(location, count int, v []float32)
	Uniform1i(location, v int)
	Uniform2fv(location, count int, v []float32)
	Uniform3fv(location, count int, v []float32)
	Uniform4fv(location, count int, v []float32)
	UniformBlockBinding(program uint32, index, binding int)
	UniformMatrix3x4fv(location, count int, v []float32)
	UniformMatrix4fv(location, count int, v []float32)
	UniformMatrix4x3fv(location, count int, v []float32)
	UseProgram(program uint32)
	VertexAttribIPointer(index, size int, xtype Enum, stride, offset int)
	VertexAttribPointer(index, size int, xtype Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
	GetUniformBlockIndex(program uint32, name string) int
}

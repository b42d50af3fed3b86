package gpu

import "github.com/devblok/ember/gfx"

// ShaderType represents the type of a shader stage source.
type ShaderType int

// Identifies shader stages with their types.
const (
	VertexShaderType ShaderType = iota
	FragmentShaderType
	UnknownShaderType
)

func (t ShaderType) String() string {
	switch t {
	case VertexShaderType:
		return "vertex shader"
	case FragmentShaderType:
		return "fragment shader"
	default:
		return "unknown shader type"
	}
}

// UniformType is the semantic type of a uniform slot.
type UniformType int

// Uniform slot types.
const (
	UniformInt UniformType = iota
	UniformFloat
	UniformVec2
	UniformVec3
	UniformVec4
	UniformMat4
	UniformMat4x3
	UniformMat3x4
)

// elementSize returns the byte size of one element of the type.
// Unknown types are a programming error.
func elementSize(t UniformType) int {
	switch t {
	case UniformInt:
		return 4
	case UniformFloat:
		return 4
	case UniformVec2:
		return 8
	case UniformVec3:
		return 12
	case UniformVec4:
		return 16
	case UniformMat4:
		return 64
	case UniformMat4x3:
		return 48
	case UniformMat3x4:
		return 48
	default:
		panic("gpu: unknown uniform type")
	}
}

// PrimitiveType selects the primitive topology of a draw call.
type PrimitiveType int

// Draw call primitive topologies.
const (
	PrimitiveTriangles PrimitiveType = iota
	PrimitiveTriangleStrip
	PrimitiveLines
)

func (t PrimitiveType) native() gfx.Enum {
	switch t {
	case PrimitiveTriangles:
		return gfx.TRIANGLES
	case PrimitiveTriangleStrip:
		return gfx.TRIANGLE_STRIP
	case PrimitiveLines:
		return gfx.LINES
	default:
		panic("gpu: unknown primitive type")
	}
}

// StateFlags is a bit set of fixed-function render state.
type StateFlags uint64

// Render state bits.
const (
	StateDepthTest StateFlags = 1 << iota
	StateCullFront
	StateCullBack
	StateWireframe
)

// ClearFlags selects which planes a Clear call touches.
type ClearFlags uint32

// Clear planes.
const (
	ClearColor ClearFlags = 1 << iota
	ClearDepth
)

// TextureFlags modify texture creation.
type TextureFlags uint32

// Texture creation flags.
const (
	// TextureSRGB selects the sRGB internal format variant.
	TextureSRGB TextureFlags = 1 << iota
)

// TextureFormat is a runtime-texture pixel format.
type TextureFormat int

// Runtime texture formats.
const (
	TextureD24 TextureFormat = iota
	TextureD24S8
	TextureD32
	TextureSRGBFormat
	TextureSRGBA
	TextureRGBA8
	TextureRGBA16F
	TextureR16F
	TextureR16
	TextureR32F
)

// TextureInfo describes a decoded or peeked texture container.
type TextureInfo struct {
	Width   int
	Height  int
	Depth   int
	Layers  int
	Mips    int
	Cubemap bool
}

// AttributeType is the component type of a vertex attribute.
type AttributeType int

// Vertex attribute component types.
const (
	AttributeFloat AttributeType = iota
	AttributeU8
	AttributeI16
)

func attributeSize(t AttributeType) int {
	switch t {
	case AttributeFloat:
		return 4
	case AttributeU8:
		return 1
	case AttributeI16:
		return 2
	default:
		panic("gpu: unknown attribute type")
	}
}

func (t AttributeType) native() gfx.Enum {
	switch t {
	case AttributeFloat:
		return gfx.FLOAT
	case AttributeU8:
		return gfx.UNSIGNED_BYTE
	case AttributeI16:
		return gfx.SHORT
	default:
		panic("gpu: unknown attribute type")
	}
}

// MaxVertexAttributes caps the attributes of one vertex declaration.
const MaxVertexAttributes = 16

// Attribute is one entry of a vertex declaration.
type Attribute struct {
	Components int
	Offset     int
	Type       AttributeType
	Normalized bool
	AsInt      bool
}

// VertexDecl declares the attribute layout of a vertex buffer. Byte
// offsets accumulate in declaration order.
type VertexDecl struct {
	Attributes [MaxVertexAttributes]Attribute
	Count      int
	Size       int
}

// AddAttribute appends an attribute to the declaration. Exceeding
// MaxVertexAttributes is a contract violation by the caller.
func (d *VertexDecl) AddAttribute(components int, t AttributeType, normalized, asInt bool) {
	if d.Count >= MaxVertexAttributes {
		panic("gpu: vertex declaration overflow")
	}

	attr := &d.Attributes[d.Count]
	attr.Components = components
	attr.Type = t
	attr.Normalized = normalized
	attr.AsInt = asInt
	attr.Offset = 0
	if d.Count > 0 {
		prev := &d.Attributes[d.Count-1]
		attr.Offset = prev.Offset + prev.Components*attributeSize(prev.Type)
	}
	d.Size = attr.Offset + components*attributeSize(t)
	d.Count++
}

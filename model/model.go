package model

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/ember/gpu"
)

// Object represents the engine supported model
type Object interface {

	// SetPosition sets the object's current position in space.
	// Has to be thread-safe
	SetPosition(glm.Mat4)

	// Position gets the object's current position in space.
	// Has to be thread-safe
	Position() glm.Mat4

	// SetRotation sets the object's rotation matrix.
	// Has to be thread-safe
	SetRotation(glm.Mat4)

	// Rotation gets the object's rotation matrix.
	// Has to be thread-safe
	Rotation() glm.Mat4

	// Vertices returns the vertices for device use,
	// so it has to match the vertex declaration exactly
	Vertices() []Vertex
}

// Vertex is a model vertex
type Vertex struct {
	Pos    glm.Vec3
	Normal glm.Vec3
	UV     glm.Vec2
}

// Uniform defines a model-view-projection object
type Uniform struct {
	Model      glm.Mat4
	View       glm.Mat4
	Projection glm.Mat4
}

// VertexDeclaration returns the device attribute layout of Vertex
func VertexDeclaration() gpu.VertexDecl {
	var decl gpu.VertexDecl
	decl.AddAttribute(3, gpu.AttributeFloat, false, false)
	decl.AddAttribute(3, gpu.AttributeFloat, false, false)
	decl.AddAttribute(2, gpu.AttributeFloat, false, false)
	return decl
}

// VertexBytes packs vertices into the byte layout the declaration
// describes, ready for a buffer upload
func VertexBytes(vertices []Vertex) []byte {
	var buf bytes.Buffer
	for _, v := range vertices {
		for _, f := range []float32{
			v.Pos[0], v.Pos[1], v.Pos[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.UV[0], v.UV[1],
		} {
			var raw [4]byte
			binary.LittleEndian.PutUint32(raw[:], math.Float32bits(f))
			buf.Write(raw[:])
		}
	}
	return buf.Bytes()
}

// IndexBytes packs 16 bit indices for an index buffer upload
func IndexBytes(indices []uint16) []byte {
	out := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(out[i*2:], idx)
	}
	return out
}

// NewStatic creates a non-animated object from vertex data
func NewStatic(vertices []Vertex) *Static {
	return &Static{
		vertices: vertices,
		position: glm.Ident4(),
		rotation: glm.Ident4(),
	}
}

// Static is an Object with no animation state
type Static struct {
	mutex sync.RWMutex

	vertices []Vertex
	position glm.Mat4
	rotation glm.Mat4
}

// SetPosition sets the object's current position in space
func (s *Static) SetPosition(m glm.Mat4) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.position = m
}

// Position gets the object's current position in space
func (s *Static) Position() glm.Mat4 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.position
}

// SetRotation sets the object's rotation matrix
func (s *Static) SetRotation(m glm.Mat4) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.rotation = m
}

// Rotation gets the object's rotation matrix
func (s *Static) Rotation() glm.Mat4 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.rotation
}

// Vertices returns the vertices for device use
func (s *Static) Vertices() []Vertex {
	return s.vertices
}

// Quad returns a unit quad on the XY plane, facing +Z
func Quad() *Static {
	return NewStatic([]Vertex{
		{Pos: glm.Vec3{-0.5, -0.5, 0}, Normal: glm.Vec3{0, 0, 1}, UV: glm.Vec2{0, 0}},
		{Pos: glm.Vec3{0.5, -0.5, 0}, Normal: glm.Vec3{0, 0, 1}, UV: glm.Vec2{1, 0}},
		{Pos: glm.Vec3{0.5, 0.5, 0}, Normal: glm.Vec3{0, 0, 1}, UV: glm.Vec2{1, 1}},
		{Pos: glm.Vec3{-0.5, -0.5, 0}, Normal: glm.Vec3{0, 0, 1}, UV: glm.Vec2{0, 0}},
		{Pos: glm.Vec3{0.5, 0.5, 0}, Normal: glm.Vec3{0, 0, 1}, UV: glm.Vec2{1, 1}},
		{Pos: glm.Vec3{-0.5, 0.5, 0}, Normal: glm.Vec3{0, 0, 1}, UV: glm.Vec2{0, 1}},
	})
}

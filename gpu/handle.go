package gpu

// Handles are opaque indices into the device's pools. They are unique
// only among currently live objects of their category: slots are
// recycled without a generation counter, so use after destroy silently
// aliases whatever object was allocated into the slot next. Holding a
// handle implies no ownership; create before use, destroy exactly once.

const invalidHandle = 0xffffffff

// BufferHandle identifies a buffer object.
type BufferHandle uint32

// TextureHandle identifies a texture object.
type TextureHandle uint32

// ProgramHandle identifies a linked program object.
type ProgramHandle uint32

// UniformHandle identifies a shared uniform slot.
type UniformHandle uint32

// FramebufferHandle identifies a framebuffer object.
type FramebufferHandle uint32

// QueryHandle identifies a timestamp query object.
type QueryHandle uint32

// Invalid sentinels, returned on capacity exhaustion or rejected input.
const (
	InvalidBuffer      BufferHandle      = invalidHandle
	InvalidTexture     TextureHandle     = invalidHandle
	InvalidProgram     ProgramHandle     = invalidHandle
	InvalidUniform     UniformHandle     = invalidHandle
	InvalidFramebuffer FramebufferHandle = invalidHandle
	InvalidQuery       QueryHandle       = invalidHandle
)

// Valid reports whether the handle refers to a live allocation.
func (h BufferHandle) Valid() bool { return h != InvalidBuffer }

// Valid reports whether the handle refers to a live allocation.
func (h TextureHandle) Valid() bool { return h != InvalidTexture }

// Valid reports whether the handle refers to a live allocation.
func (h ProgramHandle) Valid() bool { return h != InvalidProgram }

// Valid reports whether the handle refers to a live allocation.
func (h UniformHandle) Valid() bool { return h != InvalidUniform }

// Valid reports whether the handle refers to a live allocation.
func (h FramebufferHandle) Valid() bool { return h != InvalidFramebuffer }

// Valid reports whether the handle refers to a live allocation.
func (h QueryHandle) Valid() bool { return h != InvalidQuery }

package gpu

import (
	"hash/crc32"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AllocUniform resolves a named uniform slot, creating it on first
// reference. Slots are shared process-wide by name: two programs that
// declare the same name write through the same backing storage. The
// first declaration fixes the type and count; a later resolve that
// disagrees is a contract violation and panics instead of silently
// aliasing differently-typed memory. May be called from any goroutine.
func (d *Device) AllocUniform(name string, utype UniformType, count int) UniformHandle {
	nameHash := crc32.ChecksumIEEE([]byte(name))

	d.handleMutex.Lock()
	defer d.handleMutex.Unlock()

	if existing, ok := d.uniformNames[nameHash]; ok {
		u := &d.uniforms[existing]
		if u.utype != utype || u.count != count {
			panic("gpu: uniform " + name + " redeclared with a different type or count")
		}
		return existing
	}

	if d.uniformPool.full() {
		d.log.Error("out of free uniform slots")
		return InvalidUniform
	}
	id := d.uniformPool.alloc()
	u := &d.uniforms[id]
	u.utype = utype
	u.count = count
	u.name = name
	u.data = make([]byte, elementSize(utype)*count)

	handle := UniformHandle(id)
	d.uniformNames[nameHash] = handle
	return handle
}

// SetUniform1i writes an int into the slot's shadow storage. The value
// reaches the native side on the next UseProgram of any program that
// references the slot.
func (d *Device) SetUniform1i(handle UniformHandle, value int32) {
	d.checkThread()
	u := &d.uniforms[handle]
	if u.utype != UniformInt {
		panic("gpu: uniform " + u.name + " is not an int")
	}
	putUint32(u.data, uint32(value))
}

// SetUniform2f writes a vec2 into the slot's shadow storage.
func (d *Device) SetUniform2f(handle UniformHandle, value mgl32.Vec2) {
	d.checkThread()
	u := &d.uniforms[handle]
	if u.utype != UniformVec2 {
		panic("gpu: uniform " + u.name + " is not a vec2")
	}
	putFloats(u.data, value[:])
}

// SetUniform3f writes a vec3 into the slot's shadow storage.
func (d *Device) SetUniform3f(handle UniformHandle, value mgl32.Vec3) {
	d.checkThread()
	u := &d.uniforms[handle]
	if u.utype != UniformVec3 {
		panic("gpu: uniform " + u.name + " is not a vec3")
	}
	putFloats(u.data, value[:])
}

// SetUniform4f writes a vec4 into the slot's shadow storage.
func (d *Device) SetUniform4f(handle UniformHandle, value mgl32.Vec4) {
	d.checkThread()
	u := &d.uniforms[handle]
	if u.utype != UniformVec4 {
		panic("gpu: uniform " + u.name + " is not a vec4")
	}
	putFloats(u.data, value[:])
}

// SetUniformMatrix4f writes a mat4 into the slot's shadow storage.
func (d *Device) SetUniformMatrix4f(handle UniformHandle, value mgl32.Mat4) {
	d.checkThread()
	u := &d.uniforms[handle]
	if u.utype != UniformMat4 {
		panic("gpu: uniform " + u.name + " is not a mat4")
	}
	putFloats(u.data, value[:])
}

// SetUniformMatrix4x3f writes a mat4x3 into the slot's shadow storage.
func (d *Device) SetUniformMatrix4x3f(handle UniformHandle, value mgl32.Mat4x3) {
	d.checkThread()
	u := &d.uniforms[handle]
	if u.utype != UniformMat4x3 {
		panic("gpu: uniform " + u.name + " is not a mat4x3")
	}
	putFloats(u.data, value[:])
}

// SetUniformMatrix3x4f writes a mat3x4 into the slot's shadow storage.
func (d *Device) SetUniformMatrix3x4f(handle UniformHandle, value mgl32.Mat3x4) {
	d.checkThread()
	u := &d.uniforms[handle]
	if u.utype != UniformMat3x4 {
		panic("gpu: uniform " + u.name + " is not a mat3x4")
	}
	putFloats(u.data, value[:])
}

// SetUniformRaw copies raw bytes into the slot's shadow storage, for
// array uniforms. The data must not exceed the slot's size.
func (d *Device) SetUniformRaw(handle UniformHandle, data []byte) {
	d.checkThread()
	u := &d.uniforms[handle]
	if len(data) > len(u.data) {
		panic("gpu: uniform " + u.name + " write exceeds slot size")
	}
	copy(u.data, data)
}

// GetUniformLocation returns the program's resolved native location of
// a uniform slot, or -1 when the program does not reference it.
func (d *Device) GetUniformLocation(ph ProgramHandle, uh UniformHandle) int {
	prg := &d.programs[ph]
	for i := 0; i < prg.uniformsCount; i++ {
		if prg.uniforms[i].uniform == uh {
			return prg.uniforms[i].loc
		}
	}
	return -1
}

func putUint32(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

func putFloats(dst []byte, vals []float32) {
	for i, f := range vals {
		putUint32(dst[i*4:], math.Float32bits(f))
	}
}

func floatsOf(src []byte) []float32 {
	out := make([]float32, len(src)/4)
	for i := range out {
		bits := uint32(src[i*4]) | uint32(src[i*4+1])<<8 | uint32(src[i*4+2])<<16 | uint32(src[i*4+3])<<24
		out[i] = math.Float32frombits(bits)
	}
	return out
}

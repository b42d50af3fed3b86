package gpu

import "github.com/devblok/ember/gfx"

func (t ShaderType) native() gfx.Enum {
	switch t {
	case VertexShaderType:
		return gfx.VERTEX_SHADER
	case FragmentShaderType:
		return gfx.FRAGMENT_SHADER
	default:
		panic("gpu: unknown shader type")
	}
}

// CreateProgram compiles and links a program from per-stage sources and
// reflects its active uniforms into shared slots. prefixes are prepended
// to every stage, in order, for injected defines. name labels the
// program in logs. On any compile or link failure the handle pool is
// left untouched and InvalidProgram is returned.
func (d *Device) CreateProgram(srcs []string, types []ShaderType, prefixes []string, name string) ProgramHandle {
	d.checkThread()

	d.handleMutex.Lock()
	if d.programPool.full() {
		d.handleMutex.Unlock()
		d.log.Error("out of free program slots")
		return InvalidProgram
	}
	id := d.programPool.alloc()
	d.handleMutex.Unlock()

	prg := d.fns.CreateProgram()
	for i, src := range srcs {
		shd := d.fns.CreateShader(types[i].native())
		d.fns.ShaderSource(shd, append(append([]string{}, prefixes...), src))
		d.fns.CompileShader(shd)

		if d.fns.GetShaderi(shd, gfx.COMPILE_STATUS) == 0 {
			d.log.Errorf("failed to compile %s of %s: %s", types[i], name, d.fns.GetShaderInfoLog(shd))
			d.fns.DeleteShader(shd)
			d.fns.DeleteProgram(prg)
			d.releaseProgramSlot(id)
			return InvalidProgram
		}

		d.fns.AttachShader(prg, shd)
		d.fns.DeleteShader(shd)
	}

	d.fns.LinkProgram(prg)
	if d.fns.GetProgrami(prg, gfx.LINK_STATUS) == 0 {
		d.log.Errorf("failed to link %s: %s", name, d.fns.GetProgramInfoLog(prg))
		d.fns.DeleteProgram(prg)
		d.releaseProgramSlot(id)
		return InvalidProgram
	}

	p := &d.programs[id]
	p.handle = prg
	p.uniformsCount = 0

	count := d.fns.GetProgrami(prg, gfx.ACTIVE_UNIFORMS)
	if count > MaxProgramUniforms {
		d.log.Warnf("%s declares %d uniforms, only %d are tracked", name, count, MaxProgramUniforms)
		count = MaxProgramUniforms
	}
	for i := 0; i < count; i++ {
		uname, size, xtype := d.fns.GetActiveUniform(prg, i)
		utype, ok := uniformTypeOf(xtype)
		if !ok {
			d.log.Warnf("%s: uniform %s has an unsupported type 0x%04x", name, uname, uint32(xtype))
			continue
		}
		loc := d.fns.GetUniformLocation(prg, uname)
		if loc < 0 {
			continue
		}
		pu := &p.uniforms[p.uniformsCount]
		pu.loc = loc
		pu.uniform = d.AllocUniform(uname, utype, size)
		p.uniformsCount++
	}

	d.checkGL("gpu.CreateProgram")
	return ProgramHandle(id)
}

// uniformTypeOf maps a native uniform type to a slot type. Samplers map
// to int slots, holding the texture unit index.
func uniformTypeOf(xtype gfx.Enum) (UniformType, bool) {
	switch xtype {
	case gfx.INT, gfx.SAMPLER_2D, gfx.SAMPLER_CUBE:
		return UniformInt, true
	case gfx.FLOAT:
		return UniformFloat, true
	case gfx.FLOAT_VEC2:
		return UniformVec2, true
	case gfx.FLOAT_VEC3:
		return UniformVec3, true
	case gfx.FLOAT_VEC4:
		return UniformVec4, true
	case gfx.FLOAT_MAT4:
		return UniformMat4, true
	case gfx.FLOAT_MAT4x3:
		return UniformMat4x3, true
	case gfx.FLOAT_MAT3x4:
		return UniformMat3x4, true
	default:
		return 0, false
	}
}

// UseProgram makes the program current and flushes every uniform slot
// it references from shadow storage to the native side. An invalid
// handle unbinds the current program.
func (d *Device) UseProgram(handle ProgramHandle) {
	d.checkThread()

	if !handle.Valid() {
		d.fns.UseProgram(0)
		return
	}

	p := &d.programs[handle]
	d.fns.UseProgram(p.handle)
	for i := 0; i < p.uniformsCount; i++ {
		pu := &p.uniforms[i]
		if !pu.uniform.Valid() {
			continue
		}
		u := &d.uniforms[pu.uniform]
		switch u.utype {
		case UniformInt:
			v := uint32(u.data[0]) | uint32(u.data[1])<<8 | uint32(u.data[2])<<16 | uint32(u.data[3])<<24
			d.fns.Uniform1i(pu.loc, int(int32(v)))
		case UniformFloat:
			d.fns.Uniform1fv(pu.loc, u.count, floatsOf(u.data))
		case UniformVec2:
			d.fns.Uniform2fv(pu.loc, u.count, floatsOf(u.data))
		case UniformVec3:
			d.fns.Uniform3fv(pu.loc, u.count, floatsOf(u.data))
		case UniformVec4:
			d.fns.Uniform4fv(pu.loc, u.count, floatsOf(u.data))
		case UniformMat4:
			d.fns.UniformMatrix4fv(pu.loc, u.count, floatsOf(u.data))
		case UniformMat4x3:
			d.fns.UniformMatrix4x3fv(pu.loc, u.count, floatsOf(u.data))
		case UniformMat3x4:
			d.fns.UniformMatrix3x4fv(pu.loc, u.count, floatsOf(u.data))
		}
	}
	d.checkGL("gpu.UseProgram")
}

// DestroyProgram releases the native program and recycles the handle.
// The shared uniform slots it referenced stay allocated.
func (d *Device) DestroyProgram(handle ProgramHandle) {
	d.checkThread()

	d.fns.DeleteProgram(d.programs[handle].handle)
	d.releaseProgramSlot(int(handle))
}

// GetAttribLocation resolves a vertex attribute name in the program.
func (d *Device) GetAttribLocation(handle ProgramHandle, name string) int {
	d.checkThread()
	return d.fns.GetAttribLocation(d.programs[handle].handle, name)
}

// UniformBlockBinding assigns a named uniform block of the program to
// an indexed binding point, pairing with BindUniformBuffer.
func (d *Device) UniformBlockBinding(handle ProgramHandle, blockName string, binding int) {
	d.checkThread()

	prg := d.programs[handle].handle
	index := d.fns.GetUniformBlockIndex(prg, blockName)
	d.fns.UniformBlockBinding(prg, index, binding)
	d.checkGL("gpu.UniformBlockBinding")
}

func (d *Device) releaseProgramSlot(id int) {
	d.handleMutex.Lock()
	d.programPool.dealloc(id)
	d.handleMutex.Unlock()
}

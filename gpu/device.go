// Package gpu is a thin hardware-rendering abstraction: it owns every
// GPU-resident object behind small integer handles drawn from
// fixed-capacity pools and translates declarative draw state into
// native calls through a gfx.Functions backend.
//
// The layer is single-threaded by contract. Exactly one goroutine, the
// one that called Init and stays locked to its OS thread, may issue
// commands; every entry point asserts this and panics on violation.
// The only exception is handle allocation and deallocation, which is
// guarded by a spin lock and may be called from anywhere.
package gpu

import (
	log "github.com/sirupsen/logrus"

	"github.com/devblok/ember/gfx"
	"github.com/devblok/ember/internal/goid"
	"github.com/devblok/ember/internal/spin"
)

// Pool capacities, fixed at construction.
const (
	MaxBuffers         = 4096
	MaxTextures        = 4096
	MaxUniforms        = 256
	MaxPrograms        = 1024
	MaxProgramUniforms = 32
	MaxFramebuffers    = 256
	MaxQueries         = 2048
)

type buffer struct {
	handle uint32
}

type texture struct {
	handle  uint32
	cubemap bool
}

type uniform struct {
	utype UniformType
	count int
	data  []byte
	name  string
}

type framebuffer struct {
	handle      uint32
	colorsCount int
}

type query struct {
	handle uint32
}

type programUniform struct {
	loc     int
	uniform UniformHandle
}

type program struct {
	handle        uint32
	uniforms      [MaxProgramUniforms]programUniform
	uniformsCount int
}

// Device owns the object pools, the uniform name table and the native
// call surface. One instance lives for the process lifetime; there is
// no hidden global state.
type Device struct {
	fns       gfx.Functions
	presenter gfx.Presenter
	log       *log.Entry

	handleMutex spin.Mutex
	thread      uint64

	buffers     []buffer
	bufferPool  pool
	textures    []texture
	texturePool pool
	uniforms    []uniform
	uniformPool pool
	programs    []program
	programPool pool

	framebuffers    []framebuffer
	framebufferPool pool
	queries         []query
	queryPool       pool

	// uniformNames deduplicates uniform slots by name hash.
	uniformNames map[uint32]UniformHandle

	vao uint32
}

// NewDevice creates the pools and the uniform table. Handle allocation
// is usable immediately; native calls require Init first.
func NewDevice(fns gfx.Functions, presenter gfx.Presenter) *Device {
	return &Device{
		fns:          fns,
		presenter:    presenter,
		log:          log.WithField("component", "gpu"),
		buffers:      make([]buffer, MaxBuffers),
		bufferPool:   newPool(MaxBuffers),
		textures:     make([]texture, MaxTextures),
		texturePool:  newPool(MaxTextures),
		uniforms:     make([]uniform, MaxUniforms),
		uniformPool:  newPool(MaxUniforms),
		programs:     make([]program, MaxPrograms),
		programPool:  newPool(MaxPrograms),

		framebuffers:    make([]framebuffer, MaxFramebuffers),
		framebufferPool: newPool(MaxFramebuffers),
		queries:         make([]query, MaxQueries),
		queryPool:       newPool(MaxQueries),

		uniformNames: make(map[uint32]UniformHandle),
	}
}

// Init binds the device to the calling goroutine and prepares the
// context defaults. The caller must already hold a current native
// context and be locked to its OS thread.
func (d *Device) Init() error {
	d.thread = goid.Current()

	d.fns.ClipControl(gfx.LOWER_LEFT, gfx.ZERO_TO_ONE)
	d.fns.DepthFunc(gfx.GREATER)

	d.vao = d.fns.CreateVertexArray()
	d.fns.BindVertexArray(d.vao)

	d.checkGL("gpu.Init")
	return nil
}

// Shutdown releases the pools and the shared uniform storage. Uniform
// slots are never reclaimed individually; this is where they go.
func (d *Device) Shutdown() {
	d.checkThread()
	d.fns.DeleteVertexArray(d.vao)

	d.buffers = nil
	d.textures = nil
	for i := range d.uniforms {
		d.uniforms[i].data = nil
	}
	d.uniforms = nil
	d.programs = nil
	d.framebuffers = nil
	d.queries = nil
	d.uniformNames = nil
}

// SwapBuffers presents the back buffer.
func (d *Device) SwapBuffers() {
	d.checkThread()
	d.presenter.Present()
}

// AllocBufferHandle reserves a buffer slot. Unlike command issuance it
// may be called from any goroutine. Returns InvalidBuffer when the
// pool is exhausted.
func (d *Device) AllocBufferHandle() BufferHandle {
	d.handleMutex.Lock()
	defer d.handleMutex.Unlock()

	if d.bufferPool.full() {
		d.log.Error("out of free buffer slots")
		return InvalidBuffer
	}
	id := d.bufferPool.alloc()
	d.buffers[id].handle = 0
	return BufferHandle(id)
}

// AllocTextureHandle reserves a texture slot. May be called from any
// goroutine. Returns InvalidTexture when the pool is exhausted.
func (d *Device) AllocTextureHandle() TextureHandle {
	d.handleMutex.Lock()
	defer d.handleMutex.Unlock()

	if d.texturePool.full() {
		d.log.Error("out of free texture slots")
		return InvalidTexture
	}
	id := d.texturePool.alloc()
	d.textures[id].handle = 0
	return TextureHandle(id)
}

// checkThread asserts command-issuance thread affinity. A violation is
// a contract breach by the caller, not an environmental failure.
func (d *Device) checkThread() {
	if goid.Current() != d.thread {
		panic("gpu: call from a goroutine that does not own the device")
	}
}

// checkGL drains the native error state and logs anything found.
func (d *Device) checkGL(op string) {
	for {
		err := d.fns.GetError()
		if err == gfx.NO_ERROR {
			return
		}
		d.log.Errorf("%s: native error 0x%04x", op, uint32(err))
	}
}

// PushDebugGroup opens a named annotation scope in native traces.
func (d *Device) PushDebugGroup(msg string) {
	d.checkThread()
	d.fns.PushDebugGroup(msg)
}

// PopDebugGroup closes the innermost annotation scope.
func (d *Device) PopDebugGroup() {
	d.checkThread()
	d.fns.PopDebugGroup()
}

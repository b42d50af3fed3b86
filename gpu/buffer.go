package gpu

import "github.com/devblok/ember/gfx"

// CreateBuffer creates the native buffer object behind an allocated
// handle and uploads the initial contents, which may be nil.
func (d *Device) CreateBuffer(handle BufferHandle, data []byte) {
	d.checkThread()

	buf := d.fns.CreateBuffer()
	d.fns.BindBuffer(gfx.UNIFORM_BUFFER, buf)
	d.fns.BufferData(gfx.UNIFORM_BUFFER, data, gfx.STATIC_DRAW)
	d.fns.BindBuffer(gfx.UNIFORM_BUFFER, 0)
	d.checkGL("gpu.CreateBuffer")

	d.buffers[handle].handle = buf
}

// UpdateBuffer overwrites a byte range of the buffer's contents.
func (d *Device) UpdateBuffer(handle BufferHandle, offset int, data []byte) {
	d.checkThread()

	buf := d.buffers[handle].handle
	d.fns.BindBuffer(gfx.UNIFORM_BUFFER, buf)
	d.fns.BufferSubData(gfx.UNIFORM_BUFFER, offset, data)
	d.fns.BindBuffer(gfx.UNIFORM_BUFFER, 0)
	d.checkGL("gpu.UpdateBuffer")
}

// DestroyBuffer releases the native object and recycles the handle.
// The handle must not be used afterwards.
func (d *Device) DestroyBuffer(handle BufferHandle) {
	d.checkThread()

	d.fns.DeleteBuffer(d.buffers[handle].handle)

	d.handleMutex.Lock()
	d.bufferPool.dealloc(int(handle))
	d.handleMutex.Unlock()
}

// BindUniformBuffer binds a range of the buffer to an indexed uniform
// buffer binding point.
func (d *Device) BindUniformBuffer(index int, handle BufferHandle, offset, size int) {
	d.checkThread()
	d.fns.BindBufferRange(gfx.UNIFORM_BUFFER, index, d.buffers[handle].handle, offset, size)
}

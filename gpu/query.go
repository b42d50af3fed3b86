package gpu

import "github.com/devblok/ember/gfx"

// CreateQuery reserves a timestamp query object.
func (d *Device) CreateQuery() QueryHandle {
	d.checkThread()

	d.handleMutex.Lock()
	if d.queryPool.full() {
		d.handleMutex.Unlock()
		d.log.Error("out of free query slots")
		return InvalidQuery
	}
	id := d.queryPool.alloc()
	d.handleMutex.Unlock()

	d.queries[id].handle = d.fns.CreateQuery()
	return QueryHandle(id)
}

// QueryTimestamp records the device timeline position into the query.
func (d *Device) QueryTimestamp(handle QueryHandle) {
	d.checkThread()
	d.fns.QueryCounter(d.queries[handle].handle, gfx.TIMESTAMP)
}

// QueryResultAvailable polls whether the query result has landed, so a
// caller can avoid stalling on QueryResult.
func (d *Device) QueryResultAvailable(handle QueryHandle) bool {
	d.checkThread()
	return d.fns.GetQueryObjectUint64(d.queries[handle].handle, gfx.QUERY_RESULT_AVAILABLE) != 0
}

// QueryResult returns the recorded timestamp in nanoseconds, blocking
// until it is available.
func (d *Device) QueryResult(handle QueryHandle) uint64 {
	d.checkThread()
	return d.fns.GetQueryObjectUint64(d.queries[handle].handle, gfx.QUERY_RESULT)
}

// DestroyQuery releases the native object and recycles the handle.
func (d *Device) DestroyQuery(handle QueryHandle) {
	d.checkThread()

	d.fns.DeleteQuery(d.queries[handle].handle)

	d.handleMutex.Lock()
	d.queryPool.dealloc(int(handle))
	d.handleMutex.Unlock()
}

package gpu

// pool is a fixed-capacity slot allocator. Free slots are linked
// through a side array of next-free indices rather than through the
// slot storage itself, so it works uniformly for any element type.
// Allocation and deallocation are O(1) and recycling is LIFO. The pool
// performs no bounds checking on behalf of callers and never calls
// into native resources; releasing those is the caller's job.
type pool struct {
	next      []int32
	firstFree int32
}

const poolEnd = -1

func newPool(capacity int) pool {
	next := make([]int32, capacity)
	for i := range next {
		next[i] = int32(i + 1)
	}
	next[capacity-1] = poolEnd
	return pool{next: next}
}

// alloc pops the free-list head, or returns poolEnd when full.
func (p *pool) alloc() int {
	if p.firstFree == poolEnd {
		return poolEnd
	}
	id := p.firstFree
	p.firstFree = p.next[id]
	return int(id)
}

// dealloc pushes the index back onto the free-list head. The slot's
// native resource must already have been released.
func (p *pool) dealloc(idx int) {
	p.next[idx] = p.firstFree
	p.firstFree = int32(idx)
}

func (p *pool) full() bool {
	return p.firstFree == poolEnd
}

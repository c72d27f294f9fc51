package wire

import "sync/atomic"

// RingSize is the capacity of the receive ring. One slot stays empty to
// tell a full ring from an empty one.
const RingSize = 64

// Ring is a fixed-capacity single-producer/single-consumer byte queue.
// Push belongs to the byte-source callback, Pop to the processing loop.
// The distinct cursors, each written by exactly one side, make locks
// unnecessary.
type Ring struct {
	buf  [RingSize]byte
	head uint32 // consumer cursor
	tail uint32 // producer cursor
}

// Push appends one byte. It never blocks or allocates; when the ring is
// full the byte is dropped and false returned.
func (r *Ring) Push(b byte) bool {
	tail := atomic.LoadUint32(&r.tail)
	next := (tail + 1) % RingSize
	if next == atomic.LoadUint32(&r.head) {
		return false
	}
	r.buf[tail] = b
	atomic.StoreUint32(&r.tail, next)
	return true
}

// Pop removes the oldest byte. ok is false when the ring is empty.
func (r *Ring) Pop() (b byte, ok bool) {
	head := atomic.LoadUint32(&r.head)
	if head == atomic.LoadUint32(&r.tail) {
		return 0, false
	}
	b = r.buf[head]
	atomic.StoreUint32(&r.head, (head+1)%RingSize)
	return b, true
}

// Empty reports whether no byte is queued.
func (r *Ring) Empty() bool {
	return atomic.LoadUint32(&r.head) == atomic.LoadUint32(&r.tail)
}

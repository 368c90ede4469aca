// Package trace keeps the sliding window of velocity samples behind the
// oscilloscope display.
package trace

// Buffer is a bounded FIFO of scalar samples, oldest first. Capacity
// follows the viewport and may shrink at any time; excess samples are
// evicted from the front immediately.
type Buffer struct {
	samples  []float64
	capacity int
}

func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{capacity: capacity}
}

// SetCapacity adjusts the bound and evicts oldest samples if the buffer
// is now over it.
func (b *Buffer) SetCapacity(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	b.capacity = capacity
	b.evict()
}

// Push appends one sample, evicting from the front when full.
func (b *Buffer) Push(v float64) {
	b.samples = append(b.samples, v)
	b.evict()
}

func (b *Buffer) evict() {
	if n := len(b.samples) - b.capacity; n > 0 {
		b.samples = b.samples[n:]
	}
}

func (b *Buffer) Len() int      { return len(b.samples) }
func (b *Buffer) Capacity() int { return b.capacity }

// Values returns the window oldest-to-newest. The slice is a copy.
func (b *Buffer) Values() []float64 {
	out := make([]float64, len(b.samples))
	copy(out, b.samples)
	return out
}

// Reset drops all samples but keeps the capacity.
func (b *Buffer) Reset() { b.samples = b.samples[:0] }

package interp

// Deque is a growable ring buffer. The interpreter appends new instructions
// at the back, executes from the front, and pushes undone instructions back
// onto the front.
type Deque[T any] struct {
	buf  []T
	head int
	n    int
}

func (d *Deque[T]) Len() int {
	return d.n
}

func (d *Deque[T]) grow() {
	if d.n < len(d.buf) {
		return
	}
	size := len(d.buf) * 2
	if size == 0 {
		size = 8
	}
	buf := make([]T, size)
	for i := 0; i < d.n; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}

func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[(d.head+d.n)%len(d.buf)] = v
	d.n++
}

func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.n++
}

func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.n--
	return v, true
}

// Front returns a pointer to the front element, or nil when empty. The
// pointer is invalidated by the next push.
func (d *Deque[T]) Front() *T {
	if d.n == 0 {
		return nil
	}
	return &d.buf[d.head]
}

// Slice copies the contents front to back.
func (d *Deque[T]) Slice() []T {
	out := make([]T, d.n)
	for i := range out {
		out[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	return out
}

func (d *Deque[T]) Clear() {
	d.buf = nil
	d.head = 0
	d.n = 0
}

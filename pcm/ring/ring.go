package ring

import "fmt"

// Fixed is a ring buffer that always holds exactly len(storage) elements.
// Every push evicts and returns the oldest element. The initial contents are
// whatever the caller left in the backing slice.
type Fixed[T any] struct {
	data []T
	head int // index of the oldest element
}

// NewFixed wraps storage in a full ring buffer. The slice is used in place;
// the caller must not touch it afterwards.
func NewFixed[T any](storage []T) (*Fixed[T], error) {
	if len(storage) == 0 {
		return nil, fmt.Errorf("%w: fixed ring needs at least one slot", ErrZeroCapacity)
	}

	return &Fixed[T]{data: storage}, nil
}

// Push overwrites the oldest element with v and returns the evicted value.
func (r *Fixed[T]) Push(v T) T {
	old := r.data[r.head]
	r.data[r.head] = v

	r.head++
	if r.head == len(r.data) {
		r.head = 0
	}

	return old
}

// Len returns the number of elements, which equals the capacity.
func (r *Fixed[T]) Len() int { return len(r.data) }

// At returns the i-th oldest element.
func (r *Fixed[T]) At(i int) (T, error) {
	if i < 0 || i >= len(r.data) {
		var zero T
		return zero, fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, i, len(r.data))
	}

	return r.data[(r.head+i)%len(r.data)], nil
}

// Do calls fn for each element from oldest to newest.
func (r *Fixed[T]) Do(fn func(T)) {
	for i := range r.data {
		fn(r.data[(r.head+i)%len(r.data)])
	}
}

// Bounded is a ring buffer that grows up to len(storage) elements and then
// evicts the oldest on every further push.
type Bounded[T any] struct {
	data  []T
	start int
	n     int
}

// NewBounded wraps storage in an empty ring buffer with capacity
// len(storage). The slice is used in place; its initial contents are ignored.
func NewBounded[T any](storage []T) (*Bounded[T], error) {
	if len(storage) == 0 {
		return nil, fmt.Errorf("%w: bounded ring needs at least one slot", ErrZeroCapacity)
	}

	return &Bounded[T]{data: storage}, nil
}

// Push appends v. When the buffer is full it evicts the oldest element and
// returns it with true; otherwise the second result is false.
func (r *Bounded[T]) Push(v T) (T, bool) {
	if r.n == len(r.data) {
		old := r.data[r.start]
		r.data[r.start] = v
		r.start = (r.start + 1) % len(r.data)

		return old, true
	}

	r.data[(r.start+r.n)%len(r.data)] = v
	r.n++

	var zero T

	return zero, false
}

// Pop removes and returns the oldest element. The second result is false
// when the buffer is empty.
func (r *Bounded[T]) Pop() (T, bool) {
	if r.n == 0 {
		var zero T
		return zero, false
	}

	v := r.data[r.start]
	r.start = (r.start + 1) % len(r.data)
	r.n--

	return v, true
}

// Len returns the number of buffered elements.
func (r *Bounded[T]) Len() int { return r.n }

// Cap returns the maximum number of elements the buffer can hold.
func (r *Bounded[T]) Cap() int { return len(r.data) }

// At returns the i-th oldest element.
func (r *Bounded[T]) At(i int) (T, error) {
	if i < 0 || i >= r.n {
		var zero T
		return zero, fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, i, r.n)
	}

	return r.data[(r.start+i)%len(r.data)], nil
}

// Do calls fn for each buffered element from oldest to newest.
func (r *Bounded[T]) Do(fn func(T)) {
	for i := 0; i < r.n; i++ {
		fn(r.data[(r.start+i)%len(r.data)])
	}
}

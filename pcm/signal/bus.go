package signal

import (
	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

// Bus fans a single signal out to any number of outputs. Each output
// observes every frame of the source exactly once; frames pulled by a fast
// reader are buffered until the slowest reader has consumed them.
//
// A Bus and its outputs must be driven from a single goroutine. Buffering
// for lagging readers is the one place in this package that allocates after
// construction; evicted frames are recycled, so a reader set that stays
// within a bounded lag settles into steady state without further
// allocation.
type Bus[S sample.Sample] struct {
	src     Signal[S]
	buffer  []frame.Frame[S] // pending frames, oldest first
	free    []frame.Frame[S]
	read    map[int]int // frames consumed from the buffer start, per output
	nextKey int
}

// NewBus wraps src for fan-out. The source must no longer be advanced
// directly.
func NewBus[S sample.Sample](src Signal[S]) *Bus[S] {
	return &Bus[S]{src: src, read: make(map[int]int)}
}

// Channels returns the channel count of the wrapped source.
func (b *Bus[S]) Channels() int { return b.src.Channels() }

// Send registers a new output starting at the stream's current position.
// Frames already buffered for older outputs are not replayed.
func (b *Bus[S]) Send() *Output[S] {
	key := b.nextKey
	b.nextKey++
	b.read[key] = len(b.buffer)

	return &Output[S]{bus: b, key: key, out: make(frame.Frame[S], b.src.Channels())}
}

func (b *Bus[S]) nextFrame(key int, dst frame.Frame[S]) {
	r := b.read[key]
	if r < len(b.buffer) {
		dst.CopyFrom(b.buffer[r])
	} else {
		dst.CopyFrom(b.src.Next())
		b.buffer = append(b.buffer, b.bufferClone(dst))
	}
	b.read[key] = r + 1

	b.trim()
}

// bufferClone stores a copy of f in recycled or fresh storage.
func (b *Bus[S]) bufferClone(f frame.Frame[S]) frame.Frame[S] {
	var c frame.Frame[S]
	if n := len(b.free); n > 0 {
		c = b.free[n-1]
		b.free = b.free[:n-1]
	} else {
		c = make(frame.Frame[S], len(f))
	}
	c.CopyFrom(f)

	return c
}

// trim drops buffered frames every remaining output has consumed.
func (b *Bus[S]) trim() {
	m := len(b.buffer)
	for _, r := range b.read {
		if r < m {
			m = r
		}
	}
	if m == 0 {
		return
	}

	b.free = append(b.free, b.buffer[:m]...)
	n := copy(b.buffer, b.buffer[m:])
	b.buffer = b.buffer[:n]
	for k := range b.read {
		b.read[k] -= m
	}
}

// Output is one reader of a Bus. It implements Signal.
type Output[S sample.Sample] struct {
	bus    *Bus[S]
	key    int
	out    frame.Frame[S]
	closed bool
}

func (o *Output[S]) Next() frame.Frame[S] {
	if o.closed {
		o.out.SetEquilibrium()

		return o.out
	}
	o.bus.nextFrame(o.key, o.out)

	return o.out
}

func (o *Output[S]) Exhausted() bool {
	return o.closed || (o.bus.src.Exhausted() && o.Pending() == 0)
}

func (o *Output[S]) Channels() int { return len(o.out) }

// Pending returns the number of buffered frames this output has not read
// yet.
func (o *Output[S]) Pending() int {
	if o.closed {
		return 0
	}

	return len(o.bus.buffer) - o.bus.read[o.key]
}

// Close deregisters the output so it no longer holds back the buffer. A
// closed output yields equilibrium and reports exhaustion.
func (o *Output[S]) Close() {
	if o.closed {
		return
	}
	o.closed = true
	delete(o.bus.read, o.key)

	if len(o.bus.read) == 0 {
		o.bus.free = append(o.bus.free, o.bus.buffer...)
		o.bus.buffer = o.bus.buffer[:0]

		return
	}
	o.bus.trim()
}

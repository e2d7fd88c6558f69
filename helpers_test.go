package sixelframe

import (
	"errors"
	"sync"
)

// trackingAllocator records every buffer handed out and returned.
type trackingAllocator struct {
	mu     sync.Mutex
	allocs int
	frees  int
	stray  int // Free calls for buffers this allocator never issued
	live   map[*byte]int
	failAt int // fail the n-th Alloc (1-based); 0 disables
}

func newTrackingAllocator() *trackingAllocator {
	return &trackingAllocator{live: make(map[*byte]int)}
}

var errInjected = errors.New("injected allocation failure")

func (a *trackingAllocator) Alloc(n int) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.allocs++
	if a.failAt > 0 && a.allocs == a.failAt {
		return nil, errInjected
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	a.live[&buf[0]] = n
	return buf, nil
}

func (a *trackingAllocator) Free(buf []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frees++
	key := &buf[:1][0]
	if _, ok := a.live[key]; !ok {
		a.stray++
		return
	}
	delete(a.live, key)
}

// Live returns the number of issued buffers not yet freed.
func (a *trackingAllocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// Stray returns the number of frees for buffers the allocator never issued.
func (a *trackingAllocator) Stray() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stray
}

// failingNormalizer reports err from every call without touching dst.
type failingNormalizer struct {
	err    error
	format PixelFormat
}

func (n failingNormalizer) ToRGB888(dst, src []byte, format PixelFormat, width, height int, palette []byte) (PixelFormat, error) {
	if n.err != nil {
		return format, n.err
	}
	return n.format, nil
}

func (n failingNormalizer) Unpack(dst, src []byte, format PixelFormat, width, height int) (PixelFormat, error) {
	if n.err != nil {
		return format, n.err
	}
	return n.format, nil
}

// failingResampler reports err from every call.
type failingResampler struct {
	err   error
	calls int
}

func (r *failingResampler) Resample(dst, src []byte, srcWidth, srcHeight, depth, dstWidth, dstHeight int, method ResampleMethod) error {
	r.calls++
	return r.err
}

// rgbGrid returns a w x h RGB888 buffer where pixel (x, y) is (x, y, x*16+y).
func rgbGrid(w, h int) []byte {
	buf := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 3
			buf[i], buf[i+1], buf[i+2] = byte(x), byte(y), byte(x*16+y)
		}
	}
	return buf
}

// newRGBFrame returns an initialized RGB888 frame over a copy of pixels.
func newRGBFrame(w, h int, pixels []byte, opts ...Option) *Frame {
	f := New(opts...)
	f.Init(append([]byte(nil), pixels...), w, h, FormatRGB888, nil, -1)
	return f
}

// live returns the bytes of the frame that its geometry covers.
func live(f *Frame) []byte {
	return f.Pixels()[:f.PixelFormat().ImageBytes(f.Width(), f.Height())]
}

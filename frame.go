package sixelframe

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Frame is an in-memory image frame: a pixel buffer, an optional palette,
// and the metadata a sixel encoder needs.
//
// The pixel buffer may be longer than the live image after an in-place
// operation (StripAlpha, Clip). Width, Height and PixelFormat are the only
// source of truth for how many bytes are in use.
//
// Thread safety: Retain and Release are safe for concurrent use. Everything
// else, including Init and every mutating operation, requires external
// synchronization or confinement of the frame to one goroutine.
type Frame struct {
	refs atomic.Int32

	pixels      []byte
	palette     []byte
	ownPixels   bool // pixels came from alloc and go back to it
	ownPalette  bool // palette came from alloc and goes back to it
	width       int
	height      int
	format      PixelFormat
	colorCount  int
	transparent int

	delay      int
	frameNo    int
	loopCount  int
	multiFrame bool

	alloc      Allocator
	normalizer Normalizer
	resampler  Resampler
	onDestroy  func(*Frame)
}

// New creates an empty frame holding one reference: no buffer, format
// RGB888, no palette (ColorCount -1), no transparent index (-1) and zeroed
// animation metadata.
func New(opts ...Option) *Frame {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Frame{
		format:      FormatRGB888,
		colorCount:  -1,
		transparent: -1,
		alloc:       o.allocator,
		normalizer:  o.normalizer,
		resampler:   o.resampler,
		onDestroy:   o.onDestroy,
	}
	f.refs.Store(1)
	return f
}

// Retain adds a reference to the frame.
func (f *Frame) Retain() {
	f.refs.Add(1)
}

// Release drops a reference. The release that brings the count to zero
// frees the pixel and palette buffers and runs the WithOnDestroy hook.
func (f *Frame) Release() {
	if f == nil {
		return
	}
	n := f.refs.Add(-1)
	switch {
	case n == 0:
		f.destroy()
	case n < 0:
		f.refs.Store(0)
		Logger().Warn("sixelframe: release of destroyed frame")
	}
}

// RefCount returns the current number of references.
func (f *Frame) RefCount() int {
	return int(f.refs.Load())
}

func (f *Frame) destroy() {
	f.setPixels(nil, false)
	f.setPalette(nil, false)
	f.width = 0
	f.height = 0
	if f.onDestroy != nil {
		f.onDestroy(f)
	}
}

// Init populates the frame with caller buffers. The frame keeps using them
// until they are replaced or the frame is destroyed, after which they are
// left to the garbage collector: only buffers the frame drew from its own
// Allocator are ever handed back to it. Buffers the frame allocated itself
// are freed here.
//
// No validation is performed; pixels must hold at least
// format.ImageBytes(width, height) bytes, and palette (nil for non-palette
// formats) colorCount RGB triples.
func (f *Frame) Init(pixels []byte, width, height int, format PixelFormat, palette []byte, colorCount int) {
	f.setPixels(pixels, false)
	f.setPalette(palette, false)
	f.width = width
	f.height = height
	f.format = format
	f.colorCount = colorCount
}

// SetPalette replaces the palette and its color count. palette may be
// shared with other frames, as a global GIF palette is.
func (f *Frame) SetPalette(palette []byte, colorCount int) {
	f.setPalette(palette, false)
	f.colorCount = colorCount
}

// Pixels returns the pixel buffer. Only the first
// PixelFormat().ImageBytes(Width(), Height()) bytes are live.
func (f *Frame) Pixels() []byte { return f.pixels }

// Palette returns the palette as packed RGB triples, or nil.
func (f *Frame) Palette() []byte { return f.palette }

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// PixelFormat returns the encoding of the pixel buffer.
func (f *Frame) PixelFormat() PixelFormat { return f.format }

// ColorCount returns the number of palette entries, or -1 when the frame
// has no palette.
func (f *Frame) ColorCount() int { return f.colorCount }

// Transparent returns the transparent palette index, or -1.
func (f *Frame) Transparent() int { return f.transparent }

// SetTransparent sets the transparent palette index; -1 clears it.
func (f *Frame) SetTransparent(index int) { f.transparent = index }

// Delay returns the animation delay of the frame.
func (f *Frame) Delay() int { return f.delay }

// SetDelay sets the animation delay of the frame.
func (f *Frame) SetDelay(delay int) { f.delay = delay }

// FrameNo returns the position of the frame in its animation.
func (f *Frame) FrameNo() int { return f.frameNo }

// SetFrameNo sets the position of the frame in its animation.
func (f *Frame) SetFrameNo(n int) { f.frameNo = n }

// LoopCount returns the animation loop counter.
func (f *Frame) LoopCount() int { return f.loopCount }

// SetLoopCount sets the animation loop counter.
func (f *Frame) SetLoopCount(n int) { f.loopCount = n }

// IsMultiFrame reports whether the frame belongs to an animation.
func (f *Frame) IsMultiFrame() bool { return f.multiFrame }

// SetMultiFrame marks the frame as part of an animation.
func (f *Frame) SetMultiFrame(v bool) { f.multiFrame = v }

// String returns a short description such as "Frame(4x4 RGB888)".
func (f *Frame) String() string {
	return fmt.Sprintf("Frame(%dx%d %v)", f.width, f.height, f.format)
}

// setPixels installs buf as the pixel buffer. The previous buffer is
// returned to the allocator when the frame owned it and buf does not reuse
// its memory; in the latter case ownership carries over.
func (f *Frame) setPixels(buf []byte, owned bool) {
	f.pixels, f.ownPixels = buf, f.release(f.pixels, f.ownPixels, buf, owned)
}

func (f *Frame) setPalette(buf []byte, owned bool) {
	f.palette, f.ownPalette = buf, f.release(f.palette, f.ownPalette, buf, owned)
}

// release frees old if owned and not aliased by next, and reports whether
// the frame owns next.
func (f *Frame) release(old []byte, ownOld bool, next []byte, ownNext bool) bool {
	if !ownOld {
		return ownNext
	}
	if sharesMemory(old, next) {
		return true
	}
	f.free(old)
	return ownNext
}

// allocate draws n bytes from the frame's allocator. Allocator errors are
// reported as ErrOutOfMemory.
func (f *Frame) allocate(n int) ([]byte, error) {
	buf, err := f.alloc.Alloc(n)
	if err != nil {
		if errors.Is(err, ErrOutOfMemory) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}
	return buf, nil
}

func (f *Frame) free(buf []byte) {
	if cap(buf) > 0 {
		f.alloc.Free(buf)
	}
}

// adopt swaps in a freshly written pixel buffer and frees the old one.
func (f *Frame) adopt(buf []byte, width, height int, format PixelFormat) {
	Logger().Debug("sixelframe: buffer swap",
		"from", f.String(),
		"width", width, "height", height, "format", format.String())
	f.setPixels(buf, true)
	f.width = width
	f.height = height
	f.format = format
}

// checkPixels verifies the frame holds a buffer large enough for its geometry.
func (f *Frame) checkPixels() error {
	if f.pixels == nil {
		return ErrNotInitialized
	}
	if need := f.format.ImageBytes(f.width, f.height); len(f.pixels) < need {
		return fmt.Errorf("%w: %v needs %d bytes, buffer has %d", ErrInvalidGeometry, f, need, len(f.pixels))
	}
	return nil
}

// sharesMemory reports whether a and b are slices of the same backing
// array, detected by a common last element.
func sharesMemory(a, b []byte) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}
	return &a[:cap(a)][cap(a)-1] == &b[:cap(b)][cap(b)-1]
}

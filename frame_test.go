package sixelframe

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	f := New()
	defer f.Release()

	if f.RefCount() != 1 {
		t.Errorf("RefCount() = %d, want 1", f.RefCount())
	}
	if f.Pixels() != nil {
		t.Errorf("Pixels() = %v, want nil", f.Pixels())
	}
	if f.Palette() != nil {
		t.Errorf("Palette() = %v, want nil", f.Palette())
	}
	if f.Width() != 0 || f.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", f.Width(), f.Height())
	}
	if f.PixelFormat() != FormatRGB888 {
		t.Errorf("PixelFormat() = %v, want RGB888", f.PixelFormat())
	}
	if f.ColorCount() != -1 {
		t.Errorf("ColorCount() = %d, want -1", f.ColorCount())
	}
	if f.Transparent() != -1 {
		t.Errorf("Transparent() = %d, want -1", f.Transparent())
	}
	if f.Delay() != 0 || f.FrameNo() != 0 || f.LoopCount() != 0 || f.IsMultiFrame() {
		t.Error("animation metadata is not zeroed")
	}
}

func TestRelease_DestroysOnLastReference(t *testing.T) {
	tests := []struct {
		name    string
		retains int
	}{
		{"create then release", 0},
		{"one retain", 1},
		{"three retains", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := newTrackingAllocator()
			destroyed := 0
			f := New(WithAllocator(alloc), WithOnDestroy(func(*Frame) { destroyed++ }))
			f.Init(make([]byte, 16), 2, 2, FormatRGBA8888, nil, -1)
			if err := f.ConvertToRGB888(); err != nil {
				t.Fatalf("ConvertToRGB888() error = %v", err)
			}

			for i := 0; i < tt.retains; i++ {
				f.Retain()
			}
			for i := 0; i < tt.retains; i++ {
				f.Release()
				if destroyed != 0 {
					t.Fatalf("destroyed after release %d of %d", i+1, tt.retains+1)
				}
				if alloc.Live() != 1 {
					t.Fatalf("pixel buffer freed early")
				}
			}

			f.Release()
			if destroyed != 1 {
				t.Errorf("destroyed %d times, want 1", destroyed)
			}
			if alloc.Live() != 0 {
				t.Errorf("%d buffers still live after destroy", alloc.Live())
			}
			if f.RefCount() != 0 {
				t.Errorf("RefCount() = %d, want 0", f.RefCount())
			}
		})
	}
}

func TestRelease_FreesPalette(t *testing.T) {
	alloc := newTrackingAllocator()
	pal := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.Black, color.White})
	f, err := FromImage(pal, WithAllocator(alloc))
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}

	if alloc.Live() != 2 {
		t.Fatalf("Live() = %d, want 2", alloc.Live())
	}
	f.Release()
	if alloc.Live() != 0 {
		t.Errorf("Live() after release = %d, want 0", alloc.Live())
	}
}

func TestRelease_LeavesCallerBuffers(t *testing.T) {
	alloc := newTrackingAllocator()
	f := New(WithAllocator(alloc))
	f.Init(make([]byte, 4), 2, 2, FormatPAL8, []byte{0, 0, 0, 255, 255, 255}, 2)
	f.Release()

	if alloc.frees != 0 {
		t.Errorf("frees = %d, want 0 for caller buffers", alloc.frees)
	}
}

func TestRelease_KeepsBytesOutsideSlice(t *testing.T) {
	backing := bytes.Repeat([]byte{0xaa}, 24)

	f := New()
	f.Init(backing[:12], 2, 2, FormatRGB888, nil, -1)
	f.Release()

	if want := bytes.Repeat([]byte{0xaa}, 24); !bytes.Equal(backing, want) {
		t.Errorf("backing = %v, want untouched", backing)
	}
}

func TestSharedPalette(t *testing.T) {
	palette := []byte{255, 0, 0, 0, 255, 0}
	want := append([]byte(nil), palette...)

	// Two frames of an animation share one global palette.
	for i := 0; i < 2; i++ {
		f := New()
		f.Init([]byte{0, 1, 1, 0}, 2, 2, FormatPAL8, palette, 2)
		f.Release()
	}
	if !bytes.Equal(palette, want) {
		t.Fatalf("palette = %v after release, want %v", palette, want)
	}

	f := New()
	defer f.Release()
	f.Init([]byte{0, 1, 1, 0}, 2, 2, FormatPAL8, palette, 2)
	if err := f.Resize(4, 2, ResampleNearest); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}

	red, green := []byte{255, 0, 0}, []byte{0, 255, 0}
	wantPixels := bytes.Join([][]byte{red, red, green, green, green, green, red, red}, nil)
	if !bytes.Equal(live(f), wantPixels) {
		t.Errorf("pixels = %v, want %v", live(f), wantPixels)
	}
}

func TestRelease_OverReleaseWarns(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var logBuf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logBuf, nil)))

	destroyed := 0
	f := New(WithOnDestroy(func(*Frame) { destroyed++ }))
	f.Release()
	f.Release()

	if destroyed != 1 {
		t.Errorf("destroyed %d times, want 1", destroyed)
	}
	if f.RefCount() != 0 {
		t.Errorf("RefCount() = %d, want 0", f.RefCount())
	}
	if !strings.Contains(logBuf.String(), "release of destroyed frame") {
		t.Errorf("expected warning, got log: %q", logBuf.String())
	}
}

func TestRelease_Nil(t *testing.T) {
	var f *Frame
	f.Release()
}

func TestRetainRelease_Concurrent(t *testing.T) {
	var mu sync.Mutex
	destroyed := 0
	f := New(WithOnDestroy(func(*Frame) {
		mu.Lock()
		destroyed++
		mu.Unlock()
	}))

	const goroutines = 64
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		f.Retain()
	}
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Release()
		}()
	}
	wg.Wait()

	if destroyed != 0 {
		t.Fatalf("destroyed while a reference is held")
	}
	f.Release()
	if destroyed != 1 {
		t.Errorf("destroyed %d times, want 1", destroyed)
	}
}

func TestInit_SetsFieldsVerbatim(t *testing.T) {
	f := New()
	defer f.Release()

	pixels := []byte{0, 1, 1, 0}
	palette := []byte{0, 0, 0, 255, 255, 255}
	f.Init(pixels, 2, 2, FormatPAL8, palette, 2)

	if &f.Pixels()[0] != &pixels[0] {
		t.Error("Init copied pixels instead of taking ownership")
	}
	if &f.Palette()[0] != &palette[0] {
		t.Error("Init copied palette instead of taking ownership")
	}
	if f.Width() != 2 || f.Height() != 2 {
		t.Errorf("size = %dx%d, want 2x2", f.Width(), f.Height())
	}
	if f.PixelFormat() != FormatPAL8 {
		t.Errorf("PixelFormat() = %v, want PAL8", f.PixelFormat())
	}
	if f.ColorCount() != 2 {
		t.Errorf("ColorCount() = %d, want 2", f.ColorCount())
	}
}

func TestInit_NoValidation(t *testing.T) {
	f := New()
	defer f.Release()

	// A short buffer is accepted; operations that need pixels report it.
	f.Init(make([]byte, 3), 4, 4, FormatRGB888, nil, -1)
	if f.Width() != 4 || f.Height() != 4 {
		t.Errorf("size = %dx%d, want 4x4", f.Width(), f.Height())
	}
}

func TestInit_FreesReplacedBuffers(t *testing.T) {
	alloc := newTrackingAllocator()
	f := New(WithAllocator(alloc))
	defer f.Release()

	f.Init(make([]byte, 4), 2, 2, FormatG8, nil, -1)
	if err := f.ConvertToRGB888(); err != nil {
		t.Fatalf("ConvertToRGB888() error = %v", err)
	}
	f.Init(make([]byte, 3), 1, 1, FormatRGB888, nil, -1)

	if alloc.frees != 1 {
		t.Errorf("frees = %d, want 1", alloc.frees)
	}
	if alloc.Live() != 0 {
		t.Errorf("Live() = %d, want 0", alloc.Live())
	}
	if alloc.Stray() != 0 {
		t.Errorf("Stray() = %d, want 0", alloc.Stray())
	}
}

func TestInit_SameBufferNotFreed(t *testing.T) {
	alloc := newTrackingAllocator()
	f := New(WithAllocator(alloc))

	f.Init(make([]byte, 4), 2, 2, FormatG8, nil, -1)
	if err := f.ConvertToRGB888(); err != nil {
		t.Fatalf("ConvertToRGB888() error = %v", err)
	}
	buf := f.Pixels()
	f.Init(buf, 1, 4, FormatRGB888, nil, -1)

	if alloc.frees != 0 {
		t.Errorf("frees = %d, want 0", alloc.frees)
	}
	f.Release()
	if alloc.Live() != 0 {
		t.Errorf("reused buffer not freed on release: Live() = %d", alloc.Live())
	}
}

func TestSetPalette(t *testing.T) {
	alloc := newTrackingAllocator()
	pal := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Black})
	f, err := FromImage(pal, WithAllocator(alloc))
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	defer f.Release()

	next := []byte{1, 2, 3, 4, 5, 6}
	f.SetPalette(next, 2)

	if f.ColorCount() != 2 {
		t.Errorf("ColorCount() = %d, want 2", f.ColorCount())
	}
	if !bytes.Equal(f.Palette(), next) {
		t.Errorf("Palette() = %v, want %v", f.Palette(), next)
	}
	if alloc.frees != 1 {
		t.Errorf("previous palette not freed: frees = %d", alloc.frees)
	}
	if alloc.Live() != 1 {
		t.Errorf("Live() = %d, want 1", alloc.Live())
	}
}

func TestAnimationMetadata(t *testing.T) {
	f := New()
	defer f.Release()

	f.SetDelay(40)
	f.SetFrameNo(3)
	f.SetLoopCount(2)
	f.SetMultiFrame(true)
	f.SetTransparent(7)

	if f.Delay() != 40 {
		t.Errorf("Delay() = %d, want 40", f.Delay())
	}
	if f.FrameNo() != 3 {
		t.Errorf("FrameNo() = %d, want 3", f.FrameNo())
	}
	if f.LoopCount() != 2 {
		t.Errorf("LoopCount() = %d, want 2", f.LoopCount())
	}
	if !f.IsMultiFrame() {
		t.Error("IsMultiFrame() = false, want true")
	}
	if f.Transparent() != 7 {
		t.Errorf("Transparent() = %d, want 7", f.Transparent())
	}

	// Metadata survives pixel operations untouched.
	f.Init(rgbGrid(4, 4), 4, 4, FormatRGB888, nil, -1)
	if err := f.Resize(2, 2, ResampleNearest); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if err := f.Clip(0, 0, 1, 1); err != nil {
		t.Fatalf("Clip() error = %v", err)
	}
	if f.Delay() != 40 || f.FrameNo() != 3 || f.LoopCount() != 2 || !f.IsMultiFrame() || f.Transparent() != 7 {
		t.Error("animation metadata changed by pixel operations")
	}
}

func TestFrame_String(t *testing.T) {
	f := New()
	defer f.Release()
	f.Init(make([]byte, 48), 4, 4, FormatRGB888, nil, -1)

	if got, want := f.String(), "Frame(4x4 RGB888)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

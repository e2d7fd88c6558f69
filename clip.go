package sixelframe

import "fmt"

// Clip crops the frame to the rectangle at (x, y) of width x height pixels.
//
// Sub-byte palette and grayscale formats are first unpacked to PAL8 / G8.
// Only PAL8, G8 and RGB888 can be cropped; anything else returns
// ErrUnsupportedPixelFormat with the frame unchanged. Rectangles that do
// not lie inside the frame return ErrInvalidGeometry.
//
// Rows are moved to the front of the existing buffer, which is not shrunk.
func (f *Frame) Clip(x, y, width, height int) error {
	if err := f.checkPixels(); err != nil {
		return err
	}
	if x < 0 || y < 0 || width <= 0 || height <= 0 || x+width > f.width || y+height > f.height {
		return fmt.Errorf("%w: clip (%d,%d %dx%d) outside %v", ErrInvalidGeometry, x, y, width, height, f)
	}

	if f.format.IsSubByte() {
		if err := f.unpack(); err != nil {
			return err
		}
	}

	switch f.format {
	case FormatPAL8, FormatG8, FormatRGB888:
	default:
		return fmt.Errorf("%w: clip %v", ErrUnsupportedPixelFormat, f.format)
	}

	compact(f.pixels, f.width, f.format.BytesPerPixel(), x, y, width, height)
	f.width = width
	f.height = height
	return nil
}

// unpack replaces a sub-byte buffer with its one byte per pixel form.
func (f *Frame) unpack() error {
	want := f.format.Expanded()
	buf, err := f.allocate(want.ImageBytes(f.width, f.height))
	if err != nil {
		return err
	}

	got, err := f.normalizer.Unpack(buf, f.pixels, f.format, f.width, f.height)
	if err != nil {
		f.free(buf)
		return fmt.Errorf("%w: unpack %v: %w", ErrNormalizationFailed, f.format, err)
	}
	if got != want {
		f.free(buf)
		return fmt.Errorf("%w: %v unpacked to %v, want %v", ErrNormalizationFailed, f.format, got, want)
	}

	f.adopt(buf, f.width, f.height, want)
	return nil
}

// compact moves the rows of a crop rectangle to the start of buf. A
// destination row never starts after its source row, and copy handles the
// overlap within a row, so rows are processed top to bottom in place.
func compact(buf []byte, srcWidth, depth, x, y, width, height int) {
	srcStride := srcWidth * depth
	rowLen := width * depth
	for row := 0; row < height; row++ {
		s := (y+row)*srcStride + x*depth
		d := row * rowLen
		copy(buf[d:d+rowLen], buf[s:s+rowLen])
	}
}

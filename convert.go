package sixelframe

import "fmt"

// ConvertToRGB888 normalizes the pixel buffer to packed 3-byte truecolor.
//
// Frames already in RGB888 are left untouched. Every other known format is
// transcoded by the Normalizer into a new buffer, which replaces the old one
// on success. The palette is kept as is: callers must not assume Palette()
// is nil afterwards. On failure the scratch buffer is freed and the frame is
// unchanged.
func (f *Frame) ConvertToRGB888() error {
	if f.format == FormatRGB888 {
		return nil
	}
	if !f.format.IsValid() {
		Logger().Error("sixelframe: convert to RGB888: invalid pixel format",
			"format", fmt.Sprintf("0x%02x", uint8(f.format)))
		return fmt.Errorf("%w: 0x%02x", ErrUnsupportedPixelFormat, uint8(f.format))
	}
	if err := f.checkPixels(); err != nil {
		return err
	}

	buf, err := f.allocate(FormatRGB888.ImageBytes(f.width, f.height))
	if err != nil {
		return err
	}

	got, err := f.normalizer.ToRGB888(buf, f.pixels, f.format, f.width, f.height, f.palette)
	if err != nil {
		f.free(buf)
		return fmt.Errorf("%w: %v: %w", ErrNormalizationFailed, f.format, err)
	}
	if got != FormatRGB888 {
		f.free(buf)
		return fmt.Errorf("%w: %v converted to %v, want RGB888", ErrNormalizationFailed, f.format, got)
	}

	f.adopt(buf, f.width, f.height, FormatRGB888)
	return nil
}

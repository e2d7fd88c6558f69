package sixelframe

import "fmt"

// Resize scales the frame to width x height using method.
//
// The frame is first normalized to RGB888 (errors from that step are
// returned as is). A destination buffer is then drawn from the allocator
// and filled by the Resampler. On success it replaces the old buffer;
// on failure it is freed and the frame keeps its RGB888 pixels.
func (f *Frame) Resize(width, height int, method ResampleMethod) error {
	if f.pixels == nil {
		return ErrNotInitialized
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: resize %v to %dx%d", ErrInvalidGeometry, f, width, height)
	}

	if err := f.ConvertToRGB888(); err != nil {
		return err
	}
	if err := f.checkPixels(); err != nil {
		return err
	}

	const depth = 3
	buf, err := f.allocate(width * height * depth)
	if err != nil {
		return err
	}

	if err := f.resampler.Resample(buf, f.pixels, f.width, f.height, depth, width, height, method); err != nil {
		f.free(buf)
		return fmt.Errorf("%w: %v to %dx%d with %v: %w", ErrResamplingFailed, f, width, height, method, err)
	}

	f.adopt(buf, width, height, FormatRGB888)
	return nil
}

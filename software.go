package sixelframe

import (
	"github.com/gogpu/sixelframe/internal/normalize"
	"github.com/gogpu/sixelframe/internal/resample"
)

// Normalizer transcodes pixel buffers between formats on behalf of a Frame.
//
// Implementations write into dst only, never retain or free dst or src, and
// report the format actually written. A frame treats any error as leaving
// dst garbage and src untouched.
type Normalizer interface {
	// ToRGB888 expands width*height pixels of format into packed 3-byte
	// truecolor. palette holds RGB triples for palette-indexed sources.
	ToRGB888(dst, src []byte, format PixelFormat, width, height int, palette []byte) (PixelFormat, error)

	// Unpack spreads a sub-byte palette or grayscale format out to one byte
	// per pixel.
	Unpack(dst, src []byte, format PixelFormat, width, height int) (PixelFormat, error)
}

// Resampler scales a packed buffer of depth bytes per pixel to new
// dimensions. The ownership rules match Normalizer.
type Resampler interface {
	Resample(dst, src []byte, srcWidth, srcHeight, depth, dstWidth, dstHeight int, method ResampleMethod) error
}

// SoftwareNormalizer is the pure Go Normalizer used by default.
type SoftwareNormalizer struct{}

var _ Normalizer = SoftwareNormalizer{}

// ToRGB888 implements Normalizer.
func (SoftwareNormalizer) ToRGB888(dst, src []byte, format PixelFormat, width, height int, palette []byte) (PixelFormat, error) {
	return normalize.ToRGB888(dst, src, format, width, height, palette)
}

// Unpack implements Normalizer.
func (SoftwareNormalizer) Unpack(dst, src []byte, format PixelFormat, width, height int) (PixelFormat, error) {
	return normalize.Unpack(dst, src, format, width, height)
}

// SoftwareResampler is the pure Go Resampler used by default.
type SoftwareResampler struct{}

var _ Resampler = SoftwareResampler{}

// Resample implements Resampler.
func (SoftwareResampler) Resample(dst, src []byte, srcWidth, srcHeight, depth, dstWidth, dstHeight int, method ResampleMethod) error {
	return resample.Scale(dst, src, srcWidth, srcHeight, depth, dstWidth, dstHeight, method)
}

package sixelframe

import (
	"github.com/gogpu/sixelframe/internal/pixfmt"
	"github.com/gogpu/sixelframe/internal/resample"
)

// PixelFormat describes the byte layout of one pixel in a frame buffer.
type PixelFormat = pixfmt.Format

// Pixel formats.
const (
	// FormatRGB555 is 15-bit RGB in a big-endian 16-bit word.
	FormatRGB555 = pixfmt.RGB555

	// FormatRGB565 is 16-bit RGB in a big-endian 16-bit word.
	FormatRGB565 = pixfmt.RGB565

	// FormatRGB888 is 24-bit truecolor (3 bytes per pixel).
	// Every conversion and resize ends in this format.
	FormatRGB888 = pixfmt.RGB888

	// FormatBGR555 is FormatRGB555 with red and blue swapped.
	FormatBGR555 = pixfmt.BGR555

	// FormatBGR565 is FormatRGB565 with red and blue swapped.
	FormatBGR565 = pixfmt.BGR565

	// FormatBGR888 is 24-bit truecolor stored blue first.
	FormatBGR888 = pixfmt.BGR888

	// FormatARGB8888 is 32-bit truecolor with a leading alpha byte.
	FormatARGB8888 = pixfmt.ARGB8888

	// FormatRGBA8888 is 32-bit truecolor with a trailing alpha byte.
	FormatRGBA8888 = pixfmt.RGBA8888

	// FormatABGR8888 is 32-bit truecolor, alpha first, blue before red.
	FormatABGR8888 = pixfmt.ABGR8888

	// FormatBGRA8888 is 32-bit truecolor, blue first, alpha last.
	FormatBGRA8888 = pixfmt.BGRA8888

	// FormatG1 is 1-bit grayscale.
	FormatG1 = pixfmt.G1

	// FormatG2 is 2-bit grayscale.
	FormatG2 = pixfmt.G2

	// FormatG4 is 4-bit grayscale.
	FormatG4 = pixfmt.G4

	// FormatG8 is 8-bit grayscale.
	FormatG8 = pixfmt.G8

	// FormatAG88 is grayscale with a leading alpha byte.
	FormatAG88 = pixfmt.AG88

	// FormatGA88 is grayscale with a trailing alpha byte.
	FormatGA88 = pixfmt.GA88

	// FormatPAL1 is 1-bit palette-indexed.
	FormatPAL1 = pixfmt.PAL1

	// FormatPAL2 is 2-bit palette-indexed.
	FormatPAL2 = pixfmt.PAL2

	// FormatPAL4 is 4-bit palette-indexed.
	FormatPAL4 = pixfmt.PAL4

	// FormatPAL8 is 8-bit palette-indexed.
	FormatPAL8 = pixfmt.PAL8
)

// ResampleMethod selects the interpolation used by Resize.
type ResampleMethod = resample.Method

// Resampling methods.
const (
	// ResampleNearest picks the closest source pixel. Resizing to the same
	// size reproduces the source exactly.
	ResampleNearest = resample.Nearest

	ResampleGaussian = resample.Gaussian
	ResampleHanning  = resample.Hanning
	ResampleHamming  = resample.Hamming

	// ResampleBilinear interpolates linearly between neighboring pixels.
	ResampleBilinear = resample.Bilinear

	ResampleWelsh = resample.Welsh

	// ResampleBicubic uses Catmull-Rom cubic interpolation.
	ResampleBicubic = resample.Bicubic

	ResampleLanczos2 = resample.Lanczos2
	ResampleLanczos3 = resample.Lanczos3
	ResampleLanczos4 = resample.Lanczos4
)

// Package resample scales packed pixel buffers to new dimensions.
//
// Nearest-neighbor works directly on the bytes for any depth. The filtered
// methods convert to an RGBA (or Gray) image, scale it with one of the
// imaging libraries below, and pack the result back:
//
//	Gaussian, Lanczos3                   github.com/anthonynsimon/bild/transform
//	Bicubic                              github.com/disintegration/gift
//	Lanczos2                             github.com/nfnt/resize
//	Bilinear, Hanning, Hamming, Welsh,
//	Lanczos4                             golang.org/x/image/draw
package resample

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Resampling errors.
var (
	// ErrUnknownMethod is returned for a Method outside the enumeration.
	ErrUnknownMethod = errors.New("resample: unknown method")

	// ErrInvalidDimensions is returned when a width or height is non-positive.
	ErrInvalidDimensions = errors.New("resample: invalid dimensions")

	// ErrUnsupportedDepth is returned for a byte depth the filtered methods cannot handle.
	ErrUnsupportedDepth = errors.New("resample: unsupported depth")

	// ErrBufferTooSmall is returned when a buffer is shorter than its geometry.
	ErrBufferTooSmall = errors.New("resample: buffer too small")
)

// Method selects the interpolation algorithm.
type Method uint8

const (
	// Nearest selects the closest source pixel (no interpolation).
	// Scaling to the same size reproduces the source exactly.
	Nearest Method = iota

	// Gaussian applies a Gaussian filter.
	Gaussian

	// Hanning applies a raised-cosine window with a support of one pixel.
	Hanning

	// Hamming applies the Hamming window with a support of one pixel.
	Hamming

	// Bilinear performs linear interpolation between neighboring pixels.
	Bilinear

	// Welsh applies the parabolic Welsh window.
	Welsh

	// Bicubic performs Catmull-Rom cubic interpolation.
	Bicubic

	// Lanczos2 is the Lanczos filter with a two pixel support.
	Lanczos2

	// Lanczos3 is the Lanczos filter with a three pixel support.
	Lanczos3

	// Lanczos4 is the Lanczos filter with a four pixel support.
	Lanczos4

	methodCount
)

// String returns a string representation of the method.
func (m Method) String() string {
	switch m {
	case Nearest:
		return "Nearest"
	case Gaussian:
		return "Gaussian"
	case Hanning:
		return "Hanning"
	case Hamming:
		return "Hamming"
	case Bilinear:
		return "Bilinear"
	case Welsh:
		return "Welsh"
	case Bicubic:
		return "Bicubic"
	case Lanczos2:
		return "Lanczos2"
	case Lanczos3:
		return "Lanczos3"
	case Lanczos4:
		return "Lanczos4"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the method is a known method.
func (m Method) IsValid() bool {
	return m < methodCount
}

// Scale resamples src (srcW x srcH pixels of depth bytes each) into dst at
// dstW x dstH. Neither buffer is retained.
func Scale(dst, src []byte, srcW, srcH, depth, dstW, dstH int, m Method) error {
	if !m.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownMethod, m)
	}
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 || depth <= 0 {
		return fmt.Errorf("%w: %dx%d -> %dx%d depth %d", ErrInvalidDimensions, srcW, srcH, dstW, dstH, depth)
	}
	if len(src) < srcW*srcH*depth {
		return fmt.Errorf("%w: source has %d bytes, need %d", ErrBufferTooSmall, len(src), srcW*srcH*depth)
	}
	if len(dst) < dstW*dstH*depth {
		return fmt.Errorf("%w: destination has %d bytes, need %d", ErrBufferTooSmall, len(dst), dstW*dstH*depth)
	}

	if m == Nearest {
		scaleNearest(dst, src, srcW, srcH, depth, dstW, dstH)
		return nil
	}

	if depth != 1 && depth != 3 {
		return fmt.Errorf("%w: %d bytes per pixel with %v", ErrUnsupportedDepth, depth, m)
	}

	in := wrap(src, srcW, srcH, depth)
	var out *image.RGBA

	switch m {
	case Gaussian:
		out = transform.Resize(in, dstW, dstH, transform.Gaussian)
	case Lanczos3:
		out = transform.Resize(in, dstW, dstH, transform.Lanczos)
	case Bicubic:
		g := gift.New(gift.Resize(dstW, dstH, gift.CubicResampling))
		out = image.NewRGBA(g.Bounds(in.Bounds()))
		g.Draw(out, in)
	case Lanczos2:
		out = toRGBA(resize.Resize(uint(dstW), uint(dstH), in, resize.Lanczos2))
	default:
		out = image.NewRGBA(image.Rect(0, 0, dstW, dstH))
		interpolator(m).Scale(out, out.Bounds(), in, in.Bounds(), draw.Src, nil)
	}

	unwrap(dst, out, depth)
	return nil
}

// interpolator maps the methods served by golang.org/x/image/draw.
func interpolator(m Method) draw.Interpolator {
	switch m {
	case Hanning:
		return hanningKernel
	case Hamming:
		return hammingKernel
	case Welsh:
		return welshKernel
	case Lanczos4:
		return lanczos4Kernel
	default:
		return draw.BiLinear
	}
}

// toRGBA returns img as *image.RGBA, converting when the scaler picked
// another concrete type (nfnt/resize keeps Gray input Gray).
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// wrap copies a packed buffer into a std image the scalers understand.
func wrap(src []byte, w, h, depth int) image.Image {
	if depth == 1 {
		gray := image.NewGray(image.Rect(0, 0, w, h))
		copy(gray.Pix, src[:w*h])
		return gray
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	n := w * h
	for i := 0; i < n; i++ {
		rgba.Pix[i*4] = src[i*3]
		rgba.Pix[i*4+1] = src[i*3+1]
		rgba.Pix[i*4+2] = src[i*3+2]
		rgba.Pix[i*4+3] = 0xff
	}
	return rgba
}

// unwrap packs an RGBA result back into depth bytes per pixel.
func unwrap(dst []byte, img *image.RGBA, depth int) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			d := (y*w + x) * depth
			if depth == 1 {
				dst[d] = row[x*4]
				continue
			}
			dst[d] = row[x*4]
			dst[d+1] = row[x*4+1]
			dst[d+2] = row[x*4+2]
		}
	}
}

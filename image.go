package sixelframe

import (
	"fmt"
	"image"
	"image/color"
)

// FromImage creates a frame holding a copy of img.
//
// Paletted images become PAL8 with their palette and the first fully
// transparent entry as transparent index. Gray images become G8, NRGBA
// images RGBA8888. Any other image becomes RGB888 when opaque and
// RGBA8888 otherwise.
func FromImage(img image.Image, opts ...Option) (*Frame, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: empty image %v", ErrInvalidGeometry, bounds)
	}

	f := New(opts...)
	var err error

	switch src := img.(type) {
	case *image.Paletted:
		err = f.initPaletted(src)
	case *image.Gray:
		err = f.initRows(src.Pix, src.Stride, width, height, FormatG8)
	case *image.NRGBA:
		err = f.initRows(src.Pix, src.Stride, width, height, FormatRGBA8888)
	default:
		err = f.initGeneric(img)
	}
	if err != nil {
		f.Release()
		return nil, err
	}

	return f, nil
}

// initRows copies a strided std image buffer into a tightly packed one.
func (f *Frame) initRows(pix []byte, stride, width, height int, format PixelFormat) error {
	rowBytes := format.RowBytes(width)
	buf, err := f.allocate(rowBytes * height)
	if err != nil {
		return err
	}
	for y := 0; y < height; y++ {
		copy(buf[y*rowBytes:(y+1)*rowBytes], pix[y*stride:y*stride+rowBytes])
	}
	f.initOwned(buf, width, height, format)
	return nil
}

// initOwned is Init for a pixel buffer drawn from the frame's allocator.
func (f *Frame) initOwned(buf []byte, width, height int, format PixelFormat) {
	f.Init(nil, width, height, format, nil, -1)
	f.setPixels(buf, true)
}

func (f *Frame) initPaletted(src *image.Paletted) error {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()

	palette, err := f.allocate(len(src.Palette) * 3)
	if err != nil {
		return err
	}
	transparent := -1
	for i, c := range src.Palette {
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		palette[i*3], palette[i*3+1], palette[i*3+2] = nc.R, nc.G, nc.B
		if nc.A == 0 && transparent < 0 {
			transparent = i
		}
	}

	if err := f.initRows(src.Pix, src.Stride, width, height, FormatPAL8); err != nil {
		f.free(palette)
		return err
	}
	f.setPalette(palette, true)
	f.colorCount = len(src.Palette)
	f.SetTransparent(transparent)
	return nil
}

// initGeneric walks img pixel by pixel, like any decoder output that has no
// fast path.
func (f *Frame) initGeneric(img image.Image) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	opaque := true
	if o, ok := img.(interface{ Opaque() bool }); ok {
		opaque = o.Opaque()
	} else {
		for y := bounds.Min.Y; y < bounds.Max.Y && opaque; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
					opaque = false
					break
				}
			}
		}
	}

	format := FormatRGBA8888
	if opaque {
		format = FormatRGB888
	}
	depth := format.BytesPerPixel()

	buf, err := f.allocate(format.ImageBytes(width, height))
	if err != nil {
		return err
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf[i], buf[i+1], buf[i+2] = c.R, c.G, c.B
			if depth == 4 {
				buf[i+3] = c.A
			}
			i += depth
		}
	}

	f.initOwned(buf, width, height, format)
	return nil
}

// ToImage returns a copy of the frame as a std image: *image.Paletted for
// PAL8, *image.Gray for G8 and *image.NRGBA for everything else. The frame
// itself is not modified.
func (f *Frame) ToImage() (image.Image, error) {
	if err := f.checkPixels(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, f.width, f.height)

	switch f.format {
	case FormatPAL8:
		return f.toPaletted(rect), nil

	case FormatG8:
		gray := image.NewGray(rect)
		copy(gray.Pix, f.pixels[:f.width*f.height])
		return gray, nil

	case FormatRGB888:
		return rgbToNRGBA(f.pixels, rect), nil
	}

	if ri, gi, bi, ai, ok := channelOrder(f.format); ok {
		nrgba := image.NewNRGBA(rect)
		n := f.width * f.height
		for i := 0; i < n; i++ {
			s := f.pixels[i*4 : i*4+4]
			d := nrgba.Pix[i*4 : i*4+4]
			d[0], d[1], d[2], d[3] = s[ri], s[gi], s[bi], s[ai]
		}
		return nrgba, nil
	}

	if !f.format.IsValid() {
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnsupportedPixelFormat, uint8(f.format))
	}

	// Convert a scratch copy so the frame keeps its format.
	rgb := make([]byte, FormatRGB888.ImageBytes(f.width, f.height))
	if _, err := f.normalizer.ToRGB888(rgb, f.pixels, f.format, f.width, f.height, f.palette); err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrNormalizationFailed, f.format, err)
	}
	return rgbToNRGBA(rgb, rect), nil
}

func (f *Frame) toPaletted(rect image.Rectangle) *image.Paletted {
	count := f.colorCount
	if count < 0 || count*3 > len(f.palette) {
		count = len(f.palette) / 3
	}

	pal := make(color.Palette, count)
	for i := 0; i < count; i++ {
		a := uint8(0xff)
		if i == f.transparent {
			a = 0
		}
		pal[i] = color.NRGBA{R: f.palette[i*3], G: f.palette[i*3+1], B: f.palette[i*3+2], A: a}
	}

	img := image.NewPaletted(rect, pal)
	copy(img.Pix, f.pixels[:f.width*f.height])
	return img
}

// rgbToNRGBA expands packed RGB into an opaque NRGBA image.
func rgbToNRGBA(rgb []byte, rect image.Rectangle) *image.NRGBA {
	nrgba := image.NewNRGBA(rect)
	n := rect.Dx() * rect.Dy()
	for i := 0; i < n; i++ {
		nrgba.Pix[i*4] = rgb[i*3]
		nrgba.Pix[i*4+1] = rgb[i*3+1]
		nrgba.Pix[i*4+2] = rgb[i*3+2]
		nrgba.Pix[i*4+3] = 0xff
	}
	return nrgba
}

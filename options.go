package sixelframe

// Option configures a Frame during creation.
//
// Example:
//
//	// Default pooled buffers, software collaborators
//	f := sixelframe.New()
//
//	// Bounded memory for untrusted input
//	f := sixelframe.New(sixelframe.WithAllocator(sixelframe.NewLimitAllocator(64<<20, nil)))
type Option func(*frameOptions)

// frameOptions holds optional configuration for Frame creation.
type frameOptions struct {
	allocator  Allocator
	normalizer Normalizer
	resampler  Resampler
	onDestroy  func(*Frame)
}

// defaultOptions returns the default frame options.
func defaultOptions() frameOptions {
	return frameOptions{
		allocator:  DefaultAllocator(),
		normalizer: SoftwareNormalizer{},
		resampler:  SoftwareResampler{},
	}
}

// WithAllocator sets the allocator the frame draws its buffers from and
// returns them to. A nil allocator keeps the default.
func WithAllocator(a Allocator) Option {
	return func(o *frameOptions) {
		if a != nil {
			o.allocator = a
		}
	}
}

// WithNormalizer replaces the pixel format Normalizer.
func WithNormalizer(n Normalizer) Option {
	return func(o *frameOptions) {
		if n != nil {
			o.normalizer = n
		}
	}
}

// WithResampler replaces the Resampler used by Resize.
func WithResampler(r Resampler) Option {
	return func(o *frameOptions) {
		if r != nil {
			o.resampler = r
		}
	}
}

// WithOnDestroy registers fn to run once, after the last reference is
// released and the buffers have been freed.
func WithOnDestroy(fn func(*Frame)) Option {
	return func(o *frameOptions) {
		o.onDestroy = fn
	}
}

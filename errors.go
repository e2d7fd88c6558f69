package sixelframe

import "errors"

// Frame operation errors. Collaborator failures are wrapped so that both the
// kind below and the collaborator's own error match with errors.Is.
var (
	// ErrOutOfMemory is returned when the allocator refuses a buffer.
	ErrOutOfMemory = errors.New("sixelframe: out of memory")

	// ErrUnsupportedPixelFormat is returned when an operation is invoked on
	// a pixel format it does not handle.
	ErrUnsupportedPixelFormat = errors.New("sixelframe: unsupported pixel format")

	// ErrNormalizationFailed is returned when the Normalizer reports a failure.
	ErrNormalizationFailed = errors.New("sixelframe: normalization failed")

	// ErrResamplingFailed is returned when the Resampler reports a failure.
	ErrResamplingFailed = errors.New("sixelframe: resampling failed")

	// ErrInvalidGeometry is returned for crop rectangles outside the frame,
	// non-positive target sizes, or a pixel buffer shorter than its geometry.
	ErrInvalidGeometry = errors.New("sixelframe: invalid geometry")

	// ErrNotInitialized is returned when an operation needs pixels but the
	// frame was never initialized or has been destroyed.
	ErrNotInitialized = errors.New("sixelframe: frame not initialized")
)
